package storage

import "context"

// TxRunner ejecuta fn dentro de una transacción y hace commit explícito si fn no falla.
// fn debe usar el ctx que recibe para que sus queries caigan en la transacción.
type TxRunner interface {
	InTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// NoTx corre fn directo; lo usan los repos en memoria, donde no hay transacciones.
type NoTx struct{}

func (NoTx) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

package users

import "context"

// Repository devuelve apperr.ErrNotFound si no hay fila y apperr.ErrConflict si el email ya existe.
type Repository interface {
	Create(ctx context.Context, u User) (int64, error)
	GetByID(ctx context.Context, id int64) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
}

type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(stored, plain string) bool
}

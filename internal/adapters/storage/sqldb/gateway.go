package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"pet-care/internal/platform/httpjson"

	"github.com/jmoiron/sqlx"
)

// Querier es lo mínimo que necesitan los repos: *sqlx.DB, *sqlx.Conn y *sqlx.Tx lo cumplen.
type Querier interface {
	sqlx.QueryerContext
	sqlx.ExecerContext
	Rebind(query string) string
}

type connKey struct{}
type txKey struct{}

// Gateway es el único punto por el que pasan las consultas.
// Dentro de un request usa la conexión dedicada que dejó Middleware; fuera de un
// request (seed, initdb) cae al pool. Los placeholders se escriben con "?" y se
// reescriben al dialecto del driver.
type Gateway struct {
	db *sqlx.DB
}

func NewGateway(db *sqlx.DB) *Gateway {
	return &Gateway{db: db}
}

func (g *Gateway) DB() *sqlx.DB { return g.db }

// Middleware reserva una conexión del pool para todo el request y la devuelve al
// terminar, aunque el handler falle o haga panic.
func (g *Gateway) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := g.db.Connx(r.Context())
		if err != nil {
			httpjson.WriteError(w, http.StatusInternalServerError, err.Error())
			return
		}
		defer conn.Close()

		ctx := context.WithValue(r.Context(), connKey{}, conn)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (g *Gateway) querier(ctx context.Context) Querier {
	if tx, ok := ctx.Value(txKey{}).(*sqlx.Tx); ok && tx != nil {
		return tx
	}
	if conn, ok := ctx.Value(connKey{}).(*sqlx.Conn); ok && conn != nil {
		return conn
	}
	return g.db
}

// Get escanea una sola fila en dest. Sin filas devuelve apperr.ErrNotFound.
func (g *Gateway) Get(ctx context.Context, dest any, query string, args ...any) error {
	q := g.querier(ctx)
	return classify(sqlx.GetContext(ctx, q, dest, q.Rebind(query), args...))
}

// Select escanea todas las filas en dest (puntero a slice). Sin filas deja el slice vacío.
func (g *Gateway) Select(ctx context.Context, dest any, query string, args ...any) error {
	q := g.querier(ctx)
	return classify(sqlx.SelectContext(ctx, q, dest, q.Rebind(query), args...))
}

// InTx ejecuta fn en una transacción. Si ctx ya trae una, fn corre dentro de ella
// y el commit queda a cargo de quien la abrió.
func (g *Gateway) InTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if tx, ok := ctx.Value(txKey{}).(*sqlx.Tx); ok && tx != nil {
		return fn(ctx)
	}

	var tx *sqlx.Tx
	if conn, ok := ctx.Value(connKey{}).(*sqlx.Conn); ok && conn != nil {
		tx, err = conn.BeginTxx(ctx, nil)
	} else {
		tx, err = g.db.BeginTxx(ctx, nil)
	}
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				err = errors.Join(err, fmt.Errorf("rollback: %w", rbErr))
			}
		}
	}()

	if err = fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", classify(err))
	}
	return nil
}

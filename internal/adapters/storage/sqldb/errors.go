package sqldb

import (
	"database/sql"
	"errors"
	"fmt"

	"pet-care/internal/platform/apperr"

	"github.com/jackc/pgx/v5/pgconn"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

const pgUniqueViolation = "23505"

// classify traduce errores del driver a los sentinels de apperr.
// Lo que no reconoce se devuelve tal cual (termina en 500 con el mensaje del driver).
func classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, sql.ErrNoRows):
		return fmt.Errorf("%w: %v", apperr.ErrNotFound, err)
	case isUniqueViolation(err):
		return fmt.Errorf("%w: %v", apperr.ErrConflict, err)
	default:
		return err
	}
}

func isUniqueViolation(err error) bool {
	var se *sqlite.Error
	if errors.As(err, &se) {
		code := se.Code()
		return code == sqlite3.SQLITE_CONSTRAINT_UNIQUE || code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY
	}

	var pe *pgconn.PgError
	if errors.As(err, &pe) {
		return pe.Code == pgUniqueViolation
	}
	return false
}

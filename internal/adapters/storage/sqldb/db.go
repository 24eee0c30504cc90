package sqldb

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"pet-care/internal/config"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
)

const (
	driverSQLite   = "sqlite" // modernc.org/sqlite, sin CGO
	driverPostgres = "pgx"
)

func init() {
	// sqlx no conoce el nombre "sqlite" de modernc; sin esto Rebind lo trata como UNKNOWN.
	sqlx.BindDriver(driverSQLite, sqlx.QUESTION)
}

// OpenSQLite abre (o crea) el archivo de la base, habilita foreign keys por conexión
// y aplica el schema.
func OpenSQLite(ctx context.Context, path string) (*sqlx.DB, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	q := url.Values{}
	q.Add("_pragma", "foreign_keys(1)")
	q.Add("_pragma", "busy_timeout(5000)")
	q.Add("_pragma", "journal_mode(WAL)")
	q.Set("_txlock", "immediate")

	db, err := sqlx.Open(driverSQLite, path+"?"+q.Encode())
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	db.SetMaxOpenConns(8)
	db.SetMaxIdleConns(4)
	db.SetConnMaxIdleTime(5 * time.Minute)

	if err := prepare(ctx, db, sqliteSchema); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// OpenPostgres abre un pool con pgx (database/sql) y aplica el schema.
func OpenPostgres(ctx context.Context, dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open(driverPostgres, dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	// defaults razonables para MVP (ajustable luego)
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := prepare(ctx, db, postgresSchema); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func prepare(ctx context.Context, db *sqlx.DB, schema string) error {
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}
	if err := ApplySchema(ctx, db, schema); err != nil {
		return err
	}
	return nil
}

// ApplySchema es idempotente (CREATE ... IF NOT EXISTS). Ejecuta sentencia por
// sentencia porque no todos los drivers aceptan varias en un solo Exec.
func ApplySchema(ctx context.Context, db *sqlx.DB, schema string) error {
	for _, stmt := range strings.Split(schema, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}

// Open elige el dialecto según la config. Con DriverMemory devuelve (nil, nil):
// el router cae a los repos en memoria.
func Open(ctx context.Context, cfg config.DB) (*sqlx.DB, error) {
	switch cfg.Driver {
	case config.DriverMemory:
		return nil, nil
	case config.DriverPostgres:
		return OpenPostgres(ctx, cfg.DSN)
	default:
		return OpenSQLite(ctx, cfg.Path)
	}
}

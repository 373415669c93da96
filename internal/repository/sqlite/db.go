// Package sqlite is the single-file content store used by sitectl for local
// development and small self-hosted installs.
package sqlite

import (
	"context"
	"embed"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	_ "studio-site/internal/repository/sqlite/migrations"
)

//go:embed migrations/*.sql migrations/*.go
var embedMigrations embed.FS

// Repository implements the content repository and the secret store on one
// SQLite connection.
type Repository struct {
	dbConn *sqlx.DB
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{dbConn: db}
}

// Close terminates the database connection.
func (repo *Repository) Close() error {
	if err := repo.dbConn.Close(); err != nil {
		return fmt.Errorf("closing repo : %w", err)
	}
	return nil
}

// Open connects to the SQLite file at name without touching its schema.
func Open(name string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("sqlite", fmt.Sprintf("%s?_journal=WAL&_timeout=5000&_fk=true", name))
	if err != nil {
		return nil, fmt.Errorf("connecting to db : %w", err)
	}

	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys = ON;"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}
	return db, nil
}

// Migrate applies every pending migration and returns the resulting schema
// version.
func Migrate(ctx context.Context, db *sqlx.DB) (int64, error) {
	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(string(goose.DialectSQLite3)); err != nil {
		return 0, fmt.Errorf("setting dialect for migrations : %w", err)
	}
	if err := goose.UpContext(ctx, db.DB, "migrations"); err != nil {
		return 0, fmt.Errorf("applying migration : %w", err)
	}
	version, err := goose.GetDBVersionContext(ctx, db.DB)
	if err != nil {
		return 0, fmt.Errorf("reading schema version: %w", err)
	}
	return version, nil
}

// New opens name and brings its schema up to date.
func New(ctx context.Context, name string) (*sqlx.DB, error) {
	db, err := Open(name)
	if err != nil {
		return nil, err
	}
	if _, err := Migrate(ctx, db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// withTx runs fn in a transaction, committing on success.
func (repo *Repository) withTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := repo.dbConn.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

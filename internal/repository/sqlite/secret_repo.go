package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"studio-site/internal/usecase"
)

var _ usecase.SecretStore = (*Repository)(nil)

// ErrSecretNotFound is returned by GetSecret for an unknown name.
var ErrSecretNotFound = usecase.ErrSecretNotFound

// GetSecret returns the value stored under name.
func (repo *Repository) GetSecret(ctx context.Context, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", errors.New("getting secret: name must not be empty")
	}
	var value string
	err := repo.dbConn.GetContext(ctx, &value, `SELECT value FROM secrets WHERE name = ?`, name)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("%w: %q", ErrSecretNotFound, name)
	}
	if err != nil {
		return "", fmt.Errorf("getting secret %q: %w", name, err)
	}
	if value == "" {
		return "", fmt.Errorf("secret %q is empty", name)
	}
	return value, nil
}

// PutSecret creates or overwrites the secret stored under name.
func (repo *Repository) PutSecret(ctx context.Context, name, value string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.New("putting secret: name must not be empty")
	}
	return repo.withTx(ctx, func(tx *sqlx.Tx) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO secrets (name, value, updated_at) VALUES (?, ?, ?)
			ON CONFLICT (name) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
			name, value, now())
		if err != nil {
			return fmt.Errorf("putting secret %q: %w", name, err)
		}
		return nil
	})
}

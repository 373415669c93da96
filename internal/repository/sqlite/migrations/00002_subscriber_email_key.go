package migrations

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

func init() {
	goose.AddMigrationContext(upSubscriberEmailKey, downSubscriberEmailKey)
}

// upSubscriberEmailKey adds the case-folded email column used for
// uniqueness. SQLite's lower() only folds ASCII, so the backfill runs in Go.
func upSubscriberEmailKey(ctx context.Context, tx *sql.Tx) error {
	if _, err := tx.ExecContext(ctx, `ALTER TABLE newsletter_subscribers ADD COLUMN email_key TEXT NOT NULL DEFAULT ''`); err != nil {
		return fmt.Errorf("adding email_key column : %w", err)
	}

	rows, err := tx.QueryContext(ctx, `SELECT id, email FROM newsletter_subscribers ORDER BY seq`)
	if err != nil {
		return fmt.Errorf("getting subscribers: %w", err)
	}

	type pair struct{ id, key string }
	var updates []pair
	seen := map[string]bool{}
	for rows.Next() {
		var id, email string
		if err := rows.Scan(&id, &email); err != nil {
			rows.Close()
			return fmt.Errorf("scanning subscriber: %w", err)
		}
		key := strings.ToLower(strings.TrimSpace(email))
		if seen[key] {
			// Later duplicates get a distinct key so the unique index builds.
			key = key + "#" + id
		}
		seen[key] = true
		updates = append(updates, pair{id: id, key: key})
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return fmt.Errorf("iterating subscribers: %w", err)
	}
	rows.Close()

	for _, u := range updates {
		if _, err := tx.ExecContext(ctx, `UPDATE newsletter_subscribers SET email_key = ? WHERE id = ?`, u.key, u.id); err != nil {
			return fmt.Errorf("updating subscriber %s : %w", u.id, err)
		}
	}

	if _, err := tx.ExecContext(ctx, `CREATE UNIQUE INDEX idx_newsletter_email_key ON newsletter_subscribers (email_key)`); err != nil {
		return fmt.Errorf("creating email_key index: %w", err)
	}
	return nil
}

func downSubscriberEmailKey(ctx context.Context, tx *sql.Tx) error {
	if _, err := tx.ExecContext(ctx, `DROP INDEX IF EXISTS idx_newsletter_email_key`); err != nil {
		return fmt.Errorf("dropping email_key index: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `ALTER TABLE newsletter_subscribers DROP COLUMN email_key`); err != nil {
		return fmt.Errorf("dropping email_key column: %w", err)
	}
	return nil
}

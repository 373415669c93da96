package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"studio-site/internal/domain"
	"studio-site/internal/usecase"
)

var _ usecase.ContentRepository = (*Repository)(nil)

// singletonID is the id column value of singleton records.
const singletonID = ""

type recordRow struct {
	Collection    string `db:"collection"`
	ID            string `db:"id"`
	Data          string `db:"data"`
	SchemaVersion int    `db:"schema_version"`
	Seq           int64  `db:"seq"`
	UpdatedAt     string `db:"updated_at"`
}

func (r recordRow) record() (domain.Record, error) {
	rec := domain.Record{
		Collection:    r.Collection,
		ID:            r.ID,
		Data:          []byte(r.Data),
		SchemaVersion: r.SchemaVersion,
		Seq:           r.Seq,
	}
	if r.UpdatedAt != "" {
		t, err := time.Parse(time.RFC3339Nano, r.UpdatedAt)
		if err != nil {
			return domain.Record{}, fmt.Errorf("parsing updated_at of %s/%s: %w", r.Collection, r.ID, err)
		}
		rec.UpdatedAt = t
	}
	return rec, nil
}

func rowOf(rec domain.Record) recordRow {
	updated := ""
	if !rec.UpdatedAt.IsZero() {
		updated = rec.UpdatedAt.UTC().Format(time.RFC3339Nano)
	}
	return recordRow{
		Collection:    rec.Collection,
		ID:            rec.ID,
		Data:          string(rec.Data),
		SchemaVersion: rec.SchemaVersion,
		Seq:           rec.Seq,
		UpdatedAt:     updated,
	}
}

const (
	selectRecord = `SELECT collection, id, data, schema_version, seq, updated_at FROM content_records`

	// upsertRecord keeps the seq of an existing row.
	upsertRecord = `INSERT INTO content_records (collection, id, data, schema_version, seq, updated_at)
		VALUES (:collection, :id, :data, :schema_version, :seq, :updated_at)
		ON CONFLICT (collection, id) DO UPDATE SET
			data = excluded.data,
			schema_version = excluded.schema_version,
			updated_at = excluded.updated_at`

	insertMarker = `INSERT INTO collection_markers (collection, created_at) VALUES (?, ?)
		ON CONFLICT (collection) DO NOTHING`
)

func (repo *Repository) getRecord(ctx context.Context, key, id string) (domain.Record, bool, error) {
	var row recordRow
	err := repo.dbConn.GetContext(ctx, &row, selectRecord+` WHERE collection = ? AND id = ?`, key, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Record{}, false, nil
	}
	if err != nil {
		return domain.Record{}, false, fmt.Errorf("getting record %s/%s: %w", key, id, err)
	}
	rec, err := row.record()
	if err != nil {
		return domain.Record{}, false, err
	}
	return rec, true, nil
}

func (repo *Repository) GetSingleton(ctx context.Context, key string) (domain.Record, bool, error) {
	return repo.getRecord(ctx, key, singletonID)
}

func (repo *Repository) PutSingleton(ctx context.Context, rec domain.Record) error {
	if rec.Collection == "" {
		return errors.New("putting singleton: collection is required")
	}
	rec.ID = singletonID
	return repo.withTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.NamedExecContext(ctx, upsertRecord, rowOf(rec)); err != nil {
			return fmt.Errorf("putting singleton %s: %w", rec.Collection, err)
		}
		return nil
	})
}

func (repo *Repository) ListCollection(ctx context.Context, key string) ([]domain.Record, bool, error) {
	var rows []recordRow
	err := repo.dbConn.SelectContext(ctx, &rows,
		selectRecord+` WHERE collection = ? AND id != ? ORDER BY seq, id`, key, singletonID)
	if err != nil {
		return nil, false, fmt.Errorf("listing collection %s: %w", key, err)
	}

	var marked int
	if err := repo.dbConn.GetContext(ctx, &marked, `SELECT COUNT(*) FROM collection_markers WHERE collection = ?`, key); err != nil {
		return nil, false, fmt.Errorf("reading marker of %s: %w", key, err)
	}

	recs := make([]domain.Record, 0, len(rows))
	for _, row := range rows {
		rec, err := row.record()
		if err != nil {
			return nil, false, err
		}
		recs = append(recs, rec)
	}
	return recs, marked > 0, nil
}

func (repo *Repository) GetItem(ctx context.Context, key, id string) (domain.Record, bool, error) {
	if id == singletonID {
		return domain.Record{}, false, nil
	}
	return repo.getRecord(ctx, key, id)
}

func (repo *Repository) SeedCollection(ctx context.Context, key string, recs []domain.Record) (bool, error) {
	seeded := false
	err := repo.withTx(ctx, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, insertMarker, key, now())
		if err != nil {
			return fmt.Errorf("inserting marker of %s: %w", key, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("inserting marker of %s: %w", key, err)
		}
		if n == 0 {
			return nil
		}
		for _, rec := range recs {
			rec.Collection = key
			if _, err := tx.NamedExecContext(ctx, upsertRecord, rowOf(rec)); err != nil {
				return fmt.Errorf("seeding %s/%s: %w", key, rec.ID, err)
			}
		}
		seeded = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return seeded, nil
}

func (repo *Repository) PutItem(ctx context.Context, rec domain.Record) error {
	if rec.Collection == "" || rec.ID == "" {
		return errors.New("putting item: collection and id are required")
	}
	return repo.withTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.NamedExecContext(ctx, upsertRecord, rowOf(rec)); err != nil {
			return fmt.Errorf("putting item %s/%s: %w", rec.Collection, rec.ID, err)
		}
		return nil
	})
}

func (repo *Repository) DeleteItem(ctx context.Context, key, id string) (bool, error) {
	if id == singletonID {
		return false, nil
	}
	deleted := false
	err := repo.withTx(ctx, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, `DELETE FROM content_records WHERE collection = ? AND id = ?`, key, id)
		if err != nil {
			return fmt.Errorf("deleting item %s/%s: %w", key, id, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("deleting item %s/%s: %w", key, id, err)
		}
		deleted = n > 0
		return nil
	})
	return deleted, err
}

func (repo *Repository) ReplaceCollection(ctx context.Context, key string, recs []domain.Record) error {
	return repo.withTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM content_records WHERE collection = ? AND id != ?`, key, singletonID); err != nil {
			return fmt.Errorf("clearing collection %s: %w", key, err)
		}
		for _, rec := range recs {
			rec.Collection = key
			if _, err := tx.NamedExecContext(ctx, upsertRecord, rowOf(rec)); err != nil {
				return fmt.Errorf("writing %s/%s: %w", key, rec.ID, err)
			}
		}
		if _, err := tx.ExecContext(ctx, insertMarker, key, now()); err != nil {
			return fmt.Errorf("inserting marker of %s: %w", key, err)
		}
		return nil
	})
}

type subscriberRow struct {
	ID             string         `db:"id"`
	Email          string         `db:"email"`
	SubscribedAt   string         `db:"subscribed_at"`
	UnsubscribedAt sql.NullString `db:"unsubscribed_at"`
}

func (r subscriberRow) subscriber() domain.NewsletterSubscriber {
	sub := domain.NewsletterSubscriber{ID: r.ID, Email: r.Email, SubscribedAt: r.SubscribedAt}
	if r.UnsubscribedAt.Valid {
		at := r.UnsubscribedAt.String
		sub.UnsubscribedAt = &at
	}
	return sub
}

func emailKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (repo *Repository) Subscribe(ctx context.Context, sub domain.NewsletterSubscriber, seq int64) (bool, error) {
	key := emailKey(sub.Email)
	if key == "" {
		return false, errors.New("subscribing: email is required")
	}

	created := false
	err := repo.withTx(ctx, func(tx *sqlx.Tx) error {
		var existing subscriberRow
		err := tx.GetContext(ctx, &existing,
			`SELECT id, email, subscribed_at, unsubscribed_at FROM newsletter_subscribers WHERE email_key = ?`, key)
		switch {
		case errors.Is(err, sql.ErrNoRows):
			_, err := tx.ExecContext(ctx,
				`INSERT INTO newsletter_subscribers (id, email, email_key, subscribed_at, seq) VALUES (?, ?, ?, ?, ?)`,
				sub.ID, strings.TrimSpace(sub.Email), key, sub.SubscribedAt, seq)
			if err != nil {
				return fmt.Errorf("inserting subscriber: %w", err)
			}
			created = true
		case err != nil:
			return fmt.Errorf("getting subscriber: %w", err)
		case !existing.UnsubscribedAt.Valid:
			// Already active.
		default:
			_, err := tx.ExecContext(ctx,
				`UPDATE newsletter_subscribers SET unsubscribed_at = NULL, subscribed_at = ? WHERE id = ?`,
				sub.SubscribedAt, existing.ID)
			if err != nil {
				return fmt.Errorf("reactivating subscriber %s: %w", existing.ID, err)
			}
			created = true
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return created, nil
}

func (repo *Repository) Unsubscribe(ctx context.Context, email, at string) (bool, error) {
	changed := false
	err := repo.withTx(ctx, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx,
			`UPDATE newsletter_subscribers SET unsubscribed_at = ? WHERE email_key = ? AND unsubscribed_at IS NULL`,
			at, emailKey(email))
		if err != nil {
			return fmt.Errorf("unsubscribing: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("unsubscribing: %w", err)
		}
		changed = n > 0
		return nil
	})
	return changed, err
}

func (repo *Repository) ListSubscribers(ctx context.Context) ([]domain.NewsletterSubscriber, error) {
	var rows []subscriberRow
	err := repo.dbConn.SelectContext(ctx, &rows,
		`SELECT id, email, subscribed_at, unsubscribed_at FROM newsletter_subscribers ORDER BY seq, id`)
	if err != nil {
		return nil, fmt.Errorf("listing subscribers: %w", err)
	}
	subs := make([]domain.NewsletterSubscriber, 0, len(rows))
	for _, row := range rows {
		subs = append(subs, row.subscriber())
	}
	return subs, nil
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"studio-site/internal/domain"
)

// ContentRepository stores one record per entity. Collection records are
// returned in ascending Seq order; the bool from ListCollection reports
// whether the collection was ever written.
type ContentRepository interface {
	GetSingleton(ctx context.Context, key string) (domain.Record, bool, error)
	PutSingleton(ctx context.Context, rec domain.Record) error

	ListCollection(ctx context.Context, key string) ([]domain.Record, bool, error)
	GetItem(ctx context.Context, key, id string) (domain.Record, bool, error)
	// SeedCollection writes the marker and recs atomically unless the
	// collection is already initialized, in which case it reports false.
	SeedCollection(ctx context.Context, key string, recs []domain.Record) (bool, error)
	// PutItem upserts rec; an existing record keeps its original Seq.
	PutItem(ctx context.Context, rec domain.Record) error
	DeleteItem(ctx context.Context, key, id string) (bool, error)
	ReplaceCollection(ctx context.Context, key string, recs []domain.Record) error

	// Subscribe inserts sub, or reactivates an unsubscribed record with the
	// same lowercased email. It reports false when the email is active.
	Subscribe(ctx context.Context, sub domain.NewsletterSubscriber, seq int64) (bool, error)
	Unsubscribe(ctx context.Context, email, at string) (bool, error)
	ListSubscribers(ctx context.Context) ([]domain.NewsletterSubscriber, error)
}

type ContentService struct {
	repo         ContentRepository
	secrets      SecretStore
	secretPrefix string
	now          func() time.Time
}

func NewContentService(repo ContentRepository, secrets SecretStore, secretPrefix string) (*ContentService, error) {
	if repo == nil {
		return nil, errors.New("usecase: content repository must not be nil")
	}
	if secrets == nil {
		return nil, errors.New("usecase: secret store must not be nil")
	}
	secretPrefix = strings.TrimRight(strings.TrimSpace(secretPrefix), "/")
	if secretPrefix == "" {
		return nil, errors.New("usecase: secret prefix must not be empty")
	}
	return &ContentService{
		repo:         repo,
		secrets:      secrets,
		secretPrefix: secretPrefix,
		now:          time.Now,
	}, nil
}

func (s *ContentService) timestamp() string {
	return s.now().UTC().Format(time.RFC3339Nano)
}

// nextSeq orders new items after the seeded defaults, which use 1..n.
func (s *ContentService) nextSeq() int64 {
	return s.now().UnixNano()
}

func (s *ContentService) newRecord(key, id string, v any, seq int64) (domain.Record, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return domain.Record{}, newError(ErrorInternal, "content_encode_error", err)
	}
	return domain.Record{
		Collection:    key,
		ID:            id,
		Data:          data,
		SchemaVersion: currentVersion(key),
		Seq:           seq,
		UpdatedAt:     s.now().UTC(),
	}, nil
}

func getSingleton[T any](ctx context.Context, s *ContentService, key string, def T) (T, error) {
	rec, ok, err := s.repo.GetSingleton(ctx, key)
	if err != nil {
		return def, newError(ErrorInternal, "content_load_error", err)
	}
	if !ok {
		return def, nil
	}
	var out T
	if err := decodeRecord(key, rec, &out); err != nil {
		return def, err
	}
	return out, nil
}

func saveSingleton[T any](ctx context.Context, s *ContentService, key string, v T) error {
	rec, err := s.newRecord(key, "", v, 0)
	if err != nil {
		return err
	}
	if err := s.repo.PutSingleton(ctx, rec); err != nil {
		return newError(ErrorInternal, "content_write_error", err)
	}
	return nil
}

// collection binds a collection key to its defaults and id accessor.
type collection[T any] struct {
	key      string
	defaults func() []T
	idOf     func(T) string
}

func (c collection[T]) list(ctx context.Context, s *ContentService) ([]T, error) {
	recs, initialized, err := s.repo.ListCollection(ctx, c.key)
	if err != nil {
		return nil, newError(ErrorInternal, "content_load_error", err)
	}
	if !initialized {
		return c.defaults(), nil
	}
	out := make([]T, 0, len(recs))
	for _, rec := range recs {
		var v T
		if err := decodeRecord(c.key, rec, &v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func (c collection[T]) get(ctx context.Context, s *ContentService, id string) (T, bool, error) {
	var v T
	rec, ok, err := s.repo.GetItem(ctx, c.key, id)
	if err != nil {
		return v, false, newError(ErrorInternal, "content_load_error", err)
	}
	if !ok {
		return v, false, nil
	}
	if err := decodeRecord(c.key, rec, &v); err != nil {
		return v, false, err
	}
	return v, true, nil
}

// ensureSeeded persists the defaults the first time a collection is
// mutated, so edits apply on top of what readers were already shown.
func (c collection[T]) ensureSeeded(ctx context.Context, s *ContentService) error {
	defaults := c.defaults()
	recs := make([]domain.Record, 0, len(defaults))
	for i, v := range defaults {
		rec, err := s.newRecord(c.key, c.idOf(v), v, int64(i+1))
		if err != nil {
			return err
		}
		recs = append(recs, rec)
	}
	if _, err := s.repo.SeedCollection(ctx, c.key, recs); err != nil {
		return newError(ErrorInternal, "content_seed_error", err)
	}
	return nil
}

func (c collection[T]) put(ctx context.Context, s *ContentService, v T) error {
	if err := c.ensureSeeded(ctx, s); err != nil {
		return err
	}
	rec, err := s.newRecord(c.key, c.idOf(v), v, s.nextSeq())
	if err != nil {
		return err
	}
	if err := s.repo.PutItem(ctx, rec); err != nil {
		return newError(ErrorInternal, "content_write_error", err)
	}
	return nil
}

// delete is idempotent: removing an unknown id is not an error.
func (c collection[T]) delete(ctx context.Context, s *ContentService, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return newError(ErrorInvalidInput, "id is required", nil)
	}
	if err := c.ensureSeeded(ctx, s); err != nil {
		return err
	}
	if _, err := s.repo.DeleteItem(ctx, c.key, id); err != nil {
		return newError(ErrorInternal, "content_delete_error", err)
	}
	return nil
}

func (c collection[T]) replace(ctx context.Context, s *ContentService, items []T) error {
	recs := make([]domain.Record, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for i, v := range items {
		id := c.idOf(v)
		if _, dup := seen[id]; dup {
			return newError(ErrorInvalidInput, "duplicate id "+id, nil)
		}
		seen[id] = struct{}{}
		rec, err := s.newRecord(c.key, id, v, int64(i+1))
		if err != nil {
			return err
		}
		recs = append(recs, rec)
	}
	if err := s.repo.ReplaceCollection(ctx, c.key, recs); err != nil {
		return newError(ErrorInternal, "content_write_error", err)
	}
	return nil
}

// ensureID fills an empty id with a fresh uuid.
func ensureID(id string) string {
	id = strings.TrimSpace(id)
	if id == "" {
		return newUUID()
	}
	return id
}

func validEmail(email string) bool {
	email = strings.TrimSpace(email)
	return email != "" && strings.Contains(email, "@")
}

func reverse[T any](items []T) []T {
	for i, j := 0, len(items)-1; i < j; i, j = i+1, j-1 {
		items[i], items[j] = items[j], items[i]
	}
	return items
}

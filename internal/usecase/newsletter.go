package usecase

import (
	"context"
	"strings"

	"studio-site/internal/domain"
)

func (s *ContentService) GetNewsletterSubscribers(ctx context.Context) ([]domain.NewsletterSubscriber, error) {
	subs, err := s.repo.ListSubscribers(ctx)
	if err != nil {
		return nil, newError(ErrorInternal, "newsletter_load_error", err)
	}
	return subs, nil
}

// SubscribeNewsletter returns false when the email, compared
// case-insensitively, is already actively subscribed. An unsubscribed email
// is reactivated under its original id.
func (s *ContentService) SubscribeNewsletter(ctx context.Context, email string) (bool, error) {
	email = strings.TrimSpace(email)
	if !validEmail(email) {
		return false, newError(ErrorInvalidInput, "a valid email is required", nil)
	}
	sub := domain.NewsletterSubscriber{
		ID:           newUUID(),
		Email:        email,
		SubscribedAt: s.timestamp(),
	}
	ok, err := s.repo.Subscribe(ctx, sub, s.nextSeq())
	if err != nil {
		return false, newError(ErrorInternal, "newsletter_write_error", err)
	}
	return ok, nil
}

// UnsubscribeNewsletter stamps unsubscribedAt on the matching record. An
// unknown email is a no-op.
func (s *ContentService) UnsubscribeNewsletter(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if !validEmail(email) {
		return newError(ErrorInvalidInput, "a valid email is required", nil)
	}
	if _, err := s.repo.Unsubscribe(ctx, email, s.timestamp()); err != nil {
		return newError(ErrorInternal, "newsletter_write_error", err)
	}
	return nil
}

package usecase

import (
	"context"
	"errors"
	"strings"

	"studio-site/internal/domain"
)

func (s *ContentService) GetHero(ctx context.Context) (domain.HeroContent, error) {
	return getSingleton(ctx, s, domain.KeyHero, defaultHero())
}

func (s *ContentService) SaveHero(ctx context.Context, v domain.HeroContent) error {
	return saveSingleton(ctx, s, domain.KeyHero, v)
}

func (s *ContentService) GetAbout(ctx context.Context) (domain.AboutContent, error) {
	return getSingleton(ctx, s, domain.KeyAbout, defaultAbout())
}

func (s *ContentService) SaveAbout(ctx context.Context, v domain.AboutContent) error {
	return saveSingleton(ctx, s, domain.KeyAbout, v)
}

func (s *ContentService) GetContact(ctx context.Context) (domain.ContactInfo, error) {
	return getSingleton(ctx, s, domain.KeyContact, defaultContact())
}

func (s *ContentService) SaveContact(ctx context.Context, v domain.ContactInfo) error {
	return saveSingleton(ctx, s, domain.KeyContact, v)
}

func (s *ContentService) GetSocialLinks(ctx context.Context) (domain.SocialLinks, error) {
	return getSingleton(ctx, s, domain.KeySocialLinks, defaultSocialLinks())
}

func (s *ContentService) SaveSocialLinks(ctx context.Context, v domain.SocialLinks) error {
	return saveSingleton(ctx, s, domain.KeySocialLinks, v)
}

func (s *ContentService) GetChatConfig(ctx context.Context) (domain.ChatConfig, error) {
	return getSingleton(ctx, s, domain.KeyChatConfig, defaultChatConfig())
}

// SaveChatConfig stores the provider settings. A non-empty APIKey goes to
// the secret store and never into the content record.
func (s *ContentService) SaveChatConfig(ctx context.Context, in domain.ProviderConfig) (domain.ChatConfig, error) {
	provider := strings.TrimSpace(in.Provider)
	if provider == "" {
		provider = domain.ProviderDefault
	}
	if _, known := domain.ProviderModels[provider]; !known && provider != domain.ProviderDefault {
		return domain.ChatConfig{}, newError(ErrorInvalidInput, "Unsupported provider", nil)
	}

	keyName := ProviderKeyName(s.secretPrefix, provider)
	hasKey := false
	if key := strings.TrimSpace(in.APIKey); key != "" {
		if err := s.secrets.PutSecret(ctx, keyName, key); err != nil {
			return domain.ChatConfig{}, newError(ErrorInternal, "secret_write_error", err)
		}
		hasKey = true
	} else {
		_, err := s.secrets.GetSecret(ctx, keyName)
		switch {
		case err == nil:
			hasKey = true
		case !errors.Is(err, ErrSecretNotFound):
			return domain.ChatConfig{}, newError(ErrorInternal, "secret_read_error", err)
		}
	}

	cfg := domain.ChatConfig{
		Provider:     provider,
		Model:        strings.TrimSpace(in.Model),
		SystemPrompt: in.SystemPrompt,
		HasAPIKey:    hasKey,
	}
	if err := saveSingleton(ctx, s, domain.KeyChatConfig, cfg); err != nil {
		return domain.ChatConfig{}, err
	}
	return cfg, nil
}

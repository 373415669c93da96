package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"studio-site/internal/domain"
)

const defaultKeyMissing = "LOVABLE_API_KEY not configured"

type LLMClient interface {
	Complete(ctx context.Context, provider, apiKey string, conv domain.Conversation) (string, error)
	Supports(provider string) bool
}

// ErrSecretNotFound is wrapped by SecretStore implementations when nothing
// is stored under the requested name.
var ErrSecretNotFound = errors.New("secret not found")

// SecretStore keeps provider API keys out of content records.
type SecretStore interface {
	GetSecret(ctx context.Context, name string) (string, error)
	PutSecret(ctx context.Context, name, value string) error
}

type ChatConfigGetter interface {
	GetChatConfig(ctx context.Context) (domain.ChatConfig, error)
}

type httpStatusCoder interface {
	HTTPStatusCode() int
}

type ChatService struct {
	llm            LLMClient
	secrets        SecretStore
	configs        ChatConfigGetter
	secretPrefix   string
	defaultKeyName string

	keyMu      sync.RWMutex
	keyLoaded  bool
	defaultKey string
}

type ChatInput struct {
	Messages        []domain.ChatMessage
	Config          *domain.ProviderConfig
	UseStoredConfig bool
}

type ChatOutput struct {
	Response string
}

// NewChatService wires the chat proxy. defaultKeyName names the secret
// holding the built-in provider key; empty means the provider key path under
// secretPrefix.
func NewChatService(llm LLMClient, secrets SecretStore, configs ChatConfigGetter, secretPrefix, defaultKeyName string) (*ChatService, error) {
	if llm == nil {
		return nil, errors.New("usecase: llm client must not be nil")
	}
	if secrets == nil {
		return nil, errors.New("usecase: secret store must not be nil")
	}
	if configs == nil {
		return nil, errors.New("usecase: chat config getter must not be nil")
	}
	secretPrefix = strings.TrimRight(strings.TrimSpace(secretPrefix), "/")
	if secretPrefix == "" {
		return nil, errors.New("usecase: secret prefix must not be empty")
	}
	defaultKeyName = strings.TrimSpace(defaultKeyName)
	if defaultKeyName == "" {
		defaultKeyName = ProviderKeyName(secretPrefix, domain.ProviderDefault)
	}
	return &ChatService{
		llm:            llm,
		secrets:        secrets,
		configs:        configs,
		secretPrefix:   secretPrefix,
		defaultKeyName: defaultKeyName,
	}, nil
}

// Reply returns exactly one assistant message for in.Messages. An external
// provider is used only when the resolved config carries a key and names a
// provider other than the built-in one.
func (s *ChatService) Reply(ctx context.Context, in ChatInput) (ChatOutput, error) {
	if err := validateMessages(in.Messages); err != nil {
		return ChatOutput{}, err
	}

	cfg := in.Config
	if in.UseStoredConfig {
		stored, err := s.storedProviderConfig(ctx)
		if err != nil {
			return ChatOutput{}, err
		}
		cfg = stored
	}

	if cfg != nil && cfg.APIKey != "" && !usesDefaultProvider(cfg.Provider) {
		return s.replyExternal(ctx, *cfg, in.Messages)
	}
	return s.replyDefault(ctx, cfg, in.Messages)
}

func (s *ChatService) replyExternal(ctx context.Context, cfg domain.ProviderConfig, msgs []domain.ChatMessage) (ChatOutput, error) {
	provider := strings.TrimSpace(cfg.Provider)
	if !s.llm.Supports(provider) {
		return ChatOutput{}, newError(ErrorConfiguration, "Unsupported provider", nil)
	}
	reply, err := s.llm.Complete(ctx, provider, cfg.APIKey, buildConversation(cfg.Model, cfg.SystemPrompt, msgs))
	if err != nil {
		return ChatOutput{}, upstreamError("AI API", err)
	}
	return ChatOutput{Response: reply}, nil
}

func (s *ChatService) replyDefault(ctx context.Context, cfg *domain.ProviderConfig, msgs []domain.ChatMessage) (ChatOutput, error) {
	key, err := s.ensureDefaultKey(ctx)
	if err != nil {
		return ChatOutput{}, newError(ErrorConfiguration, defaultKeyMissing, err)
	}

	systemPrompt := DefaultSystemPrompt
	if cfg != nil && strings.TrimSpace(cfg.SystemPrompt) != "" {
		systemPrompt = cfg.SystemPrompt
	}
	reply, err := s.llm.Complete(ctx, domain.ProviderDefault, key, buildConversation("", systemPrompt, msgs))
	if err != nil {
		return ChatOutput{}, upstreamError("AI Gateway", err)
	}
	return ChatOutput{Response: reply}, nil
}

// storedProviderConfig resolves the admin chat settings and, when a key was
// saved for the chosen provider, the key itself.
func (s *ChatService) storedProviderConfig(ctx context.Context) (*domain.ProviderConfig, error) {
	stored, err := s.configs.GetChatConfig(ctx)
	if err != nil {
		return nil, newError(ErrorInternal, "chat_config_load_error", err)
	}
	cfg := &domain.ProviderConfig{
		Provider:     stored.Provider,
		Model:        stored.Model,
		SystemPrompt: stored.SystemPrompt,
	}
	if !stored.HasAPIKey || usesDefaultProvider(stored.Provider) {
		return cfg, nil
	}
	key, err := s.secrets.GetSecret(ctx, ProviderKeyName(s.secretPrefix, stored.Provider))
	if err != nil {
		return nil, newError(ErrorConfiguration, "provider API key not available", err)
	}
	cfg.APIKey = key
	return cfg, nil
}

func (s *ChatService) ensureDefaultKey(ctx context.Context) (string, error) {
	s.keyMu.RLock()
	if s.keyLoaded {
		key := s.defaultKey
		s.keyMu.RUnlock()
		return key, nil
	}
	s.keyMu.RUnlock()

	s.keyMu.Lock()
	defer s.keyMu.Unlock()
	if s.keyLoaded {
		return s.defaultKey, nil
	}

	raw, err := s.secrets.GetSecret(ctx, s.defaultKeyName)
	if err != nil {
		return "", fmt.Errorf("usecase: load default provider key: %w", err)
	}
	key, err := decodeToken(raw)
	if err != nil {
		return "", err
	}

	s.defaultKey = key
	s.keyLoaded = true
	return key, nil
}

// tokenPayload is the JSON shape accepted for stored keys; plain strings
// are accepted as well.
type tokenPayload struct {
	Token string `json:"token"`
}

func decodeToken(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "{") {
		var tp tokenPayload
		if err := json.Unmarshal([]byte(raw), &tp); err != nil {
			return "", fmt.Errorf("usecase: unmarshal token value as JSON: %w", err)
		}
		raw = strings.TrimSpace(tp.Token)
	}
	if raw == "" {
		return "", errors.New("usecase: API token is empty")
	}
	return raw, nil
}

// usesDefaultProvider reports whether provider selects the built-in
// gateway. An absent provider does.
func usesDefaultProvider(provider string) bool {
	provider = strings.TrimSpace(provider)
	return provider == "" || provider == domain.ProviderDefault
}

// upstreamError names the failing upstream ("AI API" or "AI Gateway") in
// the reason returned to callers.
func upstreamError(upstream string, err error) *Error {
	if status, ok := upstreamStatusCode(err); ok {
		return newError(ErrorUpstream, fmt.Sprintf("%s error: %d", upstream, status), err)
	}
	return newError(ErrorUpstream, upstream+" request failed", err)
}

func upstreamStatusCode(err error) (int, bool) {
	var statusErr httpStatusCoder
	if !errors.As(err, &statusErr) {
		return 0, false
	}
	return statusErr.HTTPStatusCode(), true
}

// ProviderKeyName is the secret name of a provider's API key.
func ProviderKeyName(prefix, provider string) string {
	return strings.TrimRight(prefix, "/") + "/chat/" + strings.TrimSpace(provider) + "/api-key"
}

var newUUID = func() string {
	return uuid.NewString()
}

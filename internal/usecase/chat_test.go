package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"studio-site/internal/domain"
)

type mockSecrets struct {
	vals     map[string]string
	err      error
	getCalls int
	puts     map[string]string
	putErr   error
}

func (m *mockSecrets) GetSecret(_ context.Context, name string) (string, error) {
	m.getCalls++
	if m.err != nil {
		return "", m.err
	}
	v, ok := m.vals[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrSecretNotFound, name)
	}
	return v, nil
}

func (m *mockSecrets) PutSecret(_ context.Context, name, value string) error {
	if m.putErr != nil {
		return m.putErr
	}
	if m.puts == nil {
		m.puts = map[string]string{}
	}
	if m.vals == nil {
		m.vals = map[string]string{}
	}
	m.puts[name] = value
	m.vals[name] = value
	return nil
}

type completeCall struct {
	provider string
	apiKey   string
	conv     domain.Conversation
}

type mockLLM struct {
	reply     string
	err       error
	supported map[string]bool
	calls     []completeCall
}

func (m *mockLLM) Complete(_ context.Context, provider, apiKey string, conv domain.Conversation) (string, error) {
	m.calls = append(m.calls, completeCall{provider: provider, apiKey: apiKey, conv: conv})
	return m.reply, m.err
}

func (m *mockLLM) Supports(provider string) bool {
	if m.supported == nil {
		return provider == domain.ProviderChatGPT || provider == domain.ProviderGrok ||
			provider == domain.ProviderDeepSeek || provider == domain.ProviderGemini ||
			provider == domain.ProviderDefault
	}
	return m.supported[provider]
}

type mockConfigs struct {
	cfg domain.ChatConfig
	err error
}

func (m *mockConfigs) GetChatConfig(_ context.Context) (domain.ChatConfig, error) {
	return m.cfg, m.err
}

type statusErr struct{ code int }

func (e *statusErr) Error() string       { return fmt.Sprintf("status %d", e.code) }
func (e *statusErr) HTTPStatusCode() int { return e.code }

func defaultSecrets() *mockSecrets {
	return &mockSecrets{vals: map[string]string{
		"/site/chat/lovable/api-key": `{"token":"gateway-key"}`,
	}}
}

func userMessages() []domain.ChatMessage {
	return []domain.ChatMessage{{Role: domain.RoleUser, Content: "What services do you offer?"}}
}

func newTestChatService(t *testing.T, llm LLMClient, secrets SecretStore, configs ChatConfigGetter) *ChatService {
	t.Helper()
	svc, err := NewChatService(llm, secrets, configs, "/site/", "")
	require.NoError(t, err)
	return svc
}

func expectError(t *testing.T, err error, code ErrorCode, reason string) {
	t.Helper()
	var usecaseErr *Error
	require.ErrorAs(t, err, &usecaseErr)
	require.Equal(t, code, usecaseErr.Code)
	if reason != "" {
		require.Equal(t, reason, usecaseErr.Reason)
	}
}

func TestNewChatService_ValidatesDependencies(t *testing.T) {
	_, err := NewChatService(nil, defaultSecrets(), &mockConfigs{}, "/site", "")
	require.Error(t, err)

	_, err = NewChatService(&mockLLM{}, nil, &mockConfigs{}, "/site", "")
	require.Error(t, err)

	_, err = NewChatService(&mockLLM{}, defaultSecrets(), nil, "/site", "")
	require.Error(t, err)

	_, err = NewChatService(&mockLLM{}, defaultSecrets(), &mockConfigs{}, " ", "")
	require.Error(t, err)
}

func TestReply_DefaultProviderWithoutConfig(t *testing.T) {
	llm := &mockLLM{reply: "We build AI products."}
	svc := newTestChatService(t, llm, defaultSecrets(), &mockConfigs{})

	out, err := svc.Reply(context.Background(), ChatInput{Messages: userMessages()})
	require.NoError(t, err)
	require.Equal(t, "We build AI products.", out.Response)

	require.Len(t, llm.calls, 1)
	call := llm.calls[0]
	require.Equal(t, domain.ProviderDefault, call.provider)
	require.Equal(t, "gateway-key", call.apiKey)
	require.Equal(t, DefaultSystemPrompt, call.conv.SystemPrompt)
	require.Contains(t, call.conv.SystemPrompt, "intelleeo")
	require.Equal(t, userMessages(), call.conv.Messages)
}

func TestReply_DefaultProviderUsesCallerPrompt(t *testing.T) {
	llm := &mockLLM{reply: "ok"}
	svc := newTestChatService(t, llm, defaultSecrets(), &mockConfigs{})

	cfg := &domain.ProviderConfig{Provider: domain.ProviderGemini, SystemPrompt: "Talk like a pirate"}
	_, err := svc.Reply(context.Background(), ChatInput{Messages: userMessages(), Config: cfg})
	require.NoError(t, err)
	require.Equal(t, domain.ProviderDefault, llm.calls[0].provider)
	require.Equal(t, "Talk like a pirate", llm.calls[0].conv.SystemPrompt)
}

func TestReply_LovableSentinelIgnoresKey(t *testing.T) {
	llm := &mockLLM{reply: "ok"}
	svc := newTestChatService(t, llm, defaultSecrets(), &mockConfigs{})

	cfg := &domain.ProviderConfig{Provider: domain.ProviderDefault, APIKey: "caller-key"}
	_, err := svc.Reply(context.Background(), ChatInput{Messages: userMessages(), Config: cfg})
	require.NoError(t, err)
	require.Equal(t, "gateway-key", llm.calls[0].apiKey)
}

func TestReply_ExternalProvider(t *testing.T) {
	llm := &mockLLM{reply: "From grok"}
	secrets := defaultSecrets()
	svc := newTestChatService(t, llm, secrets, &mockConfigs{})

	cfg := &domain.ProviderConfig{Provider: domain.ProviderGrok, APIKey: "xai-key", Model: " grok-2 ", SystemPrompt: "sys"}
	out, err := svc.Reply(context.Background(), ChatInput{Messages: userMessages(), Config: cfg})
	require.NoError(t, err)
	require.Equal(t, "From grok", out.Response)

	call := llm.calls[0]
	require.Equal(t, domain.ProviderGrok, call.provider)
	require.Equal(t, "xai-key", call.apiKey)
	require.Equal(t, "grok-2", call.conv.Model)
	require.Equal(t, "sys", call.conv.SystemPrompt)
	require.Zero(t, secrets.getCalls, "default key must not be loaded for external providers")
}

func TestReply_UnsupportedProvider(t *testing.T) {
	llm := &mockLLM{}
	svc := newTestChatService(t, llm, defaultSecrets(), &mockConfigs{})

	cfg := &domain.ProviderConfig{Provider: "claude", APIKey: "k"}
	_, err := svc.Reply(context.Background(), ChatInput{Messages: userMessages(), Config: cfg})
	expectError(t, err, ErrorConfiguration, "Unsupported provider")
	require.Empty(t, llm.calls)
}

func TestReply_AbsentProviderWithKeyUsesDefault(t *testing.T) {
	llm := &mockLLM{reply: "ok"}
	svc := newTestChatService(t, llm, defaultSecrets(), &mockConfigs{})

	for _, provider := range []string{"", "  "} {
		llm.calls = nil
		cfg := &domain.ProviderConfig{Provider: provider, APIKey: "sk-x", SystemPrompt: "custom"}
		out, err := svc.Reply(context.Background(), ChatInput{Messages: userMessages(), Config: cfg})
		require.NoError(t, err)
		require.Equal(t, "ok", out.Response)

		require.Len(t, llm.calls, 1)
		require.Equal(t, domain.ProviderDefault, llm.calls[0].provider)
		require.Equal(t, "gateway-key", llm.calls[0].apiKey)
		require.Equal(t, "custom", llm.calls[0].conv.SystemPrompt)
	}
}

func TestReply_ValidatesMessages(t *testing.T) {
	svc := newTestChatService(t, &mockLLM{}, defaultSecrets(), &mockConfigs{})

	_, err := svc.Reply(context.Background(), ChatInput{})
	expectError(t, err, ErrorInvalidInput, "messages must not be empty")

	_, err = svc.Reply(context.Background(), ChatInput{Messages: []domain.ChatMessage{{Role: "system", Content: "x"}}})
	expectError(t, err, ErrorInvalidInput, "message role must be user or assistant")
}

func TestReply_UpstreamStatusError(t *testing.T) {
	llm := &mockLLM{err: &statusErr{code: http.StatusBadGateway}}
	svc := newTestChatService(t, llm, defaultSecrets(), &mockConfigs{})

	out, err := svc.Reply(context.Background(), ChatInput{Messages: userMessages()})
	expectError(t, err, ErrorUpstream, "AI Gateway error: 502")
	require.Empty(t, out.Response)

	cfg := &domain.ProviderConfig{Provider: domain.ProviderDeepSeek, APIKey: "k"}
	out, err = svc.Reply(context.Background(), ChatInput{Messages: userMessages(), Config: cfg})
	expectError(t, err, ErrorUpstream, "AI API error: 502")
	require.Empty(t, out.Response)
}

func TestReply_UpstreamTransportError(t *testing.T) {
	llm := &mockLLM{err: errors.New("dial tcp: refused")}
	svc := newTestChatService(t, llm, defaultSecrets(), &mockConfigs{})

	cfg := &domain.ProviderConfig{Provider: domain.ProviderChatGPT, APIKey: "k"}
	_, err := svc.Reply(context.Background(), ChatInput{Messages: userMessages(), Config: cfg})
	expectError(t, err, ErrorUpstream, "AI API request failed")

	_, err = svc.Reply(context.Background(), ChatInput{Messages: userMessages()})
	expectError(t, err, ErrorUpstream, "AI Gateway request failed")
}

func TestReply_MissingDefaultKey(t *testing.T) {
	llm := &mockLLM{}
	svc := newTestChatService(t, llm, &mockSecrets{}, &mockConfigs{})

	_, err := svc.Reply(context.Background(), ChatInput{Messages: userMessages()})
	expectError(t, err, ErrorConfiguration, "LOVABLE_API_KEY not configured")
	require.Empty(t, llm.calls)
}

func TestReply_EmptyDefaultKey(t *testing.T) {
	secrets := &mockSecrets{vals: map[string]string{"/site/chat/lovable/api-key": `{"token":""}`}}
	svc := newTestChatService(t, &mockLLM{}, secrets, &mockConfigs{})

	_, err := svc.Reply(context.Background(), ChatInput{Messages: userMessages()})
	expectError(t, err, ErrorConfiguration, "LOVABLE_API_KEY not configured")
}

func TestReply_DefaultKeyCachedAfterSuccess(t *testing.T) {
	secrets := &mockSecrets{vals: map[string]string{"/site/chat/lovable/api-key": "plain-key"}}
	llm := &mockLLM{reply: "ok"}
	svc := newTestChatService(t, llm, secrets, &mockConfigs{})

	for i := 0; i < 3; i++ {
		_, err := svc.Reply(context.Background(), ChatInput{Messages: userMessages()})
		require.NoError(t, err)
	}
	require.Equal(t, 1, secrets.getCalls)
	require.Equal(t, "plain-key", llm.calls[2].apiKey)
}

func TestReply_DefaultKeyRetriedAfterFailure(t *testing.T) {
	secrets := &mockSecrets{err: errors.New("temporary ssm failure")}
	llm := &mockLLM{reply: "ok"}
	svc := newTestChatService(t, llm, secrets, &mockConfigs{})

	_, err := svc.Reply(context.Background(), ChatInput{Messages: userMessages()})
	require.Error(t, err)

	secrets.err = nil
	secrets.vals = map[string]string{"/site/chat/lovable/api-key": "k"}
	_, err = svc.Reply(context.Background(), ChatInput{Messages: userMessages()})
	require.NoError(t, err)
}

func TestReply_CustomDefaultKeyName(t *testing.T) {
	secrets := &mockSecrets{vals: map[string]string{"/ops/gateway-token": `{"token":"custom"}`}}
	llm := &mockLLM{reply: "ok"}
	svc, err := NewChatService(llm, secrets, &mockConfigs{}, "/site", "/ops/gateway-token")
	require.NoError(t, err)

	_, err = svc.Reply(context.Background(), ChatInput{Messages: userMessages()})
	require.NoError(t, err)
	require.Equal(t, "custom", llm.calls[0].apiKey)
}

// ---------------------------------------------------------------------------
// useStoredConfig
// ---------------------------------------------------------------------------

func TestReply_UseStoredConfigRoutesToStoredProvider(t *testing.T) {
	secrets := defaultSecrets()
	secrets.vals["/site/chat/deepseek/api-key"] = "ds-key"
	configs := &mockConfigs{cfg: domain.ChatConfig{
		Provider:     domain.ProviderDeepSeek,
		Model:        "deepseek-coder",
		SystemPrompt: "stored prompt",
		HasAPIKey:    true,
	}}
	llm := &mockLLM{reply: "stored path"}
	svc := newTestChatService(t, llm, secrets, configs)

	caller := &domain.ProviderConfig{Provider: domain.ProviderChatGPT, APIKey: "ignored"}
	out, err := svc.Reply(context.Background(), ChatInput{Messages: userMessages(), Config: caller, UseStoredConfig: true})
	require.NoError(t, err)
	require.Equal(t, "stored path", out.Response)

	call := llm.calls[0]
	require.Equal(t, domain.ProviderDeepSeek, call.provider)
	require.Equal(t, "ds-key", call.apiKey)
	require.Equal(t, "deepseek-coder", call.conv.Model)
	require.Equal(t, "stored prompt", call.conv.SystemPrompt)
}

func TestReply_UseStoredConfigWithoutKeyFallsBackToDefault(t *testing.T) {
	configs := &mockConfigs{cfg: domain.ChatConfig{Provider: domain.ProviderGemini, SystemPrompt: "stored prompt"}}
	llm := &mockLLM{reply: "ok"}
	svc := newTestChatService(t, llm, defaultSecrets(), configs)

	_, err := svc.Reply(context.Background(), ChatInput{Messages: userMessages(), UseStoredConfig: true})
	require.NoError(t, err)
	require.Equal(t, domain.ProviderDefault, llm.calls[0].provider)
	require.Equal(t, "stored prompt", llm.calls[0].conv.SystemPrompt)
}

func TestReply_UseStoredConfigMissingSecret(t *testing.T) {
	configs := &mockConfigs{cfg: domain.ChatConfig{Provider: domain.ProviderGrok, HasAPIKey: true}}
	svc := newTestChatService(t, &mockLLM{}, defaultSecrets(), configs)

	_, err := svc.Reply(context.Background(), ChatInput{Messages: userMessages(), UseStoredConfig: true})
	expectError(t, err, ErrorConfiguration, "provider API key not available")
}

func TestReply_UseStoredConfigLoadError(t *testing.T) {
	configs := &mockConfigs{err: errors.New("dynamodb down")}
	svc := newTestChatService(t, &mockLLM{}, defaultSecrets(), configs)

	_, err := svc.Reply(context.Background(), ChatInput{Messages: userMessages(), UseStoredConfig: true})
	expectError(t, err, ErrorInternal, "chat_config_load_error")
}

func TestProviderKeyName(t *testing.T) {
	require.Equal(t, "/site/chat/grok/api-key", ProviderKeyName("/site/", domain.ProviderGrok))
	require.Equal(t, "site/chat/gemini/api-key", ProviderKeyName("site", " gemini "))
}

func TestDecodeToken(t *testing.T) {
	v, err := decodeToken(`{"token":"abc"}`)
	require.NoError(t, err)
	require.Equal(t, "abc", v)

	v, err = decodeToken("  raw-key \n")
	require.NoError(t, err)
	require.Equal(t, "raw-key", v)

	_, err = decodeToken(`{"broken`)
	require.ErrorContains(t, err, "unmarshal")

	_, err = decodeToken(" ")
	require.ErrorContains(t, err, "API token is empty")
}

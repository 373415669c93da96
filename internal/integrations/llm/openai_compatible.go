package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"studio-site/internal/domain"
)

const (
	chatGPTURL          = "https://api.openai.com/v1/chat/completions"
	grokURL             = "https://api.x.ai/v1/chat/completions"
	deepSeekURL         = "https://api.deepseek.com/v1/chat/completions"
	defaultGatewayURL   = "https://ai.gateway.lovable.dev/v1/chat/completions"
	defaultGatewayModel = "google/gemini-2.5-flash"

	noResponse        = "No response"
	gatewayNoResponse = "I apologize, but I'm having trouble responding right now."
)

// chatRequest is the Chat Completions request shape shared by OpenAI, xAI,
// DeepSeek and the default gateway.
type chatRequest struct {
	Model       string               `json:"model"`
	Messages    []domain.ChatMessage `json:"messages"`
	Temperature *float64             `json:"temperature,omitempty"`
	MaxTokens   *int                 `json:"max_tokens,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message domain.ChatMessage `json:"message"`
	} `json:"choices"`
}

// OpenAICompatible speaks the Chat Completions wire format with a Bearer key.
type OpenAICompatible struct {
	name         string
	url          string
	defaultModel string
	fixedModel   bool
	temperature  *float64
	maxTokens    *int
	fallback     string
}

func NewChatGPT(endpoint string) *OpenAICompatible {
	return &OpenAICompatible{
		name:         domain.ProviderChatGPT,
		url:          firstNonEmpty(endpoint, chatGPTURL),
		defaultModel: "gpt-4o-mini",
		fallback:     noResponse,
	}
}

func NewGrok(endpoint string) *OpenAICompatible {
	return &OpenAICompatible{
		name:         domain.ProviderGrok,
		url:          firstNonEmpty(endpoint, grokURL),
		defaultModel: "grok-2-mini",
		fallback:     noResponse,
	}
}

func NewDeepSeek(endpoint string) *OpenAICompatible {
	return &OpenAICompatible{
		name:         domain.ProviderDeepSeek,
		url:          firstNonEmpty(endpoint, deepSeekURL),
		defaultModel: "deepseek-chat",
		fallback:     noResponse,
	}
}

// NewDefaultGateway is the built-in provider used when no external provider
// is configured. Its model and sampling settings are fixed.
func NewDefaultGateway(endpoint string) *OpenAICompatible {
	temperature := 0.7
	maxTokens := 800
	return &OpenAICompatible{
		name:         domain.ProviderDefault,
		url:          firstNonEmpty(endpoint, defaultGatewayURL),
		defaultModel: defaultGatewayModel,
		fixedModel:   true,
		temperature:  &temperature,
		maxTokens:    &maxTokens,
		fallback:     gatewayNoResponse,
	}
}

func (p *OpenAICompatible) Name() string { return p.name }

func (p *OpenAICompatible) BuildRequest(ctx context.Context, apiKey string, conv domain.Conversation) (*http.Request, error) {
	model := p.defaultModel
	if !p.fixedModel && conv.Model != "" {
		model = conv.Model
	}

	messages := make([]domain.ChatMessage, 0, len(conv.Messages)+1)
	messages = append(messages, domain.ChatMessage{Role: domain.RoleSystem, Content: conv.SystemPrompt})
	messages = append(messages, conv.Messages...)

	body, err := json.Marshal(chatRequest{
		Model:       model,
		Messages:    messages,
		Temperature: p.temperature,
		MaxTokens:   p.maxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)
	return req, nil
}

func (p *OpenAICompatible) ParseResponse(body []byte) (string, error) {
	var payload chatResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(payload.Choices) == 0 || payload.Choices[0].Message.Content == "" {
		return p.fallback, nil
	}
	return payload.Choices[0].Message.Content, nil
}

package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"studio-site/internal/domain"
)

const (
	geminiBaseURL      = "https://generativelanguage.googleapis.com/v1beta/models"
	geminiDefaultModel = "gemini-2.0-flash-exp"
)

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

// geminiRequest has no messages field: the system prompt travels in
// system_instruction and turns in contents.
type geminiRequest struct {
	SystemInstruction geminiContent   `json:"system_instruction"`
	Contents          []geminiContent `json:"contents"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// Gemini talks to the Generative Language generateContent API. The key is
// passed as a query parameter.
type Gemini struct {
	baseURL string
}

func NewGemini(baseURL string) *Gemini {
	return &Gemini{baseURL: strings.TrimRight(firstNonEmpty(baseURL, geminiBaseURL), "/")}
}

func (g *Gemini) Name() string { return domain.ProviderGemini }

func (g *Gemini) generateURL(model, apiKey string) string {
	if model == "" {
		model = geminiDefaultModel
	}
	return g.baseURL + "/" + url.PathEscape(model) + ":generateContent?key=" + url.QueryEscape(apiKey)
}

func (g *Gemini) BuildRequest(ctx context.Context, apiKey string, conv domain.Conversation) (*http.Request, error) {
	contents := make([]geminiContent, 0, len(conv.Messages))
	for _, m := range conv.Messages {
		role := domain.RoleUser
		if m.Role == domain.RoleAssistant {
			role = "model"
		}
		contents = append(contents, geminiContent{Role: role, Parts: []geminiPart{{Text: m.Content}}})
	}

	body, err := json.Marshal(geminiRequest{
		SystemInstruction: geminiContent{Parts: []geminiPart{{Text: conv.SystemPrompt}}},
		Contents:          contents,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.generateURL(conv.Model, apiKey), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

func (g *Gemini) ParseResponse(body []byte) (string, error) {
	var payload geminiResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(payload.Candidates) == 0 {
		return noResponse, nil
	}
	parts := payload.Candidates[0].Content.Parts
	if len(parts) == 0 || parts[0].Text == "" {
		return noResponse, nil
	}
	return parts[0].Text, nil
}

package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"studio-site/internal/domain"
)

// Provider shapes requests for one upstream chat API and extracts the reply
// from its response body.
type Provider interface {
	Name() string
	BuildRequest(ctx context.Context, apiKey string, conv domain.Conversation) (*http.Request, error)
	ParseResponse(body []byte) (string, error)
}

// Registry maps provider ids to implementations.
type Registry struct {
	providers map[string]Provider
}

func NewRegistry(providers ...Provider) *Registry {
	r := &Registry{providers: make(map[string]Provider, len(providers))}
	for _, p := range providers {
		r.Register(p)
	}
	return r
}

// Register adds p, replacing any provider with the same name.
func (r *Registry) Register(p Provider) {
	if p == nil {
		return
	}
	r.providers[p.Name()] = p
}

func (r *Registry) Lookup(name string) (Provider, bool) {
	p, ok := r.providers[strings.TrimSpace(name)]
	return p, ok
}

// Endpoints overrides the upstream URLs of the built-in providers. Empty
// fields keep the public defaults.
type Endpoints struct {
	ChatGPT  string
	Grok     string
	DeepSeek string
	Gemini   string
	Default  string
}

// DefaultRegistry registers every supported provider plus the built-in
// default gateway.
func DefaultRegistry(ep Endpoints) *Registry {
	return NewRegistry(
		NewChatGPT(ep.ChatGPT),
		NewGrok(ep.Grok),
		NewDeepSeek(ep.DeepSeek),
		NewGemini(ep.Gemini),
		NewDefaultGateway(ep.Default),
	)
}

// redactURL strips the query string from transport errors so keys passed as
// query parameters never reach logs or callers.
func redactURL(err error) error {
	var ue *url.Error
	if !errors.As(err, &ue) {
		return err
	}
	u := ue.URL
	if i := strings.IndexByte(u, '?'); i >= 0 {
		u = u[:i]
	}
	return fmt.Errorf("%s %q: %w", ue.Op, u, ue.Err)
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

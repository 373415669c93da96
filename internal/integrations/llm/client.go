package llm

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"studio-site/internal/domain"
)

const defaultTimeout = 30 * time.Second

// ErrUnsupportedProvider is returned when no provider is registered under
// the requested name.
var ErrUnsupportedProvider = errors.New("llm: unsupported provider")

// HTTPStatusError captures non-2xx upstream responses. URL is deliberately
// not kept: some providers carry the API key in the query string.
type HTTPStatusError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("llm: %s: unexpected status %d: %s", e.Provider, e.StatusCode, e.Body)
}

func (e *HTTPStatusError) HTTPStatusCode() int {
	return e.StatusCode
}

// Client performs exactly one upstream call per Complete, never retried.
type Client struct {
	registry   *Registry
	httpClient *http.Client
}

type Option func(*Client)

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTimeout sets the upstream timeout on the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient = &http.Client{Timeout: d}
		}
	}
}

func NewClient(registry *Registry, opts ...Option) (*Client, error) {
	if registry == nil {
		return nil, errors.New("llm: registry must not be nil")
	}
	c := &Client{
		registry:   registry,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Supports reports whether provider is registered.
func (c *Client) Supports(provider string) bool {
	_, ok := c.registry.Lookup(provider)
	return ok
}

// Complete sends conv to the named provider and returns the reply text.
func (c *Client) Complete(ctx context.Context, provider, apiKey string, conv domain.Conversation) (string, error) {
	p, ok := c.registry.Lookup(provider)
	if !ok {
		return "", ErrUnsupportedProvider
	}
	if strings.TrimSpace(apiKey) == "" {
		return "", fmt.Errorf("llm: %s: api key must not be empty", p.Name())
	}

	req, err := p.BuildRequest(ctx, apiKey, conv)
	if err != nil {
		return "", fmt.Errorf("llm: %s: build request: %w", p.Name(), redactURL(err))
	}

	slog.Info("llm request", "provider", p.Name())
	raw, err := c.doJSONRequest(p.Name(), req)
	if err != nil {
		var statusErr *HTTPStatusError
		if errors.As(err, &statusErr) {
			slog.Error("llm upstream error", "provider", p.Name(), "status", statusErr.StatusCode, "body", statusErr.Body)
			return "", err
		}
		return "", fmt.Errorf("llm: %s: request failed: %w", p.Name(), redactURL(err))
	}

	reply, err := p.ParseResponse(raw)
	if err != nil {
		return "", fmt.Errorf("llm: %s: %w", p.Name(), err)
	}
	slog.Info("llm response received", "provider", p.Name())
	return reply, nil
}

func (c *Client) resolvedHTTPClient() *http.Client {
	if c.httpClient != nil {
		return c.httpClient
	}
	return &http.Client{Timeout: defaultTimeout}
}

func (c *Client) doJSONRequest(provider string, req *http.Request) ([]byte, error) {
	res, doErr := c.resolvedHTTPClient().Do(req)
	if doErr != nil {
		return nil, doErr
	}
	defer func() { _ = res.Body.Close() }()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		buf, _ := io.ReadAll(io.LimitReader(res.Body, 4096))
		return nil, &HTTPStatusError{
			Provider:   provider,
			StatusCode: res.StatusCode,
			Body:       string(buf),
		}
	}

	buf, err := io.ReadAll(io.LimitReader(res.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	return buf, nil
}

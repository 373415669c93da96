package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"

	"studio-site/internal/domain"
	"studio-site/internal/usecase"
)

const correlationHeader = "X-Correlation-Id"

// corsHeaders are sent on every chat response, including preflight.
var corsHeaders = map[string]string{
	"Access-Control-Allow-Origin":  "*",
	"Access-Control-Allow-Headers": "authorization, x-client-info, apikey, content-type",
}

// ChatUseCase is the chat proxy the handler delegates to.
type ChatUseCase interface {
	Reply(ctx context.Context, in usecase.ChatInput) (usecase.ChatOutput, error)
}

// Response is the transport-neutral result of Serve.
type Response struct {
	StatusCode int               `json:"statusCode"`
	Headers    map[string]string `json:"headers"`
	Body       string            `json:"body"`
}

type chatRequest struct {
	Messages        []domain.ChatMessage   `json:"messages"`
	Config          *domain.ProviderConfig `json:"config,omitempty"`
	UseStoredConfig bool                   `json:"useStoredConfig,omitempty"`
}

type chatResponse struct {
	Response string `json:"response"`
}

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

type Handler struct {
	uc ChatUseCase
}

func NewHandler(uc ChatUseCase) (*Handler, error) {
	if uc == nil {
		return nil, errors.New("handler: chat use case must not be nil")
	}
	return &Handler{uc: uc}, nil
}

// Handle adapts an API Gateway proxy event to Serve.
func (h *Handler) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	body := req.Body
	if req.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(req.Body)
		if err != nil {
			resp := h.errorResponse(correlationID(req.Headers), http.StatusBadRequest, usecase.ErrorInvalidInput, "invalid request body")
			return toProxyResponse(resp), nil
		}
		body = string(decoded)
	}
	return toProxyResponse(h.Serve(ctx, req.HTTPMethod, req.Headers, body)), nil
}

// Serve runs one chat request. It never returns an error; failures are
// encoded in the response.
func (h *Handler) Serve(ctx context.Context, method string, headers map[string]string, body string) Response {
	corrID := correlationID(headers)

	switch method {
	case http.MethodOptions:
		return Response{StatusCode: http.StatusNoContent, Headers: responseHeaders(corrID, false)}
	case http.MethodPost:
	default:
		return h.errorResponse(corrID, http.StatusMethodNotAllowed, usecase.ErrorInvalidInput, "method not allowed")
	}

	var req chatRequest
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		slog.Warn("invalid chat request body", "correlation_id", corrID, "err", err)
		return h.errorResponse(corrID, http.StatusBadRequest, usecase.ErrorInvalidInput, "invalid JSON body")
	}

	out, err := h.uc.Reply(ctx, usecase.ChatInput{
		Messages:        req.Messages,
		Config:          req.Config,
		UseStoredConfig: req.UseStoredConfig,
	})
	if err != nil {
		code, reason := errorDetails(err)
		status := statusFor(code)
		if status >= http.StatusInternalServerError {
			slog.Error("chat request failed", "correlation_id", corrID, "code", code, "err", err)
		} else {
			slog.Warn("chat request rejected", "correlation_id", corrID, "code", code, "reason", reason)
		}
		return h.errorResponse(corrID, status, code, reason)
	}

	return jsonResponse(corrID, http.StatusOK, chatResponse{Response: out.Response})
}

func (h *Handler) errorResponse(corrID string, status int, code usecase.ErrorCode, reason string) Response {
	return jsonResponse(corrID, status, errorResponse{Error: reason, Code: string(code)})
}

func jsonResponse(corrID string, status int, v any) Response {
	body, err := json.Marshal(v)
	if err != nil {
		status = http.StatusInternalServerError
		body = []byte(`{"error":"internal error","code":"INTERNAL_ERROR"}`)
	}
	return Response{StatusCode: status, Headers: responseHeaders(corrID, true), Body: string(body)}
}

func responseHeaders(corrID string, withBody bool) map[string]string {
	headers := make(map[string]string, len(corsHeaders)+2)
	for k, v := range corsHeaders {
		headers[k] = v
	}
	headers[correlationHeader] = corrID
	if withBody {
		headers["Content-Type"] = "application/json"
	}
	return headers
}

// errorDetails returns the code and client-safe reason of err. Errors that
// did not come from the use case layer are reported as internal.
func errorDetails(err error) (usecase.ErrorCode, string) {
	var ucErr *usecase.Error
	if errors.As(err, &ucErr) {
		return ucErr.Code, ucErr.Reason
	}
	return usecase.ErrorInternal, "internal error"
}

func statusFor(code usecase.ErrorCode) int {
	if code == usecase.ErrorInvalidInput {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// correlationID returns the caller's X-Correlation-Id, matched
// case-insensitively, or a new one.
func correlationID(headers map[string]string) string {
	for k, v := range headers {
		if strings.EqualFold(k, correlationHeader) && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return newCorrelationID()
}

var newCorrelationID = func() string {
	return uuid.NewString()
}

func toProxyResponse(r Response) events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: r.StatusCode,
		Headers:    r.Headers,
		Body:       r.Body,
	}
}

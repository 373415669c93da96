package httpapi

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"studio-site/internal/usecase"
)

// APIResponse is the envelope of every content API response.
type APIResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func success(c *gin.Context, statusCode int, data any, message string) {
	c.JSON(statusCode, APIResponse{
		Status:  "success",
		Message: message,
		Data:    data,
	})
}

func fail(c *gin.Context, statusCode int, err error, message string) {
	resp := APIResponse{
		Status:  "error",
		Message: message,
	}
	if err != nil {
		resp.Error = err.Error()
	}
	c.JSON(statusCode, resp)
}

// failWith maps a service error to its status. Only the client-safe reason
// of a use case error is sent; anything else is reported as internal.
func failWith(c *gin.Context, err error, message string) {
	code := usecase.CodeOf(err)
	status := statusFor(code)

	reason := "internal error"
	var ucErr *usecase.Error
	if errors.As(err, &ucErr) {
		reason = ucErr.Reason
	}
	if status >= http.StatusInternalServerError {
		slog.Error(message, "code", code, "path", c.FullPath(), "err", err)
	}
	c.JSON(status, APIResponse{
		Status:  "error",
		Message: message,
		Error:   reason,
	})
}

func statusFor(code usecase.ErrorCode) int {
	switch code {
	case usecase.ErrorInvalidInput:
		return http.StatusBadRequest
	case usecase.ErrorUnauthorized:
		return http.StatusUnauthorized
	case usecase.ErrorNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

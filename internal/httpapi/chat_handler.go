package httpapi

import (
	"context"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"studio-site/handler"
)

const maxChatBody = 1 << 20

// ChatServer is the transport-neutral chat endpoint shared with the Lambda.
type ChatServer interface {
	Serve(ctx context.Context, method string, headers map[string]string, body string) handler.Response
}

type ChatHandler struct {
	chat ChatServer
}

func NewChatHandler(chat ChatServer) *ChatHandler {
	return &ChatHandler{chat: chat}
}

// Chat serves POST and OPTIONS /api/chat with the chat wire contract rather
// than the API envelope.
func (h *ChatHandler) Chat(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxChatBody))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "code": "INVALID_INPUT"})
		return
	}

	headers := make(map[string]string, len(c.Request.Header))
	for k := range c.Request.Header {
		headers[k] = c.Request.Header.Get(k)
	}

	resp := h.chat.Serve(c.Request.Context(), c.Request.Method, headers, string(body))
	for k, v := range resp.Headers {
		c.Header(k, v)
	}
	if resp.Body == "" {
		c.Status(resp.StatusCode)
		return
	}
	c.Data(resp.StatusCode, "application/json", []byte(resp.Body))
}

package httpapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"studio-site/internal/usecase"
)

// Services are the dependencies of the HTTP API.
type Services struct {
	Content *usecase.ContentService
	Auth    *usecase.AuthService
	Tokens  TokenVerifier
	Chat    ChatServer
}

// NewRouter builds the gin engine serving the content API, admin auth and
// the chat endpoint.
func NewRouter(s Services) (*gin.Engine, error) {
	if s.Content == nil {
		return nil, errors.New("httpapi: content service must not be nil")
	}
	if s.Auth == nil {
		return nil, errors.New("httpapi: auth service must not be nil")
	}
	if s.Tokens == nil {
		return nil, errors.New("httpapi: token verifier must not be nil")
	}
	if s.Chat == nil {
		return nil, errors.New("httpapi: chat server must not be nil")
	}

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger())
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:    []string{"Authorization", "X-Client-Info", "Apikey", "Content-Type", "X-Correlation-Id"},
		ExposeHeaders:   []string{"X-Correlation-Id"},
		MaxAge:          12 * time.Hour,
	}))

	router.GET("/health", func(c *gin.Context) {
		success(c, http.StatusOK, gin.H{"status": "ok"}, "")
	})

	authenticate := Authenticate(s.Tokens)
	api := router.Group("/api")
	NewChatRoutes(NewChatHandler(s.Chat)).RegisterRoutes(api)
	NewAuthRoutes(NewAuthHandler(s.Auth), authenticate).RegisterRoutes(api)
	NewContentRoutes(NewContentHandler(s.Content), authenticate).RegisterRoutes(api)

	return router, nil
}

// NewServer wraps handler in an *http.Server with the API's timeouts. The
// write timeout leaves room for a slow upstream chat reply.
func NewServer(addr string, handler http.Handler, upstreamTimeout time.Duration) *http.Server {
	return &http.Server{
		Addr:         addr,
		Handler:      handler,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: upstreamTimeout + 10*time.Second,
	}
}

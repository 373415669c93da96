package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"studio-site/internal/usecase"
)

type AuthHandler struct {
	svc *usecase.AuthService
}

func NewAuthHandler(svc *usecase.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionResponse struct {
	Token     string    `json:"token,omitempty"`
	Subject   string    `json:"subject"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Login handles POST /api/admin/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}
	out, err := h.svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		failWith(c, err, "Login failed")
		return
	}
	success(c, http.StatusOK, sessionResponse{Token: out.Token, Subject: out.Subject, ExpiresAt: out.ExpiresAt}, "Logged in")
}

// Session handles GET /api/admin/session
func (h *AuthHandler) Session(c *gin.Context) {
	success(c, http.StatusOK, sessionResponse{
		Subject:   c.GetString(subjectKey),
		ExpiresAt: c.GetTime(expiryKey),
	}, "")
}

// Logout handles POST /api/admin/logout. Tokens are stateless, so the client
// only has to drop its copy.
func (h *AuthHandler) Logout(c *gin.Context) {
	success(c, http.StatusOK, nil, "Logged out")
}

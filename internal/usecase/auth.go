package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"studio-site/internal/auth"
)

type TokenIssuer interface {
	Issue(subject string) (string, time.Time, error)
}

// AuthService checks the single admin account configured at startup.
type AuthService struct {
	adminEmail   string
	passwordHash string
	tokens       TokenIssuer
}

type LoginOutput struct {
	Token     string
	ExpiresAt time.Time
	Subject   string
}

func NewAuthService(adminEmail, passwordHash string, tokens TokenIssuer) (*AuthService, error) {
	adminEmail = strings.TrimSpace(adminEmail)
	if adminEmail == "" {
		return nil, errors.New("usecase: admin email must not be empty")
	}
	if strings.TrimSpace(passwordHash) == "" {
		return nil, errors.New("usecase: admin password hash must not be empty")
	}
	if tokens == nil {
		return nil, errors.New("usecase: token issuer must not be nil")
	}
	return &AuthService{adminEmail: adminEmail, passwordHash: passwordHash, tokens: tokens}, nil
}

func (a *AuthService) Login(_ context.Context, email, password string) (LoginOutput, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return LoginOutput{}, newError(ErrorInvalidInput, "email and password are required", nil)
	}

	// The hash is checked even for an unknown email so both paths cost the same.
	verifyErr := auth.VerifyPassword(a.passwordHash, password)
	if errors.Is(verifyErr, auth.ErrInvalidHash) {
		return LoginOutput{}, newError(ErrorConfiguration, "admin password hash is malformed", verifyErr)
	}
	if verifyErr != nil || !strings.EqualFold(email, a.adminEmail) {
		return LoginOutput{}, newError(ErrorUnauthorized, "invalid credentials", nil)
	}

	token, expires, err := a.tokens.Issue(a.adminEmail)
	if err != nil {
		return LoginOutput{}, newError(ErrorInternal, "token_issue_error", err)
	}
	return LoginOutput{Token: token, ExpiresAt: expires, Subject: a.adminEmail}, nil
}

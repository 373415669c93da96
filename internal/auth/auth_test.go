package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

// ---------------------------------------------------------------------------
// Passwords
// ---------------------------------------------------------------------------

func TestHashPassword_RoundTrip(t *testing.T) {
	encoded, err := HashPassword("correct horse")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(encoded, "argon2id$v=19$m=65536,t=1,p=4$"))
	require.Len(t, strings.Split(encoded, "$"), 5)

	require.NoError(t, VerifyPassword(encoded, "correct horse"))
	require.ErrorIs(t, VerifyPassword(encoded, "wrong horse"), ErrPasswordMismatch)
}

func TestHashPassword_UniqueSalt(t *testing.T) {
	a, err := HashPassword("same")
	require.NoError(t, err)
	b, err := HashPassword("same")
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

func TestHashPassword_Empty(t *testing.T) {
	_, err := HashPassword("")
	require.Error(t, err)
}

func TestVerifyPassword_InvalidHashes(t *testing.T) {
	cases := []string{
		"",
		"plaintext",
		"bcrypt$v=19$m=1,t=1,p=1$c2FsdA$aGFzaA",
		"argon2id$v=18$m=65536,t=1,p=4$c2FsdA$aGFzaA",
		"argon2id$v=19$bogus$c2FsdA$aGFzaA",
		"argon2id$v=19$m=65536,t=1,p=4$!!!$aGFzaA",
		"argon2id$v=19$m=65536,t=1,p=4$c2FsdA$",
		"argon2id$v=19$m=65536,t=0,p=4$c2FsdA$aGFzaA",
		"argon2id$v=19$m=65536,t=1,p=0$c2FsdA$aGFzaA",
	}
	for _, tc := range cases {
		require.ErrorIs(t, VerifyPassword(tc, "pw"), ErrInvalidHash, "hash=%q", tc)
	}
}

// ---------------------------------------------------------------------------
// Tokens
// ---------------------------------------------------------------------------

func TestNewIssuer_ShortSecret(t *testing.T) {
	_, err := NewIssuer("short", time.Hour)
	require.Error(t, err)
}

func TestIssuer_IssueAndVerify(t *testing.T) {
	issuer, err := NewIssuer(testSecret, 0)
	require.NoError(t, err)
	fixed := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	issuer.now = func() time.Time { return fixed }

	token, expires, err := issuer.Issue("admin@example.com")
	require.NoError(t, err)
	require.Equal(t, fixed.Add(DefaultTokenTTL), expires)

	claims, err := issuer.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "admin@example.com", claims.Subject)
	require.NotEmpty(t, claims.ID)
}

func TestIssuer_Expired(t *testing.T) {
	issuer, err := NewIssuer(testSecret, time.Hour)
	require.NoError(t, err)
	start := time.Now()
	issuer.now = func() time.Time { return start }

	token, _, err := issuer.Issue("admin@example.com")
	require.NoError(t, err)

	issuer.now = func() time.Time { return start.Add(2 * time.Hour) }
	_, err = issuer.Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestIssuer_WrongSecret(t *testing.T) {
	a, err := NewIssuer(testSecret, time.Hour)
	require.NoError(t, err)
	b, err := NewIssuer(strings.Repeat("z", 32), time.Hour)
	require.NoError(t, err)

	token, _, err := a.Issue("admin@example.com")
	require.NoError(t, err)
	_, err = b.Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestIssuer_RejectsOtherAlgorithms(t *testing.T) {
	issuer, err := NewIssuer(testSecret, time.Hour)
	require.NoError(t, err)

	claims := &Claims{RegisteredClaims: jwt.RegisteredClaims{
		Subject:   "admin@example.com",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = issuer.Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestIssuer_Garbage(t *testing.T) {
	issuer, err := NewIssuer(testSecret, time.Hour)
	require.NoError(t, err)
	_, err = issuer.Verify("not.a.jwt")
	require.ErrorIs(t, err, ErrInvalidToken)
}

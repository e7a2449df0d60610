package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tours/config"
	domainerrors "tours/internal/domain/errors"
	"tours/internal/errors"
)

const testSecret = "test_secret_key_very_long_for_testing"

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc, err := NewJWTServiceWithOptions(testSecret, time.Hour, WithClock(fixedClock(now)))
	require.NoError(t, err)

	userID := uuid.New()
	token, err := svc.Issue(userID)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, now.Unix(), claims.IssuedAt.Unix())
	assert.Equal(t, now.Add(time.Hour).Unix(), claims.ExpiresAt.Unix())
	assert.Equal(t, time.Hour, svc.TTL())
}

func TestJWTService_FromConfig(t *testing.T) {
	cfg := &config.Config{}
	cfg.Auth.JWTSecret = testSecret
	cfg.Auth.JWTExpiresIn = 90 * 24 * time.Hour

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)
	assert.Equal(t, 90*24*time.Hour, svc.TTL())

	cfg.Auth.JWTSecret = ""
	_, err = NewJWTService(cfg)
	assert.Error(t, err)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	issued := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	issuer, err := NewJWTServiceWithOptions(testSecret, time.Minute, WithClock(fixedClock(issued)))
	require.NoError(t, err)

	token, err := issuer.Issue(uuid.New())
	require.NoError(t, err)

	verifier, err := NewJWTServiceWithOptions(testSecret, time.Minute, WithClock(fixedClock(issued.Add(2*time.Minute))))
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrExpiredToken))
}

func TestJWTService_InvalidTokens(t *testing.T) {
	svc, err := NewJWTServiceWithOptions(testSecret, time.Hour)
	require.NoError(t, err)

	other, err := NewJWTServiceWithOptions("another_secret_key_for_testing", time.Hour)
	require.NoError(t, err)
	foreign, err := other.Issue(uuid.New())
	require.NoError(t, err)

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	badSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "not-a-uuid",
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	tests := map[string]string{
		"garbage":          "not.a.token",
		"empty":            "",
		"wrong secret":     foreign,
		"none algorithm":   noneToken,
		"non-uuid subject": badSubject,
	}

	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Verify(token)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
		})
	}
}

func TestJWTService_RejectsNonPositiveTTL(t *testing.T) {
	_, err := NewJWTServiceWithOptions(testSecret, 0)
	assert.Error(t, err)
}

package service

import (
	"time"

	"github.com/google/uuid"
)

// Claims is the verified content of an identity token.
type Claims struct {
	UserID    uuid.UUID
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenService issues and verifies signed identity tokens.
type TokenService interface {
	// Issue signs a token for userID that expires after TTL.
	Issue(userID uuid.UUID) (string, error)

	// Verify checks the signature, then the expiry, of tokenString.
	// Failures are domain InvalidToken or ExpiredToken errors.
	Verify(tokenString string) (*Claims, error)

	// TTL returns the lifetime of issued tokens.
	TTL() time.Duration
}

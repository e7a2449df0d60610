package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"time"

	"tours/config"
	"tours/internal/domain/service"
	"tours/internal/errors"
)

const resetTokenBytes = 32

// resetTokenGenerator issues random password-reset tokens and stores only their SHA-256 digest.
type resetTokenGenerator struct {
	ttl time.Duration
	now func() time.Time
}

// NewResetTokenGenerator is the constructor for resetTokenGenerator.
func NewResetTokenGenerator(cfg *config.Config) service.ResetTokenGenerator {
	return newResetTokenGenerator(cfg.Auth.ResetTokenTTL, time.Now)
}

func newResetTokenGenerator(ttl time.Duration, now func() time.Time) *resetTokenGenerator {
	return &resetTokenGenerator{ttl: ttl, now: now}
}

// Generate creates a 32-byte random token, hex encoded.
func (g *resetTokenGenerator) Generate() (*service.ResetToken, error) {
	buf := make([]byte, resetTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return nil, errors.Wrap(err, "read random bytes")
	}

	plain := hex.EncodeToString(buf)

	return &service.ResetToken{
		Plain:     plain,
		Hash:      g.HashToken(plain),
		ExpiresAt: g.now().Add(g.ttl),
	}, nil
}

// HashToken returns the hex SHA-256 digest of plain.
func (g *resetTokenGenerator) HashToken(plain string) string {
	sum := sha256.Sum256([]byte(plain))

	return hex.EncodeToString(sum[:])
}

// Matches compares digests in constant time.
func (g *resetTokenGenerator) Matches(plain, storedHash string) bool {
	return subtle.ConstantTimeCompare([]byte(g.HashToken(plain)), []byte(storedHash)) == 1
}

package service

import "time"

// ResetToken is a freshly generated password-reset secret. Plain is handed to
// the user exactly once; only Hash and ExpiresAt are stored.
type ResetToken struct {
	Plain     string
	Hash      string
	ExpiresAt time.Time
}

// ResetTokenGenerator creates reset tokens and hashes candidates for lookup.
type ResetTokenGenerator interface {
	Generate() (*ResetToken, error)

	// HashToken deterministically hashes a candidate so it can be looked up.
	HashToken(plain string) string

	// Matches reports whether plain hashes to storedHash.
	Matches(plain, storedHash string) bool
}

// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account that can sign in and, depending on its role, manage tours.
type User struct {
	ID                   uuid.UUID  // The Global Unique Identifier (GUID) for the user.
	Name                 string     // The user's display name.
	Email                string     // Unique, stored lower-cased; used as the login identifier.
	Photo                string     // Optional photo reference.
	Role                 Role       // Authorization role, RoleUser unless promoted by an admin.
	PasswordHash         string     // bcrypt hash; the plaintext is never stored.
	PasswordChangedAt    *time.Time // Set on every password change after creation.
	PasswordResetToken   string     // SHA-256 hash of the outstanding reset token, if any.
	PasswordResetExpires *time.Time // Expiry of the outstanding reset token.
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// ChangedPasswordAfter reports whether the password was changed after a token
// issued at issuedAt. Comparison happens at one-second granularity, matching
// the precision of JWT timestamps.
func (u *User) ChangedPasswordAfter(issuedAt time.Time) bool {
	if u.PasswordChangedAt == nil {
		return false
	}

	return issuedAt.Unix() < u.PasswordChangedAt.Unix()
}

// HasPendingReset reports whether an unexpired reset token is on record at now.
func (u *User) HasPendingReset(now time.Time) bool {
	return u.PasswordResetToken != "" && u.PasswordResetExpires != nil && now.Before(*u.PasswordResetExpires)
}

// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"
	"time"

	"tours/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// Emails are compared case-insensitively; implementations normalise them.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID, reading from the primary.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user, password hash included, by email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByResetToken retrieves the user whose reset-token hash equals hash and
	// whose reset expiry is after now. The row is locked for the rest of the
	// surrounding transaction where the store supports it.
	FindByResetToken(ctx context.Context, hash string, now time.Time) (*entity.User, error)

	// List returns every user ordered by creation time.
	List(ctx context.Context) ([]*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// UpdateProfile writes the name, email and photo of user.
	UpdateProfile(ctx context.Context, user *entity.User) error

	// SetPasswordReset records a pending reset without touching other fields.
	SetPasswordReset(ctx context.Context, id uuid.UUID, tokenHash string, expiresAt time.Time) error

	// ClearPasswordReset removes any pending reset.
	ClearPasswordReset(ctx context.Context, id uuid.UUID) error

	// UpdatePassword writes the new hash and changedAt and clears any pending
	// reset in a single statement.
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string, changedAt time.Time) error

	// PurgeExpiredResets clears every reset whose expiry is not after now and
	// returns the number of users affected.
	PurgeExpiredResets(ctx context.Context, now time.Time) (int64, error)
}

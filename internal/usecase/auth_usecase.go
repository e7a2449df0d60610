// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"tours/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SignupInput defines the data required to create an account.
type SignupInput struct {
	Name            string
	Email           string
	Photo           string
	Password        string
	PasswordConfirm string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// ForgotPasswordInput identifies the account and where the reset link should point.
type ForgotPasswordInput struct {
	Email string
	// ResetURLBase is the URL the plaintext token is appended to, e.g.
	// "https://host/api/v1/users/resetPassword".
	ResetURLBase string
}

// ResetPasswordInput carries a reset token and the new password.
type ResetPasswordInput struct {
	Token           string
	Password        string
	PasswordConfirm string
}

// UpdatePasswordInput changes the password of an authenticated user.
type UpdatePasswordInput struct {
	UserID          uuid.UUID
	CurrentPassword string
	Password        string
	PasswordConfirm string
}

// --- Output DTOs ---

// AuthOutput is returned by every flow that issues an identity token.
type AuthOutput struct {
	User      *entity.User
	Token     string
	ExpiresAt time.Time
}

// AuthUsecase defines signup, login, and the password flows, plus the checks
// behind route protection.
type AuthUsecase interface {
	Signup(ctx context.Context, input *SignupInput) (*AuthOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)

	// Authenticate resolves the user behind an identity token.
	Authenticate(ctx context.Context, token string) (*entity.User, error)

	// Authorize fails with Forbidden unless user holds one of allowed.
	Authorize(user *entity.User, allowed []entity.Role) error

	ForgotPassword(ctx context.Context, input *ForgotPasswordInput) error
	ResetPassword(ctx context.Context, input *ResetPasswordInput) (*AuthOutput, error)
	UpdatePassword(ctx context.Context, input *UpdatePasswordInput) (*AuthOutput, error)
}

package usecase

import (
	"context"

	"tours/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateProfileInput holds the self-service profile fields. Nil fields are left unchanged.
type UpdateProfileInput struct {
	UserID uuid.UUID
	Name   *string
	Email  *string
	Photo  *string
}

// UserUsecase defines account lookups and self-service profile updates.
type UserUsecase interface {
	List(ctx context.Context) ([]*entity.User, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.User, error)
	UpdateProfile(ctx context.Context, input *UpdateProfileInput) (*entity.User, error)
}

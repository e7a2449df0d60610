package handler

import (
	"log/slog"
	"net/http"

	"tours/internal/delivery/api/middleware"
	"tours/internal/delivery/api/response"
	domainerrors "tours/internal/domain/errors"
	"tours/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// UserHandler serves account lookups and self-service profile updates.
type UserHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// UpdateMeRequest lists the profile fields a user may change. Password fields
// are only decoded so they can be refused.
type UpdateMeRequest struct {
	Name            *string `json:"name"`
	Email           *string `json:"email"`
	Photo           *string `json:"photo"`
	Password        *string `json:"password"`
	PasswordConfirm *string `json:"passwordConfirm"`
}

// ListUsers returns every user.
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.userUC.List(c.Request().Context())
	if err != nil {
		return err
	}

	return response.List(c, len(users), map[string]any{"users": toUserResponses(users)})
}

// GetUser returns one user by id.
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return err
	}

	user, err := h.userUC.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, map[string]any{"user": toUserResponse(user)})
}

// GetMe returns the logged-in user.
func (h *UserHandler) GetMe(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, map[string]any{"user": toUserResponse(user)})
}

// UpdateMe changes name, email and photo of the logged-in user.
func (h *UserHandler) UpdateMe(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	var req UpdateMeRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if req.Password != nil || req.PasswordConfirm != nil {
		return domainerrors.ErrPasswordUpdateNotAllowed
	}

	updated, err := h.userUC.UpdateProfile(c.Request().Context(), &usecase.UpdateProfileInput{
		UserID: user.ID,
		Name:   req.Name,
		Email:  req.Email,
		Photo:  req.Photo,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, map[string]any{"user": toUserResponse(updated)})
}

package handler

import (
	"log/slog"
	"net/http"
	"time"

	"tours/config"
	"tours/internal/delivery/api/middleware"
	"tours/internal/delivery/api/response"
	"tours/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Cfg    *config.Config
	Logger *slog.Logger
}

// AuthHandler serves signup, login and the password flows.
type AuthHandler struct {
	authUC          usecase.AuthUsecase
	cookieExpiresIn time.Duration
	secureCookie    bool
	logger          *slog.Logger
	now             func() time.Time
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC:          params.AuthUC,
		cookieExpiresIn: params.Cfg.Auth.CookieExpiresIn,
		secureCookie:    params.Cfg.IsProduction(),
		logger:          params.Logger,
		now:             time.Now,
	}
}

// SignupRequest represents the request body for creating an account
type SignupRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Photo           string `json:"photo"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"passwordConfirm"`
}

// LoginRequest represents the request body for logging in
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ForgotPasswordRequest represents the request body for requesting a reset token
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordRequest represents the request body for consuming a reset token
type ResetPasswordRequest struct {
	Password        string `json:"password"`
	PasswordConfirm string `json:"passwordConfirm"`
}

// UpdatePasswordRequest represents the request body for changing a known password
type UpdatePasswordRequest struct {
	PasswordCurrent string `json:"passwordCurrent" validate:"required"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"passwordConfirm"`
}

// Signup handles account creation.
func (h *AuthHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	output, err := h.authUC.Signup(c.Request().Context(), &usecase.SignupInput{
		Name:            req.Name,
		Email:           req.Email,
		Photo:           req.Photo,
		Password:        req.Password,
		PasswordConfirm: req.PasswordConfirm,
	})
	if err != nil {
		return err
	}

	return h.sendToken(c, http.StatusCreated, output)
}

// Login handles the user login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	output, err := h.authUC.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	return h.sendToken(c, http.StatusOK, output)
}

// ForgotPassword mails a reset link pointing at this server.
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req ForgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	err := h.authUC.ForgotPassword(c.Request().Context(), &usecase.ForgotPasswordInput{
		Email:        req.Email,
		ResetURLBase: c.Scheme() + "://" + c.Request().Host + "/api/v1/users/resetPassword",
	})
	if err != nil {
		return err
	}

	return response.Message(c, "Token sent to email!")
}

// ResetPassword consumes the token from the path and logs the user in.
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req ResetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	output, err := h.authUC.ResetPassword(c.Request().Context(), &usecase.ResetPasswordInput{
		Token:           c.Param("token"),
		Password:        req.Password,
		PasswordConfirm: req.PasswordConfirm,
	})
	if err != nil {
		return err
	}

	return h.sendToken(c, http.StatusOK, output)
}

// UpdatePassword changes the password of the logged-in user.
func (h *AuthHandler) UpdatePassword(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	var req UpdatePasswordRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.authUC.UpdatePassword(c.Request().Context(), &usecase.UpdatePasswordInput{
		UserID:          user.ID,
		CurrentPassword: req.PasswordCurrent,
		Password:        req.Password,
		PasswordConfirm: req.PasswordConfirm,
	})
	if err != nil {
		return err
	}

	return h.sendToken(c, http.StatusOK, output)
}

// sendToken sets the jwt cookie and answers with the token and the user.
func (h *AuthHandler) sendToken(c echo.Context, statusCode int, output *usecase.AuthOutput) error {
	c.SetCookie(&http.Cookie{
		Name:     middleware.CookieName,
		Value:    output.Token,
		Path:     "/",
		Expires:  h.now().Add(h.cookieExpiresIn),
		HttpOnly: true,
		Secure:   h.secureCookie,
	})

	return response.WithToken(c, statusCode, output.Token, map[string]any{
		"user": toUserResponse(output.User),
	})
}

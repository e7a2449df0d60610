package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "tours/internal/delivery/context"
	"tours/internal/domain/entity"
	domainerrors "tours/internal/domain/errors"
	"tours/internal/usecase"

	"github.com/labstack/echo/v4"
)

// CookieName is the cookie carrying the identity token.
const CookieName = "jwt"

// AuthMiddleware guards routes with the auth flow.
type AuthMiddleware struct {
	authUC usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authUC usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{authUC: authUC}
}

// Protect authenticates the bearer token, falling back to the jwt cookie, and
// attaches the user to the request.
func (m *AuthMiddleware) Protect(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := m.authUC.Authenticate(c.Request().Context(), tokenFromRequest(c))
		if err != nil {
			return err
		}

		deliverycontext.SetUser(c, user)

		ctx := c.Request().Context()
		if logger := deliverycontext.GetLogger(ctx); logger != nil {
			ctx = deliverycontext.WithLogger(ctx, logger.With(slog.String("user_id", user.ID.String())))
			c.SetRequest(c.Request().WithContext(ctx))
		}

		return next(c)
	}
}

// RestrictTo only lets users holding one of roles through. It must run after Protect.
func (m *AuthMiddleware) RestrictTo(roles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, _ := deliverycontext.GetUser(c)
			if err := m.authUC.Authorize(user, roles); err != nil {
				return err
			}

			return next(c)
		}
	}
}

// CurrentUser returns the user attached by Protect.
func CurrentUser(c echo.Context) (*entity.User, error) {
	user, ok := deliverycontext.GetUser(c)
	if !ok {
		return nil, domainerrors.ErrNotLoggedIn
	}

	return user, nil
}

func tokenFromRequest(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if token, ok := strings.CutPrefix(header, "Bearer "); ok {
		return strings.TrimSpace(token)
	}

	if cookie, err := c.Cookie(CookieName); err == nil {
		return cookie.Value
	}

	return ""
}

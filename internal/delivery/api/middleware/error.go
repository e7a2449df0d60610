// Package middleware holds the API specific echo middleware.
package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"tours/config"
	"tours/internal/delivery/api/response"
	deliverycontext "tours/internal/delivery/context"
	domainerrors "tours/internal/domain/errors"
	"tours/internal/errors"

	"github.com/labstack/echo/v4"
)

// classified is an error reduced to what the caller may see.
type classified struct {
	status      int
	code        string
	message     string
	operational bool
}

// ErrorMiddleware is the single exit point for failed requests.
type ErrorMiddleware struct {
	logger  *slog.Logger
	verbose bool
}

// NewErrorMiddleware creates the error handler. Outside production it
// answers with diagnostics.
func NewErrorMiddleware(logger *slog.Logger, cfg *config.Config) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger:  logger,
		verbose: !cfg.IsProduction(),
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	ce := classify(err, c)
	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)
	if !ce.operational {
		logger.Error("Unhandled error",
			slog.String("error", errors.StackTrace(err)),
			slog.String("path", c.Request().URL.Path),
			slog.String("method", c.Request().Method),
		)
	}

	var writeErr error
	switch {
	case c.Request().Method == http.MethodHead:
		writeErr = c.NoContent(ce.status)
	case m.verbose:
		writeErr = response.Diagnostic(c, ce.status, ce.message, ce.code, err.Error(), errors.StackTrace(err))
	case ce.operational:
		writeErr = response.Error(c, ce.status, ce.message)
	default:
		writeErr = response.Error(c, http.StatusInternalServerError, domainerrors.ErrUnexpected.Message())
	}
	if writeErr != nil {
		logger.Error("Failed to write error response", slog.Any("error", writeErr))
	}
}

func classify(err error, c echo.Context) classified {
	if appErr, ok := domainerrors.From(err); ok {
		return classifyKind(appErr)
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return classifyHTTPError(httpErr, c)
	}

	return classifyKind(domainerrors.ErrUnexpected)
}

func classifyKind(appErr domainerrors.AppError) classified {
	ce := classified{
		status:      appErr.HTTPCode(),
		code:        appErr.ErrorCode(),
		message:     appErr.Message(),
		operational: true,
	}

	switch appErr.Kind() {
	case domainerrors.KindMissingCredentials,
		domainerrors.KindInvalidCredentials,
		domainerrors.KindUnauthenticated,
		domainerrors.KindStalePassword,
		domainerrors.KindForbidden,
		domainerrors.KindNotFound,
		domainerrors.KindDeliveryFailed,
		domainerrors.KindInvalidOrExpiredToken,
		domainerrors.KindWrongCurrentPassword,
		domainerrors.KindValidationFailed,
		domainerrors.KindDuplicateField,
		domainerrors.KindMalformedReference,
		domainerrors.KindInvalidToken,
		domainerrors.KindExpiredToken:
	default:
		// KindUnexpected and anything unknown.
		ce.operational = false
	}

	return ce
}

// classifyHTTPError treats echo's own errors (unknown route, body limit, rate
// limit, binding) as operational.
func classifyHTTPError(httpErr *echo.HTTPError, c echo.Context) classified {
	message := http.StatusText(httpErr.Code)
	if msg, ok := httpErr.Message.(string); ok && msg != "" {
		message = msg
	}
	if httpErr.Code == http.StatusNotFound && httpErr.Message == echo.ErrNotFound.Message {
		message = fmt.Sprintf("Can't find %s on this server!", c.Request().RequestURI)
	}

	return classified{
		status:      httpErr.Code,
		code:        "HTTP_ERROR",
		message:     message,
		operational: httpErr.Code < http.StatusInternalServerError,
	}
}

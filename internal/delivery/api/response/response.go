// Package response writes the JSON envelope shared by every API endpoint.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const (
	StatusSuccess = "success"
	StatusFail    = "fail"
	StatusError   = "error"
)

// Envelope is the body of every JSON response.
type Envelope struct {
	Status  string `json:"status"`
	Token   string `json:"token,omitempty"`
	Results *int   `json:"results,omitempty"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`

	// Diagnostics, only written outside production.
	Code  string `json:"code,omitempty"`
	Error string `json:"error,omitempty"`
	Stack string `json:"stack,omitempty"`
}

// Success returns a successful response
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, Envelope{Status: StatusSuccess, Data: data})
}

// List returns a successful response counting the listed items.
func List(c echo.Context, results int, data any) error {
	return c.JSON(http.StatusOK, Envelope{Status: StatusSuccess, Results: &results, Data: data})
}

// WithToken returns a successful response carrying a freshly issued token.
func WithToken(c echo.Context, statusCode int, token string, data any) error {
	return c.JSON(statusCode, Envelope{Status: StatusSuccess, Token: token, Data: data})
}

// Message returns a successful response with only a message.
func Message(c echo.Context, message string) error {
	return c.JSON(http.StatusOK, Envelope{Status: StatusSuccess, Message: message})
}

// NoContent answers 204 without a body.
func NoContent(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

// StatusFor returns "fail" for client errors and "error" for server errors.
func StatusFor(statusCode int) string {
	if statusCode >= http.StatusInternalServerError {
		return StatusError
	}

	return StatusFail
}

// Error returns an error response with a status and a message.
func Error(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, Envelope{Status: StatusFor(statusCode), Message: message})
}

// Diagnostic returns an error response with the error code, the raw error and its stack.
func Diagnostic(c echo.Context, statusCode int, message, code, rawError, stack string) error {
	return c.JSON(statusCode, Envelope{
		Status:  StatusFor(statusCode),
		Message: message,
		Code:    code,
		Error:   rawError,
		Stack:   stack,
	})
}

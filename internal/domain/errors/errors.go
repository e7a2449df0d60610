// Package errors defines the closed set of application failures. Every failure
// the API can report is an *Error carrying one Kind; anything else reaching the
// HTTP boundary is treated as unexpected.
package errors

import (
	"fmt"
	"net/http"
	"strings"

	"tours/internal/errors"
)

// Kind enumerates the failure variants known to the application.
type Kind int

const (
	KindUnexpected Kind = iota
	KindMissingCredentials
	KindInvalidCredentials
	KindUnauthenticated
	KindStalePassword
	KindForbidden
	KindNotFound
	KindDeliveryFailed
	KindInvalidOrExpiredToken
	KindWrongCurrentPassword
	KindValidationFailed
	KindDuplicateField
	KindMalformedReference
	KindInvalidToken
	KindExpiredToken
)

// String returns the machine-readable error code of the kind.
func (k Kind) String() string {
	switch k {
	case KindMissingCredentials:
		return "MISSING_CREDENTIALS"
	case KindInvalidCredentials:
		return "INVALID_CREDENTIALS"
	case KindUnauthenticated:
		return "UNAUTHENTICATED"
	case KindStalePassword:
		return "STALE_PASSWORD"
	case KindForbidden:
		return "FORBIDDEN"
	case KindNotFound:
		return "NOT_FOUND"
	case KindDeliveryFailed:
		return "DELIVERY_FAILED"
	case KindInvalidOrExpiredToken:
		return "INVALID_OR_EXPIRED_RESET_TOKEN"
	case KindWrongCurrentPassword:
		return "WRONG_CURRENT_PASSWORD"
	case KindValidationFailed:
		return "VALIDATION_FAILED"
	case KindDuplicateField:
		return "DUPLICATE_FIELD"
	case KindMalformedReference:
		return "MALFORMED_REFERENCE"
	case KindInvalidToken:
		return "INVALID_TOKEN"
	case KindExpiredToken:
		return "EXPIRED_TOKEN"
	default:
		return "INTERNAL_ERROR"
	}
}

// HTTPStatus returns the status code reported for the kind.
func (k Kind) HTTPStatus() int {
	switch k {
	case KindMissingCredentials,
		KindInvalidOrExpiredToken,
		KindValidationFailed,
		KindDuplicateField,
		KindMalformedReference:
		return http.StatusBadRequest
	case KindInvalidCredentials,
		KindUnauthenticated,
		KindStalePassword,
		KindWrongCurrentPassword,
		KindInvalidToken,
		KindExpiredToken:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindDeliveryFailed, KindUnexpected:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	Kind() Kind
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
}

// Error is the single concrete AppError implementation.
type Error struct {
	kind    Kind
	message string
}

// New creates an error of the given kind.
func New(kind Kind, message string) *Error {
	return &Error{kind: kind, message: message}
}

// Error implements the error interface
func (e *Error) Error() string {
	return e.message
}

// Kind returns the failure variant.
func (e *Error) Kind() Kind {
	return e.kind
}

// HTTPCode returns the HTTP status code
func (e *Error) HTTPCode() int {
	return e.kind.HTTPStatus()
}

// ErrorCode returns the business error code
func (e *Error) ErrorCode() string {
	return e.kind.String()
}

// Message returns the user-friendly error message
func (e *Error) Message() string {
	return e.message
}

// WithMessage returns a copy of the error carrying a different user message.
func (e *Error) WithMessage(message string) *Error {
	return &Error{kind: e.kind, message: message}
}

// WrapMessage wraps the error with additional context message
func (e *Error) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// Is matches any *Error of the same kind, so callers can test against the
// predefined values even when the message was customised.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)

	return ok && t.kind == e.kind
}

// Predefined error types
var (
	ErrMissingCredentials = New(KindMissingCredentials, "Please provide email and password!")
	ErrInvalidCredentials = New(KindInvalidCredentials, "Incorrect email or password")

	ErrNotLoggedIn        = New(KindUnauthenticated, "You are not logged in! Please log in to get access.")
	ErrUserNoLongerExists = New(KindUnauthenticated, "The user belonging to this token no longer exists.")
	ErrStalePassword      = New(KindStalePassword, "User recently changed password! Please log in again.")
	ErrForbidden          = New(KindForbidden, "You do not have permission to perform this action")

	ErrNotFound         = New(KindNotFound, "Resource not found")
	ErrUserNotFound     = New(KindNotFound, "No user found with that ID")
	ErrNoUserWithEmail  = New(KindNotFound, "There is no user with this email address.")
	ErrTourNotFound     = New(KindNotFound, "No tour found with that ID")
	ErrDeliveryFailed   = New(KindDeliveryFailed, "There was an error sending the email. Try again later!")
	ErrResetTokenFailed = New(KindInvalidOrExpiredToken, "Token is invalid or has expired")

	ErrWrongCurrentPassword = New(KindWrongCurrentPassword, "Your current password is wrong.")

	ErrInvalidToken = New(KindInvalidToken, "Invalid token. Please log in again!")
	ErrExpiredToken = New(KindExpiredToken, "Your token has expired! Please log in again.")

	ErrValidationFailed         = New(KindValidationFailed, "Invalid input data.")
	ErrPasswordUpdateNotAllowed = New(KindValidationFailed, "This route is not for password updates. Please use /updateMyPassword.")

	ErrUnexpected = New(KindUnexpected, "Something went wrong!")
)

// NewValidationError joins field-level messages into one ValidationFailed error.
func NewValidationError(messages ...string) *Error {
	if len(messages) == 0 {
		return ErrValidationFailed
	}

	return ErrValidationFailed.WithMessage("Invalid input data. " + strings.Join(messages, ". "))
}

// NewDuplicateFieldError reports a unique-constraint violation on value.
func NewDuplicateFieldError(value string) *Error {
	return New(KindDuplicateField, fmt.Sprintf("Duplicate field value: %q. Please use another value!", value))
}

// NewMalformedReferenceError reports a reference that could not be parsed.
func NewMalformedReferenceError(field, value string) *Error {
	return New(KindMalformedReference, fmt.Sprintf("Invalid %s: %s.", field, value))
}

// From extracts the AppError from err's chain.
func From(err error) (AppError, bool) {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}

	return nil, false
}

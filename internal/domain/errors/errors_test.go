package errors

import (
	"net/http"
	"testing"

	"tours/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_IsMatchesKind(t *testing.T) {
	custom := ErrNotFound.WithMessage("No tour found with that ID")

	assert.ErrorIs(t, custom, ErrNotFound)
	assert.ErrorIs(t, errors.Wrap(custom, "failed to get tour"), ErrTourNotFound)
	assert.NotErrorIs(t, custom, ErrForbidden)
}

func TestFrom(t *testing.T) {
	wrapped := errors.Wrap(ErrStalePassword, "failed to authenticate")

	appErr, ok := From(wrapped)
	require.True(t, ok)
	assert.Equal(t, KindStalePassword, appErr.Kind())
	assert.Equal(t, "User recently changed password! Please log in again.", appErr.Message())

	_, ok = From(errors.New("boom"))
	assert.False(t, ok)
}

func TestKindHTTPStatus(t *testing.T) {
	tests := []struct {
		kind   Kind
		status int
	}{
		{KindMissingCredentials, http.StatusBadRequest},
		{KindInvalidCredentials, http.StatusUnauthorized},
		{KindStalePassword, http.StatusUnauthorized},
		{KindForbidden, http.StatusForbidden},
		{KindNotFound, http.StatusNotFound},
		{KindDeliveryFailed, http.StatusInternalServerError},
		{KindInvalidOrExpiredToken, http.StatusBadRequest},
		{KindWrongCurrentPassword, http.StatusUnauthorized},
		{KindDuplicateField, http.StatusBadRequest},
		{KindExpiredToken, http.StatusUnauthorized},
		{KindUnexpected, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.status, tt.kind.HTTPStatus())
		})
	}
}

func TestConstructors(t *testing.T) {
	assert.Equal(t, "Invalid input data.", NewValidationError().Message())
	assert.Equal(t,
		"Invalid input data. Please tell us your name!. Passwords are not the same!",
		NewValidationError("Please tell us your name!", "Passwords are not the same!").Message())
	assert.Equal(t,
		`Duplicate field value: "ann@x.com". Please use another value!`,
		NewDuplicateFieldError("ann@x.com").Message())
	assert.Equal(t, "Invalid id: abc.", NewMalformedReferenceError("id", "abc").Message())
}

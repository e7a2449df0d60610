package postgres

import (
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	domainerrors "tours/internal/domain/errors"
	"tours/internal/errors"
)

func TestValueFromDetail(t *testing.T) {
	tests := []struct {
		detail string
		want   string
	}{
		{detail: "Key (email)=(jonas@example.com) already exists.", want: "jonas@example.com"},
		{detail: "Key (lower(email::text))=(jonas@example.com) already exists.", want: "jonas@example.com"},
		{detail: "Key (name)=(The Forest (Hiker)) already exists.", want: "The Forest (Hiker)"},
		{detail: "something else", want: ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, valueFromDetail(tt.detail), tt.detail)
	}
}

func TestTranslateWriteError(t *testing.T) {
	t.Run("postgres unique violation uses detail", func(t *testing.T) {
		pgErr := &pgconn.PgError{Code: pgUniqueViolation, Detail: "Key (name)=(The Sea Explorer) already exists."}

		err := translateWriteError(errors.WithStack(pgErr), "fallback", "create tour")

		appErr, ok := domainerrors.From(err)
		assert.True(t, ok)
		assert.Equal(t, domainerrors.KindDuplicateField, appErr.Kind())
		assert.Equal(t, `Duplicate field value: "The Sea Explorer". Please use another value!`, appErr.Message())
	})

	t.Run("translated gorm error falls back to attempted value", func(t *testing.T) {
		err := translateWriteError(gorm.ErrDuplicatedKey, "jonas@example.com", "create user")

		appErr, ok := domainerrors.From(err)
		assert.True(t, ok)
		assert.Contains(t, appErr.Message(), `"jonas@example.com"`)
	})

	t.Run("check violation", func(t *testing.T) {
		err := translateWriteError(&pgconn.PgError{Code: pgCheckViolation}, "", "update tour")

		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})

	t.Run("other errors are wrapped", func(t *testing.T) {
		cause := errors.New("connection reset")
		err := translateWriteError(cause, "", "create user")

		_, ok := domainerrors.From(err)
		assert.False(t, ok)
		assert.True(t, errors.Is(err, cause))
		assert.Contains(t, err.Error(), "create user")
	})
}

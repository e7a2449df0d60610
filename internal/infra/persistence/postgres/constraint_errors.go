package postgres

import (
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	domainerrors "tours/internal/domain/errors"
	"tours/internal/errors"
)

// PostgreSQL SQLSTATE codes.
const (
	pgUniqueViolation = "23505"
	pgCheckViolation  = "23514"
)

// isUniqueConstraintViolation reports a unique violation and, when the driver
// exposes it, the offending value.
func isUniqueConstraintViolation(err error) (value string, ok bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return valueFromDetail(pgErr.Detail), true
	}

	return "", errors.Is(err, gorm.ErrDuplicatedKey)
}

func isCheckConstraintViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgCheckViolation
	}

	return errors.Is(err, gorm.ErrCheckConstraintViolated)
}

// valueFromDetail extracts x from "Key (email)=(x) already exists.".
func valueFromDetail(detail string) string {
	_, rest, found := strings.Cut(detail, ")=(")
	if !found {
		return ""
	}

	end := strings.LastIndex(rest, ")")
	if end < 0 {
		return ""
	}

	return rest[:end]
}

// translateWriteError maps constraint violations to operational errors.
// attempted names the value reported when the driver does not.
func translateWriteError(err error, attempted, op string) error {
	if value, ok := isUniqueConstraintViolation(err); ok {
		if value == "" {
			value = attempted
		}

		return domainerrors.NewDuplicateFieldError(value)
	}

	if isCheckConstraintViolation(err) {
		return domainerrors.ErrValidationFailed
	}

	return errors.Wrap(err, op)
}

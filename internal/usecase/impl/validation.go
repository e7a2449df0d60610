// Package impl contains the implementation of the application's business logic.
package impl

import (
	"strings"
	"unicode/utf8"

	domainerrors "tours/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

const minPasswordLength = 8

var validate = validator.New(validator.WithRequiredStructEnabled())

// problems collects field-level validation messages in the order they are found.
type problems []string

func (p *problems) add(ok bool, message string) {
	if !ok {
		*p = append(*p, message)
	}
}

// err returns nil when nothing was collected, else one ValidationFailed error.
func (p problems) err() error {
	if len(p) == 0 {
		return nil
	}

	return domainerrors.NewValidationError(p...)
}

func isEmail(s string) bool {
	return validate.Var(s, "required,email") == nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func checkName(p *problems, name string) {
	p.add(strings.TrimSpace(name) != "", "Please tell us your name!")
}

func checkEmail(p *problems, email string) {
	if email == "" {
		p.add(false, "Please provide your email")

		return
	}
	p.add(isEmail(email), "Please provide a valid email")
}

// checkNewPassword applies the password rules shared by signup, reset and update.
func checkNewPassword(p *problems, password, confirm string) {
	switch {
	case password == "":
		p.add(false, "Please provide a password")
	case utf8.RuneCountInString(password) < minPasswordLength:
		p.add(false, "A password must have at least 8 characters")
	}

	switch {
	case confirm == "":
		p.add(false, "Please confirm your password")
	case confirm != password:
		p.add(false, "Passwords are not the same!")
	}
}

package validators

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"unicode"

	"github.com/movieportal/movie-portal/models"
)

const minPasswordLength = 6

// CredentialsValidator enforces the registration rules: a parseable email
// address and a password of at least six characters with mixed case.
type CredentialsValidator struct {
}

func NewCredentialsValidator() Validator {
	return &CredentialsValidator{}
}

func (v *CredentialsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(value)
	case *models.Credentials:
		return v.validateCredentials(*value)

	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *CredentialsValidator) validateCredentials(creds models.Credentials) error {
	if err := ValidateEmail(creds.Email); err != nil {
		return err
	}
	return ValidatePassword(creds.Password)
}

// ValidateEmail checks that the address parses per RFC 5322.
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrInvalidEmail
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return ErrInvalidEmail
	}
	return nil
}

// ValidatePassword checks length and mixed-case requirements.
func ValidatePassword(password string) error {
	if len(password) < minPasswordLength {
		return ErrPasswordTooShort
	}

	var hasUpper, hasLower bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		}
	}
	if !hasUpper || !hasLower {
		return ErrPasswordTooWeak
	}

	return nil
}

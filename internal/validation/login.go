package validation

import (
	"regexp"
	"strings"
)

const minPasswordLength = 6

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail нестрогая проверка вида user@domain.tld
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidateLogin проверяет форму логина перед отправкой
func ValidateLogin(email, password string) error {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return ErrMissingCredentials
	}
	if !ValidEmail(email) {
		return ErrInvalidEmail
	}
	if len(password) < minPasswordLength {
		return ErrPasswordTooShort
	}
	return nil
}

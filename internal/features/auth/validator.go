package auth

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

const (
	nameMaxLen     = 50
	passwordMinLen = 8
)

// ValidateRegister checks a signup payload. Hashing happens later, as an
// explicit step in the handler, never as a side effect of persisting.
func ValidateRegister(req *RegisterRequest) error {
	if err := validateName(req.FirstName, "first name"); err != nil {
		return err
	}
	if err := validateName(req.LastName, "last name"); err != nil {
		return err
	}
	if err := ValidateEmail(req.Email); err != nil {
		return err
	}
	if len(req.Password) < passwordMinLen {
		return errors.New("password must be at least 8 characters")
	}
	return nil
}

// ValidateEmail checks the email format.
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" || !emailRegex.MatchString(email) {
		return errors.New("invalid email address")
	}
	return nil
}

func validateName(name, field string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.New(field + " is required")
	}
	if utf8.RuneCountInString(name) > nameMaxLen {
		return errors.New(field + " cannot exceed 50 characters")
	}
	return nil
}

// NormalizeEmail lowercases and trims an email for storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Package validation provides input validation utilities
package validation

import (
	"fmt"
	"regexp"
	"unicode"

	"saisonnalite/internal/models"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidateEmail checks basic email format
func ValidateEmail(email string) error {
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("invalid email format")
	}

	if len(email) > 254 {
		return fmt.Errorf("email must not exceed 254 characters")
	}

	return nil
}

// ValidatePassword checks if a password meets security requirements
func ValidatePassword(password string) error {
	if len(password) < 12 {
		return fmt.Errorf("password must be at least 12 characters long")
	}

	if len(password) > 128 {
		return fmt.Errorf("password must not exceed 128 characters")
	}

	hasUpper := false
	hasLower := false
	hasDigit := false
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasUpper {
		return fmt.Errorf("password must contain at least one uppercase letter")
	}
	if !hasLower {
		return fmt.Errorf("password must contain at least one lowercase letter")
	}
	if !hasDigit {
		return fmt.Errorf("password must contain at least one digit")
	}

	return nil
}

// ValidateRole checks that the role is one of the known account roles.
func ValidateRole(role models.Role) error {
	if !role.Valid() {
		return fmt.Errorf("role must be %q or %q", models.RoleProducer, models.RoleConsumer)
	}
	return nil
}

// ValidateFullName bounds the profile display name.
func ValidateFullName(name string) error {
	if len(name) > 120 {
		return fmt.Errorf("full name must not exceed 120 characters")
	}
	return nil
}

// ValidateAvailability enforces a well-formed inclusive date range.
func ValidateAvailability(start, end models.Date) error {
	if start.IsZero() || end.IsZero() {
		return fmt.Errorf("availability start and end dates are required")
	}
	if start.After(end) {
		return fmt.Errorf("availability start must not be after availability end")
	}
	return nil
}

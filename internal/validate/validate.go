package validate

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Loose grouping pattern: optional leading +, digits grouped by
// hyphens/dots/spaces or a parenthesised area code.
var phonePattern = regexp.MustCompile(`^[\+\d]?(\d{2,3}[-\.\s]?\d{2,3}[-\.\s]?\d{4}|\(\d{3}\)\s*\d{3}[-\.\s]?\d{4}|\d{3}[-\.\s]?\d{4})`)

var v = newValidator()

func newValidator() *validator.Validate {
	val := validator.New()
	// "phone" tag backs both struct-level checks and the Phone helper
	if err := val.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return val
}

// UserInput is the validated shape of a registration or full-update form.
type UserInput struct {
	Name        string `validate:"required"`
	Age         int    `validate:"gt=0"`
	Email       string `validate:"required,email"`
	Password    string `validate:"min=4"`
	PhoneNumber string `validate:"required,phone"`
}

// Check validates a fully assembled form in one pass. Field helpers below
// already gate each prompt; this is a final guard before any insert.
func Check(in UserInput) error {
	if err := v.Struct(in); err != nil {
		return fmt.Errorf("invalid user data: %w", err)
	}
	return nil
}

// NonEmpty trims the value and rejects blank input.
func NonEmpty(raw, field string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", fmt.Errorf("%s cannot be empty", field)
	}
	return trimmed, nil
}

// PositiveInt parses the value as a strictly positive integer.
func PositiveInt(raw, field string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%s must be a valid integer", field)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer", field)
	}
	return n, nil
}

// Email validates a local@domain.tld shaped address.
func Email(raw string) (string, error) {
	email := strings.TrimSpace(raw)
	if err := v.Var(email, "required,email"); err != nil {
		return "", fmt.Errorf("invalid email format")
	}
	return email, nil
}

// Password requires at least 4 characters.
func Password(raw string) (string, error) {
	if err := v.Var(raw, "min=4"); err != nil {
		return "", fmt.Errorf("password must be at least 4 characters long")
	}
	return raw, nil
}

// Phone validates a loosely grouped phone number.
func Phone(raw string) (string, error) {
	phone := strings.TrimSpace(raw)
	if err := v.Var(phone, "phone"); err != nil {
		return "", fmt.Errorf("invalid phone number format")
	}
	return phone, nil
}

package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Validation errors
var (
	ErrInvalidUserID   = errors.New("invalid user id")
	ErrInvalidUserName = errors.New("invalid user name")
	ErrInvalidPhone    = errors.New("invalid phone number")
)

// Validation constants
const (
	MaxUserIDLength   = 64
	MaxUserNameLength = 255
	PhoneLength       = 10
)

var phoneRegex = regexp.MustCompile(`^[0-9]{10}$`)

// ValidateUserID validates a wallet user id.
func ValidateUserID(userID string) error {
	userID = strings.TrimSpace(userID)

	if userID == "" {
		return fmt.Errorf("%w: user id cannot be empty", ErrInvalidUserID)
	}

	if len(userID) > MaxUserIDLength {
		return fmt.Errorf("%w: user id exceeds %d characters", ErrInvalidUserID, MaxUserIDLength)
	}

	return nil
}

// ValidateUserName validates a wallet display name.
func ValidateUserName(name string) error {
	name = strings.TrimSpace(name)

	if name == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidUserName)
	}

	if len(name) > MaxUserNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidUserName, MaxUserNameLength)
	}

	return nil
}

// ValidatePhone validates a phone number: exactly ten digits.
func ValidatePhone(phone string) error {
	if !phoneRegex.MatchString(phone) {
		return fmt.Errorf("%w: phone must be exactly %d digits", ErrInvalidPhone, PhoneLength)
	}

	return nil
}

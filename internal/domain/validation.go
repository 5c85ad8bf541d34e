package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Validation errors
var (
	ErrInvalidName        = errors.New("invalid name")
	ErrInvalidSocietyCode = errors.New("invalid society code")
	ErrAmountNegative     = errors.New("amount must not be negative")
	ErrAmountTooLarge     = errors.New("amount exceeds maximum allowed")
	ErrInvalidEmail       = errors.New("invalid email format")
	ErrPasswordTooWeak    = errors.New("password does not meet requirements")
	ErrInvalidEDPNumber   = errors.New("invalid EDP number")
)

// Validation constants
const (
	MaxNameLength     = 255
	MinNameLength     = 1
	MaxAmount         = "1000000000" // 1 billion
	MinPasswordLength = 8
	MaxPasswordLength = 128
)

var (
	emailRegex       = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	societyCodeRegex = regexp.MustCompile(`^[A-Z0-9_-]{2,16}$`)
	edpNumberRegex   = regexp.MustCompile(`^[A-Za-z0-9-]{3,20}$`)
)

// ValidateName validates member/society names
func ValidateName(name string) error {
	name = strings.TrimSpace(name)

	if len(name) < MinNameLength {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidName)
	}

	if len(name) > MaxNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidName, MaxNameLength)
	}

	return nil
}

// ValidateSocietyCode validates a society's short code
func ValidateSocietyCode(code string) error {
	if !societyCodeRegex.MatchString(strings.ToUpper(strings.TrimSpace(code))) {
		return fmt.Errorf("%w: %q", ErrInvalidSocietyCode, code)
	}

	return nil
}

// ValidateAmount validates a monetary amount field
func ValidateAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrAmountNegative
	}

	maxAmount, _ := decimal.NewFromString(MaxAmount)
	if amount.GreaterThan(maxAmount) {
		return fmt.Errorf("%w: maximum amount is %s", ErrAmountTooLarge, MaxAmount)
	}

	return nil
}

// ValidateEmail validates email format
func ValidateEmail(email string) error {
	email = strings.TrimSpace(strings.ToLower(email))

	if !emailRegex.MatchString(email) {
		return ErrInvalidEmail
	}

	return nil
}

// ValidateEDPNumber validates an employee EDP number
func ValidateEDPNumber(edp string) error {
	if !edpNumberRegex.MatchString(strings.TrimSpace(edp)) {
		return fmt.Errorf("%w: %q", ErrInvalidEDPNumber, edp)
	}

	return nil
}

// ValidatePassword validates password strength
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return fmt.Errorf("%w: must be at least %d characters", ErrPasswordTooWeak, MinPasswordLength)
	}

	if len(password) > MaxPasswordLength {
		return fmt.Errorf("%w: must not exceed %d characters", ErrPasswordTooWeak, MaxPasswordLength)
	}

	hasUpper := regexp.MustCompile(`[A-Z]`).MatchString(password)
	hasLower := regexp.MustCompile(`[a-z]`).MatchString(password)
	hasNumber := regexp.MustCompile(`[0-9]`).MatchString(password)

	if !hasUpper || !hasLower || !hasNumber {
		return fmt.Errorf("%w: must contain uppercase, lowercase, and numbers", ErrPasswordTooWeak)
	}

	return nil
}

// ValidatePagination validates and limits pagination parameters
func ValidatePagination(limit, offset int) (int, int) {
	const MaxPageSize = 1000
	const DefaultPageSize = 50

	if limit <= 0 {
		limit = DefaultPageSize
	}

	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	if offset < 0 {
		offset = 0
	}

	return limit, offset
}

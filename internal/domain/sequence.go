package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// Document number formats. The numeric suffix is the authoritative
// sequence: every generated number is strictly greater than the one it
// was derived from. Uniqueness is enforced by the database; callers
// must retry generation on a duplicate-number conflict.
const (
	memberNumberPrefix = "MEM_"

	// Loan and voucher numbers carry a fixed 3-character prefix:
	// a type initial followed by the two-digit year.
	docNumberPrefixLen = 3
)

// NextMemberNumber returns the member number following last, or
// "MEM_001" when no member exists yet (last == "").
func NextMemberNumber(last string) (string, error) {
	if last == "" {
		return memberNumberPrefix + "001", nil
	}

	suffix, ok := strings.CutPrefix(last, memberNumberPrefix)
	if !ok {
		return "", fmt.Errorf("%w: member number %q", ErrMalformedNumber, last)
	}

	n, err := strconv.Atoi(suffix)
	if err != nil || n < 0 {
		return "", fmt.Errorf("%w: member number %q", ErrMalformedNumber, last)
	}

	return fmt.Sprintf("%s%03d", memberNumberPrefix, n+1), nil
}

// NextLoanNumber returns the loan number following last, formatted as
// L{yy}{n:03d} with yy taken from now. The counter continues across
// year boundaries and resets to 1 only when no loan exists yet.
func NextLoanNumber(last string, now time.Time) (string, error) {
	n, err := nextDocSequence(last)
	if err != nil {
		return "", fmt.Errorf("%w: loan number %q", ErrMalformedNumber, last)
	}

	return fmt.Sprintf("L%02d%03d", now.Year()%100, n), nil
}

// NextVoucherNumber returns the voucher number following last for the
// given voucher type, formatted as {TypeInitial}{yy}{n:03d}. The
// counter is tracked per type initial and continues across year
// boundaries, resetting to 1 only when no voucher of that type exists.
func NextVoucherNumber(voucherType VoucherType, last string, now time.Time) (string, error) {
	if !voucherType.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidVoucherType, voucherType)
	}

	n, err := nextDocSequence(last)
	if err != nil {
		return "", fmt.Errorf("%w: voucher number %q", ErrMalformedNumber, last)
	}

	initial := unicode.ToUpper(rune(voucherType[0]))

	return fmt.Sprintf("%c%02d%03d", initial, now.Year()%100, n), nil
}

// ValidateMemberNumber checks that a caller-supplied member number
// matches the MEM_{n:03d} format the generator produces. A number that
// fails this check would break every later LastNumber query for the
// society, so it is rejected before it can be stored.
func ValidateMemberNumber(number string) error {
	suffix, ok := strings.CutPrefix(number, memberNumberPrefix)
	if !ok || !validDocSuffix(suffix) {
		return fmt.Errorf("%w: member number %q", ErrInvalidNumber, number)
	}

	return nil
}

// ValidateLoanNumber checks that a caller-supplied loan number matches
// the L{yy}{n:03d} format.
func ValidateLoanNumber(number string) error {
	if len(number) <= docNumberPrefixLen ||
		number[0] != 'L' ||
		!allDigits(number[1:docNumberPrefixLen]) ||
		!validDocSuffix(number[docNumberPrefixLen:]) {
		return fmt.Errorf("%w: loan number %q", ErrInvalidNumber, number)
	}

	return nil
}

// ValidateVoucherNumber checks that a caller-supplied voucher number
// matches the {TypeInitial}{yy}{n:03d} format for its voucher type.
func ValidateVoucherNumber(voucherType VoucherType, number string) error {
	if !voucherType.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidVoucherType, voucherType)
	}

	initial := byte(unicode.ToUpper(rune(voucherType[0])))

	if len(number) <= docNumberPrefixLen ||
		number[0] != initial ||
		!allDigits(number[1:docNumberPrefixLen]) ||
		!validDocSuffix(number[docNumberPrefixLen:]) {
		return fmt.Errorf("%w: voucher number %q", ErrInvalidNumber, number)
	}

	return nil
}

// validDocSuffix reports whether s is a sequence suffix with a value
// of at least one, zero-padded to at least 3 digits.
func validDocSuffix(s string) bool {
	if len(s) < 3 || !allDigits(s) {
		return false
	}

	n, err := strconv.Atoi(s)

	return err == nil && n >= 1
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return len(s) > 0
}

// nextDocSequence parses the numeric suffix after the fixed 3-char
// prefix of a loan or voucher number and returns it incremented.
func nextDocSequence(last string) (int, error) {
	if last == "" {
		return 1, nil
	}

	if len(last) <= docNumberPrefixLen {
		return 0, ErrMalformedNumber
	}

	n, err := strconv.Atoi(last[docNumberPrefixLen:])
	if err != nil || n < 0 {
		return 0, ErrMalformedNumber
	}

	return n + 1, nil
}

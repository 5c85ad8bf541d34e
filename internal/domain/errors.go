package domain

import "errors"

var (
	// Society errors
	ErrSocietyNotFound = errors.New("society not found")
	ErrSocietyInactive = errors.New("society is inactive")

	// Member errors
	ErrMemberNotFound        = errors.New("member not found")
	ErrMemberInactive        = errors.New("member is not active")
	ErrMemberSocietyMismatch = errors.New("member does not belong to the society")

	// Loan errors
	ErrLoanNotFound    = errors.New("loan not found")
	ErrInvalidLoanType = errors.New("invalid loan type")

	// Voucher errors
	ErrVoucherNotFound     = errors.New("voucher not found")
	ErrVoucherNotBalanced  = errors.New("voucher debit and credit totals do not balance")
	ErrVoucherEmpty        = errors.New("voucher must have at least one entry with a non-zero amount")
	ErrNegativeEntryAmount = errors.New("voucher entry amounts must be non-negative")
	ErrInvalidVoucherType  = errors.New("invalid voucher type")

	// Document numbering errors
	ErrMalformedNumber = errors.New("stored document number has unexpected format")
	ErrDuplicateNumber = errors.New("document number already issued")
	ErrInvalidNumber   = errors.New("document number does not match the issued format")

	// Demand errors
	ErrDemandNotFound = errors.New("demand statement not found")
	ErrInvalidPeriod  = errors.New("invalid month/year period")
)

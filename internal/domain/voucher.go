package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// VoucherType classifies a voucher. The uppercase first letter becomes
// the voucher number prefix.
type VoucherType string

const (
	VoucherTypePayment VoucherType = "payment"
	VoucherTypeReceipt VoucherType = "receipt"
	VoucherTypeJournal VoucherType = "journal"
	VoucherTypeContra  VoucherType = "contra"
)

var validVoucherTypes = map[VoucherType]bool{
	VoucherTypePayment: true,
	VoucherTypeReceipt: true,
	VoucherTypeJournal: true,
	VoucherTypeContra:  true,
}

// IsValid checks if the voucher type is known.
func (t VoucherType) IsValid() bool {
	return validVoucherTypes[t]
}

// VoucherEntry is a single debit/credit line of a voucher.
type VoucherEntry struct {
	Particulars string
	Debit       decimal.Decimal
	Credit      decimal.Decimal
}

// Voucher represents a double-entry bookkeeping record.
type Voucher struct {
	ID            string
	SocietyID     string
	VoucherNumber string
	Type          VoucherType
	Date          time.Time
	Narration     string
	Entries       []VoucherEntry
	CreatedBy     string
	CreatedAt     time.Time
}

// Totals returns the debit and credit sums over entries.
func Totals(entries []VoucherEntry) (totalDebit, totalCredit decimal.Decimal) {
	for _, e := range entries {
		totalDebit = totalDebit.Add(e.Debit)
		totalCredit = totalCredit.Add(e.Credit)
	}

	return totalDebit, totalCredit
}

// IsBalanced reports whether entries form a valid double-entry set:
// debit and credit totals are equal and non-zero.
func IsBalanced(entries []VoucherEntry) bool {
	totalDebit, totalCredit := Totals(entries)

	return totalDebit.Equal(totalCredit) && totalDebit.IsPositive()
}

// Validate checks that the voucher can be persisted. An unbalanced
// voucher must never reach the record store.
func (v *Voucher) Validate() error {
	if !v.Type.IsValid() {
		return ErrInvalidVoucherType
	}

	for _, e := range v.Entries {
		if e.Debit.IsNegative() || e.Credit.IsNegative() {
			return ErrNegativeEntryAmount
		}
	}

	totalDebit, totalCredit := Totals(v.Entries)
	if totalDebit.IsZero() && totalCredit.IsZero() {
		return ErrVoucherEmpty
	}

	if !totalDebit.Equal(totalCredit) {
		return ErrVoucherNotBalanced
	}

	return nil
}

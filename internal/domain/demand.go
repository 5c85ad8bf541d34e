package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DemandRow is one member's line in a monthly demand statement: the
// dues collected from the member for a given month/year.
type DemandRow struct {
	ID                string
	SocietyID         string
	MemberID          string
	MemberNumber      string
	Month             int
	Year              int
	ShareAmount       decimal.Decimal
	CDAmount          decimal.Decimal
	LoanInstallment   decimal.Decimal
	InterestAmount    decimal.Decimal
	Total             decimal.Decimal
	GeneratedAt       time.Time
}

// ComputeTotal sums the row's components. Stored alongside the
// components so statements stay readable without recomputation.
func (r *DemandRow) ComputeTotal() decimal.Decimal {
	return r.ShareAmount.
		Add(r.CDAmount).
		Add(r.LoanInstallment).
		Add(r.InterestAmount)
}

// MonthlyInterest returns the interest due for one month on an
// outstanding principal at a yearly percentage rate, rounded half-up
// to 2 decimal places.
func MonthlyInterest(outstanding, yearlyRate decimal.Decimal) decimal.Decimal {
	if outstanding.IsZero() || yearlyRate.IsZero() {
		return decimal.Zero
	}

	return outstanding.Mul(yearlyRate).DivRound(decimal.NewFromInt(1200), 2)
}

// ValidPeriod checks a month/year demand period.
func ValidPeriod(month, year int) bool {
	return month >= 1 && month <= 12 && year >= 1900 && year <= 2200
}

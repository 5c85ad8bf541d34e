package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LoanType classifies a loan product.
type LoanType string

const (
	LoanTypeGeneral   LoanType = "general"
	LoanTypeEmergency LoanType = "emergency"
	LoanTypeFestival  LoanType = "festival"
)

var validLoanTypes = map[LoanType]bool{
	LoanTypeGeneral:   true,
	LoanTypeEmergency: true,
	LoanTypeFestival:  true,
}

// IsValid checks if the loan type is a known loan product.
func (t LoanType) IsValid() bool {
	return validLoanTypes[t]
}

// LoanStatus is the lifecycle state of a loan.
type LoanStatus string

const (
	LoanStatusActive LoanStatus = "active"
	LoanStatusClosed LoanStatus = "closed"
)

// Loan represents a member loan. NetLoan and InstallmentAmount are
// derived from the other figures and recomputed whenever they change.
type Loan struct {
	ID                string
	SocietyID         string
	MemberID          string
	LoanNumber        string
	Type              LoanType
	LoanAmount        decimal.Decimal
	PreviousLoan      decimal.Decimal
	NetLoan           decimal.Decimal
	Installments      int
	InstallmentAmount decimal.Decimal
	Purpose           string
	Status            LoanStatus
	IssuedAt          time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// LoanFigures holds the derived loan amounts.
type LoanFigures struct {
	NetLoan           decimal.Decimal
	InstallmentAmount decimal.Decimal
}

// ComputeLoanFigures derives the net loan and per-installment amount.
// The net loan is the exact difference; the installment amount is
// rounded half-up to 2 decimal places. A non-positive installment
// count yields a zero installment amount rather than an error.
func ComputeLoanFigures(loanAmount, previousLoan decimal.Decimal, installments int) LoanFigures {
	netLoan := loanAmount.Sub(previousLoan)

	installmentAmount := decimal.Zero
	if installments > 0 {
		installmentAmount = netLoan.DivRound(decimal.NewFromInt(int64(installments)), 2)
	}

	return LoanFigures{
		NetLoan:           netLoan,
		InstallmentAmount: installmentAmount,
	}
}

package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Society represents a cooperative credit society (a tenant).
type Society struct {
	ID               string
	Code             string
	Name             string
	Address          string
	City             string
	Phone            string
	Email            string
	RegistrationNo   string
	LoanInterestRate decimal.Decimal
	CDInterestRate   decimal.Decimal
	MonthlyShare     decimal.Decimal
	MonthlyCD        decimal.Decimal
	Active           bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

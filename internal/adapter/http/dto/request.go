package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/rajesh2024-krita/fintcs/internal/domain"
	"github.com/rajesh2024-krita/fintcs/internal/usecase"
)

// CreateSocietyRequest represents a request to create a society.
type CreateSocietyRequest struct {
	Code             string          `json:"code"`
	Name             string          `json:"name"`
	Address          string          `json:"address,omitempty"`
	City             string          `json:"city,omitempty"`
	Phone            string          `json:"phone,omitempty"`
	Email            string          `json:"email,omitempty"`
	RegistrationNo   string          `json:"registration_no,omitempty"`
	LoanInterestRate decimal.Decimal `json:"loan_interest_rate"`
	CDInterestRate   decimal.Decimal `json:"cd_interest_rate"`
	MonthlyShare     decimal.Decimal `json:"monthly_share"`
	MonthlyCD        decimal.Decimal `json:"monthly_cd"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateSocietyRequest) ToUseCaseInput() usecase.CreateSocietyInput {
	return usecase.CreateSocietyInput{
		Code:             r.Code,
		Name:             r.Name,
		Address:          r.Address,
		City:             r.City,
		Phone:            r.Phone,
		Email:            r.Email,
		RegistrationNo:   r.RegistrationNo,
		LoanInterestRate: r.LoanInterestRate,
		CDInterestRate:   r.CDInterestRate,
		MonthlyShare:     r.MonthlyShare,
		MonthlyCD:        r.MonthlyCD,
	}
}

// UpdateSocietyRequest represents a request to update a society.
// Omitted fields are left unchanged.
type UpdateSocietyRequest struct {
	Name             *string          `json:"name,omitempty"`
	Address          *string          `json:"address,omitempty"`
	City             *string          `json:"city,omitempty"`
	Phone            *string          `json:"phone,omitempty"`
	Email            *string          `json:"email,omitempty"`
	LoanInterestRate *decimal.Decimal `json:"loan_interest_rate,omitempty"`
	CDInterestRate   *decimal.Decimal `json:"cd_interest_rate,omitempty"`
	MonthlyShare     *decimal.Decimal `json:"monthly_share,omitempty"`
	MonthlyCD        *decimal.Decimal `json:"monthly_cd,omitempty"`
	Active           *bool            `json:"active,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *UpdateSocietyRequest) ToUseCaseInput(id string) usecase.UpdateSocietyInput {
	return usecase.UpdateSocietyInput{
		ID:               id,
		Name:             r.Name,
		Address:          r.Address,
		City:             r.City,
		Phone:            r.Phone,
		Email:            r.Email,
		LoanInterestRate: r.LoanInterestRate,
		CDInterestRate:   r.CDInterestRate,
		MonthlyShare:     r.MonthlyShare,
		MonthlyCD:        r.MonthlyCD,
		Active:           r.Active,
	}
}

// CreateMemberRequest represents a request to enroll a member.
type CreateMemberRequest struct {
	SocietyID     string          `json:"society_id"`
	MemberNumber  string          `json:"member_number,omitempty"`
	Name          string          `json:"name"`
	FatherHusband string          `json:"father_husband,omitempty"`
	Address       string          `json:"address,omitempty"`
	Phone         string          `json:"phone,omitempty"`
	Email         string          `json:"email,omitempty"`
	DateOfJoining *time.Time      `json:"date_of_joining,omitempty"`
	ShareBalance  decimal.Decimal `json:"share_balance"`
	CDBalance     decimal.Decimal `json:"cd_balance"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateMemberRequest) ToUseCaseInput() usecase.CreateMemberInput {
	return usecase.CreateMemberInput{
		SocietyID:     r.SocietyID,
		MemberNumber:  r.MemberNumber,
		Name:          r.Name,
		FatherHusband: r.FatherHusband,
		Address:       r.Address,
		Phone:         r.Phone,
		Email:         r.Email,
		DateOfJoining: r.DateOfJoining,
		ShareBalance:  r.ShareBalance,
		CDBalance:     r.CDBalance,
	}
}

// UpdateMemberRequest represents a request to update a member. The
// member number is not updatable.
type UpdateMemberRequest struct {
	Name          *string              `json:"name,omitempty"`
	FatherHusband *string              `json:"father_husband,omitempty"`
	Address       *string              `json:"address,omitempty"`
	Phone         *string              `json:"phone,omitempty"`
	Email         *string              `json:"email,omitempty"`
	ShareBalance  *decimal.Decimal     `json:"share_balance,omitempty"`
	CDBalance     *decimal.Decimal     `json:"cd_balance,omitempty"`
	Status        *domain.MemberStatus `json:"status,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *UpdateMemberRequest) ToUseCaseInput(id string) usecase.UpdateMemberInput {
	return usecase.UpdateMemberInput{
		ID:            id,
		Name:          r.Name,
		FatherHusband: r.FatherHusband,
		Address:       r.Address,
		Phone:         r.Phone,
		Email:         r.Email,
		ShareBalance:  r.ShareBalance,
		CDBalance:     r.CDBalance,
		Status:        r.Status,
	}
}

// CreateLoanRequest represents a request to issue a loan.
type CreateLoanRequest struct {
	SocietyID    string          `json:"society_id"`
	MemberID     string          `json:"member_id"`
	LoanNumber   string          `json:"loan_number,omitempty"`
	Type         domain.LoanType `json:"type"`
	LoanAmount   decimal.Decimal `json:"loan_amount"`
	PreviousLoan decimal.Decimal `json:"previous_loan"`
	Installments int             `json:"installments"`
	Purpose      string          `json:"purpose,omitempty"`
	IssuedAt     *time.Time      `json:"issued_at,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateLoanRequest) ToUseCaseInput() usecase.CreateLoanInput {
	return usecase.CreateLoanInput{
		SocietyID:    r.SocietyID,
		MemberID:     r.MemberID,
		LoanNumber:   r.LoanNumber,
		Type:         r.Type,
		LoanAmount:   r.LoanAmount,
		PreviousLoan: r.PreviousLoan,
		Installments: r.Installments,
		Purpose:      r.Purpose,
		IssuedAt:     r.IssuedAt,
	}
}

// UpdateLoanRequest represents a request to update a loan. Changing
// any figure recomputes the net loan and installment amount.
type UpdateLoanRequest struct {
	LoanAmount   *decimal.Decimal   `json:"loan_amount,omitempty"`
	PreviousLoan *decimal.Decimal   `json:"previous_loan,omitempty"`
	Installments *int               `json:"installments,omitempty"`
	Purpose      *string            `json:"purpose,omitempty"`
	Status       *domain.LoanStatus `json:"status,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *UpdateLoanRequest) ToUseCaseInput(id string) usecase.UpdateLoanInput {
	return usecase.UpdateLoanInput{
		ID:           id,
		LoanAmount:   r.LoanAmount,
		PreviousLoan: r.PreviousLoan,
		Installments: r.Installments,
		Purpose:      r.Purpose,
		Status:       r.Status,
	}
}

// VoucherEntryItem is a single debit/credit line in a voucher request.
type VoucherEntryItem struct {
	Particulars string          `json:"particulars"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// CreateVoucherRequest represents a request to record a voucher.
type CreateVoucherRequest struct {
	SocietyID     string             `json:"society_id"`
	VoucherNumber string             `json:"voucher_number,omitempty"`
	Type          domain.VoucherType `json:"type"`
	Date          *time.Time         `json:"date,omitempty"`
	Narration     string             `json:"narration,omitempty"`
	Entries       []VoucherEntryItem `json:"entries"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateVoucherRequest) ToUseCaseInput(createdBy string) usecase.CreateVoucherInput {
	entries := make([]domain.VoucherEntry, len(r.Entries))
	for i, e := range r.Entries {
		entries[i] = domain.VoucherEntry{
			Particulars: e.Particulars,
			Debit:       e.Debit,
			Credit:      e.Credit,
		}
	}

	return usecase.CreateVoucherInput{
		SocietyID:     r.SocietyID,
		VoucherNumber: r.VoucherNumber,
		Type:          r.Type,
		Date:          r.Date,
		Narration:     r.Narration,
		Entries:       entries,
		CreatedBy:     createdBy,
	}
}

// GenerateDemandRequest represents a request to generate the monthly
// demand statement.
type GenerateDemandRequest struct {
	SocietyID string `json:"society_id"`
	Month     int    `json:"month"`
	Year      int    `json:"year"`
}

// ToUseCaseInput converts to use case input.
func (r *GenerateDemandRequest) ToUseCaseInput() usecase.GenerateDemandInput {
	return usecase.GenerateDemandInput{
		SocietyID: r.SocietyID,
		Month:     r.Month,
		Year:      r.Year,
	}
}

// CreateUserRequest represents a request to create a user.
type CreateUserRequest struct {
	EDPNumber string      `json:"edp_number"`
	Email     string      `json:"email"`
	Name      string      `json:"name"`
	Password  string      `json:"password"`
	Role      domain.Role `json:"role"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateUserRequest) ToUseCaseInput() usecase.CreateUserInput {
	return usecase.CreateUserInput{
		EDPNumber: r.EDPNumber,
		Email:     r.Email,
		Name:      r.Name,
		Password:  r.Password,
		Role:      r.Role,
	}
}

// UpdateUserRequest represents a request to update a user.
type UpdateUserRequest struct {
	Name     *string      `json:"name,omitempty"`
	Role     *domain.Role `json:"role,omitempty"`
	Active   *bool        `json:"active,omitempty"`
	Password *string      `json:"password,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *UpdateUserRequest) ToUseCaseInput(id string) usecase.UpdateUserInput {
	return usecase.UpdateUserInput{
		ID:       id,
		Name:     r.Name,
		Role:     r.Role,
		Active:   r.Active,
		Password: r.Password,
	}
}

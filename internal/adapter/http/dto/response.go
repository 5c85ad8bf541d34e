package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/rajesh2024-krita/fintcs/internal/domain"
)

// SocietyResponse represents a society in API responses.
type SocietyResponse struct {
	ID               string          `json:"id"`
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
	Active           bool            `json:"active"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// SocietyFromDomain converts a domain society to a response.
func SocietyFromDomain(s *domain.Society) *SocietyResponse {
	return &SocietyResponse{
		ID:               s.ID,
		Code:             s.Code,
		Name:             s.Name,
		Address:          s.Address,
		City:             s.City,
		Phone:            s.Phone,
		Email:            s.Email,
		RegistrationNo:   s.RegistrationNo,
		LoanInterestRate: s.LoanInterestRate,
		CDInterestRate:   s.CDInterestRate,
		MonthlyShare:     s.MonthlyShare,
		MonthlyCD:        s.MonthlyCD,
		Active:           s.Active,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
}

// SocietiesFromDomain converts a slice of domain societies.
func SocietiesFromDomain(societies []*domain.Society) []*SocietyResponse {
	responses := make([]*SocietyResponse, len(societies))
	for i, s := range societies {
		responses[i] = SocietyFromDomain(s)
	}
	return responses
}

// MemberResponse represents a member in API responses.
type MemberResponse struct {
	ID            string              `json:"id"`
	SocietyID     string              `json:"society_id"`
	MemberNumber  string              `json:"member_number"`
	Name          string              `json:"name"`
	FatherHusband string              `json:"father_husband,omitempty"`
	Address       string              `json:"address,omitempty"`
	Phone         string              `json:"phone,omitempty"`
	Email         string              `json:"email,omitempty"`
	DateOfJoining time.Time           `json:"date_of_joining"`
	ShareBalance  decimal.Decimal     `json:"share_balance"`
	CDBalance     decimal.Decimal     `json:"cd_balance"`
	Status        domain.MemberStatus `json:"status"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

// MemberFromDomain converts a domain member to a response.
func MemberFromDomain(m *domain.Member) *MemberResponse {
	return &MemberResponse{
		ID:            m.ID,
		SocietyID:     m.SocietyID,
		MemberNumber:  m.MemberNumber,
		Name:          m.Name,
		FatherHusband: m.FatherHusband,
		Address:       m.Address,
		Phone:         m.Phone,
		Email:         m.Email,
		DateOfJoining: m.DateOfJoining,
		ShareBalance:  m.ShareBalance,
		CDBalance:     m.CDBalance,
		Status:        m.Status,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// MembersFromDomain converts a slice of domain members.
func MembersFromDomain(members []*domain.Member) []*MemberResponse {
	responses := make([]*MemberResponse, len(members))
	for i, m := range members {
		responses[i] = MemberFromDomain(m)
	}
	return responses
}

// LoanResponse represents a loan in API responses. NetLoan and
// InstallmentAmount are the derived figures.
type LoanResponse struct {
	ID                string            `json:"id"`
	SocietyID         string            `json:"society_id"`
	MemberID          string            `json:"member_id"`
	LoanNumber        string            `json:"loan_number"`
	Type              domain.LoanType   `json:"type"`
	LoanAmount        decimal.Decimal   `json:"loan_amount"`
	PreviousLoan      decimal.Decimal   `json:"previous_loan"`
	NetLoan           decimal.Decimal   `json:"net_loan"`
	Installments      int               `json:"installments"`
	InstallmentAmount decimal.Decimal   `json:"installment_amount"`
	Purpose           string            `json:"purpose,omitempty"`
	Status            domain.LoanStatus `json:"status"`
	IssuedAt          time.Time         `json:"issued_at"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
}

// LoanFromDomain converts a domain loan to a response.
func LoanFromDomain(l *domain.Loan) *LoanResponse {
	return &LoanResponse{
		ID:                l.ID,
		SocietyID:         l.SocietyID,
		MemberID:          l.MemberID,
		LoanNumber:        l.LoanNumber,
		Type:              l.Type,
		LoanAmount:        l.LoanAmount,
		PreviousLoan:      l.PreviousLoan,
		NetLoan:           l.NetLoan,
		Installments:      l.Installments,
		InstallmentAmount: l.InstallmentAmount,
		Purpose:           l.Purpose,
		Status:            l.Status,
		IssuedAt:          l.IssuedAt,
		CreatedAt:         l.CreatedAt,
		UpdatedAt:         l.UpdatedAt,
	}
}

// LoansFromDomain converts a slice of domain loans.
func LoansFromDomain(loans []*domain.Loan) []*LoanResponse {
	responses := make([]*LoanResponse, len(loans))
	for i, l := range loans {
		responses[i] = LoanFromDomain(l)
	}
	return responses
}

// VoucherEntryResponse is a single voucher line in API responses.
type VoucherEntryResponse struct {
	Particulars string          `json:"particulars"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// VoucherResponse represents a voucher in API responses. TotalDebit
// and TotalCredit are always equal for a persisted voucher.
type VoucherResponse struct {
	ID            string                 `json:"id"`
	SocietyID     string                 `json:"society_id"`
	VoucherNumber string                 `json:"voucher_number"`
	Type          domain.VoucherType     `json:"type"`
	Date          time.Time              `json:"date"`
	Narration     string                 `json:"narration,omitempty"`
	Entries       []VoucherEntryResponse `json:"entries"`
	TotalDebit    decimal.Decimal        `json:"total_debit"`
	TotalCredit   decimal.Decimal        `json:"total_credit"`
	CreatedBy     string                 `json:"created_by,omitempty"`
	CreatedAt     time.Time              `json:"created_at"`
}

// VoucherFromDomain converts a domain voucher to a response.
func VoucherFromDomain(v *domain.Voucher) *VoucherResponse {
	entries := make([]VoucherEntryResponse, len(v.Entries))
	for i, e := range v.Entries {
		entries[i] = VoucherEntryResponse{
			Particulars: e.Particulars,
			Debit:       e.Debit,
			Credit:      e.Credit,
		}
	}

	totalDebit, totalCredit := domain.Totals(v.Entries)

	return &VoucherResponse{
		ID:            v.ID,
		SocietyID:     v.SocietyID,
		VoucherNumber: v.VoucherNumber,
		Type:          v.Type,
		Date:          v.Date,
		Narration:     v.Narration,
		Entries:       entries,
		TotalDebit:    totalDebit,
		TotalCredit:   totalCredit,
		CreatedBy:     v.CreatedBy,
		CreatedAt:     v.CreatedAt,
	}
}

// VouchersFromDomain converts a slice of domain vouchers.
func VouchersFromDomain(vouchers []*domain.Voucher) []*VoucherResponse {
	responses := make([]*VoucherResponse, len(vouchers))
	for i, v := range vouchers {
		responses[i] = VoucherFromDomain(v)
	}
	return responses
}

// DemandRowResponse is one member's line of a demand statement.
type DemandRowResponse struct {
	MemberID        string          `json:"member_id"`
	MemberNumber    string          `json:"member_number"`
	ShareAmount     decimal.Decimal `json:"share_amount"`
	CDAmount        decimal.Decimal `json:"cd_amount"`
	LoanInstallment decimal.Decimal `json:"loan_installment"`
	InterestAmount  decimal.Decimal `json:"interest_amount"`
	Total           decimal.Decimal `json:"total"`
}

// DemandStatementResponse is the full monthly demand statement for a
// society, with per-column grand totals.
type DemandStatementResponse struct {
	SocietyID            string              `json:"society_id"`
	Month                int                 `json:"month"`
	Year                 int                 `json:"year"`
	Rows                 []DemandRowResponse `json:"rows"`
	TotalShareAmount     decimal.Decimal     `json:"total_share_amount"`
	TotalCDAmount        decimal.Decimal     `json:"total_cd_amount"`
	TotalLoanInstallment decimal.Decimal     `json:"total_loan_installment"`
	TotalInterestAmount  decimal.Decimal     `json:"total_interest_amount"`
	GrandTotal           decimal.Decimal     `json:"grand_total"`
}

// DemandStatementFromDomain assembles a statement response from rows.
func DemandStatementFromDomain(societyID string, month, year int, rows []*domain.DemandRow) *DemandStatementResponse {
	resp := &DemandStatementResponse{
		SocietyID: societyID,
		Month:     month,
		Year:      year,
		Rows:      make([]DemandRowResponse, len(rows)),
	}

	for i, row := range rows {
		resp.Rows[i] = DemandRowResponse{
			MemberID:        row.MemberID,
			MemberNumber:    row.MemberNumber,
			ShareAmount:     row.ShareAmount,
			CDAmount:        row.CDAmount,
			LoanInstallment: row.LoanInstallment,
			InterestAmount:  row.InterestAmount,
			Total:           row.Total,
		}
		resp.TotalShareAmount = resp.TotalShareAmount.Add(row.ShareAmount)
		resp.TotalCDAmount = resp.TotalCDAmount.Add(row.CDAmount)
		resp.TotalLoanInstallment = resp.TotalLoanInstallment.Add(row.LoanInstallment)
		resp.TotalInterestAmount = resp.TotalInterestAmount.Add(row.InterestAmount)
		resp.GrandTotal = resp.GrandTotal.Add(row.Total)
	}

	return resp
}

// UserResponse represents a user in API responses. The password hash
// is never included.
type UserResponse struct {
	ID        string      `json:"id"`
	EDPNumber string      `json:"edp_number"`
	Email     string      `json:"email"`
	Name      string      `json:"name"`
	Role      domain.Role `json:"role"`
	Active    bool        `json:"active"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// UserFromDomain converts a domain user to a response.
func UserFromDomain(u *domain.User) *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		EDPNumber: u.EDPNumber,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// UsersFromDomain converts a slice of domain users.
func UsersFromDomain(users []*domain.User) []*UserResponse {
	responses := make([]*UserResponse, len(users))
	for i, u := range users {
		responses[i] = UserFromDomain(u)
	}
	return responses
}

// ListSocietiesResponse wraps a page of societies.
type ListSocietiesResponse struct {
	Societies []*SocietyResponse `json:"societies"`
	Total     int64              `json:"total"`
}

// ListMembersResponse wraps a page of members.
type ListMembersResponse struct {
	Members []*MemberResponse `json:"members"`
	Total   int64             `json:"total"`
}

// ListLoansResponse wraps a page of loans.
type ListLoansResponse struct {
	Loans []*LoanResponse `json:"loans"`
	Total int64           `json:"total"`
}

// ListVouchersResponse wraps a page of vouchers.
type ListVouchersResponse struct {
	Vouchers []*VoucherResponse `json:"vouchers"`
	Total    int64              `json:"total"`
}

// ListUsersResponse wraps a page of users.
type ListUsersResponse struct {
	Users []*UserResponse `json:"users"`
	Total int64           `json:"total"`
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rajesh2024-krita/fintcs/internal/domain"
	"github.com/rajesh2024-krita/fintcs/internal/infrastructure/metrics"
)

// LoanUseCase handles loan business logic.
type LoanUseCase struct {
	loanRepo    LoanRepository
	memberRepo  MemberRepository
	societyRepo SocietyRepository
	idGen       IDGenerator
	retrier     Retrier
	metrics     *metrics.Metrics
}

// NewLoanUseCase creates a new LoanUseCase.
func NewLoanUseCase(
	loanRepo LoanRepository,
	memberRepo MemberRepository,
	societyRepo SocietyRepository,
	idGen IDGenerator,
	retrier Retrier,
	metrics *metrics.Metrics,
) *LoanUseCase {
	return &LoanUseCase{
		loanRepo:    loanRepo,
		memberRepo:  memberRepo,
		societyRepo: societyRepo,
		idGen:       idGen,
		retrier:     retrier,
		metrics:     metrics,
	}
}

// CreateLoanInput represents input for creating a loan.
type CreateLoanInput struct {
	SocietyID    string
	MemberID     string
	LoanNumber   string // optional; generated when empty
	Type         domain.LoanType
	LoanAmount   decimal.Decimal
	PreviousLoan decimal.Decimal
	Installments int
	Purpose      string
	IssuedAt     *time.Time
}

// CreateLoan creates a new loan. The net loan and installment amount
// are derived from the input figures, and the loan number is generated
// from the society's sequence unless supplied by the caller. The
// member must belong to the society the loan is recorded under.
func (uc *LoanUseCase) CreateLoan(ctx context.Context, input CreateLoanInput) (*domain.Loan, error) {
	if err := domain.ValidateAmount(input.LoanAmount); err != nil {
		return nil, err
	}

	if err := domain.ValidateAmount(input.PreviousLoan); err != nil {
		return nil, err
	}

	loanType := input.Type
	if loanType == "" {
		loanType = domain.LoanTypeGeneral
	}
	if !loanType.IsValid() {
		return nil, domain.ErrInvalidLoanType
	}

	if input.LoanNumber != "" {
		if err := domain.ValidateLoanNumber(input.LoanNumber); err != nil {
			return nil, err
		}
	}

	society, err := uc.societyRepo.GetByID(ctx, input.SocietyID)
	if err != nil {
		return nil, err
	}

	if !society.Active {
		return nil, domain.ErrSocietyInactive
	}

	member, err := uc.memberRepo.GetByID(ctx, input.MemberID)
	if err != nil {
		return nil, err
	}

	if member.SocietyID != input.SocietyID {
		return nil, domain.ErrMemberSocietyMismatch
	}

	if member.Status != domain.MemberStatusActive {
		return nil, domain.ErrMemberInactive
	}

	now := time.Now().UTC()

	issuedAt := now
	if input.IssuedAt != nil {
		issuedAt = *input.IssuedAt
	}

	figures := domain.ComputeLoanFigures(input.LoanAmount, input.PreviousLoan, input.Installments)

	var loan *domain.Loan

	attempt := func() error {
		number := input.LoanNumber
		if number == "" {
			last, err := uc.loanRepo.LastNumber(ctx, input.SocietyID)
			if err != nil {
				return err
			}

			number, err = domain.NextLoanNumber(last, issuedAt)
			if err != nil {
				return err
			}
		}

		loan = &domain.Loan{
			ID:                uc.idGen.Generate(),
			SocietyID:         input.SocietyID,
			MemberID:          input.MemberID,
			LoanNumber:        number,
			Type:              loanType,
			LoanAmount:        input.LoanAmount,
			PreviousLoan:      input.PreviousLoan,
			NetLoan:           figures.NetLoan,
			Installments:      input.Installments,
			InstallmentAmount: figures.InstallmentAmount,
			Purpose:           input.Purpose,
			Status:            domain.LoanStatusActive,
			IssuedAt:          issuedAt,
			CreatedAt:         now,
			UpdatedAt:         now,
		}

		if err := uc.loanRepo.Create(ctx, loan); err != nil {
			if uc.metrics != nil && errors.Is(err, domain.ErrDuplicateNumber) {
				uc.metrics.NumberRetries.WithLabelValues("loan").Inc()
			}
			return err
		}

		return nil
	}

	// A supplied number cannot be regenerated, so a duplicate is a
	// real conflict; only generated numbers go through the retrier.
	if input.LoanNumber != "" {
		err = attempt()
	} else {
		err = uc.retrier.Retry(ctx, attempt)
	}
	if err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.LoansCreated.Inc()
		uc.metrics.LoanAmount.Observe(input.LoanAmount.InexactFloat64())
	}

	return loan, nil
}

// GetLoan retrieves a loan by ID.
func (uc *LoanUseCase) GetLoan(ctx context.Context, id string) (*domain.Loan, error) {
	return uc.loanRepo.GetByID(ctx, id)
}

// UpdateLoanInput represents input for updating a loan.
type UpdateLoanInput struct {
	ID           string
	LoanAmount   *decimal.Decimal
	PreviousLoan *decimal.Decimal
	Installments *int
	Purpose      *string
	Status       *domain.LoanStatus
}

// UpdateLoan updates loan fields and recomputes the derived figures
// whenever any input figure changes.
func (uc *LoanUseCase) UpdateLoan(ctx context.Context, input UpdateLoanInput) (*domain.Loan, error) {
	loan, err := uc.loanRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	recompute := false

	if input.LoanAmount != nil {
		if err := domain.ValidateAmount(*input.LoanAmount); err != nil {
			return nil, err
		}
		loan.LoanAmount = *input.LoanAmount
		recompute = true
	}

	if input.PreviousLoan != nil {
		if err := domain.ValidateAmount(*input.PreviousLoan); err != nil {
			return nil, err
		}
		loan.PreviousLoan = *input.PreviousLoan
		recompute = true
	}

	if input.Installments != nil {
		loan.Installments = *input.Installments
		recompute = true
	}

	if input.Purpose != nil {
		loan.Purpose = *input.Purpose
	}

	if input.Status != nil {
		loan.Status = *input.Status
	}

	if recompute {
		figures := domain.ComputeLoanFigures(loan.LoanAmount, loan.PreviousLoan, loan.Installments)
		loan.NetLoan = figures.NetLoan
		loan.InstallmentAmount = figures.InstallmentAmount
	}

	loan.UpdatedAt = time.Now().UTC()

	if err := uc.loanRepo.Update(ctx, loan); err != nil {
		return nil, err
	}

	return loan, nil
}

// DeleteLoan deletes a loan.
func (uc *LoanUseCase) DeleteLoan(ctx context.Context, id string) error {
	return uc.loanRepo.Delete(ctx, id)
}

// ListLoansInput represents input for listing loans.
type ListLoansInput struct {
	SocietyID string
	MemberID  string
	Limit     int
	Offset    int
}

// ListLoans lists loans for a society, or for a single member when
// MemberID is set.
func (uc *LoanUseCase) ListLoans(ctx context.Context, input ListLoansInput) ([]*domain.Loan, error) {
	limit, offset := domain.ValidatePagination(input.Limit, input.Offset)

	if input.MemberID != "" {
		return uc.loanRepo.ListByMember(ctx, input.MemberID, limit, offset)
	}

	return uc.loanRepo.ListBySociety(ctx, input.SocietyID, limit, offset)
}

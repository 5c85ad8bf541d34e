package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/rajesh2024-krita/fintcs/internal/domain"
	"github.com/rajesh2024-krita/fintcs/internal/infrastructure/logging"
	"github.com/rajesh2024-krita/fintcs/internal/infrastructure/metrics"
)

// DemandUseCase generates and serves monthly demand statements.
type DemandUseCase struct {
	txManager   TransactionManager
	demandRepo  DemandRepository
	memberRepo  MemberRepository
	loanRepo    LoanRepository
	societyRepo SocietyRepository
	idGen       IDGenerator
	logger      *logging.Logger
	metrics     *metrics.Metrics
}

// NewDemandUseCase creates a new DemandUseCase.
func NewDemandUseCase(
	txManager TransactionManager,
	demandRepo DemandRepository,
	memberRepo MemberRepository,
	loanRepo LoanRepository,
	societyRepo SocietyRepository,
	idGen IDGenerator,
	logger *logging.Logger,
	metrics *metrics.Metrics,
) *DemandUseCase {
	return &DemandUseCase{
		txManager:   txManager,
		demandRepo:  demandRepo,
		memberRepo:  memberRepo,
		loanRepo:    loanRepo,
		societyRepo: societyRepo,
		idGen:       idGen,
		logger:      logger,
		metrics:     metrics,
	}
}

// GenerateDemandInput represents input for generating a monthly demand
// statement.
type GenerateDemandInput struct {
	SocietyID string
	Month     int
	Year      int
}

// GenerateDemand computes one demand row per active member for the
// period: the society's monthly share and CD contributions, the
// member's current loan installment, and one month of interest on the
// outstanding principal. Regenerating a period replaces its rows, so
// the operation is idempotent per society and period.
func (uc *DemandUseCase) GenerateDemand(ctx context.Context, input GenerateDemandInput) ([]*domain.DemandRow, error) {
	if !domain.ValidPeriod(input.Month, input.Year) {
		return nil, domain.ErrInvalidPeriod
	}

	start := time.Now()
	ctx = context.WithValue(ctx, logging.SocietyIDKey, input.SocietyID)

	society, err := uc.societyRepo.GetByID(ctx, input.SocietyID)
	if err != nil {
		return nil, err
	}

	members, err := uc.memberRepo.ListActiveBySociety(ctx, input.SocietyID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	if err := uc.demandRepo.DeleteForPeriod(ctx, tx, input.SocietyID, input.Month, input.Year); err != nil {
		return nil, err
	}

	rows := make([]*domain.DemandRow, 0, len(members))

	for _, member := range members {
		row := &domain.DemandRow{
			ID:           uc.idGen.Generate(),
			SocietyID:    input.SocietyID,
			MemberID:     member.ID,
			MemberNumber: member.MemberNumber,
			Month:        input.Month,
			Year:         input.Year,
			ShareAmount:  society.MonthlyShare,
			CDAmount:     society.MonthlyCD,
			GeneratedAt:  now,
		}

		loan, err := uc.loanRepo.GetActiveByMember(ctx, member.ID)
		switch {
		case err == nil:
			row.LoanInstallment = loan.InstallmentAmount
			row.InterestAmount = domain.MonthlyInterest(loan.NetLoan, society.LoanInterestRate)
		case errors.Is(err, domain.ErrLoanNotFound):
			// No dues beyond share and CD.
		default:
			return nil, err
		}

		row.Total = row.ComputeTotal()

		if err := uc.demandRepo.CreateRow(ctx, tx, row); err != nil {
			return nil, err
		}

		rows = append(rows, row)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	if uc.logger != nil {
		uc.logger.InfoCtx(ctx, "demand statement generated",
			"month", input.Month,
			"year", input.Year,
			"rows", len(rows),
		)
	}

	if uc.metrics != nil {
		uc.metrics.DemandGenerations.Inc()
		uc.metrics.DemandRows.Observe(float64(len(rows)))
		uc.metrics.DemandDuration.Observe(time.Since(start).Seconds())
	}

	return rows, nil
}

// GetDemandInput represents input for fetching a demand statement.
type GetDemandInput struct {
	SocietyID string
	Month     int
	Year      int
}

// GetDemand returns the stored demand rows for a period.
func (uc *DemandUseCase) GetDemand(ctx context.Context, input GetDemandInput) ([]*domain.DemandRow, error) {
	if !domain.ValidPeriod(input.Month, input.Year) {
		return nil, domain.ErrInvalidPeriod
	}

	return uc.demandRepo.ListForPeriod(ctx, input.SocietyID, input.Month, input.Year)
}

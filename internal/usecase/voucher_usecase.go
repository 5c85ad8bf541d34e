package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rajesh2024-krita/fintcs/internal/domain"
	"github.com/rajesh2024-krita/fintcs/internal/infrastructure/metrics"
)

// VoucherUseCase handles voucher business logic.
type VoucherUseCase struct {
	txManager   TransactionManager
	voucherRepo VoucherRepository
	societyRepo SocietyRepository
	idGen       IDGenerator
	retrier     Retrier
	metrics     *metrics.Metrics
}

// NewVoucherUseCase creates a new VoucherUseCase.
func NewVoucherUseCase(
	txManager TransactionManager,
	voucherRepo VoucherRepository,
	societyRepo SocietyRepository,
	idGen IDGenerator,
	retrier Retrier,
	metrics *metrics.Metrics,
) *VoucherUseCase {
	return &VoucherUseCase{
		txManager:   txManager,
		voucherRepo: voucherRepo,
		societyRepo: societyRepo,
		idGen:       idGen,
		retrier:     retrier,
		metrics:     metrics,
	}
}

// CreateVoucherInput represents input for creating a voucher.
type CreateVoucherInput struct {
	SocietyID     string
	VoucherNumber string // optional; generated when empty
	Type          domain.VoucherType
	Date          *time.Time
	Narration     string
	Entries       []domain.VoucherEntry
	CreatedBy     string
}

// CreateVoucher validates the double-entry balance and persists the
// voucher with its entries atomically. An unbalanced voucher never
// reaches the record store.
func (uc *VoucherUseCase) CreateVoucher(ctx context.Context, input CreateVoucherInput) (*domain.Voucher, error) {
	if input.VoucherNumber != "" {
		if err := domain.ValidateVoucherNumber(input.Type, input.VoucherNumber); err != nil {
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

	now := time.Now().UTC()

	date := now
	if input.Date != nil {
		date = *input.Date
	}

	var voucher *domain.Voucher

	attempt := func() error {
		number := input.VoucherNumber
		if number == "" {
			last, err := uc.voucherRepo.LastNumber(ctx, input.SocietyID, input.Type)
			if err != nil {
				return err
			}

			number, err = domain.NextVoucherNumber(input.Type, last, date)
			if err != nil {
				return err
			}
		}

		voucher = &domain.Voucher{
			ID:            uc.idGen.Generate(),
			SocietyID:     input.SocietyID,
			VoucherNumber: number,
			Type:          input.Type,
			Date:          date,
			Narration:     input.Narration,
			Entries:       input.Entries,
			CreatedBy:     input.CreatedBy,
			CreatedAt:     now,
		}

		if err := voucher.Validate(); err != nil {
			if uc.metrics != nil {
				uc.metrics.VouchersRejected.WithLabelValues(rejectionReason(err)).Inc()
			}
			return err
		}

		tx, err := uc.txManager.Begin(ctx)
		if err != nil {
			return err
		}
		defer tx.Rollback(ctx)

		if err := uc.voucherRepo.Create(ctx, tx, voucher); err != nil {
			if uc.metrics != nil && errors.Is(err, domain.ErrDuplicateNumber) {
				uc.metrics.NumberRetries.WithLabelValues("voucher").Inc()
			}
			return err
		}

		return tx.Commit(ctx)
	}

	// A supplied number cannot be regenerated, so a duplicate is a
	// real conflict; only generated numbers go through the retrier.
	if input.VoucherNumber != "" {
		err = attempt()
	} else {
		err = uc.retrier.Retry(ctx, attempt)
	}
	if err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.VouchersCreated.WithLabelValues(string(input.Type)).Inc()
		uc.metrics.VoucherDuration.Observe(time.Since(now).Seconds())
	}

	return voucher, nil
}

// rejectionReason labels a voucher validation failure for metrics.
func rejectionReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrVoucherNotBalanced):
		return "unbalanced"
	case errors.Is(err, domain.ErrVoucherEmpty):
		return "empty"
	case errors.Is(err, domain.ErrNegativeEntryAmount):
		return "negative_amount"
	case errors.Is(err, domain.ErrInvalidVoucherType):
		return "invalid_type"
	default:
		return "invalid"
	}
}

// GetVoucher retrieves a voucher with its entries.
func (uc *VoucherUseCase) GetVoucher(ctx context.Context, id string) (*domain.Voucher, error) {
	return uc.voucherRepo.GetByID(ctx, id)
}

// VoucherTotals returns the debit and credit totals of a stored
// voucher for display and audit.
func (uc *VoucherUseCase) VoucherTotals(ctx context.Context, id string) (totalDebit, totalCredit decimal.Decimal, err error) {
	voucher, err := uc.voucherRepo.GetByID(ctx, id)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}

	totalDebit, totalCredit = domain.Totals(voucher.Entries)

	return totalDebit, totalCredit, nil
}

// DeleteVoucher deletes a voucher. Vouchers are never updated in
// place; corrections are entered as fresh vouchers.
func (uc *VoucherUseCase) DeleteVoucher(ctx context.Context, id string) error {
	return uc.voucherRepo.Delete(ctx, id)
}

// ListVouchersInput represents input for listing vouchers.
type ListVouchersInput struct {
	SocietyID string
	Type      domain.VoucherType // optional filter
	Limit     int
	Offset    int
}

// ListVouchers lists vouchers for a society, optionally filtered by
// type.
func (uc *VoucherUseCase) ListVouchers(ctx context.Context, input ListVouchersInput) ([]*domain.Voucher, error) {
	limit, offset := domain.ValidatePagination(input.Limit, input.Offset)

	return uc.voucherRepo.ListBySociety(ctx, input.SocietyID, input.Type, limit, offset)
}

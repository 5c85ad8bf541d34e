package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rajesh2024-krita/fintcs/internal/domain"
)

// SocietyUseCase handles society business logic.
type SocietyUseCase struct {
	societyRepo SocietyRepository
	idGen       IDGenerator
}

// NewSocietyUseCase creates a new SocietyUseCase.
func NewSocietyUseCase(societyRepo SocietyRepository, idGen IDGenerator) *SocietyUseCase {
	return &SocietyUseCase{
		societyRepo: societyRepo,
		idGen:       idGen,
	}
}

// CreateSocietyInput represents input for creating a society.
type CreateSocietyInput struct {
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
}

// CreateSociety creates a new society.
func (uc *SocietyUseCase) CreateSociety(ctx context.Context, input CreateSocietyInput) (*domain.Society, error) {
	if err := domain.ValidateSocietyCode(input.Code); err != nil {
		return nil, err
	}

	if err := domain.ValidateName(input.Name); err != nil {
		return nil, err
	}

	for _, amount := range []decimal.Decimal{input.LoanInterestRate, input.CDInterestRate, input.MonthlyShare, input.MonthlyCD} {
		if err := domain.ValidateAmount(amount); err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()

	society := &domain.Society{
		ID:               uc.idGen.Generate(),
		Code:             strings.ToUpper(strings.TrimSpace(input.Code)),
		Name:             input.Name,
		Address:          input.Address,
		City:             input.City,
		Phone:            input.Phone,
		Email:            input.Email,
		RegistrationNo:   input.RegistrationNo,
		LoanInterestRate: input.LoanInterestRate,
		CDInterestRate:   input.CDInterestRate,
		MonthlyShare:     input.MonthlyShare,
		MonthlyCD:        input.MonthlyCD,
		Active:           true,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := uc.societyRepo.Create(ctx, society); err != nil {
		return nil, err
	}

	return society, nil
}

// GetSociety retrieves a society by ID.
func (uc *SocietyUseCase) GetSociety(ctx context.Context, id string) (*domain.Society, error) {
	return uc.societyRepo.GetByID(ctx, id)
}

// UpdateSocietyInput represents input for updating a society.
type UpdateSocietyInput struct {
	ID               string
	Name             *string
	Address          *string
	City             *string
	Phone            *string
	Email            *string
	LoanInterestRate *decimal.Decimal
	CDInterestRate   *decimal.Decimal
	MonthlyShare     *decimal.Decimal
	MonthlyCD        *decimal.Decimal
	Active           *bool
}

// UpdateSociety updates society details. The code is fixed at
// creation.
func (uc *SocietyUseCase) UpdateSociety(ctx context.Context, input UpdateSocietyInput) (*domain.Society, error) {
	society, err := uc.societyRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if err := domain.ValidateName(*input.Name); err != nil {
			return nil, err
		}
		society.Name = *input.Name
	}

	if input.Address != nil {
		society.Address = *input.Address
	}

	if input.City != nil {
		society.City = *input.City
	}

	if input.Phone != nil {
		society.Phone = *input.Phone
	}

	if input.Email != nil {
		if err := domain.ValidateEmail(*input.Email); err != nil {
			return nil, err
		}
		society.Email = *input.Email
	}

	if input.LoanInterestRate != nil {
		if err := domain.ValidateAmount(*input.LoanInterestRate); err != nil {
			return nil, err
		}
		society.LoanInterestRate = *input.LoanInterestRate
	}

	if input.CDInterestRate != nil {
		if err := domain.ValidateAmount(*input.CDInterestRate); err != nil {
			return nil, err
		}
		society.CDInterestRate = *input.CDInterestRate
	}

	if input.MonthlyShare != nil {
		if err := domain.ValidateAmount(*input.MonthlyShare); err != nil {
			return nil, err
		}
		society.MonthlyShare = *input.MonthlyShare
	}

	if input.MonthlyCD != nil {
		if err := domain.ValidateAmount(*input.MonthlyCD); err != nil {
			return nil, err
		}
		society.MonthlyCD = *input.MonthlyCD
	}

	if input.Active != nil {
		society.Active = *input.Active
	}

	society.UpdatedAt = time.Now().UTC()

	if err := uc.societyRepo.Update(ctx, society); err != nil {
		return nil, err
	}

	return society, nil
}

// DeleteSociety deletes a society.
func (uc *SocietyUseCase) DeleteSociety(ctx context.Context, id string) error {
	return uc.societyRepo.Delete(ctx, id)
}

// ListSocietiesInput represents input for listing societies.
type ListSocietiesInput struct {
	Limit  int
	Offset int
}

// ListSocieties lists societies.
func (uc *SocietyUseCase) ListSocieties(ctx context.Context, input ListSocietiesInput) ([]*domain.Society, error) {
	limit, offset := domain.ValidatePagination(input.Limit, input.Offset)

	return uc.societyRepo.List(ctx, limit, offset)
}

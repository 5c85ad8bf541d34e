package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rajesh2024-krita/fintcs/internal/domain"
	"github.com/rajesh2024-krita/fintcs/internal/infrastructure/metrics"
)

// MemberUseCase handles member business logic.
type MemberUseCase struct {
	memberRepo  MemberRepository
	societyRepo SocietyRepository
	idGen       IDGenerator
	retrier     Retrier
	cache       Cache
	metrics     *metrics.Metrics
}

// NewMemberUseCase creates a new MemberUseCase.
func NewMemberUseCase(
	memberRepo MemberRepository,
	societyRepo SocietyRepository,
	idGen IDGenerator,
	retrier Retrier,
	cache Cache,
	metrics *metrics.Metrics,
) *MemberUseCase {
	return &MemberUseCase{
		memberRepo:  memberRepo,
		societyRepo: societyRepo,
		idGen:       idGen,
		retrier:     retrier,
		cache:       cache,
		metrics:     metrics,
	}
}

// CreateMemberInput represents input for creating a member.
type CreateMemberInput struct {
	SocietyID     string
	MemberNumber  string // optional; generated when empty
	Name          string
	FatherHusband string
	Address       string
	Phone         string
	Email         string
	DateOfJoining *time.Time
	ShareBalance  decimal.Decimal
	CDBalance     decimal.Decimal
}

// CreateMember creates a new member. When no member number is supplied
// the next number in the society's sequence is generated; a duplicate
// insert from a concurrent creation is retried with a fresh number.
func (uc *MemberUseCase) CreateMember(ctx context.Context, input CreateMemberInput) (*domain.Member, error) {
	if err := domain.ValidateName(input.Name); err != nil {
		return nil, err
	}

	if err := domain.ValidateAmount(input.ShareBalance); err != nil {
		return nil, err
	}

	if err := domain.ValidateAmount(input.CDBalance); err != nil {
		return nil, err
	}

	if input.MemberNumber != "" {
		if err := domain.ValidateMemberNumber(input.MemberNumber); err != nil {
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

	joined := now
	if input.DateOfJoining != nil {
		joined = *input.DateOfJoining
	}

	var member *domain.Member

	attempt := func() error {
		number := input.MemberNumber
		if number == "" {
			last, err := uc.memberRepo.LastNumber(ctx, input.SocietyID)
			if err != nil {
				return err
			}

			number, err = domain.NextMemberNumber(last)
			if err != nil {
				return err
			}
		}

		member = &domain.Member{
			ID:            uc.idGen.Generate(),
			SocietyID:     input.SocietyID,
			MemberNumber:  number,
			Name:          input.Name,
			FatherHusband: input.FatherHusband,
			Address:       input.Address,
			Phone:         input.Phone,
			Email:         input.Email,
			DateOfJoining: joined,
			ShareBalance:  input.ShareBalance,
			CDBalance:     input.CDBalance,
			Status:        domain.MemberStatusActive,
			CreatedAt:     now,
			UpdatedAt:     now,
		}

		if err := uc.memberRepo.Create(ctx, member); err != nil {
			if uc.metrics != nil && errors.Is(err, domain.ErrDuplicateNumber) {
				uc.metrics.NumberRetries.WithLabelValues("member").Inc()
			}
			return err
		}

		return nil
	}

	// A supplied number cannot be regenerated, so a duplicate is a
	// real conflict; only generated numbers go through the retrier.
	if input.MemberNumber != "" {
		err = attempt()
	} else {
		err = uc.retrier.Retry(ctx, attempt)
	}
	if err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.MembersCreated.Inc()
		uc.metrics.MemberOperations.WithLabelValues("create").Inc()
	}

	return member, nil
}

// GetMember retrieves a member by ID, serving repeated lookups from
// the cache.
func (uc *MemberUseCase) GetMember(ctx context.Context, id string) (*domain.Member, error) {
	if uc.cache != nil {
		if cached, err := uc.cache.Get(ctx, memberCacheKey(id)); err == nil {
			var member domain.Member
			if err := json.Unmarshal([]byte(cached), &member); err == nil {
				return &member, nil
			}
		}
	}

	member, err := uc.memberRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if data, err := json.Marshal(member); err == nil {
			_ = uc.cache.Set(ctx, memberCacheKey(id), string(data), memberCacheTTL)
		}
	}

	return member, nil
}

// UpdateMemberInput represents input for updating a member.
type UpdateMemberInput struct {
	ID            string
	Name          *string
	FatherHusband *string
	Address       *string
	Phone         *string
	Email         *string
	ShareBalance  *decimal.Decimal
	CDBalance     *decimal.Decimal
	Status        *domain.MemberStatus
}

// UpdateMember updates member details. The member number is never
// changed once issued.
func (uc *MemberUseCase) UpdateMember(ctx context.Context, input UpdateMemberInput) (*domain.Member, error) {
	member, err := uc.memberRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if err := domain.ValidateName(*input.Name); err != nil {
			return nil, err
		}
		member.Name = *input.Name
	}

	if input.FatherHusband != nil {
		member.FatherHusband = *input.FatherHusband
	}

	if input.Address != nil {
		member.Address = *input.Address
	}

	if input.Phone != nil {
		member.Phone = *input.Phone
	}

	if input.Email != nil {
		if err := domain.ValidateEmail(*input.Email); err != nil {
			return nil, err
		}
		member.Email = *input.Email
	}

	if input.ShareBalance != nil {
		if err := domain.ValidateAmount(*input.ShareBalance); err != nil {
			return nil, err
		}
		member.ShareBalance = *input.ShareBalance
	}

	if input.CDBalance != nil {
		if err := domain.ValidateAmount(*input.CDBalance); err != nil {
			return nil, err
		}
		member.CDBalance = *input.CDBalance
	}

	if input.Status != nil {
		member.Status = *input.Status
	}

	member.UpdatedAt = time.Now().UTC()

	if err := uc.memberRepo.Update(ctx, member); err != nil {
		return nil, err
	}

	if uc.cache != nil {
		_ = uc.cache.Delete(ctx, memberCacheKey(member.ID))
	}

	if uc.metrics != nil {
		uc.metrics.MemberOperations.WithLabelValues("update").Inc()
	}

	return member, nil
}

// DeleteMember deletes a member.
func (uc *MemberUseCase) DeleteMember(ctx context.Context, id string) error {
	if err := uc.memberRepo.Delete(ctx, id); err != nil {
		return err
	}

	if uc.cache != nil {
		_ = uc.cache.Delete(ctx, memberCacheKey(id))
	}

	if uc.metrics != nil {
		uc.metrics.MemberOperations.WithLabelValues("delete").Inc()
	}

	return nil
}

// ListMembersInput represents input for listing members.
type ListMembersInput struct {
	SocietyID string
	Limit     int
	Offset    int
}

// ListMembers lists members of a society.
func (uc *MemberUseCase) ListMembers(ctx context.Context, input ListMembersInput) ([]*domain.Member, error) {
	limit, offset := domain.ValidatePagination(input.Limit, input.Offset)

	return uc.memberRepo.ListBySociety(ctx, input.SocietyID, limit, offset)
}

func memberCacheKey(id string) string {
	return "member:" + id
}

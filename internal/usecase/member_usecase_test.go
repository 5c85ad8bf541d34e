package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/rajesh2024-krita/fintcs/internal/domain"
	"github.com/rajesh2024-krita/fintcs/internal/infrastructure/metrics"
	"github.com/rajesh2024-krita/fintcs/internal/usecase"
	"github.com/rajesh2024-krita/fintcs/internal/usecase/mocks"
)

func activeSociety(id string) *domain.Society {
	now := time.Now().UTC()
	return &domain.Society{
		ID:        id,
		Code:      "COOP01",
		Name:      "Test Cooperative Society",
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func newMemberUseCase(
	memberRepo *mocks.MockMemberRepository,
	societyRepo *mocks.MockSocietyRepository,
) *usecase.MemberUseCase {
	return usecase.NewMemberUseCase(
		memberRepo,
		societyRepo,
		mocks.NewMockIDGenerator(),
		mocks.NewMockRetrier(),
		mocks.NewMockCache(),
		nil,
	)
}

func TestMemberUseCase_CreateMember(t *testing.T) {
	tests := []struct {
		name        string
		input       usecase.CreateMemberInput
		setupMocks  func(*mocks.MockMemberRepository, *mocks.MockSocietyRepository)
		wantNumber  string
		expectError bool
	}{
		{
			name: "first member gets MEM_001",
			input: usecase.CreateMemberInput{
				SocietyID: "soc-1",
				Name:      "Ramesh Kumar",
			},
			setupMocks: func(memberRepo *mocks.MockMemberRepository, societyRepo *mocks.MockSocietyRepository) {
				societyRepo.Create(context.Background(), activeSociety("soc-1"))
			},
			wantNumber: "MEM_001",
		},
		{
			name: "member number follows the last issued",
			input: usecase.CreateMemberInput{
				SocietyID: "soc-1",
				Name:      "Suresh Patel",
			},
			setupMocks: func(memberRepo *mocks.MockMemberRepository, societyRepo *mocks.MockSocietyRepository) {
				societyRepo.Create(context.Background(), activeSociety("soc-1"))
				memberRepo.Create(context.Background(), &domain.Member{
					ID: "m-1", SocietyID: "soc-1", MemberNumber: "MEM_041",
				})
			},
			wantNumber: "MEM_042",
		},
		{
			name: "explicit number is kept",
			input: usecase.CreateMemberInput{
				SocietyID:    "soc-1",
				MemberNumber: "MEM_900",
				Name:         "Imported Member",
			},
			setupMocks: func(memberRepo *mocks.MockMemberRepository, societyRepo *mocks.MockSocietyRepository) {
				societyRepo.Create(context.Background(), activeSociety("soc-1"))
			},
			wantNumber: "MEM_900",
		},
		{
			name: "inactive society rejected",
			input: usecase.CreateMemberInput{
				SocietyID: "soc-1",
				Name:      "Ramesh Kumar",
			},
			setupMocks: func(memberRepo *mocks.MockMemberRepository, societyRepo *mocks.MockSocietyRepository) {
				society := activeSociety("soc-1")
				society.Active = false
				societyRepo.Create(context.Background(), society)
			},
			expectError: true,
		},
		{
			name: "unknown society rejected",
			input: usecase.CreateMemberInput{
				SocietyID: "missing",
				Name:      "Ramesh Kumar",
			},
			setupMocks:  func(*mocks.MockMemberRepository, *mocks.MockSocietyRepository) {},
			expectError: true,
		},
		{
			name: "empty name rejected",
			input: usecase.CreateMemberInput{
				SocietyID: "soc-1",
				Name:      "",
			},
			setupMocks: func(memberRepo *mocks.MockMemberRepository, societyRepo *mocks.MockSocietyRepository) {
				societyRepo.Create(context.Background(), activeSociety("soc-1"))
			},
			expectError: true,
		},
		{
			name: "malformed stored number surfaces as error",
			input: usecase.CreateMemberInput{
				SocietyID: "soc-1",
				Name:      "Ramesh Kumar",
			},
			setupMocks: func(memberRepo *mocks.MockMemberRepository, societyRepo *mocks.MockSocietyRepository) {
				societyRepo.Create(context.Background(), activeSociety("soc-1"))
				memberRepo.LastNumberFunc = func(ctx context.Context, societyID string) (string, error) {
					return "garbage-42", nil
				}
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			memberRepo := mocks.NewMockMemberRepository()
			societyRepo := mocks.NewMockSocietyRepository()
			tt.setupMocks(memberRepo, societyRepo)

			uc := newMemberUseCase(memberRepo, societyRepo)
			member, err := uc.CreateMember(context.Background(), tt.input)

			if tt.expectError {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if member.MemberNumber != tt.wantNumber {
				t.Errorf("expected member number %q, got %q", tt.wantNumber, member.MemberNumber)
			}
			if member.Status != domain.MemberStatusActive {
				t.Errorf("expected active status, got %q", member.Status)
			}
		})
	}
}

func TestMemberUseCase_CreateMember_RejectsMalformedExplicitNumber(t *testing.T) {
	memberRepo := mocks.NewMockMemberRepository()
	societyRepo := mocks.NewMockSocietyRepository()
	societyRepo.Create(context.Background(), activeSociety("soc-1"))

	inserted := 0
	memberRepo.CreateFunc = func(ctx context.Context, member *domain.Member) error {
		inserted++
		return nil
	}

	uc := newMemberUseCase(memberRepo, societyRepo)

	// A number outside the issued format would poison every later
	// sequence lookup for the society, so it must never be stored.
	for _, number := range []string{"legacy/0042", "MEM_", "MEM_00", "MEM_-01", "mem_001", "42"} {
		_, err := uc.CreateMember(context.Background(), usecase.CreateMemberInput{
			SocietyID:    "soc-1",
			MemberNumber: number,
			Name:         "Imported Member",
		})
		if !errors.Is(err, domain.ErrInvalidNumber) {
			t.Errorf("number %q: expected ErrInvalidNumber, got %v", number, err)
		}
	}

	if inserted != 0 {
		t.Errorf("expected no inserts for malformed numbers, got %d", inserted)
	}
}

func TestMemberUseCase_CreateMember_SuppliedNumberFailsFast(t *testing.T) {
	memberRepo := mocks.NewMockMemberRepository()
	societyRepo := mocks.NewMockSocietyRepository()
	societyRepo.Create(context.Background(), activeSociety("soc-1"))

	// The supplied number never changes between attempts, so the
	// conflict must surface without burning retries.
	attempts := 0
	memberRepo.CreateFunc = func(ctx context.Context, member *domain.Member) error {
		attempts++
		return fmt.Errorf("%w: %s", domain.ErrDuplicateNumber, member.MemberNumber)
	}

	uc := newMemberUseCase(memberRepo, societyRepo)
	_, err := uc.CreateMember(context.Background(), usecase.CreateMemberInput{
		SocietyID:    "soc-1",
		MemberNumber: "MEM_007",
		Name:         "Imported Member",
	})

	if !errors.Is(err, domain.ErrDuplicateNumber) {
		t.Fatalf("expected ErrDuplicateNumber, got %v", err)
	}
	if attempts != 1 {
		t.Errorf("expected a single insert attempt, got %d", attempts)
	}
}

func TestMemberUseCase_CreateMember_RetriesOnDuplicate(t *testing.T) {
	memberRepo := mocks.NewMockMemberRepository()
	societyRepo := mocks.NewMockSocietyRepository()
	societyRepo.Create(context.Background(), activeSociety("soc-1"))

	// First insert collides as if a concurrent request won the race;
	// the retry must pick up a fresh number.
	attempts := 0
	lastSeen := "MEM_007"
	memberRepo.LastNumberFunc = func(ctx context.Context, societyID string) (string, error) {
		return lastSeen, nil
	}
	memberRepo.CreateFunc = func(ctx context.Context, member *domain.Member) error {
		attempts++
		if attempts == 1 {
			lastSeen = "MEM_008"
			return fmt.Errorf("%w: %s", domain.ErrDuplicateNumber, member.MemberNumber)
		}
		return nil
	}

	uc := newMemberUseCase(memberRepo, societyRepo)
	member, err := uc.CreateMember(context.Background(), usecase.CreateMemberInput{
		SocietyID: "soc-1",
		Name:      "Ramesh Kumar",
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if attempts != 2 {
		t.Errorf("expected 2 insert attempts, got %d", attempts)
	}
	if member.MemberNumber != "MEM_009" {
		t.Errorf("expected regenerated number MEM_009, got %q", member.MemberNumber)
	}
}

func TestMemberUseCase_CreateMember_RecordsMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()
	prometheus.DefaultRegisterer = registry
	prometheus.DefaultGatherer = registry
	m := metrics.New()

	memberRepo := mocks.NewMockMemberRepository()
	societyRepo := mocks.NewMockSocietyRepository()
	societyRepo.Create(context.Background(), activeSociety("soc-1"))

	// First insert collides so the retry counter moves too.
	attempts := 0
	memberRepo.CreateFunc = func(ctx context.Context, member *domain.Member) error {
		attempts++
		if attempts == 1 {
			return domain.ErrDuplicateNumber
		}
		return nil
	}

	uc := usecase.NewMemberUseCase(
		memberRepo,
		societyRepo,
		mocks.NewMockIDGenerator(),
		mocks.NewMockRetrier(),
		mocks.NewMockCache(),
		m,
	)

	_, err := uc.CreateMember(context.Background(), usecase.CreateMemberInput{
		SocietyID: "soc-1",
		Name:      "Ramesh Kumar",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := testutil.ToFloat64(m.MembersCreated); got != 1 {
		t.Errorf("expected members_created 1, got %v", got)
	}
	if got := testutil.ToFloat64(m.NumberRetries.WithLabelValues("member")); got != 1 {
		t.Errorf("expected number_retries{kind=member} 1, got %v", got)
	}
}

func TestMemberUseCase_GetMember_UsesCache(t *testing.T) {
	memberRepo := mocks.NewMockMemberRepository()
	societyRepo := mocks.NewMockSocietyRepository()

	repoCalls := 0
	memberRepo.GetByIDFunc = func(ctx context.Context, id string) (*domain.Member, error) {
		repoCalls++
		return &domain.Member{ID: id, MemberNumber: "MEM_001", Name: "Ramesh"}, nil
	}

	uc := newMemberUseCase(memberRepo, societyRepo)

	for i := 0; i < 3; i++ {
		member, err := uc.GetMember(context.Background(), "m-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if member.MemberNumber != "MEM_001" {
			t.Errorf("expected MEM_001, got %q", member.MemberNumber)
		}
	}

	if repoCalls != 1 {
		t.Errorf("expected 1 repository call with warm cache, got %d", repoCalls)
	}
}

func TestMemberUseCase_UpdateMember_KeepsNumber(t *testing.T) {
	memberRepo := mocks.NewMockMemberRepository()
	societyRepo := mocks.NewMockSocietyRepository()
	memberRepo.Create(context.Background(), &domain.Member{
		ID: "m-1", SocietyID: "soc-1", MemberNumber: "MEM_005", Name: "Old Name",
	})

	uc := newMemberUseCase(memberRepo, societyRepo)

	newName := "New Name"
	member, err := uc.UpdateMember(context.Background(), usecase.UpdateMemberInput{
		ID:   "m-1",
		Name: &newName,
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if member.Name != "New Name" {
		t.Errorf("expected updated name, got %q", member.Name)
	}
	if member.MemberNumber != "MEM_005" {
		t.Errorf("member number must never change, got %q", member.MemberNumber)
	}
}

func TestMemberUseCase_GetMember_NotFound(t *testing.T) {
	uc := newMemberUseCase(mocks.NewMockMemberRepository(), mocks.NewMockSocietyRepository())

	_, err := uc.GetMember(context.Background(), "missing")
	if !errors.Is(err, domain.ErrMemberNotFound) {
		t.Errorf("expected ErrMemberNotFound, got %v", err)
	}
}

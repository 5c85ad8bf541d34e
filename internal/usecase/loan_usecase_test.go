package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/rajesh2024-krita/fintcs/internal/domain"
	"github.com/rajesh2024-krita/fintcs/internal/usecase"
	"github.com/rajesh2024-krita/fintcs/internal/usecase/mocks"
)

func newLoanUseCase(
	loanRepo *mocks.MockLoanRepository,
	memberRepo *mocks.MockMemberRepository,
	societyRepo *mocks.MockSocietyRepository,
) *usecase.LoanUseCase {
	return usecase.NewLoanUseCase(
		loanRepo,
		memberRepo,
		societyRepo,
		mocks.NewMockIDGenerator(),
		mocks.NewMockRetrier(),
		nil,
	)
}

func seededSocietyRepo() *mocks.MockSocietyRepository {
	societyRepo := mocks.NewMockSocietyRepository()
	societyRepo.Create(context.Background(), activeSociety("soc-1"))
	return societyRepo
}

func activeMember(id, societyID string) *domain.Member {
	return &domain.Member{
		ID:           id,
		SocietyID:    societyID,
		MemberNumber: "MEM_001",
		Name:         "Ramesh Kumar",
		Status:       domain.MemberStatusActive,
	}
}

func TestLoanUseCase_CreateLoan(t *testing.T) {
	loanRepo := mocks.NewMockLoanRepository()
	memberRepo := mocks.NewMockMemberRepository()
	memberRepo.Create(context.Background(), activeMember("m-1", "soc-1"))

	uc := newLoanUseCase(loanRepo, memberRepo, seededSocietyRepo())

	loan, err := uc.CreateLoan(context.Background(), usecase.CreateLoanInput{
		SocietyID:    "soc-1",
		MemberID:     "m-1",
		Type:         domain.LoanTypeGeneral,
		LoanAmount:   decimal.NewFromInt(50000),
		PreviousLoan: decimal.NewFromInt(12500),
		Installments: 10,
		Purpose:      "House repair",
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !loan.NetLoan.Equal(decimal.NewFromInt(37500)) {
		t.Errorf("expected net loan 37500, got %s", loan.NetLoan)
	}
	if !loan.InstallmentAmount.Equal(decimal.NewFromInt(3750)) {
		t.Errorf("expected installment 3750, got %s", loan.InstallmentAmount)
	}
	if loan.LoanNumber == "" {
		t.Error("expected a generated loan number")
	}
	if loan.Status != domain.LoanStatusActive {
		t.Errorf("expected active status, got %q", loan.Status)
	}
}

func TestLoanUseCase_CreateLoan_InactiveMember(t *testing.T) {
	loanRepo := mocks.NewMockLoanRepository()
	memberRepo := mocks.NewMockMemberRepository()

	member := activeMember("m-1", "soc-1")
	member.Status = domain.MemberStatusResigned
	memberRepo.Create(context.Background(), member)

	uc := newLoanUseCase(loanRepo, memberRepo, seededSocietyRepo())

	_, err := uc.CreateLoan(context.Background(), usecase.CreateLoanInput{
		SocietyID:    "soc-1",
		MemberID:     "m-1",
		LoanAmount:   decimal.NewFromInt(1000),
		Installments: 10,
	})

	if err != domain.ErrMemberInactive {
		t.Errorf("expected ErrMemberInactive, got %v", err)
	}
}

func TestLoanUseCase_CreateLoan_MemberFromAnotherSociety(t *testing.T) {
	loanRepo := mocks.NewMockLoanRepository()
	memberRepo := mocks.NewMockMemberRepository()
	memberRepo.Create(context.Background(), activeMember("m-1", "soc-2"))

	inserted := 0
	loanRepo.CreateFunc = func(ctx context.Context, loan *domain.Loan) error {
		inserted++
		return nil
	}

	uc := newLoanUseCase(loanRepo, memberRepo, seededSocietyRepo())

	// A loan recorded under one society against another society's
	// member would also draw from the wrong number sequence.
	_, err := uc.CreateLoan(context.Background(), usecase.CreateLoanInput{
		SocietyID:    "soc-1",
		MemberID:     "m-1",
		LoanAmount:   decimal.NewFromInt(1000),
		Installments: 10,
	})

	if !errors.Is(err, domain.ErrMemberSocietyMismatch) {
		t.Fatalf("expected ErrMemberSocietyMismatch, got %v", err)
	}
	if inserted != 0 {
		t.Errorf("expected no insert for cross-society loan, got %d", inserted)
	}
}

func TestLoanUseCase_CreateLoan_InactiveSociety(t *testing.T) {
	loanRepo := mocks.NewMockLoanRepository()
	memberRepo := mocks.NewMockMemberRepository()
	memberRepo.Create(context.Background(), activeMember("m-1", "soc-1"))

	societyRepo := mocks.NewMockSocietyRepository()
	society := activeSociety("soc-1")
	society.Active = false
	societyRepo.Create(context.Background(), society)

	uc := newLoanUseCase(loanRepo, memberRepo, societyRepo)

	_, err := uc.CreateLoan(context.Background(), usecase.CreateLoanInput{
		SocietyID:    "soc-1",
		MemberID:     "m-1",
		LoanAmount:   decimal.NewFromInt(1000),
		Installments: 10,
	})

	if !errors.Is(err, domain.ErrSocietyInactive) {
		t.Errorf("expected ErrSocietyInactive, got %v", err)
	}
}

func TestLoanUseCase_CreateLoan_InvalidType(t *testing.T) {
	loanRepo := mocks.NewMockLoanRepository()
	memberRepo := mocks.NewMockMemberRepository()
	memberRepo.Create(context.Background(), activeMember("m-1", "soc-1"))

	uc := newLoanUseCase(loanRepo, memberRepo, seededSocietyRepo())

	_, err := uc.CreateLoan(context.Background(), usecase.CreateLoanInput{
		SocietyID:    "soc-1",
		MemberID:     "m-1",
		Type:         domain.LoanType("personal"),
		LoanAmount:   decimal.NewFromInt(1000),
		Installments: 10,
	})

	if !errors.Is(err, domain.ErrInvalidLoanType) {
		t.Errorf("expected ErrInvalidLoanType, got %v", err)
	}
}

func TestLoanUseCase_CreateLoan_EmptyTypeDefaultsToGeneral(t *testing.T) {
	loanRepo := mocks.NewMockLoanRepository()
	memberRepo := mocks.NewMockMemberRepository()
	memberRepo.Create(context.Background(), activeMember("m-1", "soc-1"))

	uc := newLoanUseCase(loanRepo, memberRepo, seededSocietyRepo())

	loan, err := uc.CreateLoan(context.Background(), usecase.CreateLoanInput{
		SocietyID:    "soc-1",
		MemberID:     "m-1",
		LoanAmount:   decimal.NewFromInt(1000),
		Installments: 10,
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loan.Type != domain.LoanTypeGeneral {
		t.Errorf("expected general loan type, got %q", loan.Type)
	}
}

func TestLoanUseCase_CreateLoan_RejectsMalformedExplicitNumber(t *testing.T) {
	loanRepo := mocks.NewMockLoanRepository()
	memberRepo := mocks.NewMockMemberRepository()
	memberRepo.Create(context.Background(), activeMember("m-1", "soc-1"))

	uc := newLoanUseCase(loanRepo, memberRepo, seededSocietyRepo())

	for _, number := range []string{"legacy/7", "L24", "X24001", "L2400"} {
		_, err := uc.CreateLoan(context.Background(), usecase.CreateLoanInput{
			SocietyID:    "soc-1",
			MemberID:     "m-1",
			LoanNumber:   number,
			LoanAmount:   decimal.NewFromInt(1000),
			Installments: 10,
		})
		if !errors.Is(err, domain.ErrInvalidNumber) {
			t.Errorf("number %q: expected ErrInvalidNumber, got %v", number, err)
		}
	}
}

func TestLoanUseCase_CreateLoan_ZeroInstallments(t *testing.T) {
	loanRepo := mocks.NewMockLoanRepository()
	memberRepo := mocks.NewMockMemberRepository()
	memberRepo.Create(context.Background(), activeMember("m-1", "soc-1"))

	uc := newLoanUseCase(loanRepo, memberRepo, seededSocietyRepo())

	loan, err := uc.CreateLoan(context.Background(), usecase.CreateLoanInput{
		SocietyID:    "soc-1",
		MemberID:     "m-1",
		LoanAmount:   decimal.NewFromInt(5000),
		Installments: 0,
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !loan.InstallmentAmount.IsZero() {
		t.Errorf("expected zero installment amount, got %s", loan.InstallmentAmount)
	}
}

func TestLoanUseCase_UpdateLoan_RecomputesFigures(t *testing.T) {
	loanRepo := mocks.NewMockLoanRepository()
	memberRepo := mocks.NewMockMemberRepository()
	memberRepo.Create(context.Background(), activeMember("m-1", "soc-1"))

	uc := newLoanUseCase(loanRepo, memberRepo, seededSocietyRepo())

	loan, err := uc.CreateLoan(context.Background(), usecase.CreateLoanInput{
		SocietyID:    "soc-1",
		MemberID:     "m-1",
		LoanAmount:   decimal.NewFromInt(12000),
		Installments: 12,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	newAmount := decimal.NewFromInt(24000)
	updated, err := uc.UpdateLoan(context.Background(), usecase.UpdateLoanInput{
		ID:         loan.ID,
		LoanAmount: &newAmount,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !updated.NetLoan.Equal(decimal.NewFromInt(24000)) {
		t.Errorf("expected recomputed net loan 24000, got %s", updated.NetLoan)
	}
	if !updated.InstallmentAmount.Equal(decimal.NewFromInt(2000)) {
		t.Errorf("expected recomputed installment 2000, got %s", updated.InstallmentAmount)
	}
	if updated.LoanNumber != loan.LoanNumber {
		t.Errorf("loan number must never change, got %q", updated.LoanNumber)
	}
}

func TestLoanUseCase_ListLoans_ByMember(t *testing.T) {
	loanRepo := mocks.NewMockLoanRepository()
	memberRepo := mocks.NewMockMemberRepository()
	memberRepo.Create(context.Background(), activeMember("m-1", "soc-1"))
	memberRepo.Create(context.Background(), &domain.Member{
		ID: "m-2", SocietyID: "soc-1", MemberNumber: "MEM_002", Status: domain.MemberStatusActive,
	})

	uc := newLoanUseCase(loanRepo, memberRepo, seededSocietyRepo())

	for _, memberID := range []string{"m-1", "m-1", "m-2"} {
		_, err := uc.CreateLoan(context.Background(), usecase.CreateLoanInput{
			SocietyID:    "soc-1",
			MemberID:     memberID,
			LoanAmount:   decimal.NewFromInt(1000),
			Installments: 10,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	loans, err := uc.ListLoans(context.Background(), usecase.ListLoansInput{
		SocietyID: "soc-1",
		MemberID:  "m-1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(loans) != 2 {
		t.Errorf("expected 2 loans for member, got %d", len(loans))
	}
}

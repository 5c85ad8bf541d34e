package usecase

import (
	"context"
	"time"

	"github.com/rajesh2024-krita/fintcs/internal/domain"
)

// SocietyRepository defines data access for societies.
type SocietyRepository interface {
	Create(ctx context.Context, society *domain.Society) error
	GetByID(ctx context.Context, id string) (*domain.Society, error)
	Update(ctx context.Context, society *domain.Society) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, limit, offset int) ([]*domain.Society, error)
}

// MemberRepository defines data access for members.
type MemberRepository interface {
	Create(ctx context.Context, member *domain.Member) error
	GetByID(ctx context.Context, id string) (*domain.Member, error)
	// LastNumber returns the highest issued member number for the
	// society, or "" when none exists.
	LastNumber(ctx context.Context, societyID string) (string, error)
	Update(ctx context.Context, member *domain.Member) error
	Delete(ctx context.Context, id string) error
	ListBySociety(ctx context.Context, societyID string, limit, offset int) ([]*domain.Member, error)
	ListActiveBySociety(ctx context.Context, societyID string) ([]*domain.Member, error)
}

// LoanRepository defines data access for loans.
type LoanRepository interface {
	Create(ctx context.Context, loan *domain.Loan) error
	GetByID(ctx context.Context, id string) (*domain.Loan, error)
	LastNumber(ctx context.Context, societyID string) (string, error)
	Update(ctx context.Context, loan *domain.Loan) error
	Delete(ctx context.Context, id string) error
	ListBySociety(ctx context.Context, societyID string, limit, offset int) ([]*domain.Loan, error)
	ListByMember(ctx context.Context, memberID string, limit, offset int) ([]*domain.Loan, error)
	GetActiveByMember(ctx context.Context, memberID string) (*domain.Loan, error)
}

// VoucherRepository defines data access for vouchers.
type VoucherRepository interface {
	// Create persists the voucher and its entries atomically.
	Create(ctx context.Context, tx Transaction, voucher *domain.Voucher) error
	GetByID(ctx context.Context, id string) (*domain.Voucher, error)
	// LastNumber returns the highest issued voucher number for the
	// society and type initial, or "" when none exists.
	LastNumber(ctx context.Context, societyID string, voucherType domain.VoucherType) (string, error)
	Delete(ctx context.Context, id string) error
	ListBySociety(ctx context.Context, societyID string, voucherType domain.VoucherType, limit, offset int) ([]*domain.Voucher, error)
}

// DemandRepository defines data access for monthly demand rows.
type DemandRepository interface {
	DeleteForPeriod(ctx context.Context, tx Transaction, societyID string, month, year int) error
	CreateRow(ctx context.Context, tx Transaction, row *domain.DemandRow) error
	ListForPeriod(ctx context.Context, societyID string, month, year int) ([]*domain.DemandRow, error)
}

// UserRepository defines data access for users.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, limit, offset int) ([]*domain.User, error)
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// IDGenerator generates unique surrogate IDs.
type IDGenerator interface {
	Generate() string
}

// Retrier retries an operation on transient conflicts, including the
// duplicate-document-number race between concurrent creations.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// Cache defines caching operations.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}

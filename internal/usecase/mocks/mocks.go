package mocks

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rajesh2024-krita/fintcs/internal/domain"
	"github.com/rajesh2024-krita/fintcs/internal/usecase"
)

// MockSocietyRepository is a mock implementation of SocietyRepository.
type MockSocietyRepository struct {
	mu        sync.RWMutex
	societies map[string]*domain.Society

	CreateFunc  func(ctx context.Context, society *domain.Society) error
	GetByIDFunc func(ctx context.Context, id string) (*domain.Society, error)
	UpdateFunc  func(ctx context.Context, society *domain.Society) error
	DeleteFunc  func(ctx context.Context, id string) error
	ListFunc    func(ctx context.Context, limit, offset int) ([]*domain.Society, error)
}

func NewMockSocietyRepository() *MockSocietyRepository {
	return &MockSocietyRepository{
		societies: make(map[string]*domain.Society),
	}
}

func (m *MockSocietyRepository) Create(ctx context.Context, society *domain.Society) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, society)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.societies[society.ID] = society
	return nil
}

func (m *MockSocietyRepository) GetByID(ctx context.Context, id string) (*domain.Society, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.societies[id]; ok {
		return s, nil
	}
	return nil, domain.ErrSocietyNotFound
}

func (m *MockSocietyRepository) Update(ctx context.Context, society *domain.Society) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, society)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.societies[society.ID] = society
	return nil
}

func (m *MockSocietyRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.societies, id)
	return nil
}

func (m *MockSocietyRepository) List(ctx context.Context, limit, offset int) ([]*domain.Society, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var societies []*domain.Society
	for _, s := range m.societies {
		societies = append(societies, s)
	}
	return societies, nil
}

// MockMemberRepository is a mock implementation of MemberRepository.
type MockMemberRepository struct {
	mu      sync.RWMutex
	members map[string]*domain.Member

	CreateFunc              func(ctx context.Context, member *domain.Member) error
	GetByIDFunc             func(ctx context.Context, id string) (*domain.Member, error)
	LastNumberFunc          func(ctx context.Context, societyID string) (string, error)
	UpdateFunc              func(ctx context.Context, member *domain.Member) error
	DeleteFunc              func(ctx context.Context, id string) error
	ListBySocietyFunc       func(ctx context.Context, societyID string, limit, offset int) ([]*domain.Member, error)
	ListActiveBySocietyFunc func(ctx context.Context, societyID string) ([]*domain.Member, error)
}

func NewMockMemberRepository() *MockMemberRepository {
	return &MockMemberRepository{
		members: make(map[string]*domain.Member),
	}
}

func (m *MockMemberRepository) Create(ctx context.Context, member *domain.Member) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, member)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.members {
		if existing.SocietyID == member.SocietyID && existing.MemberNumber == member.MemberNumber {
			return fmt.Errorf("%w: %s", domain.ErrDuplicateNumber, member.MemberNumber)
		}
	}
	m.members[member.ID] = member
	return nil
}

func (m *MockMemberRepository) GetByID(ctx context.Context, id string) (*domain.Member, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if member, ok := m.members[id]; ok {
		return member, nil
	}
	return nil, domain.ErrMemberNotFound
}

func (m *MockMemberRepository) LastNumber(ctx context.Context, societyID string) (string, error) {
	if m.LastNumberFunc != nil {
		return m.LastNumberFunc(ctx, societyID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	last := ""
	for _, member := range m.members {
		if member.SocietyID == societyID && member.MemberNumber > last {
			last = member.MemberNumber
		}
	}
	return last, nil
}

func (m *MockMemberRepository) Update(ctx context.Context, member *domain.Member) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, member)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.members[member.ID] = member
	return nil
}

func (m *MockMemberRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.members, id)
	return nil
}

func (m *MockMemberRepository) ListBySociety(ctx context.Context, societyID string, limit, offset int) ([]*domain.Member, error) {
	if m.ListBySocietyFunc != nil {
		return m.ListBySocietyFunc(ctx, societyID, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var members []*domain.Member
	for _, member := range m.members {
		if member.SocietyID == societyID {
			members = append(members, member)
		}
	}
	return members, nil
}

func (m *MockMemberRepository) ListActiveBySociety(ctx context.Context, societyID string) ([]*domain.Member, error) {
	if m.ListActiveBySocietyFunc != nil {
		return m.ListActiveBySocietyFunc(ctx, societyID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var members []*domain.Member
	for _, member := range m.members {
		if member.SocietyID == societyID && member.Status == domain.MemberStatusActive {
			members = append(members, member)
		}
	}
	return members, nil
}

// MockLoanRepository is a mock implementation of LoanRepository.
type MockLoanRepository struct {
	mu    sync.RWMutex
	loans map[string]*domain.Loan

	CreateFunc            func(ctx context.Context, loan *domain.Loan) error
	GetByIDFunc           func(ctx context.Context, id string) (*domain.Loan, error)
	LastNumberFunc        func(ctx context.Context, societyID string) (string, error)
	UpdateFunc            func(ctx context.Context, loan *domain.Loan) error
	DeleteFunc            func(ctx context.Context, id string) error
	ListBySocietyFunc     func(ctx context.Context, societyID string, limit, offset int) ([]*domain.Loan, error)
	ListByMemberFunc      func(ctx context.Context, memberID string, limit, offset int) ([]*domain.Loan, error)
	GetActiveByMemberFunc func(ctx context.Context, memberID string) (*domain.Loan, error)
}

func NewMockLoanRepository() *MockLoanRepository {
	return &MockLoanRepository{
		loans: make(map[string]*domain.Loan),
	}
}

func (m *MockLoanRepository) Create(ctx context.Context, loan *domain.Loan) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, loan)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.loans {
		if existing.SocietyID == loan.SocietyID && existing.LoanNumber == loan.LoanNumber {
			return fmt.Errorf("%w: %s", domain.ErrDuplicateNumber, loan.LoanNumber)
		}
	}
	m.loans[loan.ID] = loan
	return nil
}

func (m *MockLoanRepository) GetByID(ctx context.Context, id string) (*domain.Loan, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if loan, ok := m.loans[id]; ok {
		return loan, nil
	}
	return nil, domain.ErrLoanNotFound
}

func (m *MockLoanRepository) LastNumber(ctx context.Context, societyID string) (string, error) {
	if m.LastNumberFunc != nil {
		return m.LastNumberFunc(ctx, societyID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	last := ""
	for _, loan := range m.loans {
		if loan.SocietyID == societyID && loan.LoanNumber > last {
			last = loan.LoanNumber
		}
	}
	return last, nil
}

func (m *MockLoanRepository) Update(ctx context.Context, loan *domain.Loan) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, loan)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loans[loan.ID] = loan
	return nil
}

func (m *MockLoanRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.loans, id)
	return nil
}

func (m *MockLoanRepository) ListBySociety(ctx context.Context, societyID string, limit, offset int) ([]*domain.Loan, error) {
	if m.ListBySocietyFunc != nil {
		return m.ListBySocietyFunc(ctx, societyID, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var loans []*domain.Loan
	for _, loan := range m.loans {
		if loan.SocietyID == societyID {
			loans = append(loans, loan)
		}
	}
	return loans, nil
}

func (m *MockLoanRepository) ListByMember(ctx context.Context, memberID string, limit, offset int) ([]*domain.Loan, error) {
	if m.ListByMemberFunc != nil {
		return m.ListByMemberFunc(ctx, memberID, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var loans []*domain.Loan
	for _, loan := range m.loans {
		if loan.MemberID == memberID {
			loans = append(loans, loan)
		}
	}
	return loans, nil
}

func (m *MockLoanRepository) GetActiveByMember(ctx context.Context, memberID string) (*domain.Loan, error) {
	if m.GetActiveByMemberFunc != nil {
		return m.GetActiveByMemberFunc(ctx, memberID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, loan := range m.loans {
		if loan.MemberID == memberID && loan.Status == domain.LoanStatusActive {
			return loan, nil
		}
	}
	return nil, domain.ErrLoanNotFound
}

// MockVoucherRepository is a mock implementation of VoucherRepository.
type MockVoucherRepository struct {
	mu       sync.RWMutex
	vouchers map[string]*domain.Voucher

	CreateFunc        func(ctx context.Context, tx usecase.Transaction, voucher *domain.Voucher) error
	GetByIDFunc       func(ctx context.Context, id string) (*domain.Voucher, error)
	LastNumberFunc    func(ctx context.Context, societyID string, voucherType domain.VoucherType) (string, error)
	DeleteFunc        func(ctx context.Context, id string) error
	ListBySocietyFunc func(ctx context.Context, societyID string, voucherType domain.VoucherType, limit, offset int) ([]*domain.Voucher, error)
}

func NewMockVoucherRepository() *MockVoucherRepository {
	return &MockVoucherRepository{
		vouchers: make(map[string]*domain.Voucher),
	}
}

func (m *MockVoucherRepository) Create(ctx context.Context, tx usecase.Transaction, voucher *domain.Voucher) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, voucher)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.vouchers {
		if existing.SocietyID == voucher.SocietyID && existing.VoucherNumber == voucher.VoucherNumber {
			return fmt.Errorf("%w: %s", domain.ErrDuplicateNumber, voucher.VoucherNumber)
		}
	}
	m.vouchers[voucher.ID] = voucher
	return nil
}

func (m *MockVoucherRepository) GetByID(ctx context.Context, id string) (*domain.Voucher, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if voucher, ok := m.vouchers[id]; ok {
		return voucher, nil
	}
	return nil, domain.ErrVoucherNotFound
}

func (m *MockVoucherRepository) LastNumber(ctx context.Context, societyID string, voucherType domain.VoucherType) (string, error) {
	if m.LastNumberFunc != nil {
		return m.LastNumberFunc(ctx, societyID, voucherType)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	last := ""
	for _, voucher := range m.vouchers {
		if voucher.SocietyID == societyID && voucher.Type == voucherType && voucher.VoucherNumber > last {
			last = voucher.VoucherNumber
		}
	}
	return last, nil
}

func (m *MockVoucherRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.vouchers, id)
	return nil
}

func (m *MockVoucherRepository) ListBySociety(ctx context.Context, societyID string, voucherType domain.VoucherType, limit, offset int) ([]*domain.Voucher, error) {
	if m.ListBySocietyFunc != nil {
		return m.ListBySocietyFunc(ctx, societyID, voucherType, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var vouchers []*domain.Voucher
	for _, voucher := range m.vouchers {
		if voucher.SocietyID != societyID {
			continue
		}
		if voucherType != "" && voucher.Type != voucherType {
			continue
		}
		vouchers = append(vouchers, voucher)
	}
	return vouchers, nil
}

// MockIDGenerator is a mock implementation of IDGenerator.
type MockIDGenerator struct {
	mu      sync.Mutex
	counter int

	GenerateFunc func() string
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counter++
	return fmt.Sprintf("mock-id-%03d", m.counter)
}

// MockRetrier retries an operation on duplicate-number conflicts, up
// to a fixed number of attempts, with no backoff.
type MockRetrier struct {
	MaxAttempts int

	RetryFunc func(ctx context.Context, operation func() error) error
}

func NewMockRetrier() *MockRetrier {
	return &MockRetrier{MaxAttempts: 3}
}

func (m *MockRetrier) Retry(ctx context.Context, operation func() error) error {
	if m.RetryFunc != nil {
		return m.RetryFunc(ctx, operation)
	}
	var err error
	for attempt := 0; attempt < m.MaxAttempts; attempt++ {
		err = operation()
		if err == nil || !errors.Is(err, domain.ErrDuplicateNumber) {
			return err
		}
	}
	return err
}

// MockCache is an in-memory mock implementation of Cache.
type MockCache struct {
	mu     sync.RWMutex
	values map[string]string

	GetFunc    func(ctx context.Context, key string) (string, error)
	SetFunc    func(ctx context.Context, key, value string, ttl time.Duration) error
	DeleteFunc func(ctx context.Context, key string) error
}

func NewMockCache() *MockCache {
	return &MockCache{values: make(map[string]string)}
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if v, ok := m.values[key]; ok {
		return v, nil
	}
	return "", errors.New("cache miss")
}

func (m *MockCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, key)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

// MockTransaction is a no-op transaction.
type MockTransaction struct {
	CommitFunc   func(ctx context.Context) error
	RollbackFunc func(ctx context.Context) error

	Committed  bool
	RolledBack bool
}

func (m *MockTransaction) Commit(ctx context.Context) error {
	if m.CommitFunc != nil {
		return m.CommitFunc(ctx)
	}
	m.Committed = true
	return nil
}

func (m *MockTransaction) Rollback(ctx context.Context) error {
	if m.RollbackFunc != nil {
		return m.RollbackFunc(ctx)
	}
	m.RolledBack = true
	return nil
}

// MockTransactionManager hands out MockTransactions.
type MockTransactionManager struct {
	BeginFunc func(ctx context.Context) (usecase.Transaction, error)

	LastTx *MockTransaction
}

func NewMockTransactionManager() *MockTransactionManager {
	return &MockTransactionManager{}
}

func (m *MockTransactionManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx)
	}
	m.LastTx = &MockTransaction{}
	return m.LastTx, nil
}

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mu    sync.RWMutex
	users map[string]*domain.User

	CreateFunc     func(ctx context.Context, user *domain.User) error
	GetByIDFunc    func(ctx context.Context, id string) (*domain.User, error)
	GetByEmailFunc func(ctx context.Context, email string) (*domain.User, error)
	UpdateFunc     func(ctx context.Context, user *domain.User) error
	DeleteFunc     func(ctx context.Context, id string) error
	ListFunc       func(ctx context.Context, limit, offset int) ([]*domain.User, error)
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{users: make(map[string]*domain.User)}
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := *user
	m.users[user.ID] = &stored
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if user, ok := m.users[id]; ok {
		found := *user
		return &found, nil
	}
	return nil, errors.New("user not found")
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, user := range m.users {
		if user.Email == email {
			found := *user
			return &found, nil
		}
	}
	return nil, nil
}

func (m *MockUserRepository) Update(ctx context.Context, user *domain.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, user)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := *user
	m.users[user.ID] = &stored
	return nil
}

func (m *MockUserRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.users, id)
	return nil
}

func (m *MockUserRepository) List(ctx context.Context, limit, offset int) ([]*domain.User, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var users []*domain.User
	for _, user := range m.users {
		users = append(users, user)
	}
	return users, nil
}

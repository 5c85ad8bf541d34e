package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rajesh2024-krita/fintcs/internal/domain"
)

// LoanRepository implements usecase.LoanRepository.
type LoanRepository struct {
	pool *pgxpool.Pool
}

// NewLoanRepository creates a new LoanRepository.
func NewLoanRepository(pool *pgxpool.Pool) *LoanRepository {
	return &LoanRepository{pool: pool}
}

const loanColumns = `id, society_id, member_id, loan_number, type, loan_amount,
		previous_loan, net_loan, installments, installment_amount, purpose,
		status, issued_at, created_at, updated_at`

// Create inserts a new loan. A duplicate loan number within the
// society maps to domain.ErrDuplicateNumber so the caller can
// regenerate and retry.
func (r *LoanRepository) Create(ctx context.Context, loan *domain.Loan) error {
	query := `
		INSERT INTO loans (` + loanColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`

	_, err := r.pool.Exec(ctx, query,
		loan.ID,
		loan.SocietyID,
		loan.MemberID,
		loan.LoanNumber,
		loan.Type,
		decimalToNumeric(loan.LoanAmount),
		decimalToNumeric(loan.PreviousLoan),
		decimalToNumeric(loan.NetLoan),
		loan.Installments,
		decimalToNumeric(loan.InstallmentAmount),
		loan.Purpose,
		loan.Status,
		timeToPgTimestamptz(loan.IssuedAt),
		timeToPgTimestamptz(loan.CreatedAt),
		timeToPgTimestamptz(loan.UpdatedAt),
	)
	if isUniqueViolation(err, "loans_society_id_loan_number_key") {
		return fmt.Errorf("loan number %s: %w", loan.LoanNumber, domain.ErrDuplicateNumber)
	}

	return err
}

// GetByID retrieves a loan by ID.
func (r *LoanRepository) GetByID(ctx context.Context, id string) (*domain.Loan, error) {
	query := `SELECT ` + loanColumns + ` FROM loans WHERE id = $1`

	loan, err := scanLoan(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrLoanNotFound
	}

	return loan, err
}

// LastNumber returns the loan number with the highest numeric suffix
// for the society, or "" when the society has no loans yet. The
// suffix runs across year boundaries, so the highest suffix is always
// the most recently issued number.
func (r *LoanRepository) LastNumber(ctx context.Context, societyID string) (string, error) {
	query := `
		SELECT loan_number
		FROM loans
		WHERE society_id = $1
		ORDER BY (substring(loan_number from 4))::int DESC
		LIMIT 1
	`

	var number string
	err := r.pool.QueryRow(ctx, query, societyID).Scan(&number)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}

	return number, err
}

// Update updates a loan. The loan number is never changed here.
func (r *LoanRepository) Update(ctx context.Context, loan *domain.Loan) error {
	query := `
		UPDATE loans
		SET type = $2, loan_amount = $3, previous_loan = $4, net_loan = $5,
			installments = $6, installment_amount = $7, purpose = $8,
			status = $9, issued_at = $10, updated_at = $11
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query,
		loan.ID,
		loan.Type,
		decimalToNumeric(loan.LoanAmount),
		decimalToNumeric(loan.PreviousLoan),
		decimalToNumeric(loan.NetLoan),
		loan.Installments,
		decimalToNumeric(loan.InstallmentAmount),
		loan.Purpose,
		loan.Status,
		timeToPgTimestamptz(loan.IssuedAt),
		timeToPgTimestamptz(loan.UpdatedAt),
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrLoanNotFound
	}

	return nil
}

// Delete deletes a loan.
func (r *LoanRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM loans WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrLoanNotFound
	}

	return nil
}

// ListBySociety lists loans of a society with pagination.
func (r *LoanRepository) ListBySociety(ctx context.Context, societyID string, limit, offset int) ([]*domain.Loan, error) {
	query := `
		SELECT ` + loanColumns + `
		FROM loans
		WHERE society_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.pool.Query(ctx, query, societyID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectLoans(rows)
}

// ListByMember lists a member's loans with pagination.
func (r *LoanRepository) ListByMember(ctx context.Context, memberID string, limit, offset int) ([]*domain.Loan, error) {
	query := `
		SELECT ` + loanColumns + `
		FROM loans
		WHERE member_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.pool.Query(ctx, query, memberID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectLoans(rows)
}

// GetActiveByMember returns the member's active loan, if any. A member
// carries at most one active loan at a time; a fresh loan settles the
// previous one through the previous-loan figure.
func (r *LoanRepository) GetActiveByMember(ctx context.Context, memberID string) (*domain.Loan, error) {
	query := `
		SELECT ` + loanColumns + `
		FROM loans
		WHERE member_id = $1 AND status = $2
		ORDER BY created_at DESC
		LIMIT 1
	`

	loan, err := scanLoan(r.pool.QueryRow(ctx, query, memberID, domain.LoanStatusActive))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrLoanNotFound
	}

	return loan, err
}

func collectLoans(rows pgx.Rows) ([]*domain.Loan, error) {
	var loans []*domain.Loan
	for rows.Next() {
		loan, err := scanLoan(rows)
		if err != nil {
			return nil, err
		}
		loans = append(loans, loan)
	}

	return loans, rows.Err()
}

func scanLoan(row pgx.Row) (*domain.Loan, error) {
	var (
		loan                           domain.Loan
		amount, previous, net, inst    pgtype.Numeric
		issuedAt, createdAt, updatedAt pgtype.Timestamptz
	)

	err := row.Scan(
		&loan.ID,
		&loan.SocietyID,
		&loan.MemberID,
		&loan.LoanNumber,
		&loan.Type,
		&amount,
		&previous,
		&net,
		&loan.Installments,
		&inst,
		&loan.Purpose,
		&loan.Status,
		&issuedAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	loan.LoanAmount = numericToDecimal(amount)
	loan.PreviousLoan = numericToDecimal(previous)
	loan.NetLoan = numericToDecimal(net)
	loan.InstallmentAmount = numericToDecimal(inst)
	loan.IssuedAt = issuedAt.Time
	loan.CreatedAt = createdAt.Time
	loan.UpdatedAt = updatedAt.Time

	return &loan, nil
}

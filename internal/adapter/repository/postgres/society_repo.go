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

// SocietyRepository implements usecase.SocietyRepository.
type SocietyRepository struct {
	pool *pgxpool.Pool
}

// NewSocietyRepository creates a new SocietyRepository.
func NewSocietyRepository(pool *pgxpool.Pool) *SocietyRepository {
	return &SocietyRepository{pool: pool}
}

const societyColumns = `id, code, name, address, city, phone, email, registration_no,
		loan_interest_rate, cd_interest_rate, monthly_share, monthly_cd,
		active, created_at, updated_at`

// Create inserts a new society.
func (r *SocietyRepository) Create(ctx context.Context, society *domain.Society) error {
	query := `
		INSERT INTO societies (` + societyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`

	_, err := r.pool.Exec(ctx, query,
		society.ID,
		society.Code,
		society.Name,
		society.Address,
		society.City,
		society.Phone,
		society.Email,
		society.RegistrationNo,
		decimalToNumeric(society.LoanInterestRate),
		decimalToNumeric(society.CDInterestRate),
		decimalToNumeric(society.MonthlyShare),
		decimalToNumeric(society.MonthlyCD),
		society.Active,
		timeToPgTimestamptz(society.CreatedAt),
		timeToPgTimestamptz(society.UpdatedAt),
	)
	if isUniqueViolation(err, "societies_code_key") {
		return fmt.Errorf("society code %s: %w", society.Code, domain.ErrDuplicateNumber)
	}

	return err
}

// GetByID retrieves a society by ID.
func (r *SocietyRepository) GetByID(ctx context.Context, id string) (*domain.Society, error) {
	query := `SELECT ` + societyColumns + ` FROM societies WHERE id = $1`

	society, err := scanSociety(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrSocietyNotFound
	}

	return society, err
}

// Update updates a society.
func (r *SocietyRepository) Update(ctx context.Context, society *domain.Society) error {
	query := `
		UPDATE societies
		SET name = $2, address = $3, city = $4, phone = $5, email = $6,
			loan_interest_rate = $7, cd_interest_rate = $8,
			monthly_share = $9, monthly_cd = $10, active = $11, updated_at = $12
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query,
		society.ID,
		society.Name,
		society.Address,
		society.City,
		society.Phone,
		society.Email,
		decimalToNumeric(society.LoanInterestRate),
		decimalToNumeric(society.CDInterestRate),
		decimalToNumeric(society.MonthlyShare),
		decimalToNumeric(society.MonthlyCD),
		society.Active,
		timeToPgTimestamptz(society.UpdatedAt),
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrSocietyNotFound
	}

	return nil
}

// Delete deletes a society.
func (r *SocietyRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM societies WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrSocietyNotFound
	}

	return nil
}

// List lists societies with pagination.
func (r *SocietyRepository) List(ctx context.Context, limit, offset int) ([]*domain.Society, error) {
	query := `
		SELECT ` + societyColumns + `
		FROM societies
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var societies []*domain.Society
	for rows.Next() {
		society, err := scanSociety(rows)
		if err != nil {
			return nil, err
		}
		societies = append(societies, society)
	}

	return societies, rows.Err()
}

func scanSociety(row pgx.Row) (*domain.Society, error) {
	var (
		society                                   domain.Society
		loanRate, cdRate, monthlyShare, monthlyCD pgtype.Numeric
		createdAt, updatedAt                      pgtype.Timestamptz
	)

	err := row.Scan(
		&society.ID,
		&society.Code,
		&society.Name,
		&society.Address,
		&society.City,
		&society.Phone,
		&society.Email,
		&society.RegistrationNo,
		&loanRate,
		&cdRate,
		&monthlyShare,
		&monthlyCD,
		&society.Active,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	society.LoanInterestRate = numericToDecimal(loanRate)
	society.CDInterestRate = numericToDecimal(cdRate)
	society.MonthlyShare = numericToDecimal(monthlyShare)
	society.MonthlyCD = numericToDecimal(monthlyCD)
	society.CreatedAt = createdAt.Time
	society.UpdatedAt = updatedAt.Time

	return &society, nil
}

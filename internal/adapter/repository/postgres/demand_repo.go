package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rajesh2024-krita/fintcs/internal/domain"
	"github.com/rajesh2024-krita/fintcs/internal/usecase"
)

// DemandRepository implements usecase.DemandRepository.
type DemandRepository struct {
	pool *pgxpool.Pool
}

// NewDemandRepository creates a new DemandRepository.
func NewDemandRepository(pool *pgxpool.Pool) *DemandRepository {
	return &DemandRepository{pool: pool}
}

// DeleteForPeriod removes all demand rows for the society and period
// within the given transaction. Regeneration replaces the statement.
func (r *DemandRepository) DeleteForPeriod(ctx context.Context, tx usecase.Transaction, societyID string, month, year int) error {
	pgxTx := tx.(*Tx).PgxTx()

	query := `DELETE FROM demand_rows WHERE society_id = $1 AND month = $2 AND year = $3`

	_, err := pgxTx.Exec(ctx, query, societyID, month, year)

	return err
}

// CreateRow inserts one demand row within the given transaction.
func (r *DemandRepository) CreateRow(ctx context.Context, tx usecase.Transaction, row *domain.DemandRow) error {
	pgxTx := tx.(*Tx).PgxTx()

	query := `
		INSERT INTO demand_rows (id, society_id, member_id, member_number, month, year,
			share_amount, cd_amount, loan_installment, interest_amount, total, generated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := pgxTx.Exec(ctx, query,
		row.ID,
		row.SocietyID,
		row.MemberID,
		row.MemberNumber,
		row.Month,
		row.Year,
		decimalToNumeric(row.ShareAmount),
		decimalToNumeric(row.CDAmount),
		decimalToNumeric(row.LoanInstallment),
		decimalToNumeric(row.InterestAmount),
		decimalToNumeric(row.Total),
		timeToPgTimestamptz(row.GeneratedAt),
	)

	return err
}

// ListForPeriod returns the stored demand rows for the society and
// period in member number order.
func (r *DemandRepository) ListForPeriod(ctx context.Context, societyID string, month, year int) ([]*domain.DemandRow, error) {
	query := `
		SELECT id, society_id, member_id, member_number, month, year,
			share_amount, cd_amount, loan_installment, interest_amount, total, generated_at
		FROM demand_rows
		WHERE society_id = $1 AND month = $2 AND year = $3
		ORDER BY member_number
	`

	rows, err := r.pool.Query(ctx, query, societyID, month, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var demandRows []*domain.DemandRow
	for rows.Next() {
		row, err := scanDemandRow(rows)
		if err != nil {
			return nil, err
		}
		demandRows = append(demandRows, row)
	}

	return demandRows, rows.Err()
}

func scanDemandRow(row pgx.Row) (*domain.DemandRow, error) {
	var (
		demand                                  domain.DemandRow
		share, cd, installment, interest, total pgtype.Numeric
		generatedAt                             pgtype.Timestamptz
	)

	err := row.Scan(
		&demand.ID,
		&demand.SocietyID,
		&demand.MemberID,
		&demand.MemberNumber,
		&demand.Month,
		&demand.Year,
		&share,
		&cd,
		&installment,
		&interest,
		&total,
		&generatedAt,
	)
	if err != nil {
		return nil, err
	}

	demand.ShareAmount = numericToDecimal(share)
	demand.CDAmount = numericToDecimal(cd)
	demand.LoanInstallment = numericToDecimal(installment)
	demand.InterestAmount = numericToDecimal(interest)
	demand.Total = numericToDecimal(total)
	demand.GeneratedAt = generatedAt.Time

	return &demand, nil
}

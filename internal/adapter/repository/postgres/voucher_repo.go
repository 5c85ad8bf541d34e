package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rajesh2024-krita/fintcs/internal/domain"
	"github.com/rajesh2024-krita/fintcs/internal/usecase"
)

// VoucherRepository implements usecase.VoucherRepository.
type VoucherRepository struct {
	pool *pgxpool.Pool
}

// NewVoucherRepository creates a new VoucherRepository.
func NewVoucherRepository(pool *pgxpool.Pool) *VoucherRepository {
	return &VoucherRepository{pool: pool}
}

// Create inserts a voucher and its entry lines within the given
// transaction. A duplicate voucher number within the society maps to
// domain.ErrDuplicateNumber so the caller can regenerate and retry.
func (r *VoucherRepository) Create(ctx context.Context, tx usecase.Transaction, voucher *domain.Voucher) error {
	pgxTx := tx.(*Tx).PgxTx()

	voucherQuery := `
		INSERT INTO vouchers (id, society_id, voucher_number, type, date, narration, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := pgxTx.Exec(ctx, voucherQuery,
		voucher.ID,
		voucher.SocietyID,
		voucher.VoucherNumber,
		voucher.Type,
		timeToPgTimestamptz(voucher.Date),
		voucher.Narration,
		voucher.CreatedBy,
		timeToPgTimestamptz(voucher.CreatedAt),
	)
	if isUniqueViolation(err, "vouchers_society_id_voucher_number_key") {
		return fmt.Errorf("voucher number %s: %w", voucher.VoucherNumber, domain.ErrDuplicateNumber)
	}
	if err != nil {
		return err
	}

	entryQuery := `
		INSERT INTO voucher_entries (voucher_id, position, particulars, debit, credit)
		VALUES ($1, $2, $3, $4, $5)
	`

	for i, entry := range voucher.Entries {
		_, err := pgxTx.Exec(ctx, entryQuery,
			voucher.ID,
			i,
			entry.Particulars,
			decimalToNumeric(entry.Debit),
			decimalToNumeric(entry.Credit),
		)
		if err != nil {
			return err
		}
	}

	return nil
}

// GetByID retrieves a voucher with its entry lines.
func (r *VoucherRepository) GetByID(ctx context.Context, id string) (*domain.Voucher, error) {
	query := `
		SELECT id, society_id, voucher_number, type, date, narration, created_by, created_at
		FROM vouchers
		WHERE id = $1
	`

	voucher, err := scanVoucher(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrVoucherNotFound
	}
	if err != nil {
		return nil, err
	}

	voucher.Entries, err = r.loadEntries(ctx, id)
	if err != nil {
		return nil, err
	}

	return voucher, nil
}

// LastNumber returns the voucher number with the highest numeric
// suffix for the society and voucher type, or "" when none exists.
func (r *VoucherRepository) LastNumber(ctx context.Context, societyID string, voucherType domain.VoucherType) (string, error) {
	query := `
		SELECT voucher_number
		FROM vouchers
		WHERE society_id = $1 AND type = $2
		ORDER BY (substring(voucher_number from 4))::int DESC
		LIMIT 1
	`

	var number string
	err := r.pool.QueryRow(ctx, query, societyID, voucherType).Scan(&number)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}

	return number, err
}

// Delete deletes a voucher. Entry lines go with it via the foreign
// key cascade.
func (r *VoucherRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM vouchers WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrVoucherNotFound
	}

	return nil
}

// ListBySociety lists vouchers of a society with pagination. An empty
// voucher type matches all types.
func (r *VoucherRepository) ListBySociety(ctx context.Context, societyID string, voucherType domain.VoucherType, limit, offset int) ([]*domain.Voucher, error) {
	query := `
		SELECT id, society_id, voucher_number, type, date, narration, created_by, created_at
		FROM vouchers
		WHERE society_id = $1 AND ($2 = '' OR type = $2)
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4
	`

	rows, err := r.pool.Query(ctx, query, societyID, string(voucherType), limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vouchers []*domain.Voucher
	for rows.Next() {
		voucher, err := scanVoucher(rows)
		if err != nil {
			return nil, err
		}
		vouchers = append(vouchers, voucher)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, voucher := range vouchers {
		voucher.Entries, err = r.loadEntries(ctx, voucher.ID)
		if err != nil {
			return nil, err
		}
	}

	return vouchers, nil
}

func (r *VoucherRepository) loadEntries(ctx context.Context, voucherID string) ([]domain.VoucherEntry, error) {
	query := `
		SELECT particulars, debit, credit
		FROM voucher_entries
		WHERE voucher_id = $1
		ORDER BY position
	`

	rows, err := r.pool.Query(ctx, query, voucherID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.VoucherEntry
	for rows.Next() {
		var (
			entry         domain.VoucherEntry
			debit, credit pgtype.Numeric
		)
		if err := rows.Scan(&entry.Particulars, &debit, &credit); err != nil {
			return nil, err
		}
		entry.Debit = numericToDecimal(debit)
		entry.Credit = numericToDecimal(credit)
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

func scanVoucher(row pgx.Row) (*domain.Voucher, error) {
	var (
		voucher         domain.Voucher
		date, createdAt pgtype.Timestamptz
	)

	err := row.Scan(
		&voucher.ID,
		&voucher.SocietyID,
		&voucher.VoucherNumber,
		&voucher.Type,
		&date,
		&voucher.Narration,
		&voucher.CreatedBy,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	voucher.Date = date.Time
	voucher.CreatedAt = createdAt.Time

	return &voucher, nil
}

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

// MemberRepository implements usecase.MemberRepository.
type MemberRepository struct {
	pool *pgxpool.Pool
}

// NewMemberRepository creates a new MemberRepository.
func NewMemberRepository(pool *pgxpool.Pool) *MemberRepository {
	return &MemberRepository{pool: pool}
}

const memberColumns = `id, society_id, member_number, name, father_husband, address,
		phone, email, date_of_joining, share_balance, cd_balance, status,
		created_at, updated_at`

// Create inserts a new member. A duplicate member number within the
// society maps to domain.ErrDuplicateNumber so the caller can
// regenerate and retry.
func (r *MemberRepository) Create(ctx context.Context, member *domain.Member) error {
	query := `
		INSERT INTO members (` + memberColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	_, err := r.pool.Exec(ctx, query,
		member.ID,
		member.SocietyID,
		member.MemberNumber,
		member.Name,
		member.FatherHusband,
		member.Address,
		member.Phone,
		member.Email,
		timeToPgTimestamptz(member.DateOfJoining),
		decimalToNumeric(member.ShareBalance),
		decimalToNumeric(member.CDBalance),
		member.Status,
		timeToPgTimestamptz(member.CreatedAt),
		timeToPgTimestamptz(member.UpdatedAt),
	)
	if isUniqueViolation(err, "members_society_id_member_number_key") {
		return fmt.Errorf("member number %s: %w", member.MemberNumber, domain.ErrDuplicateNumber)
	}

	return err
}

// GetByID retrieves a member by ID.
func (r *MemberRepository) GetByID(ctx context.Context, id string) (*domain.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members WHERE id = $1`

	member, err := scanMember(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrMemberNotFound
	}

	return member, err
}

// LastNumber returns the member number with the highest numeric suffix
// for the society, or "" when the society has no members yet.
func (r *MemberRepository) LastNumber(ctx context.Context, societyID string) (string, error) {
	query := `
		SELECT member_number
		FROM members
		WHERE society_id = $1
		ORDER BY (substring(member_number from 5))::int DESC
		LIMIT 1
	`

	var number string
	err := r.pool.QueryRow(ctx, query, societyID).Scan(&number)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}

	return number, err
}

// Update updates a member. The member number is never changed here.
func (r *MemberRepository) Update(ctx context.Context, member *domain.Member) error {
	query := `
		UPDATE members
		SET name = $2, father_husband = $3, address = $4, phone = $5, email = $6,
			date_of_joining = $7, share_balance = $8, cd_balance = $9,
			status = $10, updated_at = $11
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query,
		member.ID,
		member.Name,
		member.FatherHusband,
		member.Address,
		member.Phone,
		member.Email,
		timeToPgTimestamptz(member.DateOfJoining),
		decimalToNumeric(member.ShareBalance),
		decimalToNumeric(member.CDBalance),
		member.Status,
		timeToPgTimestamptz(member.UpdatedAt),
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrMemberNotFound
	}

	return nil
}

// Delete deletes a member.
func (r *MemberRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM members WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrMemberNotFound
	}

	return nil
}

// ListBySociety lists members of a society with pagination.
func (r *MemberRepository) ListBySociety(ctx context.Context, societyID string, limit, offset int) ([]*domain.Member, error) {
	query := `
		SELECT ` + memberColumns + `
		FROM members
		WHERE society_id = $1
		ORDER BY member_number
		LIMIT $2 OFFSET $3
	`

	rows, err := r.pool.Query(ctx, query, societyID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectMembers(rows)
}

// ListActiveBySociety lists all active members of a society, in member
// number order. Demand generation walks the full roster, so there is
// no pagination here.
func (r *MemberRepository) ListActiveBySociety(ctx context.Context, societyID string) ([]*domain.Member, error) {
	query := `
		SELECT ` + memberColumns + `
		FROM members
		WHERE society_id = $1 AND status = $2
		ORDER BY member_number
	`

	rows, err := r.pool.Query(ctx, query, societyID, domain.MemberStatusActive)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectMembers(rows)
}

func collectMembers(rows pgx.Rows) ([]*domain.Member, error) {
	var members []*domain.Member
	for rows.Next() {
		member, err := scanMember(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, member)
	}

	return members, rows.Err()
}

func scanMember(row pgx.Row) (*domain.Member, error) {
	var (
		member                       domain.Member
		shareBalance, cdBalance      pgtype.Numeric
		joined, createdAt, updatedAt pgtype.Timestamptz
	)

	err := row.Scan(
		&member.ID,
		&member.SocietyID,
		&member.MemberNumber,
		&member.Name,
		&member.FatherHusband,
		&member.Address,
		&member.Phone,
		&member.Email,
		&joined,
		&shareBalance,
		&cdBalance,
		&member.Status,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	member.ShareBalance = numericToDecimal(shareBalance)
	member.CDBalance = numericToDecimal(cdBalance)
	member.DateOfJoining = joined.Time
	member.CreatedAt = createdAt.Time
	member.UpdatedAt = updatedAt.Time

	return &member, nil
}

package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ronaldocristover/arisan-backend/internal/apperrors"
	"github.com/ronaldocristover/arisan-backend/internal/core/domain"
	portsrepo "github.com/ronaldocristover/arisan-backend/internal/core/ports/repositories"
	"github.com/ronaldocristover/arisan-backend/internal/models"
	"github.com/ronaldocristover/arisan-backend/internal/utils/mapping"
)

const memberColumns = `member_id, full_name, nickname, alt_name, whatsapp_number, group_name, remarks, joined_date, status, created_at, created_by, last_updated_at, last_updated_by`

type PgxMemberRepository struct {
	BaseRepository
}

// newPgxMemberRepository creates a new repository for member data.
func newPgxMemberRepository(pool *pgxpool.Pool) portsrepo.MemberRepositoryFacade {
	return &PgxMemberRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.MemberRepositoryFacade = (*PgxMemberRepository)(nil)

func scanMember(row pgx.CollectableRow) (models.Member, error) {
	var m models.Member
	err := row.Scan(
		&m.MemberID,
		&m.FullName,
		&m.Nickname,
		&m.AltName,
		&m.WhatsappNumber,
		&m.GroupName,
		&m.Remarks,
		&m.JoinedDate,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxMemberRepository) FindMemberByID(ctx context.Context, memberID string) (*domain.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members WHERE member_id = $1;`

	rows, err := r.Pool.Query(ctx, query, memberID)
	if err != nil {
		return nil, fmt.Errorf("failed to query member %s: %w", memberID, err)
	}

	modelMember, err := pgx.CollectOneRow(rows, scanMember)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan member %s: %w", memberID, err)
	}

	domainMember := mapping.ToDomainMember(modelMember)
	return &domainMember, nil
}

func (r *PgxMemberRepository) FindMembersByIDs(ctx context.Context, memberIDs []string) (map[string]domain.Member, error) {
	if len(memberIDs) == 0 {
		return map[string]domain.Member{}, nil
	}

	query := `SELECT ` + memberColumns + ` FROM members WHERE member_id = ANY($1);`

	rows, err := r.Pool.Query(ctx, query, memberIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query members by ids: %w", err)
	}

	modelMembers, err := pgx.CollectRows(rows, scanMember)
	if err != nil {
		return nil, fmt.Errorf("failed to scan members by ids: %w", err)
	}

	out := make(map[string]domain.Member, len(modelMembers))
	for _, m := range modelMembers {
		out[m.MemberID] = mapping.ToDomainMember(m)
	}
	return out, nil
}

func (r *PgxMemberRepository) ListMembers(ctx context.Context, filter portsrepo.MemberFilter) ([]domain.Member, int64, error) {
	conditions := []string{"1=1"}
	args := []any{}
	argPos := 1

	if filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argPos))
		args = append(args, string(filter.Status))
		argPos++
	}
	if filter.Group != "" {
		conditions = append(conditions, fmt.Sprintf("group_name = $%d", argPos))
		args = append(args, filter.Group)
		argPos++
	}
	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(full_name ILIKE $%d OR nickname ILIKE $%d)", argPos, argPos))
		args = append(args, "%"+filter.Search+"%")
		argPos++
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM members WHERE ` + where + `;`
	if err := r.Pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count members: %w", err)
	}

	query := fmt.Sprintf(`SELECT `+memberColumns+` FROM members WHERE %s ORDER BY full_name LIMIT $%d OFFSET $%d;`, where, argPos, argPos+1)
	args = append(args, filter.Limit, filter.Offset())

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query members: %w", err)
	}

	modelMembers, err := pgx.CollectRows(rows, scanMember)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to scan members: %w", err)
	}

	return mapping.ToDomainMemberSlice(modelMembers), total, nil
}

func (r *PgxMemberRepository) ListActiveMembers(ctx context.Context) ([]domain.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members WHERE status = 'active' ORDER BY full_name;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query active members: %w", err)
	}

	modelMembers, err := pgx.CollectRows(rows, scanMember)
	if err != nil {
		return nil, fmt.Errorf("failed to scan active members: %w", err)
	}

	return mapping.ToDomainMemberSlice(modelMembers), nil
}

func (r *PgxMemberRepository) CountActiveMembers(ctx context.Context) (int64, error) {
	var count int64
	err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM members WHERE status = 'active';`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count active members: %w", err)
	}
	return count, nil
}

func (r *PgxMemberRepository) SaveMember(ctx context.Context, member domain.Member) error {
	m := mapping.ToModelMember(member)

	query := `
		INSERT INTO members (` + memberColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`

	_, err := r.Pool.Exec(ctx, query,
		m.MemberID, m.FullName, m.Nickname, m.AltName, m.WhatsappNumber, m.GroupName,
		m.Remarks, m.JoinedDate, m.Status,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save member %s: %w", m.MemberID, translateConstraintError(err))
	}
	return nil
}

func (r *PgxMemberRepository) UpdateMember(ctx context.Context, member domain.Member) error {
	m := mapping.ToModelMember(member)

	query := `
		UPDATE members SET
			full_name = $2,
			nickname = $3,
			alt_name = $4,
			whatsapp_number = $5,
			group_name = $6,
			remarks = $7,
			joined_date = $8,
			status = $9,
			last_updated_at = $10,
			last_updated_by = $11
		WHERE member_id = $1;
	`

	tag, err := r.Pool.Exec(ctx, query,
		m.MemberID, m.FullName, m.Nickname, m.AltName, m.WhatsappNumber, m.GroupName,
		m.Remarks, m.JoinedDate, m.Status, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update member %s: %w", m.MemberID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxMemberRepository) DeleteMember(ctx context.Context, memberID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM members WHERE member_id = $1;`, memberID)
	if err != nil {
		return fmt.Errorf("failed to delete member %s: %w", memberID, translateConstraintError(err))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

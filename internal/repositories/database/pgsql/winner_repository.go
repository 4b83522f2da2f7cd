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

const winnerColumns = `winner_id, member_id, period_id, amount, draw_date, money_given_date, notes, created_at, created_by, last_updated_at, last_updated_by`

type PgxWinnerRepository struct {
	BaseRepository
}

// newPgxWinnerRepository creates a new repository for winner data.
func newPgxWinnerRepository(pool *pgxpool.Pool) portsrepo.WinnerRepositoryFacade {
	return &PgxWinnerRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.WinnerRepositoryFacade = (*PgxWinnerRepository)(nil)

func scanWinner(row pgx.CollectableRow) (models.Winner, error) {
	var w models.Winner
	err := row.Scan(
		&w.WinnerID,
		&w.MemberID,
		&w.PeriodID,
		&w.Amount,
		&w.DrawDate,
		&w.MoneyGivenDate,
		&w.Notes,
		&w.CreatedAt,
		&w.CreatedBy,
		&w.LastUpdatedAt,
		&w.LastUpdatedBy,
	)
	return w, err
}

func (r *PgxWinnerRepository) findOne(ctx context.Context, query string, args ...any) (*domain.Winner, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query winner: %w", err)
	}

	modelWinner, err := pgx.CollectOneRow(rows, scanWinner)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan winner: %w", err)
	}

	domainWinner := mapping.ToDomainWinner(modelWinner)
	return &domainWinner, nil
}

func (r *PgxWinnerRepository) FindWinnerByID(ctx context.Context, winnerID string) (*domain.Winner, error) {
	return r.findOne(ctx, `SELECT `+winnerColumns+` FROM winners WHERE winner_id = $1;`, winnerID)
}

func (r *PgxWinnerRepository) FindWinnerByPeriod(ctx context.Context, periodID string) (*domain.Winner, error) {
	return r.findOne(ctx, `SELECT `+winnerColumns+` FROM winners WHERE period_id = $1;`, periodID)
}

func (r *PgxWinnerRepository) ListWinnerMemberIDs(ctx context.Context) ([]string, error) {
	rows, err := r.Pool.Query(ctx, `SELECT DISTINCT member_id FROM winners;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query winner member ids: %w", err)
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("failed to scan winner member ids: %w", err)
	}
	return ids, nil
}

func (r *PgxWinnerRepository) ListWinners(ctx context.Context, filter portsrepo.WinnerFilter) ([]domain.Winner, int64, error) {
	conditions := []string{"1=1"}
	args := []any{}
	argPos := 1

	if filter.PeriodID != "" {
		conditions = append(conditions, fmt.Sprintf("w.period_id = $%d", argPos))
		args = append(args, filter.PeriodID)
		argPos++
	}
	if filter.MemberID != "" {
		conditions = append(conditions, fmt.Sprintf("w.member_id = $%d", argPos))
		args = append(args, filter.MemberID)
		argPos++
	}
	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("EXISTS (SELECT 1 FROM members m WHERE m.member_id = w.member_id AND (m.full_name ILIKE $%d OR m.nickname ILIKE $%d))", argPos, argPos))
		args = append(args, "%"+filter.Search+"%")
		argPos++
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM winners w WHERE `+where+`;`, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count winners: %w", err)
	}

	cols := "w." + strings.ReplaceAll(winnerColumns, ", ", ", w.")
	query := fmt.Sprintf(`SELECT %s FROM winners w WHERE %s ORDER BY w.draw_date DESC LIMIT $%d OFFSET $%d;`, cols, where, argPos, argPos+1)
	args = append(args, filter.Limit, filter.Offset())

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query winners: %w", err)
	}

	modelWinners, err := pgx.CollectRows(rows, scanWinner)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to scan winners: %w", err)
	}

	return mapping.ToDomainWinnerSlice(modelWinners), total, nil
}

func (r *PgxWinnerRepository) SaveWinner(ctx context.Context, winner domain.Winner) error {
	w := mapping.ToModelWinner(winner)

	query := `
		INSERT INTO winners (` + winnerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`

	_, err := r.Pool.Exec(ctx, query,
		w.WinnerID, w.MemberID, w.PeriodID, w.Amount, w.DrawDate, w.MoneyGivenDate,
		w.Notes, w.CreatedAt, w.CreatedBy, w.LastUpdatedAt, w.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save winner %s: %w", w.WinnerID, translateConstraintError(err))
	}
	return nil
}

func (r *PgxWinnerRepository) UpdateWinner(ctx context.Context, winner domain.Winner) error {
	w := mapping.ToModelWinner(winner)

	query := `
		UPDATE winners SET
			amount = $2,
			draw_date = $3,
			money_given_date = $4,
			notes = $5,
			last_updated_at = $6,
			last_updated_by = $7
		WHERE winner_id = $1;
	`

	tag, err := r.Pool.Exec(ctx, query,
		w.WinnerID, w.Amount, w.DrawDate, w.MoneyGivenDate, w.Notes,
		w.LastUpdatedAt, w.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update winner %s: %w", w.WinnerID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxWinnerRepository) DeleteWinner(ctx context.Context, winnerID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM winners WHERE winner_id = $1;`, winnerID)
	if err != nil {
		return fmt.Errorf("failed to delete winner %s: %w", winnerID, translateConstraintError(err))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

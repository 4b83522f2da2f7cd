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

const periodColumns = `period_id, month, year, principal, fee, status, is_current, start_date, end_date, created_at, created_by, last_updated_at, last_updated_by`

type PgxPeriodRepository struct {
	BaseRepository
}

// newPgxPeriodRepository creates a new repository for period data.
func newPgxPeriodRepository(pool *pgxpool.Pool) portsrepo.PeriodRepositoryFacade {
	return &PgxPeriodRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.PeriodRepositoryFacade = (*PgxPeriodRepository)(nil)

func scanPeriod(row pgx.CollectableRow) (models.Period, error) {
	var p models.Period
	err := row.Scan(
		&p.PeriodID,
		&p.Month,
		&p.Year,
		&p.Principal,
		&p.Fee,
		&p.Status,
		&p.IsCurrent,
		&p.StartDate,
		&p.EndDate,
		&p.CreatedAt,
		&p.CreatedBy,
		&p.LastUpdatedAt,
		&p.LastUpdatedBy,
	)
	return p, err
}

func (r *PgxPeriodRepository) findOne(ctx context.Context, query string, args ...any) (*domain.Period, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query period: %w", err)
	}

	modelPeriod, err := pgx.CollectOneRow(rows, scanPeriod)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan period: %w", err)
	}

	domainPeriod := mapping.ToDomainPeriod(modelPeriod)
	return &domainPeriod, nil
}

func (r *PgxPeriodRepository) FindPeriodByID(ctx context.Context, periodID string) (*domain.Period, error) {
	return r.findOne(ctx, `SELECT `+periodColumns+` FROM periods WHERE period_id = $1;`, periodID)
}

func (r *PgxPeriodRepository) FindPeriodByMonthYear(ctx context.Context, month, year int) (*domain.Period, error) {
	return r.findOne(ctx, `SELECT `+periodColumns+` FROM periods WHERE month = $1 AND year = $2;`, month, year)
}

func (r *PgxPeriodRepository) FindCurrentPeriod(ctx context.Context) (*domain.Period, error) {
	return r.findOne(ctx, `SELECT `+periodColumns+` FROM periods WHERE is_current;`)
}

func (r *PgxPeriodRepository) ListPeriods(ctx context.Context, filter portsrepo.PeriodFilter) ([]domain.Period, int64, error) {
	conditions := []string{"1=1"}
	args := []any{}
	argPos := 1

	if filter.Year != 0 {
		conditions = append(conditions, fmt.Sprintf("year = $%d", argPos))
		args = append(args, filter.Year)
		argPos++
	}
	if filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argPos))
		args = append(args, string(filter.Status))
		argPos++
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM periods WHERE `+where+`;`, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count periods: %w", err)
	}

	query := fmt.Sprintf(`SELECT `+periodColumns+` FROM periods WHERE %s ORDER BY year DESC, month DESC LIMIT $%d OFFSET $%d;`, where, argPos, argPos+1)
	args = append(args, filter.Limit, filter.Offset())

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query periods: %w", err)
	}

	modelPeriods, err := pgx.CollectRows(rows, scanPeriod)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to scan periods: %w", err)
	}

	return mapping.ToDomainPeriodSlice(modelPeriods), total, nil
}

const insertPeriodQuery = `
	INSERT INTO periods (` + periodColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
`

const insertPaymentQuery = `
	INSERT INTO payments (payment_id, member_id, period_id, amount, status, payment_date, payment_method, attachment, notes, created_at, created_by, last_updated_at, last_updated_by)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
`

// SavePeriodWithPayments flips is_current off everything else, inserts the
// period and its enrollment payments in one transaction. The partial unique
// index on is_current makes concurrent flips lose cleanly with 23505.
func (r *PgxPeriodRepository) SavePeriodWithPayments(ctx context.Context, period domain.Period, payments []domain.Payment) error {
	p := mapping.ToModelPeriod(period)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	if p.IsCurrent {
		if _, err := tx.Exec(ctx, `UPDATE periods SET is_current = FALSE WHERE is_current;`); err != nil {
			return fmt.Errorf("failed to clear current period flag: %w", err)
		}
	}

	_, err = tx.Exec(ctx, insertPeriodQuery,
		p.PeriodID, p.Month, p.Year, p.Principal, p.Fee, p.Status, p.IsCurrent,
		p.StartDate, p.EndDate,
		p.CreatedAt, p.CreatedBy, p.LastUpdatedAt, p.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert period %s: %w", p.PeriodID, translateConstraintError(err))
	}

	for _, payment := range payments {
		m := mapping.ToModelPayment(payment)
		_, err = tx.Exec(ctx, insertPaymentQuery,
			m.PaymentID, m.MemberID, m.PeriodID, m.Amount, m.Status,
			m.PaymentDate, m.PaymentMethod, m.Attachment, m.Notes,
			m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
		)
		if err != nil {
			return fmt.Errorf("failed to insert enrollment payment %s: %w", m.PaymentID, translateConstraintError(err))
		}
	}

	return r.Commit(ctx, tx)
}

func (r *PgxPeriodRepository) UpdatePeriod(ctx context.Context, period domain.Period, makeCurrent bool) error {
	p := mapping.ToModelPeriod(period)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	if makeCurrent {
		if _, err := tx.Exec(ctx, `UPDATE periods SET is_current = FALSE WHERE is_current AND period_id <> $1;`, p.PeriodID); err != nil {
			return fmt.Errorf("failed to clear current period flag: %w", err)
		}
	}

	query := `
		UPDATE periods SET
			month = $2,
			year = $3,
			principal = $4,
			fee = $5,
			status = $6,
			is_current = $7,
			start_date = $8,
			end_date = $9,
			last_updated_at = $10,
			last_updated_by = $11
		WHERE period_id = $1;
	`

	tag, err := tx.Exec(ctx, query,
		p.PeriodID, p.Month, p.Year, p.Principal, p.Fee, p.Status, p.IsCurrent,
		p.StartDate, p.EndDate, p.LastUpdatedAt, p.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update period %s: %w", p.PeriodID, translateConstraintError(err))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return r.Commit(ctx, tx)
}

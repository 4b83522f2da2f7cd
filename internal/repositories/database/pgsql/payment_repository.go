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

const paymentColumns = `payment_id, member_id, period_id, amount, status, payment_date, payment_method, attachment, notes, created_at, created_by, last_updated_at, last_updated_by`

type PgxPaymentRepository struct {
	BaseRepository
}

// newPgxPaymentRepository creates a new repository for payment data.
func newPgxPaymentRepository(pool *pgxpool.Pool) portsrepo.PaymentRepositoryFacade {
	return &PgxPaymentRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.PaymentRepositoryFacade = (*PgxPaymentRepository)(nil)

func scanPayment(row pgx.CollectableRow) (models.Payment, error) {
	var p models.Payment
	err := row.Scan(
		&p.PaymentID,
		&p.MemberID,
		&p.PeriodID,
		&p.Amount,
		&p.Status,
		&p.PaymentDate,
		&p.PaymentMethod,
		&p.Attachment,
		&p.Notes,
		&p.CreatedAt,
		&p.CreatedBy,
		&p.LastUpdatedAt,
		&p.LastUpdatedBy,
	)
	return p, err
}

func (r *PgxPaymentRepository) findOne(ctx context.Context, query string, args ...any) (*domain.Payment, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query payment: %w", err)
	}

	modelPayment, err := pgx.CollectOneRow(rows, scanPayment)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan payment: %w", err)
	}

	domainPayment := mapping.ToDomainPayment(modelPayment)
	return &domainPayment, nil
}

func (r *PgxPaymentRepository) FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	return r.findOne(ctx, `SELECT `+paymentColumns+` FROM payments WHERE payment_id = $1;`, paymentID)
}

func (r *PgxPaymentRepository) FindPaymentByMemberAndPeriod(ctx context.Context, memberID, periodID string) (*domain.Payment, error) {
	return r.findOne(ctx, `SELECT `+paymentColumns+` FROM payments WHERE member_id = $1 AND period_id = $2;`, memberID, periodID)
}

func (r *PgxPaymentRepository) FindPaymentsByPeriod(ctx context.Context, periodID string) ([]domain.Payment, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+paymentColumns+` FROM payments WHERE period_id = $1 ORDER BY created_at;`, periodID)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments of period %s: %w", periodID, err)
	}

	modelPayments, err := pgx.CollectRows(rows, scanPayment)
	if err != nil {
		return nil, fmt.Errorf("failed to scan payments of period %s: %w", periodID, err)
	}

	return mapping.ToDomainPaymentSlice(modelPayments), nil
}

func (r *PgxPaymentRepository) FindPaymentsByIDs(ctx context.Context, paymentIDs []string) ([]domain.Payment, error) {
	if len(paymentIDs) == 0 {
		return []domain.Payment{}, nil
	}

	rows, err := r.Pool.Query(ctx, `SELECT `+paymentColumns+` FROM payments WHERE payment_id = ANY($1);`, paymentIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments by ids: %w", err)
	}

	modelPayments, err := pgx.CollectRows(rows, scanPayment)
	if err != nil {
		return nil, fmt.Errorf("failed to scan payments by ids: %w", err)
	}

	return mapping.ToDomainPaymentSlice(modelPayments), nil
}

func (r *PgxPaymentRepository) ListPayments(ctx context.Context, filter portsrepo.PaymentFilter) ([]domain.Payment, int64, error) {
	conditions := []string{"1=1"}
	args := []any{}
	argPos := 1

	if filter.MemberID != "" {
		conditions = append(conditions, fmt.Sprintf("p.member_id = $%d", argPos))
		args = append(args, filter.MemberID)
		argPos++
	}
	if filter.PeriodID != "" {
		conditions = append(conditions, fmt.Sprintf("p.period_id = $%d", argPos))
		args = append(args, filter.PeriodID)
		argPos++
	}
	if filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("p.status = $%d", argPos))
		args = append(args, string(filter.Status))
		argPos++
	}
	if filter.PaymentMethod != "" {
		conditions = append(conditions, fmt.Sprintf("p.payment_method = $%d", argPos))
		args = append(args, filter.PaymentMethod)
		argPos++
	}
	if filter.StartDate != nil {
		conditions = append(conditions, fmt.Sprintf("p.payment_date >= $%d", argPos))
		args = append(args, *filter.StartDate)
		argPos++
	}
	if filter.EndDate != nil {
		conditions = append(conditions, fmt.Sprintf("p.payment_date <= $%d", argPos))
		args = append(args, *filter.EndDate)
		argPos++
	}
	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("EXISTS (SELECT 1 FROM members m WHERE m.member_id = p.member_id AND (m.full_name ILIKE $%d OR m.nickname ILIKE $%d))", argPos, argPos))
		args = append(args, "%"+filter.Search+"%")
		argPos++
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM payments p WHERE `+where+`;`, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count payments: %w", err)
	}

	cols := "p." + strings.ReplaceAll(paymentColumns, ", ", ", p.")
	query := fmt.Sprintf(`SELECT %s FROM payments p WHERE %s ORDER BY p.created_at DESC LIMIT $%d OFFSET $%d;`, cols, where, argPos, argPos+1)
	args = append(args, filter.Limit, filter.Offset())

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query payments: %w", err)
	}

	modelPayments, err := pgx.CollectRows(rows, scanPayment)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to scan payments: %w", err)
	}

	return mapping.ToDomainPaymentSlice(modelPayments), total, nil
}

func (r *PgxPaymentRepository) ListRecentPaidPayments(ctx context.Context, limit int) ([]domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE status = 'paid' ORDER BY payment_date DESC NULLS LAST LIMIT $1;`

	rows, err := r.Pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent paid payments: %w", err)
	}

	modelPayments, err := pgx.CollectRows(rows, scanPayment)
	if err != nil {
		return nil, fmt.Errorf("failed to scan recent paid payments: %w", err)
	}

	return mapping.ToDomainPaymentSlice(modelPayments), nil
}

func (r *PgxPaymentRepository) CountPaymentsByPeriod(ctx context.Context, periodIDs []string) (map[string]portsrepo.PaymentStatusCount, error) {
	if len(periodIDs) == 0 {
		return map[string]portsrepo.PaymentStatusCount{}, nil
	}

	query := `
		SELECT period_id,
			COUNT(*) FILTER (WHERE status = 'paid') AS paid,
			COUNT(*) FILTER (WHERE status = 'unpaid') AS unpaid
		FROM payments
		WHERE period_id = ANY($1)
		GROUP BY period_id;
	`

	rows, err := r.Pool.Query(ctx, query, periodIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to count payments by period: %w", err)
	}
	defer rows.Close()

	out := make(map[string]portsrepo.PaymentStatusCount, len(periodIDs))
	for rows.Next() {
		var periodID string
		var c portsrepo.PaymentStatusCount
		if err := rows.Scan(&periodID, &c.Paid, &c.Unpaid); err != nil {
			return nil, fmt.Errorf("failed to scan payment counts: %w", err)
		}
		out[periodID] = c
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payment counts: %w", err)
	}
	return out, nil
}

func (r *PgxPaymentRepository) SavePayments(ctx context.Context, payments []domain.Payment) error {
	if len(payments) == 0 {
		return nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	for _, payment := range payments {
		m := mapping.ToModelPayment(payment)
		_, err := tx.Exec(ctx, insertPaymentQuery,
			m.PaymentID, m.MemberID, m.PeriodID, m.Amount, m.Status,
			m.PaymentDate, m.PaymentMethod, m.Attachment, m.Notes,
			m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
		)
		if err != nil {
			return fmt.Errorf("failed to insert payment %s: %w", m.PaymentID, translateConstraintError(err))
		}
	}

	return r.Commit(ctx, tx)
}

const updatePaymentQuery = `
	UPDATE payments SET
		amount = $2,
		status = $3,
		payment_date = $4,
		payment_method = $5,
		attachment = $6,
		notes = $7,
		last_updated_at = $8,
		last_updated_by = $9
	WHERE payment_id = $1;
`

func (r *PgxPaymentRepository) UpdatePayment(ctx context.Context, payment domain.Payment) error {
	m := mapping.ToModelPayment(payment)

	tag, err := r.Pool.Exec(ctx, updatePaymentQuery,
		m.PaymentID, m.Amount, m.Status, m.PaymentDate, m.PaymentMethod,
		m.Attachment, m.Notes, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update payment %s: %w", m.PaymentID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxPaymentRepository) UpdatePayments(ctx context.Context, payments []domain.Payment) error {
	if len(payments) == 0 {
		return nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	for _, payment := range payments {
		m := mapping.ToModelPayment(payment)
		tag, err := tx.Exec(ctx, updatePaymentQuery,
			m.PaymentID, m.Amount, m.Status, m.PaymentDate, m.PaymentMethod,
			m.Attachment, m.Notes, m.LastUpdatedAt, m.LastUpdatedBy,
		)
		if err != nil {
			return fmt.Errorf("failed to update payment %s: %w", m.PaymentID, err)
		}
		if tag.RowsAffected() == 0 {
			return apperrors.ErrNotFound
		}
	}

	return r.Commit(ctx, tx)
}

package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/ronaldocristover/arisan-backend/internal/apperrors"
	"github.com/ronaldocristover/arisan-backend/internal/core/domain"
	portsrepo "github.com/ronaldocristover/arisan-backend/internal/core/ports/repositories"
	"github.com/ronaldocristover/arisan-backend/internal/models"
	"github.com/ronaldocristover/arisan-backend/internal/utils/mapping"
)

const transactionColumns = `transaction_id, type, amount, category, description, notes, transaction_date, payment_id, winner_id, created_at, created_by, last_updated_at, last_updated_by`

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for journal data.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

func scanTransaction(row pgx.CollectableRow) (models.Transaction, error) {
	var t models.Transaction
	err := row.Scan(
		&t.TransactionID,
		&t.Type,
		&t.Amount,
		&t.Category,
		&t.Description,
		&t.Notes,
		&t.TransactionDate,
		&t.PaymentID,
		&t.WinnerID,
		&t.CreatedAt,
		&t.CreatedBy,
		&t.LastUpdatedAt,
		&t.LastUpdatedBy,
	)
	return t, err
}

func (r *PgxTransactionRepository) findOne(ctx context.Context, query string, args ...any) (*domain.Transaction, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transaction: %w", err)
	}

	modelTxn, err := pgx.CollectOneRow(rows, scanTransaction)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan transaction: %w", err)
	}

	domainTxn := mapping.ToDomainTransaction(modelTxn)
	return &domainTxn, nil
}

func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	return r.findOne(ctx, `SELECT `+transactionColumns+` FROM transactions WHERE transaction_id = $1;`, transactionID)
}

func (r *PgxTransactionRepository) FindTransactionByWinnerID(ctx context.Context, winnerID string) (*domain.Transaction, error) {
	return r.findOne(ctx, `SELECT `+transactionColumns+` FROM transactions WHERE winner_id = $1 ORDER BY created_at LIMIT 1;`, winnerID)
}

func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, filter portsrepo.TransactionFilter) ([]domain.Transaction, int64, error) {
	conditions := []string{"1=1"}
	args := []any{}
	argPos := 1

	if filter.Type != "" {
		conditions = append(conditions, fmt.Sprintf("type = $%d", argPos))
		args = append(args, filter.Type)
		argPos++
	}
	if filter.Category != "" {
		conditions = append(conditions, fmt.Sprintf("category = $%d", argPos))
		args = append(args, filter.Category)
		argPos++
	}
	if filter.StartDate != nil {
		conditions = append(conditions, fmt.Sprintf("transaction_date >= $%d", argPos))
		args = append(args, *filter.StartDate)
		argPos++
	}
	if filter.EndDate != nil {
		conditions = append(conditions, fmt.Sprintf("transaction_date <= $%d", argPos))
		args = append(args, *filter.EndDate)
		argPos++
	}
	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(description ILIKE $%d OR notes ILIKE $%d)", argPos, argPos))
		args = append(args, "%"+filter.Search+"%")
		argPos++
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM transactions WHERE `+where+`;`, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count transactions: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM transactions WHERE %s ORDER BY transaction_date DESC, created_at DESC LIMIT $%d OFFSET $%d;`,
		transactionColumns, where, argPos, argPos+1)
	args = append(args, filter.Limit, filter.Offset())

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query transactions: %w", err)
	}

	modelTxns, err := pgx.CollectRows(rows, scanTransaction)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to scan transactions: %w", err)
	}

	return mapping.ToDomainTransactionSlice(modelTxns), total, nil
}

func (r *PgxTransactionRepository) Summarize(ctx context.Context, startDate, endDate *time.Time) (domain.Summary, error) {
	conditions := []string{"1=1"}
	args := []any{}
	argPos := 1

	if startDate != nil {
		conditions = append(conditions, fmt.Sprintf("transaction_date >= $%d", argPos))
		args = append(args, *startDate)
		argPos++
	}
	if endDate != nil {
		conditions = append(conditions, fmt.Sprintf("transaction_date <= $%d", argPos))
		args = append(args, *endDate)
		argPos++
	}

	query := `
		SELECT
			COALESCE(SUM(amount) FILTER (WHERE type = 'income'), 0),
			COALESCE(SUM(amount) FILTER (WHERE type = 'expense'), 0),
			COUNT(*)
		FROM transactions
		WHERE ` + strings.Join(conditions, " AND ") + `;
	`

	var summary domain.Summary
	var income, expense decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, args...).Scan(&income, &expense, &summary.TransactionCount); err != nil {
		return domain.Summary{}, fmt.Errorf("failed to summarize transactions: %w", err)
	}

	summary.TotalIncome = income
	summary.TotalExpense = expense
	summary.Balance = income.Sub(expense)
	return summary, nil
}

const insertTransactionQuery = `
	INSERT INTO transactions (` + transactionColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
`

func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	t := mapping.ToModelTransaction(txn)

	_, err := r.Pool.Exec(ctx, insertTransactionQuery,
		t.TransactionID, t.Type, t.Amount, t.Category, t.Description, t.Notes,
		t.TransactionDate, t.PaymentID, t.WinnerID,
		t.CreatedAt, t.CreatedBy, t.LastUpdatedAt, t.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save transaction %s: %w", t.TransactionID, translateConstraintError(err))
	}
	return nil
}

func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	t := mapping.ToModelTransaction(txn)

	query := `
		UPDATE transactions SET
			type = $2,
			amount = $3,
			category = $4,
			description = $5,
			notes = $6,
			transaction_date = $7,
			last_updated_at = $8,
			last_updated_by = $9
		WHERE transaction_id = $1;
	`

	tag, err := r.Pool.Exec(ctx, query,
		t.TransactionID, t.Type, t.Amount, t.Category, t.Description, t.Notes,
		t.TransactionDate, t.LastUpdatedAt, t.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction %s: %w", t.TransactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM transactions WHERE transaction_id = $1;`, transactionID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxTransactionRepository) DeleteTransactionsByPaymentID(ctx context.Context, paymentID string) error {
	_, err := r.Pool.Exec(ctx, `DELETE FROM transactions WHERE payment_id = $1;`, paymentID)
	if err != nil {
		return fmt.Errorf("failed to delete transactions for payment %s: %w", paymentID, err)
	}
	return nil
}

func (r *PgxTransactionRepository) DeleteTransactionsByWinnerID(ctx context.Context, winnerID string) error {
	_, err := r.Pool.Exec(ctx, `DELETE FROM transactions WHERE winner_id = $1;`, winnerID)
	if err != nil {
		return fmt.Errorf("failed to delete transactions for winner %s: %w", winnerID, err)
	}
	return nil
}

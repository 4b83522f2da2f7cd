package repositories

import (
	"context"
	"time"

	"github.com/ronaldocristover/arisan-backend/internal/core/domain"
)

// TransactionReader defines read operations for journal data
type TransactionReader interface {
	// FindTransactionByID retrieves a specific transaction by its unique identifier.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// FindTransactionByWinnerID retrieves the transaction linked to a winner, if any.
	FindTransactionByWinnerID(ctx context.Context, winnerID string) (*domain.Transaction, error)

	// ListTransactions retrieves a filtered page of transactions plus the
	// unpaged total, ordered by transaction date descending.
	ListTransactions(ctx context.Context, filter TransactionFilter) ([]domain.Transaction, int64, error)

	// Summarize aggregates income, expense and count over an optional date range.
	Summarize(ctx context.Context, startDate, endDate *time.Time) (domain.Summary, error)
}

// TransactionWriter defines write operations for journal data
type TransactionWriter interface {
	// SaveTransaction persists a new transaction.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// UpdateTransaction persists changes to an existing transaction.
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error

	// DeleteTransaction removes a transaction.
	DeleteTransaction(ctx context.Context, transactionID string) error

	// DeleteTransactionsByPaymentID removes every transaction linked to a payment.
	DeleteTransactionsByPaymentID(ctx context.Context, paymentID string) error

	// DeleteTransactionsByWinnerID removes every transaction linked to a winner.
	DeleteTransactionsByWinnerID(ctx context.Context, winnerID string) error
}

// TransactionRepositoryFacade combines all journal repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}

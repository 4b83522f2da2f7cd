package services

import (
	"context"

	"github.com/ronaldocristover/arisan-backend/internal/core/domain"
	"github.com/ronaldocristover/arisan-backend/internal/dto"
)

// TransactionReaderSvc defines read operations for the journal
type TransactionReaderSvc interface {
	// GetTransactionByID retrieves a specific transaction by its ID.
	GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves a paginated, filtered journal listing.
	ListTransactions(ctx context.Context, params dto.ListTransactionsParams) ([]domain.Transaction, int64, error)

	// GetSummary aggregates income, expense and balance over an optional range.
	GetSummary(ctx context.Context, params dto.ListTransactionsParams) (domain.Summary, error)
}

// TransactionWriterSvc defines write operations for the journal
type TransactionWriterSvc interface {
	// CreateTransaction records a manual journal entry.
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, creatorUserID string) (*domain.Transaction, error)

	// UpdateTransaction edits a manual journal entry.
	UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest, requestingUserID string) (*domain.Transaction, error)

	// DeleteTransaction removes a journal entry.
	DeleteTransaction(ctx context.Context, transactionID string) error
}

// TransactionSvcFacade combines all journal service interfaces
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}

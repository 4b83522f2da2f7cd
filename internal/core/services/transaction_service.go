package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ronaldocristover/arisan-backend/internal/apperrors"
	"github.com/ronaldocristover/arisan-backend/internal/core/domain"
	portsrepo "github.com/ronaldocristover/arisan-backend/internal/core/ports/repositories"
	portssvc "github.com/ronaldocristover/arisan-backend/internal/core/ports/services"
	"github.com/ronaldocristover/arisan-backend/internal/dto"
	"github.com/ronaldocristover/arisan-backend/internal/middleware"
)

// transactionService manages manual journal entries and the summary view.
type transactionService struct {
	txnRepo portsrepo.TransactionRepositoryFacade
}

// NewTransactionService creates a new journal service.
func NewTransactionService(txnRepo portsrepo.TransactionRepositoryFacade) portssvc.TransactionSvcFacade {
	return &transactionService{txnRepo: txnRepo}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

func (s *transactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, creatorUserID string) (*domain.Transaction, error) {
	amount := *req.Amount
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	if req.PaymentID != nil && req.WinnerID != nil {
		return nil, fmt.Errorf("%w: a transaction may link to a payment or a winner, not both", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	txnDate := now
	if req.TransactionDate != nil {
		txnDate = *req.TransactionDate
	}

	txn := domain.Transaction{
		TransactionID:   uuid.NewString(),
		Type:            domain.TransactionType(req.Type),
		Amount:          amount,
		Category:        req.Category,
		Description:     req.Description,
		Notes:           req.Notes,
		TransactionDate: txnDate,
		PaymentID:       req.PaymentID,
		WinnerID:        req.WinnerID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	middleware.GetLoggerFromCtx(ctx).Info("Transaction created",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("type", string(txn.Type)),
	)
	return &txn, nil
}

func (s *transactionService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction %s: %w", transactionID, err)
	}
	return txn, nil
}

func (s *transactionService) ListTransactions(ctx context.Context, params dto.ListTransactionsParams) ([]domain.Transaction, int64, error) {
	filter := portsrepo.TransactionFilter{
		PageFilter: portsrepo.PageFilter{Page: params.Page, Limit: params.Limit},
		Type:       domain.TransactionType(params.Type),
		Category:   params.Category,
		StartDate:  params.StartDate,
		EndDate:    params.EndDate,
		Search:     params.Search,
	}

	txns, total, err := s.txnRepo.ListTransactions(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list transactions: %w", err)
	}
	if txns == nil {
		txns = []domain.Transaction{}
	}
	return txns, total, nil
}

func (s *transactionService) GetSummary(ctx context.Context, params dto.ListTransactionsParams) (domain.Summary, error) {
	summary, err := s.txnRepo.Summarize(ctx, params.StartDate, params.EndDate)
	if err != nil {
		return domain.Summary{}, fmt.Errorf("failed to summarize transactions: %w", err)
	}
	summary.Balance = summary.TotalIncome.Sub(summary.TotalExpense)
	return summary, nil
}

func (s *transactionService) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest, requestingUserID string) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to find transaction %s for update: %w", transactionID, err)
	}

	if req.Type != nil {
		txn.Type = domain.TransactionType(*req.Type)
	}
	if req.Amount != nil {
		if req.Amount.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
		}
		txn.Amount = *req.Amount
	}
	if req.Category != nil {
		txn.Category = *req.Category
	}
	if req.Description != nil {
		txn.Description = *req.Description
	}
	if req.Notes != nil {
		txn.Notes = req.Notes
	}
	if req.TransactionDate != nil {
		txn.TransactionDate = *req.TransactionDate
	}
	if req.PaymentID != nil {
		txn.PaymentID = req.PaymentID
	}
	if req.WinnerID != nil {
		txn.WinnerID = req.WinnerID
	}
	if txn.PaymentID != nil && txn.WinnerID != nil {
		return nil, fmt.Errorf("%w: a transaction may link to a payment or a winner, not both", apperrors.ErrValidation)
	}

	txn.LastUpdatedAt = time.Now().UTC()
	txn.LastUpdatedBy = requestingUserID

	if err := s.txnRepo.UpdateTransaction(ctx, *txn); err != nil {
		return nil, fmt.Errorf("failed to update transaction %s: %w", transactionID, err)
	}

	return txn, nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, transactionID string) error {
	if _, err := s.txnRepo.FindTransactionByID(ctx, transactionID); err != nil {
		return fmt.Errorf("failed to find transaction %s for deletion: %w", transactionID, err)
	}

	if err := s.txnRepo.DeleteTransaction(ctx, transactionID); err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}

	middleware.GetLoggerFromCtx(ctx).Info("Transaction deleted", slog.String("transaction_id", transactionID))
	return nil
}

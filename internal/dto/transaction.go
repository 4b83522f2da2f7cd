package dto

import (
	"time"

	"github.com/ronaldocristover/arisan-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the payload for a manual journal entry.
type CreateTransactionRequest struct {
	Type            string           `json:"type" binding:"required,oneof=income expense"`
	Amount          *decimal.Decimal `json:"amount" binding:"required"`
	Category        string           `json:"category" binding:"required"`
	Description     string           `json:"description" binding:"required"`
	Notes           *string          `json:"notes"`
	TransactionDate *time.Time       `json:"transactionDate"`
	PaymentID       *string          `json:"paymentId"`
	WinnerID        *string          `json:"winnerId"`
}

// UpdateTransactionRequest defines the payload for editing a journal entry.
// Nil fields are left untouched.
type UpdateTransactionRequest struct {
	Type            *string          `json:"type" binding:"omitempty,oneof=income expense"`
	Amount          *decimal.Decimal `json:"amount"`
	Category        *string          `json:"category"`
	Description     *string          `json:"description"`
	Notes           *string          `json:"notes"`
	TransactionDate *time.Time       `json:"transactionDate"`
	PaymentID       *string          `json:"paymentId"`
	WinnerID        *string          `json:"winnerId"`
}

// ListTransactionsParams carries journal list filters.
type ListTransactionsParams struct {
	Page      int
	Limit     int
	Type      string
	Category  string
	StartDate *time.Time
	EndDate   *time.Time
	Search    string
}

// TransactionResponse defines the data returned for a journal entry.
type TransactionResponse struct {
	TransactionID   string          `json:"transactionID"`
	Type            string          `json:"type"`
	Amount          decimal.Decimal `json:"amount"`
	Category        string          `json:"category"`
	Description     string          `json:"description"`
	Notes           *string         `json:"notes,omitempty"`
	TransactionDate time.Time       `json:"transactionDate"`
	PaymentID       *string         `json:"paymentID,omitempty"`
	WinnerID        *string         `json:"winnerID,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// SummaryResponse aggregates the journal over an optional date range.
type SummaryResponse struct {
	TotalIncome      decimal.Decimal `json:"totalIncome"`
	TotalExpense     decimal.Decimal `json:"totalExpense"`
	Balance          decimal.Decimal `json:"balance"`
	TransactionCount int             `json:"transactionCount"`
}

// ListTransactionsResponse is the paginated journal listing.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Pagination   Pagination            `json:"pagination"`
}

// ToTransactionResponse converts a domain Transaction to TransactionResponse.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:   t.TransactionID,
		Type:            string(t.Type),
		Amount:          t.Amount,
		Category:        t.Category,
		Description:     t.Description,
		Notes:           t.Notes,
		TransactionDate: t.TransactionDate,
		PaymentID:       t.PaymentID,
		WinnerID:        t.WinnerID,
		CreatedAt:       t.CreatedAt,
	}
}

// ToTransactionResponses converts a slice of domain Transactions to responses.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, len(txns))
	for i := range txns {
		out[i] = ToTransactionResponse(&txns[i])
	}
	return out
}

// ToSummaryResponse converts a domain Summary to SummaryResponse.
func ToSummaryResponse(s domain.Summary) SummaryResponse {
	return SummaryResponse{
		TotalIncome:      s.TotalIncome,
		TotalExpense:     s.TotalExpense,
		Balance:          s.Balance,
		TransactionCount: s.TransactionCount,
	}
}

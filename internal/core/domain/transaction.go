package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates whether a journal row adds to or drains the group's cash.
type TransactionType string

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// ValidTransactionType reports whether the given type is income or expense.
func ValidTransactionType(t TransactionType) bool {
	return t == Income || t == Expense
}

// Categories used by the automatic ledger synchronization.
const (
	CategoryPayment = "payment"
	CategoryWinner  = "winner"
)

// Transaction is a journal row. Rows at category "payment" and "winner" are
// derived from payment and winner state changes; other rows are manual entries.
// A transaction links to at most one of {Payment, Winner}, never both.
type Transaction struct {
	TransactionID   string          `json:"transactionID"`
	Type            TransactionType `json:"type"`
	Amount          decimal.Decimal `json:"amount"`
	Category        string          `json:"category"`
	Description     string          `json:"description"`
	Notes           *string         `json:"notes,omitempty"`
	TransactionDate time.Time       `json:"transactionDate"`
	PaymentID       *string         `json:"paymentID,omitempty"`
	WinnerID        *string         `json:"winnerID,omitempty"`
	AuditFields
}

// Summary aggregates the journal over an optional date range.
type Summary struct {
	TotalIncome      decimal.Decimal `json:"totalIncome"`
	TotalExpense     decimal.Decimal `json:"totalExpense"`
	Balance          decimal.Decimal `json:"balance"`
	TransactionCount int             `json:"transactionCount"`
}

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType mirrors the transaction type column.
type TransactionType string

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// Transaction maps the transactions table. A CHECK constraint keeps at most
// one of payment_id / winner_id set.
type Transaction struct {
	TransactionID   string          `db:"transaction_id"`
	Type            TransactionType `db:"type"`
	Amount          decimal.Decimal `db:"amount"`
	Category        string          `db:"category"`
	Description     string          `db:"description"`
	Notes           *string         `db:"notes"`
	TransactionDate time.Time       `db:"transaction_date"`
	PaymentID       *string         `db:"payment_id"`
	WinnerID        *string         `db:"winner_id"`
	AuditFields
}

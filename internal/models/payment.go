package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus mirrors the payment status column.
type PaymentStatus string

const (
	PaymentUnpaid PaymentStatus = "unpaid"
	PaymentPaid   PaymentStatus = "paid"
)

// Payment maps the payments table. (member_id, period_id) is unique.
type Payment struct {
	PaymentID     string          `db:"payment_id"`
	MemberID      string          `db:"member_id"`
	PeriodID      string          `db:"period_id"`
	Amount        decimal.Decimal `db:"amount"`
	Status        PaymentStatus   `db:"status"`
	PaymentDate   *time.Time      `db:"payment_date"`
	PaymentMethod *string         `db:"payment_method"`
	Attachment    *string         `db:"attachment"`
	Notes         *string         `db:"notes"`
	AuditFields
}

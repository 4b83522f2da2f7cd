package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus indicates whether the obligation has been settled.
type PaymentStatus string

const (
	PaymentUnpaid PaymentStatus = "unpaid"
	PaymentPaid   PaymentStatus = "paid"
)

// PaymentMethod is how a settled payment was made.
type PaymentMethod string

const (
	MethodCash     PaymentMethod = "cash"
	MethodTransfer PaymentMethod = "transfer"
)

// ValidPaymentMethod reports whether the given method is one of the accepted values.
func ValidPaymentMethod(m PaymentMethod) bool {
	return m == MethodCash || m == MethodTransfer
}

// Payment is the per-member-per-period obligation record. Exactly one payment
// exists per (member, period) pair; the amount is frozen at enrollment time.
type Payment struct {
	PaymentID     string          `json:"paymentID"`
	MemberID      string          `json:"memberID"`
	PeriodID      string          `json:"periodID"`
	Amount        decimal.Decimal `json:"amount"`
	Status        PaymentStatus   `json:"status"`
	PaymentDate   *time.Time      `json:"paymentDate,omitempty"`
	PaymentMethod *PaymentMethod  `json:"paymentMethod,omitempty"`
	Attachment    *string         `json:"attachment,omitempty"`
	Notes         *string         `json:"notes,omitempty"`
	AuditFields
}

// IsPaid reports whether the obligation has been settled.
func (p *Payment) IsPaid() bool {
	return p.Status == PaymentPaid
}

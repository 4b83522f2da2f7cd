package dto

import (
	"time"

	"github.com/ronaldocristover/arisan-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UpdatePaymentRequest defines the payload for recording or correcting a
// payment. Nil fields are left untouched.
type UpdatePaymentRequest struct {
	Status        *string    `json:"status" binding:"omitempty,oneof=paid unpaid"`
	PaymentDate   *time.Time `json:"paymentDate"`
	PaymentMethod *string    `json:"paymentMethod"`
	Attachment    *string    `json:"attachment"`
	Notes         *string    `json:"notes"`
}

// BulkUpdatePaymentsRequest applies the same field updates to many payments.
type BulkUpdatePaymentsRequest struct {
	PaymentIDs    []string   `json:"paymentIds" binding:"required,min=1"`
	Status        *string    `json:"status" binding:"omitempty,oneof=paid unpaid"`
	PaymentDate   *time.Time `json:"paymentDate"`
	PaymentMethod *string    `json:"paymentMethod"`
}

// ListPaymentsParams carries payment list filters.
type ListPaymentsParams struct {
	Page          int
	Limit         int
	MemberID      string
	PeriodID      string
	Status        string
	PaymentMethod string
	StartDate     *time.Time
	EndDate       *time.Time
	Search        string
}

// PaymentResponse defines the data returned for a payment.
type PaymentResponse struct {
	PaymentID     string          `json:"paymentID"`
	MemberID      string          `json:"memberID"`
	PeriodID      string          `json:"periodID"`
	Amount        decimal.Decimal `json:"amount"`
	Status        string          `json:"status"`
	PaymentDate   *time.Time      `json:"paymentDate,omitempty"`
	PaymentMethod *string         `json:"paymentMethod,omitempty"`
	Attachment    *string         `json:"attachment,omitempty"`
	Notes         *string         `json:"notes,omitempty"`
	Member        *MemberSummary  `json:"member,omitempty"`
	Period        *PeriodSummary  `json:"period,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// BulkUpdatePaymentsResponse reports how many payments were touched.
type BulkUpdatePaymentsResponse struct {
	Count int `json:"count"`
}

// ListPaymentsResponse is the paginated payment listing.
type ListPaymentsResponse struct {
	Payments   []PaymentResponse `json:"payments"`
	Pagination Pagination        `json:"pagination"`
}

// ToPaymentResponse converts a domain Payment to PaymentResponse.
func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	var method *string
	if p.PaymentMethod != nil {
		s := string(*p.PaymentMethod)
		method = &s
	}
	return PaymentResponse{
		PaymentID:     p.PaymentID,
		MemberID:      p.MemberID,
		PeriodID:      p.PeriodID,
		Amount:        p.Amount,
		Status:        string(p.Status),
		PaymentDate:   p.PaymentDate,
		PaymentMethod: method,
		Attachment:    p.Attachment,
		Notes:         p.Notes,
		CreatedAt:     p.CreatedAt,
	}
}

package services

import (
	"context"

	"github.com/ronaldocristover/arisan-backend/internal/core/domain"
	"github.com/ronaldocristover/arisan-backend/internal/dto"
)

// PaymentReaderSvc defines read operations for payment data
type PaymentReaderSvc interface {
	// GetPaymentByID retrieves a specific payment by its ID.
	GetPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error)

	// ListPayments retrieves a paginated, filtered payment listing.
	ListPayments(ctx context.Context, params dto.ListPaymentsParams) ([]domain.Payment, int64, error)
}

// PaymentWriterSvc defines write operations for payment data
type PaymentWriterSvc interface {
	// UpdatePayment records or corrects a single payment and keeps the journal
	// in sync with the resulting status.
	UpdatePayment(ctx context.Context, paymentID string, req dto.UpdatePaymentRequest, requestingUserID string) (*domain.Payment, error)

	// BulkUpdatePayments applies the same update to many payments, syncing the
	// journal per payment.
	BulkUpdatePayments(ctx context.Context, req dto.BulkUpdatePaymentsRequest, requestingUserID string) (int, error)
}

// PaymentSvcFacade combines all payment service interfaces
type PaymentSvcFacade interface {
	PaymentReaderSvc
	PaymentWriterSvc
}

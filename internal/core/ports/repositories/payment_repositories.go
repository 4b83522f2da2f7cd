package repositories

import (
	"context"

	"github.com/ronaldocristover/arisan-backend/internal/core/domain"
)

// PaymentReader defines read operations for payment data
type PaymentReader interface {
	// FindPaymentByID retrieves a specific payment by its unique identifier.
	FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error)

	// FindPaymentByMemberAndPeriod retrieves the payment for the unique
	// (member, period) pair.
	FindPaymentByMemberAndPeriod(ctx context.Context, memberID, periodID string) (*domain.Payment, error)

	// FindPaymentsByPeriod retrieves every payment enrolled in a period.
	FindPaymentsByPeriod(ctx context.Context, periodID string) ([]domain.Payment, error)

	// FindPaymentsByIDs retrieves the given payments in no particular order.
	FindPaymentsByIDs(ctx context.Context, paymentIDs []string) ([]domain.Payment, error)

	// ListPayments retrieves a filtered page of payments plus the unpaged total.
	ListPayments(ctx context.Context, filter PaymentFilter) ([]domain.Payment, int64, error)

	// ListRecentPaidPayments retrieves the most recently settled payments.
	ListRecentPaidPayments(ctx context.Context, limit int) ([]domain.Payment, error)
}

// PaymentStatusCount holds per-period paid/unpaid tallies.
type PaymentStatusCount struct {
	Paid   int64
	Unpaid int64
}

// PaymentCounter defines aggregate reads over payment data
type PaymentCounter interface {
	// CountPaymentsByPeriod tallies paid and unpaid payments for the given
	// periods, keyed by period ID. Periods without payments are absent.
	CountPaymentsByPeriod(ctx context.Context, periodIDs []string) (map[string]PaymentStatusCount, error)
}

// PaymentWriter defines write operations for payment data
type PaymentWriter interface {
	// SavePayments batch-inserts new payments. The unique (member_id, period_id)
	// constraint maps violations to ErrDuplicate.
	SavePayments(ctx context.Context, payments []domain.Payment) error

	// UpdatePayment persists changes to an existing payment.
	UpdatePayment(ctx context.Context, payment domain.Payment) error

	// UpdatePayments persists changes to several payments in one transaction.
	UpdatePayments(ctx context.Context, payments []domain.Payment) error
}

// PaymentRepositoryFacade combines all payment repository interfaces
type PaymentRepositoryFacade interface {
	PaymentReader
	PaymentCounter
	PaymentWriter
}

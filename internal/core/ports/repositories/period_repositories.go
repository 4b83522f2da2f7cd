package repositories

import (
	"context"

	"github.com/ronaldocristover/arisan-backend/internal/core/domain"
)

// PeriodReader defines read operations for period data
type PeriodReader interface {
	// FindPeriodByID retrieves a specific period by its unique identifier.
	FindPeriodByID(ctx context.Context, periodID string) (*domain.Period, error)

	// FindPeriodByMonthYear retrieves the period for the given (month, year) pair.
	FindPeriodByMonthYear(ctx context.Context, month, year int) (*domain.Period, error)

	// FindCurrentPeriod retrieves the period flagged is_current, if any.
	FindCurrentPeriod(ctx context.Context) (*domain.Period, error)

	// ListPeriods retrieves a filtered page of periods plus the unpaged total,
	// ordered year desc, month desc.
	ListPeriods(ctx context.Context, filter PeriodFilter) ([]domain.Period, int64, error)
}

// PeriodWriter defines write operations for period data
type PeriodWriter interface {
	// SavePeriodWithPayments persists a new current period and its enrollment
	// payments in one database transaction, clearing is_current on every other
	// period first. The partial unique index on is_current backs the
	// single-current invariant against concurrent writers.
	SavePeriodWithPayments(ctx context.Context, period domain.Period, payments []domain.Payment) error

	// UpdatePeriod persists changes to an existing period. When makeCurrent is
	// true the is_current flag is cleared on all other periods inside the same
	// transaction before the update.
	UpdatePeriod(ctx context.Context, period domain.Period, makeCurrent bool) error
}

// PeriodRepositoryFacade combines all period repository interfaces
type PeriodRepositoryFacade interface {
	PeriodReader
	PeriodWriter
}

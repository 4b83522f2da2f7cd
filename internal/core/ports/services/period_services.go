package services

import (
	"context"

	"github.com/ronaldocristover/arisan-backend/internal/core/domain"
	"github.com/ronaldocristover/arisan-backend/internal/dto"
)

// PeriodReaderSvc defines read operations for arisan periods
type PeriodReaderSvc interface {
	// GetPeriodByID retrieves a specific period, including its payment stats.
	GetPeriodByID(ctx context.Context, periodID string) (*domain.Period, *dto.PeriodStats, error)

	// GetCurrentPeriod retrieves the currently active period, if any.
	GetCurrentPeriod(ctx context.Context) (*domain.Period, *dto.PeriodStats, error)

	// ListPeriods retrieves a paginated period listing, newest first.
	ListPeriods(ctx context.Context, params dto.ListPeriodsParams) ([]domain.Period, int64, error)
}

// PeriodWriterSvc defines write operations for arisan periods
type PeriodWriterSvc interface {
	// CreatePeriod opens a new period and enrolls every active member with an
	// unpaid payment row. The new period becomes current.
	CreatePeriod(ctx context.Context, req dto.CreatePeriodRequest, creatorUserID string) (*domain.Period, error)

	// AddMembersToPeriod enrolls extra members into an open period, skipping
	// any member already enrolled.
	AddMembersToPeriod(ctx context.Context, periodID string, req dto.AddMembersToPeriodRequest, requestingUserID string) (int, *domain.Period, error)

	// UpdatePeriod edits an open period's amounts or current flag.
	UpdatePeriod(ctx context.Context, periodID string, req dto.UpdatePeriodRequest, requestingUserID string) (*domain.Period, error)

	// ClosePeriod marks a period closed and stamps its end date.
	ClosePeriod(ctx context.Context, periodID string, requestingUserID string) (*domain.Period, error)
}

// PeriodSvcFacade combines all period service interfaces
type PeriodSvcFacade interface {
	PeriodReaderSvc
	PeriodWriterSvc
}

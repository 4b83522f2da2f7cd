package repositories

import (
	"context"

	"github.com/ronaldocristover/arisan-backend/internal/core/domain"
)

// WinnerReader defines read operations for winner data
type WinnerReader interface {
	// FindWinnerByID retrieves a specific winner by its unique identifier.
	FindWinnerByID(ctx context.Context, winnerID string) (*domain.Winner, error)

	// FindWinnerByPeriod retrieves the winner of a period, if one was drawn.
	FindWinnerByPeriod(ctx context.Context, periodID string) (*domain.Winner, error)

	// ListWinnerMemberIDs retrieves the distinct IDs of every member who has
	// ever won, across all periods.
	ListWinnerMemberIDs(ctx context.Context) ([]string, error)

	// ListWinners retrieves a filtered page of winners plus the unpaged total,
	// ordered by draw date descending.
	ListWinners(ctx context.Context, filter WinnerFilter) ([]domain.Winner, int64, error)
}

// WinnerWriter defines write operations for winner data
type WinnerWriter interface {
	// SaveWinner persists a new winner. The unique period_id constraint maps
	// violations to ErrDuplicate.
	SaveWinner(ctx context.Context, winner domain.Winner) error

	// UpdateWinner persists changes to an existing winner.
	UpdateWinner(ctx context.Context, winner domain.Winner) error

	// DeleteWinner removes a winner row. Linked transactions must be deleted
	// first; the service owns that ordering.
	DeleteWinner(ctx context.Context, winnerID string) error
}

// WinnerRepositoryFacade combines all winner repository interfaces
type WinnerRepositoryFacade interface {
	WinnerReader
	WinnerWriter
}

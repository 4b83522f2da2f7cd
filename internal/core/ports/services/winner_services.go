package services

import (
	"context"

	"github.com/ronaldocristover/arisan-backend/internal/core/domain"
	"github.com/ronaldocristover/arisan-backend/internal/dto"
)

// WinnerReaderSvc defines read operations for winner data
type WinnerReaderSvc interface {
	// GetWinnerByID retrieves a specific winner by its ID.
	GetWinnerByID(ctx context.Context, winnerID string) (*domain.Winner, error)

	// ListWinners retrieves a paginated, filtered winner listing.
	ListWinners(ctx context.Context, params dto.ListWinnersParams) ([]domain.Winner, int64, error)
}

// WinnerWriterSvc defines write operations for winner data
type WinnerWriterSvc interface {
	// SelectWinner draws a winner for a period, either the requested member or
	// a uniform random pick over the eligible pool.
	SelectWinner(ctx context.Context, req dto.SelectWinnerRequest, requestingUserID string) (*domain.Winner, error)

	// MarkMoneyGiven stamps prize distribution and syncs the single linked
	// expense transaction.
	MarkMoneyGiven(ctx context.Context, winnerID string, req dto.MarkMoneyGivenRequest, requestingUserID string) (*domain.Winner, error)

	// DeleteWinner undoes a draw, removing linked journal rows first.
	DeleteWinner(ctx context.Context, winnerID string) error
}

// WinnerSvcFacade combines all winner service interfaces
type WinnerSvcFacade interface {
	WinnerReaderSvc
	WinnerWriterSvc
}

package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ronaldocristover/arisan-backend/internal/apperrors"
	"github.com/ronaldocristover/arisan-backend/internal/core/domain"
	portsrepo "github.com/ronaldocristover/arisan-backend/internal/core/ports/repositories"
	portssvc "github.com/ronaldocristover/arisan-backend/internal/core/ports/services"
	"github.com/ronaldocristover/arisan-backend/internal/dto"
	"github.com/ronaldocristover/arisan-backend/internal/middleware"
)

// winnerService draws period winners and tracks prize distribution.
type winnerService struct {
	winnerRepo  portsrepo.WinnerRepositoryFacade
	periodRepo  portsrepo.PeriodRepositoryFacade
	paymentRepo portsrepo.PaymentRepositoryFacade
	memberRepo  portsrepo.MemberRepositoryFacade
	txnRepo     portsrepo.TransactionRepositoryFacade
}

// NewWinnerService creates a new winner service.
func NewWinnerService(
	winnerRepo portsrepo.WinnerRepositoryFacade,
	periodRepo portsrepo.PeriodRepositoryFacade,
	paymentRepo portsrepo.PaymentRepositoryFacade,
	memberRepo portsrepo.MemberRepositoryFacade,
	txnRepo portsrepo.TransactionRepositoryFacade,
) portssvc.WinnerSvcFacade {
	return &winnerService{
		winnerRepo:  winnerRepo,
		periodRepo:  periodRepo,
		paymentRepo: paymentRepo,
		memberRepo:  memberRepo,
		txnRepo:     txnRepo,
	}
}

var _ portssvc.WinnerSvcFacade = (*winnerService)(nil)

func (s *winnerService) GetWinnerByID(ctx context.Context, winnerID string) (*domain.Winner, error) {
	winner, err := s.winnerRepo.FindWinnerByID(ctx, winnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get winner %s: %w", winnerID, err)
	}
	return winner, nil
}

func (s *winnerService) ListWinners(ctx context.Context, params dto.ListWinnersParams) ([]domain.Winner, int64, error) {
	filter := portsrepo.WinnerFilter{
		PageFilter: portsrepo.PageFilter{Page: params.Page, Limit: params.Limit},
		PeriodID:   params.PeriodID,
		MemberID:   params.MemberID,
		Search:     params.Search,
	}

	winners, total, err := s.winnerRepo.ListWinners(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list winners: %w", err)
	}
	if winners == nil {
		winners = []domain.Winner{}
	}
	return winners, total, nil
}

func (s *winnerService) SelectWinner(ctx context.Context, req dto.SelectWinnerRequest, requestingUserID string) (*domain.Winner, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	period, err := s.periodRepo.FindPeriodByID(ctx, req.PeriodID)
	if err != nil {
		return nil, fmt.Errorf("failed to find period %s for draw: %w", req.PeriodID, err)
	}

	existing, err := s.winnerRepo.FindWinnerByPeriod(ctx, req.PeriodID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check for existing winner: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: period %s already has a winner", apperrors.ErrDuplicate, period.Label())
	}

	payments, err := s.paymentRepo.FindPaymentsByPeriod(ctx, req.PeriodID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments of period %s: %w", req.PeriodID, err)
	}

	pastWinners, err := s.winnerRepo.ListWinnerMemberIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list past winners: %w", err)
	}
	everWon := make(map[string]bool, len(pastWinners))
	for _, id := range pastWinners {
		everWon[id] = true
	}

	// Random pool: settled this period and never won any period. The prize is
	// the full theoretical pot regardless of collection progress.
	pot := decimal.Zero
	paid := make(map[string]bool, len(payments))
	eligible := make([]string, 0, len(payments))
	for _, p := range payments {
		pot = pot.Add(p.Amount)
		if p.IsPaid() {
			paid[p.MemberID] = true
			if !everWon[p.MemberID] {
				eligible = append(eligible, p.MemberID)
			}
		}
	}

	var winnerMemberID string
	if req.MemberID != nil {
		// A manual pick only needs a settled payment; past wins do not
		// disqualify it.
		if !paid[*req.MemberID] {
			return nil, fmt.Errorf("%w: member %s has no paid payment in this period", apperrors.ErrValidation, *req.MemberID)
		}
		winnerMemberID = *req.MemberID
	} else {
		if len(eligible) == 0 {
			return nil, apperrors.ErrNoEligibleMembers
		}
		winnerMemberID = eligible[rand.Intn(len(eligible))]
	}

	now := time.Now().UTC()
	winner := domain.Winner{
		WinnerID: uuid.NewString(),
		MemberID: winnerMemberID,
		PeriodID: req.PeriodID,
		Amount:   pot,
		DrawDate: now,
		Notes:    req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     requestingUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: requestingUserID,
		},
	}

	if err := s.winnerRepo.SaveWinner(ctx, winner); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: period %s already has a winner", apperrors.ErrDuplicate, period.Label())
		}
		return nil, fmt.Errorf("failed to save winner: %w", err)
	}

	logger.Info("Winner drawn",
		slog.String("winner_id", winner.WinnerID),
		slog.String("member_id", winnerMemberID),
		slog.String("period_id", req.PeriodID),
		slog.Int("eligible_pool", len(eligible)),
	)
	return &winner, nil
}

func (s *winnerService) MarkMoneyGiven(ctx context.Context, winnerID string, req dto.MarkMoneyGivenRequest, requestingUserID string) (*domain.Winner, error) {
	winner, err := s.winnerRepo.FindWinnerByID(ctx, winnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to find winner %s: %w", winnerID, err)
	}

	now := time.Now().UTC()
	winner.MarkMoneyGiven(now, requestingUserID)
	if req.Notes != nil {
		winner.Notes = req.Notes
	}

	if err := s.winnerRepo.UpdateWinner(ctx, *winner); err != nil {
		return nil, fmt.Errorf("failed to update winner %s: %w", winnerID, err)
	}

	s.syncExpense(ctx, winner, requestingUserID)

	return winner, nil
}

// syncExpense creates or refreshes the single expense transaction linked to a
// winner. Errors are logged and swallowed.
func (s *winnerService) syncExpense(ctx context.Context, winner *domain.Winner, byUserID string) {
	logger := middleware.GetLoggerFromCtx(ctx)

	description, err := s.expenseDescription(ctx, winner)
	if err != nil {
		logger.Warn("Failed to build expense description for winner",
			slog.String("winner_id", winner.WinnerID),
			slog.String("error", err.Error()),
		)
		return
	}

	now := time.Now().UTC()
	txnDate := now
	if winner.MoneyGivenDate != nil {
		txnDate = *winner.MoneyGivenDate
	}

	existing, err := s.txnRepo.FindTransactionByWinnerID(ctx, winner.WinnerID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		logger.Warn("Failed to look up expense transaction for winner",
			slog.String("winner_id", winner.WinnerID),
			slog.String("error", err.Error()),
		)
		return
	}

	if existing != nil {
		existing.Amount = winner.Amount
		existing.Description = description
		existing.TransactionDate = txnDate
		existing.LastUpdatedAt = now
		existing.LastUpdatedBy = byUserID
		err = s.txnRepo.UpdateTransaction(ctx, *existing)
	} else {
		winnerRef := winner.WinnerID
		err = s.txnRepo.SaveTransaction(ctx, domain.Transaction{
			TransactionID:   uuid.NewString(),
			Type:            domain.Expense,
			Amount:          winner.Amount,
			Category:        domain.CategoryWinner,
			Description:     description,
			TransactionDate: txnDate,
			WinnerID:        &winnerRef,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     byUserID,
				LastUpdatedAt: now,
				LastUpdatedBy: byUserID,
			},
		})
	}
	if err != nil {
		logger.Warn("Failed to sync expense transaction for winner",
			slog.String("winner_id", winner.WinnerID),
			slog.String("error", err.Error()),
		)
	}
}

func (s *winnerService) expenseDescription(ctx context.Context, winner *domain.Winner) (string, error) {
	member, err := s.memberRepo.FindMemberByID(ctx, winner.MemberID)
	if err != nil {
		return "", fmt.Errorf("failed to resolve member: %w", err)
	}
	period, err := s.periodRepo.FindPeriodByID(ctx, winner.PeriodID)
	if err != nil {
		return "", fmt.Errorf("failed to resolve period: %w", err)
	}
	return fmt.Sprintf("Prize money given to %s - Period %s", member.FullName, period.Label()), nil
}

func (s *winnerService) DeleteWinner(ctx context.Context, winnerID string) error {
	if _, err := s.winnerRepo.FindWinnerByID(ctx, winnerID); err != nil {
		return fmt.Errorf("failed to find winner %s for deletion: %w", winnerID, err)
	}

	// Linked journal rows go first so the winner row never dangles.
	if err := s.txnRepo.DeleteTransactionsByWinnerID(ctx, winnerID); err != nil {
		return fmt.Errorf("failed to delete transactions of winner %s: %w", winnerID, err)
	}
	if err := s.winnerRepo.DeleteWinner(ctx, winnerID); err != nil {
		return fmt.Errorf("failed to delete winner %s: %w", winnerID, err)
	}

	middleware.GetLoggerFromCtx(ctx).Info("Winner deleted", slog.String("winner_id", winnerID))
	return nil
}

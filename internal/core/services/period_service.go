package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
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

// periodService manages the monthly collection cycle: opening periods,
// enrolling members and closing the books.
type periodService struct {
	periodRepo  portsrepo.PeriodRepositoryFacade
	memberRepo  portsrepo.MemberRepositoryFacade
	paymentRepo portsrepo.PaymentRepositoryFacade
}

// NewPeriodService creates a new period service.
func NewPeriodService(
	periodRepo portsrepo.PeriodRepositoryFacade,
	memberRepo portsrepo.MemberRepositoryFacade,
	paymentRepo portsrepo.PaymentRepositoryFacade,
) portssvc.PeriodSvcFacade {
	return &periodService{
		periodRepo:  periodRepo,
		memberRepo:  memberRepo,
		paymentRepo: paymentRepo,
	}
}

var _ portssvc.PeriodSvcFacade = (*periodService)(nil)

// newEnrollment builds the unpaid payment row freezing the period's amount
// for one member.
func newEnrollment(period *domain.Period, memberID string, now time.Time, byUserID string) domain.Payment {
	return domain.Payment{
		PaymentID: uuid.NewString(),
		MemberID:  memberID,
		PeriodID:  period.PeriodID,
		Amount:    period.AmountPerMember(),
		Status:    domain.PaymentUnpaid,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     byUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: byUserID,
		},
	}
}

func (s *periodService) CreatePeriod(ctx context.Context, req dto.CreatePeriodRequest, creatorUserID string) (*domain.Period, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	principal := *req.Principal
	fee := *req.Fee
	if principal.IsNegative() || fee.IsNegative() {
		return nil, fmt.Errorf("%w: principal and fee must not be negative", apperrors.ErrValidation)
	}

	// (month, year) is unique across all periods, open or closed.
	existing, err := s.periodRepo.FindPeriodByMonthYear(ctx, req.Month, req.Year)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check for existing period: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: period %d/%d already exists", apperrors.ErrDuplicate, req.Month, req.Year)
	}

	now := time.Now().UTC()
	startDate := now
	if req.StartDate != nil {
		startDate = *req.StartDate
	}

	period := domain.Period{
		PeriodID:  uuid.NewString(),
		Month:     req.Month,
		Year:      req.Year,
		Principal: principal,
		Fee:       fee,
		Status:    domain.PeriodOpen,
		IsCurrent: true,
		StartDate: startDate,
		EndDate:   req.EndDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	activeMembers, err := s.memberRepo.ListActiveMembers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active members for enrollment: %w", err)
	}
	if len(activeMembers) == 0 {
		return nil, fmt.Errorf("%w: no active members to enroll", apperrors.ErrValidation)
	}

	payments := make([]domain.Payment, 0, len(activeMembers))
	for _, m := range activeMembers {
		payments = append(payments, newEnrollment(&period, m.MemberID, now, creatorUserID))
	}

	if err := s.periodRepo.SavePeriodWithPayments(ctx, period, payments); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: period %d/%d already exists", apperrors.ErrDuplicate, req.Month, req.Year)
		}
		return nil, fmt.Errorf("failed to create period: %w", err)
	}

	logger.Info("Period created",
		slog.String("period_id", period.PeriodID),
		slog.String("label", period.Label()),
		slog.Int("enrolled_members", len(payments)),
	)
	return &period, nil
}

func (s *periodService) AddMembersToPeriod(ctx context.Context, periodID string, req dto.AddMembersToPeriodRequest, requestingUserID string) (int, *domain.Period, error) {
	period, err := s.periodRepo.FindPeriodByID(ctx, periodID)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to find period %s: %w", periodID, err)
	}
	if !period.IsOpen() {
		return 0, nil, fmt.Errorf("%w: cannot enroll members into a closed period", apperrors.ErrConflict)
	}

	members, err := s.memberRepo.FindMembersByIDs(ctx, req.MemberIDs)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to resolve members for enrollment: %w", err)
	}
	for _, id := range req.MemberIDs {
		m, ok := members[id]
		if !ok {
			return 0, nil, fmt.Errorf("%w: member %s not found", apperrors.ErrValidation, id)
		}
		if !m.IsActive() {
			return 0, nil, fmt.Errorf("%w: member %s is not active", apperrors.ErrValidation, id)
		}
	}

	existingPayments, err := s.paymentRepo.FindPaymentsByPeriod(ctx, periodID)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to list enrollments of period %s: %w", periodID, err)
	}
	enrolled := make(map[string]bool, len(existingPayments))
	for _, p := range existingPayments {
		enrolled[p.MemberID] = true
	}

	now := time.Now().UTC()
	newPayments := make([]domain.Payment, 0, len(req.MemberIDs))
	seen := make(map[string]bool, len(req.MemberIDs))
	for _, id := range req.MemberIDs {
		// Already enrolled or repeated in the request: skip silently.
		if enrolled[id] || seen[id] {
			continue
		}
		seen[id] = true
		newPayments = append(newPayments, newEnrollment(period, id, now, requestingUserID))
	}

	if len(newPayments) == 0 {
		return 0, nil, fmt.Errorf("%w: all requested members are already enrolled in this period", apperrors.ErrValidation)
	}
	if err := s.paymentRepo.SavePayments(ctx, newPayments); err != nil {
		return 0, nil, fmt.Errorf("failed to enroll members into period %s: %w", periodID, err)
	}

	middleware.GetLoggerFromCtx(ctx).Info("Members enrolled into period",
		slog.String("period_id", periodID),
		slog.Int("added", len(newPayments)),
		slog.Int("requested", len(req.MemberIDs)),
	)
	return len(newPayments), period, nil
}

func (s *periodService) GetPeriodByID(ctx context.Context, periodID string) (*domain.Period, *dto.PeriodStats, error) {
	period, err := s.periodRepo.FindPeriodByID(ctx, periodID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get period %s: %w", periodID, err)
	}

	stats, err := s.buildStats(ctx, period)
	if err != nil {
		return nil, nil, err
	}
	return period, stats, nil
}

func (s *periodService) GetCurrentPeriod(ctx context.Context) (*domain.Period, *dto.PeriodStats, error) {
	period, err := s.periodRepo.FindCurrentPeriod(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get current period: %w", err)
	}

	stats, err := s.buildStats(ctx, period)
	if err != nil {
		return nil, nil, err
	}
	return period, stats, nil
}

func (s *periodService) buildStats(ctx context.Context, period *domain.Period) (*dto.PeriodStats, error) {
	counts, err := s.paymentRepo.CountPaymentsByPeriod(ctx, []string{period.PeriodID})
	if err != nil {
		return nil, fmt.Errorf("failed to count payments of period %s: %w", period.PeriodID, err)
	}

	c := counts[period.PeriodID]
	total := c.Paid + c.Unpaid
	perMember := period.AmountPerMember()

	stats := &dto.PeriodStats{
		PaidCount:         c.Paid,
		UnpaidCount:       c.Unpaid,
		TotalMembers:      total,
		TotalCollected:    perMember.Mul(decimal.NewFromInt(c.Paid)),
		OutstandingAmount: perMember.Mul(decimal.NewFromInt(c.Unpaid)),
	}
	if total > 0 {
		stats.CollectionPercentage = float64(c.Paid) / float64(total) * 100
	}
	return stats, nil
}

func (s *periodService) ListPeriods(ctx context.Context, params dto.ListPeriodsParams) ([]domain.Period, int64, error) {
	filter := portsrepo.PeriodFilter{
		PageFilter: portsrepo.PageFilter{Page: params.Page, Limit: params.Limit},
		Year:       params.Year,
		Status:     domain.PeriodStatus(params.Status),
		Search:     params.Search,
	}

	periods, total, err := s.periodRepo.ListPeriods(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list periods: %w", err)
	}
	if periods == nil {
		periods = []domain.Period{}
	}
	return periods, total, nil
}

func (s *periodService) UpdatePeriod(ctx context.Context, periodID string, req dto.UpdatePeriodRequest, requestingUserID string) (*domain.Period, error) {
	period, err := s.periodRepo.FindPeriodByID(ctx, periodID)
	if err != nil {
		return nil, fmt.Errorf("failed to find period %s for update: %w", periodID, err)
	}

	now := time.Now().UTC()

	if req.Month != nil {
		period.Month = *req.Month
	}
	if req.Year != nil {
		period.Year = *req.Year
	}
	if req.Principal != nil {
		if req.Principal.IsNegative() {
			return nil, fmt.Errorf("%w: principal must not be negative", apperrors.ErrValidation)
		}
		period.Principal = *req.Principal
	}
	if req.Fee != nil {
		if req.Fee.IsNegative() {
			return nil, fmt.Errorf("%w: fee must not be negative", apperrors.ErrValidation)
		}
		period.Fee = *req.Fee
	}
	if req.StartDate != nil {
		period.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		period.EndDate = req.EndDate
	}
	if req.Status != nil && domain.PeriodStatus(*req.Status) == domain.PeriodClosed && period.IsOpen() {
		period.Close(now, requestingUserID)
	}

	makeCurrent := false
	if req.IsCurrent != nil {
		makeCurrent = *req.IsCurrent && !period.IsCurrent
		period.IsCurrent = *req.IsCurrent
	}

	period.LastUpdatedAt = now
	period.LastUpdatedBy = requestingUserID

	if err := s.periodRepo.UpdatePeriod(ctx, *period, makeCurrent); err != nil {
		return nil, fmt.Errorf("failed to update period %s: %w", periodID, err)
	}

	return period, nil
}

func (s *periodService) ClosePeriod(ctx context.Context, periodID string, requestingUserID string) (*domain.Period, error) {
	period, err := s.periodRepo.FindPeriodByID(ctx, periodID)
	if err != nil {
		return nil, fmt.Errorf("failed to find period %s for closing: %w", periodID, err)
	}

	// Closing an already closed period just re-stamps the end date.
	period.Close(time.Now().UTC(), requestingUserID)

	if err := s.periodRepo.UpdatePeriod(ctx, *period, false); err != nil {
		return nil, fmt.Errorf("failed to close period %s: %w", periodID, err)
	}

	middleware.GetLoggerFromCtx(ctx).Info("Period closed",
		slog.String("period_id", periodID),
		slog.String("label", period.Label()),
	)
	return period, nil
}

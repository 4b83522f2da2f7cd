package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ronaldocristover/arisan-backend/internal/apperrors"
	"github.com/ronaldocristover/arisan-backend/internal/core/domain"
	portsrepo "github.com/ronaldocristover/arisan-backend/internal/core/ports/repositories"
	portssvc "github.com/ronaldocristover/arisan-backend/internal/core/ports/services"
	"github.com/ronaldocristover/arisan-backend/internal/dto"
)

const recentPaymentsLimit = 5

// reportingService aggregates the dashboard view. Read-only.
type reportingService struct {
	memberRepo  portsrepo.MemberRepositoryFacade
	periodRepo  portsrepo.PeriodRepositoryFacade
	paymentRepo portsrepo.PaymentRepositoryFacade
	txnRepo     portsrepo.TransactionRepositoryFacade
}

// NewReportingService creates a new reporting service.
func NewReportingService(
	memberRepo portsrepo.MemberRepositoryFacade,
	periodRepo portsrepo.PeriodRepositoryFacade,
	paymentRepo portsrepo.PaymentRepositoryFacade,
	txnRepo portsrepo.TransactionRepositoryFacade,
) portssvc.ReportingSvcFacade {
	return &reportingService{
		memberRepo:  memberRepo,
		periodRepo:  periodRepo,
		paymentRepo: paymentRepo,
		txnRepo:     txnRepo,
	}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

func (s *reportingService) GetDashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	activeCount, err := s.memberRepo.CountActiveMembers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count active members: %w", err)
	}

	summary, err := s.txnRepo.Summarize(ctx, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize journal: %w", err)
	}
	summary.Balance = summary.TotalIncome.Sub(summary.TotalExpense)

	resp := &dto.DashboardResponse{
		TotalActiveMembers: activeCount,
		UnpaidMembers:      []dto.UnpaidMember{},
		RecentPayments:     []dto.PaymentResponse{},
		Summary:            dto.ToSummaryResponse(summary),
	}

	// No current period is a normal state, not an error: the dashboard just
	// renders without the collection block.
	period, err := s.periodRepo.FindCurrentPeriod(ctx)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to get current period: %w", err)
	}
	if period != nil {
		stats, unpaid, err := s.currentPeriodStats(ctx, period, summary.Balance)
		if err != nil {
			return nil, err
		}
		resp.CurrentPeriod = stats
		resp.UnpaidMembers = unpaid
	}

	recent, err := s.paymentRepo.ListRecentPaidPayments(ctx, recentPaymentsLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent payments: %w", err)
	}
	for i := range recent {
		resp.RecentPayments = append(resp.RecentPayments, dto.ToPaymentResponse(&recent[i]))
	}

	return resp, nil
}

func (s *reportingService) currentPeriodStats(ctx context.Context, period *domain.Period, fundAvailable decimal.Decimal) (*dto.CurrentPeriodStats, []dto.UnpaidMember, error) {
	payments, err := s.paymentRepo.FindPaymentsByPeriod(ctx, period.PeriodID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list payments of current period: %w", err)
	}

	collected := decimal.Zero
	expected := decimal.Zero
	paidCount := 0
	unpaidPayments := make([]domain.Payment, 0, len(payments))
	for _, p := range payments {
		expected = expected.Add(p.Amount)
		if p.IsPaid() {
			collected = collected.Add(p.Amount)
			paidCount++
		} else {
			unpaidPayments = append(unpaidPayments, p)
		}
	}

	stats := &dto.CurrentPeriodStats{
		Period:             dto.ToPeriodResponse(period),
		PaidCount:          paidCount,
		UnpaidCount:        len(unpaidPayments),
		TotalMembers:       len(payments),
		TotalCollected:     collected,
		TotalExpected:      expected,
		OutstandingCount:   len(unpaidPayments),
		TotalFundAvailable: fundAvailable,
	}
	if len(payments) > 0 {
		stats.CollectionRate = float64(paidCount) / float64(len(payments)) * 100
	}

	unpaid, err := s.unpaidMembers(ctx, unpaidPayments)
	if err != nil {
		return nil, nil, err
	}
	return stats, unpaid, nil
}

func (s *reportingService) unpaidMembers(ctx context.Context, payments []domain.Payment) ([]dto.UnpaidMember, error) {
	if len(payments) == 0 {
		return []dto.UnpaidMember{}, nil
	}

	memberIDs := make([]string, 0, len(payments))
	for _, p := range payments {
		memberIDs = append(memberIDs, p.MemberID)
	}

	members, err := s.memberRepo.FindMembersByIDs(ctx, memberIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve unpaid members: %w", err)
	}

	out := make([]dto.UnpaidMember, 0, len(payments))
	for _, p := range payments {
		m, ok := members[p.MemberID]
		if !ok {
			continue
		}
		out = append(out, dto.UnpaidMember{
			MemberID:       m.MemberID,
			MemberName:     m.FullName,
			Nickname:       m.Nickname,
			Group:          m.Group,
			WhatsappNumber: m.WhatsappNumber,
			PaymentID:      p.PaymentID,
			Amount:         p.Amount,
		})
	}
	return out, nil
}

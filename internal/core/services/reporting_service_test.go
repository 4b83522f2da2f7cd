package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/ronaldocristover/arisan-backend/internal/apperrors"
	"github.com/ronaldocristover/arisan-backend/internal/core/domain"
	portssvc "github.com/ronaldocristover/arisan-backend/internal/core/ports/services"
	"github.com/ronaldocristover/arisan-backend/internal/core/services"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	mockMemberRepo  *MockMemberRepository
	mockPeriodRepo  *MockPeriodRepository
	mockPaymentRepo *MockPaymentRepository
	mockTxnRepo     *MockTransactionRepository
	service         portssvc.ReportingSvcFacade
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockMemberRepo = new(MockMemberRepository)
	suite.mockPeriodRepo = new(MockPeriodRepository)
	suite.mockPaymentRepo = new(MockPaymentRepository)
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.service = services.NewReportingService(
		suite.mockMemberRepo,
		suite.mockPeriodRepo,
		suite.mockPaymentRepo,
		suite.mockTxnRepo,
	)
}

func (suite *ReportingServiceTestSuite) TestGetDashboard_WithCurrentPeriod() {
	ctx := context.Background()
	periodID := uuid.NewString()
	period := &domain.Period{
		PeriodID:  periodID,
		Month:     3,
		Year:      2025,
		Status:    domain.PeriodOpen,
		IsCurrent: true,
	}

	paidAt := time.Now().UTC()
	payments := []domain.Payment{
		{PaymentID: "p1", MemberID: "m1", PeriodID: periodID, Amount: decimal.NewFromInt(105000), Status: domain.PaymentPaid, PaymentDate: &paidAt},
		{PaymentID: "p2", MemberID: "m2", PeriodID: periodID, Amount: decimal.NewFromInt(105000), Status: domain.PaymentUnpaid},
	}

	suite.mockMemberRepo.On("CountActiveMembers", ctx).Return(int64(2), nil).Once()
	suite.mockTxnRepo.On("Summarize", ctx, (*time.Time)(nil), (*time.Time)(nil)).Return(domain.Summary{
		TotalIncome:      decimal.NewFromInt(105000),
		TotalExpense:     decimal.Zero,
		TransactionCount: 1,
	}, nil).Once()
	suite.mockPeriodRepo.On("FindCurrentPeriod", ctx).Return(period, nil).Once()
	suite.mockPaymentRepo.On("FindPaymentsByPeriod", ctx, periodID).Return(payments, nil).Once()
	suite.mockMemberRepo.On("FindMembersByIDs", ctx, []string{"m2"}).Return(map[string]domain.Member{
		"m2": {MemberID: "m2", FullName: "Siti Aminah", Nickname: "Siti"},
	}, nil).Once()
	suite.mockPaymentRepo.On("ListRecentPaidPayments", ctx, 5).Return([]domain.Payment{payments[0]}, nil).Once()

	dash, err := suite.service.GetDashboard(ctx)

	suite.Require().NoError(err)
	suite.Equal(int64(2), dash.TotalActiveMembers)
	suite.Require().NotNil(dash.CurrentPeriod)
	suite.Equal(1, dash.CurrentPeriod.PaidCount)
	suite.Equal(1, dash.CurrentPeriod.UnpaidCount)
	suite.InDelta(50.0, dash.CurrentPeriod.CollectionRate, 0.01)
	suite.True(dash.CurrentPeriod.TotalCollected.Equal(decimal.NewFromInt(105000)))
	suite.True(dash.CurrentPeriod.TotalExpected.Equal(decimal.NewFromInt(210000)))
	suite.Require().Len(dash.UnpaidMembers, 1)
	suite.Equal("Siti Aminah", dash.UnpaidMembers[0].MemberName)
	suite.Len(dash.RecentPayments, 1)
	suite.True(dash.Summary.Balance.Equal(decimal.NewFromInt(105000)))
}

func (suite *ReportingServiceTestSuite) TestGetDashboard_NoCurrentPeriod() {
	ctx := context.Background()

	suite.mockMemberRepo.On("CountActiveMembers", ctx).Return(int64(0), nil).Once()
	suite.mockTxnRepo.On("Summarize", ctx, (*time.Time)(nil), (*time.Time)(nil)).Return(domain.Summary{
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
	}, nil).Once()
	suite.mockPeriodRepo.On("FindCurrentPeriod", ctx).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockPaymentRepo.On("ListRecentPaidPayments", ctx, 5).Return([]domain.Payment{}, nil).Once()

	dash, err := suite.service.GetDashboard(ctx)

	suite.Require().NoError(err)
	suite.Nil(dash.CurrentPeriod)
	suite.Empty(dash.UnpaidMembers)
	suite.Empty(dash.RecentPayments)
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}

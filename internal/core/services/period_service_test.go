package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/ronaldocristover/arisan-backend/internal/apperrors"
	"github.com/ronaldocristover/arisan-backend/internal/core/domain"
	portsrepo "github.com/ronaldocristover/arisan-backend/internal/core/ports/repositories"
	portssvc "github.com/ronaldocristover/arisan-backend/internal/core/ports/services"
	"github.com/ronaldocristover/arisan-backend/internal/core/services"
	"github.com/ronaldocristover/arisan-backend/internal/dto"
)

type PeriodServiceTestSuite struct {
	suite.Suite
	mockPeriodRepo  *MockPeriodRepository
	mockMemberRepo  *MockMemberRepository
	mockPaymentRepo *MockPaymentRepository
	service         portssvc.PeriodSvcFacade
}

func (suite *PeriodServiceTestSuite) SetupTest() {
	suite.mockPeriodRepo = new(MockPeriodRepository)
	suite.mockMemberRepo = new(MockMemberRepository)
	suite.mockPaymentRepo = new(MockPaymentRepository)
	suite.service = services.NewPeriodService(suite.mockPeriodRepo, suite.mockMemberRepo, suite.mockPaymentRepo)
}

func decPtr(i int64) *decimal.Decimal {
	d := decimal.NewFromInt(i)
	return &d
}

func activeMember(id string) domain.Member {
	return domain.Member{MemberID: id, FullName: "Member " + id, Nickname: id, Status: domain.MemberActive}
}

func (suite *PeriodServiceTestSuite) TestCreatePeriod_EnrollsActiveMembers() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	req := dto.CreatePeriodRequest{
		Month:     3,
		Year:      2025,
		Principal: decPtr(100000),
		Fee:       decPtr(5000),
	}

	members := []domain.Member{activeMember("m1"), activeMember("m2"), activeMember("m3")}

	suite.mockPeriodRepo.On("FindPeriodByMonthYear", ctx, 3, 2025).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockMemberRepo.On("ListActiveMembers", ctx).Return(members, nil).Once()
	suite.mockPeriodRepo.On("SavePeriodWithPayments", ctx, mock.MatchedBy(func(p domain.Period) bool {
		return p.Month == 3 && p.Year == 2025 && p.IsCurrent && p.Status == domain.PeriodOpen
	}), mock.MatchedBy(func(payments []domain.Payment) bool {
		if len(payments) != 3 {
			return false
		}
		for _, p := range payments {
			if p.Status != domain.PaymentUnpaid || !p.Amount.Equal(decimal.NewFromInt(105000)) {
				return false
			}
		}
		return true
	})).Return(nil).Once()

	period, err := suite.service.CreatePeriod(ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(period)
	suite.True(period.IsCurrent)
	suite.Equal(domain.PeriodOpen, period.Status)
	suite.True(period.AmountPerMember().Equal(decimal.NewFromInt(105000)))
	suite.Equal(creatorUserID, period.CreatedBy)

	suite.mockPeriodRepo.AssertExpectations(suite.T())
	suite.mockMemberRepo.AssertExpectations(suite.T())
}

func (suite *PeriodServiceTestSuite) TestCreatePeriod_ZeroFeeAllowed() {
	ctx := context.Background()
	req := dto.CreatePeriodRequest{
		Month:     4,
		Year:      2025,
		Principal: decPtr(100000),
		Fee:       decPtr(0),
	}

	suite.mockPeriodRepo.On("FindPeriodByMonthYear", ctx, 4, 2025).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockMemberRepo.On("ListActiveMembers", ctx).Return([]domain.Member{activeMember("m1")}, nil).Once()
	suite.mockPeriodRepo.On("SavePeriodWithPayments", ctx, mock.AnythingOfType("domain.Period"), mock.AnythingOfType("[]domain.Payment")).Return(nil).Once()

	period, err := suite.service.CreatePeriod(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.True(period.Fee.IsZero())
	suite.mockPeriodRepo.AssertExpectations(suite.T())
}

func (suite *PeriodServiceTestSuite) TestCreatePeriod_NoActiveMembers() {
	ctx := context.Background()
	req := dto.CreatePeriodRequest{
		Month:     4,
		Year:      2025,
		Principal: decPtr(100000),
		Fee:       decPtr(5000),
	}

	suite.mockPeriodRepo.On("FindPeriodByMonthYear", ctx, 4, 2025).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockMemberRepo.On("ListActiveMembers", ctx).Return([]domain.Member{}, nil).Once()

	period, err := suite.service.CreatePeriod(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(period)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockPeriodRepo.AssertNotCalled(suite.T(), "SavePeriodWithPayments")
}

func (suite *PeriodServiceTestSuite) TestCreatePeriod_NegativeFeeRejected() {
	ctx := context.Background()
	req := dto.CreatePeriodRequest{
		Month:     4,
		Year:      2025,
		Principal: decPtr(100000),
		Fee:       decPtr(-1),
	}

	period, err := suite.service.CreatePeriod(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(period)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockPeriodRepo.AssertNotCalled(suite.T(), "SavePeriodWithPayments")
}

func (suite *PeriodServiceTestSuite) TestCreatePeriod_DuplicateMonthYear() {
	ctx := context.Background()
	existing := &domain.Period{PeriodID: uuid.NewString(), Month: 3, Year: 2025}
	req := dto.CreatePeriodRequest{
		Month:     3,
		Year:      2025,
		Principal: decPtr(100000),
		Fee:       decPtr(5000),
	}

	suite.mockPeriodRepo.On("FindPeriodByMonthYear", ctx, 3, 2025).Return(existing, nil).Once()

	period, err := suite.service.CreatePeriod(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(period)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockPeriodRepo.AssertNotCalled(suite.T(), "SavePeriodWithPayments")
}

func (suite *PeriodServiceTestSuite) TestAddMembersToPeriod_SkipsAlreadyEnrolled() {
	ctx := context.Background()
	periodID := uuid.NewString()
	period := &domain.Period{
		PeriodID:  periodID,
		Month:     3,
		Year:      2025,
		Principal: decimal.NewFromInt(100000),
		Fee:       decimal.NewFromInt(5000),
		Status:    domain.PeriodOpen,
	}

	suite.mockPeriodRepo.On("FindPeriodByID", ctx, periodID).Return(period, nil).Once()
	suite.mockMemberRepo.On("FindMembersByIDs", ctx, []string{"m1", "m2", "m2"}).Return(map[string]domain.Member{
		"m1": activeMember("m1"),
		"m2": activeMember("m2"),
	}, nil).Once()
	suite.mockPaymentRepo.On("FindPaymentsByPeriod", ctx, periodID).Return([]domain.Payment{
		{PaymentID: uuid.NewString(), MemberID: "m1", PeriodID: periodID, Status: domain.PaymentUnpaid},
	}, nil).Once()
	suite.mockPaymentRepo.On("SavePayments", ctx, mock.MatchedBy(func(payments []domain.Payment) bool {
		return len(payments) == 1 && payments[0].MemberID == "m2" &&
			payments[0].Amount.Equal(decimal.NewFromInt(105000))
	})).Return(nil).Once()

	count, _, err := suite.service.AddMembersToPeriod(ctx, periodID, dto.AddMembersToPeriodRequest{
		MemberIDs: []string{"m1", "m2", "m2"},
	}, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(1, count)
	suite.mockPaymentRepo.AssertExpectations(suite.T())
}

func (suite *PeriodServiceTestSuite) TestAddMembersToPeriod_ClosedPeriod() {
	ctx := context.Background()
	periodID := uuid.NewString()
	period := &domain.Period{PeriodID: periodID, Status: domain.PeriodClosed}

	suite.mockPeriodRepo.On("FindPeriodByID", ctx, periodID).Return(period, nil).Once()

	count, _, err := suite.service.AddMembersToPeriod(ctx, periodID, dto.AddMembersToPeriodRequest{
		MemberIDs: []string{"m1"},
	}, uuid.NewString())

	suite.Require().Error(err)
	suite.Zero(count)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockPaymentRepo.AssertNotCalled(suite.T(), "SavePayments")
}

func (suite *PeriodServiceTestSuite) TestAddMembersToPeriod_InactiveMember() {
	ctx := context.Background()
	periodID := uuid.NewString()
	period := &domain.Period{PeriodID: periodID, Status: domain.PeriodOpen}

	suite.mockPeriodRepo.On("FindPeriodByID", ctx, periodID).Return(period, nil).Once()
	suite.mockMemberRepo.On("FindMembersByIDs", ctx, []string{"m1"}).Return(map[string]domain.Member{
		"m1": {MemberID: "m1", FullName: "Member m1", Status: domain.MemberInactive},
	}, nil).Once()

	count, _, err := suite.service.AddMembersToPeriod(ctx, periodID, dto.AddMembersToPeriodRequest{
		MemberIDs: []string{"m1"},
	}, uuid.NewString())

	suite.Require().Error(err)
	suite.Zero(count)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockPaymentRepo.AssertNotCalled(suite.T(), "SavePayments")
}

func (suite *PeriodServiceTestSuite) TestAddMembersToPeriod_AllAlreadyEnrolled() {
	ctx := context.Background()
	periodID := uuid.NewString()
	period := &domain.Period{
		PeriodID:  periodID,
		Month:     3,
		Year:      2025,
		Principal: decimal.NewFromInt(100000),
		Fee:       decimal.NewFromInt(5000),
		Status:    domain.PeriodOpen,
	}

	suite.mockPeriodRepo.On("FindPeriodByID", ctx, periodID).Return(period, nil).Once()
	suite.mockMemberRepo.On("FindMembersByIDs", ctx, []string{"m1", "m2"}).Return(map[string]domain.Member{
		"m1": activeMember("m1"),
		"m2": activeMember("m2"),
	}, nil).Once()
	suite.mockPaymentRepo.On("FindPaymentsByPeriod", ctx, periodID).Return([]domain.Payment{
		{PaymentID: uuid.NewString(), MemberID: "m1", PeriodID: periodID, Status: domain.PaymentUnpaid},
		{PaymentID: uuid.NewString(), MemberID: "m2", PeriodID: periodID, Status: domain.PaymentPaid},
	}, nil).Once()

	count, _, err := suite.service.AddMembersToPeriod(ctx, periodID, dto.AddMembersToPeriodRequest{
		MemberIDs: []string{"m1", "m2"},
	}, uuid.NewString())

	suite.Require().Error(err)
	suite.Zero(count)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockPaymentRepo.AssertNotCalled(suite.T(), "SavePayments")
}

func (suite *PeriodServiceTestSuite) TestAddMembersToPeriod_UnknownMember() {
	ctx := context.Background()
	periodID := uuid.NewString()
	period := &domain.Period{PeriodID: periodID, Status: domain.PeriodOpen}

	suite.mockPeriodRepo.On("FindPeriodByID", ctx, periodID).Return(period, nil).Once()
	suite.mockMemberRepo.On("FindMembersByIDs", ctx, []string{"ghost"}).Return(map[string]domain.Member{}, nil).Once()

	count, _, err := suite.service.AddMembersToPeriod(ctx, periodID, dto.AddMembersToPeriodRequest{
		MemberIDs: []string{"ghost"},
	}, uuid.NewString())

	suite.Require().Error(err)
	suite.Zero(count)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *PeriodServiceTestSuite) TestClosePeriod_StampsEndDateAndClearsCurrent() {
	ctx := context.Background()
	periodID := uuid.NewString()
	period := &domain.Period{
		PeriodID:  periodID,
		Month:     3,
		Year:      2025,
		Status:    domain.PeriodOpen,
		IsCurrent: true,
	}

	suite.mockPeriodRepo.On("FindPeriodByID", ctx, periodID).Return(period, nil).Once()
	suite.mockPeriodRepo.On("UpdatePeriod", ctx, mock.MatchedBy(func(p domain.Period) bool {
		return p.Status == domain.PeriodClosed && !p.IsCurrent && p.EndDate != nil
	}), false).Return(nil).Once()

	closed, err := suite.service.ClosePeriod(ctx, periodID, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(domain.PeriodClosed, closed.Status)
	suite.False(closed.IsCurrent)
	suite.NotNil(closed.EndDate)
	suite.mockPeriodRepo.AssertExpectations(suite.T())
}

func (suite *PeriodServiceTestSuite) TestGetPeriodByID_ComputesStats() {
	ctx := context.Background()
	periodID := uuid.NewString()
	period := &domain.Period{
		PeriodID:  periodID,
		Month:     3,
		Year:      2025,
		Principal: decimal.NewFromInt(100000),
		Fee:       decimal.NewFromInt(5000),
		Status:    domain.PeriodOpen,
	}

	suite.mockPeriodRepo.On("FindPeriodByID", ctx, periodID).Return(period, nil).Once()
	suite.mockPaymentRepo.On("CountPaymentsByPeriod", ctx, []string{periodID}).Return(map[string]portsrepo.PaymentStatusCount{
		periodID: {Paid: 2, Unpaid: 1},
	}, nil).Once()

	_, stats, err := suite.service.GetPeriodByID(ctx, periodID)

	suite.Require().NoError(err)
	suite.Require().NotNil(stats)
	suite.Equal(int64(2), stats.PaidCount)
	suite.Equal(int64(1), stats.UnpaidCount)
	suite.Equal(int64(3), stats.TotalMembers)
	suite.True(stats.TotalCollected.Equal(decimal.NewFromInt(210000)))
	suite.True(stats.OutstandingAmount.Equal(decimal.NewFromInt(105000)))
	suite.InDelta(66.66, stats.CollectionPercentage, 0.1)
}

func (suite *PeriodServiceTestSuite) TestGetPeriodByID_NotFound() {
	ctx := context.Background()
	periodID := uuid.NewString()

	suite.mockPeriodRepo.On("FindPeriodByID", ctx, periodID).Return(nil, apperrors.ErrNotFound).Once()

	period, stats, err := suite.service.GetPeriodByID(ctx, periodID)

	suite.Require().Error(err)
	suite.Nil(period)
	suite.Nil(stats)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *PeriodServiceTestSuite) TestCreatePeriod_SaveError() {
	ctx := context.Background()
	req := dto.CreatePeriodRequest{
		Month:     5,
		Year:      2025,
		Principal: decPtr(100000),
		Fee:       decPtr(5000),
	}
	expectedErr := assert.AnError

	suite.mockPeriodRepo.On("FindPeriodByMonthYear", ctx, 5, 2025).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockMemberRepo.On("ListActiveMembers", ctx).Return([]domain.Member{activeMember("m1")}, nil).Once()
	suite.mockPeriodRepo.On("SavePeriodWithPayments", ctx, mock.AnythingOfType("domain.Period"), mock.AnythingOfType("[]domain.Payment")).Return(expectedErr).Once()

	period, err := suite.service.CreatePeriod(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(period)
	suite.ErrorIs(err, expectedErr)
}

func TestPeriodServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PeriodServiceTestSuite))
}

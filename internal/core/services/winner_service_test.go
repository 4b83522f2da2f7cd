package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/ronaldocristover/arisan-backend/internal/apperrors"
	"github.com/ronaldocristover/arisan-backend/internal/core/domain"
	portssvc "github.com/ronaldocristover/arisan-backend/internal/core/ports/services"
	"github.com/ronaldocristover/arisan-backend/internal/core/services"
	"github.com/ronaldocristover/arisan-backend/internal/dto"
)

type WinnerServiceTestSuite struct {
	suite.Suite
	mockWinnerRepo  *MockWinnerRepository
	mockPeriodRepo  *MockPeriodRepository
	mockPaymentRepo *MockPaymentRepository
	mockMemberRepo  *MockMemberRepository
	mockTxnRepo     *MockTransactionRepository
	service         portssvc.WinnerSvcFacade
}

func (suite *WinnerServiceTestSuite) SetupTest() {
	suite.mockWinnerRepo = new(MockWinnerRepository)
	suite.mockPeriodRepo = new(MockPeriodRepository)
	suite.mockPaymentRepo = new(MockPaymentRepository)
	suite.mockMemberRepo = new(MockMemberRepository)
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.service = services.NewWinnerService(
		suite.mockWinnerRepo,
		suite.mockPeriodRepo,
		suite.mockPaymentRepo,
		suite.mockMemberRepo,
		suite.mockTxnRepo,
	)
}

func paidPayment(memberID, periodID string, amount int64) domain.Payment {
	return domain.Payment{
		PaymentID: uuid.NewString(),
		MemberID:  memberID,
		PeriodID:  periodID,
		Amount:    decimal.NewFromInt(amount),
		Status:    domain.PaymentPaid,
	}
}

func (suite *WinnerServiceTestSuite) TestSelectWinner_DrawsFromEligiblePool() {
	ctx := context.Background()
	periodID := uuid.NewString()
	period := &domain.Period{PeriodID: periodID, Month: 3, Year: 2025, Status: domain.PeriodOpen}

	// m1 paid but already won before; m2 paid and never won; m3 unpaid.
	// Only m2 can be drawn, and the pot counts all three enrollments.
	payments := []domain.Payment{
		paidPayment("m1", periodID, 105000),
		paidPayment("m2", periodID, 105000),
		{PaymentID: uuid.NewString(), MemberID: "m3", PeriodID: periodID, Amount: decimal.NewFromInt(105000), Status: domain.PaymentUnpaid},
	}

	suite.mockPeriodRepo.On("FindPeriodByID", ctx, periodID).Return(period, nil).Once()
	suite.mockWinnerRepo.On("FindWinnerByPeriod", ctx, periodID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockPaymentRepo.On("FindPaymentsByPeriod", ctx, periodID).Return(payments, nil).Once()
	suite.mockWinnerRepo.On("ListWinnerMemberIDs", ctx).Return([]string{"m1"}, nil).Once()
	suite.mockWinnerRepo.On("SaveWinner", ctx, mock.MatchedBy(func(w domain.Winner) bool {
		return w.MemberID == "m2" && w.PeriodID == periodID &&
			w.Amount.Equal(decimal.NewFromInt(315000)) &&
			w.MoneyGivenDate == nil
	})).Return(nil).Once()

	winner, err := suite.service.SelectWinner(ctx, dto.SelectWinnerRequest{PeriodID: periodID}, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal("m2", winner.MemberID)
	suite.True(winner.Amount.Equal(decimal.NewFromInt(315000)))
	suite.Equal(domain.WinnerSelected, winner.State())
	suite.mockWinnerRepo.AssertExpectations(suite.T())
}

func (suite *WinnerServiceTestSuite) TestSelectWinner_PeriodAlreadyHasWinner() {
	ctx := context.Background()
	periodID := uuid.NewString()

	suite.mockPeriodRepo.On("FindPeriodByID", ctx, periodID).Return(&domain.Period{PeriodID: periodID, Month: 3, Year: 2025}, nil).Once()
	suite.mockWinnerRepo.On("FindWinnerByPeriod", ctx, periodID).Return(&domain.Winner{WinnerID: uuid.NewString(), PeriodID: periodID}, nil).Once()

	winner, err := suite.service.SelectWinner(ctx, dto.SelectWinnerRequest{PeriodID: periodID}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(winner)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockWinnerRepo.AssertNotCalled(suite.T(), "SaveWinner")
}

func (suite *WinnerServiceTestSuite) TestSelectWinner_NoEligibleMembers() {
	ctx := context.Background()
	periodID := uuid.NewString()

	suite.mockPeriodRepo.On("FindPeriodByID", ctx, periodID).Return(&domain.Period{PeriodID: periodID}, nil).Once()
	suite.mockWinnerRepo.On("FindWinnerByPeriod", ctx, periodID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockPaymentRepo.On("FindPaymentsByPeriod", ctx, periodID).Return([]domain.Payment{
		paidPayment("m1", periodID, 105000),
	}, nil).Once()
	suite.mockWinnerRepo.On("ListWinnerMemberIDs", ctx).Return([]string{"m1"}, nil).Once()

	winner, err := suite.service.SelectWinner(ctx, dto.SelectWinnerRequest{PeriodID: periodID}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(winner)
	suite.ErrorIs(err, apperrors.ErrNoEligibleMembers)
}

func (suite *WinnerServiceTestSuite) TestSelectWinner_ManualPickMustHavePaid() {
	ctx := context.Background()
	periodID := uuid.NewString()
	ineligible := "m3"

	suite.mockPeriodRepo.On("FindPeriodByID", ctx, periodID).Return(&domain.Period{PeriodID: periodID}, nil).Once()
	suite.mockWinnerRepo.On("FindWinnerByPeriod", ctx, periodID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockPaymentRepo.On("FindPaymentsByPeriod", ctx, periodID).Return([]domain.Payment{
		paidPayment("m1", periodID, 105000),
		{PaymentID: uuid.NewString(), MemberID: "m3", PeriodID: periodID, Amount: decimal.NewFromInt(105000), Status: domain.PaymentUnpaid},
	}, nil).Once()
	suite.mockWinnerRepo.On("ListWinnerMemberIDs", ctx).Return([]string{}, nil).Once()

	winner, err := suite.service.SelectWinner(ctx, dto.SelectWinnerRequest{
		PeriodID: periodID,
		MemberID: &ineligible,
	}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(winner)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *WinnerServiceTestSuite) TestSelectWinner_ManualPickAllowsPastWinner() {
	ctx := context.Background()
	periodID := uuid.NewString()
	pastWinner := "m1"

	// m1 won a previous period so the random pool excludes them, but a paid
	// member stays a valid explicit pick.
	suite.mockPeriodRepo.On("FindPeriodByID", ctx, periodID).Return(&domain.Period{PeriodID: periodID, Month: 4, Year: 2025}, nil).Once()
	suite.mockWinnerRepo.On("FindWinnerByPeriod", ctx, periodID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockPaymentRepo.On("FindPaymentsByPeriod", ctx, periodID).Return([]domain.Payment{
		paidPayment("m1", periodID, 105000),
		paidPayment("m2", periodID, 105000),
	}, nil).Once()
	suite.mockWinnerRepo.On("ListWinnerMemberIDs", ctx).Return([]string{"m1"}, nil).Once()
	suite.mockWinnerRepo.On("SaveWinner", ctx, mock.MatchedBy(func(w domain.Winner) bool {
		return w.MemberID == "m1" && w.PeriodID == periodID &&
			w.Amount.Equal(decimal.NewFromInt(210000))
	})).Return(nil).Once()

	winner, err := suite.service.SelectWinner(ctx, dto.SelectWinnerRequest{
		PeriodID: periodID,
		MemberID: &pastWinner,
	}, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal("m1", winner.MemberID)
	suite.mockWinnerRepo.AssertExpectations(suite.T())
}

func (suite *WinnerServiceTestSuite) TestMarkMoneyGiven_CreatesExpenseTransaction() {
	ctx := context.Background()
	winnerID := uuid.NewString()
	memberID := uuid.NewString()
	periodID := uuid.NewString()

	winner := &domain.Winner{
		WinnerID: winnerID,
		MemberID: memberID,
		PeriodID: periodID,
		Amount:   decimal.NewFromInt(315000),
		DrawDate: time.Now().UTC(),
	}

	suite.mockWinnerRepo.On("FindWinnerByID", ctx, winnerID).Return(winner, nil).Once()
	suite.mockWinnerRepo.On("UpdateWinner", ctx, mock.MatchedBy(func(w domain.Winner) bool {
		return w.MoneyGivenDate != nil
	})).Return(nil).Once()
	suite.mockMemberRepo.On("FindMemberByID", ctx, memberID).Return(&domain.Member{MemberID: memberID, FullName: "Siti Aminah"}, nil).Once()
	suite.mockPeriodRepo.On("FindPeriodByID", ctx, periodID).Return(&domain.Period{PeriodID: periodID, Month: 3, Year: 2025}, nil).Once()
	suite.mockTxnRepo.On("FindTransactionByWinnerID", ctx, winnerID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(t domain.Transaction) bool {
		return t.Type == domain.Expense &&
			t.Category == domain.CategoryWinner &&
			t.Amount.Equal(decimal.NewFromInt(315000)) &&
			t.WinnerID != nil && *t.WinnerID == winnerID &&
			t.Description == "Prize money given to Siti Aminah - Period 3/2025"
	})).Return(nil).Once()

	updated, err := suite.service.MarkMoneyGiven(ctx, winnerID, dto.MarkMoneyGivenRequest{}, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(domain.WinnerMoneyGiven, updated.State())
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *WinnerServiceTestSuite) TestMarkMoneyGiven_RefreshesExistingTransaction() {
	ctx := context.Background()
	winnerID := uuid.NewString()
	memberID := uuid.NewString()
	periodID := uuid.NewString()

	given := time.Now().UTC().Add(-time.Hour)
	winner := &domain.Winner{
		WinnerID:       winnerID,
		MemberID:       memberID,
		PeriodID:       periodID,
		Amount:         decimal.NewFromInt(315000),
		DrawDate:       time.Now().UTC().Add(-2 * time.Hour),
		MoneyGivenDate: &given,
	}
	existingTxn := &domain.Transaction{
		TransactionID: uuid.NewString(),
		Type:          domain.Expense,
		Category:      domain.CategoryWinner,
		Amount:        decimal.NewFromInt(300000),
		WinnerID:      &winnerID,
	}

	suite.mockWinnerRepo.On("FindWinnerByID", ctx, winnerID).Return(winner, nil).Once()
	suite.mockWinnerRepo.On("UpdateWinner", ctx, mock.AnythingOfType("domain.Winner")).Return(nil).Once()
	suite.mockMemberRepo.On("FindMemberByID", ctx, memberID).Return(&domain.Member{MemberID: memberID, FullName: "Siti Aminah"}, nil).Once()
	suite.mockPeriodRepo.On("FindPeriodByID", ctx, periodID).Return(&domain.Period{PeriodID: periodID, Month: 3, Year: 2025}, nil).Once()
	suite.mockTxnRepo.On("FindTransactionByWinnerID", ctx, winnerID).Return(existingTxn, nil).Once()
	suite.mockTxnRepo.On("UpdateTransaction", ctx, mock.MatchedBy(func(t domain.Transaction) bool {
		return t.TransactionID == existingTxn.TransactionID && t.Amount.Equal(decimal.NewFromInt(315000))
	})).Return(nil).Once()

	_, err := suite.service.MarkMoneyGiven(ctx, winnerID, dto.MarkMoneyGivenRequest{}, uuid.NewString())

	suite.Require().NoError(err)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction")
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *WinnerServiceTestSuite) TestDeleteWinner_RemovesTransactionsFirst() {
	ctx := context.Background()
	winnerID := uuid.NewString()

	suite.mockWinnerRepo.On("FindWinnerByID", ctx, winnerID).Return(&domain.Winner{WinnerID: winnerID}, nil).Once()
	suite.mockTxnRepo.On("DeleteTransactionsByWinnerID", ctx, winnerID).Return(nil).Once()
	suite.mockWinnerRepo.On("DeleteWinner", ctx, winnerID).Return(nil).Once()

	err := suite.service.DeleteWinner(ctx, winnerID)

	suite.Require().NoError(err)
	suite.mockTxnRepo.AssertExpectations(suite.T())
	suite.mockWinnerRepo.AssertExpectations(suite.T())
}

func (suite *WinnerServiceTestSuite) TestDeleteWinner_TransactionDeleteFailureAborts() {
	ctx := context.Background()
	winnerID := uuid.NewString()

	suite.mockWinnerRepo.On("FindWinnerByID", ctx, winnerID).Return(&domain.Winner{WinnerID: winnerID}, nil).Once()
	suite.mockTxnRepo.On("DeleteTransactionsByWinnerID", ctx, winnerID).Return(apperrors.ErrInternal).Once()

	err := suite.service.DeleteWinner(ctx, winnerID)

	suite.Require().Error(err)
	suite.mockWinnerRepo.AssertNotCalled(suite.T(), "DeleteWinner")
}

func TestWinnerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(WinnerServiceTestSuite))
}

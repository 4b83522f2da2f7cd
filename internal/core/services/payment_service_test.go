package services_test

import (
	"context"
	"log/slog"
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
	"github.com/ronaldocristover/arisan-backend/internal/platform/tasks"
)

// --- Mock ObjectStorage ---

type MockObjectStorage struct {
	mock.Mock
}

func (m *MockObjectStorage) Upload(ctx context.Context, in portssvc.UploadInput) (*portssvc.StoredObject, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portssvc.StoredObject), args.Error(1)
}

func (m *MockObjectStorage) Remove(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockObjectStorage) KeyFromURL(url string) string {
	args := m.Called(url)
	return args.String(0)
}

type PaymentServiceTestSuite struct {
	suite.Suite
	mockPaymentRepo *MockPaymentRepository
	mockPeriodRepo  *MockPeriodRepository
	mockMemberRepo  *MockMemberRepository
	mockTxnRepo     *MockTransactionRepository
	mockStorage     *MockObjectStorage
	runner          *tasks.Runner
	service         portssvc.PaymentSvcFacade
}

func (suite *PaymentServiceTestSuite) SetupTest() {
	suite.mockPaymentRepo = new(MockPaymentRepository)
	suite.mockPeriodRepo = new(MockPeriodRepository)
	suite.mockMemberRepo = new(MockMemberRepository)
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockStorage = new(MockObjectStorage)
	suite.runner = tasks.NewRunner(slog.Default(), time.Second, time.Millisecond)
	suite.service = services.NewPaymentService(
		suite.mockPaymentRepo,
		suite.mockPeriodRepo,
		suite.mockMemberRepo,
		suite.mockTxnRepo,
		suite.mockStorage,
		suite.runner,
	)
}

func strPtr(s string) *string { return &s }

func unpaidPayment(paymentID, memberID, periodID string) *domain.Payment {
	return &domain.Payment{
		PaymentID: paymentID,
		MemberID:  memberID,
		PeriodID:  periodID,
		Amount:    decimal.NewFromInt(105000),
		Status:    domain.PaymentUnpaid,
	}
}

func (suite *PaymentServiceTestSuite) TestUpdatePayment_MarkPaidCreatesIncomeTransaction() {
	ctx := context.Background()
	paymentID := uuid.NewString()
	memberID := uuid.NewString()
	periodID := uuid.NewString()

	payment := unpaidPayment(paymentID, memberID, periodID)

	suite.mockPaymentRepo.On("FindPaymentByID", ctx, paymentID).Return(payment, nil).Once()
	suite.mockPaymentRepo.On("UpdatePayment", ctx, mock.MatchedBy(func(p domain.Payment) bool {
		return p.Status == domain.PaymentPaid && p.PaymentDate != nil && p.PaymentMethod != nil && *p.PaymentMethod == domain.MethodCash
	})).Return(nil).Once()
	suite.mockMemberRepo.On("FindMemberByID", ctx, memberID).Return(&domain.Member{
		MemberID: memberID, FullName: "Budi Santoso",
	}, nil).Once()
	suite.mockPeriodRepo.On("FindPeriodByID", ctx, periodID).Return(&domain.Period{
		PeriodID: periodID, Month: 3, Year: 2025,
	}, nil).Once()
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(t domain.Transaction) bool {
		return t.Type == domain.Income &&
			t.Category == domain.CategoryPayment &&
			t.Amount.Equal(decimal.NewFromInt(105000)) &&
			t.PaymentID != nil && *t.PaymentID == paymentID &&
			t.Description == "Payment received from Budi Santoso - Period 3/2025"
	})).Return(nil).Once()

	updated, err := suite.service.UpdatePayment(ctx, paymentID, dto.UpdatePaymentRequest{
		Status:        strPtr("paid"),
		PaymentMethod: strPtr("cash"),
	}, uuid.NewString())

	suite.Require().NoError(err)
	suite.True(updated.IsPaid())
	suite.NotNil(updated.PaymentDate)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestUpdatePayment_RevertToUnpaidDeletesTransactions() {
	ctx := context.Background()
	paymentID := uuid.NewString()
	paidAt := time.Now().UTC()
	method := domain.MethodTransfer

	payment := &domain.Payment{
		PaymentID:     paymentID,
		MemberID:      uuid.NewString(),
		PeriodID:      uuid.NewString(),
		Amount:        decimal.NewFromInt(105000),
		Status:        domain.PaymentPaid,
		PaymentDate:   &paidAt,
		PaymentMethod: &method,
	}

	suite.mockPaymentRepo.On("FindPaymentByID", ctx, paymentID).Return(payment, nil).Once()
	suite.mockPaymentRepo.On("UpdatePayment", ctx, mock.MatchedBy(func(p domain.Payment) bool {
		return p.Status == domain.PaymentUnpaid && p.PaymentDate == nil && p.PaymentMethod == nil
	})).Return(nil).Once()
	suite.mockTxnRepo.On("DeleteTransactionsByPaymentID", ctx, paymentID).Return(nil).Once()

	updated, err := suite.service.UpdatePayment(ctx, paymentID, dto.UpdatePaymentRequest{
		Status: strPtr("unpaid"),
	}, uuid.NewString())

	suite.Require().NoError(err)
	suite.False(updated.IsPaid())
	suite.Nil(updated.PaymentDate)
	suite.Nil(updated.PaymentMethod)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestUpdatePayment_InvalidMethodRejected() {
	ctx := context.Background()
	paymentID := uuid.NewString()
	payment := unpaidPayment(paymentID, uuid.NewString(), uuid.NewString())

	suite.mockPaymentRepo.On("FindPaymentByID", ctx, paymentID).Return(payment, nil).Once()

	updated, err := suite.service.UpdatePayment(ctx, paymentID, dto.UpdatePaymentRequest{
		Status:        strPtr("paid"),
		PaymentMethod: strPtr("goat"),
	}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockPaymentRepo.AssertNotCalled(suite.T(), "UpdatePayment")
}

func (suite *PaymentServiceTestSuite) TestUpdatePayment_LedgerSyncFailureSwallowed() {
	ctx := context.Background()
	paymentID := uuid.NewString()
	memberID := uuid.NewString()
	periodID := uuid.NewString()
	payment := unpaidPayment(paymentID, memberID, periodID)

	suite.mockPaymentRepo.On("FindPaymentByID", ctx, paymentID).Return(payment, nil).Once()
	suite.mockPaymentRepo.On("UpdatePayment", ctx, mock.AnythingOfType("domain.Payment")).Return(nil).Once()
	suite.mockMemberRepo.On("FindMemberByID", ctx, memberID).Return(&domain.Member{MemberID: memberID, FullName: "X"}, nil).Once()
	suite.mockPeriodRepo.On("FindPeriodByID", ctx, periodID).Return(&domain.Period{PeriodID: periodID, Month: 1, Year: 2025}, nil).Once()
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction")).Return(apperrors.ErrInternal).Once()

	updated, err := suite.service.UpdatePayment(ctx, paymentID, dto.UpdatePaymentRequest{
		Status:        strPtr("paid"),
		PaymentMethod: strPtr("transfer"),
	}, uuid.NewString())

	// The payment write sticks even when the journal sync fails.
	suite.Require().NoError(err)
	suite.True(updated.IsPaid())
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestUpdatePayment_ReplacedAttachmentRemoved() {
	ctx := context.Background()
	paymentID := uuid.NewString()
	oldURL := "https://cdn.example.com/uploads/payments/2025-02/m1/old.jpg"

	payment := unpaidPayment(paymentID, uuid.NewString(), uuid.NewString())
	payment.Attachment = strPtr(oldURL)

	suite.mockPaymentRepo.On("FindPaymentByID", ctx, paymentID).Return(payment, nil).Once()
	suite.mockPaymentRepo.On("UpdatePayment", ctx, mock.AnythingOfType("domain.Payment")).Return(nil).Once()
	suite.mockStorage.On("KeyFromURL", oldURL).Return("payments/2025-02/m1/old.jpg").Once()
	suite.mockStorage.On("Remove", mock.Anything, "payments/2025-02/m1/old.jpg").Return(nil).Once()

	_, err := suite.service.UpdatePayment(ctx, paymentID, dto.UpdatePaymentRequest{
		Attachment: strPtr("https://cdn.example.com/uploads/payments/2025-03/m1/new.jpg"),
	}, uuid.NewString())

	suite.Require().NoError(err)
	suite.runner.Wait()
	suite.mockStorage.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestBulkUpdatePayments_Success() {
	ctx := context.Background()
	periodID := uuid.NewString()
	p1 := *unpaidPayment("p1", "m1", periodID)
	p2 := *unpaidPayment("p2", "m2", periodID)

	suite.mockPaymentRepo.On("FindPaymentsByIDs", ctx, []string{"p1", "p2"}).Return([]domain.Payment{p1, p2}, nil).Once()
	suite.mockPaymentRepo.On("UpdatePayments", ctx, mock.MatchedBy(func(payments []domain.Payment) bool {
		return len(payments) == 2 && payments[0].IsPaid() && payments[1].IsPaid()
	})).Return(nil).Once()
	suite.mockMemberRepo.On("FindMemberByID", ctx, "m1").Return(&domain.Member{MemberID: "m1", FullName: "A"}, nil).Once()
	suite.mockMemberRepo.On("FindMemberByID", ctx, "m2").Return(&domain.Member{MemberID: "m2", FullName: "B"}, nil).Once()
	suite.mockPeriodRepo.On("FindPeriodByID", ctx, periodID).Return(&domain.Period{PeriodID: periodID, Month: 3, Year: 2025}, nil).Twice()
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction")).Return(nil).Twice()

	count, err := suite.service.BulkUpdatePayments(ctx, dto.BulkUpdatePaymentsRequest{
		PaymentIDs:    []string{"p1", "p2"},
		Status:        strPtr("paid"),
		PaymentMethod: strPtr("cash"),
	}, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(2, count)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestBulkUpdatePayments_MissingPaymentRejected() {
	ctx := context.Background()

	suite.mockPaymentRepo.On("FindPaymentsByIDs", ctx, []string{"p1", "ghost"}).Return([]domain.Payment{
		*unpaidPayment("p1", "m1", uuid.NewString()),
	}, nil).Once()

	count, err := suite.service.BulkUpdatePayments(ctx, dto.BulkUpdatePaymentsRequest{
		PaymentIDs: []string{"p1", "ghost"},
		Status:     strPtr("paid"),
	}, uuid.NewString())

	suite.Require().Error(err)
	suite.Zero(count)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockPaymentRepo.AssertNotCalled(suite.T(), "UpdatePayments")
}

func TestPaymentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PaymentServiceTestSuite))
}

package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ronaldocristover/arisan-backend/internal/apperrors"
	"github.com/ronaldocristover/arisan-backend/internal/core/domain"
	portsrepo "github.com/ronaldocristover/arisan-backend/internal/core/ports/repositories"
	portssvc "github.com/ronaldocristover/arisan-backend/internal/core/ports/services"
	"github.com/ronaldocristover/arisan-backend/internal/dto"
	"github.com/ronaldocristover/arisan-backend/internal/middleware"
	"github.com/ronaldocristover/arisan-backend/internal/platform/tasks"
)

// paymentService records settlements and keeps the journal in sync with
// payment status. Journal sync failures are logged and swallowed: the payment
// write is the source of truth and must never be rolled back by a sync issue.
type paymentService struct {
	paymentRepo portsrepo.PaymentRepositoryFacade
	periodRepo  portsrepo.PeriodRepositoryFacade
	memberRepo  portsrepo.MemberRepositoryFacade
	txnRepo     portsrepo.TransactionRepositoryFacade
	storage     portssvc.ObjectStorageSvc
	runner      *tasks.Runner
}

// NewPaymentService creates a new payment service. Storage and runner may be
// nil in tests that never touch attachments.
func NewPaymentService(
	paymentRepo portsrepo.PaymentRepositoryFacade,
	periodRepo portsrepo.PeriodRepositoryFacade,
	memberRepo portsrepo.MemberRepositoryFacade,
	txnRepo portsrepo.TransactionRepositoryFacade,
	storage portssvc.ObjectStorageSvc,
	runner *tasks.Runner,
) portssvc.PaymentSvcFacade {
	return &paymentService{
		paymentRepo: paymentRepo,
		periodRepo:  periodRepo,
		memberRepo:  memberRepo,
		txnRepo:     txnRepo,
		storage:     storage,
		runner:      runner,
	}
}

var _ portssvc.PaymentSvcFacade = (*paymentService)(nil)

func (s *paymentService) GetPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	payment, err := s.paymentRepo.FindPaymentByID(ctx, paymentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get payment %s: %w", paymentID, err)
	}
	return payment, nil
}

func (s *paymentService) ListPayments(ctx context.Context, params dto.ListPaymentsParams) ([]domain.Payment, int64, error) {
	filter := portsrepo.PaymentFilter{
		PageFilter:    portsrepo.PageFilter{Page: params.Page, Limit: params.Limit},
		MemberID:      params.MemberID,
		PeriodID:      params.PeriodID,
		Status:        domain.PaymentStatus(params.Status),
		PaymentMethod: params.PaymentMethod,
		StartDate:     params.StartDate,
		EndDate:       params.EndDate,
		Search:        params.Search,
	}

	payments, total, err := s.paymentRepo.ListPayments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list payments: %w", err)
	}
	if payments == nil {
		payments = []domain.Payment{}
	}
	return payments, total, nil
}

// applyUpdate mutates the payment in place per the request and reports whether
// the status flipped. Validation errors abort before any mutation reaches the
// repository.
func applyPaymentUpdate(payment *domain.Payment, req dto.UpdatePaymentRequest, now time.Time, byUserID string) (wasPaid bool, err error) {
	wasPaid = payment.IsPaid()

	if req.PaymentMethod != nil {
		method := domain.PaymentMethod(*req.PaymentMethod)
		if !domain.ValidPaymentMethod(method) {
			return wasPaid, fmt.Errorf("%w: payment method must be cash or transfer", apperrors.ErrValidation)
		}
		payment.PaymentMethod = &method
	}

	if req.Status != nil {
		payment.Status = domain.PaymentStatus(*req.Status)
	}

	if req.PaymentDate != nil {
		payment.PaymentDate = req.PaymentDate
	}
	if req.Attachment != nil {
		payment.Attachment = req.Attachment
	}
	if req.Notes != nil {
		payment.Notes = req.Notes
	}

	if payment.IsPaid() && payment.PaymentDate == nil {
		payment.PaymentDate = &now
	}
	if !payment.IsPaid() {
		// Reverting to unpaid wipes the settlement details.
		payment.PaymentDate = nil
		payment.PaymentMethod = nil
	}

	payment.LastUpdatedAt = now
	payment.LastUpdatedBy = byUserID
	return wasPaid, nil
}

func (s *paymentService) UpdatePayment(ctx context.Context, paymentID string, req dto.UpdatePaymentRequest, requestingUserID string) (*domain.Payment, error) {
	payment, err := s.paymentRepo.FindPaymentByID(ctx, paymentID)
	if err != nil {
		return nil, fmt.Errorf("failed to find payment %s for update: %w", paymentID, err)
	}

	oldAttachment := payment.Attachment

	now := time.Now().UTC()
	wasPaid, err := applyPaymentUpdate(payment, req, now, requestingUserID)
	if err != nil {
		return nil, err
	}

	if err := s.paymentRepo.UpdatePayment(ctx, *payment); err != nil {
		return nil, fmt.Errorf("failed to update payment %s: %w", paymentID, err)
	}

	s.syncLedger(ctx, payment, wasPaid, requestingUserID)

	if req.Attachment != nil && oldAttachment != nil && *oldAttachment != *req.Attachment {
		s.scheduleAttachmentRemoval(ctx, *oldAttachment)
	}

	return payment, nil
}

func (s *paymentService) BulkUpdatePayments(ctx context.Context, req dto.BulkUpdatePaymentsRequest, requestingUserID string) (int, error) {
	payments, err := s.paymentRepo.FindPaymentsByIDs(ctx, req.PaymentIDs)
	if err != nil {
		return 0, fmt.Errorf("failed to resolve payments for bulk update: %w", err)
	}
	if len(payments) != len(req.PaymentIDs) {
		return 0, fmt.Errorf("%w: one or more payments not found", apperrors.ErrValidation)
	}

	update := dto.UpdatePaymentRequest{
		Status:        req.Status,
		PaymentDate:   req.PaymentDate,
		PaymentMethod: req.PaymentMethod,
	}

	now := time.Now().UTC()
	wasPaid := make([]bool, len(payments))
	for i := range payments {
		wasPaid[i], err = applyPaymentUpdate(&payments[i], update, now, requestingUserID)
		if err != nil {
			return 0, err
		}
	}

	if err := s.paymentRepo.UpdatePayments(ctx, payments); err != nil {
		return 0, fmt.Errorf("failed to bulk update payments: %w", err)
	}

	for i := range payments {
		s.syncLedger(ctx, &payments[i], wasPaid[i], requestingUserID)
	}

	middleware.GetLoggerFromCtx(ctx).Info("Payments bulk updated", slog.Int("count", len(payments)))
	return len(payments), nil
}

// syncLedger mirrors a payment status flip into the journal. Errors are
// logged and swallowed.
func (s *paymentService) syncLedger(ctx context.Context, payment *domain.Payment, wasPaid bool, byUserID string) {
	logger := middleware.GetLoggerFromCtx(ctx)

	switch {
	case !wasPaid && payment.IsPaid():
		txn, err := s.buildIncomeTransaction(ctx, payment, byUserID)
		if err == nil {
			err = s.txnRepo.SaveTransaction(ctx, *txn)
		}
		if err != nil {
			logger.Warn("Failed to sync income transaction for payment",
				slog.String("payment_id", payment.PaymentID),
				slog.String("error", err.Error()),
			)
		}
	case wasPaid && !payment.IsPaid():
		if err := s.txnRepo.DeleteTransactionsByPaymentID(ctx, payment.PaymentID); err != nil {
			logger.Warn("Failed to delete transactions for reverted payment",
				slog.String("payment_id", payment.PaymentID),
				slog.String("error", err.Error()),
			)
		}
	}
}

func (s *paymentService) buildIncomeTransaction(ctx context.Context, payment *domain.Payment, byUserID string) (*domain.Transaction, error) {
	member, err := s.memberRepo.FindMemberByID(ctx, payment.MemberID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve member for journal sync: %w", err)
	}
	period, err := s.periodRepo.FindPeriodByID(ctx, payment.PeriodID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve period for journal sync: %w", err)
	}

	now := time.Now().UTC()
	txnDate := now
	if payment.PaymentDate != nil {
		txnDate = *payment.PaymentDate
	}

	paymentID := payment.PaymentID
	return &domain.Transaction{
		TransactionID:   uuid.NewString(),
		Type:            domain.Income,
		Amount:          payment.Amount,
		Category:        domain.CategoryPayment,
		Description:     fmt.Sprintf("Payment received from %s - Period %s", member.FullName, period.Label()),
		TransactionDate: txnDate,
		PaymentID:       &paymentID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     byUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: byUserID,
		},
	}, nil
}

// scheduleAttachmentRemoval deletes a replaced attachment off the request
// path. Nothing happens when storage is not configured.
func (s *paymentService) scheduleAttachmentRemoval(ctx context.Context, attachmentURL string) {
	if s.storage == nil || s.runner == nil {
		return
	}
	key := s.storage.KeyFromURL(attachmentURL)
	if key == "" {
		return
	}

	logger := middleware.GetLoggerFromCtx(ctx)
	logger.Info("Scheduling removal of replaced attachment", slog.String("key", key))

	s.runner.Submit("remove-attachment", func(taskCtx context.Context) error {
		return s.storage.Remove(taskCtx, key)
	})
}

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ronaldocristover/arisan-backend/internal/apperrors"
	portssvc "github.com/ronaldocristover/arisan-backend/internal/core/ports/services"
	"github.com/ronaldocristover/arisan-backend/internal/dto"
	"github.com/ronaldocristover/arisan-backend/internal/middleware"
	"github.com/ronaldocristover/arisan-backend/internal/utils/pagination"
)

// paymentHandler handles HTTP requests related to payments.
type paymentHandler struct {
	paymentService portssvc.PaymentSvcFacade
}

// newPaymentHandler creates a new paymentHandler.
func newPaymentHandler(ps portssvc.PaymentSvcFacade) *paymentHandler {
	return &paymentHandler{
		paymentService: ps,
	}
}

// registerPaymentRoutes registers routes related to payments.
func registerPaymentRoutes(rg *gin.RouterGroup, paymentService portssvc.PaymentSvcFacade) {
	h := newPaymentHandler(paymentService)

	payments := rg.Group("/payments")
	{
		payments.GET("", h.listPayments)
		payments.GET("/:id", h.getPaymentByID)
		payments.PUT("/:id", h.updatePayment)
		payments.PUT("", h.bulkUpdatePayments)
	}
}

// parseDateQuery parses an RFC3339 or date-only query value.
func parseDateQuery(raw string) *time.Time {
	if raw == "" {
		return nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return &t
	}
	return nil
}

// listPayments godoc
// @Summary List payments
// @Description Retrieves a paginated payment listing with member, period, status and date filters
// @Tags payments
// @Produce  json
// @Param   page query int false "Page number" default(1)
// @Param   limit query int false "Page size" default(10)
// @Param   memberId query string false "Filter by member"
// @Param   periodId query string false "Filter by period"
// @Param   status query string false "Filter by status (paid/unpaid)"
// @Param   paymentMethod query string false "Filter by method (cash/transfer)"
// @Param   startDate query string false "Payment date lower bound (RFC3339 or YYYY-MM-DD)"
// @Param   endDate query string false "Payment date upper bound (RFC3339 or YYYY-MM-DD)"
// @Param   search query string false "Match against member name"
// @Success 200 {object} dto.ListPaymentsResponse
// @Failure 500 {object} ErrorResponse "Failed to list payments"
// @Security BearerAuth
// @Router /payments [get]
func (h *paymentHandler) listPayments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	page, limit := pagination.ParsePageLimit(c.Query("page"), c.Query("limit"))

	params := dto.ListPaymentsParams{
		Page:          page,
		Limit:         limit,
		MemberID:      c.Query("memberId"),
		PeriodID:      c.Query("periodId"),
		Status:        c.Query("status"),
		PaymentMethod: c.Query("paymentMethod"),
		StartDate:     parseDateQuery(c.Query("startDate")),
		EndDate:       parseDateQuery(c.Query("endDate")),
		Search:        c.Query("search"),
	}

	payments, total, err := h.paymentService.ListPayments(c.Request.Context(), params)
	if err != nil {
		logger.Error("Failed to list payments from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list payments"})
		return
	}

	responses := make([]dto.PaymentResponse, len(payments))
	for i := range payments {
		responses[i] = dto.ToPaymentResponse(&payments[i])
	}

	c.JSON(http.StatusOK, dto.ListPaymentsResponse{
		Payments:   responses,
		Pagination: dto.NewPagination(page, limit, total),
	})
}

// getPaymentByID godoc
// @Summary Get a payment by ID
// @Description Retrieves details for a specific payment
// @Tags payments
// @Produce  json
// @Param   id path string true "Payment ID"
// @Success 200 {object} dto.PaymentResponse
// @Failure 404 {object} ErrorResponse "Payment not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve payment"
// @Security BearerAuth
// @Router /payments/{id} [get]
func (h *paymentHandler) getPaymentByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	paymentID := c.Param("id")

	payment, err := h.paymentService.GetPaymentByID(c.Request.Context(), paymentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Payment not found"})
			return
		}
		logger.Error("Failed to get payment from service", slog.String("payment_id", paymentID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve payment"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentResponse(payment))
}

// updatePayment godoc
// @Summary Update a payment
// @Description Records or corrects a payment; the journal is kept in sync with the resulting status
// @Tags payments
// @Accept  json
// @Produce  json
// @Param   id path string true "Payment ID"
// @Param   payment body dto.UpdatePaymentRequest true "Fields to update"
// @Success 200 {object} dto.PaymentResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Payment not found"
// @Failure 500 {object} ErrorResponse "Failed to update payment"
// @Security BearerAuth
// @Router /payments/{id} [put]
func (h *paymentHandler) updatePayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	paymentID := c.Param("id")

	var req dto.UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdatePayment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	payment, err := h.paymentService.UpdatePayment(c.Request.Context(), paymentID, req, requestingUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Payment not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to update payment in service", slog.String("payment_id", paymentID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update payment"})
		}
		return
	}

	logger.Info("Payment updated successfully", slog.String("payment_id", paymentID))
	c.JSON(http.StatusOK, dto.ToPaymentResponse(payment))
}

// bulkUpdatePayments godoc
// @Summary Bulk update payments
// @Description Applies the same status update to many payments, syncing the journal per payment
// @Tags payments
// @Accept  json
// @Produce  json
// @Param   payments body dto.BulkUpdatePaymentsRequest true "Payment IDs and fields to update"
// @Success 200 {object} dto.BulkUpdatePaymentsResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 500 {object} ErrorResponse "Failed to update payments"
// @Security BearerAuth
// @Router /payments [put]
func (h *paymentHandler) bulkUpdatePayments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.BulkUpdatePaymentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for BulkUpdatePayments", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	count, err := h.paymentService.BulkUpdatePayments(c.Request.Context(), req, requestingUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to bulk update payments in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update payments"})
		return
	}

	logger.Info("Payments updated successfully", slog.Int("count", count))
	c.JSON(http.StatusOK, dto.BulkUpdatePaymentsResponse{Count: count})
}

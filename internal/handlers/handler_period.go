package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ronaldocristover/arisan-backend/internal/apperrors"
	portssvc "github.com/ronaldocristover/arisan-backend/internal/core/ports/services"
	"github.com/ronaldocristover/arisan-backend/internal/dto"
	"github.com/ronaldocristover/arisan-backend/internal/middleware"
	"github.com/ronaldocristover/arisan-backend/internal/utils/pagination"
)

// periodHandler handles HTTP requests related to arisan periods.
type periodHandler struct {
	periodService portssvc.PeriodSvcFacade
}

// newPeriodHandler creates a new periodHandler.
func newPeriodHandler(ps portssvc.PeriodSvcFacade) *periodHandler {
	return &periodHandler{
		periodService: ps,
	}
}

// registerPeriodRoutes registers routes related to periods.
func registerPeriodRoutes(rg *gin.RouterGroup, periodService portssvc.PeriodSvcFacade) {
	h := newPeriodHandler(periodService)

	periods := rg.Group("/periods")
	{
		periods.POST("", h.createPeriod)
		periods.GET("", h.listPeriods)
		periods.GET("/current", h.getCurrentPeriod)
		periods.GET("/:id", h.getPeriodByID)
		periods.PUT("/:id", h.updatePeriod)
		periods.POST("/:id/members", h.addMembersToPeriod)
		periods.POST("/:id/close", h.closePeriod)
	}
}

// createPeriod godoc
// @Summary Open a new period
// @Description Opens a collection cycle, enrolls every active member with an unpaid payment and marks the period current
// @Tags periods
// @Accept  json
// @Produce  json
// @Param   period body dto.CreatePeriodRequest true "Period details"
// @Success 201 {object} dto.PeriodResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 409 {object} ErrorResponse "Period already exists for that month"
// @Failure 500 {object} ErrorResponse "Failed to create period"
// @Security BearerAuth
// @Router /periods [post]
func (h *periodHandler) createPeriod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreatePeriod", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	period, err := h.periodService.CreatePeriod(c.Request.Context(), req, creatorUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrDuplicate):
			c.JSON(http.StatusConflict, ErrorResponse{Error: "A period already exists for that month and year"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to create period in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create period"})
		}
		return
	}

	logger.Info("Period created successfully", slog.String("period_id", period.PeriodID))
	c.JSON(http.StatusCreated, dto.ToPeriodResponse(period))
}

// listPeriods godoc
// @Summary List periods
// @Description Retrieves a paginated period listing, newest first
// @Tags periods
// @Produce  json
// @Param   page query int false "Page number" default(1)
// @Param   limit query int false "Page size" default(10)
// @Param   year query int false "Filter by year"
// @Param   status query string false "Filter by status (open/closed)"
// @Success 200 {object} dto.ListPeriodsResponse
// @Failure 500 {object} ErrorResponse "Failed to list periods"
// @Security BearerAuth
// @Router /periods [get]
func (h *periodHandler) listPeriods(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	page, limit := pagination.ParsePageLimit(c.Query("page"), c.Query("limit"))

	year := 0
	if y, err := strconv.Atoi(c.Query("year")); err == nil {
		year = y
	}

	params := dto.ListPeriodsParams{
		Page:   page,
		Limit:  limit,
		Year:   year,
		Status: c.Query("status"),
		Search: c.Query("search"),
	}

	periods, total, err := h.periodService.ListPeriods(c.Request.Context(), params)
	if err != nil {
		logger.Error("Failed to list periods from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list periods"})
		return
	}

	responses := make([]dto.PeriodResponse, len(periods))
	for i := range periods {
		responses[i] = dto.ToPeriodResponse(&periods[i])
	}

	c.JSON(http.StatusOK, dto.ListPeriodsResponse{
		Periods:    responses,
		Pagination: dto.NewPagination(page, limit, total),
	})
}

// getCurrentPeriod godoc
// @Summary Get the current period
// @Description Retrieves the currently active period with its collection stats
// @Tags periods
// @Produce  json
// @Success 200 {object} dto.PeriodResponse
// @Failure 404 {object} ErrorResponse "No current period"
// @Failure 500 {object} ErrorResponse "Failed to retrieve period"
// @Security BearerAuth
// @Router /periods/current [get]
func (h *periodHandler) getCurrentPeriod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	period, stats, err := h.periodService.GetCurrentPeriod(c.Request.Context())
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "No current period"})
			return
		}
		logger.Error("Failed to get current period from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve period"})
		return
	}

	resp := dto.ToPeriodResponse(period)
	resp.Stats = stats
	c.JSON(http.StatusOK, resp)
}

// getPeriodByID godoc
// @Summary Get a period by ID
// @Description Retrieves a specific period with its collection stats
// @Tags periods
// @Produce  json
// @Param   id path string true "Period ID"
// @Success 200 {object} dto.PeriodResponse
// @Failure 404 {object} ErrorResponse "Period not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve period"
// @Security BearerAuth
// @Router /periods/{id} [get]
func (h *periodHandler) getPeriodByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	periodID := c.Param("id")

	period, stats, err := h.periodService.GetPeriodByID(c.Request.Context(), periodID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Period not found"})
			return
		}
		logger.Error("Failed to get period from service", slog.String("period_id", periodID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve period"})
		return
	}

	resp := dto.ToPeriodResponse(period)
	resp.Stats = stats
	c.JSON(http.StatusOK, resp)
}

// updatePeriod godoc
// @Summary Update a period
// @Description Edits an open period's amounts, dates or current flag
// @Tags periods
// @Accept  json
// @Produce  json
// @Param   id path string true "Period ID"
// @Param   period body dto.UpdatePeriodRequest true "Fields to update"
// @Success 200 {object} dto.PeriodResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Period not found"
// @Failure 409 {object} ErrorResponse "Period is closed"
// @Failure 500 {object} ErrorResponse "Failed to update period"
// @Security BearerAuth
// @Router /periods/{id} [put]
func (h *periodHandler) updatePeriod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	periodID := c.Param("id")

	var req dto.UpdatePeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdatePeriod", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	period, err := h.periodService.UpdatePeriod(c.Request.Context(), periodID, req, requestingUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Period not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrConflict):
			c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to update period in service", slog.String("period_id", periodID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update period"})
		}
		return
	}

	logger.Info("Period updated successfully", slog.String("period_id", periodID))
	c.JSON(http.StatusOK, dto.ToPeriodResponse(period))
}

// addMembersToPeriod godoc
// @Summary Enroll members into a period
// @Description Adds unpaid payment rows for the given members, skipping any already enrolled
// @Tags periods
// @Accept  json
// @Produce  json
// @Param   id path string true "Period ID"
// @Param   members body dto.AddMembersToPeriodRequest true "Member IDs to enroll"
// @Success 200 {object} dto.AddMembersToPeriodResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Period not found"
// @Failure 409 {object} ErrorResponse "Period is closed"
// @Failure 500 {object} ErrorResponse "Failed to enroll members"
// @Security BearerAuth
// @Router /periods/{id}/members [post]
func (h *periodHandler) addMembersToPeriod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	periodID := c.Param("id")

	var req dto.AddMembersToPeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AddMembersToPeriod", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	count, period, err := h.periodService.AddMembersToPeriod(c.Request.Context(), periodID, req, requestingUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Period not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrConflict):
			c.JSON(http.StatusConflict, ErrorResponse{Error: "Period is closed"})
		default:
			logger.Error("Failed to enroll members in service", slog.String("period_id", periodID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to enroll members"})
		}
		return
	}

	logger.Info("Members enrolled successfully", slog.String("period_id", periodID), slog.Int("count", count))
	c.JSON(http.StatusOK, dto.AddMembersToPeriodResponse{
		Count:  count,
		Period: dto.ToPeriodResponse(period),
	})
}

// closePeriod godoc
// @Summary Close a period
// @Description Marks a period closed and stamps its end date
// @Tags periods
// @Produce  json
// @Param   id path string true "Period ID"
// @Success 200 {object} dto.PeriodResponse
// @Failure 404 {object} ErrorResponse "Period not found"
// @Failure 500 {object} ErrorResponse "Failed to close period"
// @Security BearerAuth
// @Router /periods/{id}/close [post]
func (h *periodHandler) closePeriod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	periodID := c.Param("id")

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	period, err := h.periodService.ClosePeriod(c.Request.Context(), periodID, requestingUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Period not found"})
			return
		}
		logger.Error("Failed to close period in service", slog.String("period_id", periodID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to close period"})
		return
	}

	logger.Info("Period closed successfully", slog.String("period_id", periodID))
	c.JSON(http.StatusOK, dto.ToPeriodResponse(period))
}

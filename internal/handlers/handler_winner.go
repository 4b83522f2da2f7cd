package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ronaldocristover/arisan-backend/internal/apperrors"
	portssvc "github.com/ronaldocristover/arisan-backend/internal/core/ports/services"
	"github.com/ronaldocristover/arisan-backend/internal/dto"
	"github.com/ronaldocristover/arisan-backend/internal/middleware"
	"github.com/ronaldocristover/arisan-backend/internal/utils/pagination"
)

// winnerHandler handles HTTP requests related to winner draws.
type winnerHandler struct {
	winnerService portssvc.WinnerSvcFacade
}

// newWinnerHandler creates a new winnerHandler.
func newWinnerHandler(ws portssvc.WinnerSvcFacade) *winnerHandler {
	return &winnerHandler{
		winnerService: ws,
	}
}

// registerWinnerRoutes registers routes related to winners.
func registerWinnerRoutes(rg *gin.RouterGroup, winnerService portssvc.WinnerSvcFacade) {
	h := newWinnerHandler(winnerService)

	winners := rg.Group("/winners")
	{
		winners.POST("", h.selectWinner)
		winners.GET("", h.listWinners)
		winners.GET("/:id", h.getWinnerByID)
		winners.POST("/:id/money-given", h.markMoneyGiven)
		winners.DELETE("/:id", h.deleteWinner)
	}
}

// selectWinner godoc
// @Summary Draw a winner
// @Description Draws a winner for a period, either the requested member or a uniform random pick over the eligible pool
// @Tags winners
// @Accept  json
// @Produce  json
// @Param   draw body dto.SelectWinnerRequest true "Draw request"
// @Success 201 {object} dto.WinnerResponse
// @Failure 400 {object} ErrorResponse "Invalid input or member without a paid payment"
// @Failure 404 {object} ErrorResponse "Period not found"
// @Failure 409 {object} ErrorResponse "Period already has a winner"
// @Failure 422 {object} ErrorResponse "No eligible members"
// @Failure 500 {object} ErrorResponse "Failed to draw winner"
// @Security BearerAuth
// @Router /winners [post]
func (h *winnerHandler) selectWinner(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SelectWinnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SelectWinner", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	winner, err := h.winnerService.SelectWinner(c.Request.Context(), req, requestingUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Period not found"})
		case errors.Is(err, apperrors.ErrDuplicate):
			c.JSON(http.StatusConflict, ErrorResponse{Error: "Period already has a winner"})
		case errors.Is(err, apperrors.ErrNoEligibleMembers):
			c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "No eligible members for this draw"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to draw winner in service", slog.String("period_id", req.PeriodID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to draw winner"})
		}
		return
	}

	logger.Info("Winner drawn successfully", slog.String("winner_id", winner.WinnerID), slog.String("period_id", winner.PeriodID))
	c.JSON(http.StatusCreated, dto.ToWinnerResponse(winner))
}

// listWinners godoc
// @Summary List winners
// @Description Retrieves a paginated winner listing, newest draw first
// @Tags winners
// @Produce  json
// @Param   page query int false "Page number" default(1)
// @Param   limit query int false "Page size" default(10)
// @Param   periodId query string false "Filter by period"
// @Param   memberId query string false "Filter by member"
// @Param   search query string false "Match against member name"
// @Success 200 {object} dto.ListWinnersResponse
// @Failure 500 {object} ErrorResponse "Failed to list winners"
// @Security BearerAuth
// @Router /winners [get]
func (h *winnerHandler) listWinners(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	page, limit := pagination.ParsePageLimit(c.Query("page"), c.Query("limit"))

	params := dto.ListWinnersParams{
		Page:     page,
		Limit:    limit,
		PeriodID: c.Query("periodId"),
		MemberID: c.Query("memberId"),
		Search:   c.Query("search"),
	}

	winners, total, err := h.winnerService.ListWinners(c.Request.Context(), params)
	if err != nil {
		logger.Error("Failed to list winners from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list winners"})
		return
	}

	responses := make([]dto.WinnerResponse, len(winners))
	for i := range winners {
		responses[i] = dto.ToWinnerResponse(&winners[i])
	}

	c.JSON(http.StatusOK, dto.ListWinnersResponse{
		Winners:    responses,
		Pagination: dto.NewPagination(page, limit, total),
	})
}

// getWinnerByID godoc
// @Summary Get a winner by ID
// @Description Retrieves details for a specific winner
// @Tags winners
// @Produce  json
// @Param   id path string true "Winner ID"
// @Success 200 {object} dto.WinnerResponse
// @Failure 404 {object} ErrorResponse "Winner not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve winner"
// @Security BearerAuth
// @Router /winners/{id} [get]
func (h *winnerHandler) getWinnerByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	winnerID := c.Param("id")

	winner, err := h.winnerService.GetWinnerByID(c.Request.Context(), winnerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Winner not found"})
			return
		}
		logger.Error("Failed to get winner from service", slog.String("winner_id", winnerID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve winner"})
		return
	}

	c.JSON(http.StatusOK, dto.ToWinnerResponse(winner))
}

// markMoneyGiven godoc
// @Summary Mark prize money as given
// @Description Stamps prize distribution on a winner and syncs the linked expense transaction
// @Tags winners
// @Accept  json
// @Produce  json
// @Param   id path string true "Winner ID"
// @Param   body body dto.MarkMoneyGivenRequest true "Optional notes"
// @Success 200 {object} dto.WinnerResponse
// @Failure 404 {object} ErrorResponse "Winner not found"
// @Failure 500 {object} ErrorResponse "Failed to mark money given"
// @Security BearerAuth
// @Router /winners/{id}/money-given [post]
func (h *winnerHandler) markMoneyGiven(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	winnerID := c.Param("id")

	var req dto.MarkMoneyGivenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for MarkMoneyGiven", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	winner, err := h.winnerService.MarkMoneyGiven(c.Request.Context(), winnerID, req, requestingUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Winner not found"})
			return
		}
		logger.Error("Failed to mark money given in service", slog.String("winner_id", winnerID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to mark money given"})
		return
	}

	logger.Info("Prize distribution recorded", slog.String("winner_id", winnerID))
	c.JSON(http.StatusOK, dto.ToWinnerResponse(winner))
}

// deleteWinner godoc
// @Summary Delete a winner
// @Description Undoes a draw, removing linked journal rows first
// @Tags winners
// @Produce  json
// @Param   id path string true "Winner ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse "Winner not found"
// @Failure 500 {object} ErrorResponse "Failed to delete winner"
// @Security BearerAuth
// @Router /winners/{id} [delete]
func (h *winnerHandler) deleteWinner(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	winnerID := c.Param("id")

	if err := h.winnerService.DeleteWinner(c.Request.Context(), winnerID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Winner not found"})
			return
		}
		logger.Error("Failed to delete winner in service", slog.String("winner_id", winnerID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete winner"})
		return
	}

	logger.Info("Winner deleted successfully", slog.String("winner_id", winnerID))
	c.Status(http.StatusNoContent)
}

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

// memberHandler handles HTTP requests related to members.
type memberHandler struct {
	memberService portssvc.MemberSvcFacade
}

// newMemberHandler creates a new memberHandler.
func newMemberHandler(ms portssvc.MemberSvcFacade) *memberHandler {
	return &memberHandler{
		memberService: ms,
	}
}

// RegisterMemberRoutes registers routes related to members.
func RegisterMemberRoutes(rg *gin.RouterGroup, memberService portssvc.MemberSvcFacade) {
	h := newMemberHandler(memberService)

	members := rg.Group("/members")
	{
		members.POST("", h.createMember)
		members.GET("", h.listMembers)
		members.GET("/:id", h.getMemberByID)
		members.PUT("/:id", h.updateMember)
		members.DELETE("/:id", h.deleteMember)
	}
}

// createMember godoc
// @Summary Create a new member
// @Description Registers a new arisan participant
// @Tags members
// @Accept  json
// @Produce  json
// @Param   member body dto.CreateMemberRequest true "Member details"
// @Success 201 {object} dto.MemberResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to create member"
// @Security BearerAuth
// @Router /members [post]
func (h *memberHandler) createMember(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateMember", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	member, err := h.memberService.CreateMember(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to create member in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create member"})
		return
	}

	logger.Info("Member created successfully", slog.String("member_id", member.MemberID))
	c.JSON(http.StatusCreated, dto.ToMemberResponse(member))
}

// listMembers godoc
// @Summary List members
// @Description Retrieves a paginated member listing with optional status, group and name filters
// @Tags members
// @Produce  json
// @Param   page query int false "Page number" default(1)
// @Param   limit query int false "Page size" default(10)
// @Param   status query string false "Filter by status (active/inactive)"
// @Param   group query string false "Filter by group name"
// @Param   search query string false "Match against full name or nickname"
// @Success 200 {object} dto.ListMembersResponse
// @Failure 500 {object} ErrorResponse "Failed to list members"
// @Security BearerAuth
// @Router /members [get]
func (h *memberHandler) listMembers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	page, limit := pagination.ParsePageLimit(c.Query("page"), c.Query("limit"))

	params := dto.ListMembersParams{
		Page:   page,
		Limit:  limit,
		Status: c.Query("status"),
		Group:  c.Query("group"),
		Search: c.Query("search"),
	}

	members, total, err := h.memberService.ListMembers(c.Request.Context(), params)
	if err != nil {
		logger.Error("Failed to list members from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list members"})
		return
	}

	c.JSON(http.StatusOK, dto.ListMembersResponse{
		Members:    dto.ToMemberResponses(members),
		Pagination: dto.NewPagination(page, limit, total),
	})
}

// getMemberByID godoc
// @Summary Get a member by ID
// @Description Retrieves details for a specific member
// @Tags members
// @Produce  json
// @Param   id path string true "Member ID"
// @Success 200 {object} dto.MemberResponse
// @Failure 404 {object} ErrorResponse "Member not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve member"
// @Security BearerAuth
// @Router /members/{id} [get]
func (h *memberHandler) getMemberByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	memberID := c.Param("id")

	member, err := h.memberService.GetMemberByID(c.Request.Context(), memberID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Member not found"})
			return
		}
		logger.Error("Failed to get member from service", slog.String("member_id", memberID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve member"})
		return
	}

	c.JSON(http.StatusOK, dto.ToMemberResponse(member))
}

// updateMember godoc
// @Summary Update a member
// @Description Edits a member's details; omitted fields are left untouched
// @Tags members
// @Accept  json
// @Produce  json
// @Param   id path string true "Member ID"
// @Param   member body dto.UpdateMemberRequest true "Fields to update"
// @Success 200 {object} dto.MemberResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Member not found"
// @Failure 500 {object} ErrorResponse "Failed to update member"
// @Security BearerAuth
// @Router /members/{id} [put]
func (h *memberHandler) updateMember(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	memberID := c.Param("id")

	var req dto.UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateMember", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	member, err := h.memberService.UpdateMember(c.Request.Context(), memberID, req, requestingUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Member not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to update member in service", slog.String("member_id", memberID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update member"})
		}
		return
	}

	logger.Info("Member updated successfully", slog.String("member_id", memberID))
	c.JSON(http.StatusOK, dto.ToMemberResponse(member))
}

// deleteMember godoc
// @Summary Delete a member
// @Description Removes a member that is not referenced by payments or winners
// @Tags members
// @Produce  json
// @Param   id path string true "Member ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse "Member not found"
// @Failure 409 {object} ErrorResponse "Member is referenced by other records"
// @Failure 500 {object} ErrorResponse "Failed to delete member"
// @Security BearerAuth
// @Router /members/{id} [delete]
func (h *memberHandler) deleteMember(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	memberID := c.Param("id")

	if err := h.memberService.DeleteMember(c.Request.Context(), memberID); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Member not found"})
		case errors.Is(err, apperrors.ErrConflict):
			c.JSON(http.StatusConflict, ErrorResponse{Error: "Member is referenced by payments or winners"})
		default:
			logger.Error("Failed to delete member in service", slog.String("member_id", memberID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete member"})
		}
		return
	}

	logger.Info("Member deleted successfully", slog.String("member_id", memberID))
	c.Status(http.StatusNoContent)
}

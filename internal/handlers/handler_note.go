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

// noteHandler handles HTTP requests related to administrative notes.
type noteHandler struct {
	noteService portssvc.NoteSvcFacade
}

// newNoteHandler creates a new noteHandler.
func newNoteHandler(ns portssvc.NoteSvcFacade) *noteHandler {
	return &noteHandler{
		noteService: ns,
	}
}

// registerNoteRoutes registers routes related to notes.
func registerNoteRoutes(rg *gin.RouterGroup, noteService portssvc.NoteSvcFacade) {
	h := newNoteHandler(noteService)

	notes := rg.Group("/notes")
	{
		notes.POST("", h.createNote)
		notes.GET("", h.listNotes)
		notes.GET("/:id", h.getNoteByID)
		notes.PUT("/:id", h.updateNote)
		notes.DELETE("/:id", h.deleteNote)
	}
}

// createNote godoc
// @Summary Create a note
// @Description Records an administrative note, optionally linked to a member or period
// @Tags notes
// @Accept  json
// @Produce  json
// @Param   note body dto.CreateNoteRequest true "Note details"
// @Success 201 {object} dto.NoteResponse
// @Failure 400 {object} ErrorResponse "Invalid input or unknown reference"
// @Failure 500 {object} ErrorResponse "Failed to create note"
// @Security BearerAuth
// @Router /notes [post]
func (h *noteHandler) createNote(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateNote", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	note, err := h.noteService.CreateNote(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to create note in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create note"})
		return
	}

	logger.Info("Note created successfully", slog.String("note_id", note.NoteID))
	c.JSON(http.StatusCreated, dto.ToNoteResponse(note))
}

// listNotes godoc
// @Summary List notes
// @Description Retrieves a paginated note listing with type, priority, status and reference filters
// @Tags notes
// @Produce  json
// @Param   page query int false "Page number" default(1)
// @Param   limit query int false "Page size" default(10)
// @Param   type query string false "Filter by note type"
// @Param   priority query string false "Filter by priority"
// @Param   status query string false "Filter by status"
// @Param   memberId query string false "Filter by linked member"
// @Param   periodId query string false "Filter by linked period"
// @Param   search query string false "Match against title or content"
// @Success 200 {object} dto.ListNotesResponse
// @Failure 500 {object} ErrorResponse "Failed to list notes"
// @Security BearerAuth
// @Router /notes [get]
func (h *noteHandler) listNotes(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	page, limit := pagination.ParsePageLimit(c.Query("page"), c.Query("limit"))

	params := dto.ListNotesParams{
		Page:     page,
		Limit:    limit,
		Type:     c.Query("type"),
		Priority: c.Query("priority"),
		Status:   c.Query("status"),
		MemberID: c.Query("memberId"),
		PeriodID: c.Query("periodId"),
		Search:   c.Query("search"),
	}

	notes, total, err := h.noteService.ListNotes(c.Request.Context(), params)
	if err != nil {
		logger.Error("Failed to list notes from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list notes"})
		return
	}

	c.JSON(http.StatusOK, dto.ListNotesResponse{
		Notes:      dto.ToNoteResponses(notes),
		Pagination: dto.NewPagination(page, limit, total),
	})
}

// getNoteByID godoc
// @Summary Get a note by ID
// @Description Retrieves details for a specific note
// @Tags notes
// @Produce  json
// @Param   id path string true "Note ID"
// @Success 200 {object} dto.NoteResponse
// @Failure 404 {object} ErrorResponse "Note not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve note"
// @Security BearerAuth
// @Router /notes/{id} [get]
func (h *noteHandler) getNoteByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	noteID := c.Param("id")

	note, err := h.noteService.GetNoteByID(c.Request.Context(), noteID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Note not found"})
			return
		}
		logger.Error("Failed to get note from service", slog.String("note_id", noteID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve note"})
		return
	}

	c.JSON(http.StatusOK, dto.ToNoteResponse(note))
}

// updateNote godoc
// @Summary Update a note
// @Description Edits a note; omitted fields are left untouched
// @Tags notes
// @Accept  json
// @Produce  json
// @Param   id path string true "Note ID"
// @Param   note body dto.UpdateNoteRequest true "Fields to update"
// @Success 200 {object} dto.NoteResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Note not found"
// @Failure 500 {object} ErrorResponse "Failed to update note"
// @Security BearerAuth
// @Router /notes/{id} [put]
func (h *noteHandler) updateNote(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	noteID := c.Param("id")

	var req dto.UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateNote", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	note, err := h.noteService.UpdateNote(c.Request.Context(), noteID, req, requestingUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Note not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to update note in service", slog.String("note_id", noteID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update note"})
		}
		return
	}

	logger.Info("Note updated successfully", slog.String("note_id", noteID))
	c.JSON(http.StatusOK, dto.ToNoteResponse(note))
}

// deleteNote godoc
// @Summary Delete a note
// @Description Removes a note
// @Tags notes
// @Produce  json
// @Param   id path string true "Note ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse "Note not found"
// @Failure 500 {object} ErrorResponse "Failed to delete note"
// @Security BearerAuth
// @Router /notes/{id} [delete]
func (h *noteHandler) deleteNote(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	noteID := c.Param("id")

	if err := h.noteService.DeleteNote(c.Request.Context(), noteID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Note not found"})
			return
		}
		logger.Error("Failed to delete note in service", slog.String("note_id", noteID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete note"})
		return
	}

	logger.Info("Note deleted successfully", slog.String("note_id", noteID))
	c.Status(http.StatusNoContent)
}

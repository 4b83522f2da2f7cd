package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ronaldocristover/arisan-backend/internal/apperrors"
	"github.com/ronaldocristover/arisan-backend/internal/core/domain"
	portsrepo "github.com/ronaldocristover/arisan-backend/internal/core/ports/repositories"
	portssvc "github.com/ronaldocristover/arisan-backend/internal/core/ports/services"
	"github.com/ronaldocristover/arisan-backend/internal/dto"
)

const (
	defaultNoteType     = "general"
	defaultNotePriority = "normal"
	defaultNoteStatus   = "active"
)

// noteService manages free-standing administrative annotations.
type noteService struct {
	noteRepo   portsrepo.NoteRepositoryFacade
	memberRepo portsrepo.MemberRepositoryFacade
	periodRepo portsrepo.PeriodRepositoryFacade
}

// NewNoteService creates a new note service.
func NewNoteService(
	noteRepo portsrepo.NoteRepositoryFacade,
	memberRepo portsrepo.MemberRepositoryFacade,
	periodRepo portsrepo.PeriodRepositoryFacade,
) portssvc.NoteSvcFacade {
	return &noteService{
		noteRepo:   noteRepo,
		memberRepo: memberRepo,
		periodRepo: periodRepo,
	}
}

var _ portssvc.NoteSvcFacade = (*noteService)(nil)

// validateRefs confirms an attached member/period actually exists.
func (s *noteService) validateRefs(ctx context.Context, memberID, periodID *string) error {
	if memberID != nil {
		if _, err := s.memberRepo.FindMemberByID(ctx, *memberID); err != nil {
			return fmt.Errorf("%w: member %s not found", apperrors.ErrValidation, *memberID)
		}
	}
	if periodID != nil {
		if _, err := s.periodRepo.FindPeriodByID(ctx, *periodID); err != nil {
			return fmt.Errorf("%w: period %s not found", apperrors.ErrValidation, *periodID)
		}
	}
	return nil
}

func (s *noteService) CreateNote(ctx context.Context, req dto.CreateNoteRequest, creatorUserID string) (*domain.Note, error) {
	if err := s.validateRefs(ctx, req.MemberID, req.PeriodID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	note := domain.Note{
		NoteID:   uuid.NewString(),
		Title:    req.Title,
		Content:  req.Content,
		Type:     defaultNoteType,
		Priority: defaultNotePriority,
		Status:   defaultNoteStatus,
		MemberID: req.MemberID,
		PeriodID: req.PeriodID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	if req.Type != nil {
		note.Type = *req.Type
	}
	if req.Priority != nil {
		note.Priority = *req.Priority
	}
	if req.Status != nil {
		note.Status = *req.Status
	}

	if err := s.noteRepo.SaveNote(ctx, note); err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}
	return &note, nil
}

func (s *noteService) GetNoteByID(ctx context.Context, noteID string) (*domain.Note, error) {
	note, err := s.noteRepo.FindNoteByID(ctx, noteID)
	if err != nil {
		return nil, fmt.Errorf("failed to get note %s: %w", noteID, err)
	}
	return note, nil
}

func (s *noteService) ListNotes(ctx context.Context, params dto.ListNotesParams) ([]domain.Note, int64, error) {
	filter := portsrepo.NoteFilter{
		PageFilter: portsrepo.PageFilter{Page: params.Page, Limit: params.Limit},
		Type:       params.Type,
		Priority:   params.Priority,
		Status:     params.Status,
		MemberID:   params.MemberID,
		PeriodID:   params.PeriodID,
		Search:     params.Search,
	}

	notes, total, err := s.noteRepo.ListNotes(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list notes: %w", err)
	}
	if notes == nil {
		notes = []domain.Note{}
	}
	return notes, total, nil
}

func (s *noteService) UpdateNote(ctx context.Context, noteID string, req dto.UpdateNoteRequest, requestingUserID string) (*domain.Note, error) {
	note, err := s.noteRepo.FindNoteByID(ctx, noteID)
	if err != nil {
		return nil, fmt.Errorf("failed to find note %s for update: %w", noteID, err)
	}

	if err := s.validateRefs(ctx, req.MemberID, req.PeriodID); err != nil {
		return nil, err
	}

	if req.Title != nil {
		note.Title = *req.Title
	}
	if req.Content != nil {
		note.Content = *req.Content
	}
	if req.Type != nil {
		note.Type = *req.Type
	}
	if req.Priority != nil {
		note.Priority = *req.Priority
	}
	if req.Status != nil {
		note.Status = *req.Status
	}
	if req.MemberID != nil {
		note.MemberID = req.MemberID
	}
	if req.PeriodID != nil {
		note.PeriodID = req.PeriodID
	}

	note.LastUpdatedAt = time.Now().UTC()
	note.LastUpdatedBy = requestingUserID

	if err := s.noteRepo.UpdateNote(ctx, *note); err != nil {
		return nil, fmt.Errorf("failed to update note %s: %w", noteID, err)
	}
	return note, nil
}

func (s *noteService) DeleteNote(ctx context.Context, noteID string) error {
	if _, err := s.noteRepo.FindNoteByID(ctx, noteID); err != nil {
		return fmt.Errorf("failed to find note %s for deletion: %w", noteID, err)
	}
	if err := s.noteRepo.DeleteNote(ctx, noteID); err != nil {
		return fmt.Errorf("failed to delete note %s: %w", noteID, err)
	}
	return nil
}

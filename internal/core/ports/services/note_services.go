package services

import (
	"context"

	"github.com/ronaldocristover/arisan-backend/internal/core/domain"
	"github.com/ronaldocristover/arisan-backend/internal/dto"
)

// NoteSvcFacade defines all operations for administrative notes
type NoteSvcFacade interface {
	// GetNoteByID retrieves a specific note by its ID.
	GetNoteByID(ctx context.Context, noteID string) (*domain.Note, error)

	// ListNotes retrieves a paginated, filtered note listing.
	ListNotes(ctx context.Context, params dto.ListNotesParams) ([]domain.Note, int64, error)

	// CreateNote records a new note, validating member/period references.
	CreateNote(ctx context.Context, req dto.CreateNoteRequest, creatorUserID string) (*domain.Note, error)

	// UpdateNote edits an existing note.
	UpdateNote(ctx context.Context, noteID string, req dto.UpdateNoteRequest, requestingUserID string) (*domain.Note, error)

	// DeleteNote removes a note.
	DeleteNote(ctx context.Context, noteID string) error
}

package repositories

import (
	"context"

	"github.com/ronaldocristover/arisan-backend/internal/core/domain"
)

// NoteRepositoryFacade defines all operations for note data
type NoteRepositoryFacade interface {
	// FindNoteByID retrieves a specific note by its unique identifier.
	FindNoteByID(ctx context.Context, noteID string) (*domain.Note, error)

	// ListNotes retrieves a filtered page of notes plus the unpaged total.
	ListNotes(ctx context.Context, filter NoteFilter) ([]domain.Note, int64, error)

	// SaveNote persists a new note.
	SaveNote(ctx context.Context, note domain.Note) error

	// UpdateNote persists changes to an existing note.
	UpdateNote(ctx context.Context, note domain.Note) error

	// DeleteNote removes a note.
	DeleteNote(ctx context.Context, noteID string) error
}

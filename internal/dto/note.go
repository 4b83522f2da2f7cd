package dto

import (
	"time"

	"github.com/ronaldocristover/arisan-backend/internal/core/domain"
)

// CreateNoteRequest defines the payload for creating a note.
type CreateNoteRequest struct {
	Title    string  `json:"title" binding:"required"`
	Content  string  `json:"content" binding:"required"`
	Type     *string `json:"type"`
	Priority *string `json:"priority"`
	Status   *string `json:"status"`
	MemberID *string `json:"memberId"`
	PeriodID *string `json:"periodId"`
}

// UpdateNoteRequest defines the payload for editing a note. Nil fields are
// left untouched.
type UpdateNoteRequest struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	Type     *string `json:"type"`
	Priority *string `json:"priority"`
	Status   *string `json:"status"`
	MemberID *string `json:"memberId"`
	PeriodID *string `json:"periodId"`
}

// ListNotesParams carries note list filters.
type ListNotesParams struct {
	Page     int
	Limit    int
	Type     string
	Priority string
	Status   string
	MemberID string
	PeriodID string
	Search   string
}

// NoteResponse defines the data returned for a note.
type NoteResponse struct {
	NoteID    string    `json:"noteID"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Type      string    `json:"type"`
	Priority  string    `json:"priority"`
	Status    string    `json:"status"`
	MemberID  *string   `json:"memberID,omitempty"`
	PeriodID  *string   `json:"periodID,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// ListNotesResponse is the paginated note listing.
type ListNotesResponse struct {
	Notes      []NoteResponse `json:"notes"`
	Pagination Pagination     `json:"pagination"`
}

// ToNoteResponse converts a domain Note to NoteResponse.
func ToNoteResponse(n *domain.Note) NoteResponse {
	return NoteResponse{
		NoteID:    n.NoteID,
		Title:     n.Title,
		Content:   n.Content,
		Type:      n.Type,
		Priority:  n.Priority,
		Status:    n.Status,
		MemberID:  n.MemberID,
		PeriodID:  n.PeriodID,
		CreatedAt: n.CreatedAt,
	}
}

// ToNoteResponses converts a slice of domain Notes to responses.
func ToNoteResponses(notes []domain.Note) []NoteResponse {
	out := make([]NoteResponse, len(notes))
	for i := range notes {
		out[i] = ToNoteResponse(&notes[i])
	}
	return out
}

package mapping

import (
	"github.com/ronaldocristover/arisan-backend/internal/core/domain"
	"github.com/ronaldocristover/arisan-backend/internal/models"
)

// ToModelNote converts a domain Note to a model Note
func ToModelNote(d domain.Note) models.Note {
	return models.Note{
		NoteID:      d.NoteID,
		Title:       d.Title,
		Content:     d.Content,
		Type:        d.Type,
		Priority:    d.Priority,
		Status:      d.Status,
		MemberID:    d.MemberID,
		PeriodID:    d.PeriodID,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainNote converts a model Note to a domain Note
func ToDomainNote(m models.Note) domain.Note {
	return domain.Note{
		NoteID:      m.NoteID,
		Title:       m.Title,
		Content:     m.Content,
		Type:        m.Type,
		Priority:    m.Priority,
		Status:      m.Status,
		MemberID:    m.MemberID,
		PeriodID:    m.PeriodID,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainNoteSlice converts a slice of model Notes to domain Notes
func ToDomainNoteSlice(ms []models.Note) []domain.Note {
	ds := make([]domain.Note, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainNote(m)
	}
	return ds
}

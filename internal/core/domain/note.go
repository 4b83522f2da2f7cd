package domain

// Note is a free-standing administrative annotation, optionally attached to a
// member and/or a period. Notes are never derived from other entities.
type Note struct {
	NoteID   string  `json:"noteID"`
	Title    string  `json:"title"`
	Content  string  `json:"content"`
	Type     string  `json:"type"`
	Priority string  `json:"priority"`
	Status   string  `json:"status"`
	MemberID *string `json:"memberID,omitempty"`
	PeriodID *string `json:"periodID,omitempty"`
	AuditFields
}

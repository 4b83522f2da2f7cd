package models

// Note maps the notes table.
type Note struct {
	NoteID   string  `db:"note_id"`
	Title    string  `db:"title"`
	Content  string  `db:"content"`
	Type     string  `db:"note_type"`
	Priority string  `db:"priority"`
	Status   string  `db:"status"`
	MemberID *string `db:"member_id"`
	PeriodID *string `db:"period_id"`
	AuditFields
}

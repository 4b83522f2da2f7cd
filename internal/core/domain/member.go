package domain

import "time"

// MemberStatus indicates whether a member takes part in new collection periods.
type MemberStatus string

const (
	MemberActive   MemberStatus = "active"
	MemberInactive MemberStatus = "inactive"
)

// Member represents a participant of the savings group.
// Members are never hard-deleted while payments or winners reference them.
type Member struct {
	MemberID       string       `json:"memberID"`
	FullName       string       `json:"fullName"`
	Nickname       string       `json:"nickname"`
	AltName        *string      `json:"altName,omitempty"`
	WhatsappNumber *string      `json:"whatsappNumber,omitempty"`
	Group          *string      `json:"group,omitempty"`
	Remarks        *string      `json:"remarks,omitempty"`
	JoinedDate     *time.Time   `json:"joinedDate,omitempty"`
	Status         MemberStatus `json:"status"`
	AuditFields
}

// IsActive reports whether the member can be enrolled into a period.
func (m *Member) IsActive() bool {
	return m.Status == MemberActive
}

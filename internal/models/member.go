package models

import "time"

// MemberStatus mirrors the member status column.
type MemberStatus string

const (
	MemberActive   MemberStatus = "active"
	MemberInactive MemberStatus = "inactive"
)

// Member maps the members table.
type Member struct {
	MemberID       string       `db:"member_id"`
	FullName       string       `db:"full_name"`
	Nickname       string       `db:"nickname"`
	AltName        *string      `db:"alt_name"`
	WhatsappNumber *string      `db:"whatsapp_number"`
	GroupName      *string      `db:"group_name"`
	Remarks        *string      `db:"remarks"`
	JoinedDate     *time.Time   `db:"joined_date"`
	Status         MemberStatus `db:"status"`
	AuditFields
}

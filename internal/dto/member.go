package dto

import (
	"time"

	"github.com/ronaldocristover/arisan-backend/internal/core/domain"
)

// CreateMemberRequest defines the payload for creating a member.
type CreateMemberRequest struct {
	FullName       string     `json:"fullName" binding:"required"`
	Nickname       string     `json:"nickname" binding:"required"`
	AltName        *string    `json:"altName"`
	WhatsappNumber *string    `json:"whatsappNumber"`
	Group          *string    `json:"group"`
	Remarks        *string    `json:"remarks"`
	JoinedDate     *time.Time `json:"joinedDate"`
	Status         *string    `json:"status" binding:"omitempty,oneof=active inactive"`
}

// UpdateMemberRequest defines the payload for updating a member. Nil fields
// are left untouched.
type UpdateMemberRequest struct {
	FullName       *string    `json:"fullName"`
	Nickname       *string    `json:"nickname"`
	AltName        *string    `json:"altName"`
	WhatsappNumber *string    `json:"whatsappNumber"`
	Group          *string    `json:"group"`
	Remarks        *string    `json:"remarks"`
	JoinedDate     *time.Time `json:"joinedDate"`
	Status         *string    `json:"status" binding:"omitempty,oneof=active inactive"`
}

// ListMembersParams carries member list filters.
type ListMembersParams struct {
	Page   int
	Limit  int
	Status string
	Group  string
	Search string
}

// MemberSummary is the short member shape embedded in other responses.
type MemberSummary struct {
	MemberID string  `json:"memberID"`
	FullName string  `json:"fullName"`
	Nickname string  `json:"nickname"`
	Group    *string `json:"group,omitempty"`
}

// MemberResponse defines the data returned for a member.
type MemberResponse struct {
	MemberID       string     `json:"memberID"`
	FullName       string     `json:"fullName"`
	Nickname       string     `json:"nickname"`
	AltName        *string    `json:"altName,omitempty"`
	WhatsappNumber *string    `json:"whatsappNumber,omitempty"`
	Group          *string    `json:"group,omitempty"`
	Remarks        *string    `json:"remarks,omitempty"`
	JoinedDate     *time.Time `json:"joinedDate,omitempty"`
	Status         string     `json:"status"`
	CreatedAt      time.Time  `json:"createdAt"`
}

// ListMembersResponse is the paginated member listing.
type ListMembersResponse struct {
	Members    []MemberResponse `json:"members"`
	Pagination Pagination       `json:"pagination"`
}

// ToMemberSummary converts a domain Member to its embedded summary shape.
func ToMemberSummary(m *domain.Member) MemberSummary {
	return MemberSummary{
		MemberID: m.MemberID,
		FullName: m.FullName,
		Nickname: m.Nickname,
		Group:    m.Group,
	}
}

// ToMemberResponse converts a domain Member to MemberResponse.
func ToMemberResponse(m *domain.Member) MemberResponse {
	return MemberResponse{
		MemberID:       m.MemberID,
		FullName:       m.FullName,
		Nickname:       m.Nickname,
		AltName:        m.AltName,
		WhatsappNumber: m.WhatsappNumber,
		Group:          m.Group,
		Remarks:        m.Remarks,
		JoinedDate:     m.JoinedDate,
		Status:         string(m.Status),
		CreatedAt:      m.CreatedAt,
	}
}

// ToMemberResponses converts a slice of domain Members to responses.
func ToMemberResponses(members []domain.Member) []MemberResponse {
	out := make([]MemberResponse, len(members))
	for i := range members {
		out[i] = ToMemberResponse(&members[i])
	}
	return out
}

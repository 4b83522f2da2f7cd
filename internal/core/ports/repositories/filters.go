package repositories

import (
	"time"

	"github.com/ronaldocristover/arisan-backend/internal/core/domain"
)

// PageFilter carries offset pagination bounds shared by list queries.
// Limit is clamped by the pagination helpers before it reaches a repository.
type PageFilter struct {
	Page  int
	Limit int
}

// Offset returns the row offset for the filter's page.
func (f PageFilter) Offset() int {
	if f.Page <= 1 {
		return 0
	}
	return (f.Page - 1) * f.Limit
}

// MemberFilter narrows member listings.
type MemberFilter struct {
	PageFilter
	Status domain.MemberStatus
	Group  string
	Search string
}

// PeriodFilter narrows period listings.
type PeriodFilter struct {
	PageFilter
	Year   int
	Status domain.PeriodStatus
	Search string
}

// PaymentFilter narrows payment listings.
type PaymentFilter struct {
	PageFilter
	MemberID      string
	PeriodID      string
	Status        domain.PaymentStatus
	PaymentMethod string
	StartDate     *time.Time
	EndDate       *time.Time
	Search        string
}

// WinnerFilter narrows winner listings.
type WinnerFilter struct {
	PageFilter
	PeriodID string
	MemberID string
	Search   string
}

// TransactionFilter narrows journal listings.
type TransactionFilter struct {
	PageFilter
	Type      domain.TransactionType
	Category  string
	StartDate *time.Time
	EndDate   *time.Time
	Search    string
}

// NoteFilter narrows note listings.
type NoteFilter struct {
	PageFilter
	Type     string
	Priority string
	Status   string
	MemberID string
	PeriodID string
	Search   string
}

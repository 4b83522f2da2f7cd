package dto

import (
	"time"

	"github.com/ronaldocristover/arisan-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePeriodRequest defines the payload for opening a new collection cycle.
// Principal and fee are pointers so that zero amounts survive the required check.
type CreatePeriodRequest struct {
	Month     int              `json:"month" binding:"required,min=1,max=12"`
	Year      int              `json:"year" binding:"required"`
	Principal *decimal.Decimal `json:"principal" binding:"required"`
	Fee       *decimal.Decimal `json:"fee" binding:"required"`
	StartDate *time.Time       `json:"startDate"`
	EndDate   *time.Time       `json:"endDate"`
}

// UpdatePeriodRequest defines the payload for administrative period edits.
type UpdatePeriodRequest struct {
	Month     *int             `json:"month" binding:"omitempty,min=1,max=12"`
	Year      *int             `json:"year"`
	Principal *decimal.Decimal `json:"principal"`
	Fee       *decimal.Decimal `json:"fee"`
	StartDate *time.Time       `json:"startDate"`
	EndDate   *time.Time       `json:"endDate"`
	Status    *string          `json:"status" binding:"omitempty,oneof=open closed"`
	IsCurrent *bool            `json:"isCurrent"`
}

// AddMembersToPeriodRequest enrolls extra members into an open period.
type AddMembersToPeriodRequest struct {
	MemberIDs []string `json:"memberIds" binding:"required,min=1"`
}

// ListPeriodsParams carries period list filters.
type ListPeriodsParams struct {
	Page   int
	Limit  int
	Year   int
	Status string
	Search string
}

// PeriodSummary is the short period shape embedded in other responses.
type PeriodSummary struct {
	PeriodID string `json:"periodID"`
	Month    int    `json:"month"`
	Year     int    `json:"year"`
}

// PeriodStats carries the derived collection figures for a period.
type PeriodStats struct {
	PaidCount            int64           `json:"paidCount"`
	UnpaidCount          int64           `json:"unpaidCount"`
	TotalMembers         int64           `json:"totalMembers"`
	CollectionPercentage float64         `json:"collectionPercentage"`
	TotalCollected       decimal.Decimal `json:"totalCollected"`
	OutstandingAmount    decimal.Decimal `json:"outstandingAmount"`
}

// PeriodResponse defines the data returned for a period.
type PeriodResponse struct {
	PeriodID  string          `json:"periodID"`
	Month     int             `json:"month"`
	Year      int             `json:"year"`
	Principal decimal.Decimal `json:"principal"`
	Fee       decimal.Decimal `json:"fee"`
	Status    string          `json:"status"`
	IsCurrent bool            `json:"isCurrent"`
	StartDate time.Time       `json:"startDate"`
	EndDate   *time.Time      `json:"endDate,omitempty"`
	Stats     *PeriodStats    `json:"stats,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
}

// AddMembersToPeriodResponse reports how many enrollments were created.
type AddMembersToPeriodResponse struct {
	Count  int            `json:"count"`
	Period PeriodResponse `json:"period"`
}

// ListPeriodsResponse is the paginated period listing.
type ListPeriodsResponse struct {
	Periods    []PeriodResponse `json:"periods"`
	Pagination Pagination       `json:"pagination"`
}

// ToPeriodSummary converts a domain Period to its embedded summary shape.
func ToPeriodSummary(p *domain.Period) PeriodSummary {
	return PeriodSummary{
		PeriodID: p.PeriodID,
		Month:    p.Month,
		Year:     p.Year,
	}
}

// ToPeriodResponse converts a domain Period to PeriodResponse.
func ToPeriodResponse(p *domain.Period) PeriodResponse {
	return PeriodResponse{
		PeriodID:  p.PeriodID,
		Month:     p.Month,
		Year:      p.Year,
		Principal: p.Principal,
		Fee:       p.Fee,
		Status:    string(p.Status),
		IsCurrent: p.IsCurrent,
		StartDate: p.StartDate,
		EndDate:   p.EndDate,
		CreatedAt: p.CreatedAt,
	}
}

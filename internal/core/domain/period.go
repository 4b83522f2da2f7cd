package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// PeriodStatus indicates the lifecycle state of a collection period.
type PeriodStatus string

const (
	PeriodOpen   PeriodStatus = "open"
	PeriodClosed PeriodStatus = "closed"
)

// Period represents one monthly collection cycle.
// At most one period may have IsCurrent=true at any instant; the repository
// enforces this with a partial unique index and a transactional flip.
type Period struct {
	PeriodID  string          `json:"periodID"`
	Month     int             `json:"month"`
	Year      int             `json:"year"`
	Principal decimal.Decimal `json:"principal"`
	Fee       decimal.Decimal `json:"fee"`
	Status    PeriodStatus    `json:"status"`
	IsCurrent bool            `json:"isCurrent"`
	StartDate time.Time       `json:"startDate"`
	EndDate   *time.Time      `json:"endDate,omitempty"`
	AuditFields
}

// AmountPerMember is the fixed obligation frozen into each payment at enrollment.
func (p *Period) AmountPerMember() decimal.Decimal {
	return p.Principal.Add(p.Fee)
}

// IsOpen reports whether the period still accepts enrollments and payments.
func (p *Period) IsOpen() bool {
	return p.Status == PeriodOpen
}

// Close transitions the period to closed. Closing an already closed period
// re-stamps the end date; callers that need stricter semantics check IsOpen first.
func (p *Period) Close(at time.Time, byUserID string) {
	p.Status = PeriodClosed
	p.IsCurrent = false
	p.EndDate = &at
	p.LastUpdatedAt = at
	p.LastUpdatedBy = byUserID
}

// Label renders the period as "month/year" for descriptions and logs.
func (p *Period) Label() string {
	return fmt.Sprintf("%d/%d", p.Month, p.Year)
}

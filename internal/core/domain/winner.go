package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// WinnerState is the prize distribution state derived from MoneyGivenDate.
type WinnerState string

const (
	WinnerSelected   WinnerState = "selected"
	WinnerMoneyGiven WinnerState = "money_given"
)

// Winner records the drawn member for a period. At most one winner exists per
// period; Amount is the full theoretical pot (sum of every payment in the
// period, paid or not), not just collected funds.
type Winner struct {
	WinnerID       string          `json:"winnerID"`
	MemberID       string          `json:"memberID"`
	PeriodID       string          `json:"periodID"`
	Amount         decimal.Decimal `json:"amount"`
	DrawDate       time.Time       `json:"drawDate"`
	MoneyGivenDate *time.Time      `json:"moneyGivenDate,omitempty"`
	Notes          *string         `json:"notes,omitempty"`
	AuditFields
}

// State reports the distribution state of the prize.
func (w *Winner) State() WinnerState {
	if w.MoneyGivenDate != nil {
		return WinnerMoneyGiven
	}
	return WinnerSelected
}

// MarkMoneyGiven stamps the distribution time. Calling it again only moves the
// stamp; the linked expense transaction stays unique per winner.
func (w *Winner) MarkMoneyGiven(at time.Time, byUserID string) {
	w.MoneyGivenDate = &at
	w.LastUpdatedAt = at
	w.LastUpdatedBy = byUserID
}

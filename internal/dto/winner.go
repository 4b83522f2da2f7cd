package dto

import (
	"time"

	"github.com/ronaldocristover/arisan-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SelectWinnerRequest draws a winner for a period. MemberID empty means a
// uniform random draw over the eligible pool.
type SelectWinnerRequest struct {
	PeriodID string  `json:"periodId" binding:"required"`
	MemberID *string `json:"memberId"`
	Notes    *string `json:"notes"`
}

// MarkMoneyGivenRequest stamps prize distribution on a winner.
type MarkMoneyGivenRequest struct {
	Notes *string `json:"notes"`
}

// ListWinnersParams carries winner list filters.
type ListWinnersParams struct {
	Page     int
	Limit    int
	PeriodID string
	MemberID string
	Search   string
}

// WinnerResponse defines the data returned for a winner.
type WinnerResponse struct {
	WinnerID       string          `json:"winnerID"`
	MemberID       string          `json:"memberID"`
	PeriodID       string          `json:"periodID"`
	Amount         decimal.Decimal `json:"amount"`
	DrawDate       time.Time       `json:"drawDate"`
	MoneyGivenDate *time.Time      `json:"moneyGivenDate,omitempty"`
	Notes          *string         `json:"notes,omitempty"`
	State          string          `json:"state"`
	Member         *MemberSummary  `json:"member,omitempty"`
	Period         *PeriodSummary  `json:"period,omitempty"`
}

// ListWinnersResponse is the paginated winner listing.
type ListWinnersResponse struct {
	Winners    []WinnerResponse `json:"winners"`
	Pagination Pagination       `json:"pagination"`
}

// ToWinnerResponse converts a domain Winner to WinnerResponse.
func ToWinnerResponse(w *domain.Winner) WinnerResponse {
	return WinnerResponse{
		WinnerID:       w.WinnerID,
		MemberID:       w.MemberID,
		PeriodID:       w.PeriodID,
		Amount:         w.Amount,
		DrawDate:       w.DrawDate,
		MoneyGivenDate: w.MoneyGivenDate,
		Notes:          w.Notes,
		State:          string(w.State()),
	}
}

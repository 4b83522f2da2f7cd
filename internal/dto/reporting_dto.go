package dto

import "github.com/shopspring/decimal"

// UnpaidMember is one outstanding obligation on the dashboard.
type UnpaidMember struct {
	MemberID       string          `json:"memberID"`
	MemberName     string          `json:"memberName"`
	Nickname       string          `json:"nickname"`
	Group          *string         `json:"group,omitempty"`
	WhatsappNumber *string         `json:"whatsappNumber,omitempty"`
	PaymentID      string          `json:"paymentID"`
	Amount         decimal.Decimal `json:"amount"`
}

// CurrentPeriodStats summarizes collection progress of the current period.
type CurrentPeriodStats struct {
	Period             PeriodResponse  `json:"period"`
	PaidCount          int             `json:"paidCount"`
	UnpaidCount        int             `json:"unpaidCount"`
	TotalMembers       int             `json:"totalMembers"`
	CollectionRate     float64         `json:"collectionRate"`
	TotalCollected     decimal.Decimal `json:"totalCollected"`
	TotalExpected      decimal.Decimal `json:"totalExpected"`
	OutstandingCount   int             `json:"outstandingPayments"`
	TotalFundAvailable decimal.Decimal `json:"totalFundAvailable"`
}

// DashboardResponse is the aggregate view served to the landing page.
type DashboardResponse struct {
	TotalActiveMembers int64               `json:"totalActiveMembers"`
	CurrentPeriod      *CurrentPeriodStats `json:"currentPeriodStats"`
	UnpaidMembers      []UnpaidMember      `json:"unpaidMembers"`
	RecentPayments     []PaymentResponse   `json:"recentPayments"`
	Summary            SummaryResponse     `json:"summary"`
}

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Winner maps the winners table. period_id is unique.
type Winner struct {
	WinnerID       string          `db:"winner_id"`
	MemberID       string          `db:"member_id"`
	PeriodID       string          `db:"period_id"`
	Amount         decimal.Decimal `db:"amount"`
	DrawDate       time.Time       `db:"draw_date"`
	MoneyGivenDate *time.Time      `db:"money_given_date"`
	Notes          *string         `db:"notes"`
	AuditFields
}

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PeriodStatus mirrors the period status column.
type PeriodStatus string

const (
	PeriodOpen   PeriodStatus = "open"
	PeriodClosed PeriodStatus = "closed"
)

// Period maps the periods table. (month, year) is unique; a partial unique
// index guarantees at most one row with is_current=true.
type Period struct {
	PeriodID  string          `db:"period_id"`
	Month     int             `db:"month"`
	Year      int             `db:"year"`
	Principal decimal.Decimal `db:"principal"`
	Fee       decimal.Decimal `db:"fee"`
	Status    PeriodStatus    `db:"status"`
	IsCurrent bool            `db:"is_current"`
	StartDate time.Time       `db:"start_date"`
	EndDate   *time.Time      `db:"end_date"`
	AuditFields
}

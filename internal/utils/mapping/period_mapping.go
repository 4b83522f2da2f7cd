package mapping

import (
	"github.com/ronaldocristover/arisan-backend/internal/core/domain"
	"github.com/ronaldocristover/arisan-backend/internal/models"
)

// ToModelPeriod converts a domain Period to a model Period
func ToModelPeriod(d domain.Period) models.Period {
	return models.Period{
		PeriodID:    d.PeriodID,
		Month:       d.Month,
		Year:        d.Year,
		Principal:   d.Principal,
		Fee:         d.Fee,
		Status:      models.PeriodStatus(d.Status),
		IsCurrent:   d.IsCurrent,
		StartDate:   d.StartDate,
		EndDate:     d.EndDate,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPeriod converts a model Period to a domain Period
func ToDomainPeriod(m models.Period) domain.Period {
	return domain.Period{
		PeriodID:    m.PeriodID,
		Month:       m.Month,
		Year:        m.Year,
		Principal:   m.Principal,
		Fee:         m.Fee,
		Status:      domain.PeriodStatus(m.Status),
		IsCurrent:   m.IsCurrent,
		StartDate:   m.StartDate,
		EndDate:     m.EndDate,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainPeriodSlice converts a slice of model Periods to domain Periods
func ToDomainPeriodSlice(ms []models.Period) []domain.Period {
	ds := make([]domain.Period, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPeriod(m)
	}
	return ds
}

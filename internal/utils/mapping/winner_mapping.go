package mapping

import (
	"github.com/ronaldocristover/arisan-backend/internal/core/domain"
	"github.com/ronaldocristover/arisan-backend/internal/models"
)

// ToModelWinner converts a domain Winner to a model Winner
func ToModelWinner(d domain.Winner) models.Winner {
	return models.Winner{
		WinnerID:       d.WinnerID,
		MemberID:       d.MemberID,
		PeriodID:       d.PeriodID,
		Amount:         d.Amount,
		DrawDate:       d.DrawDate,
		MoneyGivenDate: d.MoneyGivenDate,
		Notes:          d.Notes,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainWinner converts a model Winner to a domain Winner
func ToDomainWinner(m models.Winner) domain.Winner {
	return domain.Winner{
		WinnerID:       m.WinnerID,
		MemberID:       m.MemberID,
		PeriodID:       m.PeriodID,
		Amount:         m.Amount,
		DrawDate:       m.DrawDate,
		MoneyGivenDate: m.MoneyGivenDate,
		Notes:          m.Notes,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainWinnerSlice converts a slice of model Winners to domain Winners
func ToDomainWinnerSlice(ms []models.Winner) []domain.Winner {
	ds := make([]domain.Winner, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainWinner(m)
	}
	return ds
}

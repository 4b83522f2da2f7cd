package mapping

import (
	"github.com/ronaldocristover/arisan-backend/internal/core/domain"
	"github.com/ronaldocristover/arisan-backend/internal/models"
)

// ToModelPayment converts a domain Payment to a model Payment
func ToModelPayment(d domain.Payment) models.Payment {
	var method *string
	if d.PaymentMethod != nil {
		s := string(*d.PaymentMethod)
		method = &s
	}
	return models.Payment{
		PaymentID:     d.PaymentID,
		MemberID:      d.MemberID,
		PeriodID:      d.PeriodID,
		Amount:        d.Amount,
		Status:        models.PaymentStatus(d.Status),
		PaymentDate:   d.PaymentDate,
		PaymentMethod: method,
		Attachment:    d.Attachment,
		Notes:         d.Notes,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPayment converts a model Payment to a domain Payment
func ToDomainPayment(m models.Payment) domain.Payment {
	var method *domain.PaymentMethod
	if m.PaymentMethod != nil {
		pm := domain.PaymentMethod(*m.PaymentMethod)
		method = &pm
	}
	return domain.Payment{
		PaymentID:     m.PaymentID,
		MemberID:      m.MemberID,
		PeriodID:      m.PeriodID,
		Amount:        m.Amount,
		Status:        domain.PaymentStatus(m.Status),
		PaymentDate:   m.PaymentDate,
		PaymentMethod: method,
		Attachment:    m.Attachment,
		Notes:         m.Notes,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainPaymentSlice converts a slice of model Payments to domain Payments
func ToDomainPaymentSlice(ms []models.Payment) []domain.Payment {
	ds := make([]domain.Payment, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPayment(m)
	}
	return ds
}

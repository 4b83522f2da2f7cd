package mapping

import (
	"github.com/ronaldocristover/arisan-backend/internal/core/domain"
	"github.com/ronaldocristover/arisan-backend/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:   d.TransactionID,
		Type:            models.TransactionType(d.Type),
		Amount:          d.Amount,
		Category:        d.Category,
		Description:     d.Description,
		Notes:           d.Notes,
		TransactionDate: d.TransactionDate,
		PaymentID:       d.PaymentID,
		WinnerID:        d.WinnerID,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:   m.TransactionID,
		Type:            domain.TransactionType(m.Type),
		Amount:          m.Amount,
		Category:        m.Category,
		Description:     m.Description,
		Notes:           m.Notes,
		TransactionDate: m.TransactionDate,
		PaymentID:       m.PaymentID,
		WinnerID:        m.WinnerID,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTransactionSlice converts a slice of model Transactions to domain Transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}

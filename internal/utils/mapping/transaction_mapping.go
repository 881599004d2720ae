package mapping

import (
	"github.com/SscSPs/tallypro_backend/internal/core/domain"
	"github.com/SscSPs/tallypro_backend/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction.
// NoParty is stored as a NULL party_id. Seq is left for the database.
func ToModelTransaction(d domain.Transaction) models.Transaction {
	var partyID *string
	if id, ok := d.Party.ID(); ok {
		partyID = &id
	}
	return models.Transaction{
		TransactionID:   d.TransactionID,
		TransactionDate: d.Date,
		PartyID:         partyID,
		TransactionType: models.TransactionType(d.TransactionType),
		Amount:          d.Amount,
		Category:        d.Category,
		Note:            d.Note,
		BillURL:         d.BillURL,
		InvoiceNumber:   d.InvoiceNumber,
		CreatedAt:       d.CreatedAt,
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	party := domain.NoParty
	if m.PartyID != nil {
		party = domain.PartyRefOf(*m.PartyID)
	}
	return domain.Transaction{
		TransactionID:   m.TransactionID,
		Date:            m.TransactionDate.UTC(),
		Party:           party,
		TransactionType: domain.TransactionType(m.TransactionType),
		Amount:          m.Amount,
		Category:        m.Category,
		Note:            m.Note,
		BillURL:         m.BillURL,
		InvoiceNumber:   m.InvoiceNumber,
		CreatedAt:       m.CreatedAt,
	}
}

// ToDomainTransactionSlice converts a slice of model Transactions to a slice of domain Transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}

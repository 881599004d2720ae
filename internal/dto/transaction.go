package dto

import (
	"time"

	"github.com/SscSPs/tallypro_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to record a transaction.
type CreateTransactionRequest struct {
	Date            string                 `json:"date" binding:"omitempty,datetime=2006-01-02"` // Defaults to today
	PartyID         string                 `json:"partyID" binding:"omitempty,max=64"`           // Empty means no party
	TransactionType domain.TransactionType `json:"transactionType" binding:"required,oneof=CREDIT DEBIT"`
	Amount          decimal.Decimal        `json:"amount" swaggertype:"string"`
	Category        string                 `json:"category" binding:"omitempty,max=100"`
	Note            string                 `json:"note" binding:"omitempty,max=500"`
	BillURL         string                 `json:"billURL" binding:"omitempty,max=2048"`
	InvoiceNumber   string                 `json:"invoiceNumber" binding:"omitempty,max=64"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID   string                 `json:"transactionID"`
	Date            string                 `json:"date"`
	PartyID         *string                `json:"partyID"`
	TransactionType domain.TransactionType `json:"transactionType"`
	Amount          decimal.Decimal        `json:"amount"`
	Category        string                 `json:"category"`
	Note            string                 `json:"note"`
	BillURL         string                 `json:"billURL,omitempty"`
	InvoiceNumber   string                 `json:"invoiceNumber,omitempty"`
	CreatedAt       time.Time              `json:"createdAt"`
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	Limit     int     `form:"limit,default=20" binding:"min=1,max=100"`
	NextToken *string `form:"nextToken"`
}

// ListTransactionsResponse wraps a page of transactions with the token for the next page.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// ToTransactionResponse converts a domain.Transaction to a TransactionResponse DTO
func ToTransactionResponse(txn domain.Transaction) TransactionResponse {
	var partyID *string
	if id, ok := txn.Party.ID(); ok {
		partyID = &id
	}
	return TransactionResponse{
		TransactionID:   txn.TransactionID,
		Date:            txn.DateString(),
		PartyID:         partyID,
		TransactionType: txn.TransactionType,
		Amount:          txn.Amount,
		Category:        txn.Category,
		Note:            txn.Note,
		BillURL:         txn.BillURL,
		InvoiceNumber:   txn.InvoiceNumber,
		CreatedAt:       txn.CreatedAt,
	}
}

// ToListTransactionResponse converts a slice of domain.Transaction to TransactionResponse DTOs
func ToListTransactionResponse(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		res[i] = ToTransactionResponse(txn)
	}
	return res
}

package domain

import (
	"strings"
	"time"

	"github.com/SscSPs/tallypro_backend/internal/apperrors"
	"github.com/shopspring/decimal"
)

// TransactionType indicates the cash direction of a transaction.
type TransactionType string

const (
	// Credit is cash coming into the business.
	Credit TransactionType = "CREDIT"
	// Debit is cash going out of the business.
	Debit TransactionType = "DEBIT"
)

// IsValid reports whether t is one of the known transaction types.
func (t TransactionType) IsValid() bool {
	return t == Credit || t == Debit
}

// Transaction represents a single cash movement, optionally against a party.
type Transaction struct {
	TransactionID   string          `json:"transactionID"`
	Date            time.Time       `json:"date"`
	Party           PartyRef        `json:"partyID"`
	TransactionType TransactionType `json:"transactionType"`
	Amount          decimal.Decimal `json:"amount"` // Always a non-negative magnitude
	Category        string          `json:"category"`
	Note            string          `json:"note"`
	BillURL         string          `json:"billURL,omitempty"`
	InvoiceNumber   string          `json:"invoiceNumber,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// DateString returns the transaction date as YYYY-MM-DD.
func (t Transaction) DateString() string {
	return t.Date.Format(DateLayout)
}

// Validate checks the transaction invariants.
func (t Transaction) Validate() error {
	if strings.TrimSpace(t.TransactionID) == "" {
		return apperrors.NewValidationError("transaction ID is required")
	}
	if t.Date.IsZero() {
		return apperrors.NewValidationError("transaction date is required")
	}
	if !t.TransactionType.IsValid() {
		return apperrors.NewValidationError("unknown transaction type '%s'", t.TransactionType)
	}
	if t.Amount.IsNegative() {
		return apperrors.NewValidationError("amount must be non-negative, got %s", t.Amount.String())
	}
	return nil
}

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates whether a transaction is cash in (CREDIT) or out (DEBIT).
type TransactionType string

const (
	Debit  TransactionType = "DEBIT"
	Credit TransactionType = "CREDIT"
)

// Transaction is the row stored in the transactions table.
// Seq is assigned by the database and preserves insertion order.
type Transaction struct {
	Seq             int64           `db:"seq"`
	TransactionID   string          `db:"transaction_id"`
	TransactionDate time.Time       `db:"transaction_date"`
	PartyID         *string         `db:"party_id"` // Nullable, NULL for self transactions
	TransactionType TransactionType `db:"transaction_type"`
	Amount          decimal.Decimal `db:"amount"`
	Category        string          `db:"category"`
	Note            string          `db:"note"`
	BillURL         string          `db:"bill_url"`
	InvoiceNumber   string          `db:"invoice_number"`
	CreatedAt       time.Time       `db:"created_at"`
}

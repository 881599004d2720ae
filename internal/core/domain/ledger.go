package domain

import "github.com/shopspring/decimal"

// LedgerFilter narrows the transactions that make it into a ledger.
type LedgerFilter struct {
	// SearchText matches category or resolved party name, case-insensitively.
	SearchText string
	// DatePrefix keeps transactions whose YYYY-MM-DD date starts with it ("2025", "2025-01").
	DatePrefix string
}

// LedgerRow is one line of the daybook with its running balance.
type LedgerRow struct {
	Transaction
	PartyName string          `json:"partyName"`
	Credit    decimal.Decimal `json:"credit"`
	Debit     decimal.Decimal `json:"debit"`
	Balance   decimal.Decimal `json:"balance"`
}

package dto

import (
	"github.com/SscSPs/tallypro_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DaybookParams defines query parameters for the daybook.
type DaybookParams struct {
	Search string `form:"search" binding:"omitempty,max=100"`
	Date   string `form:"date" binding:"omitempty,max=10"` // Date prefix: "2025", "2025-01" or "2025-01-05"
}

// ToLedgerFilter converts the query parameters to a ledger filter.
func (p DaybookParams) ToLedgerFilter() domain.LedgerFilter {
	return domain.LedgerFilter{SearchText: p.Search, DatePrefix: p.Date}
}

// LedgerRowResponse is one daybook line.
type LedgerRowResponse struct {
	TransactionID   string                 `json:"transactionID"`
	Date            string                 `json:"date"`
	PartyID         *string                `json:"partyID"`
	PartyName       string                 `json:"partyName"`
	TransactionType domain.TransactionType `json:"transactionType"`
	Category        string                 `json:"category"`
	Note            string                 `json:"note"`
	BillURL         string                 `json:"billURL,omitempty"`
	Credit          decimal.Decimal        `json:"credit"`
	Debit           decimal.Decimal        `json:"debit"`
	Balance         decimal.Decimal        `json:"balance"`
}

// DaybookResponse is the running-balance ledger with its totals.
type DaybookResponse struct {
	Rows           []LedgerRowResponse `json:"rows"`
	TotalCredit    decimal.Decimal     `json:"totalCredit"`
	TotalDebit     decimal.Decimal     `json:"totalDebit"`
	ClosingBalance decimal.Decimal     `json:"closingBalance"`
}

// ToDaybookResponse converts ledger rows to the daybook DTO.
func ToDaybookResponse(rows []domain.LedgerRow) DaybookResponse {
	resp := DaybookResponse{
		Rows:           make([]LedgerRowResponse, len(rows)),
		TotalCredit:    decimal.Zero,
		TotalDebit:     decimal.Zero,
		ClosingBalance: decimal.Zero,
	}
	for i, row := range rows {
		txn := ToTransactionResponse(row.Transaction)
		resp.Rows[i] = LedgerRowResponse{
			TransactionID:   txn.TransactionID,
			Date:            txn.Date,
			PartyID:         txn.PartyID,
			PartyName:       row.PartyName,
			TransactionType: txn.TransactionType,
			Category:        txn.Category,
			Note:            txn.Note,
			BillURL:         txn.BillURL,
			Credit:          row.Credit,
			Debit:           row.Debit,
			Balance:         row.Balance,
		}
		resp.TotalCredit = resp.TotalCredit.Add(row.Credit)
		resp.TotalDebit = resp.TotalDebit.Add(row.Debit)
	}
	if len(rows) > 0 {
		resp.ClosingBalance = rows[len(rows)-1].Balance
	}
	return resp
}

package accounting

import (
	"github.com/SscSPs/tallypro_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// countable reports whether a transaction may take part in any computation.
// Records with an unknown type or a negative amount are skipped everywhere,
// so a malformed record can never skew one report but not another.
func countable(txn domain.Transaction) bool {
	return txn.TransactionType.IsValid() && !txn.Amount.IsNegative()
}

// SplitAmount returns the credit and debit columns for a transaction.
// Exactly one of them carries the amount; the other is zero.
func SplitAmount(txn domain.Transaction) (credit, debit decimal.Decimal) {
	if !countable(txn) {
		return decimal.Zero, decimal.Zero
	}
	if txn.TransactionType == domain.Credit {
		return txn.Amount, decimal.Zero
	}
	return decimal.Zero, txn.Amount
}

// CalculateSignedAmount applies the cash-flow sign to a transaction amount:
// CREDIT (cash in) is positive, DEBIT (cash out) is negative.
func CalculateSignedAmount(txn domain.Transaction) decimal.Decimal {
	credit, debit := SplitAmount(txn)
	return credit.Sub(debit)
}

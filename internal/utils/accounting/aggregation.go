package accounting

import (
	"sort"
	"time"

	"github.com/SscSPs/tallypro_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ComputeDashboardStats sums cash in and cash out over the given transactions
// and counts low-stock products. Callers pre-filter by date if they need to.
func ComputeDashboardStats(transactions []domain.Transaction, products []domain.Product) domain.DashboardStats {
	stats := domain.DashboardStats{
		CashIn:  decimal.Zero,
		CashOut: decimal.Zero,
	}
	for _, txn := range transactions {
		credit, debit := SplitAmount(txn)
		stats.CashIn = stats.CashIn.Add(credit)
		stats.CashOut = stats.CashOut.Add(debit)
	}
	stats.Balance = stats.CashIn.Sub(stats.CashOut)

	for _, p := range products {
		if p.IsLowStock() {
			stats.LowStockCount++
		}
	}
	return stats
}

// monthKey identifies a calendar month.
type monthKey struct {
	year  int
	month time.Month
}

func (k monthKey) before(o monthKey) bool {
	if k.year != o.year {
		return k.year < o.year
	}
	return k.month < o.month
}

// ComputeMonthlyBuckets groups transactions by calendar month. Months without
// transactions are omitted, and buckets come out in chronological order
// regardless of input order.
func ComputeMonthlyBuckets(transactions []domain.Transaction) []domain.MonthlyBucket {
	buckets := make(map[monthKey]*domain.MonthlyBucket)
	keys := make([]monthKey, 0)

	for _, txn := range transactions {
		if !countable(txn) {
			continue
		}
		key := monthKey{year: txn.Date.Year(), month: txn.Date.Month()}
		b, ok := buckets[key]
		if !ok {
			b = &domain.MonthlyBucket{
				Period:   txn.Date.Format("2006-01"),
				Label:    txn.Date.Format("Jan"),
				Revenue:  decimal.Zero,
				Expenses: decimal.Zero,
			}
			buckets[key] = b
			keys = append(keys, key)
		}
		credit, debit := SplitAmount(txn)
		b.Revenue = b.Revenue.Add(credit)
		b.Expenses = b.Expenses.Add(debit)
	}

	sort.Slice(keys, func(i, j int) bool { return keys[i].before(keys[j]) })

	result := make([]domain.MonthlyBucket, 0, len(keys))
	for _, k := range keys {
		result = append(result, *buckets[k])
	}
	return result
}

// ComputeExpenseDistribution sums DEBIT amounts per category. Categories are
// ordered by total descending, then by name, so the output is deterministic.
func ComputeExpenseDistribution(transactions []domain.Transaction) []domain.CategoryTotal {
	totals := make(map[string]decimal.Decimal)
	for _, txn := range transactions {
		if !countable(txn) || txn.TransactionType != domain.Debit {
			continue
		}
		totals[txn.Category] = totals[txn.Category].Add(txn.Amount)
	}

	result := make([]domain.CategoryTotal, 0, len(totals))
	for category, total := range totals {
		result = append(result, domain.CategoryTotal{Category: category, Total: total})
	}
	sort.Slice(result, func(i, j int) bool {
		if c := result[i].Total.Cmp(result[j].Total); c != 0 {
			return c > 0
		}
		return result[i].Category < result[j].Category
	})
	return result
}

// ComputeRevenueByParty sums CREDIT amounts per party. Parties without any
// revenue are left out; the rest keep the order of the parties slice.
func ComputeRevenueByParty(transactions []domain.Transaction, parties []domain.Party) []domain.PartyRevenue {
	totals := make(map[string]decimal.Decimal)
	for _, txn := range transactions {
		if !countable(txn) || txn.TransactionType != domain.Credit {
			continue
		}
		if id, ok := txn.Party.ID(); ok {
			totals[id] = totals[id].Add(txn.Amount)
		}
	}

	result := make([]domain.PartyRevenue, 0)
	for _, p := range parties {
		total := totals[p.PartyID]
		if !total.IsPositive() {
			continue
		}
		result = append(result, domain.PartyRevenue{PartyID: p.PartyID, Name: p.Name, Total: total})
	}
	return result
}

// ComputePartyBalance derives the current balance of a party from its opening
// balance and its transactions. Cash paid out to the party (DEBIT) raises what
// they owe; cash received from them (CREDIT) lowers it.
func ComputePartyBalance(party domain.Party, transactions []domain.Transaction) decimal.Decimal {
	balance := party.OpeningBalance
	for _, txn := range transactions {
		if !txn.Party.Refers(party.PartyID) {
			continue
		}
		balance = balance.Sub(CalculateSignedAmount(txn))
	}
	return balance
}

// ComputePartyBalances derives balances for every party in one pass.
func ComputePartyBalances(parties []domain.Party, transactions []domain.Transaction) []domain.PartyBalance {
	movement := make(map[string]decimal.Decimal, len(parties))
	for _, txn := range transactions {
		if id, ok := txn.Party.ID(); ok {
			movement[id] = movement[id].Sub(CalculateSignedAmount(txn))
		}
	}

	result := make([]domain.PartyBalance, 0, len(parties))
	for _, p := range parties {
		result = append(result, domain.PartyBalance{
			Party:   p,
			Balance: p.OpeningBalance.Add(movement[p.PartyID]),
		})
	}
	return result
}

// ComputePartyTotals sums positive balances into ToGet and the magnitude of
// negative balances into ToGive.
func ComputePartyTotals(balances []domain.PartyBalance) domain.PartyTotals {
	totals := domain.PartyTotals{ToGet: decimal.Zero, ToGive: decimal.Zero}
	for _, b := range balances {
		switch {
		case b.Balance.IsPositive():
			totals.ToGet = totals.ToGet.Add(b.Balance)
		case b.Balance.IsNegative():
			totals.ToGive = totals.ToGive.Add(b.Balance.Abs())
		}
	}
	return totals
}

// RecentTransactions returns up to n transactions, newest date first.
// Equal dates keep reverse input order, so the latest recorded comes first.
func RecentTransactions(transactions []domain.Transaction, n int) []domain.Transaction {
	if n <= 0 {
		return []domain.Transaction{}
	}
	recent := make([]domain.Transaction, 0, len(transactions))
	for i := len(transactions) - 1; i >= 0; i-- {
		if countable(transactions[i]) {
			recent = append(recent, transactions[i])
		}
	}
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].Date.After(recent[j].Date)
	})
	if len(recent) > n {
		recent = recent[:n]
	}
	return recent
}

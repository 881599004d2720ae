package accounting_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/SscSPs/tallypro_backend/internal/core/domain"
	"github.com/SscSPs/tallypro_backend/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildLedger_RunningBalance(t *testing.T) {
	rows := accounting.BuildLedger(sampleTransactions(), sampleParties(), domain.LedgerFilter{})

	require.Len(t, rows, 5)
	wantBalances := []int64{4500, 2300, 800, 4000, 3200}
	for i, want := range wantBalances {
		assert.True(t, dec(want).Equal(rows[i].Balance), "row %d balance: got %s want %d", i, rows[i].Balance, want)
	}

	assert.True(t, dec(4500).Equal(rows[0].Credit))
	assert.True(t, rows[0].Debit.IsZero())
	assert.True(t, dec(2200).Equal(rows[1].Debit))
	assert.True(t, rows[1].Credit.IsZero())
}

func TestBuildLedger_SortsByDate(t *testing.T) {
	txns := []domain.Transaction{
		txn("late", domain.Credit, 100, "2025-03-01", "Sales", ""),
		txn("early", domain.Debit, 40, "2025-01-01", "Rent", ""),
		txn("mid", domain.Credit, 10, "2025-02-01", "Sales", ""),
	}

	rows := accounting.BuildLedger(txns, nil, domain.LedgerFilter{})

	require.Len(t, rows, 3)
	assert.Equal(t, "early", rows[0].TransactionID)
	assert.Equal(t, "mid", rows[1].TransactionID)
	assert.Equal(t, "late", rows[2].TransactionID)
	assert.True(t, dec(-40).Equal(rows[0].Balance))
	assert.True(t, dec(70).Equal(rows[2].Balance))
	// Input untouched.
	assert.Equal(t, "late", txns[0].TransactionID)
}

func TestBuildLedger_TieBreakKeepsInputOrder(t *testing.T) {
	txns := []domain.Transaction{
		txn("a", domain.Debit, 100, "2025-01-05", "Rent", ""),
		txn("b", domain.Credit, 50, "2025-01-05", "Sales", ""),
		txn("c", domain.Credit, 70, "2025-01-01", "Sales", ""),
		txn("d", domain.Debit, 5, "2025-01-05", "Tea", ""),
	}

	rows := accounting.BuildLedger(txns, nil, domain.LedgerFilter{})

	ids := make([]string, len(rows))
	for i, r := range rows {
		ids[i] = r.TransactionID
	}
	assert.Equal(t, []string{"c", "a", "b", "d"}, ids)
}

func TestBuildLedger_Filters(t *testing.T) {
	parties := sampleParties()
	txns := append(sampleTransactions(), txn("t6", domain.Credit, 900, "2025-02-02", "Sales", "p1"))

	tests := []struct {
		name    string
		filter  domain.LedgerFilter
		wantIDs []string
	}{
		{name: "category match is case-insensitive", filter: domain.LedgerFilter{SearchText: "RENT"}, wantIDs: []string{"t3"}},
		{name: "party name match", filter: domain.LedgerFilter{SearchText: "ramesh"}, wantIDs: []string{"t1", "t6"}},
		{name: "self label is searchable", filter: domain.LedgerFilter{SearchText: "self"}, wantIDs: []string{"t3", "t5"}},
		{name: "year-month prefix", filter: domain.LedgerFilter{DatePrefix: "2025-02"}, wantIDs: []string{"t6"}},
		{name: "full date prefix", filter: domain.LedgerFilter{DatePrefix: "2025-01-10"}, wantIDs: []string{"t3"}},
		{name: "both filters", filter: domain.LedgerFilter{SearchText: "sales", DatePrefix: "2025-01"}, wantIDs: []string{"t1", "t4"}},
		{name: "no match", filter: domain.LedgerFilter{SearchText: "payroll"}, wantIDs: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := accounting.BuildLedger(txns, parties, tt.filter)
			ids := make([]string, 0, len(rows))
			for _, r := range rows {
				ids = append(ids, r.TransactionID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestBuildLedger_FilteredBalanceStartsAtZero(t *testing.T) {
	rows := accounting.BuildLedger(sampleTransactions(), sampleParties(), domain.LedgerFilter{SearchText: "sales"})

	require.Len(t, rows, 2)
	assert.True(t, dec(4500).Equal(rows[0].Balance))
	assert.True(t, dec(7700).Equal(rows[1].Balance))
}

func TestBuildLedger_PartyNameResolution(t *testing.T) {
	txns := []domain.Transaction{
		txn("t1", domain.Credit, 10, "2025-01-01", "Sales", "p1"),
		txn("t2", domain.Credit, 10, "2025-01-02", "Sales", "ghost"),
		txn("t3", domain.Debit, 10, "2025-01-03", "Rent", ""),
	}

	rows := accounting.BuildLedger(txns, sampleParties(), domain.LedgerFilter{})

	require.Len(t, rows, 3)
	assert.Equal(t, "Ramesh Traders", rows[0].PartyName)
	assert.Equal(t, domain.UnknownPartyLabel, rows[1].PartyName)
	assert.Equal(t, domain.SelfPartyLabel, rows[2].PartyName)
}

func TestBuildLedger_Empty(t *testing.T) {
	rows := accounting.BuildLedger(nil, nil, domain.LedgerFilter{})
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestBuildLedger_SkipsMalformed(t *testing.T) {
	txns := []domain.Transaction{
		txn("ok", domain.Credit, 10, "2025-01-01", "Sales", ""),
		txn("neg", domain.Credit, -10, "2025-01-02", "Sales", ""),
		txn("bad", "TRANSFER", 10, "2025-01-03", "Sales", ""),
	}

	rows := accounting.BuildLedger(txns, nil, domain.LedgerFilter{})

	require.Len(t, rows, 1)
	assert.Equal(t, "ok", rows[0].TransactionID)
}

func TestBuildLedger_Deterministic(t *testing.T) {
	txns := sampleTransactions()
	parties := sampleParties()
	filter := domain.LedgerFilter{SearchText: "s"}

	assert.Equal(t, accounting.BuildLedger(txns, parties, filter), accounting.BuildLedger(txns, parties, filter))
}

func TestBuildLedger_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	categories := []string{"Sales", "Rent", "Purchase", "Salary"}

	for run := 0; run < 50; run++ {
		n := rng.Intn(40)
		txns := make([]domain.Transaction, 0, n)
		sum := decimal.Zero
		for i := 0; i < n; i++ {
			typ := domain.Credit
			if rng.Intn(2) == 0 {
				typ = domain.Debit
			}
			amount := int64(rng.Intn(10000))
			day := fmt.Sprintf("2025-%02d-%02d", rng.Intn(12)+1, rng.Intn(28)+1)
			txns = append(txns, txn(fmt.Sprintf("t%d", i), typ, amount, day, categories[rng.Intn(len(categories))], ""))
			if typ == domain.Credit {
				sum = sum.Add(dec(amount))
			} else {
				sum = sum.Sub(dec(amount))
			}
		}

		rows := accounting.BuildLedger(txns, nil, domain.LedgerFilter{})

		require.Len(t, rows, n)
		for i := 1; i < len(rows); i++ {
			assert.False(t, rows[i].Date.Before(rows[i-1].Date), "rows must be non-decreasing in date")
		}
		if n > 0 {
			assert.True(t, sum.Equal(rows[n-1].Balance), "final balance %s != %s", rows[n-1].Balance, sum)
		}
	}
}

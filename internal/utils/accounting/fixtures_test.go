package accounting_test

import (
	"time"

	"github.com/SscSPs/tallypro_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

func date(s string) time.Time {
	d, err := domain.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func txn(id string, typ domain.TransactionType, amount int64, day, category, partyID string) domain.Transaction {
	return domain.Transaction{
		TransactionID:   id,
		Date:            date(day),
		Party:           domain.PartyRefOf(partyID),
		TransactionType: typ,
		Amount:          decimal.NewFromInt(amount),
		Category:        category,
	}
}

func sampleParties() []domain.Party {
	return []domain.Party{
		{PartyID: "p1", Name: "Ramesh Traders", OpeningBalance: decimal.NewFromInt(12500)},
		{PartyID: "p2", Name: "Suresh Suppliers", OpeningBalance: decimal.NewFromInt(-8200)},
		{PartyID: "p3", Name: "Walk-in Customer", OpeningBalance: decimal.Zero},
	}
}

func sampleTransactions() []domain.Transaction {
	return []domain.Transaction{
		txn("t1", domain.Credit, 4500, "2025-01-05", "Sales", "p1"),
		txn("t2", domain.Debit, 2200, "2025-01-07", "Purchase", "p2"),
		txn("t3", domain.Debit, 1500, "2025-01-10", "Rent", ""),
		txn("t4", domain.Credit, 3200, "2025-01-12", "Sales", "p3"),
		txn("t5", domain.Debit, 800, "2025-01-15", "Electricity", ""),
	}
}

func product(id string, qty, low, purchase, sale int64) domain.Product {
	return domain.Product{
		ProductID:     id,
		Name:          "Product " + id,
		SKU:           "SKU-" + id,
		Unit:          domain.UnitCount,
		Quantity:      decimal.NewFromInt(qty),
		LowStockLevel: decimal.NewFromInt(low),
		PurchasePrice: decimal.NewFromInt(purchase),
		SalePrice:     decimal.NewFromInt(sale),
	}
}

func sampleProducts() []domain.Product {
	return []domain.Product{
		product("pr1", 120, 20, 35, 50),
		product("pr2", 15, 25, 5, 10),
		product("pr3", 60, 10, 220, 280),
	}
}

func dec(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

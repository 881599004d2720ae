package memory

import (
	"time"

	"github.com/SscSPs/tallypro_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Fixtures is a set of entities to seed a store with.
type Fixtures struct {
	Parties      []domain.Party
	Transactions []domain.Transaction
	Products     []domain.Product
}

// DefaultFixtures returns the demo shop: three parties, three products and
// five January 2025 transactions. now stamps the audit fields.
func DefaultFixtures(now time.Time) Fixtures {
	audit := domain.AuditFields{CreatedAt: now, LastUpdatedAt: now}
	party := func(id, name, phone string, typ domain.PartyType, opening int64) domain.Party {
		return domain.Party{
			PartyID:        id,
			Name:           name,
			Type:           typ,
			Phone:          phone,
			OpeningBalance: decimal.NewFromInt(opening),
			AuditFields:    audit,
		}
	}
	product := func(id, name, sku string, qty, low, purchase, sale int64) domain.Product {
		return domain.Product{
			ProductID:     id,
			Name:          name,
			SKU:           sku,
			Unit:          domain.UnitCount,
			Quantity:      decimal.NewFromInt(qty),
			LowStockLevel: decimal.NewFromInt(low),
			PurchasePrice: decimal.NewFromInt(purchase),
			SalePrice:     decimal.NewFromInt(sale),
			AuditFields:   audit,
		}
	}
	txn := func(id string, typ domain.TransactionType, amount int64, day int, category, partyID, note string) domain.Transaction {
		return domain.Transaction{
			TransactionID:   id,
			Date:            time.Date(2025, time.January, day, 0, 0, 0, 0, time.UTC),
			Party:           domain.PartyRefOf(partyID),
			TransactionType: typ,
			Amount:          decimal.NewFromInt(amount),
			Category:        category,
			Note:            note,
			CreatedAt:       now,
		}
	}

	return Fixtures{
		Parties: []domain.Party{
			party("p1", "Ramesh Traders", "9876543210", domain.PartyCustomer, 12500),
			party("p2", "Suresh Suppliers", "9123456789", domain.PartySupplier, -8200),
			party("p3", "Walk-in Customer", "", domain.PartyCustomer, 0),
		},
		Products: []domain.Product{
			product("pr1", "Notebook A4", "NB-A4-001", 120, 20, 35, 50),
			product("pr2", "Ball Pen Blue", "BP-BL-010", 15, 25, 5, 10),
			product("pr3", "Printer Paper (500)", "PP-500", 60, 10, 220, 280),
		},
		Transactions: []domain.Transaction{
			txn("t1", domain.Credit, 4500, 5, "Sales", "p1", "Notebook sale"),
			txn("t2", domain.Debit, 2200, 7, "Purchase", "p2", "Stationery purchase"),
			txn("t3", domain.Debit, 1500, 10, "Rent", "", "Shop rent"),
			txn("t4", domain.Credit, 3200, 12, "Sales", "p3", "Walk-in sale"),
			txn("t5", domain.Debit, 800, 15, "Electricity", "", "Electric bill"),
		},
	}
}

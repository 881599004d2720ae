package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/tallypro_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/tallypro_backend/internal/core/ports/repositories"
	"github.com/SscSPs/tallypro_backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock PartyRepository ---
type MockPartyRepository struct {
	mock.Mock
}

func (m *MockPartyRepository) FindPartyByID(ctx context.Context, partyID string) (*domain.Party, error) {
	args := m.Called(ctx, partyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Party), args.Error(1)
}

func (m *MockPartyRepository) ListParties(ctx context.Context) ([]domain.Party, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Party), args.Error(1)
}

func (m *MockPartyRepository) SaveParty(ctx context.Context, party domain.Party) error {
	return m.Called(ctx, party).Error(0)
}

func (m *MockPartyRepository) UpdateParty(ctx context.Context, party domain.Party) error {
	return m.Called(ctx, party).Error(0)
}

func (m *MockPartyRepository) DeleteParty(ctx context.Context, partyID string) error {
	return m.Called(ctx, partyID).Error(0)
}

var _ portsrepo.PartyRepositoryFacade = (*MockPartyRepository)(nil)

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactionsPage(ctx context.Context, limit int, after *portsrepo.TransactionCursor) ([]domain.Transaction, error) {
	args := m.Called(ctx, limit, after)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	return m.Called(ctx, txn).Error(0)
}

var _ portsrepo.TransactionRepositoryFacade = (*MockTransactionRepository)(nil)

// --- Mock ProductRepository ---
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepository) FindProductBySKU(ctx context.Context, sku string) (*domain.Product, error) {
	args := m.Called(ctx, sku)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *MockProductRepository) ApplyStockMovement(ctx context.Context, movement domain.StockMovement) (decimal.Decimal, error) {
	args := m.Called(ctx, movement)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockProductRepository) ListStockMovements(ctx context.Context, productID string) ([]domain.StockMovement, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StockMovement), args.Error(1)
}

var _ portsrepo.ProductRepositoryFacade = (*MockProductRepository)(nil)

// --- Mock ReportCache ---
type MockReportCache struct {
	mock.Mock
}

func (m *MockReportCache) Revision(ctx context.Context) (uint64, error) {
	args := m.Called(ctx)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *MockReportCache) Get(ctx context.Context, revision uint64, key string) ([]byte, bool, error) {
	args := m.Called(ctx, revision, key)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).([]byte), args.Bool(1), args.Error(2)
}

func (m *MockReportCache) Set(ctx context.Context, revision uint64, key string, value []byte) error {
	return m.Called(ctx, revision, key, value).Error(0)
}

func (m *MockReportCache) Invalidate(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

var _ portsrepo.ReportCache = (*MockReportCache)(nil)

// --- Fixtures ---

var fixedNow = time.Date(2025, 2, 3, 14, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func day(s string) time.Time {
	d, err := domain.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func sampleParties() []domain.Party {
	return []domain.Party{
		{PartyID: "p1", Name: "Ramesh Traders", Type: domain.PartyCustomer, Phone: "9876543210", OpeningBalance: decimal.NewFromInt(12500)},
		{PartyID: "p2", Name: "Suresh Suppliers", Type: domain.PartySupplier, Phone: "9123456789", OpeningBalance: decimal.NewFromInt(-8200)},
		{PartyID: "p3", Name: "Walk-in Customer", Type: domain.PartyCustomer, OpeningBalance: decimal.Zero},
	}
}

func sampleTransactions() []domain.Transaction {
	txn := func(id string, typ domain.TransactionType, amount int64, date, category, partyID string) domain.Transaction {
		return domain.Transaction{
			TransactionID:   id,
			Date:            day(date),
			Party:           domain.PartyRefOf(partyID),
			TransactionType: typ,
			Amount:          decimal.NewFromInt(amount),
			Category:        category,
		}
	}
	return []domain.Transaction{
		txn("t1", domain.Credit, 4500, "2025-01-05", "Sales", "p1"),
		txn("t2", domain.Debit, 2200, "2025-01-07", "Purchase", "p2"),
		txn("t3", domain.Debit, 1500, "2025-01-10", "Rent", ""),
		txn("t4", domain.Credit, 3200, "2025-01-12", "Sales", "p3"),
		txn("t5", domain.Debit, 800, "2025-01-15", "Electricity", ""),
	}
}

func sampleProducts() []domain.Product {
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
		}
	}
	return []domain.Product{
		product("pr1", "Notebook A4", "NB-A4-001", 120, 20, 35, 50),
		product("pr2", "Ball Pen Blue", "BP-BL-010", 15, 25, 5, 10),
		product("pr3", "Printer Paper (500)", "PP-500", 60, 10, 220, 280),
	}
}

func dtoDebit(amount int64) dto.CreateTransactionRequest {
	return dto.CreateTransactionRequest{
		TransactionType: domain.Debit,
		Amount:          decimal.NewFromInt(amount),
		Category:        "Misc",
	}
}

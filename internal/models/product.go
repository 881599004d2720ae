package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is the row stored in the products table.
type Product struct {
	ProductID     string          `db:"product_id"`
	Name          string          `db:"name"`
	SKU           string          `db:"sku"`
	Unit          string          `db:"unit"`
	Quantity      decimal.Decimal `db:"quantity"`
	LowStockLevel decimal.Decimal `db:"low_stock_level"`
	PurchasePrice decimal.Decimal `db:"purchase_price"`
	SalePrice     decimal.Decimal `db:"sale_price"`
	AuditFields
}

// StockMovement is the row stored in the stock_movements table.
type StockMovement struct {
	MovementID   string          `db:"movement_id"`
	ProductID    string          `db:"product_id"`
	MovementDate time.Time       `db:"movement_date"`
	Direction    string          `db:"direction"`
	Quantity     decimal.Decimal `db:"quantity"`
	Note         string          `db:"note"`
	CreatedAt    time.Time       `db:"created_at"`
}

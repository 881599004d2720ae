package domain

import (
	"strings"

	"github.com/SscSPs/tallypro_backend/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Unit is the unit of measure a product is stocked in.
type Unit string

const (
	UnitCount  Unit = "units"
	UnitWeight Unit = "kg"
	UnitVolume Unit = "liters"
)

// DefaultLowStockLevel is applied to new products that do not specify one.
var DefaultLowStockLevel = decimal.NewFromInt(5)

// IsValid reports whether u is one of the supported units.
func (u Unit) IsValid() bool {
	switch u {
	case UnitCount, UnitWeight, UnitVolume:
		return true
	}
	return false
}

// Product is a stock-keeping unit.
type Product struct {
	ProductID     string          `json:"productID"`
	Name          string          `json:"name"`
	SKU           string          `json:"sku"`
	Unit          Unit            `json:"unit"`
	Quantity      decimal.Decimal `json:"quantity"`
	LowStockLevel decimal.Decimal `json:"lowStockLevel"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	SalePrice     decimal.Decimal `json:"salePrice"`
	AuditFields
}

// IsLowStock reports whether the on-hand quantity is at or below the reorder threshold.
func (p Product) IsLowStock() bool {
	return p.Quantity.LessThanOrEqual(p.LowStockLevel)
}

// StockValue is the on-hand quantity valued at purchase price (cost basis).
func (p Product) StockValue() decimal.Decimal {
	return p.Quantity.Mul(p.PurchasePrice)
}

// SaleValue is the on-hand quantity valued at sale price.
func (p Product) SaleValue() decimal.Decimal {
	return p.Quantity.Mul(p.SalePrice)
}

// Matches reports whether the product name or SKU contains term, case-insensitively.
func (p Product) Matches(term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Name), term) ||
		strings.Contains(strings.ToLower(p.SKU), term)
}

// Validate checks the product invariants.
func (p Product) Validate() error {
	if strings.TrimSpace(p.ProductID) == "" {
		return apperrors.NewValidationError("product ID is required")
	}
	if strings.TrimSpace(p.Name) == "" {
		return apperrors.NewValidationError("product name is required")
	}
	if strings.TrimSpace(p.SKU) == "" {
		return apperrors.NewValidationError("product SKU is required")
	}
	if !p.Unit.IsValid() {
		return apperrors.NewValidationError("unknown unit '%s'", p.Unit)
	}
	if p.Quantity.IsNegative() {
		return apperrors.NewValidationError("quantity must be non-negative")
	}
	if p.LowStockLevel.IsNegative() {
		return apperrors.NewValidationError("low stock level must be non-negative")
	}
	if p.PurchasePrice.IsNegative() || p.SalePrice.IsNegative() {
		return apperrors.NewValidationError("prices must be non-negative")
	}
	return nil
}

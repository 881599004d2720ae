package dto

import (
	"time"

	"github.com/SscSPs/tallypro_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateProductRequest defines the data needed to add a product.
type CreateProductRequest struct {
	Name          string           `json:"name" binding:"required,max=200"`
	SKU           string           `json:"sku" binding:"required,max=64"`
	Unit          domain.Unit      `json:"unit" binding:"omitempty,oneof=units kg liters"` // Defaults to units
	Quantity      decimal.Decimal  `json:"quantity" swaggertype:"string"`
	LowStockLevel *decimal.Decimal `json:"lowStockLevel" swaggertype:"string"` // Defaults to 5
	PurchasePrice decimal.Decimal  `json:"purchasePrice" swaggertype:"string"`
	SalePrice     decimal.Decimal  `json:"salePrice" swaggertype:"string"`
}

// ListProductsParams defines query parameters for listing products.
type ListProductsParams struct {
	Search   string `form:"search"`
	LowStock bool   `form:"lowStock"`
}

// ProductResponse defines the data returned for a product.
type ProductResponse struct {
	ProductID     string          `json:"productID"`
	Name          string          `json:"name"`
	SKU           string          `json:"sku"`
	Unit          domain.Unit     `json:"unit"`
	Quantity      decimal.Decimal `json:"quantity"`
	LowStockLevel decimal.Decimal `json:"lowStockLevel"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	SalePrice     decimal.Decimal `json:"salePrice"`
	IsLowStock    bool            `json:"isLowStock"`
	StockValue    decimal.Decimal `json:"stockValue"`
	CreatedAt     time.Time       `json:"createdAt"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// CreateStockMovementRequest defines a stock-in or stock-out entry.
type CreateStockMovementRequest struct {
	Date      string                `json:"date" binding:"omitempty,datetime=2006-01-02"` // Defaults to today
	Direction domain.StockDirection `json:"direction" binding:"required,oneof=IN OUT"`
	Quantity  decimal.Decimal       `json:"quantity" swaggertype:"string"`
	Note      string                `json:"note" binding:"omitempty,max=500"`
}

// StockMovementResponse defines the data returned for a stock movement.
type StockMovementResponse struct {
	MovementID string                `json:"movementID"`
	ProductID  string                `json:"productID"`
	Date       string                `json:"date"`
	Direction  domain.StockDirection `json:"direction"`
	Quantity   decimal.Decimal       `json:"quantity"`
	Note       string                `json:"note"`
	CreatedAt  time.Time             `json:"createdAt"`
}

// ToProductResponse converts a domain.Product to a ProductResponse DTO
func ToProductResponse(p domain.Product) ProductResponse {
	return ProductResponse{
		ProductID:     p.ProductID,
		Name:          p.Name,
		SKU:           p.SKU,
		Unit:          p.Unit,
		Quantity:      p.Quantity,
		LowStockLevel: p.LowStockLevel,
		PurchasePrice: p.PurchasePrice,
		SalePrice:     p.SalePrice,
		IsLowStock:    p.IsLowStock(),
		StockValue:    p.StockValue(),
		CreatedAt:     p.CreatedAt,
		LastUpdatedAt: p.LastUpdatedAt,
	}
}

// ToListProductResponse converts a slice of domain.Product to ProductResponse DTOs
func ToListProductResponse(products []domain.Product) []ProductResponse {
	res := make([]ProductResponse, len(products))
	for i, p := range products {
		res[i] = ToProductResponse(p)
	}
	return res
}

// ToStockMovementResponse converts a domain.StockMovement to its DTO.
func ToStockMovementResponse(m domain.StockMovement) StockMovementResponse {
	return StockMovementResponse{
		MovementID: m.MovementID,
		ProductID:  m.ProductID,
		Date:       m.Date.Format(domain.DateLayout),
		Direction:  m.Direction,
		Quantity:   m.Quantity,
		Note:       m.Note,
		CreatedAt:  m.CreatedAt,
	}
}

// ToListStockMovementResponse converts movements to DTOs.
func ToListStockMovementResponse(ms []domain.StockMovement) []StockMovementResponse {
	res := make([]StockMovementResponse, len(ms))
	for i, m := range ms {
		res[i] = ToStockMovementResponse(m)
	}
	return res
}

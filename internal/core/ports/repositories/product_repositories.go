package repositories

import (
	"context"

	"github.com/SscSPs/tallypro_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ProductReader defines read operations for product data
type ProductReader interface {
	FindProductByID(ctx context.Context, productID string) (*domain.Product, error)

	// FindProductBySKU is used to enforce SKU uniqueness.
	FindProductBySKU(ctx context.Context, sku string) (*domain.Product, error)

	// ListProducts retrieves all products in creation order.
	ListProducts(ctx context.Context) ([]domain.Product, error)
}

// ProductWriter defines write operations for product data
type ProductWriter interface {
	SaveProduct(ctx context.Context, product domain.Product) error
}

// StockMovementStore records stock movements.
type StockMovementStore interface {
	// ApplyStockMovement applies the movement to the product's current
	// on-hand quantity and stores it, returning the new quantity. Reading,
	// checking and writing the quantity happen in one atomic step, so an OUT
	// movement beyond on-hand fails with ErrValidation even under concurrent
	// movements.
	ApplyStockMovement(ctx context.Context, movement domain.StockMovement) (decimal.Decimal, error)

	// ListStockMovements retrieves a product's movements in insertion order.
	ListStockMovements(ctx context.Context, productID string) ([]domain.StockMovement, error)
}

// ProductRepositoryFacade combines all product-related repository interfaces
type ProductRepositoryFacade interface {
	ProductReader
	ProductWriter
	StockMovementStore
}

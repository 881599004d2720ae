package services

import (
	"context"

	"github.com/SscSPs/tallypro_backend/internal/core/domain"
	"github.com/SscSPs/tallypro_backend/internal/dto"
)

// ProductReaderSvc defines read operations for product data
type ProductReaderSvc interface {
	GetProductByID(ctx context.Context, productID string) (*domain.Product, error)
	ListProducts(ctx context.Context, params dto.ListProductsParams) ([]domain.Product, error)
	ListStockMovements(ctx context.Context, productID string) ([]domain.StockMovement, error)
}

// ProductWriterSvc defines write operations for product data
type ProductWriterSvc interface {
	CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*domain.Product, error)

	// RecordStockMovement stores a stock-in/out entry and adjusts the product quantity.
	RecordStockMovement(ctx context.Context, productID string, req dto.CreateStockMovementRequest) (*domain.StockMovement, error)
}

// ProductSvcFacade combines all product-related service interfaces
type ProductSvcFacade interface {
	ProductReaderSvc
	ProductWriterSvc
}

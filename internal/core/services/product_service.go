package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/tallypro_backend/internal/apperrors"
	"github.com/SscSPs/tallypro_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/tallypro_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/tallypro_backend/internal/core/ports/services"
	"github.com/SscSPs/tallypro_backend/internal/dto"
	"github.com/SscSPs/tallypro_backend/internal/utils/accounting"
	"github.com/google/uuid"
)

type productService struct {
	BaseService
	productRepo portsrepo.ProductRepositoryFacade
}

// NewProductService creates a new product service.
func NewProductService(productRepo portsrepo.ProductRepositoryFacade, options ...ServiceOption) portssvc.ProductSvcFacade {
	return &productService{
		BaseService: newBaseService(options...),
		productRepo: productRepo,
	}
}

var _ portssvc.ProductSvcFacade = (*productService)(nil)

func (s *productService) CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*domain.Product, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	now := s.Now()
	unit := req.Unit
	if unit == "" {
		unit = domain.UnitCount
	}
	lowStock := domain.DefaultLowStockLevel
	if req.LowStockLevel != nil {
		lowStock = *req.LowStockLevel
	}

	product := domain.Product{
		ProductID:     uuid.NewString(),
		Name:          strings.TrimSpace(req.Name),
		SKU:           strings.TrimSpace(req.SKU),
		Unit:          unit,
		Quantity:      req.Quantity,
		LowStockLevel: lowStock,
		PurchasePrice: req.PurchasePrice,
		SalePrice:     req.SalePrice,
		AuditFields:   domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}
	if err := product.Validate(); err != nil {
		return nil, err
	}

	_, err := s.productRepo.FindProductBySKU(ctx, product.SKU)
	switch {
	case err == nil:
		return nil, fmt.Errorf("product with SKU '%s': %w", product.SKU, apperrors.ErrDuplicate)
	case !errors.Is(err, apperrors.ErrNotFound):
		s.LogError(ctx, err, "Failed to check SKU uniqueness", slog.String("sku", product.SKU))
		return nil, fmt.Errorf("failed to check SKU: %w", err)
	}

	if err := s.productRepo.SaveProduct(ctx, product); err != nil {
		s.LogError(ctx, err, "Failed to save product", slog.String("product_id", product.ProductID))
		return nil, fmt.Errorf("failed to save product: %w", err)
	}
	s.InvalidateReports(ctx)

	s.LogInfo(ctx, "Product created successfully", slog.String("product_id", product.ProductID), slog.String("sku", product.SKU))
	return &product, nil
}

func (s *productService) GetProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find product by ID", slog.String("product_id", productID))
		}
		return nil, err
	}
	return product, nil
}

func (s *productService) ListProducts(ctx context.Context, params dto.ListProductsParams) ([]domain.Product, error) {
	products, err := s.productRepo.ListProducts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list products")
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	products = accounting.SearchProducts(products, params.Search)
	if params.LowStock {
		products = accounting.FilterLowStock(products)
	}
	return products, nil
}

func (s *productService) RecordStockMovement(ctx context.Context, productID string, req dto.CreateStockMovementRequest) (*domain.StockMovement, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	product, err := s.GetProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	date := s.Today()
	if req.Date != "" {
		parsed, err := domain.ParseDate(req.Date)
		if err != nil {
			return nil, apperrors.NewValidationError("invalid date '%s', expected YYYY-MM-DD", req.Date)
		}
		date = parsed
	}

	movement := domain.StockMovement{
		MovementID: uuid.NewString(),
		ProductID:  product.ProductID,
		Date:       date,
		Direction:  req.Direction,
		Quantity:   req.Quantity,
		Note:       strings.TrimSpace(req.Note),
		CreatedAt:  s.Now(),
	}
	if err := movement.Validate(); err != nil {
		return nil, err
	}

	// The repository checks on-hand stock atomically with the write.
	newQuantity, err := s.productRepo.ApplyStockMovement(ctx, movement)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) || errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		s.LogError(ctx, err, "Failed to save stock movement", slog.String("product_id", productID))
		return nil, fmt.Errorf("failed to save stock movement: %w", err)
	}
	s.InvalidateReports(ctx)

	s.LogInfo(ctx, "Stock movement recorded",
		slog.String("product_id", productID),
		slog.String("direction", string(movement.Direction)),
		slog.String("quantity", movement.Quantity.String()),
		slog.String("on_hand", newQuantity.String()))
	return &movement, nil
}

func (s *productService) ListStockMovements(ctx context.Context, productID string) ([]domain.StockMovement, error) {
	if _, err := s.GetProductByID(ctx, productID); err != nil {
		return nil, err
	}
	movements, err := s.productRepo.ListStockMovements(ctx, productID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list stock movements", slog.String("product_id", productID))
		return nil, fmt.Errorf("failed to list stock movements: %w", err)
	}
	return movements, nil
}

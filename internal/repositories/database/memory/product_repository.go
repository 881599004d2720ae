package memory

import (
	"context"
	"strings"

	"github.com/SscSPs/tallypro_backend/internal/apperrors"
	"github.com/SscSPs/tallypro_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/tallypro_backend/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

type memProductRepository struct {
	store *Store
}

// newProductRepository creates a product repository backed by store.
func newProductRepository(store *Store) portsrepo.ProductRepositoryFacade {
	return &memProductRepository{store: store}
}

var _ portsrepo.ProductRepositoryFacade = (*memProductRepository)(nil)

func (r *memProductRepository) SaveProduct(_ context.Context, product domain.Product) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, existing := range r.store.products {
		if existing.ProductID == product.ProductID || strings.EqualFold(existing.SKU, product.SKU) {
			return apperrors.ErrDuplicate
		}
	}
	r.store.products = append(r.store.products, product)
	return nil
}

func (r *memProductRepository) FindProductByID(_ context.Context, productID string) (*domain.Product, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	i := r.store.productIndex(productID)
	if i < 0 {
		return nil, apperrors.ErrNotFound
	}
	product := r.store.products[i]
	return &product, nil
}

func (r *memProductRepository) FindProductBySKU(_ context.Context, sku string) (*domain.Product, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, p := range r.store.products {
		if strings.EqualFold(p.SKU, sku) {
			found := p
			return &found, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *memProductRepository) ListProducts(_ context.Context) ([]domain.Product, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	products := make([]domain.Product, len(r.store.products))
	copy(products, r.store.products)
	return products, nil
}

func (r *memProductRepository) ApplyStockMovement(_ context.Context, movement domain.StockMovement) (decimal.Decimal, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	i := r.store.productIndex(movement.ProductID)
	if i < 0 {
		return decimal.Zero, apperrors.ErrNotFound
	}
	newQuantity, err := movement.Apply(r.store.products[i].Quantity)
	if err != nil {
		return decimal.Zero, err
	}
	r.store.products[i].Quantity = newQuantity
	r.store.products[i].LastUpdatedAt = movement.CreatedAt
	r.store.movements = append(r.store.movements, movement)
	return newQuantity, nil
}

func (r *memProductRepository) ListStockMovements(_ context.Context, productID string) ([]domain.StockMovement, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	movements := make([]domain.StockMovement, 0)
	for _, m := range r.store.movements {
		if m.ProductID == productID {
			movements = append(movements, m)
		}
	}
	return movements, nil
}

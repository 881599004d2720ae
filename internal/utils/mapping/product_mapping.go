package mapping

import (
	"github.com/SscSPs/tallypro_backend/internal/core/domain"
	"github.com/SscSPs/tallypro_backend/internal/models"
)

// ToModelProduct converts a domain Product to a model Product
func ToModelProduct(d domain.Product) models.Product {
	return models.Product{
		ProductID:     d.ProductID,
		Name:          d.Name,
		SKU:           d.SKU,
		Unit:          string(d.Unit),
		Quantity:      d.Quantity,
		LowStockLevel: d.LowStockLevel,
		PurchasePrice: d.PurchasePrice,
		SalePrice:     d.SalePrice,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainProduct converts a model Product to a domain Product
func ToDomainProduct(m models.Product) domain.Product {
	return domain.Product{
		ProductID:     m.ProductID,
		Name:          m.Name,
		SKU:           m.SKU,
		Unit:          domain.Unit(m.Unit),
		Quantity:      m.Quantity,
		LowStockLevel: m.LowStockLevel,
		PurchasePrice: m.PurchasePrice,
		SalePrice:     m.SalePrice,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainProductSlice converts a slice of model Products to a slice of domain Products
func ToDomainProductSlice(ms []models.Product) []domain.Product {
	ds := make([]domain.Product, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainProduct(m)
	}
	return ds
}

// ToModelStockMovement converts a domain StockMovement to a model StockMovement
func ToModelStockMovement(d domain.StockMovement) models.StockMovement {
	return models.StockMovement{
		MovementID:   d.MovementID,
		ProductID:    d.ProductID,
		MovementDate: d.Date,
		Direction:    string(d.Direction),
		Quantity:     d.Quantity,
		Note:         d.Note,
		CreatedAt:    d.CreatedAt,
	}
}

// ToDomainStockMovement converts a model StockMovement to a domain StockMovement
func ToDomainStockMovement(m models.StockMovement) domain.StockMovement {
	return domain.StockMovement{
		MovementID: m.MovementID,
		ProductID:  m.ProductID,
		Date:       m.MovementDate.UTC(),
		Direction:  domain.StockDirection(m.Direction),
		Quantity:   m.Quantity,
		Note:       m.Note,
		CreatedAt:  m.CreatedAt,
	}
}

// ToDomainStockMovementSlice converts a slice of model StockMovements to domain StockMovements
func ToDomainStockMovementSlice(ms []models.StockMovement) []domain.StockMovement {
	ds := make([]domain.StockMovement, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainStockMovement(m)
	}
	return ds
}

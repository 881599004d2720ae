package accounting

import (
	"sort"

	"github.com/SscSPs/tallypro_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ComputeInventoryValue values all stock at purchase price (cost basis).
func ComputeInventoryValue(products []domain.Product) decimal.Decimal {
	total := decimal.Zero
	for _, p := range products {
		total = total.Add(p.StockValue())
	}
	return total
}

// ComputeTopProductsByValue ranks products by sale value (quantity × sale
// price), drops zero-valued entries and keeps the first n. Products with equal
// value keep their input order.
func ComputeTopProductsByValue(products []domain.Product, n int) []domain.ProductValue {
	if n <= 0 {
		return []domain.ProductValue{}
	}

	ranked := make([]domain.ProductValue, 0, len(products))
	for _, p := range products {
		value := p.SaleValue()
		if value.IsZero() {
			continue
		}
		ranked = append(ranked, domain.ProductValue{Product: p, Value: value})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Value.GreaterThan(ranked[j].Value)
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// FilterLowStock returns the products at or below their reorder threshold.
func FilterLowStock(products []domain.Product) []domain.Product {
	low := make([]domain.Product, 0)
	for _, p := range products {
		if p.IsLowStock() {
			low = append(low, p)
		}
	}
	return low
}

// SearchProducts returns the products whose name or SKU contains term.
func SearchProducts(products []domain.Product, term string) []domain.Product {
	found := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if p.Matches(term) {
			found = append(found, p)
		}
	}
	return found
}

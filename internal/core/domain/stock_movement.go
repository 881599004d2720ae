package domain

import (
	"strings"
	"time"

	"github.com/SscSPs/tallypro_backend/internal/apperrors"
	"github.com/shopspring/decimal"
)

// StockDirection tells whether a movement adds to or removes from stock.
type StockDirection string

const (
	StockIn  StockDirection = "IN"
	StockOut StockDirection = "OUT"
)

// StockMovement records a stock-in or stock-out event for a product.
type StockMovement struct {
	MovementID string          `json:"movementID"`
	ProductID  string          `json:"productID"`
	Date       time.Time       `json:"date"`
	Direction  StockDirection  `json:"direction"`
	Quantity   decimal.Decimal `json:"quantity"`
	Note       string          `json:"note"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// Validate checks the movement invariants.
func (m StockMovement) Validate() error {
	if strings.TrimSpace(m.MovementID) == "" || strings.TrimSpace(m.ProductID) == "" {
		return apperrors.NewValidationError("movement and product IDs are required")
	}
	if m.Direction != StockIn && m.Direction != StockOut {
		return apperrors.NewValidationError("unknown stock direction '%s'", m.Direction)
	}
	if !m.Quantity.IsPositive() {
		return apperrors.NewValidationError("movement quantity must be positive")
	}
	return nil
}

// Apply returns the on-hand quantity after the movement.
// Removing more than is on hand is a validation error.
func (m StockMovement) Apply(onHand decimal.Decimal) (decimal.Decimal, error) {
	if m.Direction == StockIn {
		return onHand.Add(m.Quantity), nil
	}
	if m.Quantity.GreaterThan(onHand) {
		return onHand, apperrors.NewValidationError("cannot remove %s, only %s on hand", m.Quantity.String(), onHand.String())
	}
	return onHand.Sub(m.Quantity), nil
}

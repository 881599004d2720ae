package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/tallypro_backend/internal/apperrors"
	"github.com/SscSPs/tallypro_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/tallypro_backend/internal/core/ports/repositories"
	"github.com/SscSPs/tallypro_backend/internal/models"
	"github.com/SscSPs/tallypro_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const productColumns = `product_id, name, sku, unit, quantity, low_stock_level, purchase_price, sale_price, created_at, last_updated_at`

type PgxProductRepository struct {
	BaseRepository
}

// newPgxProductRepository creates a new repository for products and their stock movements.
func newPgxProductRepository(pool *pgxpool.Pool) portsrepo.ProductRepositoryFacade {
	return &PgxProductRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ProductRepositoryFacade = (*PgxProductRepository)(nil)

func scanProduct(row pgx.Row) (models.Product, error) {
	var p models.Product
	err := row.Scan(
		&p.ProductID,
		&p.Name,
		&p.SKU,
		&p.Unit,
		&p.Quantity,
		&p.LowStockLevel,
		&p.PurchasePrice,
		&p.SalePrice,
		&p.CreatedAt,
		&p.LastUpdatedAt,
	)
	return p, err
}

func (r *PgxProductRepository) findOne(ctx context.Context, where string, arg any) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE ` + where + `;`
	m, err := scanProduct(r.Pool.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find product: %w", err)
	}
	product := mapping.ToDomainProduct(m)
	return &product, nil
}

// FindProductByID retrieves a product by its ID.
func (r *PgxProductRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	return r.findOne(ctx, "product_id = $1", productID)
}

// FindProductBySKU retrieves a product by SKU, ignoring case.
func (r *PgxProductRepository) FindProductBySKU(ctx context.Context, sku string) (*domain.Product, error) {
	return r.findOne(ctx, "lower(sku) = lower($1)", sku)
}

// ListProducts retrieves all products in creation order.
func (r *PgxProductRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY created_at, product_id;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	products, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Product, error) {
		return scanProduct(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan products: %w", err)
	}
	return mapping.ToDomainProductSlice(products), nil
}

// SaveProduct inserts a new product.
func (r *PgxProductRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	m := mapping.ToModelProduct(product)
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ProductID,
		m.Name,
		m.SKU,
		m.Unit,
		m.Quantity,
		m.LowStockLevel,
		m.PurchasePrice,
		m.SalePrice,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("product %s (%s): %w", m.ProductID, m.SKU, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save product %s: %w", m.ProductID, err)
	}
	return nil
}

// ApplyStockMovement locks the product row, applies the movement to its
// on-hand quantity and records the movement in one database transaction.
func (r *PgxProductRepository) ApplyStockMovement(ctx context.Context, movement domain.StockMovement) (decimal.Decimal, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	defer r.Rollback(ctx, tx) // No-op once committed

	m := mapping.ToModelStockMovement(movement)

	var onHand decimal.Decimal
	err = tx.QueryRow(ctx,
		`SELECT quantity FROM products WHERE product_id = $1 FOR UPDATE;`,
		m.ProductID,
	).Scan(&onHand)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, apperrors.ErrNotFound
		}
		return decimal.Zero, fmt.Errorf("failed to lock product %s: %w", m.ProductID, err)
	}

	newQuantity, err := movement.Apply(onHand)
	if err != nil {
		return decimal.Zero, err
	}

	_, err = tx.Exec(ctx,
		`UPDATE products SET quantity = $2, last_updated_at = $3 WHERE product_id = $1;`,
		m.ProductID, newQuantity, m.CreatedAt,
	)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to update quantity for product %s: %w", m.ProductID, err)
	}

	query := `
		INSERT INTO stock_movements (movement_id, product_id, movement_date, direction, quantity, note, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err = tx.Exec(ctx, query,
		m.MovementID,
		m.ProductID,
		m.MovementDate,
		m.Direction,
		m.Quantity,
		m.Note,
		m.CreatedAt,
	)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to insert stock movement %s: %w", m.MovementID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return decimal.Zero, err
	}
	return newQuantity, nil
}

// ListStockMovements returns a product's movements in the order they were recorded.
func (r *PgxProductRepository) ListStockMovements(ctx context.Context, productID string) ([]domain.StockMovement, error) {
	query := `
		SELECT movement_id, product_id, movement_date, direction, quantity, note, created_at
		FROM stock_movements
		WHERE product_id = $1
		ORDER BY created_at, movement_id;
	`
	rows, err := r.Pool.Query(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to query stock movements for product %s: %w", productID, err)
	}
	defer rows.Close()

	movements, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.StockMovement, error) {
		var m models.StockMovement
		err := row.Scan(&m.MovementID, &m.ProductID, &m.MovementDate, &m.Direction, &m.Quantity, &m.Note, &m.CreatedAt)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan stock movements: %w", err)
	}
	return mapping.ToDomainStockMovementSlice(movements), nil
}

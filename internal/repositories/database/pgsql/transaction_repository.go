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
)

const transactionColumns = `seq, transaction_id, transaction_date, party_id, transaction_type, amount,
	category, note, bill_url, invoice_number, created_at`

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for cash transactions.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var t models.Transaction
	err := row.Scan(
		&t.Seq,
		&t.TransactionID,
		&t.TransactionDate,
		&t.PartyID,
		&t.TransactionType,
		&t.Amount,
		&t.Category,
		&t.Note,
		&t.BillURL,
		&t.InvoiceNumber,
		&t.CreatedAt,
	)
	return t, err
}

func collectTransactions(rows pgx.Rows) ([]domain.Transaction, error) {
	defer rows.Close()
	txns, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Transaction, error) {
		return scanTransaction(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan transactions: %w", err)
	}
	return mapping.ToDomainTransactionSlice(txns), nil
}

// SaveTransaction appends a transaction. Transactions are immutable once stored.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	query := `
		INSERT INTO transactions (
			transaction_id, transaction_date, party_id, transaction_type, amount,
			category, note, bill_url, invoice_number, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.TransactionID,
		m.TransactionDate,
		m.PartyID,
		m.TransactionType,
		m.Amount,
		m.Category,
		m.Note,
		m.BillURL,
		m.InvoiceNumber,
		m.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("transaction %s: %w", m.TransactionID, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save transaction %s: %w", m.TransactionID, err)
	}
	return nil
}

// FindTransactionByID retrieves a transaction by its ID.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1;`

	m, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction by id %s: %w", transactionID, err)
	}

	txn := mapping.ToDomainTransaction(m)
	return &txn, nil
}

// ListTransactions returns every transaction in insertion order.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions ORDER BY seq;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	return collectTransactions(rows)
}

// ListTransactionsPage returns up to limit transactions, newest date first,
// strictly after the cursor when one is given.
func (r *PgxTransactionRepository) ListTransactionsPage(ctx context.Context, limit int, after *portsrepo.TransactionCursor) ([]domain.Transaction, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if after == nil {
		query := `
			SELECT ` + transactionColumns + `
			FROM transactions
			ORDER BY transaction_date DESC, transaction_id DESC
			LIMIT $1;
		`
		rows, err = r.Pool.Query(ctx, query, limit)
	} else {
		query := `
			SELECT ` + transactionColumns + `
			FROM transactions
			WHERE (transaction_date, transaction_id) < ($1, $2)
			ORDER BY transaction_date DESC, transaction_id DESC
			LIMIT $3;
		`
		rows, err = r.Pool.Query(ctx, query, after.Date, after.TransactionID, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query transaction page: %w", err)
	}
	return collectTransactions(rows)
}

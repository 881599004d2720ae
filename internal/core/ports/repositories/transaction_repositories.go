package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/tallypro_backend/internal/core/domain"
)

// TransactionCursor marks the last row of a page of transactions listed
// newest first. The next page starts strictly after it in (date, id) order.
type TransactionCursor struct {
	Date          time.Time
	TransactionID string
}

// TransactionReader defines read operations for transaction data
type TransactionReader interface {
	// FindTransactionByID retrieves a specific transaction by its unique identifier.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves every transaction in insertion order.
	// The ledger relies on this order to break ties between equal dates.
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)

	// ListTransactionsPage retrieves up to limit transactions ordered by date
	// then id, both descending, starting after the cursor when one is given.
	ListTransactionsPage(ctx context.Context, limit int, after *TransactionCursor) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for transaction data.
// Transactions are immutable once saved.
type TransactionWriter interface {
	SaveTransaction(ctx context.Context, txn domain.Transaction) error
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}

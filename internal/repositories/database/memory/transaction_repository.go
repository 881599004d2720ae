package memory

import (
	"context"
	"sort"
	"time"

	"github.com/SscSPs/tallypro_backend/internal/apperrors"
	"github.com/SscSPs/tallypro_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/tallypro_backend/internal/core/ports/repositories"
)

type memTransactionRepository struct {
	store *Store
}

// newTransactionRepository creates a transaction repository backed by store.
func newTransactionRepository(store *Store) portsrepo.TransactionRepositoryFacade {
	return &memTransactionRepository{store: store}
}

var _ portsrepo.TransactionRepositoryFacade = (*memTransactionRepository)(nil)

func (r *memTransactionRepository) SaveTransaction(_ context.Context, txn domain.Transaction) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, existing := range r.store.transactions {
		if existing.TransactionID == txn.TransactionID {
			return apperrors.ErrDuplicate
		}
	}
	r.store.transactions = append(r.store.transactions, txn)
	return nil
}

func (r *memTransactionRepository) FindTransactionByID(_ context.Context, transactionID string) (*domain.Transaction, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, txn := range r.store.transactions {
		if txn.TransactionID == transactionID {
			found := txn
			return &found, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *memTransactionRepository) ListTransactions(_ context.Context) ([]domain.Transaction, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	txns := make([]domain.Transaction, len(r.store.transactions))
	copy(txns, r.store.transactions)
	return txns, nil
}

func (r *memTransactionRepository) ListTransactionsPage(ctx context.Context, limit int, after *portsrepo.TransactionCursor) ([]domain.Transaction, error) {
	all, err := r.ListTransactions(ctx)
	if err != nil {
		return nil, err
	}

	sort.Slice(all, func(i, j int) bool {
		return newer(all[i].Date, all[i].TransactionID, all[j].Date, all[j].TransactionID)
	})

	page := make([]domain.Transaction, 0, limit)
	for _, txn := range all {
		if len(page) == limit {
			break
		}
		if after != nil && !newer(after.Date, after.TransactionID, txn.Date, txn.TransactionID) {
			continue
		}
		page = append(page, txn)
	}
	return page, nil
}

// newer orders by date then id, both descending.
func newer(aDate time.Time, aID string, bDate time.Time, bID string) bool {
	if !aDate.Equal(bDate) {
		return aDate.After(bDate)
	}
	return aID > bID
}

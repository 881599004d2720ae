// Package memory implements the repository ports on an in-process store.
// It is the default storage driver and is seeded with demo fixtures.
package memory

import (
	"sync"

	"github.com/SscSPs/tallypro_backend/internal/core/domain"
)

// Store keeps every entity in insertion order behind one RWMutex.
type Store struct {
	mu           sync.RWMutex
	parties      []domain.Party
	transactions []domain.Transaction
	products     []domain.Product
	movements    []domain.StockMovement
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// Seed appends fixtures to the store.
func (s *Store) Seed(f Fixtures) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.parties = append(s.parties, f.Parties...)
	s.transactions = append(s.transactions, f.Transactions...)
	s.products = append(s.products, f.Products...)
}

func (s *Store) partyIndex(partyID string) int {
	for i := range s.parties {
		if s.parties[i].PartyID == partyID {
			return i
		}
	}
	return -1
}

func (s *Store) productIndex(productID string) int {
	for i := range s.products {
		if s.products[i].ProductID == productID {
			return i
		}
	}
	return -1
}

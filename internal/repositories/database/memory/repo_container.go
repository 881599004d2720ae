package memory

import (
	portsrepo "github.com/SscSPs/tallypro_backend/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every repository to the same store.
// The report cache is chosen separately and left nil here.
func NewRepositoryProvider(store *Store) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		PartyRepo:       newPartyRepository(store),
		TransactionRepo: newTransactionRepository(store),
		ProductRepo:     newProductRepository(store),
	}
}

package pgsql

import (
	portsrepo "github.com/SscSPs/tallypro_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires the Postgres-backed repositories. The report
// cache is chosen separately by the caller.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		PartyRepo:       newPgxPartyRepository(dbPool),
		TransactionRepo: newPgxTransactionRepository(dbPool),
		ProductRepo:     newPgxProductRepository(dbPool),
	}
}

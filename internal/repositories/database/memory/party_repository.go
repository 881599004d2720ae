package memory

import (
	"context"

	"github.com/SscSPs/tallypro_backend/internal/apperrors"
	"github.com/SscSPs/tallypro_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/tallypro_backend/internal/core/ports/repositories"
)

type memPartyRepository struct {
	store *Store
}

// newPartyRepository creates a party repository backed by store.
func newPartyRepository(store *Store) portsrepo.PartyRepositoryFacade {
	return &memPartyRepository{store: store}
}

var _ portsrepo.PartyRepositoryFacade = (*memPartyRepository)(nil)

func (r *memPartyRepository) SaveParty(_ context.Context, party domain.Party) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if r.store.partyIndex(party.PartyID) >= 0 {
		return apperrors.ErrDuplicate
	}
	r.store.parties = append(r.store.parties, party)
	return nil
}

func (r *memPartyRepository) FindPartyByID(_ context.Context, partyID string) (*domain.Party, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	i := r.store.partyIndex(partyID)
	if i < 0 {
		return nil, apperrors.ErrNotFound
	}
	party := r.store.parties[i]
	return &party, nil
}

func (r *memPartyRepository) ListParties(_ context.Context) ([]domain.Party, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	parties := make([]domain.Party, len(r.store.parties))
	copy(parties, r.store.parties)
	return parties, nil
}

func (r *memPartyRepository) UpdateParty(_ context.Context, party domain.Party) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	i := r.store.partyIndex(party.PartyID)
	if i < 0 {
		return apperrors.ErrNotFound
	}
	r.store.parties[i] = party
	return nil
}

func (r *memPartyRepository) DeleteParty(_ context.Context, partyID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	i := r.store.partyIndex(partyID)
	if i < 0 {
		return apperrors.ErrNotFound
	}
	r.store.parties = append(r.store.parties[:i], r.store.parties[i+1:]...)
	return nil
}

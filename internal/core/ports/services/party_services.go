package services

import (
	"context"

	"github.com/SscSPs/tallypro_backend/internal/core/domain"
	"github.com/SscSPs/tallypro_backend/internal/dto"
)

// PartyReaderSvc defines read operations for party data
type PartyReaderSvc interface {
	// GetPartyByID retrieves a party with its derived current balance.
	GetPartyByID(ctx context.Context, partyID string) (*domain.PartyBalance, error)

	// ListParties retrieves parties whose name or phone contains search, with balances.
	ListParties(ctx context.Context, search string) ([]domain.PartyBalance, error)

	// GetPartyTotals sums what the business is owed and owes across all parties.
	GetPartyTotals(ctx context.Context) (*domain.PartyTotals, error)
}

// PartyWriterSvc defines write operations for party data
type PartyWriterSvc interface {
	CreateParty(ctx context.Context, req dto.CreatePartyRequest) (*domain.Party, error)
	UpdateParty(ctx context.Context, partyID string, req dto.UpdatePartyRequest) (*domain.Party, error)
	DeleteParty(ctx context.Context, partyID string) error
}

// PartySvcFacade combines all party-related service interfaces
type PartySvcFacade interface {
	PartyReaderSvc
	PartyWriterSvc
}

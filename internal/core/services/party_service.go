package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/tallypro_backend/internal/apperrors"
	"github.com/SscSPs/tallypro_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/tallypro_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/tallypro_backend/internal/core/ports/services"
	"github.com/SscSPs/tallypro_backend/internal/dto"
	"github.com/SscSPs/tallypro_backend/internal/utils/accounting"
	"github.com/google/uuid"
)

type partyService struct {
	BaseService
	partyRepo       portsrepo.PartyRepositoryFacade
	transactionRepo portsrepo.TransactionReader
}

// NewPartyService creates a new party service.
func NewPartyService(partyRepo portsrepo.PartyRepositoryFacade, transactionRepo portsrepo.TransactionReader, options ...ServiceOption) portssvc.PartySvcFacade {
	return &partyService{
		BaseService:     newBaseService(options...),
		partyRepo:       partyRepo,
		transactionRepo: transactionRepo,
	}
}

var _ portssvc.PartySvcFacade = (*partyService)(nil)

func (s *partyService) CreateParty(ctx context.Context, req dto.CreatePartyRequest) (*domain.Party, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	now := s.Now()
	partyType := req.Type
	if partyType == "" {
		partyType = domain.PartyCustomer
	}

	party := domain.Party{
		PartyID:        uuid.NewString(),
		Name:           strings.TrimSpace(req.Name),
		Type:           partyType,
		Phone:          strings.TrimSpace(req.Phone),
		Email:          strings.TrimSpace(req.Email),
		Address:        strings.TrimSpace(req.Address),
		OpeningBalance: req.OpeningBalance,
		AuditFields:    domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}
	if err := party.Validate(); err != nil {
		return nil, err
	}

	if err := s.partyRepo.SaveParty(ctx, party); err != nil {
		s.LogError(ctx, err, "Failed to save party", slog.String("party_id", party.PartyID))
		return nil, fmt.Errorf("failed to save party: %w", err)
	}
	s.InvalidateReports(ctx)

	s.LogInfo(ctx, "Party created successfully", slog.String("party_id", party.PartyID))
	return &party, nil
}

func (s *partyService) GetPartyByID(ctx context.Context, partyID string) (*domain.PartyBalance, error) {
	party, err := s.partyRepo.FindPartyByID(ctx, partyID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find party by ID", slog.String("party_id", partyID))
		}
		return nil, err
	}

	txns, err := s.transactionRepo.ListTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions for party balance", slog.String("party_id", partyID))
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return &domain.PartyBalance{
		Party:   *party,
		Balance: accounting.ComputePartyBalance(*party, txns),
	}, nil
}

// ListParties returns parties matching search on name or phone, with derived balances.
func (s *partyService) ListParties(ctx context.Context, search string) ([]domain.PartyBalance, error) {
	balances, err := s.allBalances(ctx)
	if err != nil {
		return nil, err
	}

	term := strings.ToLower(strings.TrimSpace(search))
	if term == "" {
		return balances, nil
	}
	matched := make([]domain.PartyBalance, 0, len(balances))
	for _, b := range balances {
		if strings.Contains(strings.ToLower(b.Name), term) || strings.Contains(b.Phone, term) {
			matched = append(matched, b)
		}
	}
	return matched, nil
}

func (s *partyService) GetPartyTotals(ctx context.Context) (*domain.PartyTotals, error) {
	balances, err := s.allBalances(ctx)
	if err != nil {
		return nil, err
	}
	totals := accounting.ComputePartyTotals(balances)
	return &totals, nil
}

func (s *partyService) allBalances(ctx context.Context) ([]domain.PartyBalance, error) {
	parties, err := s.partyRepo.ListParties(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list parties")
		return nil, fmt.Errorf("failed to list parties: %w", err)
	}
	txns, err := s.transactionRepo.ListTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions for party balances")
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return accounting.ComputePartyBalances(parties, txns), nil
}

func (s *partyService) UpdateParty(ctx context.Context, partyID string, req dto.UpdatePartyRequest) (*domain.Party, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	party, err := s.partyRepo.FindPartyByID(ctx, partyID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find party for update", slog.String("party_id", partyID))
		}
		return nil, err
	}

	if req.Name != nil {
		party.Name = strings.TrimSpace(*req.Name)
	}
	if req.Type != nil {
		party.Type = *req.Type
	}
	if req.Phone != nil {
		party.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Email != nil {
		party.Email = strings.TrimSpace(*req.Email)
	}
	if req.Address != nil {
		party.Address = strings.TrimSpace(*req.Address)
	}
	if req.OpeningBalance != nil {
		party.OpeningBalance = *req.OpeningBalance
	}
	party.LastUpdatedAt = s.Now()

	if err := party.Validate(); err != nil {
		return nil, err
	}
	if err := s.partyRepo.UpdateParty(ctx, *party); err != nil {
		s.LogError(ctx, err, "Failed to update party", slog.String("party_id", partyID))
		return nil, fmt.Errorf("failed to update party: %w", err)
	}
	s.InvalidateReports(ctx)

	s.LogInfo(ctx, "Party updated successfully", slog.String("party_id", partyID))
	return party, nil
}

// DeleteParty removes a party. Its transactions keep the dangling reference.
func (s *partyService) DeleteParty(ctx context.Context, partyID string) error {
	if err := s.partyRepo.DeleteParty(ctx, partyID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete party", slog.String("party_id", partyID))
		}
		return err
	}
	s.InvalidateReports(ctx)

	s.LogInfo(ctx, "Party deleted successfully", slog.String("party_id", partyID))
	return nil
}

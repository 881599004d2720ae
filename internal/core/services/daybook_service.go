package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/tallypro_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/tallypro_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/tallypro_backend/internal/core/ports/services"
	"github.com/SscSPs/tallypro_backend/internal/utils/accounting"
)

type daybookService struct {
	BaseService
	transactionRepo portsrepo.TransactionReader
	partyRepo       portsrepo.PartyReader
}

// NewDaybookService creates the service behind the daybook view.
func NewDaybookService(transactionRepo portsrepo.TransactionReader, partyRepo portsrepo.PartyReader, options ...ServiceOption) portssvc.DaybookSvc {
	return &daybookService{
		BaseService:     newBaseService(options...),
		transactionRepo: transactionRepo,
		partyRepo:       partyRepo,
	}
}

var _ portssvc.DaybookSvc = (*daybookService)(nil)

func (s *daybookService) GetDaybook(ctx context.Context, filter domain.LedgerFilter) ([]domain.LedgerRow, error) {
	txns, err := s.transactionRepo.ListTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions for daybook")
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	parties, err := s.partyRepo.ListParties(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list parties for daybook")
		return nil, fmt.Errorf("failed to list parties: %w", err)
	}

	rows := accounting.BuildLedger(txns, parties, filter)
	s.LogDebug(ctx, "Daybook built",
		slog.Int("rows", len(rows)),
		slog.String("search", filter.SearchText),
		slog.String("date_prefix", filter.DatePrefix))
	return rows, nil
}

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
	"github.com/SscSPs/tallypro_backend/internal/utils/pagination"
	"github.com/google/uuid"
)

const defaultTransactionPageSize = 20

type transactionService struct {
	BaseService
	transactionRepo portsrepo.TransactionRepositoryFacade
	partyRepo       portsrepo.PartyReader
}

// NewTransactionService creates a new transaction service.
func NewTransactionService(transactionRepo portsrepo.TransactionRepositoryFacade, partyRepo portsrepo.PartyReader, options ...ServiceOption) portssvc.TransactionSvcFacade {
	return &transactionService{
		BaseService:     newBaseService(options...),
		transactionRepo: transactionRepo,
		partyRepo:       partyRepo,
	}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

func (s *transactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	date := s.Today()
	if req.Date != "" {
		parsed, err := domain.ParseDate(req.Date)
		if err != nil {
			return nil, apperrors.NewValidationError("invalid date '%s', expected YYYY-MM-DD", req.Date)
		}
		date = parsed
	}

	party := domain.PartyRefOf(req.PartyID)
	if id, ok := party.ID(); ok {
		if _, err := s.partyRepo.FindPartyByID(ctx, id); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, apperrors.NewValidationError("unknown party '%s'", id)
			}
			s.LogError(ctx, err, "Failed to look up transaction party", slog.String("party_id", id))
			return nil, fmt.Errorf("failed to look up party: %w", err)
		}
	}

	txn := domain.Transaction{
		TransactionID:   uuid.NewString(),
		Date:            date,
		Party:           party,
		TransactionType: req.TransactionType,
		Amount:          req.Amount,
		Category:        strings.TrimSpace(req.Category),
		Note:            strings.TrimSpace(req.Note),
		BillURL:         strings.TrimSpace(req.BillURL),
		InvoiceNumber:   strings.TrimSpace(req.InvoiceNumber),
		CreatedAt:       s.Now(),
	}
	if err := txn.Validate(); err != nil {
		return nil, err
	}

	if err := s.transactionRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save transaction", slog.String("transaction_id", txn.TransactionID))
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}
	s.InvalidateReports(ctx)

	s.LogInfo(ctx, "Transaction created successfully",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("type", string(txn.TransactionType)),
		slog.String("amount", txn.Amount.String()))
	return &txn, nil
}

func (s *transactionService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	txn, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find transaction by ID", slog.String("transaction_id", transactionID))
		}
		return nil, err
	}
	return txn, nil
}

func (s *transactionService) ListTransactions(ctx context.Context, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultTransactionPageSize
	}

	var cursor *portsrepo.TransactionCursor
	if params.NextToken != nil && *params.NextToken != "" {
		date, id, err := pagination.DecodeToken(*params.NextToken)
		if err != nil {
			return nil, apperrors.NewValidationError("%s", err.Error())
		}
		cursor = &portsrepo.TransactionCursor{Date: date, TransactionID: id}
	}

	// Fetch one extra row to know whether another page exists.
	txns, err := s.transactionRepo.ListTransactionsPage(ctx, limit+1, cursor)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions", slog.Int("limit", limit))
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	resp := &dto.ListTransactionsResponse{}
	if len(txns) > limit {
		txns = txns[:limit]
		last := txns[len(txns)-1]
		token := pagination.EncodeToken(last.Date, last.TransactionID)
		resp.NextToken = &token
	}
	resp.Transactions = dto.ToListTransactionResponse(txns)

	s.LogDebug(ctx, "Transactions listed successfully", slog.Int("count", len(txns)))
	return resp, nil
}

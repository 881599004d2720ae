package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/tallypro_backend/internal/apperrors"
	"github.com/SscSPs/tallypro_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/tallypro_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/tallypro_backend/internal/core/ports/services"
	"github.com/SscSPs/tallypro_backend/internal/core/services"
	"github.com/SscSPs/tallypro_backend/internal/dto"
	"github.com/SscSPs/tallypro_backend/internal/utils/pagination"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type TransactionServiceTestSuite struct {
	suite.Suite
	ctx       context.Context
	txnRepo   *MockTransactionRepository
	partyRepo *MockPartyRepository
	cache     *MockReportCache
	service   portssvc.TransactionSvcFacade
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.txnRepo = new(MockTransactionRepository)
	suite.partyRepo = new(MockPartyRepository)
	suite.cache = new(MockReportCache)
	suite.service = services.NewTransactionService(suite.txnRepo, suite.partyRepo,
		services.WithReportCache(suite.cache),
		services.WithClock(fixedClock))
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_DefaultsDateToToday() {
	req := dto.CreateTransactionRequest{
		TransactionType: domain.Debit,
		Amount:          decimal.NewFromInt(1500),
		Category:        " Rent ",
	}
	suite.txnRepo.On("SaveTransaction", suite.ctx, mock.MatchedBy(func(t domain.Transaction) bool {
		return t.DateString() == "2025-02-03" && t.Party.IsNone() && t.Category == "Rent"
	})).Return(nil).Once()
	suite.cache.On("Invalidate", suite.ctx).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(suite.ctx, req)

	suite.Require().NoError(err)
	suite.NotEmpty(txn.TransactionID)
	suite.True(txn.Amount.Equal(decimal.NewFromInt(1500)))
	suite.partyRepo.AssertNotCalled(suite.T(), "FindPartyByID", mock.Anything, mock.Anything)
	suite.txnRepo.AssertExpectations(suite.T())
	suite.cache.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_WithParty() {
	parties := sampleParties()
	req := dto.CreateTransactionRequest{
		Date:            "2025-01-20",
		PartyID:         "p1",
		TransactionType: domain.Credit,
		Amount:          decimal.NewFromInt(4500),
		Category:        "Sales",
	}
	suite.partyRepo.On("FindPartyByID", suite.ctx, "p1").Return(&parties[0], nil).Once()
	suite.txnRepo.On("SaveTransaction", suite.ctx, mock.MatchedBy(func(t domain.Transaction) bool {
		return t.Party.Refers("p1") && t.DateString() == "2025-01-20"
	})).Return(nil).Once()
	suite.cache.On("Invalidate", suite.ctx).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(suite.ctx, req)

	suite.Require().NoError(err)
	suite.Equal(domain.Credit, txn.TransactionType)
	suite.txnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_UnknownParty() {
	req := dto.CreateTransactionRequest{PartyID: "ghost", TransactionType: domain.Credit, Amount: decimal.NewFromInt(10)}
	suite.partyRepo.On("FindPartyByID", suite.ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateTransaction(suite.ctx, req)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.txnRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_Invalid() {
	tests := []struct {
		name string
		req  dto.CreateTransactionRequest
	}{
		{"negative amount", dto.CreateTransactionRequest{TransactionType: domain.Debit, Amount: decimal.NewFromInt(-1)}},
		{"unknown type", dto.CreateTransactionRequest{TransactionType: "REFUND", Amount: decimal.NewFromInt(1)}},
		{"bad date", dto.CreateTransactionRequest{Date: "05/01/2025", TransactionType: domain.Debit, Amount: decimal.NewFromInt(1)}},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			_, err := suite.service.CreateTransaction(suite.ctx, tt.req)
			suite.ErrorIs(err, apperrors.ErrValidation)
		})
	}
	suite.txnRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
	suite.cache.AssertNotCalled(suite.T(), "Invalidate", mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestGetTransactionByID_NotFound() {
	suite.txnRepo.On("FindTransactionByID", suite.ctx, "nope").Return(nil, apperrors.ErrNotFound).Once()

	txn, err := suite.service.GetTransactionByID(suite.ctx, "nope")

	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *TransactionServiceTestSuite) TestListTransactions_FirstPageHasNextToken() {
	txns := sampleTransactions()
	page := []domain.Transaction{txns[4], txns[3], txns[2]}
	suite.txnRepo.On("ListTransactionsPage", suite.ctx, 3, (*portsrepo.TransactionCursor)(nil)).Return(page, nil).Once()

	resp, err := suite.service.ListTransactions(suite.ctx, dto.ListTransactionsParams{Limit: 2})

	suite.Require().NoError(err)
	suite.Require().Len(resp.Transactions, 2)
	suite.Equal("t5", resp.Transactions[0].TransactionID)
	suite.Require().NotNil(resp.NextToken)

	date, id, err := pagination.DecodeToken(*resp.NextToken)
	suite.Require().NoError(err)
	suite.Equal("t4", id)
	suite.Equal("2025-01-12", date.Format(domain.DateLayout))
}

func (suite *TransactionServiceTestSuite) TestListTransactions_LastPage() {
	txns := sampleTransactions()
	token := pagination.EncodeToken(txns[2].Date, txns[2].TransactionID)
	suite.txnRepo.On("ListTransactionsPage", suite.ctx, 21, mock.MatchedBy(func(c *portsrepo.TransactionCursor) bool {
		return c != nil && c.TransactionID == "t3" && c.Date.Equal(txns[2].Date)
	})).Return([]domain.Transaction{txns[1], txns[0]}, nil).Once()

	resp, err := suite.service.ListTransactions(suite.ctx, dto.ListTransactionsParams{NextToken: &token})

	suite.Require().NoError(err)
	suite.Len(resp.Transactions, 2)
	suite.Nil(resp.NextToken)
	suite.txnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestListTransactions_BadToken() {
	bad := "not-a-token!"

	_, err := suite.service.ListTransactions(suite.ctx, dto.ListTransactionsParams{Limit: 5, NextToken: &bad})

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.txnRepo.AssertNotCalled(suite.T(), "ListTransactionsPage", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestListTransactions_RepoError() {
	suite.txnRepo.On("ListTransactionsPage", suite.ctx, 6, (*portsrepo.TransactionCursor)(nil)).Return(nil, assert.AnError).Once()

	resp, err := suite.service.ListTransactions(suite.ctx, dto.ListTransactionsParams{Limit: 5})

	suite.Nil(resp)
	suite.ErrorIs(err, assert.AnError)
}

func TestTransactionService(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}

func TestPartyBalanceFollowsTransactions(t *testing.T) {
	ctx := context.Background()
	partyRepo := new(MockPartyRepository)
	txnRepo := new(MockTransactionRepository)
	svc := services.NewPartyService(partyRepo, txnRepo)

	party := domain.Party{PartyID: "p9", Name: "Balance Co", Type: domain.PartyCustomer, OpeningBalance: decimal.NewFromInt(100)}
	partyRepo.On("FindPartyByID", ctx, "p9").Return(&party, nil)
	txnRepo.On("ListTransactions", ctx).Return([]domain.Transaction{
		{TransactionID: "a", Date: day("2025-01-01"), Party: domain.PartyRefOf("p9"), TransactionType: domain.Debit, Amount: decimal.NewFromInt(50)},
		{TransactionID: "b", Date: day("2025-01-02"), Party: domain.PartyRefOf("p9"), TransactionType: domain.Credit, Amount: decimal.NewFromInt(30)},
		{TransactionID: "c", Date: day("2025-01-03"), Party: domain.PartyRefOf("other"), TransactionType: domain.Credit, Amount: decimal.NewFromInt(999)},
	}, nil)

	pb, err := svc.GetPartyByID(ctx, "p9")

	assert.NoError(t, err)
	assert.True(t, decimal.NewFromInt(120).Equal(pb.Balance), "got %s", pb.Balance)
}

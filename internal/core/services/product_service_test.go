package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/tallypro_backend/internal/apperrors"
	"github.com/SscSPs/tallypro_backend/internal/core/domain"
	portssvc "github.com/SscSPs/tallypro_backend/internal/core/ports/services"
	"github.com/SscSPs/tallypro_backend/internal/core/services"
	"github.com/SscSPs/tallypro_backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ProductServiceTestSuite struct {
	suite.Suite
	ctx         context.Context
	productRepo *MockProductRepository
	service     portssvc.ProductSvcFacade
}

func (suite *ProductServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.productRepo = new(MockProductRepository)
	suite.service = services.NewProductService(suite.productRepo, services.WithClock(fixedClock))
}

func (suite *ProductServiceTestSuite) TestCreateProduct_AppliesDefaults() {
	req := dto.CreateProductRequest{
		Name:          "Stapler",
		SKU:           "ST-01",
		Quantity:      decimal.NewFromInt(10),
		PurchasePrice: decimal.NewFromInt(80),
		SalePrice:     decimal.NewFromInt(120),
	}
	suite.productRepo.On("FindProductBySKU", suite.ctx, "ST-01").Return(nil, apperrors.ErrNotFound).Once()
	suite.productRepo.On("SaveProduct", suite.ctx, mock.MatchedBy(func(p domain.Product) bool {
		return p.Unit == domain.UnitCount && p.LowStockLevel.Equal(decimal.NewFromInt(5))
	})).Return(nil).Once()

	product, err := suite.service.CreateProduct(suite.ctx, req)

	suite.Require().NoError(err)
	suite.Equal(domain.UnitCount, product.Unit)
	suite.False(product.IsLowStock())
	suite.productRepo.AssertExpectations(suite.T())
}

func (suite *ProductServiceTestSuite) TestCreateProduct_DuplicateSKU() {
	existing := sampleProducts()[0]
	suite.productRepo.On("FindProductBySKU", suite.ctx, "NB-A4-001").Return(&existing, nil).Once()

	_, err := suite.service.CreateProduct(suite.ctx, dto.CreateProductRequest{Name: "Another", SKU: "NB-A4-001"})

	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.productRepo.AssertNotCalled(suite.T(), "SaveProduct", mock.Anything, mock.Anything)
}

func (suite *ProductServiceTestSuite) TestCreateProduct_NegativePrice() {
	_, err := suite.service.CreateProduct(suite.ctx, dto.CreateProductRequest{
		Name: "Bad", SKU: "BAD", SalePrice: decimal.NewFromInt(-1),
	})

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.productRepo.AssertNotCalled(suite.T(), "FindProductBySKU", mock.Anything, mock.Anything)
}

func (suite *ProductServiceTestSuite) TestListProducts_SearchAndLowStock() {
	suite.productRepo.On("ListProducts", suite.ctx).Return(sampleProducts(), nil)

	low, err := suite.service.ListProducts(suite.ctx, dto.ListProductsParams{LowStock: true})
	suite.Require().NoError(err)
	suite.Require().Len(low, 1)
	suite.Equal("pr2", low[0].ProductID)

	found, err := suite.service.ListProducts(suite.ctx, dto.ListProductsParams{Search: "pp-"})
	suite.Require().NoError(err)
	suite.Require().Len(found, 1)
	suite.Equal("pr3", found[0].ProductID)

	none, err := suite.service.ListProducts(suite.ctx, dto.ListProductsParams{Search: "notebook", LowStock: true})
	suite.Require().NoError(err)
	suite.Empty(none)
}

func (suite *ProductServiceTestSuite) TestRecordStockMovement_In() {
	product := sampleProducts()[1]
	suite.productRepo.On("FindProductByID", suite.ctx, "pr2").Return(&product, nil).Once()
	suite.productRepo.On("ApplyStockMovement", suite.ctx,
		mock.MatchedBy(func(m domain.StockMovement) bool {
			return m.ProductID == "pr2" && m.Direction == domain.StockIn && m.Date.Equal(day("2025-02-03"))
		}),
	).Return(decimal.NewFromInt(115), nil).Once()

	movement, err := suite.service.RecordStockMovement(suite.ctx, "pr2", dto.CreateStockMovementRequest{
		Direction: domain.StockIn,
		Quantity:  decimal.NewFromInt(100),
	})

	suite.Require().NoError(err)
	suite.NotEmpty(movement.MovementID)
	suite.productRepo.AssertExpectations(suite.T())
}

func (suite *ProductServiceTestSuite) TestRecordStockMovement_Oversell() {
	product := sampleProducts()[1]
	suite.productRepo.On("FindProductByID", suite.ctx, "pr2").Return(&product, nil).Once()
	suite.productRepo.On("ApplyStockMovement", suite.ctx, mock.AnythingOfType("domain.StockMovement")).
		Return(decimal.Zero, apperrors.NewValidationError("cannot remove 16, only 15 on hand")).Once()

	_, err := suite.service.RecordStockMovement(suite.ctx, "pr2", dto.CreateStockMovementRequest{
		Direction: domain.StockOut,
		Quantity:  decimal.NewFromInt(16),
	})

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ProductServiceTestSuite) TestRecordStockMovement_RepoError() {
	product := sampleProducts()[1]
	suite.productRepo.On("FindProductByID", suite.ctx, "pr2").Return(&product, nil).Once()
	suite.productRepo.On("ApplyStockMovement", suite.ctx, mock.AnythingOfType("domain.StockMovement")).
		Return(decimal.Zero, assert.AnError).Once()

	_, err := suite.service.RecordStockMovement(suite.ctx, "pr2", dto.CreateStockMovementRequest{
		Direction: domain.StockIn,
		Quantity:  decimal.NewFromInt(1),
	})

	suite.ErrorIs(err, assert.AnError)
}

func (suite *ProductServiceTestSuite) TestRecordStockMovement_ZeroQuantity() {
	product := sampleProducts()[0]
	suite.productRepo.On("FindProductByID", suite.ctx, "pr1").Return(&product, nil).Once()

	_, err := suite.service.RecordStockMovement(suite.ctx, "pr1", dto.CreateStockMovementRequest{Direction: domain.StockOut})

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.productRepo.AssertNotCalled(suite.T(), "ApplyStockMovement", mock.Anything, mock.Anything)
}

func (suite *ProductServiceTestSuite) TestRecordStockMovement_ProductNotFound() {
	suite.productRepo.On("FindProductByID", suite.ctx, "nope").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.RecordStockMovement(suite.ctx, "nope", dto.CreateStockMovementRequest{
		Direction: domain.StockIn, Quantity: decimal.NewFromInt(1),
	})

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ProductServiceTestSuite) TestListStockMovements() {
	product := sampleProducts()[0]
	movements := []domain.StockMovement{{MovementID: "m1", ProductID: "pr1", Direction: domain.StockIn, Quantity: decimal.NewFromInt(3)}}
	suite.productRepo.On("FindProductByID", suite.ctx, "pr1").Return(&product, nil).Once()
	suite.productRepo.On("ListStockMovements", suite.ctx, "pr1").Return(movements, nil).Once()

	got, err := suite.service.ListStockMovements(suite.ctx, "pr1")

	suite.Require().NoError(err)
	suite.Equal(movements, got)
}

func (suite *ProductServiceTestSuite) TestListStockMovements_RepoError() {
	product := sampleProducts()[0]
	suite.productRepo.On("FindProductByID", suite.ctx, "pr1").Return(&product, nil).Once()
	suite.productRepo.On("ListStockMovements", suite.ctx, "pr1").Return(nil, assert.AnError).Once()

	_, err := suite.service.ListStockMovements(suite.ctx, "pr1")

	suite.ErrorIs(err, assert.AnError)
}

func TestProductService(t *testing.T) {
	suite.Run(t, new(ProductServiceTestSuite))
}

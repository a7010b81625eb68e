package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/NgurahFajar/damar-exchange-backend/internal/apperrors"
	"github.com/NgurahFajar/damar-exchange-backend/internal/core/domain"
	portssvc "github.com/NgurahFajar/damar-exchange-backend/internal/core/ports/services"
	"github.com/NgurahFajar/damar-exchange-backend/internal/core/services"
	"github.com/NgurahFajar/damar-exchange-backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock CurrencyRepository ---
type MockCurrencyRepository struct {
	mock.Mock
}

func (m *MockCurrencyRepository) SaveCurrency(ctx context.Context, currency domain.CurrencyRate) error {
	args := m.Called(ctx, currency)
	return args.Error(0)
}

func (m *MockCurrencyRepository) UpdateCurrency(ctx context.Context, currency domain.CurrencyRate) error {
	args := m.Called(ctx, currency)
	return args.Error(0)
}

func (m *MockCurrencyRepository) DeleteCurrency(ctx context.Context, currencyCode string) error {
	args := m.Called(ctx, currencyCode)
	return args.Error(0)
}

func (m *MockCurrencyRepository) FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.CurrencyRate, error) {
	args := m.Called(ctx, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CurrencyRate), args.Error(1)
}

func (m *MockCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.CurrencyRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CurrencyRate), args.Error(1)
}

func (m *MockCurrencyRepository) CountCurrencies(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCurrencyRepository) LatestRateUpdate(ctx context.Context) (*time.Time, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*time.Time), args.Error(1)
}

// --- Test Suite ---
type CurrencyServiceTestSuite struct {
	suite.Suite
	mockRepo *MockCurrencyRepository
	service  portssvc.CurrencySvcFacade
}

func (suite *CurrencyServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCurrencyRepository)
	suite.service = services.NewCurrencyService(suite.mockRepo, nil)
}

// --- Test Cases ---

func (suite *CurrencyServiceTestSuite) TestCreateCurrency_Success() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	sellRate := decimal.RequireFromString("15200")
	req := dto.CreateCurrencyRateRequest{
		CurrencyCode: "usd",
		Name:         "US Dollar",
		BuyRate:      decimal.RequireFromString("15000"),
		SellRate:     &sellRate,
	}

	suite.mockRepo.On("SaveCurrency", ctx, mock.MatchedBy(func(c domain.CurrencyRate) bool {
		return c.CurrencyCode == "USD" && // code is normalized
			c.BuyRate.Equal(req.BuyRate) &&
			c.SellRate.Valid && c.SellRate.Decimal.Equal(sellRate) &&
			c.CreatedBy == creatorUserID && c.LastUpdatedBy == creatorUserID
	})).Return(nil).Once()

	currency, err := suite.service.CreateCurrency(ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(currency)
	suite.Equal("USD", currency.CurrencyCode)
	suite.Equal(req.Name, currency.Name)
	suite.True(currency.Sellable())

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestCreateCurrency_BuyOnly() {
	ctx := context.Background()
	req := dto.CreateCurrencyRateRequest{
		CurrencyCode: "MMK",
		Name:         "Myanmar Kyat",
		BuyRate:      decimal.RequireFromString("3.5"),
	}

	suite.mockRepo.On("SaveCurrency", ctx, mock.MatchedBy(func(c domain.CurrencyRate) bool {
		return c.CurrencyCode == "MMK" && !c.SellRate.Valid
	})).Return(nil).Once()

	currency, err := suite.service.CreateCurrency(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.False(currency.Sellable())
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestCreateCurrency_NegativeBuyRate() {
	ctx := context.Background()
	req := dto.CreateCurrencyRateRequest{
		CurrencyCode: "USD",
		Name:         "US Dollar",
		BuyRate:      decimal.RequireFromString("-1"),
	}

	currency, err := suite.service.CreateCurrency(ctx, req, uuid.NewString())

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(currency)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveCurrency")
}

func (suite *CurrencyServiceTestSuite) TestCreateCurrency_PivotCodeRejected() {
	ctx := context.Background()
	req := dto.CreateCurrencyRateRequest{
		CurrencyCode: "idr",
		Name:         "Indonesian Rupiah",
		BuyRate:      decimal.NewFromInt(1),
	}

	currency, err := suite.service.CreateCurrency(ctx, req, uuid.NewString())

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(currency)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveCurrency")
}

func (suite *CurrencyServiceTestSuite) TestCreateCurrency_Duplicate() {
	ctx := context.Background()
	req := dto.CreateCurrencyRateRequest{
		CurrencyCode: "USD",
		Name:         "US Dollar",
		BuyRate:      decimal.NewFromInt(15000),
	}

	suite.mockRepo.On("SaveCurrency", ctx, mock.Anything).Return(apperrors.ErrDuplicate).Once()

	currency, err := suite.service.CreateCurrency(ctx, req, uuid.NewString())

	suite.Require().ErrorIs(err, apperrors.ErrDuplicate)
	suite.Nil(currency)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestUpdateCurrency_ClearSellRate() {
	ctx := context.Background()
	updaterUserID := uuid.NewString()
	existing := &domain.CurrencyRate{
		CurrencyCode: "USD",
		Name:         "US Dollar",
		BuyRate:      decimal.NewFromInt(15000),
		SellRate:     decimal.NullDecimal{Decimal: decimal.NewFromInt(15200), Valid: true},
	}

	suite.mockRepo.On("FindCurrencyByCode", ctx, "USD").Return(existing, nil).Once()
	suite.mockRepo.On("UpdateCurrency", ctx, mock.MatchedBy(func(c domain.CurrencyRate) bool {
		return c.CurrencyCode == "USD" && !c.SellRate.Valid && c.LastUpdatedBy == updaterUserID
	})).Return(nil).Once()

	updated, err := suite.service.UpdateCurrency(ctx, "usd", dto.UpdateCurrencyRateRequest{ClearSellRate: true}, updaterUserID)

	suite.Require().NoError(err)
	suite.False(updated.Sellable())
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestUpdateCurrency_NotFound() {
	ctx := context.Background()

	suite.mockRepo.On("FindCurrencyByCode", ctx, "XXX").Return(nil, apperrors.ErrNotFound).Once()

	updated, err := suite.service.UpdateCurrency(ctx, "XXX", dto.UpdateCurrencyRateRequest{}, uuid.NewString())

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(updated)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestDeleteCurrency_NotFound() {
	ctx := context.Background()

	suite.mockRepo.On("DeleteCurrency", ctx, "XXX").Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteCurrency(ctx, "xxx", uuid.NewString())

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestListCurrencies_EmptyIsNotNil() {
	ctx := context.Background()

	suite.mockRepo.On("ListCurrencies", ctx).Return([]domain.CurrencyRate{}, nil).Once()

	currencies, err := suite.service.ListCurrencies(ctx)

	suite.Require().NoError(err)
	suite.NotNil(currencies)
	suite.Empty(currencies)
}

func TestCurrencyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CurrencyServiceTestSuite))
}

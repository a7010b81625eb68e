package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/NgurahFajar/damar-exchange-backend/internal/core/conversion"
	"github.com/NgurahFajar/damar-exchange-backend/internal/core/domain"
	"github.com/NgurahFajar/damar-exchange-backend/internal/core/services"
	"github.com/NgurahFajar/damar-exchange-backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/text/language"
)

// --- Mock RateSnapshotService ---
type MockRateSnapshotService struct {
	mock.Mock
}

func (m *MockRateSnapshotService) Snapshot(ctx context.Context, forceRefresh bool) ([]domain.CurrencyRate, error) {
	args := m.Called(ctx, forceRefresh)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CurrencyRate), args.Error(1)
}

func (m *MockRateSnapshotService) Invalidate() {
	m.Called()
}

// --- Test Suite ---
type ConversionServiceTestSuite struct {
	suite.Suite
	mockSnapshots *MockRateSnapshotService
	service       *services.ConversionService
}

func (suite *ConversionServiceTestSuite) SetupTest() {
	suite.mockSnapshots = new(MockRateSnapshotService)
	symbols := conversion.SymbolTable{"IDR": "Rp", "USD": "$"}
	suite.service = services.NewConversionService(suite.mockSnapshots, symbols, language.MustParse("id-ID"))
}

func (suite *ConversionServiceTestSuite) snapshotRates() []domain.CurrencyRate {
	return []domain.CurrencyRate{
		{
			CurrencyCode: "USD",
			Name:         "US Dollar",
			BuyRate:      decimal.RequireFromString("15000"),
			SellRate:     decimal.NullDecimal{Decimal: decimal.RequireFromString("15200"), Valid: true},
		},
		{
			CurrencyCode: "MMK",
			Name:         "Myanmar Kyat",
			BuyRate:      decimal.RequireFromString("3.5"),
		},
	}
}

// --- Test Cases ---

func (suite *ConversionServiceTestSuite) TestConvertCurrency_ForeignToPivot() {
	ctx := context.Background()
	suite.mockSnapshots.On("Snapshot", ctx, false).Return(suite.snapshotRates(), nil).Once()

	result, err := suite.service.ConvertCurrency(ctx, dto.ConvertRequest{Amount: "100", From: "usd", To: "idr"})

	suite.Require().NoError(err)
	suite.Equal("USD", result.FromCurrency)
	suite.Equal("IDR", result.ToCurrency)
	suite.True(decimal.NewFromInt(1_500_000).Equal(result.ConvertedAmount))
	suite.Equal("$ 100,00", result.FormattedAmount)
	suite.Equal("Rp 1.500.000,00", result.FormattedConverted)
	suite.True(decimal.NewFromInt(15000).Equal(result.ForwardRate))
	suite.mockSnapshots.AssertExpectations(suite.T())
}

func (suite *ConversionServiceTestSuite) TestConvertCurrency_PivotToForeign() {
	ctx := context.Background()
	suite.mockSnapshots.On("Snapshot", ctx, false).Return(suite.snapshotRates(), nil).Once()

	result, err := suite.service.ConvertCurrency(ctx, dto.ConvertRequest{Amount: "1000000", From: "IDR", To: "USD"})

	suite.Require().NoError(err)
	// 1,000,000 / 15,200 rounds to 65.79 at display precision
	suite.True(decimal.RequireFromString("65.79").Equal(result.ConvertedAmount))
	suite.mockSnapshots.AssertExpectations(suite.T())
}

func (suite *ConversionServiceTestSuite) TestConvertCurrency_ValidationShortCircuitsSnapshot() {
	result, err := suite.service.ConvertCurrency(context.Background(), dto.ConvertRequest{Amount: "", From: "USD", To: "IDR"})

	suite.Require().Error(err)
	suite.Nil(result)
	convErr, ok := conversion.AsError(err)
	suite.Require().True(ok)
	suite.Equal(conversion.KindMissingField, convErr.Kind)
	suite.mockSnapshots.AssertNotCalled(suite.T(), "Snapshot")
}

func (suite *ConversionServiceTestSuite) TestConvertCurrency_NotSellable() {
	ctx := context.Background()
	suite.mockSnapshots.On("Snapshot", ctx, false).Return(suite.snapshotRates(), nil).Once()

	result, err := suite.service.ConvertCurrency(ctx, dto.ConvertRequest{Amount: "1000", From: "IDR", To: "MMK"})

	suite.Require().Error(err)
	suite.Nil(result)
	convErr, ok := conversion.AsError(err)
	suite.Require().True(ok)
	suite.Equal(conversion.KindCurrencyNotSellable, convErr.Kind)
}

func (suite *ConversionServiceTestSuite) TestConvertCurrency_CrossCurrencyUnsupported() {
	ctx := context.Background()
	suite.mockSnapshots.On("Snapshot", ctx, false).Return(suite.snapshotRates(), nil).Once()

	result, err := suite.service.ConvertCurrency(ctx, dto.ConvertRequest{Amount: "100", From: "USD", To: "MMK"})

	suite.Require().Error(err)
	suite.Nil(result)
	convErr, ok := conversion.AsError(err)
	suite.Require().True(ok)
	suite.Equal(conversion.KindUnsupportedPair, convErr.Kind)
}

func (suite *ConversionServiceTestSuite) TestConvertCurrency_SnapshotFailure() {
	ctx := context.Background()
	suite.mockSnapshots.On("Snapshot", ctx, false).Return(nil, errors.New("database unavailable")).Once()

	result, err := suite.service.ConvertCurrency(ctx, dto.ConvertRequest{Amount: "100", From: "USD", To: "IDR"})

	suite.Require().Error(err)
	suite.Nil(result)
	_, ok := conversion.AsError(err)
	suite.False(ok, "infrastructure failure must not look like an engine error")
}

func (suite *ConversionServiceTestSuite) TestConversionTable_Success() {
	ctx := context.Background()
	suite.mockSnapshots.On("Snapshot", ctx, false).Return(suite.snapshotRates(), nil).Once()

	table, err := suite.service.ConversionTable(ctx, "usd", "idr")

	suite.Require().NoError(err)
	suite.Equal("USD", table.FromCurrency)
	suite.Equal("IDR", table.ToCurrency)
	suite.Require().Len(table.Rows, len(conversion.LadderAmounts))

	// First row: 1 USD -> 15,000 IDR and 1 IDR -> 0.00 USD at display precision.
	first := table.Rows[0]
	suite.Require().NotNil(first.Forward)
	suite.True(decimal.NewFromInt(15000).Equal(*first.Forward))
	suite.Require().NotNil(first.Reverse)
	suite.Empty(first.ForwardError)
	suite.Empty(first.ReverseError)
}

func (suite *ConversionServiceTestSuite) TestConversionTable_BuyOnlyCurrencyKeepsOneDirection() {
	ctx := context.Background()
	suite.mockSnapshots.On("Snapshot", ctx, false).Return(suite.snapshotRates(), nil).Once()

	table, err := suite.service.ConversionTable(ctx, "MMK", "IDR")

	suite.Require().NoError(err)
	for _, row := range table.Rows {
		suite.NotNil(row.Forward, "MMK -> IDR side uses the buy rate and must quote")
		suite.Nil(row.Reverse)
		suite.Equal(string(conversion.KindCurrencyNotSellable), row.ReverseError)
	}
}

func (suite *ConversionServiceTestSuite) TestConversionTable_IdenticalCurrencies() {
	table, err := suite.service.ConversionTable(context.Background(), "IDR", "idr")

	suite.Require().Error(err)
	suite.Nil(table)
	convErr, ok := conversion.AsError(err)
	suite.Require().True(ok)
	suite.Equal(conversion.KindIdenticalCurrencies, convErr.Kind)
	suite.mockSnapshots.AssertNotCalled(suite.T(), "Snapshot")
}

func (suite *ConversionServiceTestSuite) TestConversionTable_MissingCurrency() {
	table, err := suite.service.ConversionTable(context.Background(), "", "IDR")

	suite.Require().Error(err)
	suite.Nil(table)
	convErr, ok := conversion.AsError(err)
	suite.Require().True(ok)
	suite.Equal(conversion.KindMissingField, convErr.Kind)
}

func TestConversionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ConversionServiceTestSuite))
}

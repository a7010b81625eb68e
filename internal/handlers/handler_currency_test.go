package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/NgurahFajar/damar-exchange-backend/internal/core/domain"
	portssvc "github.com/NgurahFajar/damar-exchange-backend/internal/core/ports/services"
	"github.com/NgurahFajar/damar-exchange-backend/internal/dto"
	"github.com/NgurahFajar/damar-exchange-backend/internal/middleware"
	"github.com/NgurahFajar/damar-exchange-backend/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock CurrencyService ---
type MockCurrencyService struct {
	mock.Mock
}

func (m *MockCurrencyService) GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.CurrencyRate, error) {
	args := m.Called(ctx, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CurrencyRate), args.Error(1)
}

func (m *MockCurrencyService) ListCurrencies(ctx context.Context) ([]domain.CurrencyRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CurrencyRate), args.Error(1)
}

func (m *MockCurrencyService) CreateCurrency(ctx context.Context, req dto.CreateCurrencyRateRequest, creatorUserID string) (*domain.CurrencyRate, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CurrencyRate), args.Error(1)
}

func (m *MockCurrencyService) UpdateCurrency(ctx context.Context, currencyCode string, req dto.UpdateCurrencyRateRequest, updaterUserID string) (*domain.CurrencyRate, error) {
	args := m.Called(ctx, currencyCode, req, updaterUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CurrencyRate), args.Error(1)
}

func (m *MockCurrencyService) DeleteCurrency(ctx context.Context, currencyCode string, deleterUserID string) error {
	args := m.Called(ctx, currencyCode, deleterUserID)
	return args.Error(0)
}

var _ portssvc.CurrencySvcFacade = (*MockCurrencyService)(nil)

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

var _ portssvc.RateSnapshotSvc = (*MockRateSnapshotService)(nil)

// --- Test Suite ---
type CurrencyAdminHandlerTestSuite struct {
	suite.Suite
	router              *gin.Engine
	mockCurrencyService *MockCurrencyService
	mockSnapshotService *MockRateSnapshotService
}

func (suite *CurrencyAdminHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.router.Use(middleware.StructuredLoggingMiddleware(slog.Default()))

	suite.mockCurrencyService = new(MockCurrencyService)
	suite.mockSnapshotService = new(MockRateSnapshotService)

	v1 := suite.router.Group("/api/v1")
	registerCurrencyAdminRoutes(v1, suite.mockCurrencyService, suite.mockSnapshotService, &config.Config{})
}

func (suite *CurrencyAdminHandlerTestSuite) TestRefreshRateSnapshot_ForcesRebuild() {
	rates := []domain.CurrencyRate{
		{CurrencyCode: "USD", Name: "US Dollar", BuyRate: decimal.NewFromInt(15000)},
		{CurrencyCode: "EUR", Name: "Euro", BuyRate: decimal.NewFromInt(17000)},
	}
	suite.mockSnapshotService.On("Snapshot", mock.Anything, true).
		Return(rates, nil).Once()

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/currencies/refresh", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var body dto.RateSnapshotRefreshResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(2, body.CurrencyCount)
	suite.False(body.RefreshedAt.IsZero())
	suite.mockSnapshotService.AssertExpectations(suite.T())
}

func (suite *CurrencyAdminHandlerTestSuite) TestRefreshRateSnapshot_RepositoryFailureIs500() {
	suite.mockSnapshotService.On("Snapshot", mock.Anything, true).
		Return(nil, context.DeadlineExceeded).Once()

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/currencies/refresh", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusInternalServerError, w.Code)

	var body ErrorResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("Failed to refresh rate snapshot", body.Error)
	suite.mockSnapshotService.AssertExpectations(suite.T())
}

func TestCurrencyAdminHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CurrencyAdminHandlerTestSuite))
}

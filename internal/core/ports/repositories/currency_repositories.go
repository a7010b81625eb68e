package repositories

import (
	"context"
	"time"

	"github.com/NgurahFajar/damar-exchange-backend/internal/core/domain"
)

// CurrencyReader defines read operations for currency rate data
type CurrencyReader interface {
	// FindCurrencyByCode retrieves a specific currency by its code.
	FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.CurrencyRate, error)

	// ListCurrencies retrieves all tradable currencies ordered by code.
	ListCurrencies(ctx context.Context) ([]domain.CurrencyRate, error)

	// CountCurrencies returns the number of tradable currencies.
	CountCurrencies(ctx context.Context) (int64, error)

	// LatestRateUpdate returns the most recent rate modification time, or nil
	// when no currencies exist yet.
	LatestRateUpdate(ctx context.Context) (*time.Time, error)
}

// CurrencyWriter defines write operations for currency rate data
type CurrencyWriter interface {
	// SaveCurrency persists a new currency rate row.
	SaveCurrency(ctx context.Context, currency domain.CurrencyRate) error

	// UpdateCurrency updates an existing currency rate row.
	UpdateCurrency(ctx context.Context, currency domain.CurrencyRate) error

	// DeleteCurrency removes a currency by code.
	DeleteCurrency(ctx context.Context, currencyCode string) error
}

// CurrencyRepositoryFacade combines all currency-related repository interfaces
type CurrencyRepositoryFacade interface {
	CurrencyReader
	CurrencyWriter
}

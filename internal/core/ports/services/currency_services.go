package services

import (
	"context"

	"github.com/NgurahFajar/damar-exchange-backend/internal/core/domain"
	"github.com/NgurahFajar/damar-exchange-backend/internal/dto"
)

// CurrencyReaderSvc defines read operations for currency rate data
type CurrencyReaderSvc interface {
	// GetCurrencyByCode retrieves a specific currency by its code.
	GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.CurrencyRate, error)

	// ListCurrencies retrieves all tradable currencies.
	ListCurrencies(ctx context.Context) ([]domain.CurrencyRate, error)
}

// CurrencyWriterSvc defines write operations for currency rate data
type CurrencyWriterSvc interface {
	// CreateCurrency persists a new currency rate.
	CreateCurrency(ctx context.Context, req dto.CreateCurrencyRateRequest, creatorUserID string) (*domain.CurrencyRate, error)

	// UpdateCurrency updates the rates or metadata of an existing currency.
	UpdateCurrency(ctx context.Context, currencyCode string, req dto.UpdateCurrencyRateRequest, updaterUserID string) (*domain.CurrencyRate, error)

	// DeleteCurrency removes a currency from the catalog.
	DeleteCurrency(ctx context.Context, currencyCode string, deleterUserID string) error
}

// CurrencySvcFacade combines all currency-related service interfaces
type CurrencySvcFacade interface {
	CurrencyReaderSvc
	CurrencyWriterSvc
}

// RateSnapshotSvc hands out immutable point-in-time rate snapshots for the
// conversion engine. Implementations own freshness (TTL, refresh dedupe);
// the engine itself never caches.
type RateSnapshotSvc interface {
	// Snapshot returns the current rate snapshot, refreshing from the
	// repository when the cached one is stale or forceRefresh is set.
	Snapshot(ctx context.Context, forceRefresh bool) ([]domain.CurrencyRate, error)

	// Invalidate drops the cached snapshot so the next call refetches.
	Invalidate()
}

package services

import (
	"context"
	"fmt"
	"time"

	"github.com/NgurahFajar/damar-exchange-backend/internal/apperrors"
	"github.com/NgurahFajar/damar-exchange-backend/internal/core/conversion"
	"github.com/NgurahFajar/damar-exchange-backend/internal/core/domain"
	portsrepo "github.com/NgurahFajar/damar-exchange-backend/internal/core/ports/repositories"
	"github.com/NgurahFajar/damar-exchange-backend/internal/dto"
	"github.com/shopspring/decimal"
)

// CurrencyService provides business logic for the tradable currency catalog.
type CurrencyService struct {
	currencyRepo portsrepo.CurrencyRepositoryFacade
	snapshots    *RateSnapshotCache // invalidated on writes; may be nil in tests
}

// NewCurrencyService creates a new CurrencyService. The snapshot cache is
// optional; when present it is invalidated after every catalog write so the
// public converter picks up new rates immediately.
func NewCurrencyService(currencyRepo portsrepo.CurrencyRepositoryFacade, snapshots *RateSnapshotCache) *CurrencyService {
	return &CurrencyService{currencyRepo: currencyRepo, snapshots: snapshots}
}

func (s *CurrencyService) CreateCurrency(ctx context.Context, req dto.CreateCurrencyRateRequest, creatorUserID string) (*domain.CurrencyRate, error) {
	// Code format is handled by DTO binding; rates need service-level checks.
	if req.BuyRate.LessThan(decimal.Zero) {
		return nil, fmt.Errorf("%w: buy rate must not be negative", apperrors.ErrValidation)
	}
	if req.SellRate != nil && req.SellRate.LessThan(decimal.Zero) {
		return nil, fmt.Errorf("%w: sell rate must not be negative", apperrors.ErrValidation)
	}

	code := conversion.NormalizeCode(req.CurrencyCode)
	if code == domain.PivotCurrencyCode {
		return nil, fmt.Errorf("%w: %s is the pivot currency and cannot be listed", apperrors.ErrValidation, domain.PivotCurrencyCode)
	}

	now := time.Now()
	currency := domain.CurrencyRate{
		CurrencyCode: code,
		Name:         req.Name,
		BuyRate:      req.BuyRate,
		IconURL:      req.IconURL,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	if req.SellRate != nil {
		currency.SellRate = decimal.NullDecimal{Decimal: *req.SellRate, Valid: true}
	}

	if err := s.currencyRepo.SaveCurrency(ctx, currency); err != nil {
		return nil, fmt.Errorf("failed to create currency in service: %w", err)
	}

	s.invalidateSnapshots()
	return &currency, nil
}

func (s *CurrencyService) UpdateCurrency(ctx context.Context, currencyCode string, req dto.UpdateCurrencyRateRequest, updaterUserID string) (*domain.CurrencyRate, error) {
	code := conversion.NormalizeCode(currencyCode)

	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to load currency %s for update: %w", code, err)
	}

	if req.Name != nil {
		currency.Name = *req.Name
	}
	if req.BuyRate != nil {
		if req.BuyRate.LessThan(decimal.Zero) {
			return nil, fmt.Errorf("%w: buy rate must not be negative", apperrors.ErrValidation)
		}
		currency.BuyRate = *req.BuyRate
	}
	switch {
	case req.ClearSellRate:
		currency.SellRate = decimal.NullDecimal{}
	case req.SellRate != nil:
		if req.SellRate.LessThan(decimal.Zero) {
			return nil, fmt.Errorf("%w: sell rate must not be negative", apperrors.ErrValidation)
		}
		currency.SellRate = decimal.NullDecimal{Decimal: *req.SellRate, Valid: true}
	}
	if req.IconURL != nil {
		currency.IconURL = *req.IconURL
	}
	currency.LastUpdatedAt = time.Now()
	currency.LastUpdatedBy = updaterUserID

	if err := s.currencyRepo.UpdateCurrency(ctx, *currency); err != nil {
		return nil, fmt.Errorf("failed to update currency %s in service: %w", code, err)
	}

	s.invalidateSnapshots()
	return currency, nil
}

func (s *CurrencyService) DeleteCurrency(ctx context.Context, currencyCode string, deleterUserID string) error {
	code := conversion.NormalizeCode(currencyCode)
	if err := s.currencyRepo.DeleteCurrency(ctx, code); err != nil {
		return fmt.Errorf("failed to delete currency %s in service: %w", code, err)
	}
	s.invalidateSnapshots()
	return nil
}

func (s *CurrencyService) GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.CurrencyRate, error) {
	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, conversion.NormalizeCode(currencyCode))
	if err != nil {
		return nil, fmt.Errorf("failed to get currency by code in service: %w", err)
	}
	return currency, nil
}

func (s *CurrencyService) ListCurrencies(ctx context.Context) ([]domain.CurrencyRate, error) {
	currencies, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies in service: %w", err)
	}
	// Return empty slice if no currencies found, not nil
	if currencies == nil {
		return []domain.CurrencyRate{}, nil
	}
	return currencies, nil
}

func (s *CurrencyService) invalidateSnapshots() {
	if s.snapshots != nil {
		s.snapshots.Invalidate()
	}
}

package dto

import (
	"time"

	"github.com/NgurahFajar/damar-exchange-backend/internal/core/conversion"
	"github.com/NgurahFajar/damar-exchange-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateCurrencyRateRequest defines the data needed to create a new tradable currency.
// SellRate is optional: omitting it marks the currency as buy-only.
type CreateCurrencyRateRequest struct {
	CurrencyCode string           `json:"currencyCode" binding:"required,curcode"`
	Name         string           `json:"name" binding:"required"`
	BuyRate      decimal.Decimal  `json:"buyRate" binding:"required"`
	SellRate     *decimal.Decimal `json:"sellRate,omitempty"`
	IconURL      string           `json:"iconURL,omitempty"`
}

// UpdateCurrencyRateRequest defines the updatable fields of a currency.
// Nil fields are left unchanged; setting clearSellRate removes the sell quote.
type UpdateCurrencyRateRequest struct {
	Name          *string          `json:"name,omitempty"`
	BuyRate       *decimal.Decimal `json:"buyRate,omitempty"`
	SellRate      *decimal.Decimal `json:"sellRate,omitempty"`
	ClearSellRate bool             `json:"clearSellRate,omitempty"`
	IconURL       *string          `json:"iconURL,omitempty"`
}

// CurrencyRateResponse defines the data returned for a currency.
type CurrencyRateResponse struct {
	CurrencyCode  string           `json:"currencyCode"`
	Name          string           `json:"name"`
	Symbol        string           `json:"symbol"`
	BuyRate       decimal.Decimal  `json:"buyRate"`
	SellRate      *decimal.Decimal `json:"sellRate,omitempty"`
	Spread        *decimal.Decimal `json:"spread,omitempty"`
	IconURL       string           `json:"iconURL,omitempty"`
	LastUpdatedAt time.Time        `json:"lastUpdatedAt"`
}

// RateSnapshotRefreshResponse reports the result of a forced snapshot rebuild.
type RateSnapshotRefreshResponse struct {
	CurrencyCount int       `json:"currencyCount"`
	RefreshedAt   time.Time `json:"refreshedAt"`
}

// ToCurrencyRateResponse converts a domain.CurrencyRate to CurrencyRateResponse DTO
func ToCurrencyRateResponse(curr *domain.CurrencyRate, symbols conversion.SymbolTable) CurrencyRateResponse {
	resp := CurrencyRateResponse{
		CurrencyCode:  curr.CurrencyCode,
		Name:          curr.Name,
		Symbol:        symbols.Symbol(curr.CurrencyCode),
		BuyRate:       curr.BuyRate,
		IconURL:       curr.IconURL,
		LastUpdatedAt: curr.LastUpdatedAt,
	}
	if curr.SellRate.Valid {
		sell := curr.SellRate.Decimal
		spread := curr.Spread()
		resp.SellRate = &sell
		resp.Spread = &spread
	}
	return resp
}

// ToListCurrencyRateResponse converts a slice of domain.CurrencyRate to response DTOs
func ToListCurrencyRateResponse(currencies []domain.CurrencyRate, symbols conversion.SymbolTable) []CurrencyRateResponse {
	res := make([]CurrencyRateResponse, len(currencies))
	for i := range currencies {
		res[i] = ToCurrencyRateResponse(&currencies[i], symbols)
	}
	return res
}

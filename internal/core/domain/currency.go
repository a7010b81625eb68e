package domain

import "github.com/shopspring/decimal"

// PivotCurrencyCode is the only currency conversions are routed through.
// The business buys and sells foreign currency against IDR exclusively;
// there is no direct cross-currency path.
const PivotCurrencyCode = "IDR"

// CurrencyRate represents one tradable currency and its counter rates
// against the pivot. IDR itself never appears in a snapshot.
type CurrencyRate struct {
	CurrencyCode string              `json:"currencyCode"` // Primary Key (e.g., "USD"), uppercase
	Name         string              `json:"name"`         // e.g., "US Dollar"
	BuyRate      decimal.Decimal     `json:"buyRate"`      // IDR paid per unit when buying the currency
	SellRate     decimal.NullDecimal `json:"sellRate"`     // IDR charged per unit; invalid means not sellable
	IconURL      string              `json:"iconURL,omitempty"`
	AuditFields
}

// Sellable reports whether the business sells this currency at all.
// A zero sell rate still counts as sellable; only an absent rate does not.
func (c CurrencyRate) Sellable() bool {
	return c.SellRate.Valid
}

// Spread returns sellRate - buyRate. It is a derived display value and may
// legitimately be negative.
func (c CurrencyRate) Spread() decimal.Decimal {
	if !c.SellRate.Valid {
		return decimal.Zero
	}
	return c.SellRate.Decimal.Sub(c.BuyRate)
}

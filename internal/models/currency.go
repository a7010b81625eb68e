package models

import "github.com/shopspring/decimal"

// CurrencyRate represents a tradable currency row with its counter rates
// against IDR. SellRate is nullable: a currency the business only buys has
// no sell quote.
type CurrencyRate struct {
	CurrencyCode string              `json:"currencyCode" db:"currency_code"`
	Name         string              `json:"name" db:"name"`
	BuyRate      decimal.Decimal     `json:"buyRate" db:"buy_rate"`
	SellRate     decimal.NullDecimal `json:"sellRate" db:"sell_rate"`
	IconURL      string              `json:"iconURL" db:"icon_url"`
	AuditFields
}

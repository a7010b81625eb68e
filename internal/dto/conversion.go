package dto

import (
	"github.com/NgurahFajar/damar-exchange-backend/internal/core/conversion"
	"github.com/shopspring/decimal"
)

// ConvertRequest is the query form of a single conversion. Amount stays a
// string so the engine's own validation (not number coercion in binding)
// decides what is acceptable.
type ConvertRequest struct {
	Amount string `form:"amount" json:"amount"`
	From   string `form:"from" json:"from"`
	To     string `form:"to" json:"to"`
}

// ConversionResultResponse is a completed conversion with display-ready fields.
type ConversionResultResponse struct {
	Amount             decimal.Decimal `json:"amount"`
	FromCurrency       string          `json:"fromCurrency"`
	ToCurrency         string          `json:"toCurrency"`
	ConvertedAmount    decimal.Decimal `json:"convertedAmount"`
	FormattedAmount    string          `json:"formattedAmount"`
	FormattedConverted string          `json:"formattedConverted"`
	ForwardRate        decimal.Decimal `json:"forwardRate"`
	ReverseRate        decimal.Decimal `json:"reverseRate"`
}

// ConversionTableRow is one ladder amount converted in both directions.
// A nil amount with a non-empty error kind marks a direction that could not
// be quoted; the other direction still renders.
type ConversionTableRow struct {
	Amount       decimal.Decimal  `json:"amount"`
	Forward      *decimal.Decimal `json:"forward,omitempty"`
	ForwardError string           `json:"forwardError,omitempty"`
	Reverse      *decimal.Decimal `json:"reverse,omitempty"`
	ReverseError string           `json:"reverseError,omitempty"`
}

// ConversionTableResponse is the reference-amount comparison table for a pair.
type ConversionTableResponse struct {
	FromCurrency string               `json:"fromCurrency"`
	ToCurrency   string               `json:"toCurrency"`
	Rows         []ConversionTableRow `json:"rows"`
}

// ToConversionTableRow converts an engine ladder row into its transport shape,
// rounding amounts to display precision.
func ToConversionTableRow(row conversion.LadderRow) ConversionTableRow {
	out := ConversionTableRow{Amount: row.Amount}
	if row.ForwardErr != nil {
		out.ForwardError = string(row.ForwardErr.Kind)
	} else {
		forward := row.Forward.Round(conversion.AmountPrecision)
		out.Forward = &forward
	}
	if row.ReverseErr != nil {
		out.ReverseError = string(row.ReverseErr.Kind)
	} else {
		reverse := row.Reverse.Round(conversion.AmountPrecision)
		out.Reverse = &reverse
	}
	return out
}

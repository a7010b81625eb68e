package conversion

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	// RatePrecision is the display precision for derived unit rates.
	RatePrecision int32 = 6
	// AmountPrecision is the display precision for monetary amounts.
	AmountPrecision int32 = 2
)

// DefaultLocale is the locale monetary amounts are grouped in unless the
// caller supplies another tag.
var DefaultLocale = language.MustParse("id-ID")

// SymbolTable maps a currency code to its display symbol. It is injected at
// startup; the engine never hard-codes symbols.
type SymbolTable map[string]string

// Symbol returns the display symbol for a code, falling back to the code
// itself when no symbol is registered.
func (t SymbolTable) Symbol(code string) string {
	if symbol, ok := t[NormalizeCode(code)]; ok {
		return symbol
	}
	return NormalizeCode(code)
}

// RatePair holds the display-ready unit rates of one conversion.
type RatePair struct {
	// Forward is convertedAmount / amount, rounded to RatePrecision.
	Forward decimal.Decimal
	// Reverse is amount / convertedAmount, rounded to RatePrecision.
	Reverse decimal.Decimal
}

// ExchangeRates derives the forward and reverse unit rates of a completed
// conversion. A zero amount or zero converted amount cannot produce a finite
// ratio and is reported as KindDivisionByZero instead of being coerced to a
// NaN that would leak downstream.
func ExchangeRates(amount, convertedAmount decimal.Decimal) (RatePair, *Error) {
	if amount.IsZero() {
		return RatePair{}, newError(KindDivisionByZero, "amount is zero")
	}
	if convertedAmount.IsZero() {
		return RatePair{}, newError(KindDivisionByZero, "converted amount is zero")
	}
	return RatePair{
		Forward: convertedAmount.Div(amount).Round(RatePrecision),
		Reverse: amount.Div(convertedAmount).Round(RatePrecision),
	}, nil
}

// FormatAmount renders a monetary amount with locale digit grouping, exactly
// two fraction digits and the currency's display symbol prefixed.
func FormatAmount(amount decimal.Decimal, currencyCode string, symbols SymbolTable, locale language.Tag) string {
	value, _ := amount.Round(AmountPrecision).Float64()
	printer := message.NewPrinter(locale)
	return printer.Sprintf("%s %v", symbols.Symbol(currencyCode), number.Decimal(value, number.Scale(int(AmountPrecision))))
}

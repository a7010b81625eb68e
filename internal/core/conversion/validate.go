package conversion

import (
	"strings"

	"github.com/shopspring/decimal"
)

// MaxAmount is the largest amount accepted for a single conversion.
var MaxAmount = decimal.NewFromInt(999_999_999)

// NormalizeCode uppercases and trims a currency code for snapshot lookups.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Validate checks a raw conversion request before any arithmetic runs and
// returns the parsed amount on success. Rules are applied in a fixed order
// and the first failure wins:
//
//  1. empty amount or unselected currency -> KindMissingField
//  2. amount not parseable as a number    -> KindInvalidAmount
//  3. amount <= 0                         -> KindNonPositiveAmount
//  4. amount > MaxAmount                  -> KindAmountTooLarge
//  5. from == to                          -> KindIdenticalCurrencies
func Validate(amount, fromCode, toCode string) (decimal.Decimal, *Error) {
	amount = strings.TrimSpace(amount)
	fromCode = NormalizeCode(fromCode)
	toCode = NormalizeCode(toCode)

	if amount == "" || fromCode == "" || toCode == "" {
		return decimal.Zero, newError(KindMissingField, "amount and both currencies are required")
	}

	parsed, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero, newError(KindInvalidAmount, "amount is not a number: "+amount)
	}

	if parsed.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, newError(KindNonPositiveAmount, "amount must be greater than zero")
	}

	if parsed.GreaterThan(MaxAmount) {
		return decimal.Zero, newError(KindAmountTooLarge, "amount exceeds "+MaxAmount.String())
	}

	if fromCode == toCode {
		return decimal.Zero, newError(KindIdenticalCurrencies, fromCode)
	}

	return parsed, nil
}

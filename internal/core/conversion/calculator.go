package conversion

import (
	"github.com/NgurahFajar/damar-exchange-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Convert performs a single pivot-through-IDR conversion over an immutable
// rate snapshot.
//
//   - IDR -> X uses X's sell rate: result = amount / sellRate.
//   - X -> IDR uses X's buy rate:  result = amount * buyRate.
//   - X -> Y (neither side IDR) is never permitted.
//
// The result carries no intrinsic rounding; rounding to display precision
// happens only at the formatting boundary, so chained conversions do not
// accumulate rounding error. A stored rate of exactly zero is valid catalog
// data: multiplying by it yields zero, dividing by it is reported as
// KindDivisionByZero rather than left to blow up mid-pipeline.
func Convert(amount decimal.Decimal, fromCode, toCode string, rates []domain.CurrencyRate) (decimal.Decimal, *Error) {
	fromCode = NormalizeCode(fromCode)
	toCode = NormalizeCode(toCode)

	switch {
	case fromCode == domain.PivotCurrencyCode:
		target, ok := findRate(toCode, rates)
		if !ok {
			return decimal.Zero, newError(KindCurrencyNotFound, toCode)
		}
		if !target.SellRate.Valid {
			return decimal.Zero, newError(KindCurrencyNotSellable, toCode)
		}
		if target.SellRate.Decimal.IsZero() {
			return decimal.Zero, newError(KindDivisionByZero, "sell rate for "+toCode+" is zero")
		}
		return amount.Div(target.SellRate.Decimal), nil

	case toCode == domain.PivotCurrencyCode:
		source, ok := findRate(fromCode, rates)
		if !ok {
			return decimal.Zero, newError(KindCurrencyNotFound, fromCode)
		}
		return amount.Mul(source.BuyRate), nil

	default:
		return decimal.Zero, newError(KindUnsupportedPair, fromCode+"/"+toCode)
	}
}

func findRate(code string, rates []domain.CurrencyRate) (domain.CurrencyRate, bool) {
	for _, r := range rates {
		if r.CurrencyCode == code {
			return r, true
		}
	}
	return domain.CurrencyRate{}, false
}

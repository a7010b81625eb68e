package conversion_test

import (
	"testing"

	"github.com/NgurahFajar/damar-exchange-backend/internal/core/conversion"
	"github.com/NgurahFajar/damar-exchange-backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRate(code, buy, sell string) domain.CurrencyRate {
	r := domain.CurrencyRate{
		CurrencyCode: code,
		BuyRate:      decimal.RequireFromString(buy),
	}
	if sell != "" {
		r.SellRate = decimal.NullDecimal{Decimal: decimal.RequireFromString(sell), Valid: true}
	}
	return r
}

func usdOnly() []domain.CurrencyRate {
	return []domain.CurrencyRate{newRate("USD", "15000", "15200")}
}

func TestConvert_ForeignToPivotUsesBuyRate(t *testing.T) {
	got, convErr := conversion.Convert(decimal.NewFromInt(100), "USD", "IDR", usdOnly())

	require.Nil(t, convErr)
	assert.True(t, got.Equal(decimal.NewFromInt(1_500_000)), "got %s", got)
}

func TestConvert_PivotToForeignUsesSellRate(t *testing.T) {
	got, convErr := conversion.Convert(decimal.NewFromInt(1_000_000), "IDR", "USD", usdOnly())

	require.Nil(t, convErr)
	// 1,000,000 / 15,200 = 65.789473..., rounded only for display
	assert.True(t, got.Round(2).Equal(decimal.RequireFromString("65.79")), "got %s", got)
}

func TestConvert_CrossCurrencyAlwaysUnsupported(t *testing.T) {
	rates := []domain.CurrencyRate{
		newRate("USD", "15000", "15200"),
		newRate("EUR", "17000", "17300"),
	}

	tests := []struct {
		name string
		from string
		to   string
	}{
		{"both codes in snapshot", "USD", "EUR"},
		{"to code absent from snapshot", "USD", "SGD"},
		{"from code absent from snapshot", "AUD", "EUR"},
		{"neither code in snapshot", "GBP", "JPY"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, convErr := conversion.Convert(decimal.NewFromInt(50), tt.from, tt.to, rates)
			require.NotNil(t, convErr)
			assert.Equal(t, conversion.KindUnsupportedPair, convErr.Kind)
		})
	}
}

func TestConvert_CurrencyNotFound(t *testing.T) {
	_, convErr := conversion.Convert(decimal.NewFromInt(100), "SGD", "IDR", usdOnly())
	require.NotNil(t, convErr)
	assert.Equal(t, conversion.KindCurrencyNotFound, convErr.Kind)

	_, convErr = conversion.Convert(decimal.NewFromInt(100), "IDR", "SGD", usdOnly())
	require.NotNil(t, convErr)
	assert.Equal(t, conversion.KindCurrencyNotFound, convErr.Kind)
}

func TestConvert_NotSellableWithoutSellRate(t *testing.T) {
	rates := []domain.CurrencyRate{newRate("MMK", "7.5", "")}

	_, convErr := conversion.Convert(decimal.NewFromInt(10_000), "IDR", "MMK", rates)

	require.NotNil(t, convErr)
	assert.Equal(t, conversion.KindCurrencyNotSellable, convErr.Kind)
}

func TestConvert_ZeroRates(t *testing.T) {
	rates := []domain.CurrencyRate{newRate("XXX", "0", "0")}

	// Multiplying by a zero buy rate is valid catalog data and yields zero.
	got, convErr := conversion.Convert(decimal.NewFromInt(100), "XXX", "IDR", rates)
	require.Nil(t, convErr)
	assert.True(t, got.IsZero())

	// Dividing by a zero sell rate is reported, not propagated as a panic.
	_, convErr = conversion.Convert(decimal.NewFromInt(100), "IDR", "XXX", rates)
	require.NotNil(t, convErr)
	assert.Equal(t, conversion.KindDivisionByZero, convErr.Kind)
}

func TestConvert_RoundTripNearIdentity(t *testing.T) {
	// With sellRate == buyRate the spread is zero, so IDR -> c -> IDR must
	// come back to the original amount within display rounding.
	rates := []domain.CurrencyRate{newRate("SGD", "11800", "11800")}
	amounts := []string{"1", "250.50", "999999", "123456.78"}

	for _, a := range amounts {
		amount := decimal.RequireFromString(a)

		foreign, convErr := conversion.Convert(amount, "IDR", "SGD", rates)
		require.Nil(t, convErr)

		back, convErr := conversion.Convert(foreign, "SGD", "IDR", rates)
		require.Nil(t, convErr)

		assert.True(t, back.Round(2).Equal(amount.Round(2)), "amount %s came back as %s", a, back)
	}
}

func TestConvert_StrictlyIncreasingInAmount(t *testing.T) {
	rates := usdOnly()
	amounts := []int64{1, 2, 10, 999, 50_000, 999_999_999}

	var prev decimal.Decimal
	for i, a := range amounts {
		got, convErr := conversion.Convert(decimal.NewFromInt(a), "IDR", "USD", rates)
		require.Nil(t, convErr)
		if i > 0 {
			assert.True(t, got.GreaterThan(prev), "convert(%d) should exceed previous result", a)
		}
		prev = got
	}
}

func TestConvert_NormalizesCurrencyCodes(t *testing.T) {
	got, convErr := conversion.Convert(decimal.NewFromInt(100), "usd", " idr ", usdOnly())

	require.Nil(t, convErr)
	assert.True(t, got.Equal(decimal.NewFromInt(1_500_000)))
}

package conversion_test

import (
	"testing"

	"github.com/NgurahFajar/damar-exchange-backend/internal/core/conversion"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_FirstFailureWins(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		from   string
		to     string
		want   conversion.Kind
	}{
		{"empty amount beats identical currencies", "", "USD", "USD", conversion.KindMissingField},
		{"missing from currency", "100", "", "IDR", conversion.KindMissingField},
		{"missing to currency", "100", "USD", "", conversion.KindMissingField},
		{"unparseable amount beats identical currencies", "abc", "USD", "USD", conversion.KindInvalidAmount},
		{"negative amount", "-5", "USD", "IDR", conversion.KindNonPositiveAmount},
		{"zero amount", "0", "USD", "IDR", conversion.KindNonPositiveAmount},
		{"amount above limit", "1000000000", "USD", "IDR", conversion.KindAmountTooLarge},
		{"identical currencies", "100", "USD", "USD", conversion.KindIdenticalCurrencies},
		{"identical after normalization", "100", "usd", "USD", conversion.KindIdenticalCurrencies},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, convErr := conversion.Validate(tt.amount, tt.from, tt.to)
			require.NotNil(t, convErr)
			assert.Equal(t, tt.want, convErr.Kind)
			assert.True(t, convErr.UserInput())
		})
	}
}

func TestValidate_AcceptsWellFormedRequests(t *testing.T) {
	tests := []struct {
		amount string
		want   string
	}{
		{"100", "100"},
		{"100.50", "100.5"},
		{"0.01", "0.01"},
		{"999999999", "999999999"},
		{" 250 ", "250"},
	}
	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			parsed, convErr := conversion.Validate(tt.amount, "USD", "IDR")
			require.Nil(t, convErr)
			assert.True(t, parsed.Equal(decimal.RequireFromString(tt.want)), "parsed %s", parsed)
		})
	}
}

func TestValidate_LimitIsInclusive(t *testing.T) {
	_, convErr := conversion.Validate("999999999", "USD", "IDR")
	assert.Nil(t, convErr)

	_, convErr = conversion.Validate("999999999.01", "USD", "IDR")
	require.NotNil(t, convErr)
	assert.Equal(t, conversion.KindAmountTooLarge, convErr.Kind)
}

package conversion_test

import (
	"testing"

	"github.com/NgurahFajar/damar-exchange-backend/internal/core/conversion"
	"github.com/NgurahFajar/damar-exchange-backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildLadder_TenRowsBothDirections(t *testing.T) {
	rows := conversion.BuildLadder("IDR", "USD", usdOnly())

	require.Len(t, rows, 10)
	for i, row := range rows {
		assert.True(t, row.Amount.Equal(decimal.NewFromInt(conversion.LadderAmounts[i])))
		require.Nil(t, row.ForwardErr)
		require.Nil(t, row.ReverseErr)

		// Forward: IDR -> USD via the sell rate.
		wantForward := row.Amount.Div(decimal.NewFromInt(15_200))
		assert.True(t, row.Forward.Equal(wantForward), "row %d forward %s", i, row.Forward)

		// Reverse: USD -> IDR via the buy rate.
		wantReverse := row.Amount.Mul(decimal.NewFromInt(15_000))
		assert.True(t, row.Reverse.Equal(wantReverse), "row %d reverse %s", i, row.Reverse)
	}
}

func TestBuildLadder_PartialFailureKeepsOtherDirection(t *testing.T) {
	// MMK has a buy rate but no sell rate: IDR -> MMK cannot be quoted while
	// MMK -> IDR still can. Every row must render the direction that works.
	rates := []domain.CurrencyRate{newRate("MMK", "7.5", "")}

	rows := conversion.BuildLadder("IDR", "MMK", rates)

	require.Len(t, rows, 10)
	for i, row := range rows {
		require.NotNil(t, row.ForwardErr, "row %d", i)
		assert.Equal(t, conversion.KindCurrencyNotSellable, row.ForwardErr.Kind)

		require.Nil(t, row.ReverseErr, "row %d", i)
		wantReverse := row.Amount.Mul(decimal.RequireFromString("7.5"))
		assert.True(t, row.Reverse.Equal(wantReverse), "row %d reverse %s", i, row.Reverse)
	}
}

func TestBuildLadder_UnknownCurrencyFailsEveryRow(t *testing.T) {
	rows := conversion.BuildLadder("IDR", "SGD", usdOnly())

	require.Len(t, rows, 10)
	for _, row := range rows {
		require.NotNil(t, row.ForwardErr)
		assert.Equal(t, conversion.KindCurrencyNotFound, row.ForwardErr.Kind)
		require.NotNil(t, row.ReverseErr)
		assert.Equal(t, conversion.KindCurrencyNotFound, row.ReverseErr.Kind)
	}
}

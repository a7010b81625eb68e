package handlers

import (
	"testing"

	"github.com/NgurahFajar/damar-exchange-backend/internal/dto"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrencyCodeValidation(t *testing.T) {
	registerCustomValidators()
	v, ok := binding.Validator.Engine().(*validator.Validate)
	require.True(t, ok)

	testCases := []struct {
		name  string
		code  string
		valid bool
	}{
		{"standard ISO code", "USD", true},
		{"four letter code", "USDT", true},
		{"lowercase accepted", "usdt", true},
		{"digits accepted", "USD2", true},
		{"ten characters", "ABCDEFGHIJ", true},
		{"too short", "US", false},
		{"eleven characters", "ABCDEFGHIJK", false},
		{"symbol rejected", "U$D", false},
		{"space rejected", "US D", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := dto.CreateCurrencyRateRequest{
				CurrencyCode: tc.code,
				Name:         "Test Currency",
				BuyRate:      decimal.NewFromInt(15000),
			}
			err := v.Struct(req)
			if tc.valid {
				assert.NoError(t, err, "code %q should pass", tc.code)
			} else {
				assert.Error(t, err, "code %q should fail", tc.code)
			}
		})
	}
}

package cardpointe

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAmountZeroValueIsAbsent(t *testing.T) {
	var a Amount
	assert.True(t, a.IsZero())
	assert.Equal(t, "", a.String())
}

func TestAmountSerializesAsString(t *testing.T) {
	tests := []struct {
		name     string
		amount   Amount
		expected string
	}{
		{name: "decimal with cents", amount: AmountFromDecimal(decimal.RequireFromString("2.01")), expected: "2.01"},
		{name: "minor units string", amount: AmountFromString("201"), expected: "201"},
		{name: "negative forced credit", amount: AmountFromString("-5.00"), expected: "-5.00"},
		{name: "zero account verification", amount: AmountFromString("0"), expected: "0"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.False(t, tc.amount.IsZero())
			assert.Equal(t, tc.expected, tc.amount.String())
		})
	}
}

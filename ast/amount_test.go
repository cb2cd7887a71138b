package ast

import (
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/shopspring/decimal"
)

func TestAmount_Equal(t *testing.T) {
	t.Run("equal value and commodity", func(t *testing.T) {
		a := NewAmount(decimal.RequireFromString("-3.50"), "GBP")
		b := NewAmount(decimal.RequireFromString("-3.50"), "GBP")
		assert.True(t, a.Equal(b))
	})

	t.Run("different normalized representation still equal", func(t *testing.T) {
		a := NewAmount(decimal.RequireFromString("3.50"), "GBP")
		b := NewAmount(decimal.RequireFromString("3.5000"), "GBP")
		assert.True(t, a.Equal(b), "decimal equality ignores trailing zero exponent")
	})

	t.Run("different commodity never equal", func(t *testing.T) {
		a := NewAmount(decimal.RequireFromString("10"), "GBP")
		b := NewAmount(decimal.RequireFromString("10"), "USD")
		assert.False(t, a.Equal(b))
	})

	t.Run("different value not equal", func(t *testing.T) {
		a := NewAmount(decimal.RequireFromString("10"), "GBP")
		b := NewAmount(decimal.RequireFromString("10.01"), "GBP")
		assert.False(t, a.Equal(b))
	})
}

func TestParseAmount(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		a, err := ParseAmount("-3.50", "GBP")
		assert.NoError(t, err)
		assert.Equal(t, "GBP", a.Commodity)
		assert.True(t, a.Value.Equal(decimal.RequireFromString("-3.50")))
	})

	t.Run("invalid decimal", func(t *testing.T) {
		_, err := ParseAmount("not-a-number", "GBP")
		assert.Error(t, err)
	})
}

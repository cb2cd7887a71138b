package ast

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Amount is a signed decimal quantity paired with a commodity symbol (§3).
// Equality is exact decimal equality of normalized value and commodity;
// amounts are never coerced across commodities.
type Amount struct {
	Value     decimal.Decimal
	Commodity string
}

// NewAmount constructs an Amount from a decimal value and commodity symbol.
func NewAmount(value decimal.Decimal, commodity string) Amount {
	return Amount{Value: value, Commodity: commodity}
}

// ParseAmount parses a decimal literal and commodity symbol into an Amount.
func ParseAmount(value, commodity string) (Amount, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Amount{}, fmt.Errorf("invalid amount value %q: %w", value, err)
	}
	return Amount{Value: d, Commodity: commodity}, nil
}

// Equal reports exact decimal equality of normalized value and commodity.
// Amounts of different commodities are never equal, even when one is zero.
func (a Amount) Equal(other Amount) bool {
	if a.Commodity != other.Commodity {
		return false
	}
	return a.Value.Equal(other.Value)
}

// String renders the amount as "VALUE COMMODITY".
func (a Amount) String() string {
	return fmt.Sprintf("%s %s", a.Value.String(), a.Commodity)
}

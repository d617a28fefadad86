package ratio

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// InfinitySymbol is how an infinite ratio is displayed.
const InfinitySymbol = "∞"

// Value is a ratio result. A zero denominator yields either Infinity or
// zero depending on the ratio; it is never an error.
type Value struct {
	Amount   decimal.Decimal
	Infinite bool
}

// Infinity is the positive infinite value.
var Infinity = Value{Infinite: true}

// Finite wraps d.
func Finite(d decimal.Decimal) Value {
	return Value{Amount: d}
}

// Zero is a finite zero.
func Zero() Value {
	return Value{Amount: decimal.Zero}
}

// Format renders v with the given number of decimal places.
func (v Value) Format(places int32) string {
	if v.Infinite {
		return InfinitySymbol
	}
	return v.Amount.StringFixed(places)
}

// MarshalJSON encodes a finite value as a decimal string and an infinite one
// as "Infinity".
func (v Value) MarshalJSON() ([]byte, error) {
	if v.Infinite {
		return json.Marshal("Infinity")
	}
	return json.Marshal(v.Amount.String())
}

// divide returns num/den, or onZero when den is zero.
func divide(num, den decimal.Decimal, onZero Value) Value {
	if den.IsZero() {
		return onZero
	}
	return Finite(num.Div(den))
}

// percent returns num/den×100, or zero when den is zero.
func percent(num, den decimal.Decimal) Value {
	if den.IsZero() {
		return Zero()
	}
	return Finite(num.Mul(hundred).Div(den))
}

var hundred = decimal.NewFromInt(100)

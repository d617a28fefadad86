package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money formats amounts in one currency.
type Money struct {
	cur money.Currency
}

// NewMoney returns a formatter for an ISO 4217 code.
func NewMoney(code string) (*Money, error) {
	cur := money.GetCurrency(strings.ToUpper(code))
	if cur == nil {
		return nil, fmt.Errorf("unknown currency %q", code)
	}
	return &Money{cur: *cur}, nil
}

// Code returns the currency code.
func (m *Money) Code() string {
	return m.cur.Code
}

// Format rounds d to the currency's minor unit and formats it, e.g.
// ₹1,250.00 or -₹50.00.
func (m *Money) Format(d decimal.Decimal) string {
	minor := d.Round(int32(m.cur.Fraction)).Shift(int32(m.cur.Fraction))
	if minor.Abs().GreaterThan(maxMinor) {
		return m.formatLarge(minor)
	}
	return m.cur.Formatter().Format(minor.IntPart())
}

// go-money formats int64 minor units.
var maxMinor = decimal.NewFromInt(math.MaxInt64)

// formatLarge lays out minor units the way go-money's Formatter does for
// amounts past int64.
func (m *Money) formatLarge(minor decimal.Decimal) string {
	f := m.cur.Formatter()
	digits := minor.Abs().String()
	if n := f.Fraction + 1 - len(digits); n > 0 {
		digits = strings.Repeat("0", n) + digits
	}
	whole, frac := digits[:len(digits)-f.Fraction], digits[len(digits)-f.Fraction:]

	if f.Thousand != "" {
		var b strings.Builder
		for i, c := range whole {
			if i > 0 && (len(whole)-i)%3 == 0 {
				b.WriteString(f.Thousand)
			}
			b.WriteRune(c)
		}
		whole = b.String()
	}
	amount := whole
	if f.Fraction > 0 {
		amount += f.Decimal + frac
	}

	out := strings.Replace(f.Template, "1", amount, 1)
	out = strings.Replace(out, "$", f.Grapheme, 1)
	if minor.IsNegative() {
		out = "-" + out
	}
	return out
}

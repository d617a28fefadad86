package ratio

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Rating is a qualitative interpretation of a ratio.
type Rating string

const (
	Poor      Rating = "poor"
	Good      Rating = "good"
	Excellent Rating = "excellent"
)

// Band pairs a rating with its threshold text, e.g. "< 1.0".
type Band struct {
	Rating Rating `json:"rating"`
	Range  string `json:"range"`
}

// Scale holds the two thresholds separating the three bands. Values between
// Low and High, inclusive, are Good.
type Scale struct {
	Low            decimal.Decimal
	High           decimal.Decimal
	HigherIsBetter bool

	low, high string
}

func higherIsBetter(low, high string) Scale {
	return Scale{Low: decimal.RequireFromString(low), High: decimal.RequireFromString(high), HigherIsBetter: true, low: low, high: high}
}

func lowerIsBetter(low, high string) Scale {
	return Scale{Low: decimal.RequireFromString(low), High: decimal.RequireFromString(high), low: low, high: high}
}

// Assess places v on the scale. Infinity counts as beyond High.
func (s Scale) Assess(v Value) Rating {
	below, above := false, v.Infinite
	if !v.Infinite {
		below = v.Amount.LessThan(s.Low)
		above = v.Amount.GreaterThan(s.High)
	}
	switch {
	case below && s.HigherIsBetter, above && !s.HigherIsBetter:
		return Poor
	case above && s.HigherIsBetter, below && !s.HigherIsBetter:
		return Excellent
	default:
		return Good
	}
}

// Bands labels the scale for unit u in poor, good, excellent order.
func (s Scale) Bands(u Unit) []Band {
	suffix := ""
	if u == Percent {
		suffix = "%"
	}
	lowText := fmt.Sprintf("< %s%s", s.low, suffix)
	highText := fmt.Sprintf("> %s%s", s.high, suffix)
	mid := Band{Rating: Good, Range: fmt.Sprintf("%s%s - %s%s", s.low, suffix, s.high, suffix)}

	if s.HigherIsBetter {
		return []Band{{Rating: Poor, Range: lowText}, mid, {Rating: Excellent, Range: highText}}
	}
	return []Band{{Rating: Poor, Range: highText}, mid, {Rating: Excellent, Range: lowText}}
}

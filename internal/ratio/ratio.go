// Package ratio computes liquidity, solvency and profitability ratios from
// the statement totals.
package ratio

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledgerbook/internal/statement"
)

// Category groups ratios for display.
type Category string

const (
	Liquidity     Category = "Liquidity"
	Solvency      Category = "Solvency"
	Profitability Category = "Profitability"
)

// Categories lists the categories in display order.
var Categories = []Category{Liquidity, Solvency, Profitability}

// Unit decides how a value is formatted.
type Unit string

const (
	Times   Unit = "ratio"
	Percent Unit = "percent"
)

// Ratio names.
const (
	CurrentRatio    = "Current Ratio"
	QuickRatio      = "Quick Ratio"
	DebtToEquity    = "Debt to Equity"
	DebtToAssets    = "Debt to Assets"
	NetProfitMargin = "Net Profit Margin"
	ReturnOnAssets  = "Return on Assets"
	ReturnOnEquity  = "Return on Equity"
)

// Ratio is one computed ratio with its interpretation bands.
type Ratio struct {
	Name     string
	Category Category
	Formula  string
	Unit     Unit
	Value    Value
	Scale    Scale
}

// Format renders the value: percentages with one decimal and a % sign,
// other ratios with two decimals.
func (r Ratio) Format() string {
	if r.Unit == Percent && !r.Value.Infinite {
		return r.Value.Format(1) + "%"
	}
	return r.Value.Format(2)
}

// Assess returns the band the value falls in.
func (r Ratio) Assess() Rating {
	return r.Scale.Assess(r.Value)
}

// Bands returns the labelled bands in poor, good, excellent order.
func (r Ratio) Bands() []Band {
	return r.Scale.Bands(r.Unit)
}

// MarshalJSON includes the formatted value, bands and rating.
func (r Ratio) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Name     string   `json:"name"`
		Category Category `json:"category"`
		Formula  string   `json:"formula"`
		Unit     Unit     `json:"unit"`
		Value    Value    `json:"value"`
		Display  string   `json:"display"`
		Bands    []Band   `json:"bands"`
		Rating   Rating   `json:"rating"`
	}{r.Name, r.Category, r.Formula, r.Unit, r.Value, r.Format(), r.Bands(), r.Assess()})
}

// Inputs are the totals every ratio is computed from.
type Inputs struct {
	TotalAssets        decimal.Decimal `json:"total_assets"`
	TotalLiabilities   decimal.Decimal `json:"total_liabilities"`
	TotalEquity        decimal.Decimal `json:"total_equity"`
	CurrentAssets      decimal.Decimal `json:"current_assets"`
	CurrentLiabilities decimal.Decimal `json:"current_liabilities"`
	Inventory          decimal.Decimal `json:"inventory"`
	Revenue            decimal.Decimal `json:"revenue"`
	Expenses           decimal.Decimal `json:"expenses"`
	NetIncome          decimal.Decimal `json:"net_income"`
}

// InputsFrom takes the inputs from statements built from one snapshot.
// Total Equity is the balance-sheet equity, so it includes the derived
// retained earnings (net income) as well as Capital.
func InputsFrom(st statement.Statements) Inputs {
	bs, is := st.BalanceSheet, st.IncomeStatement
	return Inputs{
		TotalAssets:        bs.TotalAssets,
		TotalLiabilities:   bs.TotalLiabilities,
		TotalEquity:        bs.TotalEquity,
		CurrentAssets:      bs.CurrentAssets.Total,
		CurrentLiabilities: bs.CurrentLiabilities.Total,
		Inventory:          bs.Inventory(),
		Revenue:            is.Revenue.Total,
		Expenses:           is.Expenses.Total,
		NetIncome:          is.NetIncome,
	}
}

// Current computes the current ratio alone.
func Current(in Inputs) Ratio {
	return Ratio{
		Name:     CurrentRatio,
		Category: Liquidity,
		Formula:  "Current Assets / Current Liabilities",
		Unit:     Times,
		Value:    divide(in.CurrentAssets, in.CurrentLiabilities, Infinity),
		Scale:    higherIsBetter("1.0", "1.5"),
	}
}

// Compute returns all seven ratios in display order.
func Compute(in Inputs) Set {
	return Set{
		Current(in),
		{
			Name:     QuickRatio,
			Category: Liquidity,
			Formula:  "(Current Assets - Inventory) / Current Liabilities",
			Unit:     Times,
			Value:    divide(in.CurrentAssets.Sub(in.Inventory), in.CurrentLiabilities, Infinity),
			Scale:    higherIsBetter("1.0", "1.5"),
		},
		{
			Name:     DebtToEquity,
			Category: Solvency,
			Formula:  "Total Liabilities / Total Equity",
			Unit:     Times,
			Value:    divide(in.TotalLiabilities, in.TotalEquity, Infinity),
			Scale:    lowerIsBetter("1.0", "2.0"),
		},
		{
			Name:     DebtToAssets,
			Category: Solvency,
			Formula:  "Total Liabilities / Total Assets",
			Unit:     Times,
			Value:    divide(in.TotalLiabilities, in.TotalAssets, Zero()),
			Scale:    lowerIsBetter("0.4", "0.6"),
		},
		{
			Name:     NetProfitMargin,
			Category: Profitability,
			Formula:  "(Net Income / Revenue) × 100",
			Unit:     Percent,
			Value:    percent(in.NetIncome, in.Revenue),
			Scale:    higherIsBetter("5", "10"),
		},
		{
			Name:     ReturnOnAssets,
			Category: Profitability,
			Formula:  "(Net Income / Total Assets) × 100",
			Unit:     Percent,
			Value:    percent(in.NetIncome, in.TotalAssets),
			Scale:    higherIsBetter("5", "10"),
		},
		{
			Name:     ReturnOnEquity,
			Category: Profitability,
			Formula:  "(Net Income / Total Equity) × 100",
			Unit:     Percent,
			Value:    percent(in.NetIncome, in.TotalEquity),
			Scale:    higherIsBetter("10", "15"),
		},
	}
}

// Set is an ordered list of ratios.
type Set []Ratio

// Get finds a ratio by name.
func (s Set) Get(name string) (Ratio, bool) {
	for _, r := range s {
		if r.Name == name {
			return r, true
		}
	}
	return Ratio{}, false
}

// InCategory returns the ratios of c, preserving order.
func (s Set) InCategory(c Category) Set {
	var out Set
	for _, r := range s {
		if r.Category == c {
			out = append(out, r)
		}
	}
	return out
}

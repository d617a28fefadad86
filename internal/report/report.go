// Package report derives every view of a ledger snapshot in one pass.
package report

import (
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledgerbook/internal/aggregate"
	"github.com/cleared-dev/ledgerbook/internal/model"
	"github.com/cleared-dev/ledgerbook/internal/ratio"
	"github.com/cleared-dev/ledgerbook/internal/statement"
)

// Summary holds the headline figures. Assets, Liabilities and Equity are raw
// signed sums by account type, so Equity includes incomes and expenses as
// booked.
type Summary struct {
	Transactions int             `json:"transactions"`
	Assets       decimal.Decimal `json:"assets"`
	Liabilities  decimal.Decimal `json:"liabilities"`
	Equity       decimal.Decimal `json:"equity"`
	CurrentRatio ratio.Ratio     `json:"current_ratio"`
}

// Report is everything derived from one snapshot.
type Report struct {
	Summary    Summary                 `json:"summary"`
	Equation   aggregate.EquationTable `json:"equation"`
	Statements statement.Statements    `json:"statements"`
	Ratios     ratio.Set               `json:"ratios"`
	Trend      []aggregate.TrendPoint  `json:"trend"`
}

// Build derives the full report from txns.
func Build(txns []model.Transaction) Report {
	st := statement.Build(txns)
	in := ratio.InputsFrom(st)
	return Report{
		Summary:    summary(txns, in),
		Equation:   aggregate.Equation(txns),
		Statements: st,
		Ratios:     ratio.Compute(in),
		Trend:      aggregate.Trend(txns),
	}
}

// BuildSummary derives only the headline figures.
func BuildSummary(txns []model.Transaction) Summary {
	return summary(txns, ratio.InputsFrom(statement.Build(txns)))
}

func summary(txns []model.Transaction, in ratio.Inputs) Summary {
	totals := aggregate.ByType(txns)
	return Summary{
		Transactions: len(txns),
		Assets:       totals.Assets,
		Liabilities:  totals.Liabilities,
		Equity:       totals.Equity,
		CurrentRatio: ratio.Current(in),
	}
}

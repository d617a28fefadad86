// Package statement builds the balance sheet, income statement and cash-flow
// statement from granular account totals.
package statement

import (
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledgerbook/internal/aggregate"
	"github.com/cleared-dev/ledgerbook/internal/model"
)

// Line is one labelled amount within a section.
type Line struct {
	Label    string          `json:"label"`
	Name     string          `json:"name,omitempty"`
	LineItem model.LineItem  `json:"line_item,omitempty"`
	Amount   decimal.Decimal `json:"amount"`
}

// Section is a titled group of lines and their total.
type Section struct {
	Title string          `json:"title"`
	Lines []Line          `json:"lines"`
	Total decimal.Decimal `json:"total"`
}

func (s *Section) add(l Line) {
	s.Lines = append(s.Lines, l)
	s.Total = s.Total.Add(l.Amount)
}

// Sum adds the lines carrying the given line item.
func (s Section) Sum(item model.LineItem) decimal.Decimal {
	sum := decimal.Zero
	for _, l := range s.Lines {
		if l.LineItem == item {
			sum = sum.Add(l.Amount)
		}
	}
	return sum
}

// accountSection lists one line per granular total matching (t, sub).
func accountSection(title string, totals aggregate.AccountTotals, t model.AccountType, sub model.SubClassification) Section {
	s := Section{Title: title, Lines: []Line{}, Total: decimal.Zero}
	for _, a := range totals.Filter(aggregate.InSub(t, sub)) {
		s.add(Line{Label: string(a.LineItem), Name: a.Name, LineItem: a.LineItem, Amount: a.Amount})
	}
	return s
}

// Statements bundles the three statements built from one snapshot.
type Statements struct {
	BalanceSheet    BalanceSheet    `json:"balance_sheet"`
	IncomeStatement IncomeStatement `json:"income_statement"`
	CashFlow        CashFlow        `json:"cash_flow"`
}

// Build derives all three statements from txns.
func Build(txns []model.Transaction) Statements {
	return FromTotals(aggregate.Accounts(txns))
}

// FromTotals derives all three statements from precomputed account totals.
func FromTotals(totals aggregate.AccountTotals) Statements {
	return Statements{
		BalanceSheet:    BalanceSheetFrom(totals),
		IncomeStatement: IncomeStatementFrom(totals),
		CashFlow:        CashFlowFrom(totals),
	}
}

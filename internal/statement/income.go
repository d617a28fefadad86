package statement

import (
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledgerbook/internal/aggregate"
	"github.com/cleared-dev/ledgerbook/internal/model"
)

// IncomeStatement nets revenue against expenses. Revenue keeps its sign;
// expenses are reported as magnitudes.
type IncomeStatement struct {
	Revenue   Section         `json:"revenue"`
	Expenses  Section         `json:"expenses"`
	NetIncome decimal.Decimal `json:"net_income"`
}

// IncomeStatementFrom builds the income statement.
func IncomeStatementFrom(totals aggregate.AccountTotals) IncomeStatement {
	is := IncomeStatement{
		Revenue:  accountSection("Revenue", totals, model.AccountTypeEquity, model.SubIncomes),
		Expenses: Section{Title: "Expenses", Lines: []Line{}, Total: decimal.Zero},
	}
	for _, a := range totals.Filter(aggregate.InSub(model.AccountTypeEquity, model.SubExpenses)) {
		is.Expenses.add(Line{Label: string(a.LineItem), Name: a.Name, LineItem: a.LineItem, Amount: a.Amount.Abs()})
	}
	is.NetIncome = is.Revenue.Total.Sub(is.Expenses.Total)
	return is
}

// netIncome is Σ incomes − Σ |expenses|, shared by the balance sheet and
// the cash-flow statement.
func netIncome(totals aggregate.AccountTotals) decimal.Decimal {
	revenue := totals.Sum(aggregate.InSub(model.AccountTypeEquity, model.SubIncomes))
	expenses := totals.SumAbs(aggregate.InSub(model.AccountTypeEquity, model.SubExpenses))
	return revenue.Sub(expenses)
}

package statement

import (
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledgerbook/internal/aggregate"
	"github.com/cleared-dev/ledgerbook/internal/model"
)

// BalanceSheet reports assets against liabilities and equity. Equity is
// capital plus retained earnings; postings booked directly to the Retained
// Earnings sub-classification are not included.
type BalanceSheet struct {
	NonCurrentAssets      Section `json:"non_current_assets"`
	CurrentAssets         Section `json:"current_assets"`
	NonCurrentLiabilities Section `json:"non_current_liabilities"`
	CurrentLiabilities    Section `json:"current_liabilities"`
	Equity                Section `json:"equity"`

	TotalAssets               decimal.Decimal `json:"total_assets"`
	TotalLiabilities          decimal.Decimal `json:"total_liabilities"`
	Capital                   decimal.Decimal `json:"capital"`
	RetainedEarnings          decimal.Decimal `json:"retained_earnings"`
	TotalEquity               decimal.Decimal `json:"total_equity"`
	TotalLiabilitiesAndEquity decimal.Decimal `json:"total_liabilities_and_equity"`
	Balanced                  bool            `json:"balanced"`
}

// BalanceSheetFrom builds the balance sheet.
func BalanceSheetFrom(totals aggregate.AccountTotals) BalanceSheet {
	bs := BalanceSheet{
		NonCurrentAssets:      accountSection("Non-Current Assets", totals, model.AccountTypeAsset, model.SubNonCurrentAssets),
		CurrentAssets:         accountSection("Current Assets", totals, model.AccountTypeAsset, model.SubCurrentAssets),
		NonCurrentLiabilities: accountSection("Non-Current Liabilities", totals, model.AccountTypeLiability, model.SubNonCurrentLiabilities),
		CurrentLiabilities:    accountSection("Current Liabilities", totals, model.AccountTypeLiability, model.SubCurrentLiabilities),
	}
	bs.TotalAssets = bs.NonCurrentAssets.Total.Add(bs.CurrentAssets.Total)
	bs.TotalLiabilities = bs.NonCurrentLiabilities.Total.Add(bs.CurrentLiabilities.Total)

	bs.Capital = totals.Sum(aggregate.InSub(model.AccountTypeEquity, model.SubCapital))
	bs.RetainedEarnings = netIncome(totals)

	bs.Equity = Section{Title: "Equity", Total: decimal.Zero}
	bs.Equity.add(Line{Label: "Capital", Amount: bs.Capital})
	bs.Equity.add(Line{Label: "Retained Earnings", Amount: bs.RetainedEarnings})
	bs.TotalEquity = bs.Equity.Total

	bs.TotalLiabilitiesAndEquity = bs.TotalLiabilities.Add(bs.TotalEquity)
	bs.Balanced = aggregate.Balanced(bs.TotalAssets, bs.TotalLiabilitiesAndEquity)
	return bs
}

// Inventory is the sum of current-asset lines classified as Inventory.
func (bs BalanceSheet) Inventory() decimal.Decimal {
	return bs.CurrentAssets.Sum(model.LineInventory)
}

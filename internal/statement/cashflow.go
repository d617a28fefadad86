package statement

import (
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledgerbook/internal/aggregate"
	"github.com/cleared-dev/ledgerbook/internal/model"
)

// CashFlow is an indirect-method cash-flow statement. NetChange is not
// reconciled with the cash held on the balance sheet.
type CashFlow struct {
	Operating Section         `json:"operating"`
	Investing Section         `json:"investing"`
	Financing Section         `json:"financing"`
	NetChange decimal.Decimal `json:"net_change"`
}

// Operating line labels.
const (
	LabelNetIncome             = "Net Income"
	LabelDepreciation          = "Depreciation and Amortization"
	LabelWorkingCapitalChanges = "Changes in Working Capital"
	LabelCapitalContribution   = "Capital Contribution"
)

// CashFlowFrom builds the cash-flow statement.
func CashFlowFrom(totals aggregate.AccountTotals) CashFlow {
	cf := CashFlow{
		Operating: Section{Title: "Operating Activities", Total: decimal.Zero},
		Investing: Section{Title: "Investing Activities", Lines: []Line{}, Total: decimal.Zero},
		Financing: Section{Title: "Financing Activities", Lines: []Line{}, Total: decimal.Zero},
	}

	depreciation := totals.SumAbs(func(k aggregate.Key) bool {
		return k.Type == model.AccountTypeEquity && k.LineItem == model.LineDepreciation
	})
	workingCapital := totals.Sum(aggregate.InSub(model.AccountTypeLiability, model.SubCurrentLiabilities)).
		Sub(totals.Sum(func(k aggregate.Key) bool {
			return k.Type == model.AccountTypeAsset && k.Sub == model.SubCurrentAssets && k.LineItem != model.LineCash
		}))

	cf.Operating.add(Line{Label: LabelNetIncome, Amount: netIncome(totals)})
	cf.Operating.add(Line{Label: LabelDepreciation, LineItem: model.LineDepreciation, Amount: depreciation})
	cf.Operating.add(Line{Label: LabelWorkingCapitalChanges, Amount: workingCapital})

	for _, a := range totals {
		switch {
		case a.Type == model.AccountTypeAsset && a.Sub == model.SubNonCurrentAssets:
			cf.Investing.add(Line{Label: "Purchase of " + string(a.LineItem), Name: a.Name, LineItem: a.LineItem, Amount: a.Amount.Neg()})
		case a.Type == model.AccountTypeLiability && a.Sub == model.SubNonCurrentLiabilities:
			cf.Financing.add(Line{Label: "Proceeds from " + string(a.LineItem), Name: a.Name, LineItem: a.LineItem, Amount: a.Amount})
		case a.Type == model.AccountTypeEquity && a.Sub == model.SubCapital:
			cf.Financing.add(Line{Label: LabelCapitalContribution, Name: a.Name, Amount: a.Amount})
		}
	}

	cf.NetChange = cf.Operating.Total.Add(cf.Investing.Total).Add(cf.Financing.Total)
	return cf
}

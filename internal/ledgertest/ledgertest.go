// Package ledgertest provides transactions shared by tests across packages.
package ledgertest

import (
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledgerbook/internal/model"
)

// Dec parses s and panics on error.
func Dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// Posting builds a posting whose selected account is its name.
func Posting(name string, t model.AccountType, sub model.SubClassification, line model.LineItem, amount string) model.Posting {
	return model.Posting{
		SelectedAccount: name,
		Name:            name,
		Type:            t,
		Sub:             sub,
		LineItem:        line,
		Amount:          Dec(amount),
	}
}

// OwnerInvestsCash: Cash 1000 / Capital 1000.
func OwnerInvestsCash() model.Transaction {
	return model.Transaction{
		Description: "Owner invests cash",
		Postings: []model.Posting{
			Posting("Cash", model.AccountTypeAsset, model.SubCurrentAssets, model.LineCash, "1000"),
			Posting("Capital", model.AccountTypeEquity, model.SubCapital, model.NotApplicable, "1000"),
		},
	}
}

// BuyEquipmentOnCredit: Equipment 500 / Accounts Payable 500.
func BuyEquipmentOnCredit() model.Transaction {
	return model.Transaction{
		Description: "Buy equipment on credit",
		Postings: []model.Posting{
			Posting("Equipment", model.AccountTypeAsset, model.SubNonCurrentAssets, model.LinePropertyPlantEquipment, "500"),
			Posting("Accounts Payable", model.AccountTypeLiability, model.SubCurrentLiabilities, model.LineTradePayables, "500"),
		},
	}
}

// SalesAndRent: cash sale of 300 and rent of 50 paid in cash.
func SalesAndRent() model.Transaction {
	return model.Transaction{
		Description: "Cash sales less rent",
		Postings: []model.Posting{
			Posting("Cash", model.AccountTypeAsset, model.SubCurrentAssets, model.LineCash, "250"),
			Posting("Sales", model.AccountTypeEquity, model.SubIncomes, model.LineRevenueFromOperations, "300"),
			Posting("Rent", model.AccountTypeEquity, model.SubExpenses, model.LineOtherExpenses, "-50"),
		},
	}
}

// Scenario returns the first n transactions of the three-step worked example.
func Scenario(n int) []model.Transaction {
	all := []model.Transaction{OwnerInvestsCash(), BuyEquipmentOnCredit(), SalesAndRent()}
	return all[:n]
}

// Trading is a larger ledger touching every statement section.
func Trading() []model.Transaction {
	return []model.Transaction{
		OwnerInvestsCash(),
		BuyEquipmentOnCredit(),
		{
			Description: "Bank loan",
			Postings: []model.Posting{
				Posting("Cash", model.AccountTypeAsset, model.SubCurrentAssets, model.LineCash, "2000"),
				Posting("Bank Loan", model.AccountTypeLiability, model.SubNonCurrentLiabilities, model.LineBorrowings, "2000"),
			},
		},
		{
			Description: "Buy stock for cash",
			Postings: []model.Posting{
				Posting("Inventory", model.AccountTypeAsset, model.SubCurrentAssets, model.LineInventory, "400"),
				Posting("Cash", model.AccountTypeAsset, model.SubCurrentAssets, model.LineCash, "-400"),
			},
		},
		{
			Description: "Sell stock on credit",
			Postings: []model.Posting{
				Posting("Receivables", model.AccountTypeAsset, model.SubCurrentAssets, model.LineTradeReceivables, "600"),
				Posting("Inventory", model.AccountTypeAsset, model.SubCurrentAssets, model.LineInventory, "-300"),
				Posting("Sales", model.AccountTypeEquity, model.SubIncomes, model.LineRevenueFromOperations, "600"),
				Posting("Cost of Goods Sold", model.AccountTypeEquity, model.SubExpenses, model.LineMaterialExpenses, "-300"),
			},
		},
		{
			Description: "Depreciate equipment",
			Postings: []model.Posting{
				Posting("Equipment", model.AccountTypeAsset, model.SubNonCurrentAssets, model.LinePropertyPlantEquipment, "-50"),
				Posting("Depreciation", model.AccountTypeEquity, model.SubExpenses, model.LineDepreciation, "-50"),
			},
		},
	}
}

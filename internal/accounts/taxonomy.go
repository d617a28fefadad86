package accounts

import (
	"errors"
	"fmt"
	"slices"

	"github.com/cleared-dev/ledgerbook/internal/model"
)

// Classification errors.
var (
	ErrUnknownType        = errors.New("unknown account type")
	ErrSubNotAllowed      = errors.New("sub-classification not allowed for account type")
	ErrLineItemNotAllowed = errors.New("line item not allowed for sub-classification")
)

var subClassifications = map[model.AccountType][]model.SubClassification{
	model.AccountTypeAsset:     {model.SubNonCurrentAssets, model.SubCurrentAssets},
	model.AccountTypeLiability: {model.SubNonCurrentLiabilities, model.SubCurrentLiabilities},
	model.AccountTypeEquity:    {model.SubCapital, model.SubRetainedEarnings, model.SubIncomes, model.SubExpenses},
}

var lineItems = map[model.SubClassification][]model.LineItem{
	model.SubNonCurrentAssets: {
		model.LinePropertyPlantEquipment,
		model.LineIntangibleAssets,
		model.LineLongTermInvestments,
		model.LineOtherNonCurrentAssets,
	},
	model.SubCurrentAssets: {
		model.LineInventory,
		model.LineTradeReceivables,
		model.LineCash,
		model.LineOtherCurrentAssets,
	},
	model.SubCurrentLiabilities: {
		model.LineTradePayables,
		model.LineShortTermBorrowings,
		model.LineOutstandingExpenses,
		model.LineShortTermProvisions,
		model.LineAdvanceFromCustomers,
		model.LineOtherCurrentLiabilities,
	},
	model.SubNonCurrentLiabilities: {
		model.LineBorrowings,
		model.LineLongTermProvisions,
		model.LineOtherNonCurrentLiabilities,
	},
	model.SubCapital:          {model.NotApplicable},
	model.SubRetainedEarnings: {model.NotApplicable},
	model.SubIncomes: {
		model.LineRevenueFromOperations,
		model.LineOtherIncomes,
	},
	model.SubExpenses: {
		model.LineMaterialExpenses,
		model.LineEmployeeCompensation,
		model.LineDepreciation,
		model.LineFinanceCosts,
		model.LineOtherExpenses,
		model.LineTaxExpenses,
	},
}

func init() {
	if err := checkTaxonomy(); err != nil {
		panic("accounts: broken taxonomy: " + err.Error())
	}
}

// checkTaxonomy verifies every account type has sub-classifications and every
// sub-classification has line items, and that no sub is shared between types.
func checkTaxonomy() error {
	owner := make(map[model.SubClassification]model.AccountType)
	for _, t := range model.AccountTypes {
		subs := subClassifications[t]
		if len(subs) == 0 {
			return fmt.Errorf("type %q has no sub-classifications", t)
		}
		for _, s := range subs {
			if prev, ok := owner[s]; ok {
				return fmt.Errorf("sub-classification %q listed under %q and %q", s, prev, t)
			}
			owner[s] = t
			if len(lineItems[s]) == 0 {
				return fmt.Errorf("sub-classification %q has no line items", s)
			}
		}
	}
	if len(owner) != len(lineItems) {
		return fmt.Errorf("%d line-item tables for %d sub-classifications", len(lineItems), len(owner))
	}
	return nil
}

// SubClassifications returns the sub-classifications allowed for an account
// type, or nil for an unknown type.
func SubClassifications(t model.AccountType) []model.SubClassification {
	return slices.Clone(subClassifications[t])
}

// LineItems returns the line items allowed for a sub-classification, or nil
// for an unknown sub-classification.
func LineItems(sub model.SubClassification) []model.LineItem {
	return slices.Clone(lineItems[sub])
}

// DefaultLineItem is the line item an entry form pre-selects for sub.
func DefaultLineItem(sub model.SubClassification) model.LineItem {
	items := lineItems[sub]
	if len(items) == 0 {
		return ""
	}
	return items[0]
}

// IsValidType reports whether t is one of the known account types.
func IsValidType(t model.AccountType) bool {
	_, ok := subClassifications[t]
	return ok
}

// Check verifies that sub belongs to t and line belongs to sub.
func Check(t model.AccountType, sub model.SubClassification, line model.LineItem) error {
	subs, ok := subClassifications[t]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownType, t)
	}
	if !slices.Contains(subs, sub) {
		return fmt.Errorf("%w: %q is not one of %s", ErrSubNotAllowed, sub, quoteAll(subs))
	}
	if !slices.Contains(lineItems[sub], line) {
		return fmt.Errorf("%w: %q is not one of %s", ErrLineItemNotAllowed, line, quoteAll(lineItems[sub]))
	}
	return nil
}

func quoteAll[T ~string](vals []T) string {
	out := "["
	for i, v := range vals {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("%q", string(v))
	}
	return out + "]"
}

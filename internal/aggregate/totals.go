// Package aggregate folds a transaction list into the totals that the
// statements and ratios are derived from.
package aggregate

import (
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledgerbook/internal/model"
)

// Tolerance is the largest difference still reported as balanced.
var Tolerance = decimal.New(1, -2)

// Balanced reports whether a and b agree within Tolerance.
func Balanced(a, b decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThan(Tolerance)
}

// TypeTotals holds the signed sum of postings per account type.
type TypeTotals struct {
	Assets      decimal.Decimal `json:"assets"`
	Liabilities decimal.Decimal `json:"liabilities"`
	Equity      decimal.Decimal `json:"equity"`
}

// ByType sums every posting under its account type.
func ByType(txns []model.Transaction) TypeTotals {
	var t TypeTotals
	for _, txn := range txns {
		for _, p := range txn.Postings {
			switch p.Type {
			case model.AccountTypeAsset:
				t.Assets = t.Assets.Add(p.Amount)
			case model.AccountTypeLiability:
				t.Liabilities = t.Liabilities.Add(p.Amount)
			case model.AccountTypeEquity:
				t.Equity = t.Equity.Add(p.Amount)
			}
		}
	}
	return t
}

// Key identifies an account at full granularity.
type Key struct {
	Type     model.AccountType       `json:"type"`
	Sub      model.SubClassification `json:"sub"`
	LineItem model.LineItem          `json:"line_item"`
	Name     string                  `json:"name"`
}

// KeyOf returns the granular key of a posting.
func KeyOf(p model.Posting) Key {
	return Key{Type: p.Type, Sub: p.Sub, LineItem: p.LineItem, Name: p.Name}
}

// AccountTotal is the signed sum of every posting sharing a Key.
type AccountTotal struct {
	Key
	Amount decimal.Decimal `json:"amount"`
}

// AccountTotals is ordered by first appearance in the ledger.
type AccountTotals []AccountTotal

// Accounts sums postings by (type, sub, line item, name). Names are compared
// exactly here; only the display buckets fold case.
func Accounts(txns []model.Transaction) AccountTotals {
	var out AccountTotals
	pos := make(map[Key]int)
	for _, txn := range txns {
		for _, p := range txn.Postings {
			k := KeyOf(p)
			i, ok := pos[k]
			if !ok {
				i = len(out)
				pos[k] = i
				out = append(out, AccountTotal{Key: k})
			}
			out[i].Amount = out[i].Amount.Add(p.Amount)
		}
	}
	return out
}

// Filter returns the totals whose key matches, preserving order.
func (a AccountTotals) Filter(match func(Key) bool) AccountTotals {
	var out AccountTotals
	for _, t := range a {
		if match(t.Key) {
			out = append(out, t)
		}
	}
	return out
}

// Sum adds the totals whose key matches.
func (a AccountTotals) Sum(match func(Key) bool) decimal.Decimal {
	sum := decimal.Zero
	for _, t := range a {
		if match(t.Key) {
			sum = sum.Add(t.Amount)
		}
	}
	return sum
}

// SumAbs adds the magnitudes of the totals whose key matches.
func (a AccountTotals) SumAbs(match func(Key) bool) decimal.Decimal {
	sum := decimal.Zero
	for _, t := range a {
		if match(t.Key) {
			sum = sum.Add(t.Amount.Abs())
		}
	}
	return sum
}

// InSub matches keys of the given type and sub-classification.
func InSub(t model.AccountType, sub model.SubClassification) func(Key) bool {
	return func(k Key) bool { return k.Type == t && k.Sub == sub }
}

// TrendPoint is one step of the running Asset+Liability total.
type TrendPoint struct {
	No          int             `json:"no"`
	Description string          `json:"description"`
	Change      decimal.Decimal `json:"change"`
	Cumulative  decimal.Decimal `json:"cumulative"`
}

// Trend returns, per transaction, the cumulative sum of its Asset and
// Liability postings. Equity postings are excluded.
func Trend(txns []model.Transaction) []TrendPoint {
	out := make([]TrendPoint, 0, len(txns))
	running := decimal.Zero
	for i, txn := range txns {
		change := decimal.Zero
		for _, p := range txn.Postings {
			if p.Type == model.AccountTypeAsset || p.Type == model.AccountTypeLiability {
				change = change.Add(p.Amount)
			}
		}
		running = running.Add(change)
		out = append(out, TrendPoint{No: i + 1, Description: txn.Description, Change: change, Cumulative: running})
	}
	return out
}

package aggregate

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledgerbook/internal/model"
)

// Bucket is a column of the accounting equation table.
type Bucket string

const (
	BucketCash        Bucket = "Cash"
	BucketInventory   Bucket = "Inventory"
	BucketEquipment   Bucket = "Equipment"
	BucketReceivable  Bucket = "Receivable"
	BucketOtherAssets Bucket = "Other Assets"
	BucketLiabilities Bucket = "Liabilities"
	BucketCapital     Bucket = "Capital"
	BucketIncomes     Bucket = "Incomes"
	BucketExpenses    Bucket = "Expenses"
)

// Buckets lists the equation table columns in display order.
var Buckets = []Bucket{
	BucketCash, BucketInventory, BucketEquipment, BucketReceivable, BucketOtherAssets,
	BucketLiabilities, BucketCapital, BucketIncomes, BucketExpenses,
}

var assetBuckets = []Bucket{BucketCash, BucketInventory, BucketEquipment, BucketReceivable, BucketOtherAssets}

var equityBuckets = []Bucket{BucketCapital, BucketIncomes, BucketExpenses}

// BucketFor assigns a posting to its equation table column. Well-known names
// win over the account type regardless of how the posting is classified.
// Postings such as Retained Earnings match nothing and are left out of the
// table.
func BucketFor(p model.Posting) (Bucket, bool) {
	switch strings.ToLower(p.Name) {
	case "cash":
		return BucketCash, true
	case "inventory":
		return BucketInventory, true
	case "equipment":
		return BucketEquipment, true
	case "receivable", "receivables":
		return BucketReceivable, true
	}

	switch p.Type {
	case model.AccountTypeAsset:
		return BucketOtherAssets, true
	case model.AccountTypeLiability:
		return BucketLiabilities, true
	case model.AccountTypeEquity:
		switch p.Sub {
		case model.SubCapital:
			return BucketCapital, true
		case model.SubIncomes, model.SubIncomeLegacy:
			return BucketIncomes, true
		case model.SubExpenses:
			return BucketExpenses, true
		}
	}
	return "", false
}

// BucketAmounts holds the non-zero bucket sums of a row or table.
type BucketAmounts map[Bucket]decimal.Decimal

// Get returns the amount for b, zero when absent.
func (m BucketAmounts) Get(b Bucket) decimal.Decimal {
	return m[b]
}

func (m BucketAmounts) add(b Bucket, amount decimal.Decimal) {
	sum := m[b].Add(amount)
	if sum.IsZero() {
		delete(m, b)
		return
	}
	m[b] = sum
}

func (m BucketAmounts) sum(bs []Bucket) decimal.Decimal {
	total := decimal.Zero
	for _, b := range bs {
		total = total.Add(m[b])
	}
	return total
}

// EquationRow is one transaction of the equation table.
type EquationRow struct {
	No          int           `json:"no"`
	Amounts     BucketAmounts `json:"amounts"`
	Description string        `json:"description"`
}

// EquationTable is the simplified Assets = Liabilities + Equity view. It is a
// display aid; the balance sheet is authoritative.
type EquationTable struct {
	Rows        []EquationRow   `json:"rows"`
	Totals      BucketAmounts   `json:"totals"`
	Assets      decimal.Decimal `json:"assets"`
	Liabilities decimal.Decimal `json:"liabilities"`
	Equity      decimal.Decimal `json:"equity"`
	Balanced    bool            `json:"balanced"`
}

// Equation builds the equation table, one row per transaction.
func Equation(txns []model.Transaction) EquationTable {
	table := EquationTable{
		Rows:   make([]EquationRow, 0, len(txns)),
		Totals: BucketAmounts{},
	}
	for i, txn := range txns {
		row := EquationRow{No: i + 1, Amounts: BucketAmounts{}, Description: txn.Description}
		for _, p := range txn.Postings {
			b, ok := BucketFor(p)
			if !ok {
				continue
			}
			row.Amounts.add(b, p.Amount)
			table.Totals.add(b, p.Amount)
		}
		table.Rows = append(table.Rows, row)
	}

	table.Assets = table.Totals.sum(assetBuckets)
	table.Liabilities = table.Totals.Get(BucketLiabilities)
	table.Equity = table.Totals.sum(equityBuckets)
	table.Balanced = Balanced(table.Assets, table.Liabilities.Add(table.Equity))
	return table
}

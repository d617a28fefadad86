package model

import "github.com/shopspring/decimal"

// Posting is one classified, signed line of a transaction.
type Posting struct {
	SelectedAccount string // account picked in the entry form; persisted as-is
	Name            string
	Type            AccountType
	Sub             SubClassification
	LineItem        LineItem
	Amount          decimal.Decimal // signed, never zero once accepted
}

// Transaction is a described, ordered set of postings. Its identity is its
// position in the ledger.
type Transaction struct {
	Description string
	Postings    []Posting
}

// Clone returns a copy that shares no slice storage with t.
func (t Transaction) Clone() Transaction {
	c := Transaction{Description: t.Description}
	if t.Postings != nil {
		c.Postings = make([]Posting, len(t.Postings))
		copy(c.Postings, t.Postings)
	}
	return c
}

// CloneAll deep-copies a transaction list.
func CloneAll(txns []Transaction) []Transaction {
	if txns == nil {
		return nil
	}
	out := make([]Transaction, len(txns))
	for i, t := range txns {
		out[i] = t.Clone()
	}
	return out
}

package accounts

import (
	"sort"

	"github.com/cleared-dev/ledgerbook/internal/model"
)

// Classification is the (type, sub, line item) triple last seen for an account.
type Classification struct {
	Type     model.AccountType       `json:"type"`
	Sub      model.SubClassification `json:"sub"`
	LineItem model.LineItem          `json:"line_item"`
}

// Index maps account names to their last-seen classification. It is derived
// from a transaction list and must be rebuilt after every ledger mutation.
type Index struct {
	byName map[string]Classification
}

// NewIndex scans txns in order; later postings override earlier ones.
func NewIndex(txns []model.Transaction) *Index {
	byName := make(map[string]Classification)
	for _, txn := range txns {
		for _, p := range txn.Postings {
			byName[p.Name] = Classification{Type: p.Type, Sub: p.Sub, LineItem: p.LineItem}
		}
	}
	return &Index{byName: byName}
}

// Names returns the known account names, sorted.
func (idx *Index) Names() []string {
	names := make([]string, 0, len(idx.byName))
	for n := range idx.byName {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the last-seen classification of name.
func (idx *Index) Lookup(name string) (Classification, bool) {
	c, ok := idx.byName[name]
	return c, ok
}

// Len returns the number of known accounts.
func (idx *Index) Len() int {
	return len(idx.byName)
}

// Fill pre-fills an unclassified posting from the index. A posting that
// already carries a type is returned unchanged; the index is a hint, never
// authoritative.
func (idx *Index) Fill(p model.Posting) model.Posting {
	if p.Type != "" {
		return p
	}
	c, ok := idx.byName[p.Name]
	if !ok {
		return p
	}
	p.Type = c.Type
	p.Sub = c.Sub
	p.LineItem = c.LineItem
	if p.SelectedAccount == "" {
		p.SelectedAccount = p.Name
	}
	return p
}

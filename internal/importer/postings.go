package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledgerbook/internal/accounts"
	"github.com/cleared-dev/ledgerbook/internal/model"
)

// PostingsHeader is the header row of a postings CSV.
const PostingsHeader = "txn,description,account_name,account_type,sub_classification,line_item,amount"

const (
	postingsNumFields = 7
	colTxn            = 0
	colDesc           = 1
	colName           = 2
	colType           = 3
	colSub            = 4
	colLineItem       = 5
	colAmount         = 6
)

// PostingsParser reads one posting per row. Rows sharing a txn value form
// one transaction, ordered by the first row of each group.
type PostingsParser struct{}

// Format returns the parser name.
func (p *PostingsParser) Format() string { return "postings" }

// Ext returns the file extension the parser accepts.
func (p *PostingsParser) Ext() string { return ".csv" }

// Parse reads a postings CSV. An empty line item is filled with the first
// line item of the sub-classification. Missing classification is left empty
// for the caller to fill from known accounts.
func (p *PostingsParser) Parse(r io.Reader) ([]model.Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = postingsNumFields
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading postings CSV: %w", err)
	}
	if len(records) <= 1 {
		return nil, nil
	}

	var txns []model.Transaction
	pos := make(map[string]int)
	for i, rec := range records[1:] {
		row := i + 2
		key := strings.TrimSpace(rec[colTxn])
		if key == "" {
			return nil, fmt.Errorf("row %d: txn must not be empty", row)
		}

		posting, err := unmarshalPosting(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}

		desc := strings.TrimSpace(rec[colDesc])
		idx, ok := pos[key]
		if !ok {
			idx = len(txns)
			pos[key] = idx
			txns = append(txns, model.Transaction{Description: desc})
		}
		txn := &txns[idx]
		switch {
		case txn.Description == "":
			txn.Description = desc
		case desc != "" && desc != txn.Description:
			return nil, fmt.Errorf("row %d: description %q differs from %q for txn %s", row, desc, txn.Description, key)
		}
		txn.Postings = append(txn.Postings, posting)
	}
	return txns, nil
}

func unmarshalPosting(rec []string) (model.Posting, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(rec[colAmount]))
	if err != nil {
		return model.Posting{}, fmt.Errorf("parsing amount %q: %w", rec[colAmount], err)
	}

	name := strings.TrimSpace(rec[colName])
	sub := model.SubClassification(strings.TrimSpace(rec[colSub]))
	line := model.LineItem(strings.TrimSpace(rec[colLineItem]))
	if line == "" && sub != "" {
		line = accounts.DefaultLineItem(sub)
	}

	return model.Posting{
		SelectedAccount: name,
		Name:            name,
		Type:            model.AccountType(strings.TrimSpace(rec[colType])),
		Sub:             sub,
		LineItem:        line,
		Amount:          amount,
	}, nil
}

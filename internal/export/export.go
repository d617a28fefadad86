// Package export flattens the ledger into tabular records.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledgerbook/internal/model"
)

// Header is the column order of the export.
var Header = []string{"Description", "Account Type", "Account Name", "Amount"}

// Record is one posting with its transaction description.
type Record struct {
	Description string            `json:"description"`
	AccountType model.AccountType `json:"account_type"`
	AccountName string            `json:"account_name"`
	Amount      decimal.Decimal   `json:"amount"`
}

// MarshalRecord converts a Record to CSV fields.
func MarshalRecord(r Record) []string {
	return []string{r.Description, string(r.AccountType), r.AccountName, r.Amount.String()}
}

// Records returns one record per posting in ledger order.
func Records(txns []model.Transaction) []Record {
	var out []Record
	for _, txn := range txns {
		for _, p := range txn.Postings {
			out = append(out, Record{
				Description: txn.Description,
				AccountType: p.Type,
				AccountName: p.Name,
				Amount:      p.Amount,
			})
		}
	}
	return out
}

// WriteCSV writes the export with a header row.
func WriteCSV(w io.Writer, txns []model.Transaction) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, r := range Records(txns) {
		if err := cw.Write(MarshalRecord(r)); err != nil {
			return fmt.Errorf("writing record: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// PostingsHeader matches the header read by the postings importer.
var PostingsHeader = []string{"txn", "description", "account_name", "account_type", "sub_classification", "line_item", "amount"}

// WritePostings writes every posting with its full classification, keyed by
// the one-based transaction number. The output can be imported again.
func WritePostings(w io.Writer, txns []model.Transaction) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(PostingsHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, txn := range txns {
		no := strconv.Itoa(i + 1)
		for _, p := range txn.Postings {
			rec := []string{no, txn.Description, p.Name, string(p.Type), string(p.Sub), string(p.LineItem), p.Amount.String()}
			if err := cw.Write(rec); err != nil {
				return fmt.Errorf("writing transaction %d: %w", i+1, err)
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

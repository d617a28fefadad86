package importer

import (
	"io"

	"github.com/cleared-dev/ledgerbook/internal/ledger"
	"github.com/cleared-dev/ledgerbook/internal/model"
)

// JSONParser reads a ledger document, e.g. another book's
// student_transactions.json.
type JSONParser struct{}

// Format returns the parser name.
func (p *JSONParser) Format() string { return "json" }

// Ext returns the file extension the parser accepts.
func (p *JSONParser) Ext() string { return ".json" }

// Parse decodes the document.
func (p *JSONParser) Parse(r io.Reader) ([]model.Transaction, error) {
	return ledger.Decode(r)
}

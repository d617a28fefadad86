package ledger

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledgerbook/internal/model"
)

// DefaultFile is the conventional ledger document name.
const DefaultFile = "student_transactions.json"

type document struct {
	SubmittedTransactions []documentTransaction `json:"submitted_transactions"`
}

type documentTransaction struct {
	Description string            `json:"description"`
	Accounts    []documentPosting `json:"accounts"`
}

type documentPosting struct {
	SelectedAccount string      `json:"selected_account"`
	Name            string      `json:"name"`
	Type            string      `json:"type"`
	Sub             string      `json:"sub"`
	LineItem        string      `json:"line_item"`
	Amount          json.Number `json:"amount"`
}

// Encode writes txns as a ledger document.
func Encode(w io.Writer, txns []model.Transaction) error {
	doc := document{SubmittedTransactions: make([]documentTransaction, len(txns))}
	for i, txn := range txns {
		dt := documentTransaction{
			Description: txn.Description,
			Accounts:    make([]documentPosting, len(txn.Postings)),
		}
		for j, p := range txn.Postings {
			dt.Accounts[j] = documentPosting{
				SelectedAccount: p.SelectedAccount,
				Name:            p.Name,
				Type:            string(p.Type),
				Sub:             string(p.Sub),
				LineItem:        string(p.LineItem),
				Amount:          json.Number(p.Amount.String()),
			}
		}
		doc.SubmittedTransactions[i] = dt
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding ledger: %w", err)
	}
	return nil
}

// Decode reads a ledger document. Amounts may be JSON numbers or numeric
// strings.
func Decode(r io.Reader) ([]model.Transaction, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding ledger: %w", err)
	}

	var txns []model.Transaction
	for i, dt := range doc.SubmittedTransactions {
		txn := model.Transaction{Description: dt.Description}
		for j, dp := range dt.Accounts {
			amount, err := decimal.NewFromString(dp.Amount.String())
			if err != nil {
				return nil, fmt.Errorf("transaction %d posting %d: parsing amount %q: %w", i+1, j+1, dp.Amount, err)
			}
			txn.Postings = append(txn.Postings, model.Posting{
				SelectedAccount: dp.SelectedAccount,
				Name:            dp.Name,
				Type:            model.AccountType(dp.Type),
				Sub:             model.SubClassification(dp.Sub),
				LineItem:        model.LineItem(dp.LineItem),
				Amount:          amount,
			})
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

// FileStore keeps the ledger in a single JSON document on disk.
type FileStore struct {
	Path string
}

// NewFileStore returns a FileStore for path.
func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

// Load reads the document. A missing file is an empty ledger.
func (s *FileStore) Load() ([]model.Transaction, error) {
	f, err := os.Open(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening ledger %s: %w", s.Path, err)
	}
	defer f.Close()

	txns, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("reading ledger %s: %w", s.Path, err)
	}
	return txns, nil
}

// Save replaces the document atomically.
func (s *FileStore) Save(txns []model.Transaction) error {
	dir := filepath.Dir(s.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating ledger dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".ledger-*.json")
	if err != nil {
		return fmt.Errorf("creating temp ledger: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return fmt.Errorf("setting ledger permissions: %w", err)
	}
	if err := Encode(tmp, txns); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp ledger: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.Path); err != nil {
		return fmt.Errorf("replacing ledger %s: %w", s.Path, err)
	}
	return nil
}

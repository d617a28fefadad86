package ledger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/ledgerbook/internal/ledgertest"
	"github.com/cleared-dev/ledgerbook/internal/model"
)

// A legacy document: amounts are floats.
const legacyDocument = `{"submitted_transactions": [
  {"description": "Owner invests cash", "accounts": [
    {"selected_account": "Other (New Account)", "name": "Cash", "type": "Asset", "sub": "Current Assets", "line_item": "Cash and Cash Equivalents", "amount": 1000.0},
    {"selected_account": "Capital", "name": "Capital", "type": "Equity", "sub": "Capital", "line_item": "Not Applicable", "amount": "1000"}
  ]}
]}`

func TestDecode_LegacyDocument(t *testing.T) {
	txns, err := Decode(strings.NewReader(legacyDocument))
	require.NoError(t, err)
	require.Len(t, txns, 1)

	txn := txns[0]
	assert.Equal(t, "Owner invests cash", txn.Description)
	require.Len(t, txn.Postings, 2)
	assert.Equal(t, "Other (New Account)", txn.Postings[0].SelectedAccount)
	assert.Equal(t, model.AccountTypeAsset, txn.Postings[0].Type)
	assert.Equal(t, model.LineCash, txn.Postings[0].LineItem)
	assert.True(t, txn.Postings[0].Amount.Equal(ledgertest.Dec("1000")))
	assert.True(t, txn.Postings[1].Amount.Equal(ledgertest.Dec("1000")))
}

func TestDecode_BadAmount(t *testing.T) {
	doc := `{"submitted_transactions":[{"description":"x","accounts":[{"name":"Cash","amount":"ten"}]}]}`
	_, err := Decode(strings.NewReader(doc))
	require.Error(t, err)
}

func TestEncode_Layout(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, ledgertest.Scenario(3)[2:]))

	out := buf.String()
	assert.Contains(t, out, `"submitted_transactions"`)
	assert.Contains(t, out, `"accounts"`)
	assert.Contains(t, out, `"line_item": "Revenue from Operations"`)
	assert.Contains(t, out, `"amount": -50`)
}

func TestEncode_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, nil))
	assert.JSONEq(t, `{"submitted_transactions": []}`, buf.String())
}

func TestFileStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "books", DefaultFile)
	store := NewFileStore(path)

	want := ledgertest.Trading()
	require.NoError(t, store.Save(want))

	got, err := store.Load()
	require.NoError(t, err)
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].Description, got[i].Description)
		require.Len(t, got[i].Postings, len(want[i].Postings))
		for j := range want[i].Postings {
			w, g := want[i].Postings[j], got[i].Postings[j]
			assert.Equal(t, w.Name, g.Name)
			assert.Equal(t, w.Type, g.Type)
			assert.Equal(t, w.Sub, g.Sub)
			assert.Equal(t, w.LineItem, g.LineItem)
			assert.True(t, w.Amount.Equal(g.Amount), "amount %s != %s", w.Amount, g.Amount)
		}
	}
}

func TestFileStore_MissingFile(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "missing.json"))
	txns, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, txns)
}

func TestFileStore_NoTempFilesLeft(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(filepath.Join(dir, DefaultFile))
	require.NoError(t, store.Save(ledgertest.Scenario(1)))
	require.NoError(t, store.Save(ledgertest.Scenario(2)))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, DefaultFile, entries[0].Name())
}

func TestBookWithFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFile)
	b, err := Open(NewFileStore(path), nil)
	require.NoError(t, err)

	_, err = b.Append(ledgertest.OwnerInvestsCash())
	require.NoError(t, err)

	reopened, err := Open(NewFileStore(path), nil)
	require.NoError(t, err)
	assert.Equal(t, 1, reopened.Len())
}

package accounts

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/ledgerbook/internal/model"
)

func testTransactions() []model.Transaction {
	return []model.Transaction{
		{
			Description: "Owner invests cash",
			Postings: []model.Posting{
				{Name: "Cash", Type: model.AccountTypeAsset, Sub: model.SubCurrentAssets, LineItem: model.LineCash, Amount: decimal.NewFromInt(1000)},
				{Name: "Capital", Type: model.AccountTypeEquity, Sub: model.SubCapital, LineItem: model.NotApplicable, Amount: decimal.NewFromInt(1000)},
			},
		},
		{
			Description: "Reclassify capital",
			Postings: []model.Posting{
				{Name: "Capital", Type: model.AccountTypeEquity, Sub: model.SubRetainedEarnings, LineItem: model.NotApplicable, Amount: decimal.NewFromInt(1)},
			},
		},
	}
}

func TestIndexNames(t *testing.T) {
	idx := NewIndex(testTransactions())
	assert.Equal(t, []string{"Capital", "Cash"}, idx.Names())
	assert.Equal(t, 2, idx.Len())
}

func TestIndexLastSeenWins(t *testing.T) {
	idx := NewIndex(testTransactions())
	c, ok := idx.Lookup("Capital")
	require.True(t, ok)
	assert.Equal(t, model.SubRetainedEarnings, c.Sub)

	_, ok = idx.Lookup("Inventory")
	assert.False(t, ok)
}

func TestIndexEmptyLedger(t *testing.T) {
	idx := NewIndex(nil)
	assert.Empty(t, idx.Names())
	assert.Equal(t, 0, idx.Len())
}

func TestIndexFill(t *testing.T) {
	idx := NewIndex(testTransactions())

	got := idx.Fill(model.Posting{Name: "Cash", Amount: decimal.NewFromInt(5)})
	assert.Equal(t, model.AccountTypeAsset, got.Type)
	assert.Equal(t, model.SubCurrentAssets, got.Sub)
	assert.Equal(t, model.LineCash, got.LineItem)
	assert.Equal(t, "Cash", got.SelectedAccount)

	// Explicit classification is never overridden.
	explicit := model.Posting{Name: "Cash", Type: model.AccountTypeLiability, Sub: model.SubCurrentLiabilities, LineItem: model.LineTradePayables}
	assert.Equal(t, explicit, idx.Fill(explicit))

	unknown := model.Posting{Name: "Goodwill"}
	assert.Equal(t, unknown, idx.Fill(unknown))
}

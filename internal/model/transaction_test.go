package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionClone(t *testing.T) {
	orig := Transaction{
		Description: "Owner invests cash",
		Postings: []Posting{
			{Name: "Cash", Type: AccountTypeAsset, Sub: SubCurrentAssets, LineItem: LineCash, Amount: decimal.NewFromInt(1000)},
		},
	}

	c := orig.Clone()
	c.Postings[0].Amount = decimal.NewFromInt(1)
	c.Description = "changed"

	assert.Equal(t, "Owner invests cash", orig.Description)
	assert.True(t, orig.Postings[0].Amount.Equal(decimal.NewFromInt(1000)), "clone must not alias postings")
}

func TestCloneAll(t *testing.T) {
	assert.Nil(t, CloneAll(nil))

	txns := []Transaction{{Description: "a", Postings: []Posting{{Name: "Cash"}}}}
	got := CloneAll(txns)
	require.Len(t, got, 1)

	got[0].Postings[0].Name = "Bank"
	assert.Equal(t, "Cash", txns[0].Postings[0].Name)
}

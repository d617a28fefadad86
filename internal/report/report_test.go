package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/ledgerbook/internal/ledgertest"
	"github.com/cleared-dev/ledgerbook/internal/ratio"
)

func TestBuildSummary_Scenarios(t *testing.T) {
	tests := []struct {
		n            int
		assets       string
		liabilities  string
		equity       string
		currentRatio string
	}{
		{1, "1000", "0", "1000", "∞"},
		{2, "1500", "500", "1000", "2.00"},
		{3, "1750", "500", "1250", "2.50"},
	}
	for _, tt := range tests {
		s := BuildSummary(ledgertest.Scenario(tt.n))
		assert.Equal(t, tt.n, s.Transactions)
		assert.True(t, s.Assets.Equal(ledgertest.Dec(tt.assets)), "scenario %d assets %s", tt.n, s.Assets)
		assert.True(t, s.Liabilities.Equal(ledgertest.Dec(tt.liabilities)), "scenario %d liabilities %s", tt.n, s.Liabilities)
		assert.True(t, s.Equity.Equal(ledgertest.Dec(tt.equity)), "scenario %d equity %s", tt.n, s.Equity)
		assert.Equal(t, tt.currentRatio, s.CurrentRatio.Format(), "scenario %d", tt.n)
	}
}

func TestBuild_Consistent(t *testing.T) {
	r := Build(ledgertest.Trading())

	assert.True(t, r.Statements.BalanceSheet.Balanced)
	assert.True(t, r.Equation.Balanced)
	require.Len(t, r.Ratios, 7)
	require.Len(t, r.Trend, 6)

	cr, ok := r.Ratios.Get(ratio.CurrentRatio)
	require.True(t, ok)
	assert.Equal(t, cr, r.Summary.CurrentRatio)
	assert.True(t, r.Equation.Assets.Equal(r.Statements.BalanceSheet.TotalAssets))
}

func TestBuild_Empty(t *testing.T) {
	r := Build(nil)
	assert.Zero(t, r.Summary.Transactions)
	assert.True(t, r.Summary.CurrentRatio.Value.Infinite)
	assert.Empty(t, r.Trend)
	assert.Empty(t, r.Equation.Rows)
	assert.True(t, r.Statements.BalanceSheet.Balanced)
}

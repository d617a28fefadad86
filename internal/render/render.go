// Package render turns derived reports into markdown.
package render

import (
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledgerbook/internal/accounts"
	"github.com/cleared-dev/ledgerbook/internal/aggregate"
	"github.com/cleared-dev/ledgerbook/internal/model"
	"github.com/cleared-dev/ledgerbook/internal/ratio"
	"github.com/cleared-dev/ledgerbook/internal/report"
	"github.com/cleared-dev/ledgerbook/internal/statement"
)

//go:embed templates/*.md
var templates embed.FS

// Renderer executes the embedded templates with one currency.
type Renderer struct {
	money    *Money
	business string
	tmpl     *template.Template
}

// New parses the templates. currency is an ISO 4217 code; business is shown
// under each report title when set.
func New(currency, business string) (*Renderer, error) {
	m, err := NewMoney(currency)
	if err != nil {
		return nil, err
	}
	r := &Renderer{money: m, business: business}

	tmpl, err := template.New("").Funcs(r.funcs()).ParseFS(templates, "templates/*.md")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	r.tmpl = tmpl
	return r, nil
}

func (r *Renderer) funcs() template.FuncMap {
	return template.FuncMap{
		"money":      r.money.Format,
		"business":   func() string { return r.business },
		"esc":        escape,
		"title":      title,
		"buckets":    func() []aggregate.Bucket { return aggregate.Buckets },
		"categories": func() []ratio.Category { return ratio.Categories },
		"cell": func(m aggregate.BucketAmounts, b aggregate.Bucket) string {
			v := m.Get(b)
			if v.IsZero() {
				return ""
			}
			return r.money.Format(v)
		},
		"balanced": func(ok bool) string {
			if ok {
				return "✅ Balanced"
			}
			return "❌ Not balanced"
		},
		"add": func(a, b decimal.Decimal) decimal.Decimal { return a.Add(b) },
		"inc": func(i int) int { return i + 1 },
	}
}

func (r *Renderer) execute(name string, data any) (string, error) {
	var b strings.Builder
	if err := r.tmpl.ExecuteTemplate(&b, name, data); err != nil {
		return "", fmt.Errorf("rendering %s: %w", name, err)
	}
	return b.String(), nil
}

// Summary renders the headline figures.
func (r *Renderer) Summary(s report.Summary) (string, error) {
	return r.execute("summary.md", s)
}

// Transactions renders the ledger, one section per transaction.
func (r *Renderer) Transactions(txns []model.Transaction) (string, error) {
	return r.execute("transactions.md", txns)
}

// Equation renders the accounting equation table.
func (r *Renderer) Equation(t aggregate.EquationTable) (string, error) {
	return r.execute("equation.md", t)
}

// BalanceSheet renders the balance sheet.
func (r *Renderer) BalanceSheet(bs statement.BalanceSheet) (string, error) {
	return r.execute("balance_sheet.md", bs)
}

// IncomeStatement renders the income statement.
func (r *Renderer) IncomeStatement(is statement.IncomeStatement) (string, error) {
	return r.execute("income_statement.md", is)
}

// CashFlow renders the cash-flow statement.
func (r *Renderer) CashFlow(cf statement.CashFlow) (string, error) {
	return r.execute("cash_flow.md", cf)
}

// Statements renders all three statements.
func (r *Renderer) Statements(st statement.Statements) (string, error) {
	return r.execute("statements.md", st)
}

// Ratios renders the ratios grouped by category.
func (r *Renderer) Ratios(set ratio.Set) (string, error) {
	return r.execute("ratios.md", set)
}

// Trend renders the running Asset+Liability total.
func (r *Renderer) Trend(points []aggregate.TrendPoint) (string, error) {
	return r.execute("trend.md", points)
}

// AccountRow is one known account with its last-seen classification.
type AccountRow struct {
	Name string
	accounts.Classification
}

// Accounts renders the account names known to idx.
func (r *Renderer) Accounts(idx *accounts.Index) (string, error) {
	rows := make([]AccountRow, 0, idx.Len())
	for _, name := range idx.Names() {
		c, _ := idx.Lookup(name)
		rows = append(rows, AccountRow{Name: name, Classification: c})
	}
	return r.execute("accounts.md", rows)
}

type taxonomySub struct {
	Sub       model.SubClassification
	LineItems []model.LineItem
}

type taxonomyType struct {
	Type model.AccountType
	Subs []taxonomySub
}

// Taxonomy renders every account type with its sub-classifications and
// line items.
func (r *Renderer) Taxonomy() (string, error) {
	var types []taxonomyType
	for _, t := range model.AccountTypes {
		tt := taxonomyType{Type: t}
		for _, sub := range accounts.SubClassifications(t) {
			tt.Subs = append(tt.Subs, taxonomySub{Sub: sub, LineItems: accounts.LineItems(sub)})
		}
		types = append(types, tt)
	}
	return r.execute("taxonomy.md", types)
}

// escape keeps free text from breaking table cells.
func escape(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

func title(r ratio.Rating) string {
	s := string(r)
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

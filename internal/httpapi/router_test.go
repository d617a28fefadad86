package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/ledgerbook/internal/httpapi/handler"
	"github.com/cleared-dev/ledgerbook/internal/ledger"
	"github.com/cleared-dev/ledgerbook/internal/ledgertest"
	"github.com/cleared-dev/ledgerbook/internal/model"
)

type failingStore struct{}

func (failingStore) Load() ([]model.Transaction, error) { return nil, nil }
func (failingStore) Save([]model.Transaction) error     { return errors.New("disk full") }

func newTestRouter(t *testing.T, txns []model.Transaction) (http.Handler, *ledger.Book) {
	t.Helper()
	book := ledger.New(nil, nil)
	if len(txns) > 0 {
		require.NoError(t, book.AppendAll(txns))
	}
	return NewRouter(Config{LedgerHandler: handler.NewLedgerHandler(book)}), book
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

const ownerInvests = `{
	"description": "Owner invests cash",
	"accounts": [
		{"name": "Cash", "type": "Asset", "sub": "Current Assets", "line_item": "Cash and Cash Equivalents", "amount": 1000},
		{"name": "Capital", "type": "Equity", "sub": "Capital", "line_item": "Not Applicable", "amount": "1000"}
	]
}`

func TestHealth(t *testing.T) {
	h, _ := newTestRouter(t, ledgertest.Scenario(2))
	rec := do(t, h, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode(t, rec)
	assert.Equal(t, "ok", body["status"])
	assert.EqualValues(t, 2, body["transactions"])
	assert.NotEmpty(t, rec.Header().Get("Content-Type"))
}

func TestCreateTransaction(t *testing.T) {
	h, book := newTestRouter(t, nil)

	rec := do(t, h, http.MethodPost, "/api/v1/transactions", ownerInvests)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	body := decode(t, rec)
	assert.EqualValues(t, 0, body["index"])
	assert.Equal(t, "Owner invests cash", body["description"])

	require.Equal(t, 1, book.Len())
	txn, err := book.Get(0)
	require.NoError(t, err)
	require.Len(t, txn.Postings, 2)
	assert.Equal(t, "Cash", txn.Postings[0].SelectedAccount)
	assert.True(t, txn.Postings[1].Amount.Equal(ledgertest.Dec("1000")))
}

func TestCreateTransaction_FillsKnownAccounts(t *testing.T) {
	h, book := newTestRouter(t, ledgertest.Scenario(1))

	rec := do(t, h, http.MethodPost, "/api/v1/transactions", `{
		"description": "More capital",
		"accounts": [{"name": "Cash", "amount": 50}, {"name": "Capital", "amount": 50}]
	}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	txn, err := book.Get(1)
	require.NoError(t, err)
	assert.Equal(t, model.AccountTypeAsset, txn.Postings[0].Type)
	assert.Equal(t, model.LineCash, txn.Postings[0].LineItem)
	assert.Equal(t, model.SubCapital, txn.Postings[1].Sub)
}

func TestCreateTransaction_DefaultLineItem(t *testing.T) {
	h, book := newTestRouter(t, nil)

	rec := do(t, h, http.MethodPost, "/api/v1/transactions", `{
		"description": "Owner invests cash",
		"accounts": [
			{"name": "Stock", "type": "Asset", "sub": "Current Assets", "amount": 10},
			{"name": "Capital", "type": "Equity", "sub": "Capital", "amount": 10}
		]
	}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	txn, err := book.Get(0)
	require.NoError(t, err)
	assert.Equal(t, model.LineInventory, txn.Postings[0].LineItem)
	assert.Equal(t, model.NotApplicable, txn.Postings[1].LineItem)
}

func TestCreateTransaction_Rejected(t *testing.T) {
	h, book := newTestRouter(t, ledgertest.Scenario(1))

	rec := do(t, h, http.MethodPost, "/api/v1/transactions", `{
		"description": "",
		"accounts": [{"name": "Mystery", "type": "Asset", "sub": "Capital", "amount": 0}]
	}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body handler.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body.Error)

	fields := make([]string, len(body.Details))
	for i, d := range body.Details {
		fields[i] = d.Field
	}
	assert.ElementsMatch(t, []string{"description", "amount", "sub"}, fields)
	assert.Equal(t, 1, book.Len())
}

func TestCreateTransaction_BadJSON(t *testing.T) {
	h, book := newTestRouter(t, nil)

	for _, body := range []string{`{`, `{"description": "x", "accounts": [{"name": "Cash", "amount": "lots"}]}`} {
		rec := do(t, h, http.MethodPost, "/api/v1/transactions", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
	}
	assert.Equal(t, 0, book.Len())
}

func TestCreateTransaction_StoreFailure(t *testing.T) {
	book := ledger.New(failingStore{}, nil)
	h := NewRouter(Config{LedgerHandler: handler.NewLedgerHandler(book)})

	rec := do(t, h, http.MethodPost, "/api/v1/transactions", ownerInvests)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, decode(t, rec)["error"], "disk full")
	assert.Equal(t, 0, book.Len())
}

func TestListTransactions(t *testing.T) {
	h, _ := newTestRouter(t, ledgertest.Scenario(3))

	rec := do(t, h, http.MethodGet, "/api/v1/transactions", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body handler.TransactionListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 3, body.Count)
	require.Len(t, body.Transactions, 3)
	assert.Equal(t, 2, body.Transactions[2].Index)
	assert.Equal(t, "Cash sales less rent", body.Transactions[2].Description)
	assert.Len(t, body.Transactions[2].Accounts, 3)
}

func TestTransactionByIndex(t *testing.T) {
	h, book := newTestRouter(t, ledgertest.Scenario(3))

	rec := do(t, h, http.MethodGet, "/api/v1/transactions/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Buy equipment on credit", decode(t, rec)["description"])

	rec = do(t, h, http.MethodPut, "/api/v1/transactions/1", ownerInvests)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, 3, book.Len())
	txn, err := book.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "Owner invests cash", txn.Description)

	rec = do(t, h, http.MethodDelete, "/api/v1/transactions/0", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Owner invests cash", decode(t, rec)["description"])
	assert.Equal(t, 2, book.Len())
}

func TestTransactionByIndex_NotFound(t *testing.T) {
	h, book := newTestRouter(t, ledgertest.Scenario(2))

	tests := []struct {
		method, path, body string
	}{
		{http.MethodGet, "/api/v1/transactions/2", ""},
		{http.MethodGet, "/api/v1/transactions/-1", ""},
		{http.MethodGet, "/api/v1/transactions/abc", ""},
		{http.MethodPut, "/api/v1/transactions/5", ownerInvests},
		{http.MethodDelete, "/api/v1/transactions/2", ""},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := do(t, h, tt.method, tt.path, tt.body)
			assert.Equal(t, http.StatusNotFound, rec.Code)
		})
	}
	assert.Equal(t, 2, book.Len())
}

func TestReplaceTransaction_Rejected(t *testing.T) {
	h, book := newTestRouter(t, ledgertest.Scenario(2))

	rec := do(t, h, http.MethodPut, "/api/v1/transactions/0", `{"description": "nothing", "accounts": []}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	txn, err := book.Get(0)
	require.NoError(t, err)
	assert.Equal(t, "Owner invests cash", txn.Description)
}

func TestClearTransactions(t *testing.T) {
	h, book := newTestRouter(t, ledgertest.Scenario(3))

	rec := do(t, h, http.MethodDelete, "/api/v1/transactions", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, 0, book.Len())
}

func TestSummary(t *testing.T) {
	h, _ := newTestRouter(t, ledgertest.Scenario(2))

	rec := do(t, h, http.MethodGet, "/api/v1/summary", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode(t, rec)
	assert.EqualValues(t, 2, body["transactions"])
	assert.Equal(t, "1500", body["assets"])
	assert.Equal(t, "500", body["liabilities"])
	assert.Equal(t, "1000", body["equity"])
	cr := body["current_ratio"].(map[string]any)
	assert.Equal(t, "2.00", cr["display"])
}

func TestSummary_EmptyLedgerHasInfiniteCurrentRatio(t *testing.T) {
	h, _ := newTestRouter(t, nil)

	body := decode(t, do(t, h, http.MethodGet, "/api/v1/summary", ""))
	cr := body["current_ratio"].(map[string]any)
	assert.Equal(t, "Infinity", cr["value"])
}

func TestStatements(t *testing.T) {
	h, _ := newTestRouter(t, ledgertest.Scenario(3))

	body := decode(t, do(t, h, http.MethodGet, "/api/v1/statements", ""))
	require.Contains(t, body, "balance_sheet")
	require.Contains(t, body, "income_statement")
	require.Contains(t, body, "cash_flow")

	bs := decode(t, do(t, h, http.MethodGet, "/api/v1/statements/balance-sheet", ""))
	assert.Equal(t, true, bs["balanced"])
	assert.Equal(t, "1750", bs["total_assets"])

	is := decode(t, do(t, h, http.MethodGet, "/api/v1/statements/income", ""))
	assert.Equal(t, "250", is["net_income"])

	cf := decode(t, do(t, h, http.MethodGet, "/api/v1/statements/cash-flow", ""))
	assert.Contains(t, cf, "net_change")
}

func TestEquationAndReport(t *testing.T) {
	h, _ := newTestRouter(t, ledgertest.Trading())

	eq := decode(t, do(t, h, http.MethodGet, "/api/v1/equation", ""))
	assert.Equal(t, true, eq["balanced"])
	assert.Len(t, eq["rows"], len(ledgertest.Trading()))

	rep := decode(t, do(t, h, http.MethodGet, "/api/v1/report", ""))
	for _, key := range []string{"summary", "equation", "statements", "ratios", "trend"} {
		assert.Contains(t, rep, key)
	}
}

func TestRatios(t *testing.T) {
	h, _ := newTestRouter(t, ledgertest.Trading())

	rec := do(t, h, http.MethodGet, "/api/v1/ratios", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var all []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &all))
	assert.Len(t, all, 7)

	rec = do(t, h, http.MethodGet, "/api/v1/ratios?category=Liquidity", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var liquidity []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &liquidity))
	require.Len(t, liquidity, 2)
	assert.Equal(t, "Current Ratio", liquidity[0]["name"])
	assert.Equal(t, "6.60", liquidity[0]["display"])
	assert.Equal(t, "excellent", liquidity[0]["rating"])

	rec = do(t, h, http.MethodGet, "/api/v1/ratios?category=Vibes", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTrend(t *testing.T) {
	h, _ := newTestRouter(t, ledgertest.Scenario(3))

	rec := do(t, h, http.MethodGet, "/api/v1/trend", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var points []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &points))
	require.Len(t, points, 3)
	assert.Equal(t, "2250", points[2]["cumulative"])
}

func TestAccountsAndTaxonomy(t *testing.T) {
	h, _ := newTestRouter(t, ledgertest.Scenario(3))

	rec := do(t, h, http.MethodGet, "/api/v1/accounts", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var accts []handler.AccountResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &accts))
	require.Len(t, accts, 6)
	assert.Equal(t, "Accounts Payable", accts[0].Name)
	assert.Equal(t, model.AccountTypeLiability, accts[0].Type)

	rec = do(t, h, http.MethodGet, "/api/v1/taxonomy", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var types []handler.TypeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &types))
	require.Len(t, types, 3)
	assert.Equal(t, model.AccountTypeAsset, types[0].Type)
	assert.Len(t, types[2].Subs, 4)
}

func TestExport(t *testing.T) {
	h, _ := newTestRouter(t, ledgertest.Scenario(1))

	rec := do(t, h, http.MethodGet, "/api/v1/export", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Equal(t, "Description,Account Type,Account Name,Amount\n"+
		"Owner invests cash,Asset,Cash,1000\n"+
		"Owner invests cash,Equity,Capital,1000\n", rec.Body.String())

	rec = do(t, h, http.MethodGet, "/api/v1/export?format=postings", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Body.String(), "txn,description,"))

	rec = do(t, h, http.MethodGet, "/api/v1/export?format=xlsx", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRateLimit(t *testing.T) {
	book := ledger.New(nil, nil)
	h := NewRouter(Config{
		Context:       t.Context(),
		LedgerHandler: handler.NewLedgerHandler(book),
		RateLimit:     0.001,
		RateBurst:     1,
	})

	assert.Equal(t, http.StatusOK, do(t, h, http.MethodGet, "/health", "").Code)
	rec := do(t, h, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "rate limit exceeded")
}

func TestRateLimit_TrustProxy(t *testing.T) {
	book := ledger.New(nil, nil)
	newRouter := func(trust bool) http.Handler {
		return NewRouter(Config{
			Context:       t.Context(),
			LedgerHandler: handler.NewLedgerHandler(book),
			RateLimit:     0.001,
			RateBurst:     1,
			TrustProxy:    trust,
		})
	}
	health := func(h http.Handler, fwd string) int {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.RemoteAddr = "10.0.0.1:1000"
		req.Header.Set("X-Forwarded-For", fwd)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	direct := newRouter(false)
	assert.Equal(t, http.StatusOK, health(direct, "203.0.113.1"))
	assert.Equal(t, http.StatusTooManyRequests, health(direct, "203.0.113.2"))

	proxied := newRouter(true)
	assert.Equal(t, http.StatusOK, health(proxied, "203.0.113.1"))
	assert.Equal(t, http.StatusOK, health(proxied, "203.0.113.2"))
	assert.Equal(t, http.StatusTooManyRequests, health(proxied, "203.0.113.1"))
}

func TestCORSPreflight(t *testing.T) {
	book := ledger.New(nil, nil)
	h := NewRouter(Config{
		LedgerHandler:  handler.NewLedgerHandler(book),
		AllowedOrigins: []string{"http://localhost:3000"},
	})

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/transactions", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
}

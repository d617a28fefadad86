package handler

import (
	"bytes"
	"net/http"

	"github.com/cleared-dev/ledgerbook/internal/accounts"
	"github.com/cleared-dev/ledgerbook/internal/aggregate"
	"github.com/cleared-dev/ledgerbook/internal/export"
	"github.com/cleared-dev/ledgerbook/internal/model"
	"github.com/cleared-dev/ledgerbook/internal/ratio"
	"github.com/cleared-dev/ledgerbook/internal/report"
	"github.com/cleared-dev/ledgerbook/internal/statement"
)

// GetSummary handles GET /api/v1/summary.
func (h *LedgerHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, report.BuildSummary(h.book.Snapshot()), http.StatusOK)
}

// GetReport handles GET /api/v1/report.
func (h *LedgerHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, report.Build(h.book.Snapshot()), http.StatusOK)
}

// GetEquation handles GET /api/v1/equation.
func (h *LedgerHandler) GetEquation(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, aggregate.Equation(h.book.Snapshot()), http.StatusOK)
}

// GetStatements handles GET /api/v1/statements.
func (h *LedgerHandler) GetStatements(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, statement.Build(h.book.Snapshot()), http.StatusOK)
}

// GetBalanceSheet handles GET /api/v1/statements/balance-sheet.
func (h *LedgerHandler) GetBalanceSheet(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, statement.Build(h.book.Snapshot()).BalanceSheet, http.StatusOK)
}

// GetIncomeStatement handles GET /api/v1/statements/income.
func (h *LedgerHandler) GetIncomeStatement(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, statement.Build(h.book.Snapshot()).IncomeStatement, http.StatusOK)
}

// GetCashFlow handles GET /api/v1/statements/cash-flow.
func (h *LedgerHandler) GetCashFlow(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, statement.Build(h.book.Snapshot()).CashFlow, http.StatusOK)
}

// GetRatios handles GET /api/v1/ratios. ?category= narrows the set.
func (h *LedgerHandler) GetRatios(w http.ResponseWriter, r *http.Request) {
	set := ratio.Compute(ratio.InputsFrom(statement.Build(h.book.Snapshot())))
	if c := r.URL.Query().Get("category"); c != "" {
		set = set.InCategory(ratio.Category(c))
		if len(set) == 0 {
			respondError(w, "unknown ratio category "+c, http.StatusBadRequest)
			return
		}
	}
	respondJSON(w, set, http.StatusOK)
}

// GetTrend handles GET /api/v1/trend.
func (h *LedgerHandler) GetTrend(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, aggregate.Trend(h.book.Snapshot()), http.StatusOK)
}

// AccountResponse is one known account with its last-seen classification.
type AccountResponse struct {
	Name string `json:"name"`
	accounts.Classification
}

// ListAccounts handles GET /api/v1/accounts.
func (h *LedgerHandler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	idx := accounts.NewIndex(h.book.Snapshot())
	resp := make([]AccountResponse, 0, idx.Len())
	for _, name := range idx.Names() {
		c, _ := idx.Lookup(name)
		resp = append(resp, AccountResponse{Name: name, Classification: c})
	}
	respondJSON(w, resp, http.StatusOK)
}

// SubResponse is one sub-classification and its line items.
type SubResponse struct {
	Sub       model.SubClassification `json:"sub"`
	LineItems []model.LineItem        `json:"line_items"`
}

// TypeResponse is one account type and its sub-classifications.
type TypeResponse struct {
	Type model.AccountType `json:"type"`
	Subs []SubResponse     `json:"subs"`
}

// GetTaxonomy handles GET /api/v1/taxonomy.
func (h *LedgerHandler) GetTaxonomy(w http.ResponseWriter, r *http.Request) {
	resp := make([]TypeResponse, 0, len(model.AccountTypes))
	for _, t := range model.AccountTypes {
		tr := TypeResponse{Type: t}
		for _, sub := range accounts.SubClassifications(t) {
			tr.Subs = append(tr.Subs, SubResponse{Sub: sub, LineItems: accounts.LineItems(sub)})
		}
		resp = append(resp, tr)
	}
	respondJSON(w, resp, http.StatusOK)
}

// Export handles GET /api/v1/export. ?format=postings returns the
// re-importable postings layout instead of the flat records.
func (h *LedgerHandler) Export(w http.ResponseWriter, r *http.Request) {
	txns := h.book.Snapshot()

	var buf bytes.Buffer
	var err error
	filename := "ledger_export.csv"
	switch r.URL.Query().Get("format") {
	case "", "records":
		err = export.WriteCSV(&buf, txns)
	case "postings":
		err = export.WritePostings(&buf, txns)
		filename = "ledger_postings.csv"
	default:
		respondError(w, "unknown export format "+r.URL.Query().Get("format"), http.StatusBadRequest)
		return
	}
	if err != nil {
		respondError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

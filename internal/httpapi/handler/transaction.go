package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledgerbook/internal/accounts"
	"github.com/cleared-dev/ledgerbook/internal/ledger"
	"github.com/cleared-dev/ledgerbook/internal/model"
)

// LedgerHandler serves the ledger and everything derived from it. Each
// request works on one snapshot of the book.
type LedgerHandler struct {
	book *ledger.Book
}

// NewLedgerHandler creates a handler over book.
func NewLedgerHandler(book *ledger.Book) *LedgerHandler {
	return &LedgerHandler{book: book}
}

// PostingBody mirrors one posting of the persisted ledger document. Amount
// accepts a JSON number or a numeric string.
type PostingBody struct {
	SelectedAccount string          `json:"selected_account,omitempty"`
	Name            string          `json:"name"`
	Type            string          `json:"type,omitempty"`
	Sub             string          `json:"sub,omitempty"`
	LineItem        string          `json:"line_item,omitempty"`
	Amount          decimal.Decimal `json:"amount"`
}

// TransactionRequest is the body of POST and PUT on transactions.
type TransactionRequest struct {
	Description string        `json:"description"`
	Accounts    []PostingBody `json:"accounts"`
}

// TransactionResponse is one ledger entry with its position.
type TransactionResponse struct {
	Index       int           `json:"index"`
	Description string        `json:"description"`
	Accounts    []PostingBody `json:"accounts"`
}

// TransactionListResponse is the body of GET /transactions.
type TransactionListResponse struct {
	Count        int                   `json:"count"`
	Transactions []TransactionResponse `json:"transactions"`
}

func toResponse(i int, txn model.Transaction) TransactionResponse {
	resp := TransactionResponse{Index: i, Description: txn.Description, Accounts: make([]PostingBody, len(txn.Postings))}
	for j, p := range txn.Postings {
		resp.Accounts[j] = PostingBody{
			SelectedAccount: p.SelectedAccount,
			Name:            p.Name,
			Type:            string(p.Type),
			Sub:             string(p.Sub),
			LineItem:        string(p.LineItem),
			Amount:          p.Amount,
		}
	}
	return resp
}

// toTransaction converts a request, filling unclassified postings from the
// accounts already in the ledger.
func (req TransactionRequest) toTransaction(idx *accounts.Index) model.Transaction {
	txn := model.Transaction{Description: req.Description}
	for _, pb := range req.Accounts {
		p := idx.Fill(model.Posting{
			SelectedAccount: pb.SelectedAccount,
			Name:            pb.Name,
			Type:            model.AccountType(pb.Type),
			Sub:             model.SubClassification(pb.Sub),
			LineItem:        model.LineItem(pb.LineItem),
			Amount:          pb.Amount,
		})
		if p.LineItem == "" {
			p.LineItem = accounts.DefaultLineItem(p.Sub)
		}
		if p.SelectedAccount == "" {
			p.SelectedAccount = p.Name
		}
		txn.Postings = append(txn.Postings, p)
	}
	return txn
}

func (h *LedgerHandler) decodeTransaction(w http.ResponseWriter, r *http.Request) (model.Transaction, bool) {
	var req TransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return model.Transaction{}, false
	}
	return req.toTransaction(accounts.NewIndex(h.book.Snapshot())), true
}

// pathIndex reads {index}. Anything that is not an integer cannot name a
// transaction, so it is reported as not found.
func pathIndex(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := chi.URLParam(r, "index")
	i, err := strconv.Atoi(raw)
	if err != nil {
		respondError(w, "transaction "+strconv.Quote(raw)+" not found", http.StatusNotFound)
		return 0, false
	}
	return i, true
}

// ListTransactions handles GET /api/v1/transactions.
func (h *LedgerHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	txns := h.book.Snapshot()
	resp := TransactionListResponse{Count: len(txns), Transactions: make([]TransactionResponse, len(txns))}
	for i, txn := range txns {
		resp.Transactions[i] = toResponse(i, txn)
	}
	respondJSON(w, resp, http.StatusOK)
}

// CreateTransaction handles POST /api/v1/transactions.
func (h *LedgerHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	txn, ok := h.decodeTransaction(w, r)
	if !ok {
		return
	}
	i, err := h.book.Append(txn)
	if err != nil {
		respondLedgerError(w, err)
		return
	}
	respondJSON(w, toResponse(i, txn), http.StatusCreated)
}

// GetTransaction handles GET /api/v1/transactions/{index}.
func (h *LedgerHandler) GetTransaction(w http.ResponseWriter, r *http.Request) {
	i, ok := pathIndex(w, r)
	if !ok {
		return
	}
	txn, err := h.book.Get(i)
	if err != nil {
		respondLedgerError(w, err)
		return
	}
	respondJSON(w, toResponse(i, txn), http.StatusOK)
}

// ReplaceTransaction handles PUT /api/v1/transactions/{index}.
func (h *LedgerHandler) ReplaceTransaction(w http.ResponseWriter, r *http.Request) {
	i, ok := pathIndex(w, r)
	if !ok {
		return
	}
	txn, ok := h.decodeTransaction(w, r)
	if !ok {
		return
	}
	if err := h.book.Replace(i, txn); err != nil {
		respondLedgerError(w, err)
		return
	}
	respondJSON(w, toResponse(i, txn), http.StatusOK)
}

// DeleteTransaction handles DELETE /api/v1/transactions/{index} and returns
// the removed entry.
func (h *LedgerHandler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	i, ok := pathIndex(w, r)
	if !ok {
		return
	}
	removed, err := h.book.Delete(i)
	if err != nil {
		respondLedgerError(w, err)
		return
	}
	respondJSON(w, toResponse(i, removed), http.StatusOK)
}

// ClearTransactions handles DELETE /api/v1/transactions.
func (h *LedgerHandler) ClearTransactions(w http.ResponseWriter, r *http.Request) {
	if err := h.book.Clear(); err != nil {
		respondLedgerError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/cleared-dev/ledgerbook/internal/ledger"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error   string        `json:"error"`
	Details []ErrorDetail `json:"details,omitempty"`
}

// ErrorDetail is one rejected field of a submitted transaction.
type ErrorDetail struct {
	Posting int    `json:"posting,omitempty"` // one-based, omitted for the transaction itself
	Field   string `json:"field"`
	Reason  string `json:"reason"`
}

func respondJSON(w http.ResponseWriter, data any, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, message string, statusCode int) {
	respondJSON(w, ErrorResponse{Error: message}, statusCode)
}

// respondLedgerError maps ledger errors to status codes: validation 422,
// index 404, anything else 500.
func respondLedgerError(w http.ResponseWriter, err error) {
	var verrs ledger.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		resp := ErrorResponse{Error: err.Error(), Details: make([]ErrorDetail, len(verrs))}
		for i, v := range verrs {
			resp.Details[i] = ErrorDetail{Posting: v.Posting + 1, Field: v.Field, Reason: v.Reason}
		}
		respondJSON(w, resp, http.StatusUnprocessableEntity)
	case errors.Is(err, ledger.ErrIndexOutOfRange):
		respondError(w, err.Error(), http.StatusNotFound)
	default:
		respondError(w, err.Error(), http.StatusInternalServerError)
	}
}

package handler

import (
	"net/http"
	"time"

	"github.com/cleared-dev/ledgerbook/internal/buildinfo"
)

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status       string `json:"status"`
	Version      string `json:"version"`
	Transactions int    `json:"transactions"`
	Uptime       string `json:"uptime"`
}

var startTime = time.Now()

// GetHealth handles GET /health.
func (h *LedgerHandler) GetHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, HealthResponse{
		Status:       "ok",
		Version:      buildinfo.Version,
		Transactions: h.book.Len(),
		Uptime:       time.Since(startTime).Round(time.Second).String(),
	}, http.StatusOK)
}

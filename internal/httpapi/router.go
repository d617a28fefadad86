// Package httpapi exposes the ledger and its derived reports over HTTP.
package httpapi

import (
	"context"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/cleared-dev/ledgerbook/internal/httpapi/handler"
	"github.com/cleared-dev/ledgerbook/internal/httpapi/middleware"
	"github.com/cleared-dev/ledgerbook/internal/logger"
)

// Config holds router configuration.
type Config struct {
	// Context bounds background work such as rate limiter cleanup.
	Context        context.Context
	Logger         *logger.Logger
	AllowedOrigins []string
	RateLimit      float64 // requests per second per client, 0 disables
	RateBurst      int
	TrustProxy     bool // take the client address from X-Forwarded-For / X-Real-IP
	LedgerHandler  *handler.LedgerHandler
}

// NewRouter creates the HTTP router.
func NewRouter(cfg Config) *chi.Mux {
	if cfg.Logger == nil {
		cfg.Logger = logger.Discard()
	}
	if cfg.Context == nil {
		cfg.Context = context.Background()
	}

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	if cfg.TrustProxy {
		r.Use(chimiddleware.RealIP)
	}
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Logger(cfg.Logger))
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	r.Use(middleware.RateLimit(cfg.Context, cfg.RateLimit, cfg.RateBurst))

	h := cfg.LedgerHandler
	r.Get("/health", h.GetHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/transactions", func(r chi.Router) {
			r.Get("/", h.ListTransactions)
			r.Post("/", h.CreateTransaction)
			r.Delete("/", h.ClearTransactions)
			r.Get("/{index}", h.GetTransaction)
			r.Put("/{index}", h.ReplaceTransaction)
			r.Delete("/{index}", h.DeleteTransaction)
		})

		r.Get("/report", h.GetReport)
		r.Get("/summary", h.GetSummary)
		r.Get("/equation", h.GetEquation)
		r.Get("/statements", h.GetStatements)
		r.Get("/statements/balance-sheet", h.GetBalanceSheet)
		r.Get("/statements/income", h.GetIncomeStatement)
		r.Get("/statements/cash-flow", h.GetCashFlow)
		r.Get("/ratios", h.GetRatios)
		r.Get("/trend", h.GetTrend)
		r.Get("/accounts", h.ListAccounts)
		r.Get("/taxonomy", h.GetTaxonomy)
		r.Get("/export", h.Export)
	})

	return r
}

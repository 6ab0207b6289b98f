// Package api exposes the ledger and ingestion services over a JSON HTTP
// API. The API exists to exercise the engine; it carries no UI concerns.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pairshare/pairshare/internal/middleware"
	"github.com/pairshare/pairshare/internal/service"
)

// Server bundles the services behind the HTTP handlers.
type Server struct {
	ledger   *service.LedgerService
	imports  *service.ImportService
	receipts *service.ReceiptService
}

// NewServer creates a Server.
func NewServer(ledger *service.LedgerService, imports *service.ImportService, receipts *service.ReceiptService) *Server {
	return &Server{ledger: ledger, imports: imports, receipts: receipts}
}

// Router builds the chi router with logging and metrics middleware.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Logging)
	r.Use(middleware.Metrics)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/expenses", s.handleListExpenses)
		r.Post("/expenses", s.handleCreateExpense)
		r.Delete("/expenses/{id}", s.handleDeleteExpense)

		r.Get("/settlements", s.handleListSettlements)
		r.Post("/settlements", s.handleCreateSettlement)

		r.Get("/balance", s.handleBalance)
		r.Get("/reports/monthly", s.handleMonthlyReport)
		r.Get("/reports/categories", s.handleCategoryReport)

		r.Post("/import/preview", s.handleImportPreview)
		r.Post("/import/commit", s.handleImportCommit)

		r.Post("/receipts/extract", s.handleReceiptExtract)
	})

	return r
}

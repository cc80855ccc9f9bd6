// Package api exposes event management and the balance engine over a JSON
// HTTP API, with CSV download endpoints for reports.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rezkyandriani333-hash/SplitBill-Bayar-Bareng-Hutang-Bersama/internal/middleware"
	"github.com/rezkyandriani333-hash/SplitBill-Bayar-Bareng-Hutang-Bersama/internal/service"
)

// NewRouter builds the full route tree around the given service.
func NewRouter(svc *service.EventService) *chi.Mux {
	h := &handler{svc: svc}

	r := chi.NewRouter()
	r.Use(middleware.Metrics)
	r.Use(middleware.RequestLogger)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/export/expenses", h.exportAllExpenses)

		r.Route("/events", func(r chi.Router) {
			r.Post("/", h.createEvent)
			r.Get("/", h.listEvents)

			r.Route("/{eventID}", func(r chi.Router) {
				r.Get("/", h.getEvent)
				r.Delete("/", h.deleteEvent)
				r.Post("/reset", h.resetEvent)
				r.Post("/participants", h.addParticipant)
				r.Post("/expenses", h.addExpense)
				r.Get("/expenses", h.listExpenses)
				r.Get("/expenses/export", h.exportExpenses)
				r.Get("/balances", h.getBalances)
				r.Get("/balances/export", h.exportBalances)
				r.Get("/settlements", h.getSettlements)
				r.Get("/settlements/export", h.exportSettlements)
			})
		})
	})

	return r
}

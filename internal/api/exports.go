package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rezkyandriani333-hash/SplitBill-Bayar-Bareng-Hutang-Bersama/internal/export"
	"github.com/rezkyandriani333-hash/SplitBill-Bayar-Bareng-Hutang-Bersama/internal/models"
)

func (h *handler) exportBalances(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "eventID")
	balances, err := h.svc.Balances(r.Context(), eventID)
	if err != nil {
		writeError(w, err)
		return
	}

	serveCSV(w, fmt.Sprintf("%s_balances.csv", eventID), func(w http.ResponseWriter) error {
		return export.WriteBalances(w, balances)
	})
}

func (h *handler) exportSettlements(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "eventID")
	settlements, err := h.svc.Settlements(r.Context(), eventID)
	if err != nil {
		writeError(w, err)
		return
	}

	serveCSV(w, fmt.Sprintf("%s_settlements.csv", eventID), func(w http.ResponseWriter) error {
		return export.WriteSettlements(w, settlements)
	})
}

func (h *handler) exportExpenses(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "eventID")
	expenses, err := h.svc.ListExpenses(r.Context(), eventID)
	if err != nil {
		writeError(w, err)
		return
	}

	serveCSV(w, fmt.Sprintf("%s_expenses.csv", eventID), func(w http.ResponseWriter) error {
		return export.WriteExpenses(w, expenses)
	})
}

// exportAllExpenses dumps every expense of every event into one CSV.
func (h *handler) exportAllExpenses(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.svc.ListEvents(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	events := make([]*models.Event, 0, len(summaries))
	for _, summary := range summaries {
		event, err := h.svc.GetEvent(r.Context(), summary.ID)
		if err != nil {
			writeError(w, err)
			return
		}
		events = append(events, event)
	}

	serveCSV(w, "all_expenses.csv", func(w http.ResponseWriter) error {
		return export.WriteAllExpenses(w, events)
	})
}

// serveCSV sets download headers and streams the report. Write errors after
// the header is sent can only be logged.
func serveCSV(w http.ResponseWriter, filename string, write func(http.ResponseWriter) error) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if err := write(w); err != nil {
		slog.Error("Failed to write CSV export", "filename", filename, "error", err)
	}
}

package httpapi

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mmynk/expensetracker/internal/report"
	"github.com/mmynk/expensetracker/internal/service"
	"github.com/mmynk/expensetracker/internal/tracker"
)

type ExportHandler struct {
	tracker *tracker.Tracker
}

func NewExportHandler(t *tracker.Tracker) *ExportHandler {
	return &ExportHandler{tracker: t}
}

func (h *ExportHandler) Routes(r chi.Router) {
	r.Get("/expenses.csv", h.expensesCSV)
}

// expensesCSV streams the filtered expense table. Query parameters mirror the
// table filters: person, period, from, to (YYYY-MM-DD) and q.
func (h *ExportHandler) expensesCSV(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter, err := service.ParseFilter(q.Get("person"), q.Get("period"), q.Get("from"), q.Get("to"), q.Get("q"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	expenses, err := h.tracker.ListExpenses(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "failed to list expenses for export", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=\"expenses_%s.csv\"", time.Now().Format("20060102")))

	if err := report.WriteCSV(w, filter.Apply(expenses)); err != nil {
		slog.Error("failed to write csv", "error", err)
	}
}

package export

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/caixa/internal/export"
	"github.com/MrJamesThe3rd/caixa/internal/ledger"
)

type Handler struct {
	svc    *export.Service
	engine *ledger.Engine
}

func NewHandler(svc *export.Service, engine *ledger.Engine) *Handler {
	return &Handler{svc: svc, engine: engine}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/csv", h.csv)
	r.Get("/spreadsheet", h.spreadsheet)
	r.Get("/pdf", h.pdf)
}

// parseFilter reads the shared query parameters. An unparsable
// cashbook_id is reported; unparsable dates are ignored like elsewhere in
// the API.
func parseFilter(r *http.Request) (export.Filter, bool) {
	var filter export.Filter

	if s := r.URL.Query().Get("cashbook_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return export.Filter{}, false
		}

		filter.CashbookID = &id
	}

	if s := r.URL.Query().Get("start_date"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			filter.StartDate = new(t)
		}
	}

	if s := r.URL.Query().Get("end_date"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			filter.EndDate = new(t)
		}
	}

	return filter, true
}

func (h *Handler) csv(w http.ResponseWriter, r *http.Request) {
	filter, ok := parseFilter(r)
	if !ok {
		http.Error(w, "invalid cashbook_id", http.StatusBadRequest)
		return
	}

	rows := h.svc.Rows(h.engine.Snapshot(), filter)

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="transactions.csv"`)

	if err := h.svc.CSV(w, rows); err != nil {
		slog.Error("failed to write csv export", "error", err)
	}
}

func (h *Handler) spreadsheet(w http.ResponseWriter, r *http.Request) {
	filter, ok := parseFilter(r)
	if !ok {
		http.Error(w, "invalid cashbook_id", http.StatusBadRequest)
		return
	}

	rows := h.svc.Rows(h.engine.Snapshot(), filter)

	w.Header().Set("Content-Type", "application/vnd.ms-excel")
	w.Header().Set("Content-Disposition", `attachment; filename="transactions.xls"`)

	if err := h.svc.Spreadsheet(w, "Transactions", rows); err != nil {
		slog.Error("failed to write spreadsheet export", "error", err)
	}
}

func (h *Handler) pdf(w http.ResponseWriter, r *http.Request) {
	filter, ok := parseFilter(r)
	if !ok {
		http.Error(w, "invalid cashbook_id", http.StatusBadRequest)
		return
	}

	snap := h.engine.Snapshot()
	rows := h.svc.Rows(snap, filter)

	title := "Transactions"

	if filter.CashbookID != nil {
		if cb, ok := snap.Cashbook(*filter.CashbookID); ok {
			title = cb.Name + " (" + export.CurrencyLabel(cb.Currency) + ")"
		}
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="transactions.pdf.txt"`)

	if err := h.svc.PDF(w, title, rows); err != nil {
		slog.Error("failed to write pdf export", "error", err)
	}
}

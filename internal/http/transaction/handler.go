package transaction

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/caixa/internal/ledger"
)

type Handler struct {
	engine *ledger.Engine
}

func NewHandler(engine *ledger.Engine) *Handler {
	return &Handler{engine: engine}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

type createTransactionRequest struct {
	CashbookID  uuid.UUID       `json:"cashbook_id"`
	Type        ledger.Type     `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Mode        string          `json:"mode"`
	Date        time.Time       `json:"date"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	tx, err := h.engine.AddTransaction(r.Context(), req.CashbookID, ledger.TransactionInput{
		Type:        req.Type,
		Amount:      req.Amount,
		Description: req.Description,
		Category:    req.Category,
		Mode:        req.Mode,
		Date:        req.Date,
	})
	if err != nil {
		writeEngineError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(h.engine.Snapshot(), tx)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	snap := h.engine.Snapshot()

	var cashbookID *uuid.UUID

	if s := r.URL.Query().Get("cashbook_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			http.Error(w, "invalid cashbook_id", http.StatusBadRequest)
			return
		}

		cashbookID = &id
	}

	var startDate, endDate *time.Time

	if s := r.URL.Query().Get("start_date"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			startDate = new(t)
		}
	}

	if s := r.URL.Query().Get("end_date"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			endDate = new(t)
		}
	}

	resp := []transactionResponse{}

	for _, tx := range snap.Transactions {
		if cashbookID != nil && tx.CashbookID != *cashbookID {
			continue
		}

		if startDate != nil && tx.Date.Before(*startDate) {
			continue
		}

		if endDate != nil && tx.Date.After(*endDate) {
			continue
		}

		resp = append(resp, toResponse(snap, tx))
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateTransactionRequest struct {
	CashbookID  *uuid.UUID       `json:"cashbook_id,omitempty"`
	Type        *ledger.Type     `json:"type,omitempty"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Description *string          `json:"description,omitempty"`
	Category    *string          `json:"category,omitempty"`
	Mode        *string          `json:"mode,omitempty"`
	Date        *time.Time       `json:"date,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	tx, err := h.engine.UpdateTransaction(r.Context(), id, ledger.UpdateTransactionParams{
		CashbookID:  req.CashbookID,
		Type:        req.Type,
		Amount:      req.Amount,
		Description: req.Description,
		Category:    req.Category,
		Mode:        req.Mode,
		Date:        req.Date,
	})
	if err != nil {
		writeEngineError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(h.engine.Snapshot(), tx)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.engine.DeleteTransaction(r.Context(), id); err != nil {
		writeEngineError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func writeEngineError(w http.ResponseWriter, err error) {
	var verr *ledger.ValidationError

	switch {
	case errors.Is(err, ledger.ErrNotFound):
		http.Error(w, "record not found", http.StatusNotFound)
	case errors.As(err, &verr):
		http.Error(w, verr.Error(), http.StatusBadRequest)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

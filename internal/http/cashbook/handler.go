package cashbook

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

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
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

type cashbookResponse struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Currency     string     `json:"currency"`
	Balance      string     `json:"balance"`
	LastActivity *time.Time `json:"last_activity,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

func toResponse(cb ledger.Cashbook) cashbookResponse {
	return cashbookResponse{
		ID:           cb.ID,
		Name:         cb.Name,
		Currency:     cb.Currency,
		Balance:      cb.Balance.StringFixed(2),
		LastActivity: cb.LastActivity,
		CreatedAt:    cb.CreatedAt,
		UpdatedAt:    cb.UpdatedAt,
	}
}

type createCashbookRequest struct {
	Name     string `json:"name"`
	Currency string `json:"currency"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createCashbookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	cb, err := h.engine.CreateCashbook(r.Context(), req.Name, req.Currency)
	if err != nil {
		var verr *ledger.ValidationError
		if errors.As(err, &verr) {
			http.Error(w, verr.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(cb)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	snap := h.engine.Snapshot()

	resp := make([]cashbookResponse, len(snap.Cashbooks))
	for i, cb := range snap.Cashbooks {
		resp[i] = toResponse(cb)
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	cb, ok := h.engine.Snapshot().Cashbook(id)
	if !ok {
		http.Error(w, "cashbook not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(cb)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateCashbookRequest struct {
	Name     *string `json:"name,omitempty"`
	Currency *string `json:"currency,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateCashbookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	cb, err := h.engine.UpdateCashbook(r.Context(), id, ledger.UpdateCashbookParams{
		Name:     req.Name,
		Currency: req.Currency,
	})
	if err != nil {
		status := http.StatusInternalServerError

		var verr *ledger.ValidationError

		switch {
		case errors.Is(err, ledger.ErrNotFound):
			status = http.StatusNotFound
		case errors.As(err, &verr):
			status = http.StatusBadRequest
		}

		http.Error(w, err.Error(), status)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(cb)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.engine.DeleteCashbook(r.Context(), id); err != nil {
		if errors.Is(err, ledger.ErrNotFound) {
			http.Error(w, "cashbook not found", http.StatusNotFound)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Package catalog serves categories and payment modes, the two
// find-or-create record families.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

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

func (h *Handler) CategoryRoutes(r chi.Router) {
	r.Get("/", h.listCategories)
	r.Post("/", h.addCategory)
	r.Delete("/{id}", h.removeCategory)
}

func (h *Handler) ModeRoutes(r chi.Router) {
	r.Get("/", h.listModes)
	r.Post("/", h.addMode)
	r.Delete("/{id}", h.removeMode)
}

type recordResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type resolutionResponse struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Created bool      `json:"created"`
}

type addRequest struct {
	Name string `json:"name"`
}

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	snap := h.engine.Snapshot()

	resp := make([]recordResponse, len(snap.Categories))
	for i, c := range snap.Categories {
		resp[i] = recordResponse{ID: c.ID, Name: c.Name}
	}

	writeJSON(w, resp)
}

func (h *Handler) listModes(w http.ResponseWriter, r *http.Request) {
	snap := h.engine.Snapshot()

	resp := make([]recordResponse, len(snap.Modes))
	for i, m := range snap.Modes {
		resp[i] = recordResponse{ID: m.ID, Name: m.Name}
	}

	writeJSON(w, resp)
}

func (h *Handler) addCategory(w http.ResponseWriter, r *http.Request) {
	h.add(w, r, h.engine.AddCategory)
}

func (h *Handler) addMode(w http.ResponseWriter, r *http.Request) {
	h.add(w, r, h.engine.AddPaymentMode)
}

func (h *Handler) add(w http.ResponseWriter, r *http.Request, resolve func(ctx context.Context, name string) (ledger.Resolution, error)) {
	var req addRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	res, err := resolve(r.Context(), req.Name)
	if err != nil {
		var verr *ledger.ValidationError
		if errors.As(err, &verr) {
			http.Error(w, verr.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	status := http.StatusOK
	if res.Created {
		status = http.StatusCreated
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(resolutionResponse(res)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) removeCategory(w http.ResponseWriter, r *http.Request) {
	h.remove(w, r, h.engine.RemoveCategory)
}

func (h *Handler) removeMode(w http.ResponseWriter, r *http.Request) {
	h.remove(w, r, h.engine.RemovePaymentMode)
}

func (h *Handler) remove(w http.ResponseWriter, r *http.Request, del func(ctx context.Context, id uuid.UUID) error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := del(r.Context(), id); err != nil {
		if errors.Is(err, ledger.ErrNotFound) {
			http.Error(w, "record not found", http.StatusNotFound)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/abmacros/server/internal/application/meal"
	"github.com/abmacros/server/internal/domain"
	"github.com/abmacros/server/internal/pkg/validate"
	"github.com/abmacros/server/internal/transport/http/middleware"
	"github.com/go-chi/chi/v5"
)

// MealHandler handles meal recording endpoints.
type MealHandler struct {
	svc meal.Service
}

func NewMealHandler(svc meal.Service) *MealHandler {
	return &MealHandler{svc: svc}
}

func (h *MealHandler) Add(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "no authenticated identity")
		return
	}
	var req domain.AddMealRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	m, err := h.svc.Add(r.Context(), identity, req)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, m)
}

func (h *MealHandler) List(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "no authenticated identity")
		return
	}
	start, err := parseTimeParam(r, "start_date")
	if err != nil {
		writeError(w, http.StatusBadRequest, "start_date must be RFC3339")
		return
	}
	end, err := parseTimeParam(r, "end_date")
	if err != nil {
		writeError(w, http.StatusBadRequest, "end_date must be RFC3339")
		return
	}
	meals, err := h.svc.List(r.Context(), identity, start, end)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, meals)
}

func (h *MealHandler) Delete(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "no authenticated identity")
		return
	}
	if err := h.svc.Delete(r.Context(), identity, chi.URLParam(r, "id")); err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "meal deleted"})
}

func parseTimeParam(r *http.Request, name string) (*time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

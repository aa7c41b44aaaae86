package handler

import (
	"encoding/json"
	"net/http"

	"github.com/abmacros/server/internal/application/profile"
	"github.com/abmacros/server/internal/domain"
	"github.com/abmacros/server/internal/transport/http/middleware"
)

// ProfileHandler handles profile and nutrient-target endpoints.
type ProfileHandler struct {
	svc profile.Service
}

func NewProfileHandler(svc profile.Service) *ProfileHandler {
	return &ProfileHandler{svc: svc}
}

func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "no authenticated identity")
		return
	}
	p, err := h.svc.Get(r.Context(), identity)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *ProfileHandler) GetTargets(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "no authenticated identity")
		return
	}
	p, err := h.svc.Get(r.Context(), identity)
	if err != nil {
		httpError(w, err)
		return
	}
	if p.Targets == nil {
		writeJSON(w, http.StatusOK, domain.NutrientTargets{})
		return
	}
	writeJSON(w, http.StatusOK, p.Targets)
}

func (h *ProfileHandler) UpdateTargets(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "no authenticated identity")
		return
	}
	var targets domain.NutrientTargets
	if err := json.NewDecoder(r.Body).Decode(&targets); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	p, err := h.svc.UpdateTargets(r.Context(), identity, targets)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

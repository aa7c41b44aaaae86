package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/abmacros/server/internal/domain"
)

// httpError maps a service error onto the HTTP status dictated by its domain
// sentinel. Infrastructure failures (storage, delivery) log the full error and
// return a generic message so no internal detail leaks to the client.
func httpError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrBadRequest):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeUnauthorized(w, err.Error())
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrDelivery):
		slog.Error("message delivery failed", "err", err)
		writeError(w, http.StatusInternalServerError, "failed to send verification code")
	default:
		slog.Error("internal error", "err", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

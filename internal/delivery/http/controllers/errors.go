package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Kirubel-Te/Event-Next/internal/delivery/http/helpers"
	"github.com/Kirubel-Te/Event-Next/internal/domain"
)

// writeServiceError maps a service error onto the response envelope: rejected saves
// become 400/409 with field details, ErrNotFound becomes 404 with notFoundMsg, and
// anything else is logged and reported as 500.
func writeServiceError(logger *slog.Logger, w http.ResponseWriter, r *http.Request, err error, notFoundMsg string) {
	if helpers.WriteValidationError(w, err) {
		return
	}
	if errors.Is(err, domain.ErrNotFound) {
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, notFoundMsg)
		return
	}
	logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "internal server error")
}

package httpapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"expensed/internal/core"
)

// errorResponse is the one error shape the API produces.
type errorResponse struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

// writeError maps the error taxonomy to a status code and the {message, type}
// envelope. Client errors keep their message; anything server-side is logged
// and replaced by defaultMessage so store internals never reach the wire.
func writeError(w http.ResponseWriter, r *http.Request, err error, defaultMessage string) {
	kind := core.KindOf(err)

	var status int
	switch kind {
	case core.KindValidation:
		status = http.StatusBadRequest
	case core.KindNotFound:
		status = http.StatusNotFound
	case core.KindPermission:
		status = http.StatusForbidden
	default:
		status = http.StatusInternalServerError
	}

	message := defaultMessage
	var ce *core.Error
	if errors.As(err, &ce) && status < http.StatusInternalServerError {
		message = ce.Message
	}

	if status >= http.StatusInternalServerError {
		slog.ErrorContext(r.Context(), "Request failed",
			"method", r.Method, "url", r.URL.Path, "kind", kind.Code(), "error", err)
	}

	writeJSON(w, status, errorResponse{Message: message, Type: kind.Code()})
}

// validationError short-circuits with a 400 before any store call.
func validationError(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{
		Message: message,
		Type:    core.KindValidation.Code(),
	})
}

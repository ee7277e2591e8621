package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"dogwalk-backend/internal/domain"
	"dogwalk-backend/internal/logger"
)

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	RetryAt string `json:"retry_at,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			logger.Error("Failed to encode response", "error", err)
		}
	}
}

// writeError maps the domain error taxonomy onto HTTP statuses. Every
// database or unexpected failure surfaces as a logged 500; nothing is
// silently swallowed.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var cooldownErr *domain.CooldownError
	var validationErr *domain.ValidationError

	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Code: "NOT_FOUND", Message: "resource not found"})
	case errors.Is(err, domain.ErrForbidden):
		writeJSON(w, http.StatusForbidden, errorResponse{Code: "FORBIDDEN", Message: "you are not allowed to perform this action"})
	case errors.Is(err, domain.ErrDuplicateSlot):
		writeJSON(w, http.StatusConflict, errorResponse{Code: "DUPLICATE_SLOT", Message: err.Error()})
	case errors.Is(err, domain.ErrSessionFull):
		writeJSON(w, http.StatusBadRequest, errorResponse{Code: "SLOT_FULL", Message: err.Error()})
	case errors.As(err, &cooldownErr):
		w.Header().Set("Retry-After", strconv.Itoa(int(time.Until(cooldownErr.RetryAt).Seconds())))
		writeJSON(w, http.StatusTooManyRequests, errorResponse{
			Code:    "COOLDOWN_ACTIVE",
			Message: cooldownErr.Error(),
			RetryAt: cooldownErr.RetryAt.Format(time.RFC3339),
		})
	case errors.Is(err, domain.ErrInvalidState):
		writeJSON(w, http.StatusBadRequest, errorResponse{Code: "INVALID_STATE", Message: err.Error()})
	case errors.As(err, &validationErr):
		writeJSON(w, http.StatusBadRequest, errorResponse{Code: "VALIDATION_ERROR", Message: validationErr.Error()})
	default:
		logger.Error("Request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Code: "INTERNAL_ERROR", Message: "internal server error"})
	}
}

func decodeBody(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return domain.NewValidationError("body", "malformed JSON")
	}
	return nil
}

func pathID(r *http.Request, vars map[string]string, name string) (int32, error) {
	raw, ok := vars[name]
	if !ok {
		return 0, domain.NewValidationError(name, "missing path parameter")
	}
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, domain.NewValidationError(name, "must be numeric")
	}
	return int32(id), nil
}

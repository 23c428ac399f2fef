// Package httpx holds the JSON response helpers shared by the HTTP handlers.
package httpx

import (
	"encoding/json"
	"errors"
	"net/http"

	"projectflow/internal/record"
	"projectflow/internal/validation"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

func JSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	var body []byte
	var err error
	if payload != nil {
		body, err = json.Marshal(payload)
		if err != nil {
			// best-effort error response; avoid writing partial JSON
			http.Error(w, `{"error":"encode_error"}`, http.StatusInternalServerError)
			return
		}
	} else {
		body = []byte("null")
	}
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		_ = err
	}
}

func JSONError(w http.ResponseWriter, status int, msg string, details any) {
	JSON(w, status, ErrorResponse{Error: msg, Details: details})
}

// Violations renders form-level validation failures as a per-field error map.
func Violations(w http.ResponseWriter, v validation.Violations) {
	JSON(w, http.StatusUnprocessableEntity, map[string]any{"errors": v})
}

// ServiceError maps a normalized service failure onto the wire: missing ids
// become 404, backend failures 502 with the backend's message. The handler
// layer is the only place errors become user-visible.
func ServiceError(w http.ResponseWriter, err error) {
	if errors.Is(err, record.ErrNotFound) {
		JSONError(w, http.StatusNotFound, "not_found", nil)
		return
	}
	var be *record.BackendError
	if errors.As(err, &be) {
		JSONError(w, http.StatusBadGateway, "backend_error", be.Message)
		return
	}
	JSONError(w, http.StatusInternalServerError, "internal_error", nil)
}

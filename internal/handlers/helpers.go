// Package handlers is the page-controller surface: one handler per page,
// owning list filtering and form validation and delegating everything else
// to the entity services.
package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"projectflow/internal/httpx"
)

// pathID parses the {id} path segment; ok is false when it is not an integer.
func pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_id", nil)
		return 0, false
	}
	return id, true
}

// decode reads a JSON request body; a malformed body is reported as 400.
func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return false
	}
	return true
}

// matchesQuery is the list substring filter: case-insensitive, any field.
func matchesQuery(q string, fields ...string) bool {
	if q == "" {
		return true
	}
	q = strings.ToLower(q)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

// matchesStatus is the optional equality filter on status.
func matchesStatus(filter, status string) bool {
	return filter == "" || filter == "all" || filter == status
}

func listParams(r *http.Request) (q, status string) {
	return strings.TrimSpace(r.URL.Query().Get("q")), strings.TrimSpace(r.URL.Query().Get("status"))
}

func listResponse(w http.ResponseWriter, items any, total int) {
	httpx.JSON(w, http.StatusOK, map[string]any{"items": items, "total": total})
}

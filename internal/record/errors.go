package record

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when the requested id is absent from its collection.
var ErrNotFound = errors.New("record not found")

// FieldError is a backend validation failure on a single stored field.
type FieldError struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// BackendError is a normalized remote failure. Message holds the richest
// message the backend provided; FieldErrors carries per-record validation
// detail from partial batch failures, in backend order.
type BackendError struct {
	Op          string
	Table       string
	Message     string
	FieldErrors []FieldError
}

func (e *BackendError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s %s: %s", e.Op, e.Table, e.Message)
	}
	return fmt.Sprintf("%s %s failed", e.Op, e.Table)
}

// Messages returns the human-readable validation messages, one per failing
// field, for surfacing through the notifier.
func (e *BackendError) Messages() []string {
	out := make([]string, 0, len(e.FieldErrors))
	for _, fe := range e.FieldErrors {
		if fe.Field != "" {
			out = append(out, fe.Field+": "+fe.Message)
			continue
		}
		out = append(out, fe.Message)
	}
	return out
}

// Package record defines the capability interface to the hosted record-storage
// service, the HTTP client that speaks its wire protocol, and the in-memory
// fixture store used outside production.
package record

import (
	"context"
	"encoding/json"
)

// Table names as stored by the backend.
const (
	TableClients  = "client_c"
	TableProjects = "project_c"
	TableTasks    = "task_c"
	TableInvoices = "invoice_c"
)

// Raw is one stored record: backend field name -> value. Relationship fields
// may hold either a scalar id or an expanded {Id, Name} object; use RefFrom
// to resolve them.
type Raw map[string]any

// Where expresses one equality condition on a stored field.
type Where struct {
	Field string `json:"field"`
	Value any    `json:"value"`
}

// QueryParams selects which stored fields to project and which records to match.
type QueryParams struct {
	Fields []string `json:"fields,omitempty"`
	Where  []Where  `json:"where,omitempty"`
}

// Store is the record-storage capability. Implementations: Client (remote
// backend) and FixtureStore (seeded in-memory fallback).
type Store interface {
	FetchRecords(ctx context.Context, table string, params QueryParams) ([]Raw, error)
	GetRecordByID(ctx context.Context, table string, id int, params QueryParams) (Raw, error)
	CreateRecord(ctx context.Context, table string, fields Raw) (Raw, error)
	UpdateRecord(ctx context.Context, table string, id int, fields Raw) (Raw, error)
	DeleteRecord(ctx context.Context, table string, id int) error
}

// Envelope is the backend's response shape. Results is present on
// multi-record mutating calls and must be inspected per record.
type Envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
	Results []Result        `json:"results,omitempty"`
}

// Result is the per-record outcome inside a mutating Envelope.
type Result struct {
	Success bool         `json:"success"`
	Data    Raw          `json:"data,omitempty"`
	Message string       `json:"message,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
}

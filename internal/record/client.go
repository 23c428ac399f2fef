package record

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"projectflow/internal/metrics"
)

// Client talks to the hosted record-storage backend. It is constructed from
// the two opaque credentials (project id and public key) and never retries:
// failures propagate once, immediately, to the caller.
type Client struct {
	baseURL    string
	projectID  string
	publicKey  string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient builds a Client for the backend at baseURL.
func NewClient(baseURL, projectID, publicKey string, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		projectID: projectID,
		publicKey: publicKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: logger,
	}
}

var _ Store = (*Client)(nil)

// FetchRecords lists records from table, projecting params.Fields and
// matching every params.Where equality. Zero results is not an error.
func (c *Client) FetchRecords(ctx context.Context, table string, params QueryParams) ([]Raw, error) {
	env, err := c.do(ctx, http.MethodPost, table, "/api/v1/"+table+"/query", params, "fetch")
	if err != nil {
		return nil, err
	}
	var records []Raw
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &records); err != nil {
			return nil, &BackendError{Op: "fetch", Table: table, Message: "malformed response: " + err.Error()}
		}
	}
	return records, nil
}

// GetRecordByID fetches one record, returning ErrNotFound when absent.
func (c *Client) GetRecordByID(ctx context.Context, table string, id int, params QueryParams) (Raw, error) {
	path := "/api/v1/" + table + "/" + strconv.Itoa(id)
	if len(params.Fields) > 0 {
		path += "?fields=" + url.QueryEscape(strings.Join(params.Fields, ","))
	}
	env, err := c.do(ctx, http.MethodGet, table, path, nil, "get")
	if err != nil {
		return nil, err
	}
	var rec Raw
	if err := json.Unmarshal(env.Data, &rec); err != nil {
		return nil, &BackendError{Op: "get", Table: table, Message: "malformed response: " + err.Error()}
	}
	return rec, nil
}

// CreateRecord inserts one record and returns it with its assigned Id.
func (c *Client) CreateRecord(ctx context.Context, table string, fields Raw) (Raw, error) {
	body := map[string]any{"records": []Raw{fields}}
	env, err := c.do(ctx, http.MethodPost, table, "/api/v1/"+table, body, "create")
	if err != nil {
		return nil, err
	}
	return c.firstResult(table, "create", env)
}

// UpdateRecord applies a partial-field merge; fields absent from the payload
// are left unchanged by the backend.
func (c *Client) UpdateRecord(ctx context.Context, table string, id int, fields Raw) (Raw, error) {
	payload := Raw{"Id": id}
	for k, v := range fields {
		payload[k] = v
	}
	body := map[string]any{"records": []Raw{payload}}
	env, err := c.do(ctx, http.MethodPatch, table, "/api/v1/"+table, body, "update")
	if err != nil {
		return nil, err
	}
	return c.firstResult(table, "update", env)
}

// DeleteRecord removes the record. Hard delete, no tombstone.
func (c *Client) DeleteRecord(ctx context.Context, table string, id int) error {
	body := map[string]any{"recordIds": []int{id}}
	env, err := c.do(ctx, http.MethodDelete, table, "/api/v1/"+table, body, "delete")
	if err != nil {
		return err
	}
	_, err = c.firstResult(table, "delete", env)
	return err
}

// do performs one backend round trip and normalizes transport and envelope
// failures into ErrNotFound or *BackendError.
func (c *Client) do(ctx context.Context, method, table, path string, body any, op string) (*Envelope, error) {
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("%s %s: encode request: %w", op, table, err)
		}
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", op, table, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Project-Id", c.projectID)
	req.Header.Set("X-Public-Key", c.publicKey)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.ObserveRecordCall(table, op, "transport_error", time.Since(start))
		c.logger.Error("record backend unreachable",
			zap.String("table", table),
			zap.String("op", op),
			zap.Error(err),
		)
		return nil, &BackendError{Op: op, Table: table, Message: err.Error()}
	}
	defer resp.Body.Close()
	metrics.ObserveRecordCall(table, op, strconv.Itoa(resp.StatusCode), time.Since(start))

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}

	var env Envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, &BackendError{Op: op, Table: table, Message: fmt.Sprintf("status %d: malformed response", resp.StatusCode)}
	}
	if !env.Success {
		msg := env.Message
		if msg == "" {
			msg = fmt.Sprintf("status %d", resp.StatusCode)
		}
		c.logger.Error("record backend rejected call",
			zap.String("table", table),
			zap.String("op", op),
			zap.String("message", msg),
		)
		if strings.Contains(strings.ToLower(msg), "not found") {
			return nil, ErrNotFound
		}
		return nil, &BackendError{Op: op, Table: table, Message: msg}
	}
	return &env, nil
}

// firstResult inspects the per-record results of a mutating call. Any failing
// entry turns the whole call into a BackendError carrying the field-level
// errors individually, in backend order.
func (c *Client) firstResult(table, op string, env *Envelope) (Raw, error) {
	if len(env.Results) == 0 {
		return nil, &BackendError{Op: op, Table: table, Message: "empty results"}
	}
	var fieldErrs []FieldError
	for _, res := range env.Results {
		if res.Success {
			continue
		}
		fieldErrs = append(fieldErrs, res.Errors...)
		if len(res.Errors) == 0 && res.Message != "" {
			fieldErrs = append(fieldErrs, FieldError{Message: res.Message})
		}
	}
	if len(fieldErrs) > 0 {
		c.logger.Error("record mutation partially failed",
			zap.String("table", table),
			zap.String("op", op),
			zap.Int("failed", len(fieldErrs)),
		)
		return nil, &BackendError{
			Op:          op,
			Table:       table,
			Message:     fmt.Sprintf("failed to %s %s", op, table),
			FieldErrors: fieldErrs,
		}
	}
	return env.Results[0].Data, nil
}

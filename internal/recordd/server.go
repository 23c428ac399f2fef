package recordd

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"projectflow/internal/httpx"
	"projectflow/internal/record"
)

// Server implements the record-storage wire protocol over gorm.
type Server struct {
	db     *gorm.DB
	logger *zap.Logger
	mux    *http.ServeMux
}

func NewServer(db *gorm.DB, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{db: db, logger: logger, mux: http.NewServeMux()}
	s.mux.HandleFunc("POST /api/v1/{table}/query", s.handleQuery)
	s.mux.HandleFunc("GET /api/v1/{table}/{id}", s.handleGet)
	s.mux.HandleFunc("POST /api/v1/{table}", s.handleCreate)
	s.mux.HandleFunc("PATCH /api/v1/{table}", s.handleUpdate)
	s.mux.HandleFunc("DELETE /api/v1/{table}", s.handleDelete)
	s.mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) { s.mux.ServeHTTP(w, r) }

func (s *Server) table(w http.ResponseWriter, r *http.Request) (string, bool) {
	table := r.PathValue("table")
	if _, ok := tableColumns[table]; !ok {
		fail(w, http.StatusBadRequest, "unknown table "+table)
		return "", false
	}
	return table, true
}

func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) {
	table, ok := s.table(w, r)
	if !ok {
		return
	}
	var params record.QueryParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		fail(w, http.StatusBadRequest, "invalid query body")
		return
	}
	allowed := tableColumns[table]
	q := s.db.WithContext(r.Context()).Table(table)
	for _, cond := range params.Where {
		if !allowed[cond.Field] {
			fail(w, http.StatusBadRequest, "unknown field "+cond.Field)
			return
		}
		q = q.Where(cond.Field+" = ?", record.RefFrom(cond.Value).ID())
	}
	if sel := selectColumns(table, params.Fields); sel != nil {
		q = q.Select(sel)
	}
	var rows []map[string]any
	if err := q.Order("id").Find(&rows).Error; err != nil {
		s.logger.Error("query failed", zap.String("table", table), zap.Error(err))
		fail(w, http.StatusInternalServerError, "query failed")
		return
	}
	out := make([]record.Raw, 0, len(rows))
	for _, row := range rows {
		out = append(out, toRaw(row))
	}
	ok200(w, record.Envelope{Success: true, Data: marshal(out)})
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	table, ok := s.table(w, r)
	if !ok {
		return
	}
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		fail(w, http.StatusBadRequest, "invalid id")
		return
	}
	var fields []string
	if f := r.URL.Query().Get("fields"); f != "" {
		fields = strings.Split(f, ",")
	}
	q := s.db.WithContext(r.Context()).Table(table).Where("id = ?", id)
	if sel := selectColumns(table, fields); sel != nil {
		q = q.Select(sel)
	}
	var rows []map[string]any
	if err := q.Limit(1).Find(&rows).Error; err != nil {
		s.logger.Error("get failed", zap.String("table", table), zap.Error(err))
		fail(w, http.StatusInternalServerError, "query failed")
		return
	}
	if len(rows) == 0 {
		fail(w, http.StatusNotFound, "Record not found")
		return
	}
	ok200(w, record.Envelope{Success: true, Data: marshal(toRaw(rows[0]))})
}

type mutateRequest struct {
	Records   []record.Raw `json:"records"`
	RecordIDs []int        `json:"recordIds"`
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	table, ok := s.table(w, r)
	if !ok {
		return
	}
	var req mutateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.Records) == 0 {
		fail(w, http.StatusBadRequest, "invalid create body")
		return
	}
	results := make([]record.Result, 0, len(req.Records))
	for _, rec := range req.Records {
		results = append(results, s.createOne(r, table, rec))
	}
	ok200(w, record.Envelope{Success: true, Results: results})
}

func (s *Server) createOne(r *http.Request, table string, rec record.Raw) record.Result {
	if errs := validateRequired(table, rec); len(errs) > 0 {
		return record.Result{Success: false, Message: "validation failed", Errors: errs}
	}
	row := storedFields(table, rec)

	var nextID int
	if err := s.db.WithContext(r.Context()).Table(table).
		Select("COALESCE(MAX(id), 0) + 1").Scan(&nextID).Error; err != nil {
		s.logger.Error("sequence failed", zap.String("table", table), zap.Error(err))
		return record.Result{Success: false, Message: "create failed"}
	}
	row["id"] = nextID
	if err := s.db.WithContext(r.Context()).Table(table).Create(row).Error; err != nil {
		s.logger.Error("create failed", zap.String("table", table), zap.Error(err))
		return record.Result{Success: false, Message: "create failed"}
	}
	return record.Result{Success: true, Data: s.fetchOne(r, table, nextID)}
}

func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	table, ok := s.table(w, r)
	if !ok {
		return
	}
	var req mutateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.Records) == 0 {
		fail(w, http.StatusBadRequest, "invalid update body")
		return
	}
	results := make([]record.Result, 0, len(req.Records))
	for _, rec := range req.Records {
		id := record.AsInt(rec["Id"])
		if id == 0 || !s.exists(r, table, id) {
			fail(w, http.StatusNotFound, "Record not found")
			return
		}
		row := storedFields(table, rec)
		if len(row) > 0 {
			if err := s.db.WithContext(r.Context()).Table(table).
				Where("id = ?", id).Updates(row).Error; err != nil {
				s.logger.Error("update failed", zap.String("table", table), zap.Error(err))
				results = append(results, record.Result{Success: false, Message: "update failed"})
				continue
			}
		}
		results = append(results, record.Result{Success: true, Data: s.fetchOne(r, table, id)})
	}
	ok200(w, record.Envelope{Success: true, Results: results})
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	table, ok := s.table(w, r)
	if !ok {
		return
	}
	var req mutateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.RecordIDs) == 0 {
		fail(w, http.StatusBadRequest, "invalid delete body")
		return
	}
	results := make([]record.Result, 0, len(req.RecordIDs))
	for _, id := range req.RecordIDs {
		if !s.exists(r, table, id) {
			fail(w, http.StatusNotFound, "Record not found")
			return
		}
		if err := s.db.WithContext(r.Context()).
			Exec("DELETE FROM "+table+" WHERE id = ?", id).Error; err != nil {
			s.logger.Error("delete failed", zap.String("table", table), zap.Error(err))
			results = append(results, record.Result{Success: false, Message: "delete failed"})
			continue
		}
		results = append(results, record.Result{Success: true})
	}
	ok200(w, record.Envelope{Success: true, Results: results})
}

func (s *Server) exists(r *http.Request, table string, id int) bool {
	var count int64
	s.db.WithContext(r.Context()).Table(table).Where("id = ?", id).Count(&count)
	return count > 0
}

func (s *Server) fetchOne(r *http.Request, table string, id int) record.Raw {
	var rows []map[string]any
	if err := s.db.WithContext(r.Context()).Table(table).
		Where("id = ?", id).Limit(1).Find(&rows).Error; err != nil || len(rows) == 0 {
		return record.Raw{"Id": id}
	}
	return toRaw(rows[0])
}

// selectColumns maps requested stored fields to columns, always including the
// id. nil means select everything.
func selectColumns(table string, fields []string) []string {
	if len(fields) == 0 {
		return nil
	}
	allowed := tableColumns[table]
	sel := []string{"id"}
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if allowed[f] {
			sel = append(sel, f)
		}
	}
	return sel
}

// storedFields keeps only the allow-listed columns from a payload.
func storedFields(table string, rec record.Raw) map[string]any {
	allowed := tableColumns[table]
	row := map[string]any{}
	for k, v := range rec {
		if allowed[k] {
			row[k] = v
		}
	}
	return row
}

func validateRequired(table string, rec record.Raw) []record.FieldError {
	var errs []record.FieldError
	for _, f := range requiredFields[table] {
		if strings.TrimSpace(record.AsString(rec[f])) == "" {
			errs = append(errs, record.FieldError{Field: f, Message: f + " is required"})
		}
	}
	return errs
}

// toRaw renames the id column to the wire's "Id" key.
func toRaw(row map[string]any) record.Raw {
	out := record.Raw{}
	for k, v := range row {
		if k == "id" {
			out["Id"] = v
			continue
		}
		out[k] = v
	}
	return out
}

func marshal(v any) json.RawMessage {
	b, err := json.Marshal(v)
	if err != nil {
		return json.RawMessage("null")
	}
	return b
}

func ok200(w http.ResponseWriter, env record.Envelope) {
	httpx.JSON(w, http.StatusOK, env)
}

func fail(w http.ResponseWriter, status int, msg string) {
	httpx.JSON(w, status, record.Envelope{Success: false, Message: msg})
}

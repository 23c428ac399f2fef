package record

import (
	"context"
	"sort"
	"sync"
	"time"
)

// FixtureStore is the development-only fallback: an in-memory store offering
// the identical contract with an artificial delay and no backend round trip.
// Ids are assigned max(existing)+1. The store is owned by whoever constructs
// it; there is no package-level state.
type FixtureStore struct {
	mu     sync.RWMutex
	tables map[string]map[int]Raw
	delay  time.Duration
}

// NewFixtureStore builds an empty store. delay is applied to every operation;
// pass zero in tests.
func NewFixtureStore(delay time.Duration) *FixtureStore {
	return &FixtureStore{
		tables: map[string]map[int]Raw{
			TableClients:  {},
			TableProjects: {},
			TableTasks:    {},
			TableInvoices: {},
		},
		delay: delay,
	}
}

var _ Store = (*FixtureStore)(nil)

func (s *FixtureStore) pause(ctx context.Context) error {
	if s.delay <= 0 {
		return ctx.Err()
	}
	select {
	case <-time.After(s.delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *FixtureStore) FetchRecords(ctx context.Context, table string, params QueryParams) ([]Raw, error) {
	if err := s.pause(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	rows := s.tables[table]
	ids := make([]int, 0, len(rows))
	for id := range rows {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	out := make([]Raw, 0, len(rows))
	for _, id := range ids {
		rec := rows[id]
		if !matches(rec, params.Where) {
			continue
		}
		out = append(out, project(rec, params.Fields))
	}
	return out, nil
}

func (s *FixtureStore) GetRecordByID(ctx context.Context, table string, id int, params QueryParams) (Raw, error) {
	if err := s.pause(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.tables[table][id]
	if !ok {
		return nil, ErrNotFound
	}
	return project(rec, params.Fields), nil
}

func (s *FixtureStore) CreateRecord(ctx context.Context, table string, fields Raw) (Raw, error) {
	if err := s.pause(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	rows := s.tables[table]
	if rows == nil {
		rows = map[int]Raw{}
		s.tables[table] = rows
	}
	id := 0
	for existing := range rows {
		if existing > id {
			id = existing
		}
	}
	id++
	rec := Raw{"Id": id}
	for k, v := range fields {
		if k == "Id" {
			continue
		}
		rec[k] = v
	}
	rows[id] = rec
	return project(rec, nil), nil
}

func (s *FixtureStore) UpdateRecord(ctx context.Context, table string, id int, fields Raw) (Raw, error) {
	if err := s.pause(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.tables[table][id]
	if !ok {
		return nil, ErrNotFound
	}
	for k, v := range fields {
		if k == "Id" {
			continue
		}
		rec[k] = v
	}
	return project(rec, nil), nil
}

func (s *FixtureStore) DeleteRecord(ctx context.Context, table string, id int) error {
	if err := s.pause(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tables[table][id]; !ok {
		return ErrNotFound
	}
	delete(s.tables[table], id)
	return nil
}

// Load replaces the rows of table with the given records. Records without an
// Id get one assigned sequentially. Used for seeding and in tests.
func (s *FixtureStore) Load(table string, records []Raw) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows := map[int]Raw{}
	next := 1
	for _, rec := range records {
		id := AsInt(rec["Id"])
		if id == 0 {
			id = next
		}
		cp := Raw{"Id": id}
		for k, v := range rec {
			if k == "Id" {
				continue
			}
			cp[k] = v
		}
		rows[id] = cp
		if id >= next {
			next = id + 1
		}
	}
	s.tables[table] = rows
}

func matches(rec Raw, where []Where) bool {
	for _, w := range where {
		v := rec[w.Field]
		switch want := w.Value.(type) {
		case string:
			if AsString(v) != want {
				return false
			}
		default:
			if RefFrom(v).ID() != AsInt(w.Value) {
				return false
			}
		}
	}
	return true
}

func project(rec Raw, fields []string) Raw {
	out := Raw{"Id": rec["Id"]}
	if len(fields) == 0 {
		for k, v := range rec {
			out[k] = v
		}
		return out
	}
	for _, f := range fields {
		if v, ok := rec[f]; ok {
			out[f] = v
		}
	}
	return out
}

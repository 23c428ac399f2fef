package record

import (
	"context"
	"errors"
	"testing"
)

func TestFixtureCreateAssignsMaxPlusOne(t *testing.T) {
	s := NewFixtureStore(0)
	ctx := context.Background()

	s.Load(TableClients, []Raw{{"Id": 3, "name_c": "A"}, {"Id": 8, "name_c": "B"}})

	rec, err := s.CreateRecord(ctx, TableClients, Raw{"name_c": "C"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if got := AsInt(rec["Id"]); got != 9 {
		t.Errorf("Id = %d, want 9", got)
	}
}

func TestFixtureRoundTrip(t *testing.T) {
	s := NewFixtureStore(0)
	ctx := context.Background()

	created, err := s.CreateRecord(ctx, TableClients, Raw{"name_c": "Acme", "email_c": "a@b.co"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	got, err := s.GetRecordByID(ctx, TableClients, AsInt(created["Id"]), QueryParams{})
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if AsString(got["name_c"]) != "Acme" || AsString(got["email_c"]) != "a@b.co" {
		t.Errorf("round trip mismatch: %v", got)
	}
}

func TestFixtureDeleteThenGetNotFound(t *testing.T) {
	s := NewFixtureStore(0)
	ctx := context.Background()

	created, _ := s.CreateRecord(ctx, TableTasks, Raw{"title_c": "t"})
	id := AsInt(created["Id"])

	if err := s.DeleteRecord(ctx, TableTasks, id); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := s.GetRecordByID(ctx, TableTasks, id, QueryParams{}); !errors.Is(err, ErrNotFound) {
		t.Errorf("get after delete: err = %v, want ErrNotFound", err)
	}
	if err := s.DeleteRecord(ctx, TableTasks, id); !errors.Is(err, ErrNotFound) {
		t.Errorf("double delete: err = %v, want ErrNotFound", err)
	}
}

func TestFixtureUpdateMergesPartial(t *testing.T) {
	s := NewFixtureStore(0)
	ctx := context.Background()

	created, _ := s.CreateRecord(ctx, TableClients, Raw{"name_c": "Acme", "email_c": "a@b.co", "status_c": "active"})
	id := AsInt(created["Id"])

	updated, err := s.UpdateRecord(ctx, TableClients, id, Raw{"status_c": "inactive"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if AsString(updated["status_c"]) != "inactive" {
		t.Errorf("status not updated: %v", updated)
	}
	if AsString(updated["name_c"]) != "Acme" || AsString(updated["email_c"]) != "a@b.co" {
		t.Errorf("absent fields changed: %v", updated)
	}

	if _, err := s.UpdateRecord(ctx, TableClients, 999, Raw{"status_c": "x"}); !errors.Is(err, ErrNotFound) {
		t.Errorf("update missing: err = %v, want ErrNotFound", err)
	}
}

func TestFixtureWhereFilter(t *testing.T) {
	s := NewFixtureStore(0)
	ctx := context.Background()

	s.Load(TableProjects, []Raw{
		{"Id": 1, "name_c": "A", "client_id_c": 1},
		{"Id": 2, "name_c": "B", "client_id_c": 2},
		{"Id": 3, "name_c": "C", "client_id_c": 1},
	})

	rows, err := s.FetchRecords(ctx, TableProjects, QueryParams{
		Where: []Where{{Field: "client_id_c", Value: 1}},
	})
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("len = %d, want 2", len(rows))
	}
	for _, r := range rows {
		if RefFrom(r["client_id_c"]).ID() != 1 {
			t.Errorf("unexpected row: %v", r)
		}
	}

	// no matches is an empty list, not an error
	rows, err = s.FetchRecords(ctx, TableProjects, QueryParams{
		Where: []Where{{Field: "client_id_c", Value: 99}},
	})
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("len = %d, want 0", len(rows))
	}
}

func TestFixtureProjection(t *testing.T) {
	s := NewFixtureStore(0)
	ctx := context.Background()

	s.Load(TableClients, []Raw{{"Id": 1, "name_c": "A", "email_c": "a@b.co", "notes_c": "x"}})

	rows, err := s.FetchRecords(ctx, TableClients, QueryParams{Fields: []string{"name_c"}})
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	r := rows[0]
	if AsInt(r["Id"]) != 1 || AsString(r["name_c"]) != "A" {
		t.Errorf("projection dropped requested fields: %v", r)
	}
	if _, ok := r["email_c"]; ok {
		t.Errorf("projection kept unrequested field: %v", r)
	}
}

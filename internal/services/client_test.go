package services

import (
	"context"
	"errors"
	"testing"

	"projectflow/internal/models"
	"projectflow/internal/record"
)

func TestClientCreateAppliesDefaults(t *testing.T) {
	deps, _, _ := fixtureDeps(t)
	svc := NewClientService(deps)

	client, err := svc.Create(context.Background(), ClientInput{
		Name: "Acme Co", Email: "billing@acme.example", Company: "Acme Corporation",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if client.ID != 1 {
		t.Errorf("ID = %d, want 1", client.ID)
	}
	if client.Status != models.ClientActive {
		t.Errorf("Status = %q, want active", client.Status)
	}
	if client.JoinDate != models.Today() {
		t.Errorf("JoinDate = %q, want today", client.JoinDate)
	}
	if client.ProjectCount != 0 || client.TotalRevenue != 0 {
		t.Errorf("derived fields not zeroed: %+v", client)
	}
}

func TestClientCreateThenGetByIDRoundTrip(t *testing.T) {
	deps, _, _ := fixtureDeps(t)
	svc := NewClientService(deps)
	ctx := context.Background()

	created, err := svc.Create(ctx, ClientInput{
		Name: "Acme Co", Email: "billing@acme.example", Company: "Acme Corporation",
		Phone: "+1 555 0100", Address: "100 Market St", Notes: "Net-30",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	got, err := svc.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != created {
		t.Errorf("round trip mismatch:\n got  %+v\n want %+v", got, created)
	}
}

func TestClientUpdateLeavesAbsentFieldsUnchanged(t *testing.T) {
	deps, _, _ := fixtureDeps(t)
	svc := NewClientService(deps)
	ctx := context.Background()

	created, _ := svc.Create(ctx, ClientInput{Name: "Acme Co", Email: "a@b.co", Company: "Acme"})

	status := models.ClientInactive
	updated, err := svc.Update(ctx, created.ID, ClientUpdate{Status: &status})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Status != models.ClientInactive {
		t.Errorf("Status = %q, want inactive", updated.Status)
	}
	if updated.Name != "Acme Co" || updated.Email != "a@b.co" || updated.Company != "Acme" {
		t.Errorf("absent fields changed: %+v", updated)
	}
}

func TestClientDeleteThenGetByIDNotFound(t *testing.T) {
	deps, _, _ := fixtureDeps(t)
	svc := NewClientService(deps)
	ctx := context.Background()

	created, _ := svc.Create(ctx, ClientInput{Name: "Acme Co", Email: "a@b.co", Company: "Acme"})
	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.GetByID(ctx, created.ID); !errors.Is(err, record.ErrNotFound) {
		t.Errorf("get after delete: err = %v, want ErrNotFound", err)
	}
}

func TestClientStats(t *testing.T) {
	deps, store, _ := fixtureDeps(t)
	svc := NewClientService(deps)

	store.Load(record.TableClients, []record.Raw{{"Id": 1, "name_c": "Acme"}})
	store.Load(record.TableProjects, []record.Raw{
		{"Id": 1, "status_c": "in-progress", "budget_c": 1000.0, "client_id_c": 1},
		{"Id": 2, "status_c": "planning", "budget_c": 500.0, "client_id_c": 1},
		{"Id": 3, "status_c": "completed", "budget_c": 2000.0, "client_id_c": 1},
		{"Id": 4, "status_c": "in-progress", "budget_c": 9999.0, "client_id_c": 2},
	})

	stats, err := svc.Stats(context.Background(), 1)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TotalProjects != 3 {
		t.Errorf("TotalProjects = %d, want 3", stats.TotalProjects)
	}
	if stats.ActiveProjects != 2 {
		t.Errorf("ActiveProjects = %d, want 2", stats.ActiveProjects)
	}
	if stats.TotalRevenue != 3500 {
		t.Errorf("TotalRevenue = %v, want 3500", stats.TotalRevenue)
	}
}

func TestClientStatsMissingClient(t *testing.T) {
	deps, _, _ := fixtureDeps(t)
	svc := NewClientService(deps)

	if _, err := svc.Stats(context.Background(), 42); !errors.Is(err, record.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestClientBackendValidationSurfacesNotifications(t *testing.T) {
	backendErr := &record.BackendError{
		Op: "create", Table: "client_c", Message: "failed to create client_c",
		FieldErrors: []record.FieldError{
			{Field: "email_c", Message: "email_c is required"},
			{Field: "name_c", Message: "name_c is required"},
		},
	}
	deps, _, capture := fixtureDeps(t)
	deps.Store = &failingStore{err: backendErr}
	svc := NewClientService(deps)

	_, err := svc.Create(context.Background(), ClientInput{})
	var be *record.BackendError
	if !errors.As(err, &be) {
		t.Fatalf("err = %v, want BackendError", err)
	}
	// one notification per failing field
	if len(capture.Errors) != 2 {
		t.Errorf("notifications = %v, want 2", capture.Errors)
	}
	if len(capture.Successes) != 0 {
		t.Errorf("unexpected success toast: %v", capture.Successes)
	}
}

func TestClientGetAllEmptyIsNotAnError(t *testing.T) {
	deps, _, _ := fixtureDeps(t)
	svc := NewClientService(deps)

	clients, err := svc.GetAll(context.Background())
	if err != nil {
		t.Fatalf("getAll: %v", err)
	}
	if len(clients) != 0 {
		t.Errorf("len = %d, want 0", len(clients))
	}
}

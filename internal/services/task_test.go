package services

import (
	"context"
	"testing"

	"projectflow/internal/models"
	"projectflow/internal/record"
)

func TestTaskCreateAppliesDefaults(t *testing.T) {
	deps, _, _ := fixtureDeps(t)
	svc := NewTaskService(deps)

	task, err := svc.Create(context.Background(), TaskInput{
		Title: "Draft wireframes", EstimatedHours: 8, DueDate: "2026-10-01",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if task.Status != models.TaskPending {
		t.Errorf("Status = %q, want pending", task.Status)
	}
	if task.ActualHours != 0 {
		t.Errorf("ActualHours = %v, want 0", task.ActualHours)
	}
	if task.CreatedDate != models.Today() {
		t.Errorf("CreatedDate = %q, want today", task.CreatedDate)
	}
	if task.ProjectID != 0 {
		t.Errorf("ProjectID = %d, want unset", task.ProjectID)
	}
}

func TestTaskCompletionStampsDate(t *testing.T) {
	deps, _, _ := fixtureDeps(t)
	svc := NewTaskService(deps)
	ctx := context.Background()

	created, _ := svc.Create(ctx, TaskInput{Title: "Draft wireframes"})

	status := models.TaskCompleted
	updated, err := svc.Update(ctx, created.ID, TaskUpdate{Status: &status})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.CompletedDate != models.Today() {
		t.Errorf("CompletedDate = %q, want today", updated.CompletedDate)
	}
}

func TestTaskCompletionKeepsExplicitDate(t *testing.T) {
	deps, _, _ := fixtureDeps(t)
	svc := NewTaskService(deps)
	ctx := context.Background()

	created, _ := svc.Create(ctx, TaskInput{Title: "Draft wireframes"})

	status := models.TaskCompleted
	done := models.Date("2026-08-15")
	updated, err := svc.Update(ctx, created.ID, TaskUpdate{Status: &status, CompletedDate: &done})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.CompletedDate != done {
		t.Errorf("CompletedDate = %q, want %q", updated.CompletedDate, done)
	}
}

func TestTaskGetByProjectID(t *testing.T) {
	deps, store, _ := fixtureDeps(t)
	svc := NewTaskService(deps)

	store.Load(record.TableTasks, []record.Raw{
		{"Id": 1, "title_c": "One", "project_id_c": 5},
		{"Id": 2, "title_c": "Two", "project_id_c": 6},
		{"Id": 3, "title_c": "Three", "project_id_c": 5},
	})

	tasks, err := svc.GetByProjectID(context.Background(), 5)
	if err != nil {
		t.Fatalf("getByProjectID: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("len = %d, want 2", len(tasks))
	}
}

func TestTaskNotFoundError(t *testing.T) {
	deps, _, _ := fixtureDeps(t)
	svc := NewTaskService(deps)

	_, err := svc.GetByID(context.Background(), 99)
	if err == nil {
		t.Fatal("expected error for missing task")
	}
	if got := err.Error(); got != "task not found: record not found" {
		t.Errorf("err = %q", got)
	}
}

package services

import (
	"context"

	"projectflow/internal/models"
	"projectflow/internal/record"
)

var taskFields = []string{
	"title_c", "description_c", "assignee_c", "status_c", "priority_c",
	"estimated_hours_c", "actual_hours_c", "due_date_c", "created_date_c",
	"completed_date_c", "project_id_c",
}

// TaskService is the task entity service.
type TaskService struct {
	base
}

func NewTaskService(d Deps) *TaskService { return &TaskService{base: newBase(d)} }

type TaskInput struct {
	Title          string      `json:"title"`
	Description    string      `json:"description"`
	Assignee       string      `json:"assignee"`
	Priority       string      `json:"priority"`
	EstimatedHours float64     `json:"estimatedHours"`
	DueDate        models.Date `json:"dueDate"`
	ProjectID      int         `json:"projectId"`
}

// TaskUpdate is a partial update: nil fields are left unchanged.
type TaskUpdate struct {
	Title          *string      `json:"title"`
	Description    *string      `json:"description"`
	Assignee       *string      `json:"assignee"`
	Status         *string      `json:"status"`
	Priority       *string      `json:"priority"`
	EstimatedHours *float64     `json:"estimatedHours"`
	ActualHours    *float64     `json:"actualHours"`
	DueDate        *models.Date `json:"dueDate"`
	CompletedDate  *models.Date `json:"completedDate"`
	ProjectID      *int         `json:"projectId"`
}

func (s *TaskService) GetAll(ctx context.Context) ([]models.Task, error) {
	if err := s.pause(ctx); err != nil {
		return nil, err
	}
	raws, err := s.store.FetchRecords(ctx, record.TableTasks, record.QueryParams{Fields: taskFields})
	if err != nil {
		return nil, s.fail("fetch", "task", err)
	}
	tasks := make([]models.Task, 0, len(raws))
	for _, r := range raws {
		tasks = append(tasks, taskFromRaw(r))
	}
	return tasks, nil
}

func (s *TaskService) GetByID(ctx context.Context, id int) (models.Task, error) {
	if err := s.pause(ctx); err != nil {
		return models.Task{}, err
	}
	raw, err := s.store.GetRecordByID(ctx, record.TableTasks, id, record.QueryParams{Fields: taskFields})
	if err != nil {
		return models.Task{}, s.fail("get", "task", err)
	}
	return taskFromRaw(raw), nil
}

// GetByProjectID returns the (possibly empty) tasks attached to a project.
func (s *TaskService) GetByProjectID(ctx context.Context, projectID int) ([]models.Task, error) {
	if err := s.pause(ctx); err != nil {
		return nil, err
	}
	raws, err := s.store.FetchRecords(ctx, record.TableTasks, record.QueryParams{
		Fields: taskFields,
		Where:  []record.Where{{Field: "project_id_c", Value: projectID}},
	})
	if err != nil {
		return nil, s.fail("fetch", "task", err)
	}
	tasks := make([]models.Task, 0, len(raws))
	for _, r := range raws {
		tasks = append(tasks, taskFromRaw(r))
	}
	return tasks, nil
}

func (s *TaskService) Create(ctx context.Context, in TaskInput) (models.Task, error) {
	if err := s.pause(ctx); err != nil {
		return models.Task{}, err
	}
	fields := record.Raw{
		"title_c":           in.Title,
		"description_c":     in.Description,
		"assignee_c":        in.Assignee,
		"status_c":          models.TaskPending,
		"priority_c":        in.Priority,
		"estimated_hours_c": in.EstimatedHours,
		"actual_hours_c":    0.0,
		"due_date_c":        string(in.DueDate),
		"created_date_c":    string(models.Today()),
	}
	if in.ProjectID != 0 {
		fields["project_id_c"] = in.ProjectID
	}
	raw, err := s.store.CreateRecord(ctx, record.TableTasks, fields)
	if err != nil {
		return models.Task{}, s.fail("create", "task", err)
	}
	s.notifier.Success("Task created successfully")
	return taskFromRaw(raw), nil
}

func (s *TaskService) Update(ctx context.Context, id int, upd TaskUpdate) (models.Task, error) {
	if err := s.pause(ctx); err != nil {
		return models.Task{}, err
	}
	fields := record.Raw{}
	setString(fields, "title_c", upd.Title)
	setString(fields, "description_c", upd.Description)
	setString(fields, "assignee_c", upd.Assignee)
	setString(fields, "status_c", upd.Status)
	setString(fields, "priority_c", upd.Priority)
	setFloat(fields, "estimated_hours_c", upd.EstimatedHours)
	setFloat(fields, "actual_hours_c", upd.ActualHours)
	setDate(fields, "due_date_c", upd.DueDate)
	setDate(fields, "completed_date_c", upd.CompletedDate)
	setInt(fields, "project_id_c", upd.ProjectID)
	// Completing a task stamps the completion date unless the caller set one.
	if upd.Status != nil && *upd.Status == models.TaskCompleted && upd.CompletedDate == nil {
		fields["completed_date_c"] = string(models.Today())
	}
	raw, err := s.store.UpdateRecord(ctx, record.TableTasks, id, fields)
	if err != nil {
		return models.Task{}, s.fail("update", "task", err)
	}
	s.notifier.Success("Task updated successfully")
	return taskFromRaw(raw), nil
}

func (s *TaskService) Delete(ctx context.Context, id int) error {
	if err := s.pause(ctx); err != nil {
		return err
	}
	if err := s.store.DeleteRecord(ctx, record.TableTasks, id); err != nil {
		return s.fail("delete", "task", err)
	}
	s.notifier.Success("Task deleted successfully")
	return nil
}

func taskFromRaw(r record.Raw) models.Task {
	return models.Task{
		ID:             record.AsInt(r["Id"]),
		Title:          record.AsString(r["title_c"]),
		Description:    record.AsString(r["description_c"]),
		Assignee:       record.AsString(r["assignee_c"]),
		Status:         record.AsString(r["status_c"]),
		Priority:       record.AsString(r["priority_c"]),
		EstimatedHours: record.AsFloat(r["estimated_hours_c"]),
		ActualHours:    record.AsFloat(r["actual_hours_c"]),
		DueDate:        models.Date(record.AsString(r["due_date_c"])),
		CreatedDate:    models.Date(record.AsString(r["created_date_c"])),
		CompletedDate:  models.Date(record.AsString(r["completed_date_c"])),
		ProjectID:      record.RefFrom(r["project_id_c"]).ID(),
	}
}

package services

import (
	"context"

	"projectflow/internal/models"
	"projectflow/internal/record"
)

var projectFields = []string{
	"name_c", "description_c", "category_c", "status_c", "priority_c",
	"budget_c", "spent_c", "progress_c", "start_date_c", "deadline_c", "client_id_c",
}

// ProjectService is the project entity service.
type ProjectService struct {
	base
}

func NewProjectService(d Deps) *ProjectService { return &ProjectService{base: newBase(d)} }

type ProjectInput struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Category    string      `json:"category"`
	Status      string      `json:"status"`
	Priority    string      `json:"priority"`
	Budget      float64     `json:"budget"`
	Deadline    models.Date `json:"deadline"`
	ClientID    int         `json:"clientId"`
}

// ProjectUpdate is a partial update: nil fields are left unchanged.
type ProjectUpdate struct {
	Name        *string      `json:"name"`
	Description *string      `json:"description"`
	Category    *string      `json:"category"`
	Status      *string      `json:"status"`
	Priority    *string      `json:"priority"`
	Budget      *float64     `json:"budget"`
	Spent       *float64     `json:"spent"`
	Progress    *int         `json:"progress"`
	StartDate   *models.Date `json:"startDate"`
	Deadline    *models.Date `json:"deadline"`
	ClientID    *int         `json:"clientId"`
}

func (s *ProjectService) GetAll(ctx context.Context) ([]models.Project, error) {
	if err := s.pause(ctx); err != nil {
		return nil, err
	}
	raws, err := s.store.FetchRecords(ctx, record.TableProjects, record.QueryParams{Fields: projectFields})
	if err != nil {
		return nil, s.fail("fetch", "project", err)
	}
	projects := make([]models.Project, 0, len(raws))
	for _, r := range raws {
		projects = append(projects, projectFromRaw(r))
	}
	return projects, nil
}

func (s *ProjectService) GetByID(ctx context.Context, id int) (models.Project, error) {
	if err := s.pause(ctx); err != nil {
		return models.Project{}, err
	}
	raw, err := s.store.GetRecordByID(ctx, record.TableProjects, id, record.QueryParams{Fields: projectFields})
	if err != nil {
		return models.Project{}, s.fail("get", "project", err)
	}
	return projectFromRaw(raw), nil
}

// GetByClientID returns the (possibly empty) projects belonging to a client.
func (s *ProjectService) GetByClientID(ctx context.Context, clientID int) ([]models.Project, error) {
	if err := s.pause(ctx); err != nil {
		return nil, err
	}
	raws, err := s.store.FetchRecords(ctx, record.TableProjects, record.QueryParams{
		Fields: projectFields,
		Where:  []record.Where{{Field: "client_id_c", Value: clientID}},
	})
	if err != nil {
		return nil, s.fail("fetch", "project", err)
	}
	projects := make([]models.Project, 0, len(raws))
	for _, r := range raws {
		projects = append(projects, projectFromRaw(r))
	}
	return projects, nil
}

func (s *ProjectService) Create(ctx context.Context, in ProjectInput) (models.Project, error) {
	if err := s.pause(ctx); err != nil {
		return models.Project{}, err
	}
	status := in.Status
	if status == "" {
		status = models.ProjectPlanning
	}
	fields := record.Raw{
		"name_c":        in.Name,
		"description_c": in.Description,
		"category_c":    in.Category,
		"status_c":      status,
		"priority_c":    in.Priority,
		"budget_c":      in.Budget,
		"spent_c":       0.0,
		"progress_c":    0,
		"start_date_c":  string(models.Today()),
		"deadline_c":    string(in.Deadline),
		"client_id_c":   in.ClientID,
	}
	raw, err := s.store.CreateRecord(ctx, record.TableProjects, fields)
	if err != nil {
		return models.Project{}, s.fail("create", "project", err)
	}
	s.notifier.Success("Project created successfully")
	return projectFromRaw(raw), nil
}

func (s *ProjectService) Update(ctx context.Context, id int, upd ProjectUpdate) (models.Project, error) {
	if err := s.pause(ctx); err != nil {
		return models.Project{}, err
	}
	fields := record.Raw{}
	setString(fields, "name_c", upd.Name)
	setString(fields, "description_c", upd.Description)
	setString(fields, "category_c", upd.Category)
	setString(fields, "status_c", upd.Status)
	setString(fields, "priority_c", upd.Priority)
	setFloat(fields, "budget_c", upd.Budget)
	setFloat(fields, "spent_c", upd.Spent)
	setInt(fields, "progress_c", upd.Progress)
	setDate(fields, "start_date_c", upd.StartDate)
	setDate(fields, "deadline_c", upd.Deadline)
	setInt(fields, "client_id_c", upd.ClientID)
	raw, err := s.store.UpdateRecord(ctx, record.TableProjects, id, fields)
	if err != nil {
		return models.Project{}, s.fail("update", "project", err)
	}
	s.notifier.Success("Project updated successfully")
	return projectFromRaw(raw), nil
}

func (s *ProjectService) Delete(ctx context.Context, id int) error {
	if err := s.pause(ctx); err != nil {
		return err
	}
	if err := s.store.DeleteRecord(ctx, record.TableProjects, id); err != nil {
		return s.fail("delete", "project", err)
	}
	s.notifier.Success("Project deleted successfully")
	return nil
}

func projectFromRaw(r record.Raw) models.Project {
	return models.Project{
		ID:          record.AsInt(r["Id"]),
		Name:        record.AsString(r["name_c"]),
		Description: record.AsString(r["description_c"]),
		Category:    record.AsString(r["category_c"]),
		Status:      record.AsString(r["status_c"]),
		Priority:    record.AsString(r["priority_c"]),
		Budget:      record.AsFloat(r["budget_c"]),
		Spent:       record.AsFloat(r["spent_c"]),
		Progress:    record.AsInt(r["progress_c"]),
		StartDate:   models.Date(record.AsString(r["start_date_c"])),
		Deadline:    models.Date(record.AsString(r["deadline_c"])),
		ClientID:    record.RefFrom(r["client_id_c"]).ID(),
	}
}

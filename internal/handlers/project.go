package handlers

import (
	"net/http"

	"projectflow/internal/httpx"
	"projectflow/internal/models"
	"projectflow/internal/services"
	"projectflow/internal/validation"
)

type ProjectHandler struct {
	Svc   *services.ProjectService
	Tasks *services.TaskService
}

func NewProjectHandler(svc *services.ProjectService, tasks *services.TaskService) *ProjectHandler {
	return &ProjectHandler{Svc: svc, Tasks: tasks}
}

// List: GET /api/projects?q=&status=. Substring filter over name,
// description, and category.
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	q, status := listParams(r)
	projects, err := h.Svc.GetAll(r.Context())
	if err != nil {
		httpx.ServiceError(w, err)
		return
	}
	filtered := make([]models.Project, 0, len(projects))
	for _, p := range projects {
		if matchesQuery(q, p.Name, p.Description, p.Category) && matchesStatus(status, p.Status) {
			filtered = append(filtered, p)
		}
	}
	listResponse(w, filtered, len(filtered))
}

func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	project, err := h.Svc.GetByID(r.Context(), id)
	if err != nil {
		httpx.ServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, project)
}

// Tasks: GET /api/projects/{id}/tasks
func (h *ProjectHandler) ProjectTasks(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	tasks, err := h.Tasks.GetByProjectID(r.Context(), id)
	if err != nil {
		httpx.ServiceError(w, err)
		return
	}
	listResponse(w, tasks, len(tasks))
}

func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in services.ProjectInput
	if !decode(w, r, &in) {
		return
	}
	v := validation.Violations{}
	validation.Required("name", in.Name, v)
	validation.PositiveFloat("budget", in.Budget, v)
	validation.PositiveInt("clientId", in.ClientID, v)
	validation.ValidDate("deadline", in.Deadline, v)
	if !v.Empty() {
		httpx.Violations(w, v)
		return
	}
	project, err := h.Svc.Create(r.Context(), in)
	if err != nil {
		httpx.ServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, project)
}

func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var upd services.ProjectUpdate
	if !decode(w, r, &upd) {
		return
	}
	if upd.Progress != nil {
		v := validation.Violations{}
		validation.RangeInt("progress", *upd.Progress, 0, 100, v)
		if !v.Empty() {
			httpx.Violations(w, v)
			return
		}
	}
	project, err := h.Svc.Update(r.Context(), id, upd)
	if err != nil {
		httpx.ServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, project)
}

func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.Svc.Delete(r.Context(), id); err != nil {
		httpx.ServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"success": true})
}

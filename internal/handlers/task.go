package handlers

import (
	"net/http"

	"projectflow/internal/httpx"
	"projectflow/internal/models"
	"projectflow/internal/services"
	"projectflow/internal/validation"
)

type TaskHandler struct {
	Svc *services.TaskService
}

func NewTaskHandler(svc *services.TaskService) *TaskHandler { return &TaskHandler{Svc: svc} }

// List: GET /api/tasks?q=&status=. Substring filter over title and
// description, optional status equality.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	q, status := listParams(r)
	tasks, err := h.Svc.GetAll(r.Context())
	if err != nil {
		httpx.ServiceError(w, err)
		return
	}
	filtered := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if matchesQuery(q, t.Title, t.Description) && matchesStatus(status, t.Status) {
			filtered = append(filtered, t)
		}
	}
	listResponse(w, filtered, len(filtered))
}

func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	task, err := h.Svc.GetByID(r.Context(), id)
	if err != nil {
		httpx.ServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, task)
}

func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in services.TaskInput
	if !decode(w, r, &in) {
		return
	}
	v := validation.Violations{}
	validation.Required("title", in.Title, v)
	validation.PositiveFloat("estimatedHours", in.EstimatedHours, v)
	validation.ValidDate("dueDate", in.DueDate, v)
	if !v.Empty() {
		httpx.Violations(w, v)
		return
	}
	task, err := h.Svc.Create(r.Context(), in)
	if err != nil {
		httpx.ServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, task)
}

func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var upd services.TaskUpdate
	if !decode(w, r, &upd) {
		return
	}
	task, err := h.Svc.Update(r.Context(), id, upd)
	if err != nil {
		httpx.ServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, task)
}

func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

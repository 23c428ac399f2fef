package handlers

import (
	"net/http"

	"golang.org/x/sync/errgroup"

	"projectflow/internal/httpx"
	"projectflow/internal/models"
	"projectflow/internal/services"
	"projectflow/internal/validation"
)

type ClientHandler struct {
	Svc      *services.ClientService
	Projects *services.ProjectService
}

func NewClientHandler(svc *services.ClientService, projects *services.ProjectService) *ClientHandler {
	return &ClientHandler{Svc: svc, Projects: projects}
}

// List: GET /api/clients?q=&status=. Substring filter over name, company,
// and email, optional status equality.
func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	q, status := listParams(r)
	clients, err := h.Svc.GetAll(r.Context())
	if err != nil {
		httpx.ServiceError(w, err)
		return
	}
	filtered := make([]models.Client, 0, len(clients))
	for _, c := range clients {
		if matchesQuery(q, c.Name, c.Company, c.Email) && matchesStatus(status, c.Status) {
			filtered = append(filtered, c)
		}
	}
	listResponse(w, filtered, len(filtered))
}

// Get: GET /api/clients/{id}
func (h *ClientHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	client, err := h.Svc.GetByID(r.Context(), id)
	if err != nil {
		httpx.ServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, client)
}

// Detail: GET /api/clients/{id}/detail. The client, its projects, and its
// stats, fetched concurrently and joined before responding.
func (h *ClientHandler) Detail(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var (
		client   models.Client
		projects []models.Project
		stats    models.ClientStats
	)
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() (err error) {
		client, err = h.Svc.GetByID(ctx, id)
		return err
	})
	g.Go(func() (err error) {
		projects, err = h.Projects.GetByClientID(ctx, id)
		return err
	})
	g.Go(func() (err error) {
		stats, err = h.Svc.Stats(ctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		httpx.ServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{
		"client":   client,
		"projects": projects,
		"stats":    stats,
	})
}

// Create: POST /api/clients
func (h *ClientHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in services.ClientInput
	if !decode(w, r, &in) {
		return
	}
	v := validation.Violations{}
	validation.Required("name", in.Name, v)
	validation.Required("email", in.Email, v)
	validation.Required("company", in.Company, v)
	validation.Email("email", in.Email, v)
	if !v.Empty() {
		httpx.Violations(w, v)
		return
	}
	client, err := h.Svc.Create(r.Context(), in)
	if err != nil {
		httpx.ServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, client)
}

// Update: PATCH /api/clients/{id}. Partial merge, absent fields unchanged.
func (h *ClientHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var upd services.ClientUpdate
	if !decode(w, r, &upd) {
		return
	}
	if upd.Email != nil {
		v := validation.Violations{}
		validation.Email("email", *upd.Email, v)
		if !v.Empty() {
			httpx.Violations(w, v)
			return
		}
	}
	client, err := h.Svc.Update(r.Context(), id, upd)
	if err != nil {
		httpx.ServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, client)
}

// Delete: DELETE /api/clients/{id}
func (h *ClientHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

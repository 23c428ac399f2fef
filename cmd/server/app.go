package main

import (
	"net/http"

	"projectflow/internal/handlers"
	"projectflow/internal/httpx"
	"projectflow/internal/metrics"
)

// App is the main application handler that sets up all routes.
type App struct {
	mux *http.ServeMux
}

// Handlers groups the page-controller handlers wired into the router.
type Handlers struct {
	Dashboard *handlers.DashboardHandler
	Clients   *handlers.ClientHandler
	Projects  *handlers.ProjectHandler
	Tasks     *handlers.TaskHandler
	Invoices  *handlers.InvoiceHandler
}

// NewApp creates a new application with all routes configured.
func NewApp(h Handlers) *App {
	app := &App{mux: http.NewServeMux()}
	app.setupRoutes(h)
	return app
}

// ServeHTTP implements http.Handler.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	metrics.Middleware(a.mux).ServeHTTP(w, r)
}

// setupRoutes configures all application routes.
func (a *App) setupRoutes(h Handlers) {
	a.mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	a.mux.Handle("GET /metrics", metrics.Handler())

	a.mux.HandleFunc("GET /api/dashboard/stats", h.Dashboard.StatsList)

	a.mux.HandleFunc("GET /api/clients", h.Clients.List)
	a.mux.HandleFunc("POST /api/clients", h.Clients.Create)
	a.mux.HandleFunc("GET /api/clients/{id}", h.Clients.Get)
	a.mux.HandleFunc("GET /api/clients/{id}/detail", h.Clients.Detail)
	a.mux.HandleFunc("PATCH /api/clients/{id}", h.Clients.Update)
	a.mux.HandleFunc("DELETE /api/clients/{id}", h.Clients.Delete)

	a.mux.HandleFunc("GET /api/projects", h.Projects.List)
	a.mux.HandleFunc("POST /api/projects", h.Projects.Create)
	a.mux.HandleFunc("GET /api/projects/{id}", h.Projects.Get)
	a.mux.HandleFunc("GET /api/projects/{id}/tasks", h.Projects.ProjectTasks)
	a.mux.HandleFunc("PATCH /api/projects/{id}", h.Projects.Update)
	a.mux.HandleFunc("DELETE /api/projects/{id}", h.Projects.Delete)

	a.mux.HandleFunc("GET /api/tasks", h.Tasks.List)
	a.mux.HandleFunc("POST /api/tasks", h.Tasks.Create)
	a.mux.HandleFunc("GET /api/tasks/{id}", h.Tasks.Get)
	a.mux.HandleFunc("PATCH /api/tasks/{id}", h.Tasks.Update)
	a.mux.HandleFunc("DELETE /api/tasks/{id}", h.Tasks.Delete)

	a.mux.HandleFunc("GET /api/invoices", h.Invoices.List)
	a.mux.HandleFunc("POST /api/invoices", h.Invoices.Create)
	a.mux.HandleFunc("GET /api/invoices/{id}", h.Invoices.Get)
	a.mux.HandleFunc("PATCH /api/invoices/{id}", h.Invoices.Update)
	a.mux.HandleFunc("DELETE /api/invoices/{id}", h.Invoices.Delete)
}

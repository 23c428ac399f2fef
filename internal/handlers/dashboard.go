package handlers

import (
	"net/http"

	"projectflow/internal/httpx"
	"projectflow/internal/services"
)

type DashboardHandler struct {
	Stats *services.StatsService
}

func NewDashboardHandler(stats *services.StatsService) *DashboardHandler {
	return &DashboardHandler{Stats: stats}
}

// Stats: GET /api/dashboard/stats. The four summary cards in fixed order
// (revenue, clients, projects, tasks). Any failed read fails the whole call.
func (h *DashboardHandler) StatsList(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Stats.Dashboard(r.Context())
	if err != nil {
		httpx.ServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, stats)
}

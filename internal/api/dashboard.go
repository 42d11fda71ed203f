package api

import (
	"net/http"

	"github.com/erazemk/kampus/internal/campus"
)

// DashboardHandler serves the per-session overview.
type DashboardHandler struct {
	Sessions *campus.Registry
}

// Get handles GET /api/dashboard.
func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, userSession(h.Sessions, r).Summary())
}

package api

import (
	"net/http"

	"github.com/erazemk/kampus/internal/campus"
	"github.com/erazemk/kampus/internal/geo"
	"github.com/erazemk/kampus/internal/model"
)

// NavigationHandler handles points of interest and directions.
type NavigationHandler struct {
	Sessions *campus.Registry
}

type pointView struct {
	model.NavigationPoint
	DistanceMeters *float64 `json:"distance_meters,omitempty"`
}

type locateResponse struct {
	Position model.Coordinates `json:"position"`
}

// Points handles GET /api/navigation/points?category=&q=. Distances are
// included once the caller has been located.
func (h *NavigationHandler) Points(w http.ResponseWriter, r *http.Request) {
	sess := userSession(h.Sessions, r)
	category, query := filterParams(r)
	points := sess.Points(category, query)
	pos, located := sess.Position()

	out := make([]pointView, 0, len(points))
	for _, p := range points {
		v := pointView{NavigationPoint: p}
		if located {
			d := geo.Distance(pos, p.Coordinates)
			v.DistanceMeters = &d
		}
		out = append(out, v)
	}
	jsonResponse(w, http.StatusOK, out)
}

// Locate handles POST /api/navigation/locate?lat=&lng=. A missing or
// invalid position silently resolves to the fallback.
func (h *NavigationHandler) Locate(w http.ResponseWriter, r *http.Request) {
	pos := userSession(h.Sessions, r).Locate(r.Context(), geo.FromQuery(r.URL.Query()))
	jsonResponse(w, http.StatusOK, locateResponse{Position: pos})
}

// Directions handles GET /api/navigation/points/{id}/directions?lat=&lng=.
func (h *NavigationHandler) Directions(w http.ResponseWriter, r *http.Request) {
	d, err := userSession(h.Sessions, r).Directions(r.Context(), r.PathValue("id"), geo.FromQuery(r.URL.Query()))
	if err != nil {
		sessionError(w, err, "point")
		return
	}
	jsonResponse(w, http.StatusOK, d)
}

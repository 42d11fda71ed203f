package api

import (
	"log/slog"
	"net/http"

	"github.com/erazemk/kampus/internal/campus"
	"github.com/erazemk/kampus/internal/catalog"
	"github.com/erazemk/kampus/internal/model"
)

// EventsHandler handles the event catalog.
type EventsHandler struct {
	Sessions *campus.Registry
}

type eventView struct {
	model.Event
	CapacityRatio float64 `json:"capacity_ratio"`
}

func newEventView(e model.Event) eventView {
	return eventView{Event: e, CapacityRatio: catalog.CapacityRatio(e)}
}

// List handles GET /api/events?category=&q=.
func (h *EventsHandler) List(w http.ResponseWriter, r *http.Request) {
	category, query := filterParams(r)
	events := userSession(h.Sessions, r).Events(category, query)

	out := make([]eventView, 0, len(events))
	for _, e := range events {
		out = append(out, newEventView(e))
	}
	jsonResponse(w, http.StatusOK, out)
}

// ToggleRegistration handles POST /api/events/{id}/registration.
func (h *EventsHandler) ToggleRegistration(w http.ResponseWriter, r *http.Request) {
	e, err := userSession(h.Sessions, r).ToggleRegistration(r.PathValue("id"))
	if err != nil {
		sessionError(w, err, "event")
		return
	}

	slog.Info("event registration toggled",
		"user", GetClaims(r.Context()).Username,
		"event", e.ID,
		"registered", e.IsRegistered,
	)
	jsonResponse(w, http.StatusOK, newEventView(e))
}

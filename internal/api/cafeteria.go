package api

import (
	"log/slog"
	"net/http"

	"github.com/erazemk/kampus/internal/campus"
	"github.com/erazemk/kampus/internal/catalog"
	"github.com/erazemk/kampus/internal/model"
)

// CafeteriaHandler handles the menu, queues and cart.
type CafeteriaHandler struct {
	Sessions *campus.Registry
}

type queueView struct {
	model.QueueStatus
	Load float64 `json:"load"`
}

// Menu handles GET /api/cafeteria/menu?category=&q=.
func (h *CafeteriaHandler) Menu(w http.ResponseWriter, r *http.Request) {
	category, query := filterParams(r)
	jsonResponse(w, http.StatusOK, userSession(h.Sessions, r).Menu(category, query))
}

// Queues handles GET /api/cafeteria/queues.
func (h *CafeteriaHandler) Queues(w http.ResponseWriter, r *http.Request) {
	queues := userSession(h.Sessions, r).Queues()
	out := make([]queueView, 0, len(queues))
	for _, q := range queues {
		out = append(out, queueView{QueueStatus: q, Load: catalog.QueueLoad(q)})
	}
	jsonResponse(w, http.StatusOK, out)
}

// Cart handles GET /api/cafeteria/cart.
func (h *CafeteriaHandler) Cart(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, userSession(h.Sessions, r).Cart())
}

// Add handles POST /api/cafeteria/cart/{id}.
func (h *CafeteriaHandler) Add(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	cart, err := userSession(h.Sessions, r).AddToCart(id)
	if err != nil {
		sessionError(w, err, "menu item")
		return
	}
	slog.Info("added to cart", "user", GetClaims(r.Context()).Username, "item", id, "count", cart.ItemCount)
	jsonResponse(w, http.StatusOK, cart)
}

// Remove handles DELETE /api/cafeteria/cart/{id}.
func (h *CafeteriaHandler) Remove(w http.ResponseWriter, r *http.Request) {
	cart, err := userSession(h.Sessions, r).RemoveFromCart(r.PathValue("id"))
	if err != nil {
		sessionError(w, err, "menu item")
		return
	}
	jsonResponse(w, http.StatusOK, cart)
}

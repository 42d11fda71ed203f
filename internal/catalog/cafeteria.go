package catalog

import "github.com/erazemk/kampus/internal/model"

// Cart maps menu item ids to quantities.
type Cart map[string]int

// QueueCapacity is the queue length shown as a full queue bar.
const QueueCapacity = 20

// AddToCart returns a copy of cart with the item's quantity incremented.
// Availability is the caller's concern.
func AddToCart(cart Cart, id string) Cart {
	out := cart.clone()
	out[id]++
	return out
}

// RemoveFromCart returns a copy of cart with the item's quantity
// decremented, never below zero.
func RemoveFromCart(cart Cart, id string) Cart {
	out := cart.clone()
	out[id] = max(out[id]-1, 0)
	return out
}

// CartTotal sums price*quantity over the cart. Lines that reference an
// item missing from menu contribute nothing.
func CartTotal(cart Cart, menu []model.CafeteriaItem) float64 {
	prices := make(map[string]float64, len(menu))
	for _, m := range menu {
		prices[m.ID] = m.Price
	}
	total := 0.0
	for id, qty := range cart {
		total += prices[id] * float64(qty)
	}
	return total
}

// CartItemCount sums all quantities in the cart.
func CartItemCount(cart Cart) int {
	n := 0
	for _, qty := range cart {
		n += qty
	}
	return n
}

// FindMenuItem returns the menu item with the given id.
func FindMenuItem(menu []model.CafeteriaItem, id string) (model.CafeteriaItem, bool) {
	for _, m := range menu {
		if m.ID == id {
			return m, true
		}
	}
	return model.CafeteriaItem{}, false
}

// QueueLoad is currentQueue/QueueCapacity clamped to [0,1].
func QueueLoad(q model.QueueStatus) float64 {
	return clamp01(float64(q.CurrentQueue) / QueueCapacity)
}

// ShortestQueue returns the queue with the lowest estimated wait.
func ShortestQueue(queues []model.QueueStatus) (model.QueueStatus, bool) {
	if len(queues) == 0 {
		return model.QueueStatus{}, false
	}
	best := queues[0]
	for _, q := range queues[1:] {
		if q.EstimatedWait < best.EstimatedWait {
			best = q
		}
	}
	return best, true
}

func (c Cart) clone() Cart {
	out := make(Cart, len(c)+1)
	for id, qty := range c {
		out[id] = qty
	}
	return out
}

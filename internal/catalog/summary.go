package catalog

import (
	"math"

	"github.com/erazemk/kampus/internal/model"
)

// Summary is the dashboard overview of one session.
type Summary struct {
	Events           int                `json:"events"`
	UpcomingEvents   int                `json:"upcoming_events"`
	RegisteredEvents int                `json:"registered_events"`
	LostItems        int                `json:"lost_items"`
	FoundItems       int                `json:"found_items"`
	ClaimedItems     int                `json:"claimed_items"`
	CartItems        int                `json:"cart_items"`
	CartTotal        float64            `json:"cart_total"`
	ShortestQueue    *model.QueueStatus `json:"shortest_queue,omitempty"`
}

// Summarize recomputes the dashboard overview from the current catalogs.
// Events dated today or later count as upcoming; today is YYYY-MM-DD.
func Summarize(events []model.Event, items []model.LostFoundItem, menu []model.CafeteriaItem, queues []model.QueueStatus, cart Cart, today string) Summary {
	s := Summary{
		Events:       len(events),
		LostItems:    CountStatus(items, model.ItemStatusLost),
		FoundItems:   CountStatus(items, model.ItemStatusFound),
		ClaimedItems: CountStatus(items, model.ItemStatusClaimed),
		CartItems:    CartItemCount(cart),
		CartTotal:    RoundCents(CartTotal(cart, menu)),
	}
	for _, e := range events {
		if e.IsRegistered {
			s.RegisteredEvents++
		}
		if Upcoming(e, today) {
			s.UpcomingEvents++
		}
	}
	if q, ok := ShortestQueue(queues); ok {
		s.ShortestQueue = &q
	}
	return s
}

// RoundCents rounds a price to two decimals for display.
func RoundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// Upcoming reports whether e takes place on or after today. Both dates are
// YYYY-MM-DD, so they compare as strings; undated events are not upcoming.
func Upcoming(e model.Event, today string) bool {
	return e.Date != "" && e.Date >= today
}

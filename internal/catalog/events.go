package catalog

import "github.com/erazemk/kampus/internal/model"

// ToggleRegistration flips the registration of the event with the given id
// and adjusts its registered count by one. Capacity is not enforced.
func ToggleRegistration(events []model.Event, id string) []model.Event {
	out := make([]model.Event, len(events))
	for i, e := range events {
		if e.ID == id {
			if e.IsRegistered {
				e.RegisteredCount--
			} else {
				e.RegisteredCount++
			}
			e.IsRegistered = !e.IsRegistered
		}
		out[i] = e
	}
	return out
}

// CapacityRatio is registered/max clamped to [0,1]. Events without a
// positive capacity report 0.
func CapacityRatio(e model.Event) float64 {
	if e.MaxCapacity <= 0 {
		return 0
	}
	return clamp01(float64(e.RegisteredCount) / float64(e.MaxCapacity))
}

// FindEvent returns the event with the given id.
func FindEvent(events []model.Event, id string) (model.Event, bool) {
	for _, e := range events {
		if e.ID == id {
			return e, true
		}
	}
	return model.Event{}, false
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

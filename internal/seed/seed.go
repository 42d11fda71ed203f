// Package seed supplies the initial catalogs a new campus session starts
// from.
package seed

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/erazemk/kampus/internal/model"
)

// Provider returns fresh copies of every seed catalog. Callers may modify
// the returned slices.
type Provider interface {
	Events() []model.Event
	LostFound() []model.LostFoundItem
	Menu() []model.CafeteriaItem
	Queues() []model.QueueStatus
	Points() []model.NavigationPoint
}

// Data is a set of catalogs that serves as a Provider.
type Data struct {
	EventList []model.Event           `json:"events"`
	ItemList  []model.LostFoundItem   `json:"lost_found"`
	MenuList  []model.CafeteriaItem   `json:"menu"`
	QueueList []model.QueueStatus     `json:"queues"`
	PointList []model.NavigationPoint `json:"points"`
}

func (d *Data) Events() []model.Event            { return clone(d.EventList) }
func (d *Data) LostFound() []model.LostFoundItem { return clone(d.ItemList) }
func (d *Data) Menu() []model.CafeteriaItem      { return clone(d.MenuList) }
func (d *Data) Queues() []model.QueueStatus      { return clone(d.QueueList) }
func (d *Data) Points() []model.NavigationPoint  { return clone(d.PointList) }

// LoadFile reads catalogs from a JSON document with the keys events,
// lost_found, menu, queues and points. Every record needs an id and a known
// category.
func LoadFile(path string) (*Data, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading seed file: %w", err)
	}

	var d Data
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("parsing seed file: %w", err)
	}
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("seed file %s: %w", path, err)
	}
	return &d, nil
}

// Validate checks ids, categories and statuses of every record. Ids must
// be unique within a catalog.
func (d *Data) Validate() error {
	seen := ids{}
	for _, e := range d.EventList {
		if err := seen.check("event", e.ID, model.IsCategory(model.EventCategories, e.Category)); err != nil {
			return err
		}
	}
	seen = ids{}
	for _, it := range d.ItemList {
		if err := seen.check("lost-found item", it.ID, model.IsCategory(model.ItemCategories, it.Category)); err != nil {
			return err
		}
		switch it.Status {
		case model.ItemStatusLost, model.ItemStatusFound, model.ItemStatusClaimed:
		default:
			return fmt.Errorf("lost-found item %s: invalid status %q", it.ID, it.Status)
		}
	}
	seen = ids{}
	for _, m := range d.MenuList {
		if err := seen.check("menu item", m.ID, model.IsCategory(model.MenuCategories, m.Category)); err != nil {
			return err
		}
	}
	seen = ids{}
	for _, q := range d.QueueList {
		if err := seen.check("queue", q.CafeteriaID, true); err != nil {
			return err
		}
		switch q.Status {
		case model.QueueLow, model.QueueMedium, model.QueueHigh:
		default:
			return fmt.Errorf("queue %s: invalid status %q", q.CafeteriaID, q.Status)
		}
	}
	seen = ids{}
	for _, p := range d.PointList {
		if err := seen.check("point", p.ID, model.IsCategory(model.PointCategories, p.Category)); err != nil {
			return err
		}
	}
	return nil
}

// ids tracks the ids already seen in one catalog.
type ids map[string]bool

func (seen ids) check(kind, id string, categoryOK bool) error {
	if id == "" {
		return fmt.Errorf("%s without id", kind)
	}
	if seen[id] {
		return fmt.Errorf("%s %s: duplicate id", kind, id)
	}
	seen[id] = true
	if !categoryOK {
		return fmt.Errorf("%s %s: invalid category", kind, id)
	}
	return nil
}

func clone[T any](s []T) []T {
	return append([]T(nil), s...)
}

// Package campus keeps one user's working copy of every campus catalog and
// applies filters and mutations to it.
package campus

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/erazemk/kampus/internal/catalog"
	"github.com/erazemk/kampus/internal/geo"
	"github.com/erazemk/kampus/internal/model"
	"github.com/erazemk/kampus/internal/seed"
)

var (
	// ErrNotFound is returned for ids missing from the session's catalogs.
	ErrNotFound = errors.New("not found")
	// ErrUnavailable is returned when adding an unavailable menu item.
	ErrUnavailable = errors.New("item is not available")
)

// Session owns one user's catalogs. Every method is safe for concurrent use;
// mutations are applied one at a time.
type Session struct {
	mu       sync.Mutex
	events   []model.Event
	items    []model.LostFoundItem
	menu     []model.CafeteriaItem
	queues   []model.QueueStatus
	points   []model.NavigationPoint
	cart     catalog.Cart
	selected *model.NavigationPoint
	position *model.Coordinates

	fallback model.Coordinates
	now      func() time.Time
	lastID   int64
}

// NewSession seeds a session from p. Positions fall back to fallback when
// the caller cannot be located.
func NewSession(p seed.Provider, fallback model.Coordinates) *Session {
	return &Session{
		events:   p.Events(),
		items:    p.LostFound(),
		menu:     p.Menu(),
		queues:   p.Queues(),
		points:   p.Points(),
		cart:     catalog.Cart{},
		fallback: fallback,
		now:      time.Now,
	}
}

// Events returns the filtered event catalog.
func (s *Session) Events(category, query string) []model.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return catalog.Filter(s.events, category, query)
}

// ToggleRegistration registers for or unregisters from an event.
func (s *Session) ToggleRegistration(id string) (model.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := catalog.FindEvent(s.events, id); !ok {
		return model.Event{}, ErrNotFound
	}
	s.events = catalog.ToggleRegistration(s.events, id)
	e, _ := catalog.FindEvent(s.events, id)
	return e, nil
}

// Items returns the filtered lost-and-found catalog.
func (s *Session) Items(category, status, query string) []model.LostFoundItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return catalog.FilterItems(s.items, category, status, query)
}

// Item returns one lost-and-found item.
func (s *Session) Item(id string) (model.LostFoundItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	it, ok := catalog.FindItem(s.items, id)
	if !ok {
		return model.LostFoundItem{}, ErrNotFound
	}
	return it, nil
}

// Report adds a new item to the front of the catalog. The id is derived
// from the current time in milliseconds and dateReported is today's UTC date.
func (s *Session) Report(item model.LostFoundItem) model.LostFoundItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	id := now.UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id

	item.ID = strconv.FormatInt(id, 10)
	item.DateReported = now.UTC().Format(time.DateOnly)
	s.items = catalog.Report(s.items, item)
	return item
}

// Claim marks an item as claimed. Claiming a claimed item is a no-op.
func (s *Session) Claim(id string) (model.LostFoundItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := catalog.FindItem(s.items, id); !ok {
		return model.LostFoundItem{}, ErrNotFound
	}
	s.items = catalog.Claim(s.items, id)
	it, _ := catalog.FindItem(s.items, id)
	return it, nil
}

// SetItemPhoto attaches a photo to an item.
func (s *Session) SetItemPhoto(id string, data []byte, mime string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			items := append([]model.LostFoundItem(nil), s.items...)
			items[i].Photo = data
			items[i].PhotoMIME = mime
			s.items = items
			return nil
		}
	}
	return ErrNotFound
}

// Menu returns the filtered menu.
func (s *Session) Menu(category, query string) []model.CafeteriaItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return catalog.Filter(s.menu, category, query)
}

// Queues returns the cafeteria queue snapshot.
func (s *Session) Queues() []model.QueueStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.QueueStatus(nil), s.queues...)
}

// CartView is the cart with its aggregates.
type CartView struct {
	Lines     []CartLine `json:"lines"`
	ItemCount int        `json:"item_count"`
	Total     float64    `json:"total"`
}

// CartLine is one menu item in the cart.
type CartLine struct {
	Item     model.CafeteriaItem `json:"item"`
	Quantity int                 `json:"quantity"`
	Subtotal float64             `json:"subtotal"`
}

// Cart returns the current cart.
func (s *Session) Cart() CartView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cartView()
}

// AddToCart adds one unit of a menu item. Unavailable items are refused
// and leave the cart unchanged.
func (s *Session) AddToCart(id string) (CartView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := catalog.FindMenuItem(s.menu, id)
	if !ok {
		return CartView{}, ErrNotFound
	}
	if !m.Availability {
		return s.cartView(), ErrUnavailable
	}
	s.cart = catalog.AddToCart(s.cart, id)
	return s.cartView(), nil
}

// RemoveFromCart removes one unit of a menu item, stopping at zero.
func (s *Session) RemoveFromCart(id string) (CartView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := catalog.FindMenuItem(s.menu, id); !ok {
		return CartView{}, ErrNotFound
	}
	s.cart = catalog.RemoveFromCart(s.cart, id)
	return s.cartView(), nil
}

// cartView lists lines in menu order, skipping zero quantities.
func (s *Session) cartView() CartView {
	v := CartView{
		Lines:     []CartLine{},
		ItemCount: catalog.CartItemCount(s.cart),
		Total:     catalog.RoundCents(catalog.CartTotal(s.cart, s.menu)),
	}
	for _, m := range s.menu {
		if qty := s.cart[m.ID]; qty > 0 {
			v.Lines = append(v.Lines, CartLine{
				Item:     m,
				Quantity: qty,
				Subtotal: catalog.RoundCents(m.Price * float64(qty)),
			})
		}
	}
	return v
}

// Points returns the filtered points of interest.
func (s *Session) Points(category, query string) []model.NavigationPoint {
	s.mu.Lock()
	defer s.mu.Unlock()
	return catalog.Filter(s.points, category, query)
}

// Locate resolves and remembers the caller's position, falling back to the
// configured coordinate when l reports none.
func (s *Session) Locate(ctx context.Context, l geo.Locator) model.Coordinates {
	c := geo.Resolve(ctx, l, s.fallback)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.position = &c
	return c
}

// Position returns the last resolved position.
func (s *Session) Position() (model.Coordinates, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.position == nil {
		return model.Coordinates{}, false
	}
	return *s.position, true
}

// Directions describes the way from the caller to a point.
type Directions struct {
	From           model.Coordinates     `json:"from"`
	Destination    model.NavigationPoint `json:"destination"`
	DistanceMeters float64               `json:"distance_meters"`
}

// Directions selects a point and measures the distance to it. The caller
// is located first when no position is known yet.
func (s *Session) Directions(ctx context.Context, id string, l geo.Locator) (Directions, error) {
	if _, known := s.Position(); !known {
		s.Locate(ctx, l)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var dest *model.NavigationPoint
	for i := range s.points {
		if s.points[i].ID == id {
			p := s.points[i]
			dest = &p
			break
		}
	}
	if dest == nil {
		return Directions{}, ErrNotFound
	}
	s.selected = dest

	return Directions{
		From:           *s.position,
		Destination:    *dest,
		DistanceMeters: geo.Distance(*s.position, dest.Coordinates),
	}, nil
}

// Selected returns the point chosen by the last Directions call.
func (s *Session) Selected() (model.NavigationPoint, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected == nil {
		return model.NavigationPoint{}, false
	}
	return *s.selected, true
}

// Summary recomputes the dashboard overview.
func (s *Session) Summary() catalog.Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	today := s.now().UTC().Format(time.DateOnly)
	return catalog.Summarize(s.events, s.items, s.menu, s.queues, s.cart, today)
}

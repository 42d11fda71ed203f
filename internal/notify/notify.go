// Package notify publishes lost-and-found events so other campus services
// can match reports or alert owners.
package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/erazemk/kampus/internal/model"
)

// Event kinds.
const (
	KindReported = "lostfound.reported"
	KindClaimed  = "lostfound.claimed"
)

// ItemEvent is the payload published for a lost-and-found change.
type ItemEvent struct {
	Kind       string    `json:"kind"`
	ItemID     string    `json:"item_id"`
	Title      string    `json:"title"`
	Category   string    `json:"category"`
	Status     string    `json:"status"`
	Location   string    `json:"location"`
	ActorID    int64     `json:"actor_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewItemEvent builds the payload for item.
func NewItemEvent(kind string, item model.LostFoundItem, actorID int64) ItemEvent {
	return ItemEvent{
		Kind:       kind,
		ItemID:     item.ID,
		Title:      item.Title,
		Category:   item.Category,
		Status:     item.Status,
		Location:   item.Location,
		ActorID:    actorID,
		OccurredAt: time.Now().UTC(),
	}
}

// Publisher delivers item events.
type Publisher interface {
	Publish(ctx context.Context, ev ItemEvent) error
}

// Nop drops every event.
type Nop struct{}

func (Nop) Publish(context.Context, ItemEvent) error { return nil }

// Recorder keeps published events in memory.
type Recorder struct {
	mu     sync.Mutex
	events []ItemEvent
}

func (r *Recorder) Publish(_ context.Context, ev ItemEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
	return nil
}

// Events returns a copy of everything published so far.
func (r *Recorder) Events() []ItemEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]ItemEvent(nil), r.events...)
}

// Send publishes ev and only logs failures; a broker outage never fails the
// request that caused the event.
func Send(ctx context.Context, p Publisher, ev ItemEvent) {
	if p == nil {
		return
	}
	if err := p.Publish(ctx, ev); err != nil {
		slog.Warn("failed to publish event", "kind", ev.Kind, "item", ev.ItemID, "error", err)
	}
}

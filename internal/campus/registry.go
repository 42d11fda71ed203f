package campus

import (
	"sync"

	"github.com/erazemk/kampus/internal/model"
	"github.com/erazemk/kampus/internal/seed"
)

// Registry hands out one Session per user, seeding it on first use.
type Registry struct {
	seed     seed.Provider
	fallback model.Coordinates

	mu       sync.Mutex
	sessions map[int64]*Session
}

// NewRegistry creates an empty registry.
func NewRegistry(p seed.Provider, fallback model.Coordinates) *Registry {
	return &Registry{
		seed:     p,
		fallback: fallback,
		sessions: make(map[int64]*Session),
	}
}

// Session returns the session for userID, creating it if needed.
func (r *Registry) Session(userID int64) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[userID]
	if !ok {
		s = NewSession(r.seed, r.fallback)
		r.sessions[userID] = s
	}
	return s
}

// End discards the session for userID. The next request starts from seed
// data again.
func (r *Registry) End(userID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, userID)
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// internal/store/memory.go
//
// In-memory session store for hosts that share sessions across goroutines
// (the HTTP server).
//
// Characteristics:
//   - Sessions keyed by a random UUID.
//   - The map is guarded by an RWMutex; each entry has its own mutex, held for
//     the whole View/Update callback, so calls into one Session are serialized.
//   - State is lost when the process restarts.

package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sstandre/tuidle/internal/game"
)

// ErrNotFound is returned for unknown session IDs.
var ErrNotFound = errors.New("not found")

// Store defines the session persistence interface.
type Store interface {
	// Create stores s under a new ID.
	Create(ctx context.Context, s *game.Session) (string, error)

	// View runs fn with exclusive access to the session; fn must not retain it.
	View(ctx context.Context, id string, fn func(*game.Session) error) error

	// Update is View for callbacks that mutate the session.
	Update(ctx context.Context, id string, fn func(*game.Session) error) error

	// Delete removes a session. Deleting an unknown ID is not an error.
	Delete(ctx context.Context, id string) error
}

type entry struct {
	mu       sync.Mutex
	sess     *game.Session
	lastUsed time.Time
}

// Memory is a map-based Store.
type Memory struct {
	mu      sync.RWMutex // guards entries
	entries map[string]*entry
	now     func() time.Time
}

// NewMemoryStore constructs an empty in-memory store.
func NewMemoryStore() *Memory {
	return &Memory{entries: make(map[string]*entry), now: time.Now}
}

// Create adds s under a fresh UUID.
func (m *Memory) Create(ctx context.Context, s *game.Session) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	id := uuid.NewString()
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[id] = &entry{sess: s, lastUsed: m.now()}
	return id, nil
}

// View implements Store.
func (m *Memory) View(ctx context.Context, id string, fn func(*game.Session) error) error {
	return m.with(ctx, id, fn)
}

// Update implements Store.
func (m *Memory) Update(ctx context.Context, id string, fn func(*game.Session) error) error {
	return m.with(ctx, id, fn)
}

func (m *Memory) with(ctx context.Context, id string, fn func(*game.Session) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.RLock()
	e, ok := m.entries[id]
	m.mu.RUnlock()
	if !ok {
		return ErrNotFound
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.lastUsed = m.now()
	return fn(e.sess)
}

// Delete implements Store.
func (m *Memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, id)
	return nil
}

// Sweep drops sessions idle for longer than ttl and returns how many went.
func (m *Memory) Sweep(ttl time.Duration) int {
	cutoff := m.now().Add(-ttl)
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for id, e := range m.entries {
		e.mu.Lock()
		idle := e.lastUsed.Before(cutoff)
		e.mu.Unlock()
		if idle {
			delete(m.entries, id)
			n++
		}
	}
	return n
}

// Len returns the number of stored sessions.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

// RunSweeper calls Sweep(ttl) every interval until ctx is done.
func (m *Memory) RunSweeper(ctx context.Context, every, ttl time.Duration) {
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			m.Sweep(ttl)
		}
	}
}

// internal/store/memory.go
//
// Persistence of saved games between visits.
//
// A Saved value is what a player's shell keeps for the daily puzzle: the
// date it was last played and the serialized game state. Implementations:
//   - memory: map guarded by an RWMutex, lost on restart (this file).
//   - sqlite: saved_games table (sqlite.go).
//   - file:   one JSON document for the terminal client (file.go).

package store

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrNotFound is returned by Load when nothing is saved for a player.
var ErrNotFound = errors.New("store: not found")

// Saved is the persisted shell state for one player.
type Saved struct {
	LastPlayedDate string    `json:"lastPlayedDate"` // YYYY-MM-DD the state belongs to
	GameState      string    `json:"gameState"`      // game.Session.Serialize output
	StartedAt      time.Time `json:"startedAt"`      // first load of that day's puzzle
}

// Store defines the persistence interface for saved games.
type Store interface {
	// Save persists or replaces the saved game for playerID.
	Save(ctx context.Context, playerID string, s Saved) error

	// Load returns the saved game for playerID or ErrNotFound.
	Load(ctx context.Context, playerID string) (Saved, error)
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu    sync.RWMutex     // guards saved
	saved map[string]Saved // keyed by player ID
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{saved: make(map[string]Saved)}
}

func (m *memory) Save(ctx context.Context, playerID string, s Saved) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saved[playerID] = s
	return nil
}

func (m *memory) Load(ctx context.Context, playerID string) (Saved, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.saved[playerID]; ok {
		return s, nil
	}
	return Saved{}, ErrNotFound
}

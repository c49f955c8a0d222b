// Package scene owns the heightmap and mesh currently on screen and swaps
// them as whole generations when a new image finishes loading.
package scene

import (
	"sync/atomic"

	"github.com/Faultbox/heightview/internal/engine/terrain"
)

// Generation is one complete heightmap and mesh pair. It is never modified
// after it has been published.
type Generation struct {
	ID        uint64
	Source    string // File path, or empty for the placeholder box
	Heightmap *terrain.Heightmap
	Mesh      *terrain.Mesh
}

// Store holds the latest published generation.
type Store struct {
	current atomic.Pointer[Generation]
}

// NewStore creates a store showing initial.
func NewStore(initial *Generation) *Store {
	s := &Store{}
	s.current.Store(initial)
	return s
}

// Placeholder returns generation 0, the default box.
func Placeholder() *Generation {
	return &Generation{ID: 0, Mesh: terrain.DefaultBox()}
}

// Current returns the latest generation. It may be nil for a store created
// without an initial generation.
func (s *Store) Current() *Generation {
	return s.current.Load()
}

// Publish installs g if it is newer than the current generation and
// reports whether it did. An older generation is dropped.
func (s *Store) Publish(g *Generation) bool {
	for {
		cur := s.current.Load()
		if cur != nil && g.ID <= cur.ID {
			return false
		}
		if s.current.CompareAndSwap(cur, g) {
			return true
		}
	}
}

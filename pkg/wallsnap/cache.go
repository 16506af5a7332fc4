package wallsnap

import (
	"sync/atomic"

	"github.com/ollestrom/furnish/pkg/scene"
)

// Snapshot is one immutable build of the wall snap geometry. Readers
// hold a snapshot for the duration of a drag frame; a concurrent
// rebuild never mutates it.
type Snapshot struct {
	Version  uint64
	Surfaces []Surface
	Corners  []Corner
}

// Cache holds the current wall geometry snapshot. Rebuilds swap the
// whole snapshot behind an atomic pointer, so a reader always sees a
// complete, consistent build even if a port runs room edits and drags
// on different goroutines.
type Cache struct {
	current atomic.Pointer[Snapshot]
	version atomic.Uint64
}

// NewCache returns a cache with an empty snapshot.
func NewCache() *Cache {
	c := &Cache{}
	c.current.Store(&Snapshot{})
	return c
}

// Rebuild recomputes surfaces and corners from the room's walls and
// publishes them as a new snapshot. A nil room publishes an empty
// snapshot. The version counter increments on every rebuild.
func (c *Cache) Rebuild(room *scene.Room) *Snapshot {
	snap := &Snapshot{Version: c.version.Add(1)}
	if room != nil {
		snap.Surfaces = InnerSurfaces(room.Walls)
		snap.Corners = Corners(snap.Surfaces, room.Walls)
	}
	c.current.Store(snap)
	return snap
}

// Snapshot returns the current build. Never nil.
func (c *Cache) Snapshot() *Snapshot {
	return c.current.Load()
}

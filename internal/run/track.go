package run

import "github.com/vovakirdan/roadjump/internal/road"

// Track keeps the spawned renderables in sync with the current road.
type Track struct {
	spawner  Spawner
	tileSize float64
	items    []Renderable
}

// NewTrack creates a track that places tiles tileSize apart along X.
func NewTrack(spawner Spawner, tileSize float64) *Track {
	if spawner == nil {
		spawner = nopSpawner{}
	}
	return &Track{spawner: spawner, tileSize: tileSize}
}

// Sync discards the previous set of renderables and spawns one per tile of r.
func (t *Track) Sync(r road.Road) {
	t.Clear()
	for i, kind := range r {
		item, ok := t.spawner.Spawn(kind)
		if !ok || item == nil {
			continue
		}
		item.SetPosition(float64(i)*t.tileSize, 0, 0)
		t.items = append(t.items, item)
	}
}

// Clear discards all renderables.
func (t *Track) Clear() {
	for _, item := range t.items {
		if d, ok := item.(Discarder); ok {
			d.Discard()
		}
	}
	t.items = nil
}

// Len returns the number of live renderables.
func (t *Track) Len() int {
	return len(t.items)
}

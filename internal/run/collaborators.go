package run

import (
	"time"

	"github.com/vovakirdan/roadjump/internal/road"
)

// Player is the player-controller capability driven by the machine.
type Player interface {
	// SetInputActive enables or disables jump input.
	SetInputActive(active bool)

	// ResetPosition moves the player back to the start tile.
	ResetPosition()

	// ResetState clears any jump in progress and internal counters.
	ResetState()

	// OnLanded registers the single subscriber notified once per completed
	// jump with the 0-based tile index the player now occupies.
	// A later registration replaces the earlier one.
	OnLanded(fn func(index int))
}

// Renderable is a positionable scene object returned by a Spawner.
type Renderable interface {
	SetPosition(x, y, z float64)
}

// Discarder is implemented by renderables that must release resources
// when the road they belong to is replaced.
type Discarder interface {
	Discard()
}

// Spawner turns a block kind into a renderable. It may return false for
// kinds that have no visual (empty tiles).
type Spawner interface {
	Spawn(kind road.BlockKind) (Renderable, bool)
}

// Display shows the current step count.
type Display interface {
	SetStepCount(text string)
}

// Menu is the start menu the UI shows while in Init.
type Menu interface {
	SetVisible(visible bool)
}

// Scheduler runs fn once after d. Scheduled tasks cannot be cancelled.
type Scheduler interface {
	After(d time.Duration, fn func())
}

// No-op collaborators used when Options leaves one nil.
type (
	nopPlayer  struct{}
	nopSpawner struct{}
	nopDisplay struct{}
	nopMenu    struct{}
)

func (nopPlayer) SetInputActive(bool) {}
func (nopPlayer) ResetPosition() {}
func (nopPlayer) ResetState() {}
func (nopPlayer) OnLanded(func(int)) {}

func (nopSpawner) Spawn(road.BlockKind) (Renderable, bool) { return nil, false }

func (nopDisplay) SetStepCount(string) {}

func (nopMenu) SetVisible(bool) {}

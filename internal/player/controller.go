// Package player implements an engine-free player controller: it accepts
// one- or two-tile jumps while input is enabled, advances them tick by tick
// and reports where the player landed.
package player

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/roadjump/internal/core"
)

// MaxJump is the longest jump in tiles.
const MaxJump = 2

// ErrBadJump is returned for jumps outside 1..MaxJump tiles.
var ErrBadJump = errors.New("player: jump must cover 1 or 2 tiles")

// Controller tracks the player's tile index and any jump in flight.
// It satisfies run.Player.
type Controller struct {
	jumpTicks int // Ticks a jump takes; 0 lands immediately

	inputActive bool
	index       int // Tile the player stands on
	jumping     bool
	steps       int // Tiles covered by the jump in flight
	elapsed     int // Ticks spent in the current jump
	jumps       int // Completed jumps since the last ResetState

	onLanded func(index int)
}

// New creates a controller whose jumps take jumpTicks ticks.
func New(jumpTicks int) *Controller {
	if jumpTicks < 0 {
		jumpTicks = 0
	}
	return &Controller{jumpTicks: jumpTicks}
}

// SetInputActive enables or disables jump input.
func (c *Controller) SetInputActive(active bool) {
	c.inputActive = active
}

// ResetPosition moves the player back to the start tile.
func (c *Controller) ResetPosition() {
	c.index = 0
}

// ResetState cancels any jump in flight and clears counters.
func (c *Controller) ResetState() {
	c.jumping = false
	c.steps = 0
	c.elapsed = 0
	c.jumps = 0
}

// OnLanded sets the single landing subscriber.
func (c *Controller) OnLanded(fn func(index int)) {
	c.onLanded = fn
}

// Jump starts a jump of steps tiles. It returns false without error when
// input is disabled or a jump is already in flight.
func (c *Controller) Jump(steps int) (bool, error) {
	if steps < 1 || steps > MaxJump {
		return false, fmt.Errorf("%w (got %d)", ErrBadJump, steps)
	}
	if !c.inputActive || c.jumping {
		return false, nil
	}

	c.jumping = true
	c.steps = steps
	c.elapsed = 0
	if c.jumpTicks == 0 {
		c.land()
	}
	return true, nil
}

// Update applies one tick of input: a jump action starts a jump, then the
// jump in flight advances by one tick.
func (c *Controller) Update(in core.InputFrame) {
	if a := in.Jump(); a != core.ActionNone {
		//nolint:errcheck // JumpSteps only yields valid step counts
		c.Jump(a.JumpSteps())
	}
	c.Step()
}

// Step advances the jump in flight by one tick, landing when it completes.
func (c *Controller) Step() {
	if !c.jumping {
		return
	}
	c.elapsed++
	if c.elapsed >= c.jumpTicks {
		c.land()
	}
}

// land finishes the jump and notifies the subscriber. The notification is
// the last thing it does: the subscriber may reset the controller.
func (c *Controller) land() {
	c.jumping = false
	c.index += c.steps
	c.steps = 0
	c.elapsed = 0
	c.jumps++
	if c.onLanded != nil {
		c.onLanded(c.index)
	}
}

// Index returns the tile the player stands on (or took off from).
func (c *Controller) Index() int {
	return c.index
}

// InputActive reports whether jumps are accepted.
func (c *Controller) InputActive() bool {
	return c.inputActive
}

// Jumping reports whether a jump is in flight.
func (c *Controller) Jumping() bool {
	return c.jumping
}

// Jumps returns the number of completed jumps since the last ResetState.
func (c *Controller) Jumps() int {
	return c.jumps
}

// Position returns the player's fractional tile position, interpolated
// along the jump in flight.
func (c *Controller) Position() float64 {
	if !c.jumping || c.jumpTicks == 0 {
		return float64(c.index)
	}
	progress := float64(c.elapsed) / float64(c.jumpTicks)
	return float64(c.index) + progress*float64(c.steps)
}

// Airborne reports whether the player is in the upper half of a jump arc,
// used by hosts to lift the sprite.
func (c *Controller) Airborne() bool {
	if !c.jumping || c.jumpTicks == 0 {
		return false
	}
	quarter := c.jumpTicks / 4
	return c.elapsed >= quarter && c.elapsed < c.jumpTicks-quarter
}

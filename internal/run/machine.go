// Package run implements the game-progress state machine. A Machine owns
// the current phase, the generated road and the player's last landing,
// and drives its collaborators (player, spawner, display, menu) through
// narrow interfaces so any host can plug in.
package run

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/roadjump/internal/road"
)

// DefaultEnableDelay is how long after a run starts before input is enabled.
const DefaultEnableDelay = 100 * time.Millisecond

var (
	// ErrNotInit is returned when a run is started outside the Init phase.
	ErrNotInit = errors.New("run: start requested outside init phase")
	// ErrNotPlaying is returned when a landing arrives outside the Playing phase.
	ErrNotPlaying = errors.New("run: landing reported while not playing")
	// ErrNegativeLanding is returned for landing indices below zero.
	ErrNegativeLanding = errors.New("run: negative landing index")
)

// Options configures a Machine. RoadLength and Source are required;
// nil collaborators are replaced with no-ops.
type Options struct {
	RoadLength  int
	TileSize    float64
	EnableDelay time.Duration
	Source      road.Source

	Player    Player
	Spawner   Spawner
	Display   Display
	Menu      Menu
	Scheduler Scheduler // Defaults to ImmediateScheduler

	Logger *log.Logger
}

// Machine is the run state machine. It is not safe for concurrent use;
// hosts must deliver events from a single goroutine.
type Machine struct {
	length      int
	enableDelay time.Duration
	rng         road.Source

	player  Player
	display Display
	menu    Menu
	sched   Scheduler
	track   *Track
	logger  *log.Logger

	phase       Phase
	road        road.Road
	lastLanding int
	hasLanding  bool
	outcome     Outcome
	runs        int
}

// New validates opts, subscribes to the player's landing notifications and
// enters the Init phase with a freshly generated road.
func New(opts Options) (*Machine, error) {
	if opts.RoadLength < 1 {
		return nil, fmt.Errorf("%w (got %d)", road.ErrInvalidLength, opts.RoadLength)
	}
	if err := road.CheckSource(opts.Source); err != nil {
		return nil, err
	}
	if opts.EnableDelay < 0 {
		return nil, fmt.Errorf("run: negative enable delay %s", opts.EnableDelay)
	}

	m := &Machine{
		length:      opts.RoadLength,
		enableDelay: opts.EnableDelay,
		rng:         opts.Source,
		player:      opts.Player,
		display:     opts.Display,
		menu:        opts.Menu,
		sched:       opts.Scheduler,
		logger:      opts.Logger,
		track:       NewTrack(opts.Spawner, opts.TileSize),
	}
	if m.player == nil {
		m.player = nopPlayer{}
	}
	if m.display == nil {
		m.display = nopDisplay{}
	}
	if m.menu == nil {
		m.menu = nopMenu{}
	}
	if m.sched == nil {
		m.sched = ImmediateScheduler{}
	}
	if m.logger == nil {
		m.logger = log.New(io.Discard)
	}

	m.player.OnLanded(m.landed)
	m.RequestInit()
	return m, nil
}

// RequestInit enters the Init phase from any phase: a new road is generated
// and synced, the start menu is shown and the player is disabled and reset.
func (m *Machine) RequestInit() {
	r, err := road.Generate(m.length, m.rng)
	if err != nil {
		// Length and source are validated in New.
		panic(fmt.Sprintf("run: generate road: %v", err))
	}

	m.phase = PhaseInit
	m.road = r
	m.track.Sync(r)

	m.menu.SetVisible(true)
	m.player.SetInputActive(false)
	m.player.ResetPosition()
	m.player.ResetState()

	m.logger.Debug("entered init", "road", r.String(), "runs", m.runs)
}

// RequestStart begins a run. Input is enabled after the configured delay.
func (m *Machine) RequestStart() error {
	if m.phase != PhaseInit {
		m.logger.Warn("start rejected", "phase", m.phase)
		return fmt.Errorf("%w (phase %s)", ErrNotInit, m.phase)
	}

	m.phase = PhasePlaying
	m.hasLanding = false
	m.lastLanding = 0

	m.menu.SetVisible(false)
	m.display.SetStepCount("0")

	player := m.player
	m.sched.After(m.enableDelay, func() {
		player.SetInputActive(true)
	})

	m.logger.Debug("entered playing", "enable_delay", m.enableDelay)
	return nil
}

// OnPlayerLanded handles a completed jump to tile index. The displayed step
// count is updated first from the raw index, then a landing on an empty
// tile or past the end of the road restarts the game in Init.
func (m *Machine) OnPlayerLanded(index int) error {
	if m.phase != PhasePlaying {
		return fmt.Errorf("%w (phase %s, index %d)", ErrNotPlaying, m.phase, index)
	}
	if index < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeLanding, index)
	}

	m.lastLanding = index
	m.hasLanding = true
	m.display.SetStepCount(strconv.Itoa(min(index, m.length)))

	switch {
	case index >= m.length:
		m.finish(OutcomeCrossed)
	case m.road[index] == road.Empty:
		m.finish(OutcomeFell)
	}
	return nil
}

// landed is the Player subscription; errors have no caller to return to.
func (m *Machine) landed(index int) {
	if err := m.OnPlayerLanded(index); err != nil {
		m.logger.Warn("landing rejected", "index", index, "error", err)
	}
}

// finish records the outcome and restarts. Both outcomes restart the same way.
func (m *Machine) finish(o Outcome) {
	m.outcome = o
	m.runs++
	m.logger.Info("run finished", "outcome", o, "landing", m.lastLanding, "length", m.length)
	m.RequestInit()
}

// Phase returns the current phase.
func (m *Machine) Phase() Phase {
	return m.phase
}

// Road returns a copy of the current road.
func (m *Machine) Road() road.Road {
	return m.road.Clone()
}

// RoadLength returns the configured road length.
func (m *Machine) RoadLength() int {
	return m.length
}

// State returns a snapshot of the run state.
func (m *Machine) State() State {
	return State{
		Phase:       m.phase,
		Road:        m.road.Clone(),
		LastLanding: m.lastLanding,
		HasLanding:  m.hasLanding,
	}
}

// LastOutcome reports how the most recent run ended.
func (m *Machine) LastOutcome() Outcome {
	return m.outcome
}

// Runs returns the number of finished runs.
func (m *Machine) Runs() int {
	return m.runs
}

// Track returns the renderables synced to the current road.
func (m *Machine) Track() *Track {
	return m.track
}

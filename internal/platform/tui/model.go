package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/roadjump/internal/config"
	"github.com/vovakirdan/roadjump/internal/core"
	"github.com/vovakirdan/roadjump/internal/player"
	"github.com/vovakirdan/roadjump/internal/road"
	"github.com/vovakirdan/roadjump/internal/run"
)

// Board layout rows
const (
	rowHUD      = 0
	rowAir      = 2
	rowPlayer   = 3
	rowRoad     = 4
	rowRoadBase = 5
	rowMenu     = 7
	boardHeight = 9
	minWidth    = 20
)

// Visual characters for rendering
const (
	PlayerChar   = '@'
	TileTopChar  = '▀'
	TileBodyChar = '█'
	FinishChar   = '┃'
)

// Model is the Bubble Tea model for a Road Jump session.
type Model struct {
	machine *run.Machine
	ctrl    *player.Controller
	sched   *teaScheduler
	tiles   *tileSpawner
	label   *stepLabel
	menu    *startMenu

	keys     KeyMap
	help     help.Model
	input    core.InputFrame
	runtime  core.RuntimeConfig
	tileSize int
	logger   *log.Logger
	quitting bool
}

// NewModel wires a run machine to the terminal collaborators.
// A zero runtime seed draws a random one.
func NewModel(cfg config.Config, rt core.RuntimeConfig, logger *log.Logger) (Model, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if rt.TickRate <= 0 {
		rt.TickRate = cfg.TickRate
	}
	if rt.Seed == 0 {
		seed, err := road.RandomSeed()
		if err != nil {
			return Model{}, err
		}
		rt.Seed = seed
	}

	m := Model{
		ctrl:     player.New(cfg.Player.JumpTicks),
		sched:    &teaScheduler{},
		tiles:    &tileSpawner{},
		label:    &stepLabel{text: "0"},
		menu:     &startMenu{},
		keys:     DefaultKeyMap(),
		help:     help.New(),
		input:    core.NewInputFrame(),
		runtime:  rt,
		tileSize: cfg.Road.TileSize,
		logger:   logger,
	}
	m.help.Width = rt.ScreenW

	machine, err := run.New(run.Options{
		RoadLength:  cfg.Road.Length,
		TileSize:    float64(cfg.Road.TileSize),
		EnableDelay: cfg.Input.EnableDelay,
		Source:      road.NewSource(rt.Seed),
		Player:      m.ctrl,
		Spawner:     m.tiles,
		Display:     m.label,
		Menu:        m.menu,
		Scheduler:   m.sched,
		Logger:      logger,
	})
	if err != nil {
		return Model{}, fmt.Errorf("tui: %w", err)
	}
	m.machine = machine

	logger.Info("session ready", "seed", rt.Seed, "length", cfg.Road.Length)
	return m, nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(m.runtime.TickRate), m.sched.Drain())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.runtime.ScreenW = msg.Width
		m.runtime.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()

	case deferredMsg:
		msg.fn()
		return m, m.sched.Drain()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a := m.keys.Action(msg); a {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionStart:
		if m.machine.Phase() != run.PhaseInit {
			return m, nil
		}
		if err := m.machine.RequestStart(); err != nil {
			m.logger.Warn("start failed", "error", err)
		}
		return m, m.sched.Drain()

	case core.ActionJumpOne, core.ActionJumpTwo:
		m.input.Set(a)
	}
	return m, nil
}

// handleTick advances the player by one tick; landings reach the machine
// through the controller's subscription.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.ctrl.Update(m.input)
	m.input.Clear()

	return m, tea.Batch(tickCmd(m.runtime.TickRate), m.sched.Drain())
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.board().String() + "\n\n" + m.help.View(m.keys)
}

// board draws the road window, player, HUD and start prompt.
func (m Model) board() *frame {
	w := max(m.runtime.ScreenW, minWidth)
	f := newFrame(w, boardHeight)

	tileW := max(m.tileSize-1, 1)
	px := int(m.ctrl.Position() * float64(m.tileSize))
	camera := max(0, px-w/4)

	// Road
	for _, sp := range m.tiles.Live() {
		x0 := int(sp.x) - camera
		for dx := 0; dx < tileW; dx++ {
			f.set(x0+dx, rowRoad, TileTopChar, styleTile)
			f.set(x0+dx, rowRoadBase, TileBodyChar, styleTile)
		}
	}

	// Far side of the road
	finish := m.machine.RoadLength()*m.tileSize - camera
	for y := rowAir; y <= rowRoadBase; y++ {
		f.set(finish, y, FinishChar, styleFinish)
	}

	// Player
	row := rowPlayer
	if m.ctrl.Airborne() {
		row = rowAir
	}
	f.set(px-camera+tileW/2, row, PlayerChar, stylePlayer)

	// HUD
	f.text(1, rowHUD, fmt.Sprintf("Steps: %s", m.label.text), styleHUD)
	title := "ROAD JUMP"
	f.text(w-len(title)-1, rowHUD, title, styleHUD)

	if m.menu.visible {
		prompt := "  Press Enter to start  "
		f.text((w-len(prompt))/2, rowMenu, prompt, styleMenu)
	}
	return f
}

// Run starts the Bubble Tea program.
func Run(cfg config.Config, rt core.RuntimeConfig, logger *log.Logger) error {
	model, err := NewModel(cfg, rt, logger)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}

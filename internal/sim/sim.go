// Package sim plays Road Jump headlessly: a bot policy drives the player
// controller against the run state machine and the results are collected
// into a report.
package sim

import (
	"fmt"
	"io"
	"math/rand"
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/roadjump/internal/config"
	"github.com/vovakirdan/roadjump/internal/player"
	"github.com/vovakirdan/roadjump/internal/road"
	"github.com/vovakirdan/roadjump/internal/run"
)

// Policy picks the next jump length (1 or 2) given the road and the
// player's current tile.
type Policy interface {
	Name() string
	Choose(r road.Road, index int) int
}

// RandomPolicy jumps 1 or 2 tiles with equal probability.
type RandomPolicy struct {
	rng *rand.Rand
}

// policySeedMix separates the policy's stream from the road generator's
// when both are given the same seed.
const policySeedMix int64 = 0x5DEECE66D

// NewRandomPolicy creates a seeded random policy. Its draws are independent
// of a road generated from the same seed.
func NewRandomPolicy(seed int64) *RandomPolicy {
	return &RandomPolicy{rng: road.NewSource(seed ^ policySeedMix)}
}

func (p *RandomPolicy) Name() string { return "random" }

func (p *RandomPolicy) Choose(road.Road, int) int {
	return 1 + p.rng.Intn(player.MaxJump)
}

// CautiousPolicy clears gaps by jumping two tiles when the next one is
// Empty. Because gaps are never adjacent it always crosses the road.
type CautiousPolicy struct{}

func (CautiousPolicy) Name() string { return "cautious" }

func (CautiousPolicy) Choose(r road.Road, index int) int {
	if k, ok := r.At(index + 1); ok && k == road.Empty {
		return 2
	}
	return 1
}

// PolicyByName resolves a policy from its config/CLI name.
func PolicyByName(name string, seed int64) (Policy, error) {
	switch name {
	case "", "random":
		return NewRandomPolicy(seed), nil
	case "cautious":
		return CautiousPolicy{}, nil
	default:
		return nil, fmt.Errorf("sim: unknown policy %q (want random or cautious)", name)
	}
}

// RunResult describes one finished run.
type RunResult struct {
	Road    string      // Road the run was played on
	Steps   int         // Step count shown when the run ended
	Landing int         // Raw landing index that ended the run
	Jumps   int         // Jumps taken
	Outcome run.Outcome // Fell or Crossed
}

// Report aggregates a batch of runs.
type Report struct {
	Seed      int64
	Policy    string
	Length    int
	Results   []RunResult
	Fell      int
	Crossed   int
	BestSteps int
	AvgSteps  float64
}

// stepDisplay keeps the last step count the machine displayed.
type stepDisplay struct {
	text string
}

func (d *stepDisplay) SetStepCount(text string) {
	d.text = text
}

// Run plays runs games with the given policy. Roads are generated from seed,
// so the same seed, config and policy always give the same report.
func Run(cfg config.Config, seed int64, runs int, policy Policy, logger *log.Logger) (Report, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if runs < 0 {
		return Report{}, fmt.Errorf("sim: negative run count %d", runs)
	}

	ctrl := player.New(0)
	display := &stepDisplay{}
	m, err := run.New(run.Options{
		RoadLength:  cfg.Road.Length,
		TileSize:    float64(cfg.Road.TileSize),
		EnableDelay: cfg.Input.EnableDelay,
		Source:      road.NewSource(seed),
		Player:      ctrl,
		Display:     display,
		Scheduler:   run.ImmediateScheduler{},
		Logger:      logger,
	})
	if err != nil {
		return Report{}, fmt.Errorf("sim: %w", err)
	}

	report := Report{
		Seed:    seed,
		Policy:  policy.Name(),
		Length:  cfg.Road.Length,
		Results: make([]RunResult, 0, runs),
	}

	for i := 0; i < runs; i++ {
		res, err := playOne(m, ctrl, display, policy)
		if err != nil {
			return report, fmt.Errorf("sim: run %d: %w", i+1, err)
		}
		logger.Debug("run played", "run", i+1, "outcome", res.Outcome, "steps", res.Steps, "jumps", res.Jumps)
		report.add(res)
	}
	report.finish()
	return report, nil
}

// playOne starts a run and jumps until the machine restarts.
func playOne(m *run.Machine, ctrl *player.Controller, display *stepDisplay, policy Policy) (RunResult, error) {
	r := m.Road()
	res := RunResult{Road: r.String()}
	before := m.Runs()

	if err := m.RequestStart(); err != nil {
		return res, err
	}

	// Every jump advances at least one tile, so a run ends within
	// length+1 jumps.
	for limit := r.Len() + 1; m.Runs() == before; limit-- {
		if limit == 0 {
			return res, fmt.Errorf("run did not finish on road %s", r)
		}
		ok, err := ctrl.Jump(policy.Choose(r, ctrl.Index()))
		if err != nil {
			return res, err
		}
		if !ok {
			return res, fmt.Errorf("jump refused at tile %d", ctrl.Index())
		}
		res.Jumps++
	}

	steps, err := strconv.Atoi(display.text)
	if err != nil {
		return res, fmt.Errorf("bad step count %q: %w", display.text, err)
	}
	res.Steps = steps
	res.Landing = m.State().LastLanding
	res.Outcome = m.LastOutcome()
	return res, nil
}

func (r *Report) add(res RunResult) {
	r.Results = append(r.Results, res)
	switch res.Outcome {
	case run.OutcomeFell:
		r.Fell++
	case run.OutcomeCrossed:
		r.Crossed++
	}
	if res.Steps > r.BestSteps {
		r.BestSteps = res.Steps
	}
}

func (r *Report) finish() {
	if len(r.Results) == 0 {
		return
	}
	total := 0
	for _, res := range r.Results {
		total += res.Steps
	}
	r.AvgSteps = float64(total) / float64(len(r.Results))
}

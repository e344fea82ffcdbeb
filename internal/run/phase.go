package run

import "github.com/vovakirdan/roadjump/internal/road"

// Phase is the high-level game mode owned by a Machine.
type Phase int

const (
	PhaseInit    Phase = iota // Start menu shown, waiting for start
	PhasePlaying              // Run in progress
	PhaseEnded                // Declared terminal phase, never entered
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseInit:
		return "Init"
	case PhasePlaying:
		return "Playing"
	case PhaseEnded:
		return "Ended"
	default:
		return "Unknown"
	}
}

// Outcome records how the previous run finished.
// Both outcomes restart the game the same way.
type Outcome int

const (
	OutcomeNone    Outcome = iota // No run has finished yet
	OutcomeFell                   // Landed on an empty tile
	OutcomeCrossed                // Jumped past the last tile
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "None"
	case OutcomeFell:
		return "Fell"
	case OutcomeCrossed:
		return "Crossed"
	default:
		return "Unknown"
	}
}

// State is a snapshot of the machine's run state.
type State struct {
	Phase       Phase
	Road        road.Road // Copy; safe to keep
	LastLanding int       // Valid only when HasLanding is true
	HasLanding  bool
}

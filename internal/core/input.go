// Package core provides the input vocabulary shared by the player
// controller and the hosts. It has no external dependencies (especially no
// Bubble Tea) so game logic stays pure and testable.
package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionJumpOne        // Left, J - jump one tile
	ActionJumpTwo        // Right, K - jump two tiles
	ActionStart          // Enter, Space - start a run from the menu
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJumpOne:
		return "JumpOne"
	case ActionJumpTwo:
		return "JumpTwo"
	case ActionStart:
		return "Start"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// JumpSteps returns how many tiles a jump action covers, or 0 for
// non-jump actions.
func (a Action) JumpSteps() int {
	switch a {
	case ActionJumpOne:
		return 1
	case ActionJumpTwo:
		return 2
	default:
		return 0
	}
}

// InputFrame represents the actions triggered during one simulation tick.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Jump returns the jump action of this frame, preferring the longer jump
// when both were pressed.
func (f InputFrame) Jump() Action {
	switch {
	case f.Has(ActionJumpTwo):
		return ActionJumpTwo
	case f.Has(ActionJumpOne):
		return ActionJumpOne
	default:
		return ActionNone
	}
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

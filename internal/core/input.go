package core

// Action represents a semantic game action, abstracted from physical
// key presses. The game works with high-level intents rather than raw
// input.
type Action int

const (
	ActionNone      Action = iota
	ActionAimLeft          // A, Left arrow - rotate aim toward vertical
	ActionAimRight         // D, Right arrow - rotate aim toward horizontal
	ActionPowerUp          // W, Up arrow - increase launch power
	ActionPowerDown        // S, Down arrow - decrease launch power
	ActionFire             // Space - launch the orb
	ActionRestart          // R - start a new round after round end
	ActionQuit             // Q, Ctrl+C - exit
	ActionPause            // P, Escape - pause/unpause
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionAimLeft:
		return "AimLeft"
	case ActionAimRight:
		return "AimRight"
	case ActionPowerUp:
		return "PowerUp"
	case ActionPowerDown:
		return "PowerDown"
	case ActionFire:
		return "Fire"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single simulation tick:
// all actions that were triggered during this frame.
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
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

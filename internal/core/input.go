package core

// Action is a semantic input, abstracted from physical keys and mouse buttons.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - move left (held)
	ActionRight          // D, Right arrow - move right (held)
	ActionJump           // Space, W, Up
	ActionAttack         // F, J, left mouse button
	ActionBack           // B, Escape
	ActionRestart        // R after game over
	ActionQuit           // Q, Ctrl+C
	ActionPause          // P
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionJump:
		return "Jump"
	case ActionAttack:
		return "Attack"
	case ActionBack:
		return "Back"
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

// InputFrame is the explicit input state for one simulation tick.
//
// Actions are edge-triggered: set once for the tick in which the key or
// button went down. Held actions (movement) stay set for every tick the
// key is considered down.
type InputFrame struct {
	Actions map[Action]bool
	held    map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
		held:    make(map[Action]bool),
	}
}

// Set marks an action as triggered this tick.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has reports whether the action was triggered this tick.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Hold marks an action as held down this tick.
func (f *InputFrame) Hold(a Action) {
	if f.held == nil {
		f.held = make(map[Action]bool)
	}
	f.held[a] = true
}

// Held reports whether the action is held down this tick.
func (f InputFrame) Held(a Action) bool {
	return f.held[a]
}

// Clear resets triggered and held actions for the next tick.
func (f *InputFrame) Clear() {
	clear(f.Actions)
	clear(f.held)
}

// Clone creates a deep copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	for k, v := range f.held {
		clone.held[k] = v
	}
	return clone
}

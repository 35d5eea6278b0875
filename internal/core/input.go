package core

// Action represents a semantic game action, abstracted from physical key
// presses. Translation from raw device events (keyboard, SSH PTY) happens
// entirely in the platform layer; the simulation only ever sees actions.
type Action int

const (
	ActionNone        Action = iota
	ActionJumpPress          // Space/Up pressed - start a jump
	ActionJumpRelease        // Space/Up released - cut the jump short
	ActionDuckPress          // Down pressed - duck, or speed-drop mid-air
	ActionDuckRelease        // Down released - stand back up
	ActionRestart            // R - restart after a crash
	ActionPause              // P/Esc, or host visibility lost/regained
	ActionConfirm            // Enter - confirm selection in menus
	ActionBack               // B/Esc - leave a menu
	ActionQuit               // Q/Ctrl+C - exit the session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJumpPress:
		return "JumpPress"
	case ActionJumpRelease:
		return "JumpRelease"
	case ActionDuckPress:
		return "DuckPress"
	case ActionDuckRelease:
		return "DuckRelease"
	case ActionRestart:
		return "Restart"
	case ActionPause:
		return "Pause"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the per-tick input event queue. The platform fills it
// between ticks; the simulation drains it exactly once per Step.
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

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}

package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"trexrunner/internal/core"
)

// holdGrace is how long a key counts as held after its last press event.
// Terminals deliver no key-up events, so a held key is inferred from the
// auto-repeat stream: each repeat refreshes the deadline, and the release
// is synthesized once the stream stops.
const holdGrace = 250 * time.Millisecond

// KeyMapper translates Bubble Tea key messages to game actions and
// synthesizes the release actions the simulation needs for variable jump
// height and duck hold.
type KeyMapper struct {
	jumpHeld  bool
	jumpUntil time.Time
	duckHeld  bool
	duckUntil time.Time
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame, now time.Time) bool {
	switch msg.String() {
	case "ctrl+c", "q":
		frame.Set(core.ActionQuit)
		return true

	case " ", "up", "w":
		if !km.jumpHeld {
			frame.Set(core.ActionJumpPress)
			km.jumpHeld = true
		}
		km.jumpUntil = now.Add(holdGrace)

	case "down", "s":
		if !km.duckHeld {
			frame.Set(core.ActionDuckPress)
			km.duckHeld = true
		}
		km.duckUntil = now.Add(holdGrace)

	case "p", "esc":
		frame.Set(core.ActionPause)

	case "r":
		frame.Set(core.ActionRestart)

	case "enter":
		frame.Set(core.ActionConfirm)

	case "b":
		frame.Set(core.ActionBack)
	}

	return false
}

// SynthesizeReleases emits release actions for keys whose auto-repeat
// stream has gone quiet. Called once per tick before the frame is
// handed to the simulation.
func (km *KeyMapper) SynthesizeReleases(frame *core.InputFrame, now time.Time) {
	if km.jumpHeld && now.After(km.jumpUntil) {
		frame.Set(core.ActionJumpRelease)
		km.jumpHeld = false
	}
	if km.duckHeld && now.After(km.duckUntil) {
		frame.Set(core.ActionDuckRelease)
		km.duckHeld = false
	}
}

// Reset clears any held-key state, e.g. when a session regains focus.
func (km *KeyMapper) Reset() {
	km.jumpHeld = false
	km.duckHeld = false
}

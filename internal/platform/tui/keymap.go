package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tiny-planets/internal/core"
)

// KeyMapper translates Bubble Tea key messages to scene actions.
// Every action mirrors a button, so the game is playable without a mouse
// apart from dragging.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "enter", " ":
		return core.ActionConfirm, false
	case "r":
		return core.ActionRestart, false
	case "m", "esc":
		return core.ActionMenu, false
	}
	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// PointerMapper turns mouse messages into samples of the primary pointer.
// Only the left button is tracked; other buttons and the wheel are ignored.
type PointerMapper struct {
	cam  core.Camera
	down bool
}

// NewPointerMapper creates a mapper converting cells with cam.
func NewPointerMapper(cam core.Camera) *PointerMapper {
	return &PointerMapper{cam: cam}
}

// Map converts a mouse message. ok is false when the message carries no
// pointer sample.
func (pm *PointerMapper) Map(msg tea.MouseMsg) (ev core.PointerEvent, ok bool) {
	pos := pm.cam.ScreenToWorld(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return ev, false
		}
		pm.down = true
		return core.PointerEvent{Phase: core.PointerBegin, Pos: pos}, true

	case tea.MouseActionMotion:
		if !pm.down {
			return ev, false
		}
		return core.PointerEvent{Phase: core.PointerMove, Pos: pos}, true

	case tea.MouseActionRelease:
		// Terminals often report the release without a button.
		if !pm.down {
			return ev, false
		}
		pm.down = false
		return core.PointerEvent{Phase: core.PointerEnd, Pos: pos}, true
	}
	return ev, false
}

// Down reports whether the left button is held.
func (pm *PointerMapper) Down() bool {
	return pm.down
}

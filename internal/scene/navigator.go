package scene

import (
	"github.com/vovakirdan/tiny-planets/internal/core"
)

// Navigator maps UI actions to scene transitions.
type Navigator struct {
	loader Loader
}

// NewNavigator creates a navigator over a loader.
func NewNavigator(l Loader) *Navigator {
	return &Navigator{loader: l}
}

// Start loads the game scene.
func (n *Navigator) Start() error {
	return n.loader.LoadByName(NameGame)
}

// Restart reloads the active scene by its build index.
func (n *Navigator) Restart() error {
	return n.loader.LoadByIndex(n.loader.ActiveIndex())
}

// MainMenu loads the menu scene.
func (n *Navigator) MainMenu() error {
	return n.loader.LoadByName(NameMenu)
}

// Dispatch runs the transition bound to an action. It reports quit for
// ActionQuit and does nothing for other actions.
func (n *Navigator) Dispatch(a core.Action) (quit bool, err error) {
	switch a {
	case core.ActionConfirm:
		return false, n.Start()
	case core.ActionRestart:
		return false, n.Restart()
	case core.ActionMenu:
		return false, n.MainMenu()
	case core.ActionQuit:
		return true, nil
	default:
		return false, nil
	}
}

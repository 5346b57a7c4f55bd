package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// KeyMap defines the key bindings for the runner. It doubles as the
// help.KeyMap for the footer.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Confirm key.Binding
	Shop    key.Binding
	Mute    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Confirm, k.Shop, k.Mute, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Confirm, k.Shop, k.Mute},
		{k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "down"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter/space", "play"),
		),
		Shop: key.NewBinding(
			key.WithKeys("tab", "o"),
			key.WithHelp("tab", "shop"),
		),
		Mute: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "mute"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MapKey translates a key message to an action.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Confirm):
		return core.ActionConfirm
	case key.Matches(msg, k.Shop):
		return core.ActionShop
	case key.Matches(msg, k.Mute):
		return core.ActionMute
	}
	return core.ActionNone
}

// heldDirection turns discrete key events into a held vertical intent.
// Terminals report no key releases, so a direction stays held for a
// number of frames after its last key event; auto-repeat keeps it alive.
// Pressing the opposite direction takes over immediately.
type heldDirection struct {
	action core.Action
	left   int
	window int
}

func newHeldDirection(window int) heldDirection {
	if window < 1 {
		window = 1
	}
	return heldDirection{window: window}
}

func (h *heldDirection) press(a core.Action) {
	h.action = a
	h.left = h.window
}

func (h *heldDirection) release() {
	h.action = core.ActionNone
	h.left = 0
}

// apply marks the held direction on frame and ages it by one frame.
func (h *heldDirection) apply(frame *core.InputFrame) {
	if h.left <= 0 {
		return
	}
	frame.Set(h.action)
	h.left--
	if h.left == 0 {
		h.action = core.ActionNone
	}
}

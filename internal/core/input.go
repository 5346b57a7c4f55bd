package core

// Action represents a semantic input intent, abstracted from physical keys
// and pointer events. The simulation only ever sees actions.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - move player up while held
	ActionDown           // S, Down arrow - move player down while held
	ActionConfirm        // Enter, Space, click on PLAY - play, restart acknowledgement
	ActionShop           // Tab, O, click on SHOP - toggle the shop overlay
	ActionMute           // M, click on mute widget - toggle sound
	ActionQuit           // Q, Ctrl+C - exit
	ActionTap            // click on nothing tappable - restart acknowledgement only
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionConfirm:
		return "Confirm"
	case ActionShop:
		return "Shop"
	case ActionMute:
		return "Mute"
	case ActionQuit:
		return "Quit"
	case ActionTap:
		return "Tap"
	default:
		return "Unknown"
	}
}

// InputFrame is the input sampled for a single simulation tick.
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

// Vertical returns the vertical intent of the frame: -1 up, +1 down, 0 none.
// Up wins when both directions are held.
func (f InputFrame) Vertical() int {
	switch {
	case f.Has(ActionUp):
		return -1
	case f.Has(ActionDown):
		return 1
	default:
		return 0
	}
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

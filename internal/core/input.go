package core

// Action represents a semantic host action, abstracted from physical key presses
// and pointer events. The runner only understands ActionPrimary; the rest are
// consumed by the host.
type Action int

const (
	ActionNone       Action = iota
	ActionPrimary           // Space, Up, left click - start when stopped, jump when running
	ActionSound             // M - toggle audio cues
	ActionHelp              // ? - toggle full help
	ActionScreenshot        // Ctrl+S - save the screen as text
	ActionQuit              // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPrimary:
		return "Primary"
	case ActionSound:
		return "Sound"
	case ActionHelp:
		return "Help"
	case ActionScreenshot:
		return "Screenshot"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

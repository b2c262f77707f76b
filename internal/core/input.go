package core

// Action represents a host-level control, abstracted from physical key presses.
// Direction keys are not actions; they go through the input listener.
type Action int

const (
	ActionNone    Action = iota
	ActionStart          // Enter - start a new game
	ActionPause          // P, Space - pause/resume
	ActionRestart        // R - back to the start screen
	ActionHelp           // ? - toggle full help
	ActionQuit           // Q, Ctrl+C - exit
	ActionScreenshot     // Ctrl+S - save the board as PNG
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionStart:
		return "Start"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	case ActionScreenshot:
		return "Screenshot"
	default:
		return "Unknown"
	}
}

package core

// Action represents a semantic platform action, abstracted from physical key presses.
// Tile presses are not actions: they carry a key and go straight to the engine's
// input resolver so they are resolved on the same event that produced them.
type Action int

const (
	ActionNone       Action = iota
	ActionUp                // W, Up arrow, K - move menu cursor up
	ActionDown              // S, Down arrow, J - move menu cursor down
	ActionConfirm           // Enter, Space - select mode in menu
	ActionBack              // B, Escape - back to menu
	ActionRestart           // R - play the same mode again after game over
	ActionScoreboard        // Tab - open the scoreboard
	ActionScreenshot        // Ctrl+S - dump the screen buffer to a file
	ActionQuit              // Q, Ctrl+C - exit
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
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionScoreboard:
		return "Scoreboard"
	case ActionScreenshot:
		return "Screenshot"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

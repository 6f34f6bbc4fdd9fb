package core

// Action is a semantic player intent, abstracted from physical keys and
// pointer gestures.
type Action int

const (
	ActionNone     Action = iota
	ActionLeft            // Left arrow, A, H, or a leftward drag
	ActionRight           // Right arrow, D, L, or a rightward drag
	ActionSoftDrop        // Down arrow, S, J, or a downward drag
	ActionHardDrop        // Space or a downward flick
	ActionRotate          // Up arrow, W, K, X, or a tap
	ActionPause           // P, Escape
	ActionConfirm         // Enter
	ActionBack            // B - back to the home menu
	ActionRestart         // R - new game after game over
	ActionQuit            // Q, Ctrl+C
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
	case ActionSoftDrop:
		return "SoftDrop"
	case ActionHardDrop:
		return "HardDrop"
	case ActionRotate:
		return "Rotate"
	case ActionPause:
		return "Pause"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsGameplay reports whether the action is applied by the game engine
// rather than by the platform.
func (a Action) IsGameplay() bool {
	switch a {
	case ActionLeft, ActionRight, ActionSoftDrop, ActionHardDrop, ActionRotate, ActionPause:
		return true
	}
	return false
}

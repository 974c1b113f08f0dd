package core

// Event is a semantic input signal, abstracted from physical key presses.
// The same arrow events steer the snake while playing and move the selection
// while in the menu; the session interprets them by its active state.
type Event int

const (
	EventNone Event = iota
	EventUp
	EventDown
	EventLeft
	EventRight
	EventConfirm // Enter - confirm menu selection
	EventPause   // P - pause/resume toggle
	EventRestart // R - restart the current run
	EventMute    // M - sound on/off toggle
	EventEscape  // Esc - back to menu, or quit from the menu
	EventQuit    // Q, Ctrl+C - exit
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventNone:
		return "None"
	case EventUp:
		return "Up"
	case EventDown:
		return "Down"
	case EventLeft:
		return "Left"
	case EventRight:
		return "Right"
	case EventConfirm:
		return "Confirm"
	case EventPause:
		return "Pause"
	case EventRestart:
		return "Restart"
	case EventMute:
		return "Mute"
	case EventEscape:
		return "Escape"
	case EventQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsDirection reports whether the event is one of the four arrow events.
func (e Event) IsDirection() bool {
	switch e {
	case EventUp, EventDown, EventLeft, EventRight:
		return true
	default:
		return false
	}
}

// Direction converts an arrow event to a movement direction.
// The second return is false for non-arrow events.
func (e Event) Direction() (Direction, bool) {
	switch e {
	case EventUp:
		return DirUp, true
	case EventDown:
		return DirDown, true
	case EventLeft:
		return DirLeft, true
	case EventRight:
		return DirRight, true
	default:
		return DirUp, false
	}
}

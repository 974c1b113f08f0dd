package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Pablify/Snake/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game events.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// Map translates a key message to a game event. The state machine decides
// what the event means in the current state; the mapper never does.
func (km *KeyMapper) Map(msg tea.KeyMsg) core.Event {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.EventQuit
	case "up", "w", "k": // vim-style k for up
		return core.EventUp
	case "down", "s", "j": // vim-style j for down
		return core.EventDown
	case "left", "a", "h":
		return core.EventLeft
	case "right", "d", "l":
		return core.EventRight
	case "enter", " ":
		return core.EventConfirm
	case "p":
		return core.EventPause
	case "r":
		return core.EventRestart
	case "m":
		return core.EventMute
	case "esc":
		return core.EventEscape
	}
	return core.EventNone
}

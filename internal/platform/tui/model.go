package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Pablify/Snake/internal/core"
	"github.com/Pablify/Snake/internal/game"
	"github.com/Pablify/Snake/internal/storage"
)

// maxFrameTime caps the real time fed into the simulation per frame, so a
// suspended terminal does not drain as a burst of catch-up ticks.
const maxFrameTime = 0.25

// Model is the Bubble Tea model for playing the game in a terminal.
type Model struct {
	session *game.Session
	store   *storage.Store
	screen  *core.Screen
	keys    *KeyMapper

	fps       int
	lastFrame time.Time
	frame     int

	runSaved bool // Whether the current game over has been recorded
	quitting bool
}

// NewModel creates a model rendering into a width x height terminal.
// The store may be nil; run history is then not recorded.
func NewModel(session *game.Session, store *storage.Store, width, height, fps int) Model {
	return Model{
		session: session,
		store:   store,
		screen:  core.NewScreen(width, height),
		keys:    NewKeyMapper(),
		fps:     fps,
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return frameCmd(m.fps)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case FrameMsg:
		return m.handleFrame(time.Time(msg))
	}

	return m, nil
}

// handleKey maps terminal keys to game events and feeds the state machine.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ev := m.keys.Map(msg)
	if ev == core.EventNone {
		return m, nil
	}

	if m.session.HandleEvent(ev) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleFrame advances the simulation by the real time since the last frame
// and records a finished run once per game over.
func (m Model) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	var dt float64
	if !m.lastFrame.IsZero() {
		dt = now.Sub(m.lastFrame).Seconds()
	}
	if dt < 0 {
		dt = 0
	}
	if dt > maxFrameTime {
		dt = maxFrameTime
	}
	m.lastFrame = now
	m.frame++

	m.session.AdvanceTime(dt)

	if m.session.State() == game.StateGameOver {
		if !m.runSaved {
			m.runSaved = true
			snap := m.session.Snapshot()
			if m.store != nil {
				//nolint:errcheck // Best-effort save, game continues regardless
				m.store.RecordRun(snap.Mode, snap.Wrap, snap.Score, snap.GameOverReason.String())
			}
		}
	} else {
		m.runSaved = false
	}

	return m, frameCmd(m.fps)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	// Blink at roughly 4 Hz of a 60 fps frame loop.
	blinkOn := m.frame/8%2 == 0
	Render(m.screen, m.session.Snapshot(), blinkOn)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given session.
func Run(session *game.Session, store *storage.Store, width, height, fps int) error {
	model := NewModel(session, store, width, height, fps)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}

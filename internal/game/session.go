package game

import (
	"math/rand"

	"github.com/Pablify/Snake/internal/config"
	"github.com/Pablify/Snake/internal/core"
)

// State is the top-level game state.
type State int

const (
	StateMenu State = iota
	StatePlaying
	StatePaused
	StateGameOver
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Menu item indices, in display order.
const (
	menuStart = iota
	menuMode
	menuWrap
	menuSound
	menuQuit
	menuItemCount
)

// Session is the game state machine. It routes input events by the active
// state, drives the engine while playing, and talks to the persistence and
// audio collaborators. All mutation is synchronous; the caller feeds it
// events and elapsed time from a single goroutine.
type Session struct {
	cfg   config.Config
	state State

	mode config.Mode
	wrap bool

	rng     *rand.Rand
	engine  *Engine
	records map[RecordKey]int

	store Persistence
	sfx   AudioSink

	menuIndex int
	reason    CollisionKind
}

// NewSession builds a session starting in the menu. Persisted state is
// loaded best-effort: a failing store yields empty records and the sound
// default, never an error. A nil store or sink is replaced by a no-op.
func NewSession(cfg config.Config, mode config.Mode, wrap bool, seed int64, store Persistence, sfx AudioSink) *Session {
	if store == nil {
		store = nopPersistence{}
	}
	if sfx == nil {
		sfx = NopAudio{}
	}

	s := &Session{
		cfg:   cfg,
		state: StateMenu,
		mode:  mode,
		wrap:  wrap,
		rng:   rand.New(rand.NewSource(seed)),
		store: store,
		sfx:   sfx,
	}

	data, err := store.Load()
	if err != nil || data.Records == nil {
		data.Records = make(map[RecordKey]int)
	}
	s.records = data.Records
	s.sfx.SetEnabled(!data.Muted)

	return s
}

// State returns the active top-level state.
func (s *Session) State() State {
	return s.state
}

// Mode returns the active difficulty mode.
func (s *Session) Mode() config.Mode {
	return s.mode
}

// Wrap reports whether wrap mode is on.
func (s *Session) Wrap() bool {
	return s.wrap
}

// HandleEvent feeds one input event into the state machine. The return is
// true when the event ends the process (Quit anywhere, Escape or a confirmed
// Quit item in the menu); persisted state is flushed before reporting it.
func (s *Session) HandleEvent(ev core.Event) (quit bool) {
	if ev == core.EventQuit {
		s.persist()
		return true
	}

	switch s.state {
	case StateMenu:
		return s.handleMenuEvent(ev)
	case StatePlaying:
		s.handlePlayingEvent(ev)
	case StatePaused:
		s.handlePausedEvent(ev)
	case StateGameOver:
		s.handleGameOverEvent(ev)
	}
	return false
}

func (s *Session) handleMenuEvent(ev core.Event) bool {
	switch ev {
	case core.EventUp:
		s.menuIndex = (s.menuIndex - 1 + menuItemCount) % menuItemCount
	case core.EventDown:
		s.menuIndex = (s.menuIndex + 1) % menuItemCount
	case core.EventLeft:
		s.stepMenuValue(false)
	case core.EventRight:
		s.stepMenuValue(true)
	case core.EventConfirm:
		switch s.menuIndex {
		case menuStart:
			s.startRun(true)
		case menuQuit:
			s.persist()
			return true
		}
	case core.EventMute:
		s.toggleMute()
	case core.EventEscape:
		s.persist()
		return true
	}
	return false
}

// stepMenuValue cycles the value of the selected configurable item. Changing
// mode or wrap recomputes the displayed best for the new (mode, wrap) key.
func (s *Session) stepMenuValue(forward bool) {
	step := 1
	if !forward {
		step = -1
	}

	switch s.menuIndex {
	case menuMode:
		modes := config.Modes()
		idx := 0
		for i, m := range modes {
			if m == s.mode {
				idx = i
				break
			}
		}
		s.mode = modes[(idx+step+len(modes))%len(modes)]
	case menuWrap:
		// Two values; stepping either way toggles.
		s.wrap = !s.wrap
	case menuSound:
		s.toggleMute()
	}
}

func (s *Session) handlePlayingEvent(ev core.Event) {
	if d, ok := ev.Direction(); ok {
		s.engine.SetDirection(d)
		return
	}

	switch ev {
	case core.EventPause:
		s.state = StatePaused
	case core.EventRestart:
		s.startRun(false)
	case core.EventMute:
		s.toggleMute()
	case core.EventEscape:
		// Abandon the run; the engine state stays visible behind the menu
		// until Start resets it.
		s.state = StateMenu
	}
}

func (s *Session) handlePausedEvent(ev core.Event) {
	switch ev {
	case core.EventPause, core.EventEscape:
		s.state = StatePlaying
	case core.EventMute:
		s.toggleMute()
	}
}

func (s *Session) handleGameOverEvent(ev core.Event) {
	switch ev {
	case core.EventEscape:
		s.state = StateMenu
	case core.EventRestart:
		s.startRun(false)
	}
}

// startRun applies a fresh run reset and enters Playing. The run-started cue
// plays only when the run is launched from the menu.
func (s *Session) startRun(announce bool) {
	s.engine = NewEngine(s.cfg, s.mode, s.wrap, s.rng, s.records, s.sfx)
	s.reason = CollisionNone
	s.state = StatePlaying
	if announce {
		s.sfx.Play(SoundRunStarted)
	}
}

// AdvanceTime feeds elapsed real time into the simulation. Outside Playing
// the time is discarded: pausing freezes the run without draining a tick
// backlog on resume.
func (s *Session) AdvanceTime(dt float64) {
	if s.state != StatePlaying {
		return
	}

	res := s.engine.AdvanceTime(dt)
	if res.Collision != CollisionNone {
		s.reason = res.Collision
		s.state = StateGameOver
		s.sfx.Play(SoundRunEnded)
		s.persist()
	}
}

// toggleMute flips the sound setting and persists it. The sink reports the
// effective state, which stays off when the audio device is unavailable.
func (s *Session) toggleMute() {
	s.sfx.SetEnabled(!s.sfx.Enabled())
	s.persist()
}

// persist writes highscores and the mute flag. Failures are tolerated
// silently: a broken store never affects gameplay.
func (s *Session) persist() {
	records := make(map[RecordKey]int, len(s.records))
	for k, v := range s.records {
		records[k] = v
	}
	//nolint:errcheck // Best-effort save, gameplay continues regardless
	s.store.Save(SaveData{Muted: !s.sfx.Enabled(), Records: records})
}

// nopPersistence keeps the session logic free of nil checks.
type nopPersistence struct{}

func (nopPersistence) Load() (SaveData, error) { return SaveData{}, nil }
func (nopPersistence) Save(SaveData) error     { return nil }

// Package game implements the snake simulation core: body movement, food
// lifecycle, the fixed-timestep clock, score-driven speed scaling and the
// menu/playing/paused/game-over state machine. It performs no rendering,
// audio synthesis or file I/O; those are collaborators behind the
// Persistence and AudioSink contracts.
package game

import (
	"fmt"

	"github.com/Pablify/Snake/internal/config"
)

// RecordKey identifies one best-score slot: a difficulty mode combined with
// the wrap setting.
type RecordKey struct {
	Mode config.Mode
	Wrap bool
}

// String renders the key in the legacy "normal_off" form used by the
// persistence layer.
func (k RecordKey) String() string {
	wrap := "off"
	if k.Wrap {
		wrap = "on"
	}
	return fmt.Sprintf("%s_%s", k.Mode, wrap)
}

// SaveData is the state exchanged with the persistence collaborator.
type SaveData struct {
	Muted   bool
	Records map[RecordKey]int
}

// Persistence stores highscores and the mute setting between runs.
// Implementations must tolerate missing or corrupt storage by returning
// defaults from Load; the core treats Save failures as non-fatal.
type Persistence interface {
	Load() (SaveData, error)
	Save(SaveData) error
}

// SoundEvent is a fire-and-forget audio cue emitted by the simulation.
type SoundEvent int

const (
	SoundEatNormal SoundEvent = iota
	SoundEatGold
	SoundRunStarted
	SoundRunEnded
)

// String returns a human-readable name for the sound event.
func (e SoundEvent) String() string {
	switch e {
	case SoundEatNormal:
		return "eat_normal"
	case SoundEatGold:
		return "eat_gold"
	case SoundRunStarted:
		return "run_started"
	case SoundRunEnded:
		return "run_ended"
	default:
		return "unknown"
	}
}

// AudioSink plays sound events. A failed audio device must degrade to
// silent no-ops; gameplay never depends on playback succeeding.
type AudioSink interface {
	// Play emits a cue. Must not block.
	Play(SoundEvent)
	// SetEnabled requests sound on/off and returns the effective state,
	// which stays false when the audio device is unavailable.
	SetEnabled(on bool) bool
	// Enabled reports whether sound is currently audible.
	Enabled() bool
}

// NopAudio is an AudioSink that discards everything. Used when no audio
// device is wired, and in tests.
type NopAudio struct{}

func (NopAudio) Play(SoundEvent)      {}
func (NopAudio) SetEnabled(bool) bool { return false }
func (NopAudio) Enabled() bool        { return false }

// CollisionKind tags the terminal condition that ended a run.
// Collisions are expected outcomes, not errors.
type CollisionKind int

const (
	CollisionNone CollisionKind = iota
	CollisionWall
	CollisionSelf
)

// String returns a human-readable name for the collision kind.
func (c CollisionKind) String() string {
	switch c {
	case CollisionWall:
		return "wall"
	case CollisionSelf:
		return "self"
	default:
		return "none"
	}
}

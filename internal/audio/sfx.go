// Package audio synthesizes the game's sound cues with the beep speaker.
// Everything degrades to silence when no audio device is available, so the
// rest of the program never has to care.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/Pablify/Snake/internal/game"
)

const (
	sampleRate = beep.SampleRate(44100)
	toneVolume = 0.25
)

type cue struct {
	freq     float64
	duration time.Duration
}

// cues maps each sound event to its square wave parameters.
var cues = map[game.SoundEvent]cue{
	game.SoundEatNormal:  {freq: 440, duration: 80 * time.Millisecond},
	game.SoundEatGold:    {freq: 660, duration: 120 * time.Millisecond},
	game.SoundRunStarted: {freq: 523, duration: 100 * time.Millisecond},
	game.SoundRunEnded:   {freq: 200, duration: 200 * time.Millisecond},
}

// SFX plays short synthesized cues through a shared mixer. It implements
// game.AudioSink.
type SFX struct {
	mu      sync.Mutex
	mixer   *beep.Mixer
	ready   bool
	enabled bool
}

// New initializes the speaker and returns a ready sink. If the audio device
// cannot be opened the sink still works but stays permanently silent.
func New() *SFX {
	s := &SFX{mixer: &beep.Mixer{}}

	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return s
	}
	speaker.Play(s.mixer)
	s.ready = true
	s.enabled = true
	return s
}

// Play queues the cue for the given event. Non-blocking; unknown events and
// muted or unavailable audio are ignored.
func (s *SFX) Play(e game.SoundEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ready || !s.enabled {
		return
	}
	c, ok := cues[e]
	if !ok {
		return
	}

	streamer := newTone(c.freq, c.duration, toneVolume, sampleRate)
	speaker.Lock()
	s.mixer.Add(streamer)
	speaker.Unlock()
}

// SetEnabled requests sound on or off and returns the effective state. Sound
// can never be enabled when the device failed to open.
func (s *SFX) SetEnabled(on bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.enabled = on && s.ready
	return s.enabled
}

// Enabled reports whether cues are currently audible.
func (s *SFX) Enabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.enabled
}

// Close silences the mixer. The speaker itself stays open; beep does not
// expose a close.
func (s *SFX) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ready {
		return
	}
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
}

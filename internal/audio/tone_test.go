package audio

import (
	"testing"
	"time"

	"github.com/Pablify/Snake/internal/game"
)

func TestToneLength(t *testing.T) {
	streamer := newTone(440, 80*time.Millisecond, 0.25, sampleRate)
	want := sampleRate.N(80 * time.Millisecond)

	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := streamer.Stream(buf)
		total += n
		if !ok {
			break
		}
	}

	if total != want {
		t.Errorf("Expected %d samples, got %d", want, total)
	}
}

func TestToneAmplitudeBounded(t *testing.T) {
	streamer := newTone(660, 50*time.Millisecond, 0.25, sampleRate)

	buf := make([][2]float64, 512)
	for {
		n, ok := streamer.Stream(buf)
		for i := 0; i < n; i++ {
			for ch := 0; ch < 2; ch++ {
				if v := buf[i][ch]; v > 0.25 || v < -0.25 {
					t.Fatalf("Sample %d channel %d out of range: %v", i, ch, v)
				}
			}
		}
		if !ok {
			break
		}
	}
}

func TestToneFadesOut(t *testing.T) {
	streamer := newTone(440, 80*time.Millisecond, 0.25, sampleRate)
	total := sampleRate.N(80 * time.Millisecond)

	buf := make([][2]float64, total)
	n, _ := streamer.Stream(buf)
	if n != total {
		t.Fatalf("Expected %d samples in one read, got %d", total, n)
	}

	if last := buf[total-1][0]; last > 0.01 || last < -0.01 {
		t.Errorf("Final sample should be near silent, got %v", last)
	}
}

func TestAllSoundEventsHaveCues(t *testing.T) {
	events := []game.SoundEvent{
		game.SoundEatNormal,
		game.SoundEatGold,
		game.SoundRunStarted,
		game.SoundRunEnded,
	}
	for _, e := range events {
		if _, ok := cues[e]; !ok {
			t.Errorf("No cue defined for %v", e)
		}
	}
}

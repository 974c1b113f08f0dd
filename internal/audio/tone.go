package audio

import (
	"time"

	"github.com/gopxl/beep"
)

// tone is a fixed-length square wave streamer. The last few milliseconds
// fade linearly to zero to avoid a click at the cut-off.
type tone struct {
	freq     float64
	phase    float64
	volume   float64
	duration int
	fadeFrom int
	position int
	rate     beep.SampleRate
}

// newTone creates a square wave of the given frequency and length.
func newTone(freq float64, duration time.Duration, volume float64, rate beep.SampleRate) beep.Streamer {
	samples := rate.N(duration)
	fade := rate.N(5 * time.Millisecond)
	return &tone{
		freq:     freq,
		volume:   volume,
		duration: samples,
		fadeFrom: samples - fade,
		rate:     rate,
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.duration {
			return i, false
		}

		val := t.volume
		if t.phase >= 0.5 {
			val = -t.volume
		}
		if t.position >= t.fadeFrom && t.duration > t.fadeFrom {
			val *= float64(t.duration-t.position) / float64(t.duration-t.fadeFrom)
		}

		samples[i][0] = val
		samples[i][1] = val

		t.phase += t.freq / float64(t.rate)
		if t.phase >= 1 {
			t.phase -= 1
		}
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

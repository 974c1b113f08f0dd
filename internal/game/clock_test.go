package game

import "testing"

func TestClockConsume(t *testing.T) {
	var c Clock

	c.Accumulate(0.35)

	ticks := 0
	for c.Consume(10) {
		ticks++
	}
	if ticks != 3 {
		t.Errorf("0.35s at 10 ticks/s should yield 3 ticks, got %d", ticks)
	}
}

func TestClockCarriesRemainder(t *testing.T) {
	var c Clock

	c.Accumulate(0.05)
	if c.Consume(10) {
		t.Fatal("0.05s at 10 ticks/s should not tick yet")
	}
	c.Accumulate(0.05)
	if !c.Consume(10) {
		t.Error("Accumulated 0.1s at 10 ticks/s should tick")
	}
}

func TestClockIgnoresNegativeTime(t *testing.T) {
	var c Clock

	c.Accumulate(0.1)
	c.Accumulate(-5)

	ticks := 0
	for c.Consume(10) {
		ticks++
	}
	if ticks != 1 {
		t.Errorf("Negative time must be ignored, expected 1 tick, got %d", ticks)
	}
}

func TestClockRateChangeMidAccumulation(t *testing.T) {
	var c Clock

	// Rates 4 and 8 give exactly representable steps of 0.25 and 0.125.
	// The leftover after draining at rate 4 is re-measured at the new rate
	// without resetting the accumulator.
	c.Accumulate(0.875)
	for i := 0; i < 3; i++ {
		if !c.Consume(4) {
			t.Fatalf("Expected tick %d at rate 4", i+1)
		}
	}
	if c.Consume(4) {
		t.Fatal("Only 0.125s left, no tick at rate 4")
	}
	if !c.Consume(8) {
		t.Error("0.125s should tick at rate 8")
	}
}

func TestClockZeroRate(t *testing.T) {
	var c Clock

	c.Accumulate(10)
	if c.Consume(0) {
		t.Error("Zero rate must never tick")
	}
}

func TestClockReset(t *testing.T) {
	var c Clock

	c.Accumulate(5)
	c.Reset()
	if c.Consume(10) {
		t.Error("Reset should drop accumulated time")
	}
}

func TestTickRate(t *testing.T) {
	tests := []struct {
		name  string
		score int
		want  float64
	}{
		{"zero score", 0, 10},
		{"below first step", 4, 10},
		{"first step", 5, 10.5},
		{"several steps", 25, 12.5},
		{"clamped at ceiling", 1000, 24},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TickRate(10, 24, tt.score, 5, 0.5)
			if got != tt.want {
				t.Errorf("TickRate(score=%d) = %v, want %v", tt.score, got, tt.want)
			}
		})
	}
}

func TestTickRateDegenerateStep(t *testing.T) {
	if got := TickRate(10, 24, 100, 0, 0.5); got != 10 {
		t.Errorf("Non-positive step interval should pin the base rate, got %v", got)
	}
}

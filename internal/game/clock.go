package game

// Clock converts variable frame time into a whole number of fixed-size logic
// steps. The step size is recomputed from the live tick rate on every
// consume, so a speed-up takes effect immediately without resetting the
// accumulator. A slow frame drains as several steps; a fast frame may drain
// none.
type Clock struct {
	acc float64
}

// Accumulate adds elapsed real time in seconds. Negative increments are
// ignored; the external clock source is contractually monotonic.
func (c *Clock) Accumulate(dt float64) {
	if dt > 0 {
		c.acc += dt
	}
}

// Consume removes one step at the given rate (ticks per second) if enough
// time has accumulated, and reports whether a logic tick should run.
func (c *Clock) Consume(rate float64) bool {
	if rate <= 0 {
		return false
	}
	step := 1.0 / rate
	if c.acc < step {
		return false
	}
	c.acc -= step
	return true
}

// Reset drops any accumulated time. Used on run reset so a long menu dwell
// does not burst ticks into a fresh run.
func (c *Clock) Reset() {
	c.acc = 0
}

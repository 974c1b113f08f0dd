package game

import (
	"github.com/Pablify/Snake/internal/core"
)

// TickRate derives the current logic rate from the accumulated score: one
// increment per stepEvery points, clamped to [base, ceiling]. Pure and
// monotonic non-decreasing in score.
func TickRate(base, ceiling float64, score, stepEvery int, increment float64) float64 {
	if stepEvery <= 0 {
		return base
	}
	steps := score / stepEvery
	return core.ClampF(base+float64(steps)*increment, base, ceiling)
}

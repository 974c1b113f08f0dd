package game

import (
	"math/rand"

	"github.com/Pablify/Snake/internal/core"
)

// Kind is the closed food variant.
type Kind int

const (
	KindNormal Kind = iota
	KindGold
)

// String returns a human-readable name for the food kind.
func (k Kind) String() string {
	if k == KindGold {
		return "gold"
	}
	return "normal"
}

// Food is the single optional item on the board. SpawnedAt is the simulation
// time (seconds since run start) at which a gold item appeared; it is zero
// for normal food.
type Food struct {
	Pos       core.Cell
	Kind      Kind
	SpawnedAt float64
}

// Spawner places food on free cells and decides its kind. The RNG is seeded
// by the caller, keeping runs deterministic under a fixed seed.
type Spawner struct {
	rng        *rand.Rand
	goldChance float64
	lifetime   float64
}

// NewSpawner creates a spawner with the given gold probability and gold
// lifetime in seconds.
func NewSpawner(rng *rand.Rand, goldChance, lifetime float64) *Spawner {
	return &Spawner{rng: rng, goldChance: goldChance, lifetime: lifetime}
}

// Spawn picks one of the free cells uniformly at random. The second return
// is false when no free cell exists (full board); the caller keeps its
// previous food state in that case. The new food is gold only when
// forceNormal is false, no gold item is currently on the board, and an
// independent Bernoulli trial with the configured gold chance succeeds.
func (s *Spawner) Spawn(free []core.Cell, forceNormal, goldActive bool, now float64) (Food, bool) {
	if len(free) == 0 {
		return Food{}, false
	}
	pos := free[s.rng.Intn(len(free))]
	if !forceNormal && !goldActive && s.RollGold() {
		return Food{Pos: pos, Kind: KindGold, SpawnedAt: now}, true
	}
	return Food{Pos: pos, Kind: KindNormal}, true
}

// RollGold runs one Bernoulli trial with the configured gold chance.
func (s *Spawner) RollGold() bool {
	return s.rng.Float64() < s.goldChance
}

// Expired reports whether a gold item has outlived its bounded lifetime.
// Normal food never expires.
func (s *Spawner) Expired(f Food, now float64) bool {
	return f.Kind == KindGold && now-f.SpawnedAt > s.lifetime
}

// Remaining returns the fraction of lifetime a gold item has left, in
// [0, 1]. Normal food always reports 1.
func (s *Spawner) Remaining(f Food, now float64) float64 {
	if f.Kind != KindGold || s.lifetime <= 0 {
		return 1
	}
	return core.ClampF(1-(now-f.SpawnedAt)/s.lifetime, 0, 1)
}

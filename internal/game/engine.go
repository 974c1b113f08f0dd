package game

import (
	"math/rand"

	"github.com/Pablify/Snake/internal/config"
	"github.com/Pablify/Snake/internal/core"
)

// TickResult reports what a single logic tick did.
type TickResult struct {
	Collision CollisionKind
	Ate       bool
	AteKind   Kind
}

// Engine runs the simulation for one run: it owns the snake, the food and
// the score, and advances them one atomic tick at a time. A collision result
// ends the run; the surrounding state machine decides what happens next.
type Engine struct {
	cfg  config.Config
	grid core.Grid
	mode config.Mode
	wrap bool

	body    *Body
	spawner *Spawner
	food    *Food

	clock    Clock
	elapsed  float64 // simulation seconds since run start
	tickRate float64

	score int
	best  int

	// records is shared with the session; the engine updates the live best
	// for its (mode, wrap) key as the score passes it.
	records map[RecordKey]int
	sfx     AudioSink
}

// NewEngine creates an engine for a fresh run. The records map is shared
// with the caller and mutated in place when a new best is reached.
func NewEngine(cfg config.Config, mode config.Mode, wrap bool, rng *rand.Rand, records map[RecordKey]int, sfx AudioSink) *Engine {
	if sfx == nil {
		sfx = NopAudio{}
	}
	e := &Engine{
		cfg:     cfg,
		grid:    core.Grid{W: cfg.Grid.Width, H: cfg.Grid.Height},
		mode:    mode,
		wrap:    wrap,
		spawner: NewSpawner(rng, cfg.Food.GoldChance, cfg.Food.GoldLifetime),
		records: records,
		sfx:     sfx,
	}
	e.Reset()
	return e
}

// Reset prepares a fresh run: a centered snake moving right, zero score, the
// base tick rate and one forced-normal food.
func (e *Engine) Reset() {
	center := core.Cell{X: e.grid.W / 2, Y: e.grid.H / 2}
	e.body = NewBody(center, e.cfg.Snake.InitialLength, core.DirRight)
	e.score = 0
	e.elapsed = 0
	e.clock.Reset()
	e.tickRate = e.cfg.Speed.ForMode(e.mode).Base
	e.food = nil
	e.spawnFood(true)
	e.best = e.records[e.recordKey()]
}

func (e *Engine) recordKey() RecordKey {
	return RecordKey{Mode: e.mode, Wrap: e.wrap}
}

// AdvanceTime feeds elapsed real time into the fixed-timestep clock and runs
// the resulting logic ticks. The step size follows the live tick rate, so a
// stalled frame drains as multiple catch-up ticks. Ticking stops early on a
// collision and the terminal result is returned.
func (e *Engine) AdvanceTime(dt float64) TickResult {
	if dt > 0 {
		e.elapsed += dt
	}
	e.clock.Accumulate(dt)

	var last TickResult
	for e.clock.Consume(e.tickRate) {
		last = e.Tick()
		if last.Collision != CollisionNone {
			return last
		}
	}
	return last
}

// Tick advances the simulation by exactly one logic step: move, eat,
// collide, respawn food, rescale speed, refresh best. A wall hit aborts
// before any mutation; a self hit leaves the fatal move applied so the
// final position can be shown.
func (e *Engine) Tick() TickResult {
	next := e.body.PeekNextHead()

	// Boundary policy: wrap folds the head onto the grid, otherwise leaving
	// the grid ends the run before any mutation.
	if e.wrap {
		next = e.grid.Wrap(next)
	} else if !e.grid.InBounds(next) {
		return TickResult{Collision: CollisionWall}
	}

	ate := false
	var kind Kind
	if e.food != nil && e.food.Pos == next {
		ate = true
		kind = e.food.Kind
		if kind == KindGold {
			e.score += e.cfg.Scoring.Gold
		} else {
			e.score += e.cfg.Scoring.Normal
		}
	}

	e.body.Advance(next, ate)
	if ate && kind == KindGold {
		// Gold grows by two in one tick; the extra cell extends the tail so
		// the head still travels exactly one cell.
		e.body.Extend()
	}

	if e.body.CollidesWithSelf() {
		return TickResult{Collision: CollisionSelf, Ate: ate, AteKind: kind}
	}

	if ate {
		if kind == KindGold {
			e.sfx.Play(SoundEatGold)
		} else {
			e.sfx.Play(SoundEatNormal)
		}
		e.respawnAfterEat(kind)
	} else if e.food != nil && e.spawner.Expired(*e.food, e.elapsed) {
		// Uneaten gold past its lifetime is silently replaced by normal food.
		e.food = nil
		e.spawnFood(true)
	}

	speed := e.cfg.Speed.ForMode(e.mode)
	e.tickRate = TickRate(speed.Base, speed.Max, e.score, e.cfg.Speed.StepEveryScore, e.cfg.Speed.Increment)

	if e.score > e.best {
		e.best = e.score
		e.records[e.recordKey()] = e.best
	}

	return TickResult{Ate: ate, AteKind: kind}
}

// respawnAfterEat decides the replacement food. Eating normal food rolls the
// gold chance for the replacement; if that attempt still comes out normal
// (the spawner runs its own trial and refuses concurrent gold), a normal
// respawn is forced so the board is never left starved. Eating gold always
// forces a normal replacement.
func (e *Engine) respawnAfterEat(kind Kind) {
	e.food = nil
	if kind == KindNormal && e.spawner.RollGold() {
		e.spawnFood(false)
		if e.food != nil && e.food.Kind != KindGold {
			e.food = nil
			e.spawnFood(true)
		}
		return
	}
	e.spawnFood(true)
}

// spawnFood places a new item on a free cell. A full board is not an error:
// the previous food state (possibly none) is retained and play continues.
func (e *Engine) spawnFood(forceNormal bool) {
	occ := e.body.Occupied()
	free := make([]core.Cell, 0, e.grid.W*e.grid.H-len(occ))
	for _, c := range e.grid.Cells() {
		if !occ[c] {
			free = append(free, c)
		}
	}

	goldActive := e.food != nil && e.food.Kind == KindGold
	if f, ok := e.spawner.Spawn(free, forceNormal, goldActive, e.elapsed); ok {
		e.food = &f
	}
}

// SetDirection buffers a direction change for the next tick.
func (e *Engine) SetDirection(d core.Direction) {
	e.body.SetDirection(d)
}

// Score returns the current run score.
func (e *Engine) Score() int {
	return e.score
}

// Best returns the live best for the active (mode, wrap) key.
func (e *Engine) Best() int {
	return e.best
}

// CurrentTickRate returns the live logic rate in ticks per second.
func (e *Engine) CurrentTickRate() float64 {
	return e.tickRate
}

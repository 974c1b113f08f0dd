package game

import (
	"github.com/Pablify/Snake/internal/core"
)

// Body is the snake: an ordered sequence of occupied cells with the head at
// index 0, plus the committed and the pending movement direction. It is
// owned exclusively by the engine and mutated only through Advance.
type Body struct {
	cells   []core.Cell
	dir     core.Direction // direction of the last committed advance
	pending core.Direction // applied on the next advance
}

// NewBody builds a snake extending backward from start opposite to dir.
func NewBody(start core.Cell, length int, dir core.Direction) *Body {
	back := dir.Opposite().Delta()
	cells := make([]core.Cell, 0, length)
	c := start
	for i := 0; i < length; i++ {
		cells = append(cells, c)
		c = c.Add(back)
	}
	return &Body{cells: cells, dir: dir, pending: dir}
}

// Head returns the current head cell.
func (b *Body) Head() core.Cell {
	return b.cells[0]
}

// Len returns the number of occupied cells.
func (b *Body) Len() int {
	return len(b.cells)
}

// Direction returns the committed movement direction.
func (b *Body) Direction() core.Direction {
	return b.dir
}

// SetDirection buffers a direction change for the next advance. A change
// that is the exact opposite of the committed direction is ignored, which
// rules out instant 180-degree reversals by construction.
func (b *Body) SetDirection(d core.Direction) {
	if d == b.dir.Opposite() {
		return
	}
	b.pending = d
}

// PeekNextHead returns the cell the next advance will move the head to,
// before any wrap or bounds policy is applied.
func (b *Body) PeekNextHead() core.Cell {
	return b.Head().Add(b.pending.Delta())
}

// Advance commits the pending direction and pushes head as the new head
// cell. If grow is false the tail cell is removed, keeping the length; if
// true the tail is retained and the snake grows by one.
func (b *Body) Advance(head core.Cell, grow bool) {
	b.dir = b.pending
	b.cells = append([]core.Cell{head}, b.cells...)
	if !grow {
		b.cells = b.cells[:len(b.cells)-1]
	}
}

// Extend grows the snake by one cell at the tail without moving the head.
// Gold food grows the body by two in a single tick: one cell from the
// growing advance and one from Extend, so the head still travels exactly
// one cell.
func (b *Body) Extend() {
	b.cells = append(b.cells, b.cells[len(b.cells)-1])
}

// CollidesWithSelf reports whether the head occupies the same cell as any
// other body segment.
func (b *Body) CollidesWithSelf() bool {
	head := b.cells[0]
	for _, seg := range b.cells[1:] {
		if seg == head {
			return true
		}
	}
	return false
}

// Cells returns the occupied cells head-first. The slice is a copy; callers
// may retain it across ticks.
func (b *Body) Cells() []core.Cell {
	out := make([]core.Cell, len(b.cells))
	copy(out, b.cells)
	return out
}

// Occupied returns the set of covered cells.
func (b *Body) Occupied() map[core.Cell]bool {
	occ := make(map[core.Cell]bool, len(b.cells))
	for _, c := range b.cells {
		occ[c] = true
	}
	return occ
}

package game

import (
	"testing"

	"github.com/Pablify/Snake/internal/core"
)

func TestNewBodyLayout(t *testing.T) {
	b := NewBody(core.Cell{X: 10, Y: 5}, 3, core.DirRight)

	want := []core.Cell{{X: 10, Y: 5}, {X: 9, Y: 5}, {X: 8, Y: 5}}
	got := b.Cells()
	if len(got) != len(want) {
		t.Fatalf("Expected %d cells, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Cell %d: expected %v, got %v", i, want[i], got[i])
		}
	}
	if b.Head() != want[0] {
		t.Errorf("Head should be %v, got %v", want[0], b.Head())
	}
	if b.Direction() != core.DirRight {
		t.Errorf("Direction should be right, got %v", b.Direction())
	}
}

func TestNoImmediateReversal(t *testing.T) {
	b := NewBody(core.Cell{X: 10, Y: 5}, 3, core.DirRight)

	// Left is the exact opposite of the committed direction and is ignored.
	b.SetDirection(core.DirLeft)
	if b.pending == core.DirLeft {
		t.Error("Should not allow immediate reversal from Right to Left")
	}

	// A perpendicular change is buffered.
	b.SetDirection(core.DirDown)
	if b.pending != core.DirDown {
		t.Errorf("Expected pending Down, got %v", b.pending)
	}
}

func TestReversalCheckedAgainstCommittedDirection(t *testing.T) {
	b := NewBody(core.Cell{X: 10, Y: 5}, 3, core.DirRight)

	// Buffer Up, then try Left before any advance. The committed direction
	// is still Right, so Left remains a reversal and is rejected.
	b.SetDirection(core.DirUp)
	b.SetDirection(core.DirLeft)
	if b.pending != core.DirUp {
		t.Errorf("Expected pending Up after rejected reversal, got %v", b.pending)
	}

	// After one advance Up is committed; Left is now a legal turn.
	b.Advance(b.PeekNextHead(), false)
	b.SetDirection(core.DirLeft)
	if b.pending != core.DirLeft {
		t.Errorf("Expected pending Left after commit, got %v", b.pending)
	}
}

func TestAdvanceKeepsLength(t *testing.T) {
	b := NewBody(core.Cell{X: 10, Y: 5}, 3, core.DirRight)

	b.Advance(core.Cell{X: 11, Y: 5}, false)

	if b.Len() != 3 {
		t.Errorf("Length should stay 3, got %d", b.Len())
	}
	if b.Head() != (core.Cell{X: 11, Y: 5}) {
		t.Errorf("Head should be (11,5), got %v", b.Head())
	}
	cells := b.Cells()
	if cells[len(cells)-1] != (core.Cell{X: 9, Y: 5}) {
		t.Errorf("Tail should have moved to (9,5), got %v", cells[len(cells)-1])
	}
}

func TestAdvanceGrow(t *testing.T) {
	b := NewBody(core.Cell{X: 10, Y: 5}, 3, core.DirRight)

	b.Advance(core.Cell{X: 11, Y: 5}, true)

	if b.Len() != 4 {
		t.Errorf("Length should grow to 4, got %d", b.Len())
	}
	cells := b.Cells()
	if cells[len(cells)-1] != (core.Cell{X: 8, Y: 5}) {
		t.Errorf("Tail should be retained at (8,5), got %v", cells[len(cells)-1])
	}
}

func TestExtendDuplicatesTail(t *testing.T) {
	b := NewBody(core.Cell{X: 10, Y: 5}, 3, core.DirRight)
	head := b.Head()

	b.Extend()

	if b.Len() != 4 {
		t.Errorf("Length should be 4 after extend, got %d", b.Len())
	}
	if b.Head() != head {
		t.Errorf("Extend must not move the head: %v vs %v", b.Head(), head)
	}
	cells := b.Cells()
	if cells[2] != cells[3] {
		t.Errorf("Extend should duplicate the tail cell, got %v and %v", cells[2], cells[3])
	}
}

func TestCollidesWithSelf(t *testing.T) {
	b := &Body{
		cells: []core.Cell{
			{X: 5, Y: 5},
			{X: 5, Y: 6},
			{X: 6, Y: 6},
			{X: 6, Y: 5},
			{X: 7, Y: 5},
		},
		dir:     core.DirRight,
		pending: core.DirRight,
	}

	if b.CollidesWithSelf() {
		t.Fatal("Spiral body should not collide before moving")
	}

	// Advancing right puts the head onto an occupied segment.
	b.Advance(b.PeekNextHead(), false)
	if !b.CollidesWithSelf() {
		t.Error("Head moved onto a body segment, collision expected")
	}
}

func TestMovingIntoDepartingTailIsSafe(t *testing.T) {
	// A 2x2 loop: the head moves into the cell the tail vacates this tick.
	b := &Body{
		cells: []core.Cell{
			{X: 5, Y: 5},
			{X: 6, Y: 5},
			{X: 6, Y: 6},
			{X: 5, Y: 6},
		},
		dir:     core.DirLeft,
		pending: core.DirDown,
	}

	b.Advance(core.Cell{X: 5, Y: 6}, false)
	if b.CollidesWithSelf() {
		t.Error("Moving into the departing tail cell should be safe")
	}
}

func TestOccupied(t *testing.T) {
	b := NewBody(core.Cell{X: 3, Y: 3}, 3, core.DirDown)
	occ := b.Occupied()

	if len(occ) != 3 {
		t.Fatalf("Expected 3 occupied cells, got %d", len(occ))
	}
	for _, c := range b.Cells() {
		if !occ[c] {
			t.Errorf("Cell %v should be occupied", c)
		}
	}
}

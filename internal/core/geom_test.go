package core

import "testing"

func TestDirectionDelta(t *testing.T) {
	tests := []struct {
		dir      Direction
		expected Cell
	}{
		{DirUp, Cell{0, -1}},
		{DirDown, Cell{0, 1}},
		{DirLeft, Cell{-1, 0}},
		{DirRight, Cell{1, 0}},
	}

	for _, tc := range tests {
		t.Run(tc.dir.String(), func(t *testing.T) {
			if got := tc.dir.Delta(); got != tc.expected {
				t.Errorf("Delta() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestDirectionOpposite(t *testing.T) {
	pairs := map[Direction]Direction{
		DirUp:    DirDown,
		DirDown:  DirUp,
		DirLeft:  DirRight,
		DirRight: DirLeft,
	}

	for d, want := range pairs {
		if got := d.Opposite(); got != want {
			t.Errorf("%v.Opposite() = %v, expected %v", d, got, want)
		}
		// Opposite must be an involution
		if got := d.Opposite().Opposite(); got != d {
			t.Errorf("%v.Opposite().Opposite() = %v, expected %v", d, got, d)
		}
	}
}

func TestGridInBounds(t *testing.T) {
	g := Grid{W: 32, H: 24}

	tests := []struct {
		name     string
		cell     Cell
		expected bool
	}{
		{"origin", Cell{0, 0}, true},
		{"center", Cell{16, 12}, true},
		{"last cell", Cell{31, 23}, true},
		{"past right edge", Cell{32, 0}, false},
		{"past bottom edge", Cell{0, 24}, false},
		{"negative x", Cell{-1, 5}, false},
		{"negative y", Cell{5, -1}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := g.InBounds(tc.cell); got != tc.expected {
				t.Errorf("InBounds(%v) = %v, expected %v", tc.cell, got, tc.expected)
			}
		})
	}
}

func TestGridWrap(t *testing.T) {
	g := Grid{W: 32, H: 24}

	tests := []struct {
		name     string
		cell     Cell
		expected Cell
	}{
		{"inside unchanged", Cell{5, 5}, Cell{5, 5}},
		{"right edge wraps to zero", Cell{32, 7}, Cell{0, 7}},
		{"bottom edge wraps to zero", Cell{7, 24}, Cell{7, 0}},
		{"negative x wraps to far edge", Cell{-1, 7}, Cell{31, 7}},
		{"negative y wraps to far edge", Cell{7, -1}, Cell{7, 23}},
		{"multiple widths", Cell{65, 49}, Cell{1, 1}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := g.Wrap(tc.cell)
			if got != tc.expected {
				t.Errorf("Wrap(%v) = %v, expected %v", tc.cell, got, tc.expected)
			}
			if !g.InBounds(got) {
				t.Errorf("Wrap(%v) = %v is out of bounds", tc.cell, got)
			}
		})
	}
}

func TestGridCells(t *testing.T) {
	g := Grid{W: 4, H: 3}
	cells := g.Cells()

	if len(cells) != 12 {
		t.Fatalf("Cells() returned %d cells, expected 12", len(cells))
	}
	if cells[0] != (Cell{0, 0}) {
		t.Errorf("first cell = %v, expected (0,0)", cells[0])
	}
	if cells[len(cells)-1] != (Cell{3, 2}) {
		t.Errorf("last cell = %v, expected (3,2)", cells[len(cells)-1])
	}
}

func TestEventDirection(t *testing.T) {
	tests := []struct {
		ev  Event
		dir Direction
		ok  bool
	}{
		{EventUp, DirUp, true},
		{EventDown, DirDown, true},
		{EventLeft, DirLeft, true},
		{EventRight, DirRight, true},
		{EventPause, DirUp, false},
		{EventConfirm, DirUp, false},
	}

	for _, tc := range tests {
		dir, ok := tc.ev.Direction()
		if ok != tc.ok {
			t.Errorf("%v.Direction() ok = %v, expected %v", tc.ev, ok, tc.ok)
		}
		if ok && dir != tc.dir {
			t.Errorf("%v.Direction() = %v, expected %v", tc.ev, dir, tc.dir)
		}
		if tc.ev.IsDirection() != tc.ok {
			t.Errorf("%v.IsDirection() = %v, expected %v", tc.ev, tc.ev.IsDirection(), tc.ok)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		if got := ClampF(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

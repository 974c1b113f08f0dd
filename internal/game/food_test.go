package game

import (
	"math/rand"
	"testing"

	"github.com/Pablify/Snake/internal/core"
)

func TestSpawnPicksFreeCell(t *testing.T) {
	s := NewSpawner(rand.New(rand.NewSource(1)), 0, 7)
	free := []core.Cell{{X: 1, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 3}}

	for i := 0; i < 50; i++ {
		f, ok := s.Spawn(free, true, false, 0)
		if !ok {
			t.Fatal("Spawn should succeed with free cells available")
		}
		found := false
		for _, c := range free {
			if f.Pos == c {
				found = true
			}
		}
		if !found {
			t.Errorf("Food spawned outside the free set: %v", f.Pos)
		}
	}
}

func TestSpawnFullBoard(t *testing.T) {
	s := NewSpawner(rand.New(rand.NewSource(1)), 0.5, 7)

	if _, ok := s.Spawn(nil, false, false, 0); ok {
		t.Error("Spawn should fail with no free cells")
	}
}

func TestSpawnForceNormal(t *testing.T) {
	// Gold chance 1 would always roll gold; forceNormal must override it.
	s := NewSpawner(rand.New(rand.NewSource(2)), 1, 7)
	free := []core.Cell{{X: 0, Y: 0}}

	for i := 0; i < 20; i++ {
		f, ok := s.Spawn(free, true, false, 0)
		if !ok {
			t.Fatal("Spawn should succeed")
		}
		if f.Kind != KindNormal {
			t.Fatal("forceNormal spawn produced gold")
		}
	}
}

func TestSpawnSuppressesConcurrentGold(t *testing.T) {
	s := NewSpawner(rand.New(rand.NewSource(3)), 1, 7)
	free := []core.Cell{{X: 0, Y: 0}}

	f, ok := s.Spawn(free, false, true, 5)
	if !ok {
		t.Fatal("Spawn should succeed")
	}
	if f.Kind != KindNormal {
		t.Error("Spawn with a gold item active must produce normal food")
	}
}

func TestSpawnGoldStampsTime(t *testing.T) {
	s := NewSpawner(rand.New(rand.NewSource(4)), 1, 7)
	free := []core.Cell{{X: 0, Y: 0}}

	f, ok := s.Spawn(free, false, false, 12.5)
	if !ok || f.Kind != KindGold {
		t.Fatalf("Expected gold spawn, got %v ok=%v", f.Kind, ok)
	}
	if f.SpawnedAt != 12.5 {
		t.Errorf("Gold should record spawn time 12.5, got %v", f.SpawnedAt)
	}
}

func TestExpiry(t *testing.T) {
	s := NewSpawner(rand.New(rand.NewSource(5)), 1, 7)

	gold := Food{Pos: core.Cell{X: 1, Y: 1}, Kind: KindGold, SpawnedAt: 10}
	normal := Food{Pos: core.Cell{X: 2, Y: 2}, Kind: KindNormal}

	tests := []struct {
		name string
		food Food
		now  float64
		want bool
	}{
		{"gold fresh", gold, 10.5, false},
		{"gold at limit", gold, 17, false},
		{"gold past limit", gold, 17.01, true},
		{"normal never expires", normal, 1000, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.Expired(tt.food, tt.now); got != tt.want {
				t.Errorf("Expired(%s, %v) = %v, want %v", tt.food.Kind, tt.now, got, tt.want)
			}
		})
	}
}

func TestRemaining(t *testing.T) {
	s := NewSpawner(rand.New(rand.NewSource(6)), 1, 7)
	gold := Food{Kind: KindGold, SpawnedAt: 0}

	tests := []struct {
		now  float64
		want float64
	}{
		{0, 1},
		{3.5, 0.5},
		{7, 0},
		{100, 0},
	}
	for _, tt := range tests {
		if got := s.Remaining(gold, tt.now); got != tt.want {
			t.Errorf("Remaining at %v = %v, want %v", tt.now, got, tt.want)
		}
	}

	if got := s.Remaining(Food{Kind: KindNormal}, 100); got != 1 {
		t.Errorf("Normal food should always report 1, got %v", got)
	}
}

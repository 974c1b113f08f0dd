package game

import (
	"github.com/Pablify/Snake/internal/config"
	"github.com/Pablify/Snake/internal/core"
)

// FoodView is the render-facing view of the active food item. Remaining is
// the fraction of lifetime left for gold food, 1 for normal food.
type FoodView struct {
	Pos       core.Cell
	Kind      Kind
	Remaining float64
}

// MenuItem is one menu row with its current value, already formatted.
type MenuItem struct {
	Label string
	Value string
}

// MenuView is the menu state for rendering.
type MenuView struct {
	Items []MenuItem
	Index int
}

// Snapshot is an immutable view of the whole session for rendering. It copies
// everything the frontend needs so the renderer never touches live state.
type Snapshot struct {
	State State
	Mode  config.Mode
	Wrap  bool
	Muted bool

	GridW int
	GridH int

	Snake    []core.Cell
	Food     *FoodView
	Score    int
	Best     int
	TickRate float64

	GameOverReason CollisionKind
	Menu           MenuView
}

// Snapshot captures the current session state for one frame.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		State: s.state,
		Mode:  s.mode,
		Wrap:  s.wrap,
		Muted: !s.sfx.Enabled(),
		GridW: s.cfg.Grid.Width,
		GridH: s.cfg.Grid.Height,
		Menu:  s.menuView(),
	}

	if s.engine != nil {
		snap.Snake = s.engine.body.Cells()
		snap.Score = s.engine.Score()
		snap.Best = s.engine.Best()
		snap.TickRate = s.engine.CurrentTickRate()
		snap.GameOverReason = s.reason
		if f := s.engine.food; f != nil {
			snap.Food = &FoodView{
				Pos:       f.Pos,
				Kind:      f.Kind,
				Remaining: s.engine.spawner.Remaining(*f, s.engine.elapsed),
			}
		}
	}
	if s.state == StateMenu {
		// The menu shows the best for the currently selected settings, which
		// may differ from the last run's key.
		snap.Best = s.records[RecordKey{Mode: s.mode, Wrap: s.wrap}]
	}

	return snap
}

func (s *Session) menuView() MenuView {
	return MenuView{
		Items: []MenuItem{
			{Label: "Start"},
			{Label: "Mode", Value: string(s.mode)},
			{Label: "Wrap", Value: onOff(s.wrap)},
			{Label: "Sound", Value: onOff(s.sfx.Enabled())},
			{Label: "Quit"},
		},
		Index: s.menuIndex,
	}
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

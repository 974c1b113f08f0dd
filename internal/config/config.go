// Package config provides YAML-based configuration loading and difficulty
// modes for the snake simulation.
package config

import "fmt"

// Mode is a named difficulty preset. It selects the base and ceiling tick
// rates of a run.
type Mode string

const (
	ModeEasy   Mode = "easy"
	ModeNormal Mode = "normal"
	ModeHard   Mode = "hard"
)

// Modes lists the selectable difficulty modes in menu order.
func Modes() []Mode {
	return []Mode{ModeEasy, ModeNormal, ModeHard}
}

// ParseMode validates a mode name from CLI input.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeEasy, ModeNormal, ModeHard:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("config: unknown mode %q (want easy, normal or hard)", s)
	}
}

// Config contains all tunable parameters of the simulation.
type Config struct {
	Grid    GridConfig    `yaml:"grid"`
	Snake   SnakeConfig   `yaml:"snake"`
	Food    FoodConfig    `yaml:"food"`
	Scoring ScoringConfig `yaml:"scoring"`
	Speed   SpeedConfig   `yaml:"speed"`
}

// GridConfig defines the playing field size in cells.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SnakeConfig defines the initial snake.
type SnakeConfig struct {
	InitialLength int `yaml:"initial_length"`
}

// FoodConfig defines the food lifecycle parameters.
type FoodConfig struct {
	GoldChance   float64 `yaml:"gold_chance"`   // probability of a gold roll succeeding
	GoldLifetime float64 `yaml:"gold_lifetime"` // seconds before uneaten gold reverts to normal
}

// ScoringConfig defines the score awarded per food kind.
type ScoringConfig struct {
	Normal int `yaml:"normal"`
	Gold   int `yaml:"gold"`
}

// SpeedConfig defines the score-driven tick rate progression.
type SpeedConfig struct {
	StepEveryScore int                `yaml:"step_every_score"` // score points per speed step
	Increment      float64            `yaml:"increment"`        // ticks/sec added per step
	Modes          map[Mode]ModeSpeed `yaml:"modes"`
}

// ModeSpeed defines the tick rate window of one difficulty mode.
type ModeSpeed struct {
	Base float64 `yaml:"base"` // starting ticks/sec
	Max  float64 `yaml:"max"`  // ceiling ticks/sec
}

// ForMode returns the speed window of the given mode, falling back to the
// normal mode window for unknown modes.
func (s SpeedConfig) ForMode(m Mode) ModeSpeed {
	if ms, ok := s.Modes[m]; ok {
		return ms
	}
	return s.Modes[ModeNormal]
}

// Validate checks the configuration for values the simulation cannot run on.
func (c Config) Validate() error {
	if c.Grid.Width < 4 || c.Grid.Height < 4 {
		return fmt.Errorf("config: grid %dx%d too small", c.Grid.Width, c.Grid.Height)
	}
	if c.Snake.InitialLength < 3 {
		return fmt.Errorf("config: initial snake length %d below minimum 3", c.Snake.InitialLength)
	}
	if c.Snake.InitialLength > c.Grid.Width/2 {
		return fmt.Errorf("config: initial snake length %d does not fit grid width %d", c.Snake.InitialLength, c.Grid.Width)
	}
	if c.Food.GoldChance < 0 || c.Food.GoldChance > 1 {
		return fmt.Errorf("config: gold chance %v outside [0, 1]", c.Food.GoldChance)
	}
	if c.Food.GoldLifetime <= 0 {
		return fmt.Errorf("config: gold lifetime %v must be positive", c.Food.GoldLifetime)
	}
	if c.Speed.StepEveryScore <= 0 {
		return fmt.Errorf("config: step_every_score %d must be positive", c.Speed.StepEveryScore)
	}
	for _, m := range Modes() {
		ms, ok := c.Speed.Modes[m]
		if !ok {
			return fmt.Errorf("config: missing speed window for mode %q", m)
		}
		if ms.Base <= 0 || ms.Max < ms.Base {
			return fmt.Errorf("config: invalid speed window for mode %q: base %v max %v", m, ms.Base, ms.Max)
		}
	}
	return nil
}

package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// Default returns the built-in configuration: a 32x24 grid, gold food with a
// 1/12 chance and a 7 second lifetime, and the easy/normal/hard speed windows.
func Default() Config {
	return Config{
		Grid: GridConfig{
			Width:  32,
			Height: 24,
		},
		Snake: SnakeConfig{
			InitialLength: 3,
		},
		Food: FoodConfig{
			GoldChance:   1.0 / 12.0,
			GoldLifetime: 7.0,
		},
		Scoring: ScoringConfig{
			Normal: 10,
			Gold:   30,
		},
		Speed: SpeedConfig{
			StepEveryScore: 5,
			Increment:      0.5,
			Modes: map[Mode]ModeSpeed{
				ModeEasy:   {Base: 8.0, Max: 20.0},
				ModeNormal: {Base: 10.0, Max: 24.0},
				ModeHard:   {Base: 12.0, Max: 28.0},
			},
		},
	}
}

package config

import (
	_ "embed"
)

//go:embed defaults/sokoban.yaml
var defaultSokobanYAML []byte

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSokobanConfig returns the default box-pusher configuration.
func DefaultSokobanConfig() SokobanConfig {
	return SokobanConfig{
		Levels: SokobanLevels{
			File:           "levels",
			AdvanceDelayMS: 800,
			StartLevel:     0,
		},
	}
}

// DefaultSnakeConfig returns the default snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: SnakeBoard{
			Width:  20,
			Height: 20,
		},
		Snake: SnakeBody{
			StartLength:    3,
			MovesPerSecond: 10,
		},
	}
}

// Package config provides YAML-based game configuration loading,
// speed presets and environment overrides for the arcade platform.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// SokobanConfig contains all configuration for the box-pusher.
type SokobanConfig struct {
	Levels SokobanLevels `yaml:"levels"`
}

// SokobanLevels defines where levels come from and how they advance.
type SokobanLevels struct {
	File           string `yaml:"file"`             // Level list file, one row per line
	AdvanceDelayMS int    `yaml:"advance_delay_ms"` // Pause between a solved level and the next
	StartLevel     int    `yaml:"start_level"`      // 1-based; 0 starts at the first level
}

// Validate checks the sokoban configuration.
func (c SokobanConfig) Validate() error {
	if c.Levels.File == "" {
		return fmt.Errorf("%w: levels.file must be set", ErrInvalid)
	}
	if c.Levels.AdvanceDelayMS < 0 {
		return fmt.Errorf("%w: levels.advance_delay_ms must not be negative", ErrInvalid)
	}
	if c.Levels.StartLevel < 0 {
		return fmt.Errorf("%w: levels.start_level must not be negative", ErrInvalid)
	}
	return nil
}

// SnakeConfig contains all configuration for the snake game.
type SnakeConfig struct {
	Board SnakeBoard `yaml:"board"`
	Snake SnakeBody  `yaml:"snake"`
}

// SnakeBoard defines the toroidal board dimensions.
type SnakeBoard struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SnakeBody defines the snake's start length and pace.
type SnakeBody struct {
	StartLength    int `yaml:"start_length"`
	MovesPerSecond int `yaml:"moves_per_second"` // Board updates per second, independent of the tick rate
}

// Validate checks the snake configuration.
func (c SnakeConfig) Validate() error {
	if c.Board.Width < 4 || c.Board.Height < 4 {
		return fmt.Errorf("%w: board must be at least 4x4, got %dx%d", ErrInvalid, c.Board.Width, c.Board.Height)
	}
	if c.Snake.StartLength < 3 || c.Snake.StartLength > c.Board.Width {
		return fmt.Errorf("%w: snake.start_length must be in [3, board.width], got %d", ErrInvalid, c.Snake.StartLength)
	}
	if c.Snake.MovesPerSecond < 1 {
		return fmt.Errorf("%w: snake.moves_per_second must be positive", ErrInvalid)
	}
	return nil
}

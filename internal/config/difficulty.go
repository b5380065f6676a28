package config

import "fmt"

// DifficultyPreset represents a named snake speed.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the accepted preset names in increasing speed.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}
}

// ParsePreset validates a preset name. The empty string means "keep config".
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("%w: unknown difficulty %q (want easy, normal or hard)", ErrInvalid, name)
	}
}

// MovesPerSecondForPreset returns the snake speed of a preset.
// Normal is ten moves per second.
func MovesPerSecondForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 6
	case DifficultyHard:
		return 15
	default:
		return 10
	}
}

// TicksPerMove converts a speed into platform ticks between moves.
func TicksPerMove(movesPerSecond, tickRate int) int {
	if tickRate <= 0 {
		tickRate = 60
	}
	return max(1, tickRate/max(1, movesPerSecond))
}

// MoveEveryTicksForPreset returns the move interval for a preset at the
// given platform tick rate.
func MoveEveryTicksForPreset(preset DifficultyPreset, tickRate int) int {
	return TicksPerMove(MovesPerSecondForPreset(preset), tickRate)
}

// ApplySnakePreset modifies the config based on a difficulty preset.
// An empty preset leaves the configured pace untouched.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	cfg.Snake.MovesPerSecond = MovesPerSecondForPreset(preset)
}

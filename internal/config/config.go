// Package config provides YAML-based game configuration loading and
// difficulty presets for the blocks game.
package config

import (
	"fmt"
	"time"
)

// TetrisConfig contains all configuration for the falling-block game.
type TetrisConfig struct {
	Board   TetrisBoard   `yaml:"board"`
	Scoring TetrisScoring `yaml:"scoring"`
	Speed   TetrisSpeed   `yaml:"speed"`
	Input   TetrisInput   `yaml:"input"`
}

// TetrisBoard defines the playfield dimensions in cells.
type TetrisBoard struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TetrisScoring defines how cleared rows turn into points and levels.
type TetrisScoring struct {
	PointsPerLine int `yaml:"points_per_line"` // Multiplied by rows and level
	LinesPerLevel int `yaml:"lines_per_level"`
}

// TetrisSpeed defines the automatic fall interval and how it shrinks.
type TetrisSpeed struct {
	BaseIntervalMs int `yaml:"base_interval_ms"` // Interval at level 1
	IntervalStepMs int `yaml:"interval_step_ms"` // Reduction per level
	MinIntervalMs  int `yaml:"min_interval_ms"`  // Floor
}

// TetrisInput defines presentation-layer input throttling.
type TetrisInput struct {
	RepeatDelayMs int `yaml:"repeat_delay_ms"` // Minimum time between accepted intents
}

// Minimum playable board. The I piece spawns left of center and needs four
// free columns to its right, and four rows to rotate upright.
const (
	MinBoardWidth  = 6
	MinBoardHeight = 4
)

// Validate checks the config for values the game cannot run with.
func (c TetrisConfig) Validate() error {
	if c.Board.Width < MinBoardWidth || c.Board.Height < MinBoardHeight {
		return fmt.Errorf("config: board %dx%d is smaller than %dx%d",
			c.Board.Width, c.Board.Height, MinBoardWidth, MinBoardHeight)
	}
	if c.Scoring.PointsPerLine < 0 {
		return fmt.Errorf("config: points_per_line must not be negative, got %d", c.Scoring.PointsPerLine)
	}
	if c.Scoring.LinesPerLevel <= 0 {
		return fmt.Errorf("config: lines_per_level must be positive, got %d", c.Scoring.LinesPerLevel)
	}
	if c.Speed.BaseIntervalMs <= 0 || c.Speed.MinIntervalMs <= 0 {
		return fmt.Errorf("config: fall intervals must be positive (base %dms, min %dms)",
			c.Speed.BaseIntervalMs, c.Speed.MinIntervalMs)
	}
	if c.Speed.IntervalStepMs < 0 {
		return fmt.Errorf("config: interval_step_ms must not be negative, got %d", c.Speed.IntervalStepMs)
	}
	if c.Input.RepeatDelayMs < 0 {
		return fmt.Errorf("config: repeat_delay_ms must not be negative, got %d", c.Input.RepeatDelayMs)
	}
	return nil
}

// BaseInterval returns the level 1 fall interval.
func (s TetrisSpeed) BaseInterval() time.Duration {
	return time.Duration(s.BaseIntervalMs) * time.Millisecond
}

// IntervalStep returns the per-level interval reduction.
func (s TetrisSpeed) IntervalStep() time.Duration {
	return time.Duration(s.IntervalStepMs) * time.Millisecond
}

// MinInterval returns the fall interval floor.
func (s TetrisSpeed) MinInterval() time.Duration {
	return time.Duration(s.MinIntervalMs) * time.Millisecond
}

// RepeatDelay returns the minimum time between accepted intents.
func (i TetrisInput) RepeatDelay() time.Duration {
	return time.Duration(i.RepeatDelayMs) * time.Millisecond
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value to a preset. Empty input means no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "":
		return "", nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

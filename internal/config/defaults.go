package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the default configuration: a 10x20 board,
// 100 points per row times level, a level every 10 rows, 1s falls shrinking
// by 100ms per level down to 100ms, and 100ms between accepted key intents.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Board: TetrisBoard{
			Width:  10,
			Height: 20,
		},
		Scoring: TetrisScoring{
			PointsPerLine: 100,
			LinesPerLevel: 10,
		},
		Speed: TetrisSpeed{
			BaseIntervalMs: 1000,
			IntervalStepMs: 100,
			MinIntervalMs:  100,
		},
		Input: TetrisInput{
			RepeatDelayMs: 100,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "tetris":
		return defaultTetrisYAML
	default:
		return nil
	}
}

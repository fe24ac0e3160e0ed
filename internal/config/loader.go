package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadTetris loads the game configuration.
// Search order: customPath -> ~/.blocks/configs/tetris.yaml -> ./configs/tetris.yaml -> embedded default
//
// An explicit customPath that cannot be read, parsed or validated is an
// error. Files found on the search path are skipped when unusable.
func LoadTetris(customPath string) (TetrisConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := readTetris(customPath)
		if err != nil {
			return cfg, err
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{userConfigPath("tetris.yaml"), filepath.Join("configs", "tetris.yaml")}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if cfg, err := readTetris(path); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	var cfg TetrisConfig
	if err := yaml.Unmarshal(defaultTetrisYAML, &cfg); err != nil || cfg.Validate() != nil {
		return DefaultTetrisConfig(), nil // Fallback to hardcoded if embed is broken
	}
	return cfg, nil
}

// readTetris decodes a YAML file on top of the defaults, so a partial file
// only overrides the keys it sets.
func readTetris(path string) (TetrisConfig, error) {
	cfg := DefaultTetrisConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Marshal renders the config as YAML.
func Marshal(cfg TetrisConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".blocks", "configs", filename)
}

// ApplyTetrisPreset modifies the config based on a difficulty preset.
// Presets only change speed; scoring and board stay as configured.
func ApplyTetrisPreset(cfg *TetrisConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Speed.BaseIntervalMs = cfg.Speed.BaseIntervalMs * 3 / 2
		cfg.Speed.IntervalStepMs = cfg.Speed.IntervalStepMs / 2
		cfg.Speed.MinIntervalMs = max(cfg.Speed.MinIntervalMs, 200)
	case DifficultyHard:
		cfg.Speed.BaseIntervalMs = max(cfg.Speed.BaseIntervalMs*3/5, cfg.Speed.MinIntervalMs)
	case DifficultyFixed:
		cfg.Speed.IntervalStepMs = 0
	}
}

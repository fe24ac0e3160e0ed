package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-blocks/internal/config"
	"github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/games/tetris"
	"github.com/vovakirdan/tui-blocks/internal/platform/tui"
	"github.com/vovakirdan/tui-blocks/internal/registry"
)

const defaultGame = "tetris"

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play the game",
	Long: `Start playing. The game ID defaults to "tetris".

Controls:
  Left/H, Right/L  - Move
  Up/K/X           - Rotate
  Down/J           - Soft drop
  Space            - Hard drop
  P/Esc            - Pause
  R                - Restart (after game over)
  ?                - Show all keys
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Slower start, gentler speed-up
  normal - Speed from config
  hard   - Faster start
  fixed  - No speed-up between levels

Examples:
  blocks play
  blocks play --difficulty easy
  blocks play --seed 7 --fps 30
  blocks play --config ./my-tetris.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := defaultGame
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'blocks list' to see available games)", gameID)
	}

	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		stderrLog.Warn("using default config", "error", err)
		cfg = config.DefaultTetrisConfig()
		preset, _ := config.ParsePreset(flagDifficulty)
		config.ApplyTetrisPreset(&cfg, preset)
	}
	tetris.SetConfig(cfg)

	logger, closeLog, err := openGameLog()
	if err != nil {
		stderrLog.Warn("game log disabled", "error", err)
	}
	defer closeLog()

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runCfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	return tui.Run(game, runCfg, tui.Options{
		Logger:      logger,
		RepeatDelay: cfg.Input.RepeatDelay(),
	})
}

// openGameLog opens the --log-file destination. Without a file the game
// logger is nil and the TUI discards events, since the alternate screen
// owns the terminal.
func openGameLog() (*log.Logger, func(), error) {
	noop := func() {}
	if flagLogFile == "" {
		return nil, noop, nil
	}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, noop, fmt.Errorf("bad --log-level: %w", err)
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, noop, fmt.Errorf("failed to open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "blocks",
		Level:           level,
	})
	return logger, func() { _ = f.Close() }, nil
}

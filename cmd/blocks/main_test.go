package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-blocks/internal/config"
)

// execute runs the root command with args and returns its stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() {
		flagConfig = ""
		flagDifficulty = ""
		flagDefaults = false
	})

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestListCommand(t *testing.T) {
	out, err := execute(t, "list")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !strings.Contains(out, "tetris") || !strings.Contains(out, "Tetris") {
		t.Errorf("list output should mention tetris, got:\n%s", out)
	}
}

func TestConfigDefaults(t *testing.T) {
	out, err := execute(t, "config", "--defaults")
	if err != nil {
		t.Fatalf("config --defaults failed: %v", err)
	}
	if out != string(config.GetDefaultYAML("tetris")) {
		t.Error("config --defaults should print the embedded file verbatim")
	}
}

func TestConfigAppliesPreset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tetris.yaml")
	if err := os.WriteFile(path, []byte("speed:\n  interval_step_ms: 80\n"), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	out, err := execute(t, "config", "--config", path, "--difficulty", "fixed")
	if err != nil {
		t.Fatalf("config failed: %v", err)
	}

	var cfg config.TetrisConfig
	if err := yaml.Unmarshal([]byte(out), &cfg); err != nil {
		t.Fatalf("config output is not YAML: %v", err)
	}
	if cfg.Speed.IntervalStepMs != 0 {
		t.Errorf("fixed preset should zero the step, got %d", cfg.Speed.IntervalStepMs)
	}
	if cfg.Board.Width != 10 {
		t.Errorf("Board.Width = %d, expected default 10", cfg.Board.Width)
	}
}

func TestConfigRejectsBadDifficulty(t *testing.T) {
	if _, err := execute(t, "config", "--difficulty", "brutal"); err == nil {
		t.Error("unknown difficulty should fail")
	}
}

func TestPlayUnknownGame(t *testing.T) {
	_, err := execute(t, "play", "pong")
	if err == nil || !strings.Contains(err.Error(), "unknown game") {
		t.Errorf("expected unknown game error, got %v", err)
	}
}

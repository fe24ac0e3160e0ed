package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-blocks/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Long: `Print the configuration the game would run with, after the config
search path and the --difficulty preset are applied.

With --defaults the embedded default file is printed instead, comments
included, which makes a good starting point for a custom config.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the embedded default config")
}

func runConfig(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if flagDefaults {
		_, err := out.Write(config.GetDefaultYAML("tetris"))
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(out, string(data))
	return err
}

// loadConfig loads the YAML config and applies the difficulty preset.
func loadConfig() (config.TetrisConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.TetrisConfig{}, err
	}

	cfg, err := config.LoadTetris(flagConfig)
	if err != nil {
		return cfg, err
	}

	config.ApplyTetrisPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

package main

import (
	"github.com/spf13/cobra"

	"github.com/jeanpiere159/Game-Flappy-Bird/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Space/Up/W/Enter  - Start, flap, or return to the menu after a crash
  Q/Esc/Ctrl+C      - Quit

Difficulty options:
  easy   - Slower obstacles, gentle speed-up
  normal - Standard speed and speed-up
  hard   - Faster obstacles, steeper speed-up
  fixed  - Standard speed that never increases

Examples:
  flappy play
  flappy play --difficulty easy
  flappy play --seed 42
  flappy play --config ./my-flappy.yaml --log-file flappy.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	rt, err := runtimeConfig()
	if err != nil {
		return err
	}
	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	return tui.Run(cfg, rt, logger)
}

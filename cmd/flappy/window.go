package main

import (
	"github.com/spf13/cobra"

	"github.com/jeanpiere159/Game-Flappy-Bird/internal/platform/gui"
)

var (
	flagAssets string
	flagScale  float64
	flagDebug  bool
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a 500x640 game window.

Images are read from --assets, named after what they show:
  background, player, obstacle-top, obstacle-bottom,
  play-button, game-over, logo
with a .png, .webp or .bmp extension. The file names of the classic
Flappy Bird asset pack (flappybird.png, toppipe.png, ...) work too.
Missing images are simply not drawn. Without --assets, simple
placeholder art is used.

Controls:
  Space/Up/Enter, left click, tap, gamepad A  - Start, flap, or return to menu
  Esc                                         - Quit

Examples:
  flappy window
  flappy window --assets ./images
  flappy window --scale 1.5 --debug`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().StringVar(&flagAssets, "assets", "", "Directory containing the image files")
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window scale factor")
	windowCmd.Flags().BoolVar(&flagDebug, "debug", false, "Show FPS/TPS overlay")
}

func runWindow(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	rt, err := runtimeConfig()
	if err != nil {
		return err
	}
	logger, closeLog, err := newLogger(false)
	if err != nil {
		return err
	}
	defer closeLog()

	return gui.Run(cfg, rt, gui.Options{
		AssetDir: flagAssets,
		Scale:    flagScale,
		Debug:    flagDebug,
		Logger:   logger,
	})
}

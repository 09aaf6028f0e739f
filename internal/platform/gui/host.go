// Package gui runs the game in a desktop window with ebiten.
package gui

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/jeanpiere159/Game-Flappy-Bird/internal/config"
	"github.com/jeanpiere159/Game-Flappy-Bird/internal/core"
	"github.com/jeanpiere159/Game-Flappy-Bird/internal/games/flappy"
)

// Options configures the window host.
type Options struct {
	// AssetDir holds the image files. Empty means generated placeholder art.
	AssetDir string

	// Scale multiplies the window size relative to the board.
	Scale float64

	// Debug draws an FPS/TPS overlay.
	Debug bool

	Logger *log.Logger
}

// Host implements ebiten.Game around one game session.
type Host struct {
	game     *flappy.Game
	sched    *core.Scheduler
	surface  *ImageSurface
	assets   <-chan Decoded
	cancel   context.CancelFunc
	tickRate int
	width    int
	height   int
	debug    bool
	logger   *log.Logger
}

// NewHost creates the host and starts loading assets in the background.
// The configuration must already be validated.
func NewHost(cfg config.FlappyConfig, rt core.RuntimeConfig, opts Options) (*Host, error) {
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	if rt.TickRate <= 0 {
		rt.TickRate = core.DefaultConfig().TickRate
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	fonts, err := NewFontCache()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	var assets <-chan Decoded
	if opts.AssetDir != "" {
		info, err := os.Stat(opts.AssetDir)
		if err != nil || !info.IsDir() {
			cancel()
			return nil, fmt.Errorf("asset directory %s: not a readable directory", opts.AssetDir)
		}
		assets = LoadAssets(ctx, os.DirFS(opts.AssetDir), logger)
	} else {
		logger.Debug("no asset directory, using placeholder art")
		assets = Placeholders()
	}

	sched := core.NewScheduler()
	return &Host{
		game:     flappy.New(cfg, rt, sched, flappy.WithLogger(logger)),
		sched:    sched,
		surface:  NewImageSurface(fonts),
		assets:   assets,
		cancel:   cancel,
		tickRate: rt.TickRate,
		width:    int(cfg.Board.Width),
		height:   int(cfg.Board.Height),
		debug:    opts.Debug,
		logger:   logger,
	}, nil
}

// receiveAssets installs every image that finished decoding since the last
// frame. ebiten images are only created on the game loop goroutine.
func (h *Host) receiveAssets() {
	for h.assets != nil {
		select {
		case d, ok := <-h.assets:
			if !ok {
				h.assets = nil
				h.logger.Debug("asset loading finished", "loaded", h.surface.Loaded())
				return
			}
			if d.Image != nil {
				h.surface.SetImage(d.ID, ebiten.NewImageFromImage(d.Image))
			}
		default:
			return
		}
	}
}

// triggerPressed reports the trigger from keyboard, mouse, touch or gamepad.
func triggerPressed() int {
	n := 0
	for _, k := range []ebiten.Key{ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyEnter} {
		if inpututil.IsKeyJustPressed(k) {
			n++
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		n++
	}
	n += len(inpututil.AppendJustPressedTouchIDs(nil))
	for _, g := range ebiten.AppendGamepadIDs(nil) {
		if ebiten.IsStandardGamepadLayoutAvailable(g) {
			if inpututil.IsStandardGamepadButtonJustPressed(g, ebiten.StandardGamepadButtonRightBottom) {
				n++
			}
		} else if inpututil.IsGamepadButtonJustPressed(g, ebiten.GamepadButton0) {
			n++
		}
	}
	return n
}

// Update reads input, fires due timers and advances one frame.
func (h *Host) Update() error {
	h.receiveAssets()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		h.logger.Debug("quit requested", "phase", h.game.Phase())
		return ebiten.Termination
	}

	in := core.NewInputFrame()
	for i, n := 0, triggerPressed(); i < n; i++ {
		in.Set(core.ActionTrigger)
	}
	h.game.HandleInput(in)

	h.sched.Advance(time.Second / time.Duration(h.tickRate))
	h.game.Update()
	return nil
}

// Draw renders the current state.
func (h *Host) Draw(screen *ebiten.Image) {
	h.surface.SetTarget(screen)
	h.game.Draw(h.surface)

	if h.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %0.1f  TPS: %0.1f  phase: %s",
			ebiten.ActualFPS(), ebiten.ActualTPS(), h.game.Phase()))
	}
}

// Layout keeps the logical board size regardless of the window size.
func (h *Host) Layout(_, _ int) (int, int) {
	return h.width, h.height
}

// Close stops any asset loading still in flight.
func (h *Host) Close() {
	h.cancel()
}

// Run opens a window and blocks until it is closed.
func Run(cfg config.FlappyConfig, rt core.RuntimeConfig, opts Options) error {
	host, err := NewHost(cfg, rt, opts)
	if err != nil {
		return err
	}
	defer host.Close()

	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	ebiten.SetWindowSize(int(cfg.Board.Width*scale), int(cfg.Board.Height*scale))
	ebiten.SetWindowTitle("Flappy Bird")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(host.tickRate)

	host.logger.Info("opening window", "tps", host.tickRate, "assets", opts.AssetDir)
	if err := ebiten.RunGame(host); err != nil {
		return fmt.Errorf("gui: %w", err)
	}
	return nil
}

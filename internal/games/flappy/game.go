// Package flappy implements a Flappy Bird-style game.
// The player falls under gravity and must pass through the gaps of
// obstacle pairs that scroll in from the right, ever faster.
package flappy

import (
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/jeanpiere159/Game-Flappy-Bird/internal/config"
	"github.com/jeanpiere159/Game-Flappy-Bird/internal/core"
)

// Phase is the lifecycle state of a game session.
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "Menu"
	case PhasePlaying:
		return "Playing"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// ScorePerPiece is credited for each obstacle piece the player passes.
// Top and bottom pieces are credited independently, so a pair is worth one point.
const ScorePerPiece = 0.5

// Player is the falling, flapping object the user controls.
type Player struct {
	X, Y     float64 // Top-left corner; X never changes
	W, H     float64
	Velocity float64 // Vertical velocity, positive is down
}

// Rect returns the player's collision rectangle.
func (p Player) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}

// Timers arms the periodic obstacle spawn. *core.Scheduler implements it.
type Timers interface {
	Every(period time.Duration, fn func()) *core.Task
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger used for lifecycle events.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// Game is one session: the player, the obstacles, the score and the
// phase that decides how triggers and frames are handled.
type Game struct {
	cfg    config.FlappyConfig
	timers Timers
	logger *log.Logger

	phase       Phase
	player      Player
	course      *Course
	generator   *Generator
	score       float64
	scrollSpeed float64
	frames      int        // Playing frames since the round started
	spawnTask   *core.Task // Non-nil only while Playing
}

// New creates a game in the Menu phase.
// The configuration must already be validated.
func New(cfg config.FlappyConfig, rt core.RuntimeConfig, timers Timers, opts ...Option) *Game {
	g := &Game{
		cfg:       cfg,
		timers:    timers,
		logger:    log.New(io.Discard),
		course:    NewCourse(),
		generator: NewGenerator(rt.Seed, cfg),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.Reset()
	return g
}

// Reset rebuilds the session and returns to the Menu phase.
// Any armed spawn timer is cancelled.
func (g *Game) Reset() {
	g.disarmSpawn()

	g.phase = PhaseMenu
	g.player = Player{
		X: g.cfg.Player.X,
		Y: g.cfg.StartY(),
		W: g.cfg.Player.Width,
		H: g.cfg.Player.Height,
	}
	g.course.Reset()
	g.score = 0
	g.scrollSpeed = g.cfg.Difficulty.ScrollSpeed
	g.frames = 0
}

// Trigger handles the single input action.
// Menu starts a round, Playing flaps, GameOver returns to the menu.
func (g *Game) Trigger() {
	switch g.phase {
	case PhaseMenu:
		g.start()
	case PhasePlaying:
		g.player.Velocity = g.cfg.Physics.JumpImpulse
	case PhaseGameOver:
		g.logger.Debug("returning to menu")
		g.Reset()
	}
}

// HandleInput applies every trigger collected in the frame, in order.
func (g *Game) HandleInput(in core.InputFrame) {
	for i, n := 0, in.Count(core.ActionTrigger); i < n; i++ {
		g.Trigger()
	}
}

// start enters Playing and arms the spawn timer.
func (g *Game) start() {
	g.phase = PhasePlaying
	g.armSpawn()
	g.logger.Debug("round started", "spawn_interval", g.cfg.Obstacles.SpawnInterval.Std())
}

// end enters GameOver and stops obstacle generation.
func (g *Game) end() {
	g.phase = PhaseGameOver
	g.disarmSpawn()
	g.logger.Info("round over", "score", g.DisplayScore(), "frames", g.frames)
}

func (g *Game) armSpawn() {
	g.disarmSpawn()
	if g.timers == nil {
		return
	}
	g.spawnTask = g.timers.Every(g.cfg.Obstacles.SpawnInterval.Std(), g.Spawn)
}

func (g *Game) disarmSpawn() {
	g.spawnTask.Cancel()
	g.spawnTask = nil
}

// Spawn adds one obstacle pair at the right edge. Ignored unless Playing.
func (g *Game) Spawn() {
	if g.phase != PhasePlaying {
		return
	}
	pair := g.generator.Pair()
	g.course.Add(pair[0], pair[1])
	g.logger.Debug("spawned obstacle pair", "top_height", pair[0].H, "obstacles", g.course.Len())
}

// Update advances the simulation by one frame. Ignored unless Playing.
func (g *Game) Update() {
	if g.phase != PhasePlaying {
		return
	}
	g.frames++

	// Gravity, then integrate and clamp to the board
	g.player.Velocity += g.cfg.Physics.Gravity
	g.player.Y = core.ClampF(g.player.Y+g.player.Velocity, 0, g.cfg.Board.Height-g.player.H)

	g.course.Scroll(g.scrollSpeed)

	if passed := g.course.MarkPassed(g.player.X); passed > 0 {
		g.score += float64(passed) * ScorePerPiece
	}

	if g.course.CheckCollision(g.player.Rect()) {
		g.end()
	}

	g.course.Prune()

	// Difficulty ramp applies every playing frame, including the last one
	g.scrollSpeed -= g.cfg.Difficulty.Ramp
}

// Frame updates when Playing and then draws the result, for hosts that run
// both steps in one callback. The tui and gui hosts call Update and Draw
// separately because their frameworks split state changes from rendering.
func (g *Game) Frame(dst core.Surface) {
	if g.phase == PhasePlaying {
		g.Update()
	}
	g.Draw(dst)
}

// Phase returns the current lifecycle phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Score returns the exact accumulated score in half-point steps.
func (g *Game) Score() float64 {
	return g.score
}

// DisplayScore returns the floored score shown to the player.
func (g *Game) DisplayScore() int {
	return int(math.Floor(g.score))
}

// Player returns a copy of the player state.
func (g *Game) Player() Player {
	return g.player
}

// Obstacles returns a copy of the obstacles on the board, oldest first.
func (g *Game) Obstacles() []Obstacle {
	obs := g.course.Obstacles()
	out := make([]Obstacle, len(obs))
	copy(out, obs)
	return out
}

// ScrollSpeed returns the current horizontal obstacle speed per frame.
func (g *Game) ScrollSpeed() float64 {
	return g.scrollSpeed
}

// Frames returns the number of playing frames in the current round.
func (g *Game) Frames() int {
	return g.frames
}

// SpawnArmed reports whether the spawn timer is running.
func (g *Game) SpawnArmed() bool {
	return g.spawnTask.Active()
}

// Tilt returns the player sprite rotation in degrees for the current velocity.
func (g *Game) Tilt() float64 {
	r := g.cfg.Render
	return core.ClampF(g.player.Velocity*r.TiltFactor, r.MinTilt, r.MaxTilt)
}

// Board returns the logical board size.
func (g *Game) Board() (w, h float64) {
	return g.cfg.Board.Width, g.cfg.Board.Height
}

package flappy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeanpiere159/Game-Flappy-Bird/internal/config"
	"github.com/jeanpiere159/Game-Flappy-Bird/internal/core"
)

const eps = 1e-9

func newTestGame(t *testing.T) (*Game, *core.Scheduler) {
	t.Helper()
	cfg := config.DefaultFlappyConfig()
	require.NoError(t, cfg.Validate())
	sched := core.NewScheduler()
	return New(cfg, core.RuntimeConfig{TickRate: 60, Seed: 42}, sched), sched
}

// place puts a single obstacle piece on the board of a playing game.
func place(g *Game, o Obstacle) {
	g.course.Add(o)
}

func TestNewGameStartsInMenu(t *testing.T) {
	g, sched := newTestGame(t)

	assert.Equal(t, PhaseMenu, g.Phase())
	assert.Equal(t, 0.0, g.Score())
	assert.Empty(t, g.Obstacles())
	assert.Equal(t, -3.0, g.ScrollSpeed())
	assert.False(t, g.SpawnArmed())
	assert.Zero(t, sched.Pending())

	p := g.Player()
	assert.Equal(t, Player{X: 80, Y: 320, W: 40, H: 30}, p)
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "Menu", PhaseMenu.String())
	assert.Equal(t, "Playing", PhasePlaying.String())
	assert.Equal(t, "GameOver", PhaseGameOver.String())
	assert.Equal(t, "Unknown", Phase(99).String())
}

func TestMenuIgnoresUpdate(t *testing.T) {
	g, _ := newTestGame(t)
	before := g.Player()

	for i := 0; i < 10; i++ {
		g.Update()
	}

	assert.Equal(t, before, g.Player())
	assert.Equal(t, -3.0, g.ScrollSpeed())
	assert.Zero(t, g.Frames())
}

func TestTriggerStartsRound(t *testing.T) {
	g, sched := newTestGame(t)

	g.Trigger()

	assert.Equal(t, PhasePlaying, g.Phase())
	assert.True(t, g.SpawnArmed())
	assert.Equal(t, 1, sched.Pending())
	// Starting does not flap
	assert.Equal(t, 0.0, g.Player().Velocity)
}

func TestFirstFrameGravity(t *testing.T) {
	g, _ := newTestGame(t)
	g.Trigger()

	g.Update()

	p := g.Player()
	assert.InDelta(t, 0.65, p.Velocity, eps)
	assert.InDelta(t, 320.65, p.Y, eps)
	assert.Equal(t, PhasePlaying, g.Phase())
}

func TestJumpThenGravity(t *testing.T) {
	g, _ := newTestGame(t)
	g.Trigger()

	g.Trigger()
	assert.Equal(t, -8.5, g.Player().Velocity)

	g.Update()
	p := g.Player()
	assert.InDelta(t, -7.85, p.Velocity, eps)
	assert.InDelta(t, 320-7.85, p.Y, eps)
}

func TestPlayerClampedToBoard(t *testing.T) {
	t.Run("bottom", func(t *testing.T) {
		g, _ := newTestGame(t)
		g.Trigger()

		for i := 0; i < 200; i++ {
			g.Update()
			p := g.Player()
			require.GreaterOrEqual(t, p.Y, 0.0)
			require.LessOrEqual(t, p.Y, 640-p.H)
		}
		assert.Equal(t, 610.0, g.Player().Y)
		// Resting on the floor is not fatal
		assert.Equal(t, PhasePlaying, g.Phase())
	})

	t.Run("top", func(t *testing.T) {
		g, _ := newTestGame(t)
		g.Trigger()

		for i := 0; i < 100; i++ {
			g.Trigger()
			g.Update()
			p := g.Player()
			require.GreaterOrEqual(t, p.Y, 0.0)
		}
		assert.Equal(t, 0.0, g.Player().Y)
		assert.Equal(t, PhasePlaying, g.Phase())
	})
}

func TestSpawnAtRightEdgeThenScroll(t *testing.T) {
	g, _ := newTestGame(t)
	g.Trigger()

	g.Spawn()
	obs := g.Obstacles()
	require.Len(t, obs, 2)
	for _, o := range obs {
		assert.Equal(t, 500.0, o.X)
		assert.Equal(t, 80.0, o.W)
	}

	g.Update()
	for _, o := range g.Obstacles() {
		assert.InDelta(t, 497.0, o.X, eps)
	}
}

func TestSpawnIgnoredOutsidePlaying(t *testing.T) {
	g, _ := newTestGame(t)

	g.Spawn()
	assert.Empty(t, g.Obstacles())
}

func TestSchedulerDrivesSpawns(t *testing.T) {
	g, sched := newTestGame(t)
	g.Trigger()

	sched.Advance(1399 * time.Millisecond)
	assert.Empty(t, g.Obstacles())

	sched.Advance(time.Millisecond)
	assert.Len(t, g.Obstacles(), 2)

	sched.Advance(1400 * time.Millisecond)
	assert.Len(t, g.Obstacles(), 4)
}

func TestScrollSpeedRamps(t *testing.T) {
	g, _ := newTestGame(t)
	g.Trigger()

	g.Update()
	assert.InDelta(t, -3.002, g.ScrollSpeed(), eps)

	for i := 0; i < 99; i++ {
		g.Update()
	}
	assert.InDelta(t, -3.2, g.ScrollSpeed(), 1e-6)
}

func TestScoreHalfPointPerPiece(t *testing.T) {
	g, _ := newTestGame(t)
	g.Trigger()

	// One scroll of -3 leaves both right edges at 42, left of the player's x=80.
	// The gap is wide open so nothing collides.
	place(g, Obstacle{X: -35, Y: 0, W: 80, H: 50, Top: true})
	place(g, Obstacle{X: -35, Y: 600, W: 80, H: 40})

	g.Update()
	assert.Equal(t, 1.0, g.Score())
	assert.Equal(t, 1, g.DisplayScore())

	// Each piece is credited once
	g.Update()
	assert.Equal(t, 1.0, g.Score())
}

func TestScoreRequiresStrictlyLeftOfPlayer(t *testing.T) {
	g, _ := newTestGame(t)
	g.Trigger()

	// After scrolling by -3 the right edge lands exactly on x=80
	place(g, Obstacle{X: 6, Y: 0, W: 77, H: 50, Top: true})

	g.Update()
	assert.Equal(t, 0.0, g.Score())

	g.Update()
	assert.Equal(t, 0.5, g.Score())
	assert.Equal(t, 0, g.DisplayScore())
}

func TestCollisionEndsRound(t *testing.T) {
	g, sched := newTestGame(t)
	g.Trigger()

	// Bottom piece directly under the player's path
	place(g, Obstacle{X: 70, Y: 300, W: 80, H: 340})

	g.Update()

	assert.Equal(t, PhaseGameOver, g.Phase())
	assert.False(t, g.SpawnArmed())
	assert.Zero(t, sched.Pending())
	// The ramp still applies on the fatal frame
	assert.InDelta(t, -3.002, g.ScrollSpeed(), eps)

	// Frozen after game over
	before := g.Player()
	g.Update()
	assert.Equal(t, before, g.Player())

	// No spawns after game over
	sched.Advance(5 * time.Second)
	assert.Len(t, g.Obstacles(), 1)
}

func TestTouchingEdgesDoNotCollide(t *testing.T) {
	g, _ := newTestGame(t)
	g.Trigger()

	// Player occupies x in [80, 120]. After the scroll the piece starts at x=120.
	place(g, Obstacle{X: 123, Y: 0, W: 80, H: 640})

	g.Update()
	assert.Equal(t, PhasePlaying, g.Phase())

	g.Update()
	assert.Equal(t, PhaseGameOver, g.Phase())
}

func TestPruneRemovesOffscreenPieces(t *testing.T) {
	g, _ := newTestGame(t)
	g.Trigger()

	place(g, Obstacle{X: -76, Y: 0, W: 80, H: 10, Top: true}) // right edge 4 -> 1
	place(g, Obstacle{X: -77, Y: 0, W: 80, H: 10, Top: true}) // right edge 3 -> 0
	place(g, Obstacle{X: 300, Y: 0, W: 80, H: 10, Top: true})

	g.Update()

	obs := g.Obstacles()
	require.Len(t, obs, 2)
	assert.InDelta(t, -79.0, obs[0].X, eps)
	assert.InDelta(t, 297.0, obs[1].X, eps)
}

func TestObstaclesReturnsCopy(t *testing.T) {
	g, _ := newTestGame(t)
	g.Trigger()
	g.Spawn()

	obs := g.Obstacles()
	obs[0].X = -1000

	assert.Equal(t, 500.0, g.Obstacles()[0].X)
}

func TestGameOverTriggerReturnsToMenu(t *testing.T) {
	g, sched := newTestGame(t)
	g.Trigger()
	g.Spawn()
	place(g, Obstacle{X: 70, Y: 300, W: 80, H: 340})
	g.Update()
	require.Equal(t, PhaseGameOver, g.Phase())

	g.Trigger()

	assert.Equal(t, PhaseMenu, g.Phase())
	assert.Empty(t, g.Obstacles())
	assert.Equal(t, 0.0, g.Score())
	assert.Equal(t, -3.0, g.ScrollSpeed())
	assert.Equal(t, Player{X: 80, Y: 320, W: 40, H: 30}, g.Player())

	// A fresh round arms exactly one spawn task
	g.Trigger()
	assert.Equal(t, PhasePlaying, g.Phase())
	assert.Equal(t, 1, sched.Pending())
}

func TestResetWhilePlayingCancelsSpawns(t *testing.T) {
	g, sched := newTestGame(t)
	g.Trigger()

	g.Reset()

	assert.Equal(t, PhaseMenu, g.Phase())
	assert.False(t, g.SpawnArmed())
	sched.Advance(10 * time.Second)
	assert.Empty(t, g.Obstacles())
}

func TestHandleInputAppliesEachTrigger(t *testing.T) {
	g, _ := newTestGame(t)

	in := core.NewInputFrame()
	in.Set(core.ActionTrigger)
	in.Set(core.ActionTrigger)
	g.HandleInput(in)

	// Start, then flap
	assert.Equal(t, PhasePlaying, g.Phase())
	assert.Equal(t, -8.5, g.Player().Velocity)

	quit := core.NewInputFrame()
	quit.Set(core.ActionQuit)
	g.HandleInput(quit)
	assert.Equal(t, PhasePlaying, g.Phase())
}

func TestTilt(t *testing.T) {
	g, _ := newTestGame(t)
	tests := []struct {
		velocity float64
		expected float64
	}{
		{0, 0},
		{-8.5, -25.5},
		{-17, -30},
		{5, 15},
		{20, 45},
	}

	for _, tc := range tests {
		g.player.Velocity = tc.velocity
		assert.InDelta(t, tc.expected, g.Tilt(), eps, "velocity %v", tc.velocity)
	}
}

func TestDeterministicWithSameSeed(t *testing.T) {
	run := func() (float64, int, []Obstacle) {
		g, sched := newTestGame(t)
		g.Trigger()
		frame := time.Second / 60
		for i := 0; i < 600; i++ {
			if i%18 == 0 {
				g.Trigger()
			}
			sched.Advance(frame)
			g.Update()
			if g.Phase() != PhasePlaying {
				break
			}
		}
		return g.Score(), g.Frames(), g.Obstacles()
	}

	s1, f1, o1 := run()
	s2, f2, o2 := run()

	assert.Equal(t, s1, s2)
	assert.Equal(t, f1, f2)
	assert.Equal(t, o1, o2)
}

func TestNilTimersNeverSpawn(t *testing.T) {
	g := New(config.DefaultFlappyConfig(), core.DefaultConfig(), nil)
	g.Trigger()

	assert.Equal(t, PhasePlaying, g.Phase())
	assert.False(t, g.SpawnArmed())
}

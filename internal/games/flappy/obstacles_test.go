package flappy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeanpiere159/Game-Flappy-Bird/internal/config"
	"github.com/jeanpiere159/Game-Flappy-Bird/internal/core"
)

func TestGeneratorPairGeometry(t *testing.T) {
	cfg := config.DefaultFlappyConfig()

	for seed := int64(0); seed < 50; seed++ {
		gen := NewGenerator(seed, cfg)
		for i := 0; i < 100; i++ {
			pair := gen.Pair()
			top, bottom := pair[0], pair[1]

			require.True(t, top.Top)
			require.False(t, bottom.Top)
			require.Equal(t, 500.0, top.X)
			require.Equal(t, 500.0, bottom.X)
			require.Equal(t, 0.0, top.Y)

			// Gap band stays inside the margins
			require.GreaterOrEqual(t, top.H, 50.0)
			require.Less(t, top.H, 640.0-180-50)

			require.InDelta(t, top.H+180, bottom.Y, eps)
			require.InDelta(t, 640.0, bottom.Y+bottom.H, eps)
			require.False(t, top.Passed || bottom.Passed)
		}
	}
}

func TestGeneratorSameSeedSameSequence(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	a := NewGenerator(7, cfg)
	b := NewGenerator(7, cfg)

	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Pair(), b.Pair())
	}
}

func TestGeneratorUsesConfiguredGap(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	cfg.Obstacles.Gap = 250
	cfg.Obstacles.Margin = 20
	gen := NewGenerator(1, cfg)

	for i := 0; i < 100; i++ {
		h := gen.TopHeight()
		assert.GreaterOrEqual(t, h, 20.0)
		assert.Less(t, h, 640.0-250-20)
	}
}

func TestCourseMarkPassed(t *testing.T) {
	c := NewCourse()
	c.Add(
		Obstacle{X: 0, W: 79},
		Obstacle{X: 0, W: 80},
		Obstacle{X: 0, W: 81},
	)

	assert.Equal(t, 1, c.MarkPassed(80))
	assert.Equal(t, 0, c.MarkPassed(80))

	c.Scroll(-1)
	assert.Equal(t, 1, c.MarkPassed(80))
	assert.Equal(t, []bool{true, true, false}, []bool{
		c.Obstacles()[0].Passed,
		c.Obstacles()[1].Passed,
		c.Obstacles()[2].Passed,
	})
}

func TestCourseCheckCollision(t *testing.T) {
	c := NewCourse()
	c.Add(
		Obstacle{X: 200, Y: 0, W: 80, H: 200, Top: true},
		Obstacle{X: 200, Y: 380, W: 80, H: 260},
	)

	tests := []struct {
		name     string
		rect     core.Rect
		expected bool
	}{
		{"in the gap", core.NewRect(220, 250, 40, 30), false},
		{"hits top", core.NewRect(220, 190, 40, 30), true},
		{"hits bottom", core.NewRect(220, 360, 40, 30), true},
		{"flush with top", core.NewRect(220, 200, 40, 30), false},
		{"flush with left side", core.NewRect(160, 100, 40, 30), false},
		{"clear of both", core.NewRect(0, 100, 40, 30), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, c.CheckCollision(tc.rect))
		})
	}
}

func TestCoursePruneKeepsOrder(t *testing.T) {
	c := NewCourse()
	c.Add(
		Obstacle{X: -80, W: 80},
		Obstacle{X: 10, W: 80},
		Obstacle{X: -100, W: 80},
		Obstacle{X: 50, W: 80},
	)

	c.Prune()

	require.Equal(t, 2, c.Len())
	assert.Equal(t, 10.0, c.Obstacles()[0].X)
	assert.Equal(t, 50.0, c.Obstacles()[1].X)

	c.Reset()
	assert.Zero(t, c.Len())
}

package flappy

import (
	"math/rand"

	"github.com/jeanpiere159/Game-Flappy-Bird/internal/config"
	"github.com/jeanpiere159/Game-Flappy-Bird/internal/core"
)

// Obstacle is one piece of an obstacle pair: either hanging from the top
// edge or standing on the bottom edge.
type Obstacle struct {
	X, Y   float64 // Top-left corner
	W, H   float64
	Top    bool // Hangs from the top edge
	Passed bool // Score has been credited for this piece
}

// Rect returns the obstacle's collision rectangle.
func (o Obstacle) Rect() core.Rect {
	return core.NewRect(o.X, o.Y, o.W, o.H)
}

// Right returns the x-coordinate of the obstacle's right edge.
func (o Obstacle) Right() float64 {
	return o.X + o.W
}

// Generator produces obstacle pairs with a randomly placed gap.
type Generator struct {
	rng    *rand.Rand
	boardW float64
	boardH float64
	width  float64
	gap    float64
	margin float64
}

// NewGenerator creates a generator with the given RNG seed.
func NewGenerator(seed int64, cfg config.FlappyConfig) *Generator {
	return &Generator{
		rng:    rand.New(rand.NewSource(seed)),
		boardW: cfg.Board.Width,
		boardH: cfg.Board.Height,
		width:  cfg.Obstacles.Width,
		gap:    cfg.Obstacles.Gap,
		margin: cfg.Obstacles.Margin,
	}
}

// TopHeight draws the height of the top piece uniformly from
// [margin, boardH - gap - margin).
func (g *Generator) TopHeight() float64 {
	band := g.boardH - g.gap - 2*g.margin
	return g.rng.Float64()*band + g.margin
}

// Pair returns a new top and bottom piece at the right edge of the board.
func (g *Generator) Pair() [2]Obstacle {
	topHeight := g.TopHeight()
	bottomY := topHeight + g.gap

	return [2]Obstacle{
		{X: g.boardW, Y: 0, W: g.width, H: topHeight, Top: true},
		{X: g.boardW, Y: bottomY, W: g.width, H: g.boardH - bottomY},
	}
}

// Course holds the obstacles currently on the board, oldest first.
type Course struct {
	obstacles []Obstacle
}

// NewCourse creates an empty course.
func NewCourse() *Course {
	return &Course{obstacles: make([]Obstacle, 0, 8)}
}

// Reset removes every obstacle.
func (c *Course) Reset() {
	c.obstacles = c.obstacles[:0]
}

// Add appends obstacles in spawn order.
func (c *Course) Add(obs ...Obstacle) {
	c.obstacles = append(c.obstacles, obs...)
}

// Scroll moves every obstacle horizontally by dx.
func (c *Course) Scroll(dx float64) {
	for i := range c.obstacles {
		c.obstacles[i].X += dx
	}
}

// MarkPassed flags every unpassed piece whose right edge is left of playerX
// and returns how many were flagged.
func (c *Course) MarkPassed(playerX float64) int {
	passed := 0
	for i := range c.obstacles {
		if !c.obstacles[i].Passed && c.obstacles[i].Right() < playerX {
			c.obstacles[i].Passed = true
			passed++
		}
	}
	return passed
}

// CheckCollision tests the rectangle against every piece.
func (c *Course) CheckCollision(r core.Rect) bool {
	hit := false
	for _, o := range c.obstacles {
		if r.Intersects(o.Rect()) {
			hit = true
		}
	}
	return hit
}

// Prune removes pieces that have fully left the board on the left side.
// Survivors keep their relative order.
func (c *Course) Prune() {
	kept := c.obstacles[:0]
	for _, o := range c.obstacles {
		if o.Right() > 0 {
			kept = append(kept, o)
		}
	}
	c.obstacles = kept
}

// Obstacles returns the current obstacles. Callers must not modify the slice.
func (c *Course) Obstacles() []Obstacle {
	return c.obstacles
}

// Len returns the number of obstacles on the board.
func (c *Course) Len() int {
	return len(c.obstacles)
}

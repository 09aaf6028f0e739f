package flappy

import (
	"fmt"

	"github.com/jeanpiere159/Game-Flappy-Bird/internal/core"
)

// Menu and banner layout, in board units.
const (
	logoW, logoH   float64 = 300, 100
	logoY          float64 = 100
	playButtonW    float64 = 115
	playButtonH    float64 = 64
	playButtonY    float64 = 300
	gameOverW      float64 = 400
	gameOverH      float64 = 80
	gameOverY      float64 = 150
	finalScoreY    float64 = 250
	finalScoreSize float64 = 24
	liveScoreX     float64 = 10
	liveScoreY     float64 = 30
	liveScoreSize  float64 = 30
)

// Draw renders the current state onto dst. It never mutates the game.
func (g *Game) Draw(dst core.Surface) {
	w, h := g.Board()

	dst.Clear()
	dst.DrawImage(core.ImageBackground, core.NewRect(0, 0, w, h))

	switch g.phase {
	case PhaseMenu:
		g.drawMenu(dst, w)
	case PhasePlaying:
		g.drawPlaying(dst)
	case PhaseGameOver:
		g.drawGameOver(dst, w)
	}
}

func (g *Game) drawMenu(dst core.Surface, w float64) {
	dst.DrawImage(core.ImageLogo, core.NewRect(w/2-logoW/2, logoY, logoW, logoH))
	dst.DrawImage(core.ImagePlayButton, core.NewRect(w/2-playButtonW/2, playButtonY, playButtonW, playButtonH))
}

func (g *Game) drawPlaying(dst core.Surface) {
	p := g.player.Rect()
	cx, cy := p.Center()
	dst.DrawImageRotated(core.ImagePlayer, p, cx, cy, g.Tilt())

	for _, o := range g.course.Obstacles() {
		id := core.ImageObstacleBottom
		if o.Top {
			id = core.ImageObstacleTop
		}
		dst.DrawImage(id, o.Rect())
	}

	dst.DrawText(fmt.Sprintf("%d", g.DisplayScore()), liveScoreX, liveScoreY, core.TextStyle{
		Size:  liveScoreSize,
		Align: core.AlignLeft,
		Color: core.ColorWhite,
	})
}

func (g *Game) drawGameOver(dst core.Surface, w float64) {
	dst.DrawImage(core.ImageGameOver, core.NewRect(w/2-gameOverW/2, gameOverY, gameOverW, gameOverH))
	dst.DrawText(fmt.Sprintf("Score: %d", g.DisplayScore()), w/2, finalScoreY, core.TextStyle{
		Size:  finalScoreSize,
		Align: core.AlignCenter,
		Color: core.ColorWhite,
	})
}

package tui

import (
	"math"

	"github.com/jeanpiere159/Game-Flappy-Bird/internal/core"
)

// cellAspect is the height of a terminal cell relative to its width.
const cellAspect = 2.0

// glyph is how an image asset is shown in the terminal.
type glyph struct {
	fill  rune
	color core.Color
	label string // Drawn centered inside the filled area, if it fits
	boxed bool   // Outline the area instead of filling it
}

var glyphs = map[core.ImageID]glyph{
	core.ImageBackground:     {fill: ' ', color: core.ColorDefault},
	core.ImagePlayer:         {fill: '@', color: core.ColorBrightYellow},
	core.ImageObstacleTop:    {fill: '█', color: core.ColorGreen},
	core.ImageObstacleBottom: {fill: '█', color: core.ColorGreen},
	core.ImagePlayButton:     {color: core.ColorBrightGreen, label: "PLAY", boxed: true},
	core.ImageGameOver:       {color: core.ColorRed, label: "GAME OVER", boxed: true},
	core.ImageLogo:           {color: core.ColorOrange, label: "FLAPPY", boxed: true},
}

// CellSurface draws the logical board onto a character Screen.
// The board keeps its proportions and is centered in the terminal.
type CellSurface struct {
	screen     *core.Screen
	logicalW   float64
	logicalH   float64
	cols, rows int // Size of the board area in cells
	offX, offY int
	scaleX     float64
	scaleY     float64
	hidden     map[core.ImageID]bool
}

// NewCellSurface creates a surface for a terminal of the given size.
func NewCellSurface(termW, termH int, logicalW, logicalH float64) *CellSurface {
	s := &CellSurface{
		screen:   core.NewScreen(max(termW, 1), max(termH, 1)),
		logicalW: logicalW,
		logicalH: logicalH,
		hidden:   make(map[core.ImageID]bool),
	}
	s.Resize(termW, termH)
	return s
}

// Resize fits the board into a new terminal size. The logical size never changes.
func (s *CellSurface) Resize(termW, termH int) {
	termW, termH = max(termW, 1), max(termH, 1)
	s.screen.Resize(termW, termH)

	// Widest board that fits, honoring the cell aspect ratio
	ratio := s.logicalW / s.logicalH * cellAspect
	rows := termH
	cols := int(math.Round(float64(rows) * ratio))
	if cols > termW {
		cols = termW
		rows = max(int(math.Round(float64(cols)/ratio)), 1)
	}

	s.cols, s.rows = max(cols, 1), rows
	s.offX = (termW - s.cols) / 2
	s.offY = (termH - s.rows) / 2
	s.scaleX = float64(s.cols) / s.logicalW
	s.scaleY = float64(s.rows) / s.logicalH
}

// Hide makes draws of the image no-ops, as if the asset never loaded.
func (s *CellSurface) Hide(id core.ImageID) {
	s.hidden[id] = true
}

// Screen returns the underlying cell buffer.
func (s *CellSurface) Screen() *core.Screen {
	return s.screen
}

// BoardCells returns the size of the board area in cells.
func (s *CellSurface) BoardCells() (cols, rows int) {
	return s.cols, s.rows
}

// Clear erases the whole terminal area.
func (s *CellSurface) Clear() {
	s.screen.Clear()
}

// cellRect converts a logical rectangle to the cell span it covers.
// Any non-empty rectangle covers at least one cell.
func (s *CellSurface) cellRect(r core.Rect) (x0, y0, x1, y1 int) {
	x0 = int(math.Floor(r.X * s.scaleX))
	y0 = int(math.Floor(r.Y * s.scaleY))
	x1 = int(math.Ceil(r.Right() * s.scaleX))
	y1 = int(math.Ceil(r.Bottom() * s.scaleY))
	if r.W > 0 && x1 <= x0 {
		x1 = x0 + 1
	}
	if r.H > 0 && y1 <= y0 {
		y1 = y0 + 1
	}

	// Clip to the board so nothing spills into the letterbox
	x0, x1 = core.Clamp(x0, 0, s.cols), core.Clamp(x1, 0, s.cols)
	y0, y1 = core.Clamp(y0, 0, s.rows), core.Clamp(y1, 0, s.rows)
	return x0 + s.offX, y0 + s.offY, x1 + s.offX, y1 + s.offY
}

// DrawImage fills the cells covered by r with the image's glyph.
func (s *CellSurface) DrawImage(id core.ImageID, r core.Rect) {
	g, ok := glyphs[id]
	if !ok || s.hidden[id] {
		return
	}
	x0, y0, x1, y1 := s.cellRect(r)
	w, h := x1-x0, y1-y0
	if w <= 0 || h <= 0 {
		return
	}

	if g.boxed {
		if w >= 2 && h >= 2 {
			s.screen.FillRect(x0, y0, w, h, ' ', g.color)
			s.screen.DrawBox(x0, y0, w, h, g.color)
		}
		if len([]rune(g.label)) <= w {
			s.screen.DrawTextCentered(x0+w/2, y0+h/2, g.label, g.color)
		}
		return
	}
	s.screen.FillRect(x0, y0, w, h, g.fill, g.color)
}

// DrawImageRotated draws the image with a glyph chosen by the rotation.
// Terminal cells cannot rotate, so the player sprite shows its heading instead.
func (s *CellSurface) DrawImageRotated(id core.ImageID, r core.Rect, _, _ float64, degrees float64) {
	if id != core.ImagePlayer || s.hidden[id] {
		s.DrawImage(id, r)
		return
	}
	x0, y0, x1, y1 := s.cellRect(r)
	if x1 <= x0 || y1 <= y0 {
		return
	}
	s.screen.FillRect(x0, y0, x1-x0, y1-y0, headingRune(degrees), glyphs[id].color)
}

// headingRune picks a glyph for the player's tilt: nose up, level or diving.
func headingRune(degrees float64) rune {
	switch {
	case degrees <= -10:
		return '^'
	case degrees >= 10:
		return 'v'
	default:
		return '>'
	}
}

// DrawText writes text on the cell row just above the baseline.
func (s *CellSurface) DrawText(text string, x, y float64, style core.TextStyle) {
	if text == "" {
		return
	}
	row := int(math.Ceil(y*s.scaleY)) - 1
	row = core.Clamp(row, 0, s.rows-1) + s.offY
	col := int(math.Floor(x*s.scaleX)) + s.offX

	switch style.Align {
	case core.AlignCenter:
		s.screen.DrawTextCentered(col, row, text, style.Color)
	default:
		s.screen.DrawText(col, row, text, style.Color)
	}
}

package gui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"github.com/jeanpiere159/Game-Flappy-Bird/internal/core"
)

// palette maps core colors to RGBA.
var palette = map[core.Color]color.RGBA{
	core.ColorDefault:      {R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	core.ColorWhite:        {R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	core.ColorGreen:        {R: 0x30, G: 0xa0, B: 0x30, A: 0xff},
	core.ColorBrightGreen:  {R: 0x60, G: 0xe0, B: 0x60, A: 0xff},
	core.ColorYellow:       {R: 0xd0, G: 0xb0, B: 0x20, A: 0xff},
	core.ColorBrightYellow: {R: 0xff, G: 0xe0, B: 0x40, A: 0xff},
	core.ColorOrange:       {R: 0xf0, G: 0x80, B: 0x20, A: 0xff},
	core.ColorRed:          {R: 0xd0, G: 0x30, B: 0x30, A: 0xff},
	core.ColorCyan:         {R: 0x40, G: 0xc0, B: 0xd0, A: 0xff},
	core.ColorBlue:         {R: 0x30, G: 0x60, B: 0xd0, A: 0xff},
	core.ColorGray:         {R: 0x90, G: 0x90, B: 0x90, A: 0xff},
}

// RGBA returns the display color for c. Unknown colors render white.
func RGBA(c core.Color) color.RGBA {
	if rgba, ok := palette[c]; ok {
		return rgba
	}
	return palette[core.ColorDefault]
}

// backdrop fills the frame before anything else is drawn.
var backdrop = color.RGBA{R: 0x10, G: 0x10, B: 0x18, A: 0xff}

// ImageSurface draws onto an ebiten image. Images that have not finished
// loading are skipped.
type ImageSurface struct {
	dst    *ebiten.Image
	images map[core.ImageID]*ebiten.Image
	fonts  *FontCache
}

// NewImageSurface creates a surface with no images loaded.
func NewImageSurface(fonts *FontCache) *ImageSurface {
	return &ImageSurface{
		images: make(map[core.ImageID]*ebiten.Image),
		fonts:  fonts,
	}
}

// SetTarget sets the image the next draws go to.
func (s *ImageSurface) SetTarget(dst *ebiten.Image) {
	s.dst = dst
}

// SetImage installs a loaded image. Must be called on the game goroutine.
func (s *ImageSurface) SetImage(id core.ImageID, img *ebiten.Image) {
	s.images[id] = img
}

// Loaded returns how many images are installed.
func (s *ImageSurface) Loaded() int {
	return len(s.images)
}

// Clear erases the target.
func (s *ImageSurface) Clear() {
	s.dst.Fill(backdrop)
}

// stretch returns options that scale img to fill r.
func stretch(img *ebiten.Image, r core.Rect) *ebiten.DrawImageOptions {
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(r.W/float64(b.Dx()), r.H/float64(b.Dy()))
	op.Filter = ebiten.FilterLinear
	return op
}

// DrawImage draws the image stretched to fill r.
func (s *ImageSurface) DrawImage(id core.ImageID, r core.Rect) {
	img := s.images[id]
	if img == nil || r.W <= 0 || r.H <= 0 {
		return
	}
	op := stretch(img, r)
	op.GeoM.Translate(r.X, r.Y)
	s.dst.DrawImage(img, op)
}

// DrawImageRotated draws the image stretched to fill r and rotated by
// degrees about (px, py).
func (s *ImageSurface) DrawImageRotated(id core.ImageID, r core.Rect, px, py, degrees float64) {
	img := s.images[id]
	if img == nil || r.W <= 0 || r.H <= 0 {
		return
	}
	op := stretch(img, r)
	op.GeoM.Translate(r.X-px, r.Y-py)
	op.GeoM.Rotate(degrees * math.Pi / 180)
	op.GeoM.Translate(px, py)
	s.dst.DrawImage(img, op)
}

// DrawText draws text with its baseline at y.
func (s *ImageSurface) DrawText(str string, x, y float64, style core.TextStyle) {
	if str == "" {
		return
	}
	face := s.fonts.Face(style.Size)
	if face == nil {
		return
	}

	if style.Align == core.AlignCenter {
		bounds, _ := font.BoundString(face, str)
		x -= float64((bounds.Max.X - bounds.Min.X).Ceil()) / 2
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(RGBA(style.Color))
	text.DrawWithOptions(s.dst, str, face, op)
}

package gui

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

const dpi = 72

// FontCache hands out sans-serif faces by size, creating each size once.
type FontCache struct {
	mu    sync.Mutex
	font  *opentype.Font
	faces map[float64]font.Face
}

// NewFontCache parses the bundled Go Regular font.
func NewFontCache() (*FontCache, error) {
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	return &FontCache{
		font:  tt,
		faces: make(map[float64]font.Face),
	}, nil
}

// Face returns the face for size, or nil if it cannot be built.
func (c *FontCache) Face(size float64) font.Face {
	if c == nil || size <= 0 {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if f, ok := c.faces[size]; ok {
		return f
	}
	f, err := opentype.NewFace(c.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     dpi,
		Hinting: font.HintingVertical,
	})
	if err != nil {
		return nil
	}
	c.faces[size] = f
	return f
}

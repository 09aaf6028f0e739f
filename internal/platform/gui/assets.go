package gui

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io/fs"
	"sync"

	// Decoders registered with image.Decode
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/charmbracelet/log"

	"github.com/jeanpiere159/Game-Flappy-Bird/internal/core"
)

// ErrAssetNotFound is returned when no file exists for an image.
var ErrAssetNotFound = errors.New("asset not found")

// extensions are tried in order for every file stem.
var extensions = []string{".png", ".webp", ".bmp"}

// aliases are extra file stems accepted for an image, matching the file
// names of the classic Flappy Bird asset pack.
var aliases = map[core.ImageID][]string{
	core.ImageBackground:     {"flappybirdbg"},
	core.ImagePlayer:         {"flappybird"},
	core.ImageObstacleTop:    {"toppipe"},
	core.ImageObstacleBottom: {"bottompipe"},
	core.ImagePlayButton:     {"flappyBirdPlayButton"},
	core.ImageGameOver:       {"flappy-gameover"},
	core.ImageLogo:           {"flappyBirdLogo"},
}

// Decoded is the result of loading one image asset.
type Decoded struct {
	ID    core.ImageID
	Image image.Image // Nil when Err is set
	Err   error
}

// candidates returns the file names tried for an image, in order.
func candidates(id core.ImageID) []string {
	stems := append([]string{id.String()}, aliases[id]...)
	names := make([]string, 0, len(stems)*len(extensions))
	for _, stem := range stems {
		for _, ext := range extensions {
			names = append(names, stem+ext)
		}
	}
	return names
}

// DecodeAsset reads and decodes the first existing candidate file for id.
func DecodeAsset(fsys fs.FS, id core.ImageID) (image.Image, error) {
	for _, name := range candidates(id) {
		data, err := fs.ReadFile(fsys, name)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		img, _, err := image.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", name, err)
		}
		return img, nil
	}
	return nil, fmt.Errorf("%s: %w", id, ErrAssetNotFound)
}

// LoadAssets decodes every image in its own goroutine. Results arrive on the
// returned channel in completion order; the channel is closed when all
// images are done or ctx is cancelled. Failures are logged and reported
// with a nil Image so the image simply stays undrawn.
func LoadAssets(ctx context.Context, fsys fs.FS, logger *log.Logger) <-chan Decoded {
	out := make(chan Decoded, len(core.Images))

	var wg sync.WaitGroup
	for _, id := range core.Images {
		wg.Add(1)
		go func(id core.ImageID) {
			defer wg.Done()

			img, err := DecodeAsset(fsys, id)
			if err != nil {
				logger.Warn("image unavailable", "image", id, "error", err)
			} else {
				b := img.Bounds()
				logger.Debug("image decoded", "image", id, "width", b.Dx(), "height", b.Dy())
			}

			select {
			case out <- Decoded{ID: id, Image: img, Err: err}:
			case <-ctx.Done():
			}
		}(id)
	}

	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}

// placeholderColors tint the generated stand-in art.
var placeholderColors = map[core.ImageID]color.RGBA{
	core.ImageBackground:     {R: 0x4e, G: 0xc0, B: 0xca, A: 0xff},
	core.ImagePlayer:         {R: 0xf8, G: 0xd8, B: 0x20, A: 0xff},
	core.ImageObstacleTop:    {R: 0x54, G: 0xa0, B: 0x30, A: 0xff},
	core.ImageObstacleBottom: {R: 0x54, G: 0xa0, B: 0x30, A: 0xff},
	core.ImagePlayButton:     {R: 0xf0, G: 0x80, B: 0x20, A: 0xff},
	core.ImageGameOver:       {R: 0xd0, G: 0x40, B: 0x30, A: 0xff},
	core.ImageLogo:           {R: 0xf0, G: 0xa0, B: 0x30, A: 0xff},
}

// Placeholder returns a small solid image standing in for a missing asset.
// Every placeholder but the background gets a one-pixel dark border.
func Placeholder(id core.ImageID) image.Image {
	const size = 16
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	fill := placeholderColors[id]
	border := color.RGBA{R: fill.R / 2, G: fill.G / 2, B: fill.B / 2, A: 0xff}

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := fill
			edge := x == 0 || y == 0 || x == size-1 || y == size-1
			if edge && id != core.ImageBackground {
				c = border
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// Placeholders sends a placeholder for every image on a closed channel,
// in the same shape LoadAssets produces.
func Placeholders() <-chan Decoded {
	out := make(chan Decoded, len(core.Images))
	for _, id := range core.Images {
		out <- Decoded{ID: id, Image: Placeholder(id)}
	}
	close(out)
	return out
}

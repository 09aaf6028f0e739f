package core

// BoardWidth and BoardHeight are the default logical surface dimensions.
const (
	BoardWidth  = 500
	BoardHeight = 640
)

// ImageID names one of the image assets the game draws.
type ImageID int

const (
	ImageBackground ImageID = iota
	ImagePlayer
	ImageObstacleTop
	ImageObstacleBottom
	ImagePlayButton
	ImageGameOver
	ImageLogo
)

// Images lists every ImageID, in declaration order.
var Images = []ImageID{
	ImageBackground,
	ImagePlayer,
	ImageObstacleTop,
	ImageObstacleBottom,
	ImagePlayButton,
	ImageGameOver,
	ImageLogo,
}

// String returns the asset name, which is also the file stem hosts look for.
func (id ImageID) String() string {
	switch id {
	case ImageBackground:
		return "background"
	case ImagePlayer:
		return "player"
	case ImageObstacleTop:
		return "obstacle-top"
	case ImageObstacleBottom:
		return "obstacle-bottom"
	case ImagePlayButton:
		return "play-button"
	case ImageGameOver:
		return "game-over"
	case ImageLogo:
		return "logo"
	default:
		return "unknown"
	}
}

// Align controls horizontal text placement relative to the anchor point.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
)

// TextStyle describes how DrawText renders a string.
type TextStyle struct {
	Size  float64 // Font size in logical units
	Align Align
	Color Color
}

// Surface is a 2D drawing target with a fixed logical size.
// Coordinates are logical board units with the origin in the top-left corner.
// Implementations must treat draws of images they cannot show as no-ops.
type Surface interface {
	// Clear erases the whole surface.
	Clear()

	// DrawImage draws an image stretched to fill r.
	DrawImage(id ImageID, r Rect)

	// DrawImageRotated draws an image stretched to fill r, rotated by degrees
	// (clockwise, screen coordinates) about the pivot point (px, py).
	DrawImageRotated(id ImageID, r Rect, px, py, degrees float64)

	// DrawText draws text with its baseline at y. For AlignLeft x is the left
	// edge, for AlignCenter it is the horizontal center.
	DrawText(text string, x, y float64, style TextStyle)
}

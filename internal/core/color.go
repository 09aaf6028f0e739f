package core

// Color represents a foreground color for a screen cell or a text run.
// Terminal hosts map it to ANSI 256-color codes; the window host maps it to RGBA.
type Color uint8

// Palette used by the game and its hosts.
const (
	ColorDefault Color = iota
	ColorWhite
	ColorGreen
	ColorBrightGreen
	ColorYellow
	ColorBrightYellow
	ColorOrange
	ColorRed
	ColorCyan
	ColorBlue
	ColorGray
)

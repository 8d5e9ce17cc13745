package core

// Color is a foreground color for a screen cell.
// Platforms map these to ANSI 256-color codes or RGBA values.
type Color uint8

// Palette used by the game.
const (
	ColorDefault Color = iota
	ColorGreen
	ColorYellow
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightWhite
	ColorGray
)

package core

// Color is the foreground colour of a screen cell.
// Platforms map it to ANSI 256-colour codes or RGBA.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorCyan
	ColorWhite
	ColorGray
	ColorOrange
	ColorStone  // floor tiles, near
	ColorShadow // floor tiles, far
	ColorMoss   // temple walls
)

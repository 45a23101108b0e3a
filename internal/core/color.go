package core

// Color represents a foreground/background pair for a screen cell.
// The platform maps each value to terminal colors.
type Color uint8

// Predefined colors for board elements.
const (
	ColorDefault Color = iota
	ColorTile          // Unresolved correct tile
	ColorTileDone      // Resolved tile
	ColorTileMissed    // Wrongly tapped or expired tile
	ColorTileBlank     // Incorrect (white) tile
	ColorRed
	ColorGreen
	ColorYellow
	ColorCyan
	ColorGray
	ColorBrightWhite
)

// String returns the color name, used in screenshots and tests.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorTile:
		return "tile"
	case ColorTileDone:
		return "tile-done"
	case ColorTileMissed:
		return "tile-missed"
	case ColorTileBlank:
		return "tile-blank"
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorYellow:
		return "yellow"
	case ColorCyan:
		return "cyan"
	case ColorGray:
		return "gray"
	case ColorBrightWhite:
		return "bright-white"
	default:
		return "unknown"
	}
}

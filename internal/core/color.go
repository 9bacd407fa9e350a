package core

// Color represents a foreground color for a screen cell or a drawn rectangle.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBlack
	ColorOrange
	ColorGray
)

// Roles used by the runner variants when handing rectangles to a renderer.
const (
	ColorPlayer      = ColorBlue
	ColorObstacle    = ColorRed
	ColorAirObstacle = ColorOrange
	ColorGround      = ColorWhite
	ColorDivider     = ColorGray
)

// String returns the color name.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorYellow:
		return "yellow"
	case ColorBlue:
		return "blue"
	case ColorMagenta:
		return "magenta"
	case ColorCyan:
		return "cyan"
	case ColorWhite:
		return "white"
	case ColorBlack:
		return "black"
	case ColorOrange:
		return "orange"
	case ColorGray:
		return "gray"
	default:
		return "unknown"
	}
}

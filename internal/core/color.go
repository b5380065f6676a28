package core

// Color is a palette entry for canvas drawing.
// Platforms map it to ANSI colors (terminal) or RGBA (window).
type Color uint8

// Palette used by the games.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorDarkGreen
	ColorYellow
	ColorBlue
	ColorWhite
	ColorGray
	ColorBrightWhite
)

// RGBA returns the 8-bit channels of the color as drawn in a pixel window.
func (c Color) RGBA() (r, g, b, a uint8) {
	switch c {
	case ColorBlack:
		return 0x00, 0x00, 0x00, 0xff
	case ColorRed:
		return 0xff, 0x00, 0x00, 0xff
	case ColorGreen:
		return 0x00, 0xff, 0x00, 0xff
	case ColorDarkGreen:
		return 0x00, 0x88, 0x00, 0xff
	case ColorYellow:
		return 0xff, 0xff, 0x00, 0xff
	case ColorBlue:
		return 0x00, 0x00, 0xff, 0xff
	case ColorWhite, ColorBrightWhite:
		return 0xff, 0xff, 0xff, 0xff
	case ColorGray:
		return 0x88, 0x88, 0x88, 0xff
	default:
		return 0xcc, 0xcc, 0xcc, 0xff
	}
}

package core

// Color represents a foreground color for a screen cell.
// Values map to ANSI 256-color codes in the terminal host and to RGBA in the
// window host.
type Color uint8

// Palette used by the runner.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorTeal
	ColorFirebrick
	ColorBlack
)

// RGBA returns the 8-bit channels for graphical hosts.
func (c Color) RGBA() (r, g, b, a uint8) {
	switch c {
	case ColorRed:
		return 0xff, 0x00, 0x00, 0xff
	case ColorGreen:
		return 0x00, 0x80, 0x00, 0xff
	case ColorYellow:
		return 0xff, 0xd7, 0x00, 0xff
	case ColorBlue:
		return 0x00, 0x00, 0xff, 0xff
	case ColorMagenta:
		return 0xff, 0x00, 0xff, 0xff
	case ColorCyan:
		return 0x00, 0xff, 0xff, 0xff
	case ColorWhite, ColorBrightWhite:
		return 0xff, 0xff, 0xff, 0xff
	case ColorBrightRed:
		return 0xff, 0x55, 0x55, 0xff
	case ColorOrange:
		return 0xff, 0xa5, 0x00, 0xff
	case ColorGray:
		return 0x44, 0x44, 0x44, 0xff
	case ColorTeal:
		return 0x00, 0x80, 0x80, 0xff
	case ColorFirebrick:
		return 0xb2, 0x22, 0x22, 0xff
	case ColorBlack, ColorDefault:
		return 0x00, 0x00, 0x00, 0xff
	default:
		return 0x00, 0x00, 0x00, 0xff
	}
}

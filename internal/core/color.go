package core

// Color is the foreground color of a screen cell.
type Color uint8

// Palette used by the simulation views. ColorDefault leaves the terminal's
// own foreground untouched.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorWhite
	ColorGray
)

// ANSI returns the ANSI 256-color code for c, or "" for ColorDefault and
// unknown values.
func (c Color) ANSI() string {
	switch c {
	case ColorRed:
		return "1"
	case ColorGreen:
		return "2"
	case ColorYellow:
		return "3"
	case ColorBlue:
		return "4"
	case ColorWhite:
		return "7"
	case ColorGray:
		return "245"
	default:
		return ""
	}
}

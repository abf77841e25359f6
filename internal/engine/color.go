package engine

// Color identifies one entry of the fixed piece palette.
// Every level offers the full palette; only shapes are tier-gated.
type Color uint8

// The eight piece colors.
const (
	ColorRed Color = iota
	ColorOrange
	ColorYellow
	ColorGreen
	ColorCyan
	ColorBlue
	ColorPurple
	ColorPink
)

// NumColors is the size of the palette.
const NumColors = 8

// String returns a human-readable name for the color.
func (c Color) String() string {
	switch c {
	case ColorRed:
		return "Red"
	case ColorOrange:
		return "Orange"
	case ColorYellow:
		return "Yellow"
	case ColorGreen:
		return "Green"
	case ColorCyan:
		return "Cyan"
	case ColorBlue:
		return "Blue"
	case ColorPurple:
		return "Purple"
	case ColorPink:
		return "Pink"
	default:
		return "Unknown"
	}
}

// Valid returns true if the color is one of the palette entries.
func (c Color) Valid() bool {
	return c < NumColors
}

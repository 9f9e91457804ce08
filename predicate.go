package bgremove

import "image/color"

const (
	// DefaultGrayTolerance bounds the pairwise channel spread of a
	// checkered-pattern pixel.
	DefaultGrayTolerance = 15
	// CheckeredLow and CheckeredHigh are the exclusive red-channel bounds of
	// the light and dark checker squares.
	CheckeredLow  = 100
	CheckeredHigh = 220

	// DefaultWhiteTolerance is how far below 255 a channel may fall and still
	// count as white.
	DefaultWhiteTolerance = 15
)

// Predicate reports whether a pixel belongs to the background.
type Predicate func(c color.NRGBA) bool

// CheckeredGray matches near-gray pixels (every channel pair closer than
// tolerance) whose red channel lies strictly between low and high.
func CheckeredGray(tolerance, low, high int) Predicate {
	return func(c color.NRGBA) bool {
		r, g, b := int(c.R), int(c.G), int(c.B)
		if absDiff(r, g) >= tolerance || absDiff(g, b) >= tolerance || absDiff(r, b) >= tolerance {
			return false
		}
		return r > low && r < high
	}
}

// NearWhite matches pixels whose red, green and blue channels are all at
// least 255-tolerance. Alpha is not considered.
func NearWhite(tolerance int) Predicate {
	floor := 255 - tolerance
	return func(c color.NRGBA) bool {
		return int(c.R) >= floor && int(c.G) >= floor && int(c.B) >= floor
	}
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}

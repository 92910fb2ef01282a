package text

import "math"

// Metrics holds font metrics at a specific size, in pixels.
type Metrics struct {
	// Ascent is the distance from the baseline to the top of the font (positive).
	Ascent float64

	// Descent is the distance from the baseline to the bottom of the font (positive, below baseline).
	Descent float64
}

// Pixels returns ascent and descent rounded to whole pixels.
func (m Metrics) Pixels() (ascent, descent int) {
	return int(math.Round(m.Ascent)), int(math.Round(m.Descent))
}

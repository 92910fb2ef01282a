package text

import "image"

// GlyphImage represents a rasterized glyph.
// This contains the coverage mask and its position relative to the pen.
type GlyphImage struct {
	// Mask is the coverage mask. Mask.Rect equals Bounds, so pixels are
	// addressed in pen-relative coordinates.
	Mask *image.Alpha

	// Bounds of the inked area relative to the glyph origin.
	// The origin is on the baseline at the left edge of the advance box;
	// Y grows downwards, so inked pixels above the baseline have negative Y.
	Bounds image.Rectangle

	// Advance width in pixels.
	Advance float64
}

// Width returns the inked width in pixels (bboxRight - bboxLeft).
func (g *GlyphImage) Width() int {
	return g.Bounds.Dx()
}

// Empty reports whether the glyph draws nothing (for example a space).
func (g *GlyphImage) Empty() bool {
	return g == nil || g.Bounds.Empty()
}

// emptyGlyph returns a glyph with no ink and the given advance.
func emptyGlyph(advance float64) *GlyphImage {
	return &GlyphImage{
		Mask:    image.NewAlpha(image.Rectangle{}),
		Advance: advance,
	}
}

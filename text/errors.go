package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrGlyphNotFound is returned when the font has no glyph for a rune.
	ErrGlyphNotFound = errors.New("text: glyph not found")

	// ErrUnsupportedGlyph is returned for glyphs that carry no outline
	// (bitmap or SVG glyphs).
	ErrUnsupportedGlyph = errors.New("text: glyph has no outline")

	// ErrUnknownRasterizer is returned when no rasterizer is registered
	// under the requested name.
	ErrUnknownRasterizer = errors.New("text: unknown rasterizer")

	// ErrInvalidSize is returned for a non-positive font size.
	ErrInvalidSize = errors.New("text: font size must be positive")
)

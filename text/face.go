package text

// Face is a font instance at a fixed size.
// It provides the two capabilities the atlas builder consumes:
// shared font metrics and per-rune coverage masks.
//
// Face is not safe for concurrent use.
type Face interface {
	// Name returns the font family name, or "" if unknown.
	Name() string

	// Size returns the size in points the face was opened at.
	Size() float64

	// Metrics returns the font-wide metrics at the face size.
	Metrics() Metrics

	// Glyph rasterizes the glyph for r.
	// It returns ErrGlyphNotFound when the font does not map r.
	Glyph(r rune) (*GlyphImage, error)

	// Close releases resources held by the face.
	Close() error
}

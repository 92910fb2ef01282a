package fontatlas

import (
	"errors"
	"fmt"
)

// Sentinel errors for fontatlas package.
var (
	// ErrInvalidGeometry is returned when the cell geometry or codepoint
	// range cannot produce a layout.
	ErrInvalidGeometry = errors.New("fontatlas: invalid geometry")

	// ErrFontNotFound is returned when the font file does not exist.
	ErrFontNotFound = errors.New("fontatlas: font file not found")

	// ErrFontLoad is returned when the font cannot be parsed or opened
	// at the requested size.
	ErrFontLoad = errors.New("fontatlas: failed to load font")
)

// ConfigError represents a configuration validation error.
// It matches ErrInvalidGeometry with errors.Is.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return "fontatlas: invalid config." + e.Field + ": " + e.Reason
}

// Unwrap returns ErrInvalidGeometry.
func (e *ConfigError) Unwrap() error {
	return ErrInvalidGeometry
}

// GlyphError records a codepoint that could not be rasterized.
// Glyph errors never abort a run; the affected cell stays blank.
type GlyphError struct {
	Index     int
	Codepoint rune
	Err       error
}

func (e *GlyphError) Error() string {
	return fmt.Sprintf("fontatlas: glyph %d (%U): %v", e.Index, e.Codepoint, e.Err)
}

// Unwrap returns the underlying rasterizer error.
func (e *GlyphError) Unwrap() error {
	return e.Err
}

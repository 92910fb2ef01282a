package fontatlas

import (
	"strconv"
	"unicode"

	"github.com/gogpu/fontatlas/text"
)

// Default configuration values.
const (
	DefaultCellSize  = 16
	DefaultPadding   = 1
	DefaultFirstChar = 32
	DefaultLastChar  = 126
)

// Config holds the planner and placer inputs for one atlas.
type Config struct {
	// CellWidth and CellHeight are the inner (unpadded) cell size in pixels.
	CellWidth  int
	CellHeight int

	// FontSize is the size in points. Zero means CellHeight.
	FontSize float64

	// FirstChar and LastChar bound the leading contiguous range (inclusive).
	FirstChar rune
	LastChar  rune

	// IncludeBoxDrawing appends U+2500..U+257F after the leading range.
	IncludeBoxDrawing bool

	// Padding is the transparent border around every cell, in pixels.
	Padding int

	// Tuning holds the empirical placement offsets.
	Tuning Tuning

	// Rasterizer names the text backend. Empty means text.DefaultRasterizer.
	Rasterizer string
}

// Tuning holds the vertical corrections applied on top of the shared
// baseline. They are empirical values chosen for one font family and
// may need adjusting for others.
type Tuning struct {
	// GlyphOffsetY is added to every glyph's draw origin.
	// The default of -2 keeps descenders clear of the cell bottom.
	GlyphOffsetY int

	// UnderscoreOffsetY places the synthetic underscore bar relative to
	// the baseline, before GlyphOffsetY is applied.
	UnderscoreOffsetY int

	// UnderscoreThickness is the height of the underscore bar in pixels.
	UnderscoreThickness int
}

// DefaultTuning returns the default placement offsets.
func DefaultTuning() Tuning {
	return Tuning{
		GlyphOffsetY:        -2,
		UnderscoreOffsetY:   1,
		UnderscoreThickness: 2,
	}
}

// DefaultConfig returns the default configuration: 16x16 cells at 16pt,
// printable ASCII followed by the box drawing block, 1px padding.
func DefaultConfig() Config {
	return Config{
		CellWidth:         DefaultCellSize,
		CellHeight:        DefaultCellSize,
		FirstChar:         DefaultFirstChar,
		LastChar:          DefaultLastChar,
		IncludeBoxDrawing: true,
		Padding:           DefaultPadding,
		Tuning:            DefaultTuning(),
		Rasterizer:        text.DefaultRasterizer,
	}
}

// EffectiveFontSize returns FontSize, or CellHeight when FontSize is zero.
func (c *Config) EffectiveFontSize() float64 {
	if c.FontSize == 0 {
		return float64(c.CellHeight)
	}
	return c.FontSize
}

// Validate checks if the configuration is valid.
// Every error it returns matches ErrInvalidGeometry.
func (c *Config) Validate() error {
	if c.CellWidth <= 0 {
		return &ConfigError{Field: "CellWidth", Reason: "must be positive, got " + strconv.Itoa(c.CellWidth)}
	}
	if c.CellHeight <= 0 {
		return &ConfigError{Field: "CellHeight", Reason: "must be positive, got " + strconv.Itoa(c.CellHeight)}
	}
	if c.Padding < 0 {
		return &ConfigError{Field: "Padding", Reason: "must be non-negative"}
	}
	if c.FontSize < 0 {
		return &ConfigError{Field: "FontSize", Reason: "must be non-negative"}
	}
	if c.FirstChar < 0 {
		return &ConfigError{Field: "FirstChar", Reason: "must be non-negative"}
	}
	if c.LastChar > unicode.MaxRune {
		return &ConfigError{Field: "LastChar", Reason: "beyond U+10FFFF"}
	}
	if c.FirstChar > c.LastChar {
		return &ConfigError{Field: "FirstChar", Reason: "must not exceed LastChar"}
	}
	if c.IncludeBoxDrawing && c.LastChar >= BoxDrawingFirst {
		return &ConfigError{Field: "LastChar", Reason: "must be below U+2500 when box drawing is included"}
	}
	if c.Tuning.UnderscoreThickness < 0 {
		return &ConfigError{Field: "Tuning.UnderscoreThickness", Reason: "must be non-negative"}
	}
	return nil
}

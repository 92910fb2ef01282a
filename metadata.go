package fontatlas

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/runenames"
)

// HeaderSuffix replaces the image extension to form the metadata path.
const HeaderSuffix = "_metadata.h"

// HeaderPath returns the metadata header path for an atlas image path.
func HeaderPath(imagePath string) string {
	return strings.TrimSuffix(imagePath, filepath.Ext(imagePath)) + HeaderSuffix
}

// Metadata is the summary a renderer compiles against.
// The constant names written by WriteHeader are a stable contract.
type Metadata struct {
	AtlasWidth  int
	AtlasHeight int

	GlyphWidth  int
	GlyphHeight int
	Padding     int

	PaddedCellWidth  int
	PaddedCellHeight int

	FirstChar rune
	LastChar  rune

	GlyphsPerRow int
	CharCount    int

	IncludesBoxDrawing bool

	// Source is the font file base name recorded in the header comment.
	Source string
}

// NewMetadata derives the metadata of a layout.
func NewMetadata(l *Layout, source string) Metadata {
	g := l.Geometry
	return Metadata{
		AtlasWidth:         l.Width,
		AtlasHeight:        l.Height,
		GlyphWidth:         g.CellWidth,
		GlyphHeight:        g.CellHeight,
		Padding:            g.Padding,
		PaddedCellWidth:    g.PaddedCellWidth,
		PaddedCellHeight:   g.PaddedCellHeight,
		FirstChar:          l.FirstChar,
		LastChar:           l.LastChar,
		GlyphsPerRow:       g.GlyphsPerRow,
		CharCount:          l.Len(),
		IncludesBoxDrawing: l.BoxDrawing,
		Source:             filepath.Base(source),
	}
}

// Header returns the C header text.
func (m Metadata) Header() []byte {
	var buf bytes.Buffer
	_ = m.WriteHeader(&buf)
	return buf.Bytes()
}

// WriteHeader writes the metadata as a C header of #define constants.
func (m Metadata) WriteHeader(w io.Writer) error {
	leading := int(m.LastChar-m.FirstChar) + 1
	box := 0
	if m.IncludesBoxDrawing {
		box = 1
	}

	var b bytes.Buffer
	fmt.Fprintf(&b, "// Auto-generated font atlas metadata\n")
	fmt.Fprintf(&b, "// Generated from: %s\n\n", m.Source)
	fmt.Fprintf(&b, "#ifndef FONT_ATLAS_METADATA_H\n#define FONT_ATLAS_METADATA_H\n\n")

	defines := []struct {
		name  string
		value int
	}{
		{"FONT_ATLAS_WIDTH", m.AtlasWidth},
		{"FONT_ATLAS_HEIGHT", m.AtlasHeight},
		{"FONT_GLYPH_WIDTH", m.GlyphWidth},
		{"FONT_GLYPH_HEIGHT", m.GlyphHeight},
		{"FONT_ATLAS_PADDING", m.Padding},
		{"FONT_PADDED_CELL_WIDTH", m.PaddedCellWidth},
		{"FONT_PADDED_CELL_HEIGHT", m.PaddedCellHeight},
		{"FONT_FIRST_CHAR", int(m.FirstChar)},
		{"FONT_LAST_CHAR", int(m.LastChar)},
		{"FONT_GLYPHS_PER_ROW", m.GlyphsPerRow},
		{"FONT_CHAR_COUNT", m.CharCount},
		{"FONT_INCLUDES_BOX_DRAWING", box},
	}
	for _, d := range defines {
		fmt.Fprintf(&b, "#define %s %d\n", d.name, d.value)
	}

	fmt.Fprintf(&b, "\n// Character map: maps Unicode codepoint to atlas index\n")
	fmt.Fprintf(&b, "// First %d entries are ASCII %d-%d\n", leading, m.FirstChar, m.LastChar)
	fmt.Fprintf(&b, "//   index %s\n", blockLine(0, m.FirstChar, m.LastChar))
	if m.IncludesBoxDrawing {
		fmt.Fprintf(&b, "// Remaining entries are box drawing U+%04X-U+%04X\n", BoxDrawingFirst, BoxDrawingLast)
		fmt.Fprintf(&b, "//   index %s\n", blockLine(leading, BoxDrawingFirst, BoxDrawingLast))
	}
	fmt.Fprintf(&b, "// Cell of index i: column i %% FONT_GLYPHS_PER_ROW, row i / FONT_GLYPHS_PER_ROW\n")
	fmt.Fprintf(&b, "// Glyph origin: (column * FONT_PADDED_CELL_WIDTH + FONT_ATLAS_PADDING, row * FONT_PADDED_CELL_HEIGHT + FONT_ATLAS_PADDING)\n")
	fmt.Fprintf(&b, "// Note: Atlas uses padded cells (%dx%d) with %dpx padding\n\n",
		m.PaddedCellWidth, m.PaddedCellHeight, m.Padding)
	fmt.Fprintf(&b, "#endif // FONT_ATLAS_METADATA_H\n")

	_, err := w.Write(b.Bytes())
	return err
}

// blockLine describes one contiguous block of the codepoint set.
func blockLine(start int, first, last rune) string {
	end := start + int(last-first)
	return fmt.Sprintf("%d-%d: U+%04X %s .. U+%04X %s",
		start, end, first, glyphName(first), last, glyphName(last))
}

// glyphName returns the Unicode character name of r, or "<unnamed>".
func glyphName(r rune) string {
	if name := runenames.Name(r); name != "" {
		return name
	}
	return "<unnamed>"
}

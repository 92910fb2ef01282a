package fontatlas

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gogpu/fontatlas/texture"
)

// ManifestSuffix replaces the image extension to form the default manifest path.
const ManifestSuffix = "_manifest.json"

// ManifestPath returns the default manifest path for an atlas image path.
func ManifestPath(imagePath string) string {
	return strings.TrimSuffix(HeaderPath(imagePath), HeaderSuffix) + ManifestSuffix
}

// Manifest is a JSON description of an atlas with one entry per glyph.
type Manifest struct {
	Source     string  `json:"source"`
	Rasterizer string  `json:"rasterizer,omitempty"`
	FontSize   float64 `json:"fontSize"`

	Atlas   ManifestSize    `json:"atlas"`
	Cell    ManifestCell    `json:"cell"`
	Metrics ManifestMetrics `json:"metrics"`
	Texture ManifestTexture `json:"texture"`

	GlyphsPerRow int  `json:"glyphsPerRow"`
	Rows         int  `json:"rows"`
	FirstChar    rune `json:"firstChar"`
	LastChar     rune `json:"lastChar"`
	BoxDrawing   bool `json:"boxDrawing"`

	Glyphs []ManifestGlyph `json:"glyphs"`
}

// ManifestSize is a width and height in pixels.
type ManifestSize struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// ManifestCell describes the cell geometry.
type ManifestCell struct {
	Width        int `json:"width"`
	Height       int `json:"height"`
	Padding      int `json:"padding"`
	PaddedWidth  int `json:"paddedWidth"`
	PaddedHeight int `json:"paddedHeight"`
}

// ManifestMetrics records the shared vertical placement.
type ManifestMetrics struct {
	Ascent          int `json:"ascent"`
	Descent         int `json:"descent"`
	VerticalPadding int `json:"verticalPadding"`
}

// ManifestTexture is the GPU upload layout of the atlas image.
type ManifestTexture struct {
	Format             string `json:"format"`
	Width              uint32 `json:"width"`
	Height             uint32 `json:"height"`
	BytesPerRow        uint32 `json:"bytesPerRow"`
	RowsPerImage       uint32 `json:"rowsPerImage"`
	AlignedBytesPerRow int    `json:"alignedBytesPerRow"`
	SizeBytes          int    `json:"sizeBytes"`
}

// ManifestGlyph locates one glyph.
type ManifestGlyph struct {
	Index     int    `json:"index"`
	Codepoint string `json:"codepoint"`
	Name      string `json:"name"`
	Row       int    `json:"row"`
	Col       int    `json:"col"`
	X         int    `json:"x"`
	Y         int    `json:"y"`
	PaddedX   int    `json:"paddedX"`
	PaddedY   int    `json:"paddedY"`
	Rendered  bool   `json:"rendered"`
	Error     string `json:"error,omitempty"`
}

// NewManifest describes a rendered atlas.
func NewManifest(a *Atlas, source, rasterizer string) (*Manifest, error) {
	l := a.Layout
	g := l.Geometry

	desc, err := texture.Describe(l.Width, l.Height, texture.FormatR8)
	if err != nil {
		return nil, fmt.Errorf("fontatlas: describe texture: %w", err)
	}

	skipped := make(map[int]error, len(a.Skipped))
	for _, e := range a.Skipped {
		skipped[e.Index] = e.Err
	}

	m := &Manifest{
		Source:     source,
		Rasterizer: rasterizer,
		FontSize:   l.FontSize,
		Atlas:      ManifestSize{Width: l.Width, Height: l.Height},
		Cell: ManifestCell{
			Width:        g.CellWidth,
			Height:       g.CellHeight,
			Padding:      g.Padding,
			PaddedWidth:  g.PaddedCellWidth,
			PaddedHeight: g.PaddedCellHeight,
		},
		Metrics: ManifestMetrics{
			Ascent:          a.Ascent,
			Descent:         a.Descent,
			VerticalPadding: a.VerticalPadding,
		},
		Texture: ManifestTexture{
			Format:             desc.Format.WGSLName(),
			Width:              desc.Size.Width,
			Height:             desc.Size.Height,
			BytesPerRow:        desc.Layout.BytesPerRow,
			RowsPerImage:       desc.Layout.RowsPerImage,
			AlignedBytesPerRow: desc.AlignedBytesPerRow(),
			SizeBytes:          desc.SizeBytes(),
		},
		GlyphsPerRow: g.GlyphsPerRow,
		Rows:         g.Rows,
		FirstChar:    l.FirstChar,
		LastChar:     l.LastChar,
		BoxDrawing:   l.BoxDrawing,
		Glyphs:       make([]ManifestGlyph, l.Len()),
	}

	for i := range l.Codepoints {
		c := l.Cell(i)
		mg := ManifestGlyph{
			Index:     i,
			Codepoint: runeLabel(c.Codepoint),
			Name:      glyphName(c.Codepoint),
			Row:       c.Row,
			Col:       c.Col,
			X:         c.Inner.Min.X,
			Y:         c.Inner.Min.Y,
			PaddedX:   c.Padded.Min.X,
			PaddedY:   c.Padded.Min.Y,
			Rendered:  true,
		}
		if err, ok := skipped[i]; ok {
			mg.Rendered = false
			mg.Error = err.Error()
		}
		m.Glyphs[i] = mg
	}
	return m, nil
}

// Marshal encodes the manifest as indented JSON with a trailing newline.
func (m *Manifest) Marshal() ([]byte, error) {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("fontatlas: encode manifest: %w", err)
	}
	return append(data, '\n'), nil
}

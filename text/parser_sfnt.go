package text

import (
	"bytes"
	"fmt"

	geompath "seehuhn.de/go/geom/path"
	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/cmap"
)

// sfntRasterizer implements Rasterizer using seehuhn.de/go/sfnt for font
// parsing and golang.org/x/image/vector for scan conversion.
type sfntRasterizer struct{}

// Open implements Rasterizer.Open.
func (sfntRasterizer) Open(data []byte, size float64) (Face, error) {
	f, err := sfnt.Read(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	if f.Outlines == nil {
		return nil, fmt.Errorf("text: failed to parse font: no glyph outlines")
	}
	if f.UnitsPerEm == 0 {
		return nil, fmt.Errorf("text: failed to parse font: zero units per em")
	}

	subtable, err := f.CMapTable.GetBest()
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}

	return &sfntFace{
		font:  f,
		cmap:  subtable,
		size:  size,
		scale: size / float64(f.UnitsPerEm),
	}, nil
}

// sfntFace implements Face on top of a seehuhn sfnt font.
type sfntFace struct {
	font  *sfnt.Font
	cmap  cmap.Subtable
	size  float64
	scale float64
}

// Name implements Face.Name.
func (f *sfntFace) Name() string {
	return f.font.FamilyName
}

// Size implements Face.Size.
func (f *sfntFace) Size() float64 {
	return f.size
}

// Metrics implements Face.Metrics.
func (f *sfntFace) Metrics() Metrics {
	return Metrics{
		Ascent:  float64(f.font.Ascent) * f.scale,
		Descent: -float64(f.font.Descent) * f.scale,
	}
}

// Glyph implements Face.Glyph.
func (f *sfntFace) Glyph(r rune) (*GlyphImage, error) {
	gid := f.cmap.Lookup(r)
	if gid == 0 {
		return nil, fmt.Errorf("%w: %U", ErrGlyphNotFound, r)
	}

	out := &GlyphOutline{
		Advance: float32(f.font.GlyphWidthPDF(gid) * f.size / 1000),
	}

	scale := f.scale
	pt := func(x, y float64) OutlinePoint {
		// Font units grow upwards, pixels grow downwards.
		return OutlinePoint{X: float32(x * scale), Y: float32(-y * scale)}
	}

	for cmd, points := range f.font.Outlines.Path(gid) {
		var seg OutlineSegment
		switch cmd {
		case geompath.CmdMoveTo:
			seg.Op = OutlineOpMoveTo
		case geompath.CmdLineTo:
			seg.Op = OutlineOpLineTo
		case geompath.CmdQuadTo:
			seg.Op = OutlineOpQuadTo
		case geompath.CmdCubeTo:
			seg.Op = OutlineOpCubicTo
		default:
			// Contours are closed implicitly by Rasterize.
			continue
		}
		for i := 0; i < seg.Op.numPoints(); i++ {
			seg.Points[i] = pt(points[i].X, points[i].Y)
		}
		out.Segments = append(out.Segments, seg)
	}

	return out.Rasterize(), nil
}

// Close implements Face.Close.
func (f *sfntFace) Close() error {
	f.font = nil
	return nil
}

package text

import (
	"bytes"
	"fmt"
	"math"

	"github.com/go-text/typesetting/font"
	fontapi "github.com/go-text/typesetting/font/opentype"
)

// gotextRasterizer implements Rasterizer using go-text/typesetting for
// font parsing and golang.org/x/image/vector for scan conversion.
type gotextRasterizer struct{}

// Open implements Rasterizer.Open.
func (gotextRasterizer) Open(data []byte, size float64) (Face, error) {
	// ParseTTF returns a *Face which embeds the read-only *Font.
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}

	upem := float64(face.Upem())
	if upem == 0 {
		return nil, fmt.Errorf("text: failed to parse font: zero units per em")
	}

	return &gotextFace{
		face:  face,
		size:  size,
		scale: float32(size / upem),
	}, nil
}

// gotextFace implements Face on top of a go-text font face.
type gotextFace struct {
	face  *font.Face
	size  float64
	scale float32
}

// Name implements Face.Name.
// go-text exposes family names only through its font loader, so the
// name is left to the caller.
func (f *gotextFace) Name() string {
	return ""
}

// Size implements Face.Size.
func (f *gotextFace) Size() float64 {
	return f.size
}

// Metrics implements Face.Metrics.
func (f *gotextFace) Metrics() Metrics {
	ext, ok := f.face.FontHExtents()
	if !ok {
		return Metrics{}
	}
	scale := float64(f.scale)
	return Metrics{
		Ascent:  math.Ceil(float64(ext.Ascender) * scale),
		Descent: math.Ceil(-float64(ext.Descender) * scale),
	}
}

// Glyph implements Face.Glyph.
func (f *gotextFace) Glyph(r rune) (*GlyphImage, error) {
	gid, ok := f.face.NominalGlyph(r)
	if !ok || gid == 0 {
		return nil, fmt.Errorf("%w: %U", ErrGlyphNotFound, r)
	}

	outline, ok := f.face.GlyphData(gid).(font.GlyphOutline)
	if !ok {
		return nil, fmt.Errorf("%w: %U", ErrUnsupportedGlyph, r)
	}

	out := &GlyphOutline{
		Segments: make([]OutlineSegment, 0, len(outline.Segments)),
		Advance:  f.face.HorizontalAdvance(gid) * f.scale,
	}

	for _, seg := range outline.Segments {
		var outSeg OutlineSegment
		switch seg.Op {
		case fontapi.SegmentOpMoveTo:
			outSeg.Op = OutlineOpMoveTo
		case fontapi.SegmentOpLineTo:
			outSeg.Op = OutlineOpLineTo
		case fontapi.SegmentOpQuadTo:
			outSeg.Op = OutlineOpQuadTo
		case fontapi.SegmentOpCubeTo:
			outSeg.Op = OutlineOpCubicTo
		default:
			continue
		}
		for i := 0; i < outSeg.Op.numPoints(); i++ {
			// Font units grow upwards, pixels grow downwards.
			outSeg.Points[i] = OutlinePoint{
				X: seg.Args[i].X * f.scale,
				Y: -seg.Args[i].Y * f.scale,
			}
		}
		out.Segments = append(out.Segments, outSeg)
	}

	return out.Rasterize(), nil
}

// Close implements Face.Close.
func (f *gotextFace) Close() error {
	f.face = nil
	return nil
}

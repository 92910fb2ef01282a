package text

import (
	"image"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// OutlinePoint represents a point in a glyph outline.
// Coordinates are in pixels relative to the glyph origin, Y pointing down.
type OutlinePoint struct {
	X, Y float32
}

// OutlineSegment represents a segment of a glyph outline.
type OutlineSegment struct {
	// Op is the segment operation type.
	Op OutlineOp

	// Points contains the control and end points for this segment.
	// - MoveTo: Points[0] is the target point
	// - LineTo: Points[0] is the target point
	// - QuadTo: Points[0] is control, Points[1] is target
	// - CubicTo: Points[0], Points[1] are controls, Points[2] is target
	Points [3]OutlinePoint
}

// OutlineOp is the type of path operation.
type OutlineOp uint8

const (
	// OutlineOpMoveTo moves to a new point without drawing.
	OutlineOpMoveTo OutlineOp = iota

	// OutlineOpLineTo draws a line to the target point.
	OutlineOpLineTo

	// OutlineOpQuadTo draws a quadratic bezier curve.
	OutlineOpQuadTo

	// OutlineOpCubicTo draws a cubic bezier curve.
	OutlineOpCubicTo
)

// String returns a string representation of the operation.
func (op OutlineOp) String() string {
	switch op {
	case OutlineOpMoveTo:
		return "MoveTo"
	case OutlineOpLineTo:
		return "LineTo"
	case OutlineOpQuadTo:
		return "QuadTo"
	case OutlineOpCubicTo:
		return "CubicTo"
	default:
		return "Unknown"
	}
}

// numPoints returns how many entries of Points the operation uses.
func (op OutlineOp) numPoints() int {
	switch op {
	case OutlineOpQuadTo:
		return 2
	case OutlineOpCubicTo:
		return 3
	default:
		return 1
	}
}

// GlyphOutline represents the vector outline of a glyph, already scaled
// to pixels. Contours are implicitly closed.
type GlyphOutline struct {
	Segments []OutlineSegment

	// Advance is the horizontal advance width of the glyph.
	Advance float32
}

// Rasterize scan-converts the outline into a coverage mask.
// Bounds are the outline's control box rounded outwards to whole pixels.
func (o *GlyphOutline) Rasterize() *GlyphImage {
	if len(o.Segments) == 0 {
		return emptyGlyph(float64(o.Advance))
	}

	minX, minY := float32(math.MaxFloat32), float32(math.MaxFloat32)
	maxX, maxY := float32(-math.MaxFloat32), float32(-math.MaxFloat32)
	for _, seg := range o.Segments {
		for _, p := range seg.Points[:seg.Op.numPoints()] {
			minX = min(minX, p.X)
			minY = min(minY, p.Y)
			maxX = max(maxX, p.X)
			maxY = max(maxY, p.Y)
		}
	}

	bounds := image.Rect(
		int(math.Floor(float64(minX))),
		int(math.Floor(float64(minY))),
		int(math.Ceil(float64(maxX))),
		int(math.Ceil(float64(maxY))),
	)
	if bounds.Empty() {
		return emptyGlyph(float64(o.Advance))
	}

	dx, dy := float32(bounds.Min.X), float32(bounds.Min.Y)
	z := vector.NewRasterizer(bounds.Dx(), bounds.Dy())
	z.DrawOp = draw.Src

	open := false
	for _, seg := range o.Segments {
		p := seg.Points
		switch seg.Op {
		case OutlineOpMoveTo:
			if open {
				z.ClosePath()
			}
			z.MoveTo(p[0].X-dx, p[0].Y-dy)
			open = true
		case OutlineOpLineTo:
			z.LineTo(p[0].X-dx, p[0].Y-dy)
		case OutlineOpQuadTo:
			z.QuadTo(p[0].X-dx, p[0].Y-dy, p[1].X-dx, p[1].Y-dy)
		case OutlineOpCubicTo:
			z.CubeTo(p[0].X-dx, p[0].Y-dy, p[1].X-dx, p[1].Y-dy, p[2].X-dx, p[2].Y-dy)
		}
	}
	if open {
		z.ClosePath()
	}

	mask := image.NewAlpha(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	mask.Rect = bounds

	return &GlyphImage{
		Mask:    mask,
		Bounds:  bounds,
		Advance: float64(o.Advance),
	}
}

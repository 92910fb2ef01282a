package fontatlas

import (
	"fmt"
	"image"
	"log/slog"

	"golang.org/x/image/draw"

	"github.com/gogpu/fontatlas/text"
)

// GlyphSource provides what the placer needs from a font: shared metrics
// and per-rune coverage masks. text.Face implements it.
type GlyphSource interface {
	Metrics() text.Metrics
	Glyph(r rune) (*text.GlyphImage, error)
}

// Atlas is a rendered glyph atlas.
type Atlas struct {
	Layout *Layout

	// Image is the coverage canvas, Layout.Width x Layout.Height.
	Image *image.Alpha

	// Ascent and Descent are the shared font metrics in whole pixels.
	Ascent  int
	Descent int

	// VerticalPadding centers ascent+descent in the cell height.
	VerticalPadding int

	// Skipped lists the glyphs that could not be rasterized; their cells
	// are left blank.
	Skipped []*GlyphError
}

// Rendered reports whether the glyph at index i was drawn.
func (a *Atlas) Rendered(i int) bool {
	for _, e := range a.Skipped {
		if e.Index == i {
			return false
		}
	}
	return true
}

// Render rasterizes every codepoint of layout into a fresh canvas.
//
// Glyph failures are recorded in Atlas.Skipped and logged; they never
// abort the pass.
func Render(layout *Layout, src GlyphSource, tuning Tuning) *Atlas {
	ascent, descent := src.Metrics().Pixels()
	g := layout.Geometry

	a := &Atlas{
		Layout:          layout,
		Image:           image.NewAlpha(image.Rect(0, 0, layout.Width, layout.Height)),
		Ascent:          ascent,
		Descent:         descent,
		VerticalPadding: floorDiv(g.CellHeight-(ascent+descent), 2),
	}

	log := Logger()
	log.Info("rendering glyphs",
		slog.Int("count", layout.Len()),
		slog.Int("ascent", ascent),
		slog.Int("descent", descent))

	for i, r := range layout.Codepoints {
		cell := layout.Cell(i)
		if r == '_' {
			a.drawUnderscore(cell, tuning)
			continue
		}
		if err := a.drawGlyph(cell, src, tuning); err != nil {
			gerr := &GlyphError{Index: i, Codepoint: r, Err: err}
			a.Skipped = append(a.Skipped, gerr)
			log.Warn("could not render glyph",
				slog.Int("index", i),
				slog.String("codepoint", runeLabel(r)),
				slog.Any("err", err))
		}
	}
	return a
}

// drawUnderscore paints a full-width bar just below the shared baseline
// instead of the font's own underscore.
func (a *Atlas) drawUnderscore(cell Cell, tuning Tuning) {
	y := cell.Inner.Min.Y + a.VerticalPadding + a.Ascent + tuning.UnderscoreOffsetY + tuning.GlyphOffsetY
	bar := image.Rect(cell.Inner.Min.X, y, cell.Inner.Max.X, y+tuning.UnderscoreThickness)
	bar = bar.Intersect(cell.Padded)
	draw.Draw(a.Image, bar, image.Opaque, image.Point{}, draw.Src)

	Logger().Debug("placed underscore bar", slog.Int("index", cell.Index), slog.Int("y", y))
}

// drawGlyph centers the glyph's ink horizontally in the inner cell and
// puts it on the shared baseline. Drawing is clipped to the padded cell.
func (a *Atlas) drawGlyph(cell Cell, src GlyphSource, tuning Tuning) error {
	glyph, err := src.Glyph(cell.Codepoint)
	if err != nil {
		return err
	}
	if glyph.Empty() {
		return nil
	}

	offsetX := floorDiv(cell.Inner.Dx()-glyph.Width(), 2)
	pen := image.Pt(
		cell.Inner.Min.X+offsetX,
		cell.Inner.Min.Y+a.VerticalPadding+tuning.GlyphOffsetY+a.Ascent,
	)

	dst := glyph.Bounds.Add(pen).Intersect(cell.Padded)
	if dst.Empty() {
		return nil
	}
	draw.DrawMask(a.Image, dst, image.Opaque, image.Point{}, glyph.Mask, dst.Min.Sub(pen), draw.Over)

	Logger().Debug("placed glyph",
		slog.Int("index", cell.Index),
		slog.String("codepoint", runeLabel(cell.Codepoint)),
		slog.Int("x", pen.X),
		slog.Int("baseline", pen.Y))
	return nil
}

// floorDiv divides rounding towards negative infinity. b must be positive.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}

// runeLabel formats r as U+XXXX for logs.
func runeLabel(r rune) string {
	return fmt.Sprintf("%U", r)
}

package fontatlas

import (
	"errors"
	"image"

	"github.com/gogpu/fontatlas/text"
)

var errFakeGlyph = errors.New("fake: glyph unavailable")

// fakeBox is the inked box of a fake glyph, baseline-relative.
type fakeBox struct {
	w, h int
	// dy moves the box down from the baseline (descenders).
	dy int
}

// fakeSource returns solid rectangles so placement can be checked
// pixel by pixel.
type fakeSource struct {
	ascent, descent float64

	// boxes overrides the default box per rune.
	boxes map[rune]fakeBox
	// fail lists runes that return errFakeGlyph.
	fail map[rune]bool

	calls map[rune]int
}

func newFakeSource(ascent, descent float64) *fakeSource {
	return &fakeSource{
		ascent:  ascent,
		descent: descent,
		boxes:   map[rune]fakeBox{},
		fail:    map[rune]bool{},
		calls:   map[rune]int{},
	}
}

func (f *fakeSource) Metrics() text.Metrics {
	return text.Metrics{Ascent: f.ascent, Descent: f.descent}
}

func (f *fakeSource) Glyph(r rune) (*text.GlyphImage, error) {
	f.calls[r]++
	if f.fail[r] {
		return nil, errFakeGlyph
	}
	if r == ' ' {
		return &text.GlyphImage{Mask: image.NewAlpha(image.Rectangle{})}, nil
	}
	box, ok := f.boxes[r]
	if !ok {
		box = fakeBox{w: 6, h: 8}
	}
	bounds := image.Rect(1, -box.h+box.dy, 1+box.w, box.dy)
	mask := image.NewAlpha(bounds)
	for i := range mask.Pix {
		mask.Pix[i] = 0xff
	}
	return &text.GlyphImage{Mask: mask, Bounds: bounds, Advance: float64(box.w + 2)}, nil
}

package text

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// ximageRasterizer implements Rasterizer using golang.org/x/image/font/opentype.
type ximageRasterizer struct{}

// Open implements Rasterizer.Open.
func (ximageRasterizer) Open(data []byte, size float64) (Face, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}

	otFace, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("text: failed to create face: %w", err)
	}

	return &ximageFace{font: f, face: otFace, size: size}, nil
}

// ximageFace implements Face on top of an opentype face.
type ximageFace struct {
	font *opentype.Font
	face font.Face
	size float64
	buf  sfnt.Buffer
}

// Name implements Face.Name.
func (f *ximageFace) Name() string {
	if name, err := f.font.Name(&f.buf, sfnt.NameIDFamily); err == nil && name != "" {
		return name
	}
	if name, err := f.font.Name(&f.buf, sfnt.NameIDFull); err == nil {
		return name
	}
	return ""
}

// Size implements Face.Size.
func (f *ximageFace) Size() float64 {
	return f.size
}

// Metrics implements Face.Metrics.
func (f *ximageFace) Metrics() Metrics {
	m := f.face.Metrics()
	return Metrics{
		Ascent:  fixedToFloat64(m.Ascent),
		Descent: fixedToFloat64(m.Descent),
	}
}

// Glyph implements Face.Glyph.
func (f *ximageFace) Glyph(r rune) (*GlyphImage, error) {
	idx, err := f.font.GlyphIndex(&f.buf, r)
	if err != nil {
		return nil, fmt.Errorf("text: glyph index for %U: %w", r, err)
	}
	if idx == 0 {
		return nil, fmt.Errorf("%w: %U", ErrGlyphNotFound, r)
	}

	dr, mask, maskp, advance, ok := f.face.Glyph(fixed.Point26_6{}, r)
	if !ok {
		return nil, fmt.Errorf("%w: %U", ErrGlyphNotFound, r)
	}
	if dr.Empty() {
		return emptyGlyph(fixedToFloat64(advance)), nil
	}

	// The face reuses its mask between calls, so take a copy.
	alpha := image.NewAlpha(dr)
	draw.Draw(alpha, dr, mask, maskp, draw.Src)

	return &GlyphImage{
		Mask:    alpha,
		Bounds:  dr,
		Advance: fixedToFloat64(advance),
	}, nil
}

// Close implements Face.Close.
func (f *ximageFace) Close() error {
	return f.face.Close()
}

// fixedToFloat64 converts fixed.Int26_6 to float64.
func fixedToFloat64(x fixed.Int26_6) float64 {
	return float64(x) / 64.0
}

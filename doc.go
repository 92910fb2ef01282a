// Package fontatlas converts a scalable font into a fixed-grid glyph atlas
// and a C header describing its layout.
//
// The atlas is a single-channel coverage image. Glyphs are laid out 16 per
// row in padded cells, index i holding the i-th codepoint of the atlas:
// printable ASCII first, then optionally the box drawing block
// U+2500..U+257F. Canvas dimensions are rounded up to powers of two so
// the image can be uploaded as a GPU texture as is.
//
// # Pipeline
//
//   - Plan: codepoint set, cell geometry, canvas size
//   - Render: center every glyph in its cell on a shared baseline
//   - NewMetadata / WriteHeader: the #define contract for the renderer
//   - Generate: all of the above plus font loading and atomic output
//
// # Example usage
//
//	cfg := fontatlas.DefaultConfig()
//	res, err := fontatlas.Generate("PetMe128.ttf", "font_atlas.png", cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, g := range res.Skipped() {
//	    log.Printf("blank cell: %v", g)
//	}
//
// Glyph rasterization is delegated to the text package; tests and custom
// pipelines can call Build with any GlyphSource.
package fontatlas

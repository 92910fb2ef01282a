// Package text opens fonts and rasterizes single glyphs into coverage masks.
//
// A Face is a font opened at a fixed size. It reports the font-wide
// metrics and returns one GlyphImage per rune, positioned relative to the
// glyph origin on the baseline:
//
//	face, err := text.LoadFile("PetMe128.ttf", 16)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer face.Close()
//
//	g, err := face.Glyph('A')
//
// # Pluggable Rasterizer Backend
//
// Font parsing and scan conversion are abstracted through the Rasterizer
// interface. Three backends are built in:
//
//   - "ximage" (default): golang.org/x/image/font/opentype with full hinting
//   - "gotext": go-text/typesetting outlines, scan converted with x/image/vector
//   - "sfnt": seehuhn.de/go/sfnt outlines, scan converted with x/image/vector
//
// Select one with WithRasterizer, or register another with RegisterRasterizer.
package text

// Package preview prints text through a rendered atlas as ASCII art,
// for checking glyph placement without an image viewer.
package preview

import (
	"bufio"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/gogpu/fontatlas"
)

// DefaultWidth is used when the output is not a terminal.
const DefaultWidth = 80

// Coverage thresholds for the two ink characters.
const (
	solidThreshold = 128
	solidChar      = '#'
	faintChar      = '+'
	blankChar      = ' '
)

// TerminalWidth returns the column count of f if it is a terminal,
// DefaultWidth otherwise.
func TerminalWidth(f *os.File) int {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return DefaultWidth
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return DefaultWidth
	}
	return w
}

// Write renders s through the atlas cells. Each rune occupies one inner
// cell; runes missing from the atlas print as blank cells. Lines of s are
// wrapped so no output row exceeds width columns.
func Write(w io.Writer, a *fontatlas.Atlas, s string, width int) error {
	cellWidth := a.Layout.Geometry.CellWidth
	perRow := max(width/cellWidth, 1)

	bw := bufio.NewWriter(w)
	for _, line := range strings.Split(s, "\n") {
		runes := []rune(line)
		for len(runes) > 0 {
			n := min(perRow, len(runes))
			writeRow(bw, a, runes[:n])
			runes = runes[n:]
		}
		if line == "" {
			bw.WriteByte('\n')
		}
	}
	return bw.Flush()
}

// writeRow writes one band of cells, CellHeight text lines tall.
func writeRow(bw *bufio.Writer, a *fontatlas.Atlas, runes []rune) {
	g := a.Layout.Geometry
	line := make([]byte, 0, len(runes)*g.CellWidth)

	for y := 0; y < g.CellHeight; y++ {
		line = line[:0]
		for _, r := range runes {
			cell, ok := a.Layout.Lookup(r)
			for x := 0; x < g.CellWidth; x++ {
				if !ok {
					line = append(line, blankChar)
					continue
				}
				line = append(line, shade(a.Image.AlphaAt(cell.Inner.Min.X+x, cell.Inner.Min.Y+y).A))
			}
		}
		bw.Write(trimRight(line))
		bw.WriteByte('\n')
	}
}

// shade maps a coverage value to a character.
func shade(v uint8) byte {
	switch {
	case v >= solidThreshold:
		return solidChar
	case v > 0:
		return faintChar
	default:
		return blankChar
	}
}

func trimRight(b []byte) []byte {
	for len(b) > 0 && b[len(b)-1] == blankChar {
		b = b[:len(b)-1]
	}
	return b
}

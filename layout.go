package fontatlas

import (
	"image"
	"sort"
)

// GlyphsPerRow is the fixed number of cells per atlas row.
const GlyphsPerRow = 16

// Box drawing block appended after the leading range.
const (
	BoxDrawingFirst rune = 0x2500
	BoxDrawingLast  rune = 0x257F
)

// CodepointSet is the ordered list of codepoints in the atlas.
// Position i in the set is atlas index i. Values are strictly increasing.
type CodepointSet []rune

// NewCodepointSet returns first..last followed, when box is set, by the
// box drawing block.
func NewCodepointSet(first, last rune, box bool) CodepointSet {
	n := 0
	if last >= first {
		n = int(last-first) + 1
	}
	if box {
		n += int(BoxDrawingLast-BoxDrawingFirst) + 1
	}

	set := make(CodepointSet, 0, n)
	for r := first; r <= last; r++ {
		set = append(set, r)
	}
	if box {
		for r := BoxDrawingFirst; r <= BoxDrawingLast; r++ {
			set = append(set, r)
		}
	}
	return set
}

// Index returns the atlas index of r.
func (s CodepointSet) Index(r rune) (int, bool) {
	i := sort.Search(len(s), func(i int) bool { return s[i] >= r })
	if i < len(s) && s[i] == r {
		return i, true
	}
	return 0, false
}

// Geometry is the grid arrangement of the atlas cells.
type Geometry struct {
	GlyphsPerRow int
	Rows         int

	CellWidth  int
	CellHeight int
	Padding    int

	PaddedCellWidth  int
	PaddedCellHeight int
}

// Layout is the complete plan for one atlas.
type Layout struct {
	Codepoints CodepointSet
	Geometry   Geometry

	// Width and Height are the canvas dimensions, both powers of two.
	Width  int
	Height int

	FirstChar  rune
	LastChar   rune
	BoxDrawing bool

	FontSize float64
}

// Cell locates one glyph in the atlas.
type Cell struct {
	Index     int
	Codepoint rune
	Row, Col  int

	// Padded is the whole cell including its transparent border.
	Padded image.Rectangle

	// Inner is the unpadded cell the glyph is placed in.
	Inner image.Rectangle
}

// Plan computes the codepoint set, grid geometry and canvas dimensions.
func Plan(cfg Config) (*Layout, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	set := NewCodepointSet(cfg.FirstChar, cfg.LastChar, cfg.IncludeBoxDrawing)

	g := Geometry{
		GlyphsPerRow:     GlyphsPerRow,
		Rows:             (len(set) + GlyphsPerRow - 1) / GlyphsPerRow,
		CellWidth:        cfg.CellWidth,
		CellHeight:       cfg.CellHeight,
		Padding:          cfg.Padding,
		PaddedCellWidth:  cfg.CellWidth + 2*cfg.Padding,
		PaddedCellHeight: cfg.CellHeight + 2*cfg.Padding,
	}

	return &Layout{
		Codepoints: set,
		Geometry:   g,
		Width:      NextPowerOfTwo(g.GlyphsPerRow * g.PaddedCellWidth),
		Height:     NextPowerOfTwo(g.Rows * g.PaddedCellHeight),
		FirstChar:  cfg.FirstChar,
		LastChar:   cfg.LastChar,
		BoxDrawing: cfg.IncludeBoxDrawing,
		FontSize:   cfg.EffectiveFontSize(),
	}, nil
}

// Len returns the number of glyphs in the atlas.
func (l *Layout) Len() int {
	return len(l.Codepoints)
}

// Cell returns the cell of atlas index i.
func (l *Layout) Cell(i int) Cell {
	g := l.Geometry
	row, col := i/g.GlyphsPerRow, i%g.GlyphsPerRow
	paddedX, paddedY := col*g.PaddedCellWidth, row*g.PaddedCellHeight
	cellX, cellY := paddedX+g.Padding, paddedY+g.Padding

	return Cell{
		Index:     i,
		Codepoint: l.Codepoints[i],
		Row:       row,
		Col:       col,
		Padded:    image.Rect(paddedX, paddedY, paddedX+g.PaddedCellWidth, paddedY+g.PaddedCellHeight),
		Inner:     image.Rect(cellX, cellY, cellX+g.CellWidth, cellY+g.CellHeight),
	}
}

// Lookup returns the cell holding r.
func (l *Layout) Lookup(r rune) (Cell, bool) {
	i, ok := l.Codepoints.Index(r)
	if !ok {
		return Cell{}, false
	}
	return l.Cell(i), true
}

// NextPowerOfTwo returns the smallest power of two >= n; 1 for n <= 1.
func NextPowerOfTwo(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

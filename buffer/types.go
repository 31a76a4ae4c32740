package buffer

import "fmt"

// Pos points at a grid cell by (row, column). Row and Col are 0-based.
type Pos struct {
	Row int
	Col int
}

func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// CellKind tells what occupies a grid position.
type CellKind uint8

const (
	// CellEmpty has no content and is transparent when layers are mixed.
	CellEmpty CellKind = iota
	// CellGlyph is the anchor of a grapheme cluster.
	CellGlyph
	// CellContinuation is covered by the trailing columns of a wider glyph
	// anchored earlier in the same row.
	CellContinuation
)

func (k CellKind) String() string {
	switch k {
	case CellEmpty:
		return "empty"
	case CellGlyph:
		return "glyph"
	case CellContinuation:
		return "continuation"
	default:
		return fmt.Sprintf("CellKind(%d)", uint8(k))
	}
}

// Cell is one grid position. Text and Width are set only for CellGlyph.
type Cell struct {
	Kind  CellKind
	Text  string
	Width int
}

// IsGlyph reports whether c is an anchor cell.
func (c Cell) IsGlyph() bool { return c.Kind == CellGlyph }

// span is the number of columns a glyph owns. Zero-width clusters still own
// their anchor column.
func (c Cell) span() int {
	if c.Width < 1 {
		return 1
	}
	return c.Width
}

func glyphCell(text string, width int) Cell {
	return Cell{Kind: CellGlyph, Text: text, Width: width}
}

var continuationCell = Cell{Kind: CellContinuation}

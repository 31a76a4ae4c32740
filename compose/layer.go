package compose

import (
	"fmt"

	"github.com/iw2rmb/saybox/buffer"
)

// Rect is an area of the shared coordinate space. Top and Left are
// inclusive; Bottom and Right are exclusive.
type Rect struct {
	Top    int
	Left   int
	Bottom int
	Right  int
}

func (r Rect) Height() int { return r.Bottom - r.Top }
func (r Rect) Width() int  { return r.Right - r.Left }

// Union returns the smallest rect that contains both r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		Top:    min(r.Top, o.Top),
		Left:   min(r.Left, o.Left),
		Bottom: max(r.Bottom, o.Bottom),
		Right:  max(r.Right, o.Right),
	}
}

func (r Rect) String() string {
	return fmt.Sprintf("[%d,%d)x[%d,%d)", r.Top, r.Bottom, r.Left, r.Right)
}

// Layer is a buffer whose local origin sits at (Row, Col) of the shared
// space. Layers are values; the compositor never mutates them.
type Layer struct {
	row int
	col int
	buf *buffer.Buffer
}

// NewLayer anchors b at (row, col). A nil buffer is treated as empty.
func NewLayer(row, col int, b *buffer.Buffer) Layer {
	if b == nil {
		b = buffer.New(buffer.Options{})
	}
	return Layer{row: row, col: col, buf: b}
}

func (l Layer) Row() int               { return l.row }
func (l Layer) Col() int               { return l.col }
func (l Layer) Buffer() *buffer.Buffer { return l.buf }

// Bounds returns the extent the layer covers in the shared space.
func (l Layer) Bounds() Rect {
	rows, cols := 0, 0
	if l.buf != nil {
		rows, cols = l.buf.Rows(), l.buf.Cols()
	}
	return Rect{Top: l.row, Left: l.col, Bottom: l.row + rows, Right: l.col + cols}
}

// Render renders the layer's buffer.
func (l Layer) Render() string {
	if l.buf == nil {
		return ""
	}
	return l.buf.Render()
}

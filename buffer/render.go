package buffer

import (
	"io"
	"strings"
)

// Render serializes the grid: glyph text at anchor cells, one space per empty
// cell, nothing for continuation cells, and "\n" after every row.
// Spaces are part of the layout and are never trimmed.
func (b *Buffer) Render() string {
	var sb strings.Builder
	size := 0
	for _, line := range b.lines {
		size += len(line) + 1
	}
	sb.Grow(size)

	for _, line := range b.lines {
		for _, c := range line {
			switch c.Kind {
			case CellEmpty:
				sb.WriteByte(' ')
			case CellGlyph:
				sb.WriteString(c.Text)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (b *Buffer) String() string { return b.Render() }

// WriteTo writes the rendered grid to w.
func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, b.Render())
	return int64(n), err
}

package buffer

import (
	"iter"
	"strings"

	"github.com/iw2rmb/saybox/internal/grapheme"
	"github.com/iw2rmb/saybox/internal/logging"
)

type Options struct {
	// Width measures a grapheme cluster in terminal columns.
	// Default: go-runewidth with a uniseg fallback.
	Width func(cluster string) int
}

// Buffer is a grid of cells addressed by (row, column). Rows may have
// different lengths; cells past the end of a row, and rows past the last one,
// read as empty.
type Buffer struct {
	lines [][]Cell
	width func(cluster string) int
}

func New(opt Options) *Buffer {
	if opt.Width == nil {
		opt.Width = grapheme.Width
	}
	return &Buffer{width: opt.Width}
}

// FromText lays s out the way a terminal would print it: one row per line,
// clusters left to right, each advancing the column by its display width.
// A trailing newline does not start an extra row.
func FromText(s string, opt Options) *Buffer {
	b := New(opt)
	for row, line := range splitRows(s) {
		b.ensure(row, 0)
		col := 0
		for cluster := range grapheme.All(line) {
			w := b.measure(cluster)
			b.Put(Pos{Row: row, Col: col}, cluster, w)
			col += w
		}
	}
	return b
}

// Set places cluster with its anchor at p, measuring it with the buffer's
// width function.
func (b *Buffer) Set(p Pos, cluster string) {
	b.Put(p, cluster, b.measure(cluster))
}

// Put places cluster at p as a glyph of the given width. Every glyph that
// overlaps the new span is erased across its whole width first.
// Negative coordinates or widths panic.
func (b *Buffer) Put(p Pos, cluster string, width int) {
	if p.Row < 0 || p.Col < 0 {
		Violation("set", p, "negative coordinate")
	}
	if width < 0 {
		Violation("set", p, "negative width")
	}
	if logging.Debug() {
		logging.L().Debug("set grapheme", "row", p.Row, "col", p.Col, "width", width, "grapheme", cluster)
	}

	cell := glyphCell(cluster, width)
	span := cell.span()
	b.ensure(p.Row, p.Col+span)
	for c := p.Col; c < p.Col+span; c++ {
		b.clear("set", p.Row, c)
	}

	line := b.lines[p.Row]
	line[p.Col] = cell
	for k := 1; k < span; k++ {
		line[p.Col+k] = continuationCell
	}
}

// Clear erases the glyph occupying p, wherever inside its span p falls.
// Positions outside the grid and empty cells are left alone.
func (b *Buffer) Clear(p Pos) {
	if p.Row < 0 || p.Col < 0 {
		return
	}
	b.clear("clear", p.Row, p.Col)
}

func (b *Buffer) clear(op string, row, col int) {
	if row >= len(b.lines) {
		return
	}
	line := b.lines[row]
	if col >= len(line) {
		return
	}

	anchor := col
	switch line[col].Kind {
	case CellEmpty:
		return
	case CellContinuation:
		anchor = b.findAnchor(op, row, col)
	}

	end := min(anchor+line[anchor].span(), len(line))
	if logging.Debug() {
		logging.L().Debug("clear glyph", "row", row, "col", col, "anchor", anchor, "end", end)
	}
	for k := anchor; k < end; k++ {
		line[k] = Cell{}
	}
}

// findAnchor walks back from a continuation cell to the glyph that owns it.
func (b *Buffer) findAnchor(op string, row, col int) int {
	line := b.lines[row]
	for k := col - 1; k >= 0; k-- {
		switch line[k].Kind {
		case CellGlyph:
			return k
		case CellEmpty:
			Violation(op, Pos{Row: row, Col: col}, "continuation run ends at an empty cell")
		}
	}
	Violation(op, Pos{Row: row, Col: col}, "continuation run reaches row start")
	return -1
}

// ensure grows the grid so that row exists and holds at least cols cells.
func (b *Buffer) ensure(row, cols int) {
	for len(b.lines) <= row {
		b.lines = append(b.lines, nil)
	}
	if n := cols - len(b.lines[row]); n > 0 {
		b.lines[row] = append(b.lines[row], make([]Cell, n)...)
	}
}

func (b *Buffer) measure(cluster string) int {
	w := b.width(cluster)
	if w < 0 {
		return 0
	}
	return w
}

// Rows returns the number of stored rows.
func (b *Buffer) Rows() int { return len(b.lines) }

// Cols returns the length of the longest row, 0 for an empty buffer.
func (b *Buffer) Cols() int {
	cols := 0
	for _, line := range b.lines {
		cols = max(cols, len(line))
	}
	return cols
}

func (b *Buffer) RowLen(row int) int {
	if row < 0 || row >= len(b.lines) {
		return 0
	}
	return len(b.lines[row])
}

// Cell returns the cell at p. Positions outside the grid read as empty.
func (b *Buffer) Cell(p Pos) Cell {
	if p.Row < 0 || p.Row >= len(b.lines) {
		return Cell{}
	}
	line := b.lines[p.Row]
	if p.Col < 0 || p.Col >= len(line) {
		return Cell{}
	}
	return line[p.Col]
}

// Glyphs yields every anchor cell, row by row and left to right.
func (b *Buffer) Glyphs() iter.Seq2[Pos, Cell] {
	return func(yield func(Pos, Cell) bool) {
		for row, line := range b.lines {
			for col, c := range line {
				if !c.IsGlyph() {
					continue
				}
				if !yield(Pos{Row: row, Col: col}, c) {
					return
				}
			}
		}
	}
}

func splitRows(s string) []string {
	if s == "" {
		return nil
	}
	rows := strings.Split(s, "\n")
	if rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}
	for i, r := range rows {
		rows[i] = strings.TrimSuffix(r, "\r")
	}
	return rows
}

package buffer

import "fmt"

// InvariantError describes a broken grid invariant or a violated caller
// contract. Mutating operations panic with it; Validate returns it.
type InvariantError struct {
	Op     string
	Pos    Pos
	Reason string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("buffer: %s at %s: %s", e.Op, e.Pos, e.Reason)
}

// Violation panics with an *InvariantError. It is exported for packages that
// drive the grid and must fail the same way.
func Violation(op string, p Pos, reason string) {
	panic(&InvariantError{Op: op, Pos: p, Reason: reason})
}

// Validate walks every row and reports the first cell that breaks the glyph
// invariant: a continuation that does not trail a glyph, or a glyph whose
// trailing columns are not exactly continuations.
func (b *Buffer) Validate() error {
	for row, line := range b.lines {
		col := 0
		for col < len(line) {
			c := line[col]
			switch c.Kind {
			case CellEmpty:
				col++
			case CellContinuation:
				return &InvariantError{Op: "validate", Pos: Pos{Row: row, Col: col}, Reason: "continuation without anchor"}
			case CellGlyph:
				if c.Width < 0 {
					return &InvariantError{Op: "validate", Pos: Pos{Row: row, Col: col}, Reason: "negative glyph width"}
				}
				end := col + c.span()
				if end > len(line) {
					return &InvariantError{Op: "validate", Pos: Pos{Row: row, Col: col}, Reason: "glyph extends past row end"}
				}
				for k := col + 1; k < end; k++ {
					if line[k].Kind != CellContinuation {
						return &InvariantError{Op: "validate", Pos: Pos{Row: row, Col: k}, Reason: fmt.Sprintf("%s cell inside glyph span", line[k].Kind)}
					}
				}
				col = end
			default:
				return &InvariantError{Op: "validate", Pos: Pos{Row: row, Col: col}, Reason: c.Kind.String()}
			}
		}
	}
	return nil
}

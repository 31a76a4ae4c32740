package compose

import (
	"github.com/iw2rmb/saybox/buffer"
	"github.com/iw2rmb/saybox/internal/logging"
)

// Mixer collects layers bottom to top and flattens them.
//
// Its bounds always contain the origin, even before any layer is added.
type Mixer struct {
	bounds Rect
	layers []Layer
}

func NewMixer() *Mixer {
	return &Mixer{}
}

// AddLayer puts l on top of the layers added so far and grows the bounds to
// cover it.
func (m *Mixer) AddLayer(l Layer) {
	m.bounds = m.bounds.Union(l.Bounds())
	m.layers = append(m.layers, l)
	if logging.Debug() {
		logging.L().Debug("add layer", "index", len(m.layers)-1, "layer", l.Bounds().String(), "bounds", m.bounds.String())
	}
}

func (m *Mixer) Bounds() Rect { return m.bounds }

func (m *Mixer) Len() int { return len(m.layers) }

// Layers returns the stacked layers, bottom first.
func (m *Mixer) Layers() []Layer {
	out := make([]Layer, len(m.layers))
	copy(out, m.layers)
	return out
}

// Mix flattens every layer into a new layer anchored at the bounds' top-left
// corner. Layers are applied in the order they were added; each glyph is
// written with its source width, so a glyph always replaces whatever it
// overlaps, wide glyphs included. Inputs are left untouched, and Mix may be
// called again after more layers are added.
func (m *Mixer) Mix() Layer {
	top, left := m.bounds.Top, m.bounds.Left
	out := buffer.New(buffer.Options{})

	for i, l := range m.layers {
		if l.buf == nil {
			continue
		}
		glyphs := 0
		for p, c := range l.buf.Glyphs() {
			target := buffer.Pos{
				Row: l.row - top + p.Row,
				Col: l.col - left + p.Col,
			}
			if target.Row < 0 || target.Col < 0 {
				buffer.Violation("mix", target, "target outside mixer bounds")
			}
			out.Put(target, c.Text, c.Width)
			glyphs++
		}
		if logging.Debug() {
			logging.L().Debug("mixed layer", "index", i, "row", l.row, "col", l.col, "glyphs", glyphs)
		}
	}

	logging.L().Info("mix done", "layers", len(m.layers), "bounds", m.bounds.String())
	return Layer{row: top, col: left, buf: out}
}

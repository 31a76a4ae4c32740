package scene

import "github.com/iw2rmb/saybox/buffer"

// Frame draws a border around an inner area of height rows and width
// columns. The returned buffer is (height+2) x (width+2) and transparent
// inside.
func Frame(height, width int) *buffer.Buffer {
	b := buffer.New(buffer.Options{})
	bottom, right := height+1, width+1

	b.Set(buffer.Pos{Row: 0, Col: 0}, "+")
	b.Set(buffer.Pos{Row: bottom, Col: 0}, "+")
	b.Set(buffer.Pos{Row: 0, Col: right}, "+")
	b.Set(buffer.Pos{Row: bottom, Col: right}, "+")
	for c := 1; c <= width; c++ {
		b.Set(buffer.Pos{Row: 0, Col: c}, "-")
		b.Set(buffer.Pos{Row: bottom, Col: c}, "-")
	}
	for r := 1; r <= height; r++ {
		b.Set(buffer.Pos{Row: r, Col: 0}, "|")
		b.Set(buffer.Pos{Row: r, Col: right}, "|")
	}
	return b
}

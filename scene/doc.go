// Package scene lays user text out inside a speech bubble next to a piece of
// ASCII art and renders the result.
//
// The art, the bubble frame and the filled text are three layers of a
// compose.Mixer, added in that stacking order: frame, art, text.
package scene

// Package buffer implements the grapheme-addressed character grid used to
// compose a scene.
//
// Coordinates are 0-based (Row, Col) with Col counted in terminal columns.
// A glyph of display width w anchored at column c occupies columns
// [c, c+w): the anchor cell holds the cluster text and the remaining columns
// hold continuation cells. Writes and clears always act on whole glyphs, so a
// continuation cell can never outlive its anchor.
package buffer

// Package saybox renders text inside a speech bubble drawn next to ASCII art.
//
// The work happens in the sub-packages:
//
//   - buffer: a grapheme-addressed character grid with whole-glyph writes
//   - compose: offset layers merged back to front into one grid
//   - scene: text fill, bubble frame and art placement
//
// This package holds module-wide settings: the version and the logger.
package saybox

// Package compose merges offset buffers into one.
//
// Layers are stacked in painter's order: the first layer added is the
// bottom. A layer occludes what is beneath it only where it has glyphs of
// its own; empty and continuation cells are transparent.
package compose

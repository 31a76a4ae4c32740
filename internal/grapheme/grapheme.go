// Package grapheme segments text into grapheme clusters and measures their
// terminal display width.
package grapheme

import (
	"iter"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// All yields the clusters of text in visual order. Every cluster is a
// substring of text and shares its backing memory.
func All(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		if text == "" {
			return
		}
		g := uniseg.NewGraphemes(text)
		for g.Next() {
			if !yield(g.Str()) {
				return
			}
		}
	}
}

// IsNewline reports whether cluster is a line break ("\n" or "\r\n").
func IsNewline(cluster string) bool {
	return cluster == "\n" || cluster == "\r\n"
}

// Width returns the number of terminal columns cluster occupies.
// Line breaks and other control clusters are zero wide.
func Width(cluster string) int {
	if cluster == "" || IsNewline(cluster) {
		return 0
	}

	w := runewidth.StringWidth(cluster)
	if w < 0 {
		w = 0
	}
	if w == 0 {
		fallback := uniseg.StringWidth(cluster)
		if fallback > w {
			w = fallback
		}
	}
	return w
}

// StringWidth sums the cluster widths of text.
func StringWidth(text string) int {
	total := 0
	for c := range All(text) {
		total += Width(c)
	}
	return total
}

// MaxWidth returns the width of the widest cluster in text, 0 for "".
func MaxWidth(text string) int {
	widest := 0
	for c := range All(text) {
		if w := Width(c); w > widest {
			widest = w
		}
	}
	return widest
}

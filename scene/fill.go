package scene

import (
	"math"
	"strings"

	"github.com/iw2rmb/saybox/internal/grapheme"
)

// Line is one filled line of text. Text is a substring of the filled input.
type Line struct {
	Text  string
	Width int
}

// Fill breaks text into lines of at most maxWidth columns. A line ends before
// a cluster that does not fit in what is left of it, and at every newline.
// A cluster wider than maxWidth gets a line of its own.
func Fill(text string, maxWidth int) []Line {
	var lines []Line
	started := false
	remain := 0
	start, off, width := 0, 0, 0

	for c := range grapheme.All(text) {
		w := grapheme.Width(c)
		nl := grapheme.IsNewline(c)
		if nl || w > remain {
			if started {
				lines = append(lines, Line{Text: text[start:off], Width: width})
				start, width = off, 0
			}
			started = true
			remain = maxWidth
		}

		off += len(c)
		if nl {
			start = off
			continue
		}
		width += w
		remain -= w
	}
	if start < off {
		lines = append(lines, Line{Text: text[start:off], Width: width})
	}
	return lines
}

// AreaWidth picks the fill width for text: wide enough that the filled block
// approaches aspectRatio, and never narrower than its widest cluster.
func AreaWidth(text string, aspectRatio float64) int {
	total := grapheme.StringWidth(text)
	scale := math.Sqrt(float64(total) / aspectRatio)
	estimate := int(math.Ceil(scale * aspectRatio))
	return max(estimate, grapheme.MaxWidth(text))
}

// ExpandTabs replaces every tab with spaces up to the next tab stop.
func ExpandTabs(text string, tabWidth int) string {
	if tabWidth < 1 || !strings.Contains(text, "\t") {
		return text
	}

	var sb strings.Builder
	sb.Grow(len(text))
	col := 0
	for c := range grapheme.All(text) {
		switch {
		case c == "\t":
			n := tabWidth - col%tabWidth
			sb.WriteString(strings.Repeat(" ", n))
			col += n
		case grapheme.IsNewline(c):
			sb.WriteString(c)
			col = 0
		default:
			sb.WriteString(c)
			col += grapheme.Width(c)
		}
	}
	return sb.String()
}

// StripZeroWidth drops clusters that take no columns on screen, line breaks
// excepted. In a grid such a cluster still owns a column, which would leave
// lines wider than they look.
func StripZeroWidth(text string) string {
	var sb strings.Builder
	stripped := false
	for c := range grapheme.All(text) {
		if grapheme.Width(c) == 0 && !grapheme.IsNewline(c) {
			stripped = true
			continue
		}
		sb.WriteString(c)
	}
	if !stripped {
		return text
	}
	return sb.String()
}

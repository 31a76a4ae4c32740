package scene

import (
	"errors"
	"strings"
	"testing"
)

func artRows(t *testing.T) []string {
	t.Helper()
	return strings.Split(strings.TrimSuffix(Default().Art, "\n"), "\n")
}

func padTo(s string, n int) string {
	if len(s) >= n {
		return s
	}
	return s + strings.Repeat(" ", n-len(s))
}

func renderRows(t *testing.T, text string, sc Scene, opt Options) []string {
	t.Helper()
	out, err := Render(text, sc, opt)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.HasSuffix(out, "\n") {
		t.Fatalf("render must end with a newline: %q", out)
	}
	return strings.Split(strings.TrimSuffix(out, "\n"), "\n")
}

func TestRender_DefaultSceneShortText(t *testing.T) {
	art := artRows(t)
	rows := renderRows(t, "hi", Default(), DefaultOptions())

	if got, want := len(rows), len(art); got != want {
		t.Fatalf("row count: got %d, want %d", got, want)
	}

	edge := "+" + strings.Repeat("-", 19) + "+"
	blank := "|" + strings.Repeat(" ", 19) + "|"
	want := map[int]string{
		0:  art[0],
		1:  art[1],
		2:  padTo(art[2], 29) + edge,
		3:  padTo(art[3], 29) + blank,
		5:  padTo(art[5], 29) + "|" + strings.Repeat(" ", 8) + "hi" + strings.Repeat(" ", 9) + "|",
		8:  padTo(art[8], 29) + blank,
		9:  padTo(art[9], 29) + edge,
		10: art[10],
		12: art[12],
	}
	for row, w := range want {
		if rows[row] != w {
			t.Fatalf("row %d:\n got %q\nwant %q", row, rows[row], w)
		}
	}
}

func TestRender_WideTextIsCentredByColumns(t *testing.T) {
	art := artRows(t)
	rows := renderRows(t, "界界", Default(), DefaultOptions())

	want := padTo(art[5], 29) + "|" + strings.Repeat(" ", 7) + "界界" + strings.Repeat(" ", 8) + "|"
	if rows[5] != want {
		t.Fatalf("row 5:\n got %q\nwant %q", rows[5], want)
	}
}

func TestRender_TallTextGrowsBubbleUpward(t *testing.T) {
	rows := renderRows(t, "1\n2\n3\n4\n5\n6\n7", Default(), DefaultOptions())

	// Nine inner rows put the top edge one row above the art.
	if got, want := len(rows), len(artRows(t))+1; got != want {
		t.Fatalf("row count: got %d, want %d", got, want)
	}
	edge := "+" + strings.Repeat("-", 19) + "+"
	if got, want := rows[0], strings.Repeat(" ", 29)+edge; got != want {
		t.Fatalf("top row:\n got %q\nwant %q", got, want)
	}
	if got := rows[10]; !strings.HasSuffix(got, edge) {
		t.Fatalf("bottom edge should stay on art row 9: got %q", got)
	}
	if got := rows[2]; !strings.Contains(got, "|         1         |") {
		t.Fatalf("first text row: got %q", got)
	}
}

func TestRender_TextOccludesArtAndFrame(t *testing.T) {
	sc := Scene{
		Art:           "#####\n#####\n#####\n#####\n#####\n",
		LeftBorder:    0,
		BottomBorder:  4,
		MinAreaHeight: 1,
		MinAreaWidth:  1,
	}
	opt := DefaultOptions()
	opt.MinHorizontalPadding = 0
	opt.MinVerticalPadding = 0

	rows := renderRows(t, "ab", sc, opt)
	want := []string{
		"#####",
		"#####",
		"#####",
		"#ab##",
		"#####",
	}
	if len(rows) != len(want) {
		t.Fatalf("rows: got %q, want %q", rows, want)
	}
	for i := range want {
		if rows[i] != want[i] {
			t.Fatalf("row %d: got %q, want %q", i, rows[i], want[i])
		}
	}
}

func TestRender_EmptyText(t *testing.T) {
	rows := renderRows(t, "", Default(), DefaultOptions())
	if got, want := len(rows), len(artRows(t)); got != want {
		t.Fatalf("row count: got %d, want %d", got, want)
	}
}

func TestRender_InvalidInputs(t *testing.T) {
	opt := DefaultOptions()
	opt.AspectRatio = 0
	if _, err := Render("x", Default(), opt); !errors.Is(err, ErrInvalidOptions) {
		t.Fatalf("aspect 0: got %v, want ErrInvalidOptions", err)
	}

	sc := Default()
	sc.MinAreaWidth = -1
	if _, err := Render("x", sc, DefaultOptions()); !errors.Is(err, ErrInvalidScene) {
		t.Fatalf("negative width: got %v, want ErrInvalidScene", err)
	}
}

func TestArrange_Layout(t *testing.T) {
	lay, layers, err := Arrange("hi", Default(), DefaultOptions())
	if err != nil {
		t.Fatalf("Arrange: %v", err)
	}
	if len(layers) != 3 {
		t.Fatalf("layers: got %d, want 3", len(layers))
	}
	if lay.TextWidth != 2 || lay.TextHeight != 1 {
		t.Fatalf("text size: got %dx%d, want 2x1", lay.TextWidth, lay.TextHeight)
	}
	if lay.AreaWidth != 19 || lay.AreaHeight != 6 {
		t.Fatalf("area size: got %dx%d, want 19x6", lay.AreaWidth, lay.AreaHeight)
	}
	if lay.Frame.Top != 2 || lay.Frame.Left != 29 || lay.Frame.Bottom != 10 || lay.Frame.Right != 50 {
		t.Fatalf("frame: got %v", lay.Frame)
	}
	if lay.Text.Top != 5 || lay.Text.Left != 38 {
		t.Fatalf("text origin: got (%d,%d), want (5,38)", lay.Text.Top, lay.Text.Left)
	}
	if layers[1].Row() != 0 || layers[1].Col() != 0 {
		t.Fatalf("art layer must sit at the origin")
	}
}

func TestFrame(t *testing.T) {
	got := Frame(2, 3).Render()
	want := "+---+\n|   |\n|   |\n+---+\n"
	if got != want {
		t.Fatalf("frame:\n got %q\nwant %q", got, want)
	}
	if err := Frame(0, 0).Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestRender_ZeroWidthClustersKeepBorderAligned(t *testing.T) {
	cases := []struct {
		name  string
		text  string
		plain string
	}{
		{name: "trailing-zero-width-space", text: "ab\u200b", plain: "ab"},
		{name: "leading-combining-mark", text: "\u0301a", plain: "a"},
		{name: "zero-width-between-lines", text: "ab\u200b\nxyz", plain: "ab\nxyz"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Render(tc.text, Default(), DefaultOptions())
			if err != nil {
				t.Fatalf("Render: %v", err)
			}
			want, err := Render(tc.plain, Default(), DefaultOptions())
			if err != nil {
				t.Fatalf("Render: %v", err)
			}
			if got != want {
				t.Fatalf("render:\n got %q\nwant %q", got, want)
			}
		})
	}
}

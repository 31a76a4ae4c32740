package scene

import (
	"fmt"
	"strings"

	"github.com/iw2rmb/saybox/buffer"
	"github.com/iw2rmb/saybox/compose"
	"github.com/iw2rmb/saybox/internal/logging"
)

// Layout is where Render put each part of the picture, in art coordinates.
type Layout struct {
	Lines      []Line
	TextWidth  int
	TextHeight int
	AreaWidth  int
	AreaHeight int
	Frame      compose.Rect
	Text       compose.Rect
}

// Arrange fills text and places the bubble and the text relative to the art.
// It returns the layers bottom first: frame, art, text.
func Arrange(text string, sc Scene, opt Options) (Layout, []compose.Layer, error) {
	if err := opt.Validate(); err != nil {
		return Layout{}, nil, err
	}
	if err := sc.Validate(); err != nil {
		return Layout{}, nil, err
	}

	if text != "" && !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	text = StripZeroWidth(ExpandTabs(text, opt.TabWidth))

	var lay Layout
	lay.Lines = Fill(text, AreaWidth(text, opt.AspectRatio))
	rows := make([]string, len(lay.Lines))
	for i, l := range lay.Lines {
		rows[i] = l.Text
		lay.TextWidth = max(lay.TextWidth, l.Width)
	}
	lay.TextHeight = len(lay.Lines)
	lay.AreaWidth = max(sc.MinAreaWidth, lay.TextWidth+opt.MinHorizontalPadding*2)
	lay.AreaHeight = max(sc.MinAreaHeight, lay.TextHeight+opt.MinVerticalPadding*2)

	top := sc.BottomBorder - lay.AreaHeight - 1
	frame := compose.NewLayer(top, sc.LeftBorder, Frame(lay.AreaHeight, lay.AreaWidth))
	art := compose.NewLayer(0, 0, buffer.FromText(sc.Art, buffer.Options{}))
	body := compose.NewLayer(
		top+(lay.AreaHeight-lay.TextHeight)/2+1,
		sc.LeftBorder+(lay.AreaWidth-lay.TextWidth)/2+1,
		buffer.FromText(strings.Join(rows, "\n"), buffer.Options{}),
	)
	lay.Frame = frame.Bounds()
	lay.Text = compose.Rect{
		Top:    body.Row(),
		Left:   body.Col(),
		Bottom: body.Row() + lay.TextHeight,
		Right:  body.Col() + lay.TextWidth,
	}

	logging.L().Debug("arranged scene",
		"text_width", lay.TextWidth, "text_height", lay.TextHeight,
		"area_width", lay.AreaWidth, "area_height", lay.AreaHeight,
		"frame", lay.Frame.String(), "text", lay.Text.String())
	return lay, []compose.Layer{frame, art, body}, nil
}

// Render draws text into sc's bubble and returns the finished picture.
func Render(text string, sc Scene, opt Options) (string, error) {
	_, layers, err := Arrange(text, sc, opt)
	if err != nil {
		return "", fmt.Errorf("scene: %w", err)
	}
	m := compose.NewMixer()
	for _, l := range layers {
		m.AddLayer(l)
	}
	return m.Mix().Render(), nil
}

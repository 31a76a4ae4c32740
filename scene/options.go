package scene

import (
	"errors"
	"fmt"
)

var ErrInvalidOptions = errors.New("invalid options")

// Options control how text is fitted into the bubble.
type Options struct {
	// AspectRatio is the target width/height ratio of the filled text.
	AspectRatio float64
	// MinVerticalPadding and MinHorizontalPadding are the least number of
	// blank rows above/below and columns left/right of the text.
	MinVerticalPadding   int
	MinHorizontalPadding int
	// TabWidth is the distance between tab stops.
	TabWidth int
}

func DefaultOptions() Options {
	return Options{
		AspectRatio:          4,
		MinVerticalPadding:   1,
		MinHorizontalPadding: 2,
		TabWidth:             4,
	}
}

func (o Options) Validate() error {
	if !(o.AspectRatio > 0) {
		return fmt.Errorf("%w: aspect ratio must be positive, got %v", ErrInvalidOptions, o.AspectRatio)
	}
	if o.MinVerticalPadding < 0 {
		return fmt.Errorf("%w: vertical padding %d is negative", ErrInvalidOptions, o.MinVerticalPadding)
	}
	if o.MinHorizontalPadding < 0 {
		return fmt.Errorf("%w: horizontal padding %d is negative", ErrInvalidOptions, o.MinHorizontalPadding)
	}
	if o.TabWidth < 1 {
		return fmt.Errorf("%w: tab width must be at least 1, got %d", ErrInvalidOptions, o.TabWidth)
	}
	return nil
}

package inputbar

import (
	"errors"
	"fmt"
)

// CompactScreenWidth is the container width at and below which the
// compact minimum button width applies.
const CompactScreenWidth = 320

// ErrInvalidConstants is returned when a Constants value cannot produce a layout.
var ErrInvalidConstants = errors.New("invalid row constants")

// Constants holds the layout parameters of the button rows. All lengths are in points.
type Constants struct {
	TitleTopMargin        float64 `yaml:"title_top_margin"`
	CompactMinButtonWidth float64 `yaml:"compact_min_button_width"`
	MinButtonWidth        float64 `yaml:"min_button_width"`
	BarHeight             float64 `yaml:"bar_height"`
	ContentLeftMargin     float64 `yaml:"content_left_margin"`
	ContentRightMargin    float64 `yaml:"content_right_margin"`
	IconSize              float64 `yaml:"icon_size"`
}

// DefaultConstants returns the stock toolbar metrics.
func DefaultConstants() Constants {
	return Constants{
		TitleTopMargin:        10,
		CompactMinButtonWidth: 53,
		MinButtonWidth:        56,
		BarHeight:             56,
		ContentLeftMargin:     24,
		ContentRightMargin:    24,
		IconSize:              16,
	}
}

// ButtonMargin is the distance between the content edge and the icon of
// the outermost buttons.
func (c Constants) ButtonMargin() float64 {
	return c.ContentLeftMargin/2 - c.IconSize/2
}

// MinButtonWidthFor selects the minimum touch width for a container width.
func (c Constants) MinButtonWidthFor(width float64) float64 {
	if width <= CompactScreenWidth {
		return c.CompactMinButtonWidth
	}
	return c.MinButtonWidth
}

// edgeShare is the constant term of the width-sharing rule between an
// outermost button and its neighbour.
func (c Constants) edgeShare() float64 {
	return c.IconSize/2 + c.ButtonMargin()
}

// Scale returns a copy with every length multiplied by f, e.g. to convert
// from points to device pixels.
func (c Constants) Scale(f float64) Constants {
	return Constants{
		TitleTopMargin:        c.TitleTopMargin * f,
		CompactMinButtonWidth: c.CompactMinButtonWidth * f,
		MinButtonWidth:        c.MinButtonWidth * f,
		BarHeight:             c.BarHeight * f,
		ContentLeftMargin:     c.ContentLeftMargin * f,
		ContentRightMargin:    c.ContentRightMargin * f,
		IconSize:              c.IconSize * f,
	}
}

// Validate reports whether the constants can be used for a layout.
func (c Constants) Validate() error {
	switch {
	case c.CompactMinButtonWidth <= 0 || c.MinButtonWidth <= 0:
		return fmt.Errorf("%w: minimum button widths must be positive", ErrInvalidConstants)
	case c.BarHeight <= 0:
		return fmt.Errorf("%w: bar height must be positive", ErrInvalidConstants)
	case c.IconSize < 0 || c.TitleTopMargin < 0:
		return fmt.Errorf("%w: icon size and title margin must not be negative", ErrInvalidConstants)
	case c.ContentLeftMargin < 0 || c.ContentRightMargin < 0:
		return fmt.Errorf("%w: content margins must not be negative", ErrInvalidConstants)
	}
	return nil
}

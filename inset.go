package inputbar

import "github.com/esimov/inputbar/utils"

// Alignment is the horizontal alignment of a button's content.
type Alignment uint8

const (
	AlignCenter Alignment = iota
	AlignLeft
	AlignRight
)

func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignRight:
		return "right"
	}
	return "center"
}

// LineBreak tells how an oversized title is shortened.
type LineBreak uint8

const (
	Truncate LineBreak = iota
	Clip
)

// Style is the content arrangement of one button: an icon above its title.
type Style struct {
	Alignment Alignment
	Image     Insets
	Title     Insets
	LineBreak LineBreak
}

// Styles computes the content styles of every button in the row.
//
// The first button is left aligned with its icon ButtonMargin away from
// the leading edge. The last button of a row anchored to the trailing edge
// mirrors it on the right and clips its title. Interior buttons center both
// the icon and the title.
func Styles(row Row, c Constants) map[Button]Style {
	styles := make(map[Button]Style, len(row.Buttons))
	if len(row.Buttons) == 0 {
		return styles
	}

	for i, b := range row.Buttons {
		if i == 0 || i == len(row.Buttons)-1 {
			continue
		}
		label := b.LabelSize()
		styles[b] = Style{
			Alignment: AlignCenter,
			Image:     Insets{Right: -label.W},
			Title:     Insets{Top: titleTop(label, c), Left: -c.IconSize},
		}
	}

	first := row.First()
	label := first.LabelSize()
	styles[first] = Style{
		Alignment: AlignLeft,
		Image:     Insets{Left: c.ButtonMargin()},
		Title: Insets{
			Top:  titleTop(label, c),
			Left: c.ContentLeftMargin/2 - c.IconSize - label.W/2,
		},
	}

	if row.anchorsTrailing() {
		last := row.Last()
		label := last.LabelSize()
		styles[last] = Style{
			Alignment: AlignRight,
			Image:     Insets{Right: c.ButtonMargin() - label.W},
			Title: Insets{
				Top:   titleTop(label, c),
				Right: c.ContentLeftMargin/2 - label.W/2 - 1,
			},
			LineBreak: Clip,
		}
	} else if last := row.Last(); last != first {
		label := last.LabelSize()
		styles[last] = Style{
			Alignment: AlignCenter,
			Image:     Insets{Right: -label.W},
			Title:     Insets{Top: titleTop(label, c), Left: -c.IconSize},
		}
	}
	return styles
}

func titleTop(label Size, c Constants) float64 {
	return c.IconSize + label.H + c.TitleTopMargin
}

// Content is the resolved position of a button's icon and title.
type Content struct {
	Icon  Rect
	Title Rect
}

// Place resolves the icon and title rectangles inside frame. Icon and
// title are laid out side by side, aligned inside the frame, and then moved
// by their insets; centered content moves by half an inset, the way button
// content does on the platform the metrics were designed for.
func (s Style) Place(frame Rect, label Size, c Constants) Content {
	icon := Rect{W: c.IconSize, H: c.IconSize}
	title := Rect{W: label.W, H: label.H}

	content := c.IconSize + label.W
	var start float64
	switch s.Alignment {
	case AlignLeft:
		start = frame.X
	case AlignRight:
		start = frame.Right() - content
	default:
		start = frame.X + (frame.W-content)/2
	}

	shift := func(in Insets) float64 {
		if s.Alignment == AlignCenter {
			return (in.Left - in.Right) / 2
		}
		return in.Left - in.Right
	}
	icon.X = start + shift(s.Image)
	title.X = start + c.IconSize + shift(s.Title)

	midY := frame.Y + frame.H/2
	icon.Y = midY - c.IconSize/2 + (s.Image.Top-s.Image.Bottom)/2
	title.Y = midY - label.H/2 + (s.Title.Top-s.Title.Bottom)/2

	switch {
	case s.LineBreak == Clip:
		left := utils.Max(title.X, frame.X)
		right := utils.Min(title.Right(), frame.Right())
		title.X, title.W = left, utils.Max(0, right-left)
	case title.W > frame.W:
		title.X, title.W = frame.X, frame.W
	}
	return Content{Icon: icon, Title: title}
}

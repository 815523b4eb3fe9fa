// Package gioview draws an input bar with Gio and routes taps to its view.
package gioview

import (
	"image"
	"image/color"
	"math"

	"gioui.org/font/gofont"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"github.com/esimov/inputbar"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

// titleSize is the text size of the button titles.
const titleSize = 11

// Bar is a Gio widget over an input bar view. The view is laid out in Dp
// against the width offered by the constraints.
type Bar struct {
	// OnPress, if set, is called after a button press has been routed.
	OnPress func(inputbar.Button)

	view    *inputbar.View
	palette inputbar.Theme
	theme   *material.Theme
	clicks  map[inputbar.Button]*widget.Clickable
	err     error
}

// NewBar returns a widget drawing v with the colors of th.
func NewBar(v *inputbar.View, th inputbar.Theme) *Bar {
	mt := material.NewTheme()
	mt.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))
	mt.Palette.Fg = th.Foreground
	mt.Palette.Bg = th.Background

	b := &Bar{
		view:    v,
		palette: th,
		theme:   mt,
		clicks:  make(map[inputbar.Button]*widget.Clickable),
	}
	for _, btn := range append(v.Buttons(), v.ExpandButton()) {
		b.clicks[btn] = new(widget.Clickable)
	}
	return b
}

// View returns the view drawn by the bar.
func (b *Bar) View() *inputbar.View {
	return b.view
}

// Err returns the error of the last layout pass, if any.
func (b *Bar) Err() error {
	return b.err
}

// Layout lays out the view for the maximum width of the constraints,
// handles the clicks of the previous frame and draws the visible row.
func (b *Bar) Layout(gtx C) D {
	if _, err := b.view.Layout(float64(gtx.Constraints.Max.X) / pxPerDp(gtx)); err != nil {
		b.err = err
	}

	for btn, click := range b.clicks {
		if click.Clicked(gtx) {
			b.view.Press(btn)
			if b.OnPress != nil {
				b.OnPress(btn)
			}
		}
	}

	size := image.Pt(gtx.Constraints.Max.X, px(gtx, b.view.Height()))
	defer clip.Rect{Max: size}.Push(gtx.Ops).Pop()
	paint.FillShape(gtx.Ops, b.palette.Background, clip.Rect{Max: size}.Op())

	offset := b.view.Offset(gtx.Now)
	c := b.view.Constants()

	var pinned []inputbar.Placement
	for _, p := range b.view.Placements() {
		if p.Frame.Pinned {
			pinned = append(pinned, p)
			continue
		}
		b.layoutButton(gtx, p, p.Frame.Rect.Offset(0, -offset), c, false)
	}
	for _, p := range pinned {
		b.layoutButton(gtx, p, p.Frame.Rect, c, true)
	}

	if b.view.Animating(gtx.Now) {
		gtx.Execute(op.InvalidateCmd{})
	}
	return D{Size: size}
}

func (b *Bar) layoutButton(gtx C, p inputbar.Placement, frame inputbar.Rect, c inputbar.Constants, expand bool) {
	cell := rectangle(gtx, frame)
	if !cell.Overlaps(image.Rectangle{Max: image.Pt(gtx.Constraints.Max.X, px(gtx, b.view.Height()))}) {
		return
	}

	defer op.Offset(cell.Min).Push(gtx.Ops).Pop()
	size := cell.Size()
	defer clip.Rect{Max: size}.Push(gtx.Ops).Pop()

	if expand {
		paint.FillShape(gtx.Ops, b.palette.Background, clip.Rect{Max: size}.Op())
	}
	if cell.Max.X < gtx.Constraints.Max.X {
		inset := px(gtx, c.BarHeight/4)
		line := image.Rect(size.X-1, inset, size.X, size.Y-inset)
		paint.FillShape(gtx.Ops, b.palette.Separator, clip.Rect(line).Op())
	}

	label := p.Button.LabelSize()
	content := p.Style.Place(frame.Offset(-frame.X, -frame.Y), label, c)

	if expand {
		b.label(gtx, content.Icon, inputbar.ExpandTitle, b.palette.Accent, text.Middle, false)
	} else {
		paint.FillShape(gtx.Ops, b.palette.Accent, clip.Rect(rectangle(gtx, content.Icon)).Op())
		align := text.Start
		switch p.Style.Alignment {
		case inputbar.AlignCenter:
			align = text.Middle
		case inputbar.AlignRight:
			align = text.End
		}
		b.label(gtx, content.Title, inputbar.Title(p.Button), b.palette.Foreground, align, p.Style.LineBreak == inputbar.Truncate)
	}

	gtx.Constraints = layout.Exact(size)
	b.clicks[p.Button].Layout(gtx, func(gtx C) D {
		return D{Size: size}
	})
}

func (b *Bar) label(gtx C, r inputbar.Rect, txt string, col color.NRGBA, align text.Alignment, truncate bool) {
	rect := rectangle(gtx, r)
	if rect.Empty() || txt == "" {
		return
	}
	defer op.Offset(rect.Min).Push(gtx.Ops).Pop()

	gtx.Constraints = layout.Exact(rect.Size())
	lbl := material.Label(b.theme, unit.Sp(titleSize), txt)
	lbl.Color = col
	lbl.Alignment = align
	lbl.MaxLines = 1
	if truncate {
		lbl.Truncator = "..."
	}
	lbl.Layout(gtx)
}

// px converts Dp to pixels under the metric of gtx.
func px(gtx C, dp float64) int {
	return int(math.Round(dp * pxPerDp(gtx)))
}

// pxPerDp treats an unset metric as one pixel per Dp.
func pxPerDp(gtx C) float64 {
	if gtx.Metric.PxPerDp <= 0 {
		return 1
	}
	return float64(gtx.Metric.PxPerDp)
}

func rectangle(gtx C, r inputbar.Rect) image.Rectangle {
	return image.Rect(px(gtx, r.X), px(gtx, r.Y), px(gtx, r.Right()), px(gtx, r.Bottom()))
}

package inputbar

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"io"
	"math"
	"path/filepath"
	"time"

	"github.com/disintegration/imaging"
	"github.com/esimov/inputbar/utils"
	"github.com/mattn/go-runewidth"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// ErrNotLaidOut is returned when a view is rendered before its first layout pass.
var ErrNotLaidOut = errors.New("view has not been laid out")

// SnapshotOptions controls the rendering of a view.
type SnapshotOptions struct {
	// Scale is the ratio of pixels to points; values below 1 are treated as 1.
	Scale float64
	// At selects the animation time. The zero value renders the final state.
	At time.Time
}

// Snapshot renders the visible band of the view: the row container at its
// current offset with the pinned expand control drawn on top.
func Snapshot(v *View, th Theme, opts SnapshotOptions) (*image.NRGBA, error) {
	if v.Width() <= 0 {
		return nil, ErrNotLaidOut
	}
	w := int(math.Ceil(v.Width()))
	h := int(math.Ceil(v.Height()))

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{th.Background}, image.Point{}, draw.Src)

	offset := v.TargetOffset()
	if !opts.At.IsZero() {
		offset = v.Offset(opts.At)
	}

	c := v.Constants()
	var pinned []Placement
	for _, p := range v.Placements() {
		if p.Frame.Pinned {
			pinned = append(pinned, p)
			continue
		}
		drawButton(img, p, p.Frame.Rect.Offset(0, -offset), th, c, false)
	}
	for _, p := range pinned {
		drawButton(img, p, p.Frame.Rect, th, c, true)
	}

	if opts.Scale > 1 {
		return imaging.Resize(img, int(math.Round(float64(w)*opts.Scale)), 0, imaging.Lanczos), nil
	}
	return img, nil
}

// drawButton draws one button cell: a separator on its trailing edge, the
// icon and the title, each clipped to the cell. The expand control covers
// whatever the scrolled container shows beneath it.
func drawButton(img *image.NRGBA, p Placement, frame Rect, th Theme, c Constants, expand bool) {
	cell := toRectangle(frame).Intersect(img.Bounds())
	if cell.Empty() {
		return
	}
	if expand {
		draw.Draw(img, cell, &image.Uniform{th.Background}, image.Point{}, draw.Src)
	}
	if cell.Max.X < img.Bounds().Max.X {
		line := image.Rect(cell.Max.X-1, cell.Min.Y+int(c.BarHeight/4), cell.Max.X, cell.Max.Y-int(c.BarHeight/4))
		draw.Draw(img, line.Intersect(cell), &image.Uniform{th.Separator}, image.Point{}, draw.Src)
	}

	dst := img.SubImage(cell).(*image.NRGBA)
	label := p.Button.LabelSize()
	content := p.Style.Place(frame, label, c)

	icon := toRectangle(content.Icon)
	if expand {
		drawEllipsis(dst, icon, th.Accent)
		return
	}
	draw.Draw(dst, icon.Intersect(cell), &image.Uniform{th.Accent}, image.Point{}, draw.Src)

	title := Title(p.Button)
	if title == "" {
		return
	}
	titleRect := toRectangle(content.Title).Intersect(cell)
	if titleRect.Empty() {
		return
	}
	if p.Style.LineBreak == Truncate && content.Title.W < label.W {
		cells := utils.Max(0, int(content.Title.W)/LabelAdvance)
		title = runewidth.Truncate(title, cells, "...")
	}

	face := basicfont.Face7x13
	d := font.Drawer{
		Dst:  dst.SubImage(titleRect).(*image.NRGBA),
		Src:  &image.Uniform{th.Foreground},
		Face: face,
		Dot:  fixed.P(int(math.Round(content.Title.X)), int(math.Round(content.Title.Y))+face.Ascent),
	}
	d.DrawString(title)
}

// drawEllipsis draws three dots centered in r.
func drawEllipsis(dst *image.NRGBA, r image.Rectangle, col color.NRGBA) {
	dot := utils.Max(2, r.Dy()/5)
	gap := (r.Dx() - 3*dot) / 2
	y := r.Min.Y + (r.Dy()-dot)/2
	for i := 0; i < 3; i++ {
		x := r.Min.X + i*(dot+gap)
		draw.Draw(dst, image.Rect(x, y, x+dot, y+dot).Intersect(dst.Bounds()), &image.Uniform{col}, image.Point{}, draw.Src)
	}
}

func toRectangle(r Rect) image.Rectangle {
	return image.Rect(
		utils.Round(r.X), utils.Round(r.Y),
		utils.Round(r.Right()), utils.Round(r.Bottom()),
	)
}

// Encode writes img in the format matching the extension of name.
// An empty name or the pipe name "-" selects PNG.
func Encode(w io.Writer, img image.Image, name string) error {
	format := imaging.PNG
	if name != "" && name != "-" && filepath.Ext(name) != "" {
		f, err := imaging.FormatFromFilename(name)
		if err != nil {
			return err
		}
		format = f
	}
	return imaging.Encode(w, img, format)
}

package inputbar

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrNilButton is returned by NewView when a button is nil.
	ErrNilButton = errors.New("nil button")
	// ErrDuplicateButton is returned by NewView when a button appears twice.
	ErrDuplicateButton = errors.New("duplicate button")
)

// Placement is a laid out button: its frame and content style.
type Placement struct {
	Button Button
	Row    int
	Frame  Frame
	Style  Style
}

// Update describes the outcome of a layout pass.
type Update struct {
	// Changed is false when the pass was skipped.
	Changed bool
	Added   ConstraintSet
	Removed ConstraintSet
	Packing Packing
}

// View arranges a fixed list of buttons into one or two rows and toggles
// between them. It is not safe for concurrent use.
type View struct {
	// Duration is the length of an animated row change.
	Duration time.Duration
	// Easing is the curve of an animated row change.
	Easing Easing
	// Now returns the current time. It defaults to time.Now.
	Now func() time.Time

	buttons   []Button
	known     map[Button]bool
	expand    *Label
	constants Constants

	multiline  bool
	currentRow int
	lastWidth  float64

	packing     Packing
	constraints ConstraintSet
	placements  []Placement
	index       map[Button]int
	offset      transition
}

// NewView returns a view over buttons, in display order.
func NewView(buttons []Button, c Constants) (*View, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	known := make(map[Button]bool, len(buttons))
	for i, b := range buttons {
		if b == nil {
			return nil, fmt.Errorf("button %d: %w", i, ErrNilButton)
		}
		if known[b] {
			return nil, fmt.Errorf("button %d (%s): %w", i, name(b), ErrDuplicateButton)
		}
		known[b] = true
	}

	v := &View{
		Duration:  DefaultDuration,
		Easing:    EaseInOutExpo,
		Now:       time.Now,
		buttons:   append([]Button(nil), buttons...),
		known:     known,
		expand:    NewLabel(ExpandTitle, Size{}),
		constants: c,
		index:     make(map[Button]int),
	}
	return v, nil
}

// Layout recomputes the rows for the container width. Non-positive and
// unchanged widths are ignored. The returned update lists the constraints
// that were added and removed compared to the previous pass.
func (v *View) Layout(width float64) (Update, error) {
	if width <= 0 || width == v.lastWidth {
		return Update{}, nil
	}

	packing, _ := Pack(width, v.buttons, v.expand, v.constants)

	var set ConstraintSet
	styles := make(map[Button]Style)
	for _, row := range packing.Rows {
		set = append(set, Emit(row, v.constants)...)
		for b, s := range Styles(row, v.constants) {
			styles[b] = s
		}
	}

	frames, err := Solve(set, width)
	if err != nil {
		return Update{}, fmt.Errorf("layout at width %v: %w", width, err)
	}

	placements := make([]Placement, 0, len(v.buttons)+1)
	index := make(map[Button]int, len(v.buttons)+1)
	for r, row := range packing.Rows {
		for _, b := range row.Buttons {
			index[b] = len(placements)
			placements = append(placements, Placement{
				Button: b,
				Row:    r,
				Frame:  frames[b],
				Style:  styles[b],
			})
		}
	}

	added, removed := set.Diff(v.constraints)

	v.packing = packing
	v.constraints = set
	v.placements = placements
	v.index = index
	v.multiline = packing.Multiline
	v.lastWidth = width
	if !v.multiline && v.currentRow != 0 {
		v.ShowRow(0, false)
	}

	return Update{
		Changed: true,
		Added:   added,
		Removed: removed,
		Packing: packing,
	}, nil
}

// ShowRow scrolls the container to row. Showing the current row, or a row
// outside [0, 1], does nothing. A call made while a previous animation is
// still running starts from the offset reached so far.
func (v *View) ShowRow(row int, animated bool) {
	if row == v.currentRow || row < 0 || row > 1 {
		return
	}
	now := v.now()
	from := v.offset.value(now)

	v.currentRow = row
	d := time.Duration(0)
	if animated {
		d = v.Duration
	}
	v.offset = transition{
		from:     from,
		to:       float64(row) * v.constants.BarHeight,
		start:    now,
		duration: d,
		easing:   v.Easing,
	}
}

// Press routes a button press. The expand control toggles between the two
// rows; any other button of the view returns to the first row.
func (v *View) Press(b Button) {
	switch {
	case b == Button(v.expand):
		next := 1
		if v.currentRow == 1 {
			next = 0
		}
		v.ShowRow(next, true)
	case v.known[b]:
		v.ShowRow(0, true)
	}
}

func (v *View) now() time.Time {
	if v.Now == nil {
		return time.Now()
	}
	return v.Now()
}

// ExpandButton returns the synthesized expand control.
func (v *View) ExpandButton() Button {
	return v.expand
}

// Buttons returns the buttons in display order.
func (v *View) Buttons() []Button {
	return append([]Button(nil), v.buttons...)
}

// Constants returns the layout parameters of the view.
func (v *View) Constants() Constants {
	return v.constants
}

// Multiline reports whether the buttons are split over two rows.
func (v *View) Multiline() bool {
	return v.multiline
}

// CurrentRow returns the row being shown.
func (v *View) CurrentRow() int {
	return v.currentRow
}

// Width returns the container width of the last layout pass.
func (v *View) Width() float64 {
	return v.lastWidth
}

// TargetOffset is the distance the row container is scrolled up once any
// running animation completes.
func (v *View) TargetOffset() float64 {
	return v.offset.to
}

// Offset returns the container offset at the given time.
func (v *View) Offset(now time.Time) float64 {
	return v.offset.value(now)
}

// Animating reports whether a row change is still in flight at now.
func (v *View) Animating(now time.Time) bool {
	return v.offset.running(now)
}

// Height returns the height of the visible bar.
func (v *View) Height() float64 {
	return v.constants.BarHeight
}

// ContentHeight returns the height of the row container.
func (v *View) ContentHeight() float64 {
	return v.packing.Height
}

// Packing returns the partition of the last layout pass.
func (v *View) Packing() Packing {
	return v.packing
}

// Constraints returns the constraints applied by the last layout pass.
func (v *View) Constraints() ConstraintSet {
	return append(ConstraintSet(nil), v.constraints...)
}

// Placements returns the laid out buttons, row by row.
func (v *View) Placements() []Placement {
	return append([]Placement(nil), v.placements...)
}

// Placement returns the layout of b.
func (v *View) Placement(b Button) (Placement, bool) {
	i, ok := v.index[b]
	if !ok {
		return Placement{}, false
	}
	return v.placements[i], true
}

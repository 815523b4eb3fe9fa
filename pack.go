package inputbar

import "math"

// Row is an ordered slice of the button sequence placed on one line.
type Row struct {
	Buttons []Button
	// Inset is the distance of the row from the top of the row container.
	Inset float64
	// Full rows span the container edge to edge. The trailing button of a
	// partial row takes the width of Reference instead.
	Full      bool
	Reference Button
	// Expand is the expand control when it is part of this row.
	Expand Button
}

// First returns the leading button of the row.
func (r Row) First() Button {
	return r.Buttons[0]
}

// Last returns the trailing button of the row.
func (r Row) Last() Button {
	return r.Buttons[len(r.Buttons)-1]
}

// anchorsTrailing reports whether the trailing button is pinned to the
// container's trailing edge. A partial row without a reference has nothing
// else to take its width from.
func (r Row) anchorsTrailing() bool {
	return r.Full || r.Reference == nil
}

// Packing is the result of partitioning the buttons for one container width.
type Packing struct {
	Rows      []Row
	Multiline bool
	// Capacity is the number of buttons, expand control included, that fit
	// on one row at the minimum button width.
	Capacity int
	// Height is the height of the row container.
	Height float64
}

// Pack partitions buttons into one or two rows for the container width.
// It reports false and leaves the packing empty when width is not positive.
//
// When the buttons do not fit, the last slot of the first row is given to
// expand and the remaining buttons move to the second row. The capacity is
// never less than one, so on a container narrower than a single button the
// first row holds only the expand control. A single button on such a
// container stays on one row.
func Pack(width float64, buttons []Button, expand Button, c Constants) (Packing, bool) {
	if width <= 0 {
		return Packing{}, false
	}
	if len(buttons) == 0 {
		return Packing{}, true
	}

	capacity := int(math.Floor(width / c.MinButtonWidthFor(width)))
	if capacity < 1 {
		capacity = 1
	}
	p := Packing{
		Capacity:  capacity,
		Multiline: capacity < len(buttons),
	}

	if !p.Multiline {
		p.Rows = []Row{{
			Buttons: buttons,
			Full:    true,
		}}
		p.Height = c.BarHeight
		return p, true
	}

	custom := capacity - 1
	first := make([]Button, 0, capacity)
	first = append(first, buttons[:custom]...)
	first = append(first, expand)

	second := make([]Button, len(buttons)-custom)
	copy(second, buttons[custom:])

	top := Row{
		Buttons: first,
		Full:    true,
		Expand:  expand,
	}
	bottom := Row{
		Buttons: second,
		Inset:   c.BarHeight,
		Full:    len(second) == capacity,
	}
	if len(first) > 1 {
		bottom.Reference = first[1]
	}
	p.Rows = []Row{top, bottom}
	p.Height = c.BarHeight * 2

	return p, true
}

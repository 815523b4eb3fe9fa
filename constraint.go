package inputbar

import (
	"fmt"
	"strings"

	"github.com/esimov/inputbar/utils"
)

// Attribute is a geometry variable of a button or container.
type Attribute uint8

const (
	AttrNone Attribute = iota
	Leading
	Trailing
	Top
	Width
	Height
)

func (a Attribute) String() string {
	switch a {
	case Leading:
		return "leading"
	case Trailing:
		return "trailing"
	case Top:
		return "top"
	case Width:
		return "width"
	case Height:
		return "height"
	}
	return ""
}

// Anchor tells what the right-hand side of a Constraint refers to.
type Anchor uint8

const (
	// AnchorNone makes the constraint a constant.
	AnchorNone Anchor = iota
	// AnchorContainer is the row container, which scrolls between rows.
	AnchorContainer
	// AnchorView is the outer view, which does not scroll.
	AnchorView
	// AnchorItem is another button, named by Target.
	AnchorItem
)

// Constraint is the linear relation
//
//	Item.Attr == Target.TargetAttr * Multiplier + Constant
//
// where the target is selected by Anchor.
type Constraint struct {
	Item       Button
	Attr       Attribute
	Anchor     Anchor
	Target     Button
	TargetAttr Attribute
	Multiplier float64
	Constant   float64
}

func (c Constraint) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s.%s == ", name(c.Item), c.Attr)
	switch c.Anchor {
	case AnchorNone:
		b.WriteString(utils.FormatPoints(c.Constant))
		return b.String()
	case AnchorContainer:
		fmt.Fprintf(&b, "container.%s", c.TargetAttr)
	case AnchorView:
		fmt.Fprintf(&b, "view.%s", c.TargetAttr)
	case AnchorItem:
		fmt.Fprintf(&b, "%s.%s", name(c.Target), c.TargetAttr)
	}
	if c.Multiplier != 1 {
		fmt.Fprintf(&b, " * %s", utils.FormatPoints(c.Multiplier))
	}
	if c.Constant != 0 {
		fmt.Fprintf(&b, " + %s", utils.FormatPoints(c.Constant))
	}
	return b.String()
}

func name(b Button) string {
	if t := Title(b); t != "" {
		return fmt.Sprintf("%q", t)
	}
	return fmt.Sprintf("%p", b)
}

// ConstraintSet is an ordered list of constraints.
type ConstraintSet []Constraint

func (s ConstraintSet) String() string {
	lines := make([]string, len(s))
	for i, c := range s {
		lines[i] = c.String()
	}
	return strings.Join(lines, "\n")
}

// Diff returns the constraints of s missing from prev and the constraints
// of prev missing from s.
func (s ConstraintSet) Diff(prev ConstraintSet) (added, removed ConstraintSet) {
	have := make(map[Constraint]struct{}, len(prev))
	for _, c := range prev {
		have[c] = struct{}{}
	}
	want := make(map[Constraint]struct{}, len(s))
	for _, c := range s {
		want[c] = struct{}{}
		if _, ok := have[c]; !ok {
			added = append(added, c)
		}
	}
	for _, c := range prev {
		if _, ok := want[c]; !ok {
			removed = append(removed, c)
		}
	}
	return added, removed
}

// For returns the constraints whose item is b.
func (s ConstraintSet) For(b Button) ConstraintSet {
	var out ConstraintSet
	for _, c := range s {
		if c.Item == b {
			out = append(out, c)
		}
	}
	return out
}

func equal(item Button, attr Attribute, anchor Anchor, target Button, targetAttr Attribute, mult, constant float64) Constraint {
	return Constraint{
		Item:       item,
		Attr:       attr,
		Anchor:     anchor,
		Target:     target,
		TargetAttr: targetAttr,
		Multiplier: mult,
		Constant:   constant,
	}
}

func constant(item Button, attr Attribute, v float64) Constraint {
	return Constraint{Item: item, Attr: attr, Constant: v}
}

// Emit returns the constraints placing row inside the container. The
// expand control, when the row has one, is pinned to the top of the outer
// view so it stays visible while the container scrolls. The row must not
// be empty.
func Emit(row Row, c Constants) ConstraintSet {
	var set ConstraintSet

	first, last := row.First(), row.Last()
	set = append(set, equal(first, Leading, AnchorContainer, nil, Leading, 1, 0))
	if row.anchorsTrailing() {
		set = append(set, equal(last, Trailing, AnchorContainer, nil, Trailing, 1, 0))
	}

	for _, b := range row.Buttons {
		if row.Expand != nil && b == row.Expand {
			set = append(set, equal(b, Top, AnchorView, nil, Top, 1, 0))
		} else {
			set = append(set, equal(b, Top, AnchorContainer, nil, Top, 1, row.Inset))
		}
		set = append(set, constant(b, Height, c.BarHeight))
	}

	share := c.edgeShare()
	for i := 1; i < len(row.Buttons); i++ {
		prev, cur := row.Buttons[i-1], row.Buttons[i]
		set = append(set, equal(prev, Trailing, AnchorItem, cur, Leading, 1, 0))

		switch {
		case i == 1:
			set = append(set, equal(prev, Width, AnchorItem, cur, Width, 0.5, share))
		case row.anchorsTrailing() && i == len(row.Buttons)-1:
			set = append(set, equal(cur, Width, AnchorItem, prev, Width, 0.5, share))
		default:
			set = append(set, equal(cur, Width, AnchorItem, prev, Width, 1, 0))
		}
	}

	if !row.anchorsTrailing() {
		set = append(set, equal(last, Width, AnchorItem, row.Reference, Width, 1, 0))
	}
	return set
}

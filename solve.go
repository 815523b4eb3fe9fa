package inputbar

import (
	"errors"
	"fmt"

	"github.com/esimov/inputbar/utils"
)

const epsilon = 1e-6

var (
	// ErrNoLeadingAnchor is returned when a chain of edge-adjacent buttons
	// is not anchored to the container's leading edge.
	ErrNoLeadingAnchor = errors.New("button chain has no leading anchor")
	// ErrUnderconstrained is returned when the widths of a row cannot be determined.
	ErrUnderconstrained = errors.New("row widths are underconstrained")
	// ErrInconsistent is returned when the constraints of a row contradict each other.
	ErrInconsistent = errors.New("row constraints are inconsistent")
)

// Frame is the solved geometry of a button. Pinned frames are in the
// coordinates of the outer view; the others are in row container
// coordinates and move with the container offset.
type Frame struct {
	Rect   Rect
	Pinned bool
}

// affine is a*x + b for the single unknown x of a row.
type affine struct {
	a, b float64
}

func (f affine) scale(m float64) affine { return affine{f.a * m, f.b * m} }
func (f affine) add(k float64) affine   { return affine{f.a, f.b + k} }
func (f affine) eval(x float64) float64 { return f.a*x + f.b }

// Solve resolves the constraint set into frames for a container width.
//
// Every row is a chain running from the leading anchor along
// trailing == leading links. The widths in a chain are linked by
// proportional relations, so each is an affine function of the width of
// one button. A trailing anchor (the widths sum to the container width) or
// a width equality with a button of an earlier row closes the system.
// Rows are solved in the order their leading anchors appear in the set.
// Solved widths are never negative.
func Solve(set ConstraintSet, width float64) (map[Button]Frame, error) {
	var (
		starts   []Button
		next     = make(map[Button]Button)
		trailing = make(map[Button]bool)
		widths   []Constraint
		tops     = make(map[Button]Constraint)
		heights  = make(map[Button]float64)
		items    = make(map[Button]bool)
	)

	for _, c := range set {
		items[c.Item] = true
		switch {
		case c.Attr == Leading && c.Anchor == AnchorContainer:
			starts = append(starts, c.Item)
		case c.Attr == Trailing && c.Anchor == AnchorContainer:
			trailing[c.Item] = true
		case c.Attr == Trailing && c.Anchor == AnchorItem && c.TargetAttr == Leading:
			next[c.Item] = c.Target
		case c.Attr == Width && c.Anchor == AnchorItem && c.TargetAttr == Width:
			widths = append(widths, c)
		case c.Attr == Top:
			tops[c.Item] = c
		case c.Attr == Height && c.Anchor == AnchorNone:
			heights[c.Item] = c.Constant
		}
	}

	solved := make(map[Button]float64)
	frames := make(map[Button]Frame, len(items))
	for _, start := range starts {
		chain := []Button{start}
		seen := map[Button]bool{start: true}
		for b, ok := next[start]; ok && !seen[b]; b, ok = next[b] {
			seen[b] = true
			chain = append(chain, b)
		}
		if err := solveChain(chain, trailing, widths, width, solved); err != nil {
			return nil, fmt.Errorf("row starting at %s: %w", name(start), err)
		}

		var x float64
		for _, b := range chain {
			f := Frame{Rect: Rect{X: x, W: solved[b], H: heights[b]}}
			if top, ok := tops[b]; ok {
				f.Rect.Y = top.Constant
				f.Pinned = top.Anchor == AnchorView
			}
			frames[b] = f
			x += solved[b]
		}
	}

	for b := range items {
		if _, ok := frames[b]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrNoLeadingAnchor, name(b))
		}
	}
	return frames, nil
}

// solveChain determines the widths of the chain and stores them in solved.
func solveChain(chain []Button, trailing map[Button]bool, widths []Constraint, width float64, solved map[Button]float64) error {
	inChain := make(map[Button]bool, len(chain))
	for _, b := range chain {
		inChain[b] = true
	}

	unknown := chain[0]
	if len(chain) > 1 {
		unknown = chain[1]
	}
	expr := map[Button]affine{unknown: {a: 1}}
	lookup := func(b Button) (affine, bool) {
		if f, ok := expr[b]; ok {
			return f, true
		}
		if !inChain[b] {
			if w, ok := solved[b]; ok {
				return affine{b: w}, true
			}
		}
		return affine{}, false
	}

	// Equations A*x + B == 0 collected while propagating.
	var equations []affine
	used := make([]bool, len(widths))
	for progress := true; progress; {
		progress = false
		for i, c := range widths {
			if used[i] || !inChain[c.Item] {
				continue
			}
			item, itemOK := lookup(c.Item)
			target, targetOK := lookup(c.Target)
			switch {
			case itemOK && targetOK:
				rhs := target.scale(c.Multiplier).add(c.Constant)
				equations = append(equations, affine{a: item.a - rhs.a, b: item.b - rhs.b})
			case targetOK:
				expr[c.Item] = target.scale(c.Multiplier).add(c.Constant)
			case itemOK && inChain[c.Target] && c.Multiplier != 0:
				expr[c.Target] = item.add(-c.Constant).scale(1 / c.Multiplier)
			default:
				continue
			}
			used[i] = true
			progress = true
		}
	}

	for _, b := range chain {
		if _, ok := expr[b]; !ok {
			return fmt.Errorf("%w: no width relation for %s", ErrUnderconstrained, name(b))
		}
	}
	if trailing[chain[len(chain)-1]] {
		var sum affine
		for _, b := range chain {
			sum.a += expr[b].a
			sum.b += expr[b].b
		}
		equations = append(equations, sum.add(-width))
	}

	var (
		x     float64
		found bool
	)
	for _, eq := range equations {
		if utils.Abs(eq.a) < epsilon {
			if utils.Abs(eq.b) > epsilon {
				return ErrInconsistent
			}
			continue
		}
		v := -eq.b / eq.a
		if found && !utils.NearlyEqual(v, x, epsilon) {
			return ErrInconsistent
		}
		x, found = v, true
	}
	if !found {
		return ErrUnderconstrained
	}

	// Rows narrower than their fixed edge shares would give the interior
	// buttons a negative width; those collapse to zero and the row
	// overflows the trailing edge instead.
	for _, b := range chain {
		solved[b] = utils.Max(0, expr[b].eval(x))
	}
	return nil
}

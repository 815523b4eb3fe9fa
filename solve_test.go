package inputbar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func layoutRows(t *testing.T, width float64, n int) (Packing, map[Button]Frame, Button) {
	t.Helper()
	c := DefaultConstants()
	expand := NewLabel(ExpandTitle, Size{})
	p, ok := Pack(width, labels(n), expand, c)
	require.True(t, ok)

	var set ConstraintSet
	for _, row := range p.Rows {
		set = append(set, Emit(row, c)...)
	}
	frames, err := Solve(set, width)
	require.NoError(t, err)
	return p, frames, expand
}

func TestSolve_FullRowFillsContainer(t *testing.T) {
	for _, n := range []int{1, 2, 3, 5, 6} {
		p, frames, _ := layoutRows(t, 320, n)
		row := p.Rows[0]

		assert.InDelta(t, 0, frames[row.First()].Rect.X, epsilon, "n=%d", n)
		assert.InDelta(t, 320, frames[row.Last()].Rect.Right(), epsilon, "n=%d", n)
		for i := 1; i < len(row.Buttons); i++ {
			prev, cur := frames[row.Buttons[i-1]].Rect, frames[row.Buttons[i]].Rect
			assert.InDelta(t, prev.Right(), cur.X, epsilon, "n=%d i=%d", n, i)
		}
	}
}

func TestSolve_WidthSharing(t *testing.T) {
	assert := assert.New(t)

	// Six slots at 320: first and last are x/2 + 12, four interior are x.
	// 5x + 24 = 320.
	p, frames, expand := layoutRows(t, 320, 7)
	row := p.Rows[0]
	x := (320.0 - 24) / 5

	assert.InDelta(x/2+12, frames[row.First()].Rect.W, epsilon)
	for _, b := range row.Buttons[1 : len(row.Buttons)-1] {
		assert.InDelta(x, frames[b].Rect.W, epsilon)
	}
	assert.InDelta(x/2+12, frames[expand].Rect.W, epsilon)
	assert.True(frames[expand].Pinned)
	assert.Equal(0.0, frames[expand].Rect.Y)

	// The partial second row matches the reference width and stops short
	// of the trailing edge, leaving room for the expand control.
	second := p.Rows[1]
	last := frames[second.Last()].Rect
	assert.InDelta(frames[second.Reference].Rect.W, last.W, epsilon)
	assert.InDelta(x/2+12, frames[second.First()].Rect.W, epsilon)
	assert.Less(last.Right(), 320.0)
	assert.Equal(56.0, last.Y)
	assert.False(frames[second.Last()].Pinned)
}

func TestSolve_SingleButtonRows(t *testing.T) {
	_, frames, expand := layoutRows(t, 40, 2)

	assert.InDelta(t, 40, frames[expand].Rect.W, epsilon)
	for b, f := range frames {
		if b != expand {
			assert.Equal(t, 56.0, f.Rect.Y)
		}
	}
}

func TestSolve_Errors(t *testing.T) {
	b := labels(2)

	_, err := Solve(ConstraintSet{
		equal(b[0], Leading, AnchorContainer, nil, Leading, 1, 0),
		equal(b[0], Trailing, AnchorItem, b[1], Leading, 1, 0),
	}, 100)
	assert.ErrorIs(t, err, ErrUnderconstrained)

	_, err = Solve(ConstraintSet{
		equal(b[0], Leading, AnchorContainer, nil, Leading, 1, 0),
		equal(b[0], Trailing, AnchorContainer, nil, Trailing, 1, 0),
		constant(b[1], Height, 56),
	}, 100)
	assert.ErrorIs(t, err, ErrNoLeadingAnchor)

	_, err = Solve(ConstraintSet{
		equal(b[0], Leading, AnchorContainer, nil, Leading, 1, 0),
		equal(b[0], Trailing, AnchorItem, b[1], Leading, 1, 0),
		equal(b[1], Trailing, AnchorContainer, nil, Trailing, 1, 0),
		equal(b[1], Width, AnchorItem, b[0], Width, 1, 0),
		equal(b[1], Width, AnchorItem, b[0], Width, 1, 10),
	}, 100)
	assert.ErrorIs(t, err, ErrInconsistent)
}

func TestSolve_Empty(t *testing.T) {
	frames, err := Solve(nil, 320)
	assert.NoError(t, err)
	assert.Empty(t, frames)
}

func TestSolve_NarrowRowCollapsesInteriorWidths(t *testing.T) {
	c := DefaultConstants()
	for _, width := range []float64{10, 20, 23} {
		p, frames, expand := layoutRows(t, width, 4)
		require.Len(t, p.Rows, 2)
		require.Equal(t, 1, p.Capacity)

		assert.InDelta(t, width, frames[expand].Rect.W, epsilon)
		row := p.Rows[1]
		for i, b := range row.Buttons {
			f := frames[b].Rect
			assert.GreaterOrEqual(t, f.W, 0.0, "width %v button %d", width, i)
			if i > 0 {
				assert.InDelta(t, frames[row.Buttons[i-1]].Rect.Right(), f.X, epsilon)
			}
		}
		for _, b := range row.Buttons[1 : len(row.Buttons)-1] {
			assert.Zero(t, frames[b].Rect.W, "width %v", width)
		}
		// The edge buttons keep their fixed shares, so the row overflows.
		assert.Greater(t, frames[row.Last()].Rect.Right(), width)
		interior := (width - 2*c.edgeShare()) / 3
		assert.InDelta(t, interior/2+c.edgeShare(), frames[row.First()].Rect.W, epsilon)
		assert.InDelta(t, interior/2+c.edgeShare(), frames[row.Last()].Rect.W, epsilon)
	}
}

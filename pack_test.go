package inputbar

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPack_SingleRowWhenButtonsFit(t *testing.T) {
	assert := assert.New(t)
	c := DefaultConstants()
	buttons := labels(5)
	expand := NewLabel(ExpandTitle, Size{})

	p, ok := Pack(320, buttons, expand, c)
	require.True(t, ok)

	assert.Equal(6, p.Capacity)
	assert.False(p.Multiline)
	assert.Len(p.Rows, 1)
	assert.Equal(buttons, p.Rows[0].Buttons)
	assert.True(p.Rows[0].Full)
	assert.Nil(p.Rows[0].Expand)
	assert.NotContains(p.Rows[0].Buttons, Button(expand))
	assert.Equal(c.BarHeight, p.Height)
}

func TestPack_TwoRowsWhenButtonsOverflow(t *testing.T) {
	assert := assert.New(t)
	c := DefaultConstants()
	buttons := labels(7)
	expand := NewLabel(ExpandTitle, Size{})

	p, ok := Pack(320, buttons, expand, c)
	require.True(t, ok)

	assert.Equal(6, p.Capacity)
	assert.True(p.Multiline)
	require.Len(t, p.Rows, 2)

	top, bottom := p.Rows[0], p.Rows[1]
	assert.Equal(append(append([]Button{}, buttons[:5]...), expand), top.Buttons)
	assert.Equal(Button(expand), top.Expand)
	assert.Equal(0.0, top.Inset)
	assert.Equal(buttons[5:], bottom.Buttons)
	assert.Equal(c.BarHeight, bottom.Inset)
	assert.False(bottom.Full)
	assert.Equal(top.Buttons[1], bottom.Reference)
	assert.Equal(2*c.BarHeight, p.Height)
}

func TestPack_SecondRowFullAtCapacity(t *testing.T) {
	c := DefaultConstants()
	// 414 / 56 = 7 slots: 6 buttons plus the expand control, then 7 more.
	p, ok := Pack(414, labels(13), NewLabel(ExpandTitle, Size{}), c)
	require.True(t, ok)

	assert.Equal(t, 7, p.Capacity)
	require.Len(t, p.Rows, 2)
	assert.Len(t, p.Rows[1].Buttons, 7)
	assert.True(t, p.Rows[1].Full)
}

func TestPack_NonPositiveWidthIsNoop(t *testing.T) {
	for _, w := range []float64{0, -10} {
		p, ok := Pack(w, labels(3), NewLabel(ExpandTitle, Size{}), DefaultConstants())
		assert.False(t, ok)
		assert.Empty(t, p.Rows)
	}
}

func TestPack_EmptyButtons(t *testing.T) {
	p, ok := Pack(320, nil, NewLabel(ExpandTitle, Size{}), DefaultConstants())
	assert.True(t, ok)
	assert.Empty(t, p.Rows)
	assert.False(t, p.Multiline)
	assert.Equal(t, 0.0, p.Height)
}

func TestPack_NarrowContainerKeepsOnlyExpandOnFirstRow(t *testing.T) {
	assert := assert.New(t)
	expand := NewLabel(ExpandTitle, Size{})
	buttons := labels(3)

	for _, w := range []float64{40, 53, 100} {
		p, ok := Pack(w, buttons, expand, DefaultConstants())
		require.True(t, ok)
		require.Len(t, p.Rows, 2, "width %v", w)

		if p.Capacity == 1 {
			assert.Equal([]Button{expand}, p.Rows[0].Buttons)
			assert.Equal(buttons, p.Rows[1].Buttons)
			assert.Nil(p.Rows[1].Reference)
			assert.True(p.Rows[1].anchorsTrailing())
		} else {
			assert.Len(p.Rows[0].Buttons, p.Capacity)
		}
		assert.Equal(buttons, flatten(p, expand))
	}
}

func TestPack_SingleButtonOnNarrowContainerStaysOnOneRow(t *testing.T) {
	expand := NewLabel(ExpandTitle, Size{})
	button := labels(1)

	p, ok := Pack(40, button, expand, DefaultConstants())
	require.True(t, ok)
	assert.False(t, p.Multiline)
	assert.Equal(t, 1, p.Capacity)
	require.Len(t, p.Rows, 1)
	assert.Equal(t, button, p.Rows[0].Buttons)
	assert.True(t, p.Rows[0].Full)
}

func TestPack_PreservesOrderForAllWidths(t *testing.T) {
	c := DefaultConstants()
	expand := NewLabel(ExpandTitle, Size{})

	for n := 1; n <= 12; n++ {
		buttons := labels(n)
		for w := 1.0; w <= 800; w += 7 {
			p, ok := Pack(w, buttons, expand, c)
			require.True(t, ok)

			capacity := int(math.Max(1, math.Floor(w/c.MinButtonWidthFor(w))))
			assert.Equal(t, capacity, p.Capacity)
			assert.Equal(t, capacity < n, p.Multiline, "n=%d w=%v", n, w)
			assert.Equal(t, buttons, flatten(p, expand), "n=%d w=%v", n, w)

			if p.Multiline {
				assert.Len(t, p.Rows[0].Buttons, capacity)
				assert.Equal(t, Button(expand), p.Rows[0].Last())
				assert.Len(t, p.Rows[1].Buttons, n-(capacity-1))
				assert.Equal(t, len(p.Rows[1].Buttons) == capacity, p.Rows[1].Full)
			} else {
				assert.Len(t, p.Rows, 1)
				assert.NotContains(t, p.Rows[0].Buttons, Button(expand))
			}
		}
	}
}

package inputbar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstants_MinButtonWidthTiers(t *testing.T) {
	assert := assert.New(t)
	c := DefaultConstants()

	assert.Equal(53.0, c.MinButtonWidthFor(320))
	assert.Equal(53.0, c.MinButtonWidthFor(100))
	assert.Equal(56.0, c.MinButtonWidthFor(320.5))
	assert.Equal(56.0, c.MinButtonWidthFor(414))
}

func TestConstants_ButtonMargin(t *testing.T) {
	c := DefaultConstants()
	assert.Equal(t, 4.0, c.ButtonMargin())
	assert.Equal(t, 12.0, c.edgeShare())
}

func TestConstants_Scale(t *testing.T) {
	c := DefaultConstants().Scale(2)
	assert.Equal(t, 112.0, c.BarHeight)
	assert.Equal(t, 8.0, c.ButtonMargin())
}

func TestConstants_Validate(t *testing.T) {
	assert := assert.New(t)

	assert.NoError(DefaultConstants().Validate())

	for _, mutate := range []func(*Constants){
		func(c *Constants) { c.MinButtonWidth = 0 },
		func(c *Constants) { c.CompactMinButtonWidth = -1 },
		func(c *Constants) { c.BarHeight = 0 },
		func(c *Constants) { c.IconSize = -1 },
		func(c *Constants) { c.ContentRightMargin = -2 },
	} {
		c := DefaultConstants()
		mutate(&c)
		assert.ErrorIs(c.Validate(), ErrInvalidConstants)
	}
}

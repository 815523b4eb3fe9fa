package inputbar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEasing_EaseInOutExpo(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(0.0, EaseInOutExpo(0))
	assert.Equal(1.0, EaseInOutExpo(1))
	assert.InDelta(0.5, EaseInOutExpo(0.5), 1e-9)
	assert.Less(EaseInOutExpo(0.25), 0.25)
	assert.Greater(EaseInOutExpo(0.75), 0.75)
	assert.Equal(0.3, Linear(0.3))
}

func TestTransition_Value(t *testing.T) {
	assert := assert.New(t)
	start := time.Unix(100, 0)
	tr := transition{from: 0, to: 56, start: start, duration: 100 * time.Millisecond, easing: Linear}

	assert.Equal(0.0, tr.value(start.Add(-time.Second)))
	assert.InDelta(28, tr.value(start.Add(50*time.Millisecond)), 1e-9)
	assert.Equal(56.0, tr.value(start.Add(100*time.Millisecond)))
	assert.True(tr.running(start.Add(99 * time.Millisecond)))
	assert.False(tr.running(start.Add(100 * time.Millisecond)))

	immediate := transition{from: 0, to: 56, start: start}
	assert.Equal(56.0, immediate.value(start))
	assert.False(immediate.running(start))
}

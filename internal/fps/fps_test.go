package fps

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCounter(t *testing.T) {
	c := New()
	t0 := time.Unix(1000, 0)

	_, ok := c.Tick(t0)
	assert.False(t, ok)

	var rate float64
	for i := 1; i <= 60; i++ {
		rate, ok = c.Tick(t0.Add(time.Duration(i) * time.Second / 60))
		if i < 60 {
			assert.False(t, ok, "frame %d", i)
		}
	}
	assert.True(t, ok)
	assert.InDelta(t, 60, rate, 1e-9)

	_, ok = c.Tick(t0.Add(time.Second + time.Millisecond))
	assert.False(t, ok)
}

func TestCounterLongFrame(t *testing.T) {
	c := &Counter{Interval: time.Second}
	t0 := time.Unix(0, 1)
	c.Tick(t0)
	rate, ok := c.Tick(t0.Add(4 * time.Second))
	assert.True(t, ok)
	assert.InDelta(t, 0.25, rate, 1e-9)
}

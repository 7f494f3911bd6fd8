package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStepFrameClockAdvancesPerFrame(t *testing.T) {
	start := time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)
	c := NewStepFrameClock(start, 10*time.Millisecond)

	assert.Equal(t, start, c.Now())
	c.NextFrame()
	c.NextFrame()
	assert.Equal(t, start.Add(20*time.Millisecond), c.Now())
}

func TestTickerFrameClockWaitsForTick(t *testing.T) {
	c := NewFrameClock(time.Millisecond)
	defer c.Stop()

	before := c.Now()
	c.NextFrame()
	assert.False(t, c.Now().Before(before))
}

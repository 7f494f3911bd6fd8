package clock

import (
	"sync"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_clock.go github.com/KirkDiggler/lootwheel/internal/common/clock Clock,FrameClock

// Clock reports the current time
type Clock interface {
	Now() time.Time
}

// FrameClock paces animations. NextFrame blocks until the next frame is due.
type FrameClock interface {
	Clock
	NextFrame()
}

// DefaultClock implements the Clock interface using the system clock
type DefaultClock struct{}

// New returns the system clock
func New() *DefaultClock {
	return &DefaultClock{}
}

// Now returns the current time
func (c *DefaultClock) Now() time.Time {
	return time.Now()
}

// DefaultFrameInterval is roughly one display refresh at 60Hz
const DefaultFrameInterval = 16 * time.Millisecond

// TickerFrameClock is a FrameClock backed by the system clock and a ticker
type TickerFrameClock struct {
	DefaultClock
	ticker *time.Ticker
}

// NewFrameClock creates a frame clock ticking every interval.
// Stop must be called to release the ticker.
func NewFrameClock(interval time.Duration) *TickerFrameClock {
	if interval <= 0 {
		interval = DefaultFrameInterval
	}

	return &TickerFrameClock{
		ticker: time.NewTicker(interval),
	}
}

// NextFrame waits for the next tick
func (c *TickerFrameClock) NextFrame() {
	<-c.ticker.C
}

// Stop releases the underlying ticker
func (c *TickerFrameClock) Stop() {
	c.ticker.Stop()
}

// StepFrameClock advances virtual time by a fixed step per frame without
// sleeping. Spins driven by it finish immediately.
type StepFrameClock struct {
	mu   sync.Mutex
	now  time.Time
	step time.Duration
}

// NewStepFrameClock creates a virtual frame clock starting at start
func NewStepFrameClock(start time.Time, step time.Duration) *StepFrameClock {
	if step <= 0 {
		step = DefaultFrameInterval
	}
	return &StepFrameClock{now: start, step: step}
}

// Now returns the virtual time
func (c *StepFrameClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// NextFrame advances the virtual time by one step
func (c *StepFrameClock) NextFrame() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(c.step)
}

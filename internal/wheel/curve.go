package wheel

import (
	"math"
	"time"
)

// Curve maps the elapsed fraction t in [0,1] of an animation to a wheel angle
type Curve interface {
	Angle(t float64) float64
	Start() float64
	End() float64
}

// wobble parameters for the mechanical settle at the end of a spin
const (
	wobbleFrom      = 0.92
	wobbleAmplitude = 0.06
	wobblePeriodMs  = 20.0
)

// SpinCurve rotates forward from a start angle to the target plus extra turns
type SpinCurve struct {
	start      float64
	end        float64
	durationMs float64
}

// NewSpinCurve builds the forward spin landing on target after at least
// extraTurns whole turns. The end is pushed forward by whole turns until it
// is not behind start, so the wheel never runs backwards.
func NewSpinCurve(start, target float64, extraTurns int, duration time.Duration) *SpinCurve {
	if extraTurns < MinExtraTurns {
		extraTurns = MinExtraTurns
	}

	end := target + float64(extraTurns)*FullTurn
	for end < start {
		end += FullTurn
	}

	return &SpinCurve{
		start:      start,
		end:        end,
		durationMs: float64(duration.Milliseconds()),
	}
}

// Start returns the angle at t=0
func (c *SpinCurve) Start() float64 { return c.start }

// End returns the angle at t=1
func (c *SpinCurve) End() float64 { return c.end }

// Angle returns the eased angle at t, with a small wobble near the end
func (c *SpinCurve) Angle(t float64) float64 {
	t = clamp01(t)
	angle := c.start + (c.end-c.start)*EaseOutCubic(t)
	if t > wobbleFrom {
		elapsedMs := t * c.durationMs
		angle += math.Sin(elapsedMs/wobblePeriodMs) * (1 - t) * wobbleAmplitude
	}
	return angle
}

// ReturnCurve brings the wheel back to rest by the shortest path
type ReturnCurve struct {
	start float64
	delta float64
}

// NewReturnCurve builds the return from start to the nearest full turn
func NewReturnCurve(start float64) *ReturnCurve {
	return &ReturnCurve{
		start: start,
		delta: shortestDelta(start),
	}
}

// Start returns the angle at t=0
func (c *ReturnCurve) Start() float64 { return c.start }

// End returns the angle at t=1, visually identical to 0
func (c *ReturnCurve) End() float64 { return c.start + c.delta }

// Angle returns the eased angle at t
func (c *ReturnCurve) Angle(t float64) float64 {
	return c.start + c.delta*EaseInOutCubic(clamp01(t))
}

package wheel

import (
	"sync"
	"time"

	"github.com/KirkDiggler/lootwheel/internal/common/clock"
)

// FrameFunc receives every rendered angle together with its elapsed fraction
type FrameFunc func(angle, t float64)

// Settings tune the animations
type Settings struct {
	// SpinDuration of the forward spin
	SpinDuration time.Duration `yaml:"spin_duration"`

	// ReturnDuration of the return to rest
	ReturnDuration time.Duration `yaml:"return_duration"`

	// ExtraTurns made before landing, at least MinExtraTurns
	ExtraTurns int `yaml:"extra_turns"`

	// FrameInterval between rendered frames
	FrameInterval time.Duration `yaml:"frame_interval"`
}

// Lower bound for SpinDuration
const MinSpinDuration = 800 * time.Millisecond

// DefaultSettings returns the stock wheel tuning
func DefaultSettings() Settings {
	return Settings{
		SpinDuration:   4200 * time.Millisecond,
		ReturnDuration: 500 * time.Millisecond,
		ExtraTurns:     6,
		FrameInterval:  clock.DefaultFrameInterval,
	}
}

// Normalize clamps the settings into their valid ranges
func (s Settings) Normalize() Settings {
	if s.SpinDuration < MinSpinDuration {
		s.SpinDuration = MinSpinDuration
	}
	if s.ReturnDuration < 0 {
		s.ReturnDuration = 0
	}
	if s.ExtraTurns < MinExtraTurns {
		s.ExtraTurns = MinExtraTurns
	}
	if s.FrameInterval <= 0 {
		s.FrameInterval = clock.DefaultFrameInterval
	}
	return s
}

// Wheel holds the current rotation of one raffle's wheel. It is safe to
// read while an animation runs.
type Wheel struct {
	mu    sync.RWMutex
	angle float64
}

// Angle returns the current rotation in radians
func (w *Wheel) Angle() float64 {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.angle
}

func (w *Wheel) setAngle(angle float64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.angle = angle
}

// AnimatorConfig configures an Animator
type AnimatorConfig struct {
	Settings Settings

	// Optional frame clock. When nil every animation gets its own ticker.
	FrameClock clock.FrameClock
}

// Animator plays curves frame by frame
type Animator struct {
	settings   Settings
	frameClock clock.FrameClock
}

// NewAnimator creates a new animator
func NewAnimator(cfg *AnimatorConfig) *Animator {
	if cfg == nil {
		cfg = &AnimatorConfig{Settings: DefaultSettings()}
	}

	return &Animator{
		settings:   cfg.Settings.Normalize(),
		frameClock: cfg.FrameClock,
	}
}

// Settings returns the normalized settings in use
func (a *Animator) Settings() Settings {
	return a.settings
}

// Spin rotates w forward until slice index of total is under the pointer.
// It returns the landing angle.
func (a *Animator) Spin(w *Wheel, index, total int, onFrame FrameFunc) float64 {
	curve := NewSpinCurve(w.Angle(), TargetAngle(index, total), a.settings.ExtraTurns, a.settings.SpinDuration)
	end := a.Play(curve, a.settings.SpinDuration, w.tracking(onFrame))
	w.setAngle(end)
	return end
}

// Return brings w back to rest and resets its angle to exactly 0
func (a *Animator) Return(w *Wheel, onFrame FrameFunc) {
	curve := NewReturnCurve(w.Angle())
	a.Play(curve, a.settings.ReturnDuration, w.tracking(onFrame))
	w.setAngle(0)
}

// tracking records every rendered angle on w before passing it on
func (w *Wheel) tracking(onFrame FrameFunc) FrameFunc {
	return func(angle, t float64) {
		w.setAngle(angle)
		if onFrame != nil {
			onFrame(angle, t)
		}
	}
}

// Play renders curve over duration and returns its end angle. The final
// frame is always rendered at t=1.
func (a *Animator) Play(curve Curve, duration time.Duration, onFrame FrameFunc) float64 {
	fc := a.frameClock
	if fc == nil {
		ticker := clock.NewFrameClock(a.settings.FrameInterval)
		defer ticker.Stop()
		fc = ticker
	}

	start := fc.Now()
	for {
		t := 1.0
		if duration > 0 {
			t = clamp01(float64(fc.Now().Sub(start)) / float64(duration))
		}

		if onFrame != nil {
			onFrame(curve.Angle(t), t)
		}
		if t >= 1 {
			return curve.End()
		}
		fc.NextFrame()
	}
}

package imui

import (
	"math"
	"time"

	"github.com/tanema/gween/ease"
)

// DefaultEaseOutFactor is the decay rate used by a zero-value EaseOut.
const DefaultEaseOutFactor = 10.0

// Interpolation maps animation progress to an eased blend factor.
//
// Progress receives the unclamped ratio elapsed/duration: negative before the
// animation starts, above 1 after it ends. Implementations return a value in
// [0, 1] for ratios inside [0, 1].
type Interpolation interface {
	Progress(ratio float64) float64
}

// Ratio returns (now-start)/duration in float64. A non-positive duration
// yields 0 before start and 1 from start onwards.
//
// The ratio is computed from integer nanoseconds so that an origin far in the
// past (the Unix epoch, say) does not lose precision.
func Ratio(now, start time.Time, duration time.Duration) float64 {
	elapsed := now.Sub(start)
	if duration <= 0 {
		if elapsed < 0 {
			return 0
		}
		return 1
	}
	return float64(elapsed) / float64(duration)
}

// Sample evaluates in at the instant now for an animation that began at start
// and lasts duration.
func Sample(in Interpolation, now, start time.Time, duration time.Duration) float64 {
	return in.Progress(Ratio(now, start, duration))
}

// Linear progresses at constant speed, clamped to [0, 1].
type Linear struct{}

// Progress implements Interpolation.
func (Linear) Progress(r float64) float64 {
	return clamp01(r)
}

// EaseOut decelerates exponentially: 1 - exp(-r*Factor). A zero Factor uses
// DefaultEaseOutFactor. The curve approaches but never reaches 1.
type EaseOut struct {
	Factor float64
}

// Progress implements Interpolation.
func (e EaseOut) Progress(r float64) float64 {
	if !(r >= 0) {
		return 0
	}
	factor := e.Factor
	if factor == 0 {
		factor = DefaultEaseOutFactor
	}
	return 1 - math.Exp(-r*factor)
}

// Eased adapts a gween easing function (ease.OutBounce, ease.InOutCubic, ...)
// to Interpolation. The ratio is clamped to [0, 1] before easing.
type Eased struct {
	Func ease.TweenFunc
}

// Progress implements Interpolation.
func (e Eased) Progress(r float64) float64 {
	if e.Func == nil {
		return clamp01(r)
	}
	return float64(e.Func(float32(clamp01(r)), 0, 1, 1))
}

// Reversed plays Inner backwards.
type Reversed struct {
	Inner Interpolation
}

// Progress implements Interpolation.
func (r Reversed) Progress(ratio float64) float64 {
	return r.Inner.Progress(1 - ratio)
}

// Repeated restarts Inner every period.
type Repeated struct {
	Inner Interpolation
}

// Progress implements Interpolation.
func (r Repeated) Progress(ratio float64) float64 {
	m := math.Mod(ratio, 1)
	if m < 0 {
		m += 1
	}
	return r.Inner.Progress(m)
}

// AlternateRepeated plays Inner forwards then backwards, forever.
type AlternateRepeated struct {
	Inner Interpolation
}

// Progress implements Interpolation.
func (r AlternateRepeated) Progress(ratio float64) float64 {
	m := math.Mod(ratio, 2)
	if m < 0 {
		m += 2
	}
	if m > 1 {
		m = 2 - m
	}
	return r.Inner.Progress(m)
}

// Reverse wraps in so it plays backwards.
func Reverse(in Interpolation) Interpolation { return Reversed{Inner: in} }

// Repeat wraps in so it loops.
func Repeat(in Interpolation) Interpolation { return Repeated{Inner: in} }

// AlternateRepeat wraps in so it loops back and forth.
func AlternateRepeat(in Interpolation) Interpolation { return AlternateRepeated{Inner: in} }

// clamp01 clamps v to [0, 1]. NaN maps to 0.
func clamp01(v float64) float64 {
	if !(v > 0) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

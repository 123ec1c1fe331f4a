package shockwave

import (
	"sort"

	"github.com/tanema/gween/ease"
)

// Curve is a deterministic time-to-scalar mapping sampled by evaluation.
// Evaluate clamps t to [0, 1]; outside that domain the boundary value is
// returned (flat extrapolation). Implementations must be referentially
// transparent: the same t always yields the same output, with no side
// effects. Curves are read-only and safe to share across pulses.
type Curve interface {
	Evaluate(t float64) float64
}

// ConstantCurve returns the same value for every t.
type ConstantCurve float64

// Evaluate returns the constant value regardless of t.
func (c ConstantCurve) Evaluate(float64) float64 {
	return float64(c)
}

// EaseCurve maps [0, 1] to [Begin, End] through a gween easing function.
// A nil Func falls back to ease.Linear.
type EaseCurve struct {
	Begin, End float64
	Func       ease.TweenFunc
}

// Evaluate samples the easing function at clamped t.
func (c EaseCurve) Evaluate(t float64) float64 {
	t = clamp01(t)
	fn := c.Func
	if fn == nil {
		fn = ease.Linear
	}
	return float64(fn(float32(t), float32(c.Begin), float32(c.End-c.Begin), 1))
}

// Keyframe is a single (time, value) pair in a KeyframeCurve.
type Keyframe struct {
	Time  float64 // normalized time in [0, 1]
	Value float64
}

// KeyframeCurve is a pure lookup table: sorted keyframes with linear
// interpolation between neighbors and flat extrapolation beyond the first
// and last keys. The zero value evaluates to 0 everywhere.
type KeyframeCurve struct {
	keys []Keyframe
}

// NewKeyframeCurve builds a curve from the given keyframes. The keys are
// copied and sorted by time; the input slice is not retained.
func NewKeyframeCurve(keys ...Keyframe) KeyframeCurve {
	sorted := make([]Keyframe, len(keys))
	copy(sorted, keys)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Time < sorted[j].Time
	})
	return KeyframeCurve{keys: sorted}
}

// Evaluate samples the table at clamped t.
func (c KeyframeCurve) Evaluate(t float64) float64 {
	if len(c.keys) == 0 {
		return 0
	}
	t = clamp01(t)
	if t <= c.keys[0].Time {
		return c.keys[0].Value
	}
	last := c.keys[len(c.keys)-1]
	if t >= last.Time {
		return last.Value
	}
	// Find the first key at or past t.
	i := sort.Search(len(c.keys), func(i int) bool {
		return c.keys[i].Time >= t
	})
	k0 := c.keys[i-1]
	k1 := c.keys[i]
	span := k1.Time - k0.Time
	if span <= 0 {
		return k1.Value
	}
	return lerp(k0.Value, k1.Value, (t-k0.Time)/span)
}

// Keys returns a copy of the curve's keyframes in time order.
func (c KeyframeCurve) Keys() []Keyframe {
	out := make([]Keyframe, len(c.keys))
	copy(out, c.keys)
	return out
}

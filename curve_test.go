package shockwave

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

const epsilon = 1e-6

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

// --- KeyframeCurve ---

func TestKeyframeCurveInterpolation(t *testing.T) {
	c := NewKeyframeCurve(
		Keyframe{Time: 0, Value: 0},
		Keyframe{Time: 0.5, Value: 1},
		Keyframe{Time: 1, Value: 0.5},
	)
	tests := []struct {
		name string
		t    float64
		want float64
	}{
		{"first key", 0, 0},
		{"quarter", 0.25, 0.5},
		{"middle key", 0.5, 1},
		{"three quarters", 0.75, 0.75},
		{"last key", 1, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertNear(t, "Evaluate", c.Evaluate(tt.t), tt.want)
		})
	}
}

func TestKeyframeCurveFlatExtrapolation(t *testing.T) {
	c := NewKeyframeCurve(
		Keyframe{Time: 0.2, Value: 3},
		Keyframe{Time: 0.8, Value: 7},
	)
	assertNear(t, "below domain", c.Evaluate(-5), 3)
	assertNear(t, "at zero", c.Evaluate(0), 3)
	assertNear(t, "before first key", c.Evaluate(0.1), 3)
	assertNear(t, "after last key", c.Evaluate(0.9), 7)
	assertNear(t, "above domain", c.Evaluate(5), 7)
}

func TestKeyframeCurveSortsInput(t *testing.T) {
	c := NewKeyframeCurve(
		Keyframe{Time: 1, Value: 10},
		Keyframe{Time: 0, Value: 0},
		Keyframe{Time: 0.5, Value: 5},
	)
	assertNear(t, "Evaluate(0.25)", c.Evaluate(0.25), 2.5)
	keys := c.Keys()
	for i := 1; i < len(keys); i++ {
		if keys[i].Time < keys[i-1].Time {
			t.Fatalf("keys not sorted: %v", keys)
		}
	}
}

func TestKeyframeCurveDegenerate(t *testing.T) {
	var empty KeyframeCurve
	assertNear(t, "empty curve", empty.Evaluate(0.5), 0)

	single := NewKeyframeCurve(Keyframe{Time: 0.5, Value: 4})
	assertNear(t, "single key below", single.Evaluate(0), 4)
	assertNear(t, "single key above", single.Evaluate(1), 4)
}

func TestKeyframeCurveDuplicateTimes(t *testing.T) {
	// Two keys at the same time: the later-listed value wins past that
	// time (stable sort preserves input order).
	c := NewKeyframeCurve(
		Keyframe{Time: 0, Value: 0},
		Keyframe{Time: 0.5, Value: 1},
		Keyframe{Time: 0.5, Value: 2},
		Keyframe{Time: 1, Value: 2},
	)
	assertNear(t, "just past step", c.Evaluate(0.75), 2)
}

func TestKeyframeCurveKeysReturnsCopy(t *testing.T) {
	c := NewKeyframeCurve(Keyframe{Time: 0, Value: 1}, Keyframe{Time: 1, Value: 2})
	keys := c.Keys()
	keys[0].Value = 99
	assertNear(t, "Evaluate(0) after mutating copy", c.Evaluate(0), 1)
}

// --- EaseCurve ---

func TestEaseCurveEndpoints(t *testing.T) {
	c := EaseCurve{Begin: 0, End: 1, Func: ease.Linear}
	assertNear(t, "Evaluate(0)", c.Evaluate(0), 0)
	assertNear(t, "Evaluate(0.5)", c.Evaluate(0.5), 0.5)
	assertNear(t, "Evaluate(1)", c.Evaluate(1), 1)

	inv := EaseCurve{Begin: 1, End: 0, Func: ease.Linear}
	assertNear(t, "inverted Evaluate(0)", inv.Evaluate(0), 1)
	assertNear(t, "inverted Evaluate(1)", inv.Evaluate(1), 0)
}

func TestEaseCurveClampsInput(t *testing.T) {
	c := EaseCurve{Begin: 2, End: 8, Func: ease.OutCubic}
	assertNear(t, "below domain", c.Evaluate(-3), 2)
	assertNear(t, "above domain", c.Evaluate(3), 8)
}

func TestEaseCurveNilFuncIsLinear(t *testing.T) {
	c := EaseCurve{Begin: 0, End: 10}
	assertNear(t, "Evaluate(0.5)", c.Evaluate(0.5), 5)
}

// --- ConstantCurve ---

func TestConstantCurve(t *testing.T) {
	c := ConstantCurve(0.75)
	for _, tv := range []float64{-1, 0, 0.3, 1, 2} {
		assertNear(t, "Evaluate", c.Evaluate(tv), 0.75)
	}
}

// --- Determinism ---

func TestCurvesAreDeterministic(t *testing.T) {
	curves := []struct {
		name string
		c    Curve
	}{
		{"keyframe", NewKeyframeCurve(
			Keyframe{Time: 0, Value: 0},
			Keyframe{Time: 0.3, Value: 2},
			Keyframe{Time: 1, Value: 1},
		)},
		{"ease", EaseCurve{Begin: 0, End: 1, Func: ease.OutElastic}},
		{"constant", ConstantCurve(3)},
	}
	for _, tt := range curves {
		t.Run(tt.name, func(t *testing.T) {
			for _, tv := range []float64{0, 0.1, 0.37, 0.5, 0.99, 1} {
				first := tt.c.Evaluate(tv)
				for i := 0; i < 10; i++ {
					if got := tt.c.Evaluate(tv); got != first {
						t.Fatalf("Evaluate(%v) call %d = %v, want %v", tv, i+2, got, first)
					}
				}
			}
		})
	}
}

// --- Benchmarks ---

func BenchmarkKeyframeCurveEvaluate(b *testing.B) {
	c := NewKeyframeCurve(
		Keyframe{Time: 0, Value: 0},
		Keyframe{Time: 0.25, Value: 1},
		Keyframe{Time: 0.5, Value: 0.5},
		Keyframe{Time: 0.75, Value: 0.8},
		Keyframe{Time: 1, Value: 0},
	)
	b.ReportAllocs()
	for b.Loop() {
		_ = c.Evaluate(0.6)
	}
}

func BenchmarkEaseCurveEvaluate(b *testing.B) {
	c := EaseCurve{Begin: 0, End: 1, Func: ease.OutCubic}
	b.ReportAllocs()
	for b.Loop() {
		_ = c.Evaluate(0.6)
	}
}

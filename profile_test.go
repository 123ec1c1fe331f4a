package shockwave

import (
	"strings"
	"testing"
)

func TestLoadProfileFull(t *testing.T) {
	const src = `
expansion_duration: 0.9
decal_fade_duration: 1.1
fadeout_duration: 0.4
curves:
  radius:
    ease: out-expo
  overlay:
    ease: linear
    begin: 0.8
    end: 0.2
  decal:
    keys:
      - {t: 0, v: 1}
      - {t: 0.5, v: 0.5}
      - {t: 1, v: 0}
  fadeout:
    ease: in-out-sine
`
	cfg, err := LoadProfile(strings.NewReader(src))
	if err != nil {
		t.Fatalf("LoadProfile: %v", err)
	}

	assertNear(t, "ExpansionDuration", cfg.ExpansionDuration, 0.9)
	assertNear(t, "DecalFadeDuration", cfg.DecalFadeDuration, 1.1)
	assertNear(t, "FadeoutDuration", cfg.FadeoutDuration, 0.4)

	assertNear(t, "radius start", cfg.RadiusCurve.Evaluate(0), 0)
	assertNear(t, "radius end", cfg.RadiusCurve.Evaluate(1), 1)
	assertNear(t, "overlay start", cfg.OverlayCurve.Evaluate(0), 0.8)
	assertNear(t, "overlay end", cfg.OverlayCurve.Evaluate(1), 0.2)
	assertNear(t, "decal mid", cfg.DecalCurve.Evaluate(0.5), 0.5)
	assertNear(t, "decal end", cfg.DecalCurve.Evaluate(1), 0)
	assertNear(t, "fadeout start", cfg.FadeoutCurve.Evaluate(0), 1)
	assertNear(t, "fadeout end", cfg.FadeoutCurve.Evaluate(1), 0)
}

func TestLoadProfilePartialKeepsDefaults(t *testing.T) {
	cfg, err := LoadProfile(strings.NewReader("expansion_duration: 0.3\n"))
	if err != nil {
		t.Fatalf("LoadProfile: %v", err)
	}
	def := DefaultConfig()
	assertNear(t, "ExpansionDuration", cfg.ExpansionDuration, 0.3)
	assertNear(t, "DecalFadeDuration", cfg.DecalFadeDuration, def.DecalFadeDuration)
	assertNear(t, "FadeoutDuration", cfg.FadeoutDuration, def.FadeoutDuration)
	if cfg.RadiusCurve == nil {
		t.Error("RadiusCurve should fall back to the default shape")
	}
}

func TestLoadProfileZeroDuration(t *testing.T) {
	// An explicit zero is a real value (instant phase), not "use default".
	cfg, err := LoadProfile(strings.NewReader("expansion_duration: 0\n"))
	if err != nil {
		t.Fatalf("LoadProfile: %v", err)
	}
	assertNear(t, "ExpansionDuration", cfg.ExpansionDuration, 0)
}

func TestLoadProfileErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"malformed yaml", "curves: ["},
		{"unknown field", "expansion: 1\n"},
		{"unknown curve", "curves:\n  sparkle:\n    ease: linear\n"},
		{"unknown ease", "curves:\n  radius:\n    ease: out-wobble\n"},
		{"ease and keys", "curves:\n  radius:\n    ease: linear\n    keys:\n      - {t: 0, v: 0}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadProfile(strings.NewReader(tt.src)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestLoadProfileCurveDefaultEndpoints(t *testing.T) {
	// Intensity-style curves default to 1 -> 0, radius to 0 -> 1, when the
	// profile only names an ease.
	const src = `
curves:
  radius:
    ease: linear
  decal:
    ease: linear
`
	cfg, err := LoadProfile(strings.NewReader(src))
	if err != nil {
		t.Fatalf("LoadProfile: %v", err)
	}
	assertNear(t, "radius(0)", cfg.RadiusCurve.Evaluate(0), 0)
	assertNear(t, "radius(1)", cfg.RadiusCurve.Evaluate(1), 1)
	assertNear(t, "decal(0)", cfg.DecalCurve.Evaluate(0), 1)
	assertNear(t, "decal(1)", cfg.DecalCurve.Evaluate(1), 0)
}

func TestLoadedProfileDrivesPulse(t *testing.T) {
	const src = `
expansion_duration: 0.25
decal_fade_duration: 0.25
fadeout_duration: 0.25
`
	cfg, err := LoadProfile(strings.NewReader(src))
	if err != nil {
		t.Fatalf("LoadProfile: %v", err)
	}
	p := NewPulse(Params{MaxRadius: 40}, cfg, &recordSink{}, nil)
	for i := 0; i < 6; i++ {
		p.Advance(0.125)
	}
	if !p.IsTerminated() {
		t.Error("pulse driven by the loaded profile should terminate at 0.75s")
	}
}

package shockwave

import (
	"fmt"
	"io"

	"github.com/tanema/gween/ease"
	"gopkg.in/yaml.v3"
)

// LoadProfile reads a YAML pulse profile and returns the resulting Config.
// Fields omitted from the profile keep their DefaultConfig values, so a
// profile only has to state what it changes:
//
//	expansion_duration: 0.9
//	curves:
//	  radius:
//	    ease: out-expo
//	  decal:
//	    keys:
//	      - {t: 0, v: 1}
//	      - {t: 0.7, v: 0.4}
//	      - {t: 1, v: 0}
//
// Curve names are radius, overlay, decal, and fadeout. A curve entry is
// either an ease (with optional begin/end, defaulting to the stock shape's
// endpoints) or a keyframe list, not both.
func LoadProfile(r io.Reader) (Config, error) {
	var spec profileSpec
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&spec); err != nil {
		return Config{}, fmt.Errorf("shockwave: decode profile: %w", err)
	}
	return spec.config()
}

type profileSpec struct {
	ExpansionDuration *float64             `yaml:"expansion_duration"`
	DecalFadeDuration *float64             `yaml:"decal_fade_duration"`
	FadeoutDuration   *float64             `yaml:"fadeout_duration"`
	Curves            map[string]curveSpec `yaml:"curves"`
}

type curveSpec struct {
	Ease  string    `yaml:"ease"`
	Begin *float64  `yaml:"begin"`
	End   *float64  `yaml:"end"`
	Keys  []keySpec `yaml:"keys"`
}

type keySpec struct {
	T float64 `yaml:"t"`
	V float64 `yaml:"v"`
}

func (spec profileSpec) config() (Config, error) {
	cfg := DefaultConfig()
	if spec.ExpansionDuration != nil {
		cfg.ExpansionDuration = *spec.ExpansionDuration
	}
	if spec.DecalFadeDuration != nil {
		cfg.DecalFadeDuration = *spec.DecalFadeDuration
	}
	if spec.FadeoutDuration != nil {
		cfg.FadeoutDuration = *spec.FadeoutDuration
	}
	for name, cs := range spec.Curves {
		var begin, end float64
		switch name {
		case "radius":
			begin, end = 0, 1
		case "overlay", "decal", "fadeout":
			begin, end = 1, 0
		default:
			return Config{}, fmt.Errorf("shockwave: unknown curve %q", name)
		}
		curve, err := cs.build(name, begin, end)
		if err != nil {
			return Config{}, err
		}
		switch name {
		case "radius":
			cfg.RadiusCurve = curve
		case "overlay":
			cfg.OverlayCurve = curve
		case "decal":
			cfg.DecalCurve = curve
		case "fadeout":
			cfg.FadeoutCurve = curve
		}
	}
	return cfg, nil
}

func (cs curveSpec) build(name string, begin, end float64) (Curve, error) {
	if len(cs.Keys) > 0 {
		if cs.Ease != "" {
			return nil, fmt.Errorf("shockwave: curve %q has both ease and keys", name)
		}
		keys := make([]Keyframe, len(cs.Keys))
		for i, k := range cs.Keys {
			keys[i] = Keyframe{Time: k.T, Value: k.V}
		}
		return NewKeyframeCurve(keys...), nil
	}
	fn, ok := easeFuncs[cs.Ease]
	if !ok {
		return nil, fmt.Errorf("shockwave: curve %q: unknown ease %q", name, cs.Ease)
	}
	if cs.Begin != nil {
		begin = *cs.Begin
	}
	if cs.End != nil {
		end = *cs.End
	}
	return EaseCurve{Begin: begin, End: end, Func: fn}, nil
}

// easeFuncs maps profile ease names to gween easing functions.
var easeFuncs = map[string]ease.TweenFunc{
	"linear":       ease.Linear,
	"in-quad":      ease.InQuad,
	"out-quad":     ease.OutQuad,
	"in-out-quad":  ease.InOutQuad,
	"in-cubic":     ease.InCubic,
	"out-cubic":    ease.OutCubic,
	"in-out-cubic": ease.InOutCubic,
	"in-sine":      ease.InSine,
	"out-sine":     ease.OutSine,
	"in-out-sine":  ease.InOutSine,
	"in-expo":      ease.InExpo,
	"out-expo":     ease.OutExpo,
	"in-out-expo":  ease.InOutExpo,
	"out-back":     ease.OutBack,
	"out-elastic":  ease.OutElastic,
	"out-bounce":   ease.OutBounce,
}

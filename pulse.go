package shockwave

import (
	"github.com/tanema/gween/ease"
)

// Phase identifies where a Pulse is in its lifecycle. Phases only advance
// forward; Terminated is terminal.
type Phase uint8

const (
	PhaseExpanding    Phase = iota // radius grows toward MaxRadius
	PhaseDecalFading               // radius held, decal intensity decays to zero
	PhaseFinalFadeout              // both intensities collapse uniformly to zero
	PhaseTerminated                // no further advancement; eligible for destruction
)

// Default phase durations in seconds. Used by DefaultConfig.
const (
	DefaultExpansionDuration = 1.2
	DefaultDecalFadeDuration = 2.0
	DefaultFadeoutDuration   = 1.5
)

// Params configures a single pulse. The pulse takes ownership at creation;
// values are immutable once the pulse starts advancing.
type Params struct {
	// Origin is the pulse center in world coordinates.
	Origin Vec3
	// Color tints both the decal and the overlay contribution.
	Color Color
	// MaxRadius is the radius reached at the end of expansion, in world
	// units. Non-positive values keep the lifecycle timing but produce no
	// visible growth.
	MaxRadius float64
	// FadeoutOverride, when positive, replaces Config.FadeoutDuration for
	// this pulse. Zero or negative means use the config default.
	FadeoutOverride float64
}

// Config is the tuning surface shared by pulses. Durations are in seconds;
// nil curves fall back to the DefaultConfig shapes. Zero durations are
// valid: a zero-length phase completes on the first advance.
type Config struct {
	// ExpansionDuration controls the Expanding phase length.
	ExpansionDuration float64
	// DecalFadeDuration controls the DecalFading phase length.
	DecalFadeDuration float64
	// FadeoutDuration controls FinalFadeout when Params.FadeoutOverride
	// is not supplied.
	FadeoutDuration float64

	// RadiusCurve shapes radius growth over the Expanding phase, sampled
	// on normalized expansion progress with output 0 to 1.
	RadiusCurve Curve
	// OverlayCurve shapes overlay intensity over the whole active window
	// (expansion plus decal fade). Its end value is held once the window
	// closes.
	OverlayCurve Curve
	// DecalCurve shapes decal intensity over the whole active window,
	// reaching zero by the end of DecalFading.
	DecalCurve Curve
	// FadeoutCurve shapes the final collapse, sampled on normalized
	// fadeout progress with output 1 to 0.
	FadeoutCurve Curve
}

// DefaultConfig returns the stock pulse tuning: an eased burst outward,
// slow overlay decay, and a soft final fadeout.
func DefaultConfig() Config {
	return Config{
		ExpansionDuration: DefaultExpansionDuration,
		DecalFadeDuration: DefaultDecalFadeDuration,
		FadeoutDuration:   DefaultFadeoutDuration,
		RadiusCurve:       EaseCurve{Begin: 0, End: 1, Func: ease.OutCubic},
		OverlayCurve:      EaseCurve{Begin: 1, End: 0, Func: ease.OutQuad},
		DecalCurve:        EaseCurve{Begin: 1, End: 0, Func: ease.InQuad},
		FadeoutCurve:      EaseCurve{Begin: 1, End: 0, Func: ease.InOutSine},
	}
}

// normalizeConfig clamps negative durations and fills nil curves with the
// default shapes so a pulse can always evaluate its timeline.
func normalizeConfig(cfg Config) Config {
	if cfg.ExpansionDuration < 0 {
		cfg.ExpansionDuration = 0
	}
	if cfg.DecalFadeDuration < 0 {
		cfg.DecalFadeDuration = 0
	}
	if cfg.FadeoutDuration < 0 {
		cfg.FadeoutDuration = 0
	}
	def := DefaultConfig()
	if cfg.RadiusCurve == nil {
		cfg.RadiusCurve = def.RadiusCurve
	}
	if cfg.OverlayCurve == nil {
		cfg.OverlayCurve = def.OverlayCurve
	}
	if cfg.DecalCurve == nil {
		cfg.DecalCurve = def.DecalCurve
	}
	if cfg.FadeoutCurve == nil {
		cfg.FadeoutCurve = def.FadeoutCurve
	}
	return cfg
}

// Pulse is one activation of the shockwave effect, from creation to
// termination. Advance it once per frame from a single goroutine; it never
// blocks and never returns errors. The owner should drop the pulse once
// IsTerminated reports true; the overlay contribution is always released
// before that point.
type Pulse struct {
	params Params
	cfg    Config
	sink   DecalSink
	handle *OverlayHandle

	decalOnly bool
	phase     Phase
	clock     float64 // seconds since creation
	started   bool    // first Advance happened; locks pre-activation mutators

	radius           float64
	overlayIntensity float64
	decalIntensity   float64
	fadeBaseOverlay  float64
	fadeBaseDecal    float64

	// OnExpansionStarted fires once, on the first Advance. Hook point for
	// presentation (audio, particles).
	OnExpansionStarted func()
	// OnFinished fires once, when the pulse reaches Terminated, whether by
	// running its full lifecycle or by Terminate.
	OnFinished func()
	startedFired  bool
	finishedFired bool
}

// NewPulse creates a pulse in the Expanding phase and immediately attempts
// to acquire an overlay handle from registry. If no overlay target is
// available (or registry is nil) the pulse runs in decal-only mode: overlay
// pushes become no-ops and everything else proceeds unchanged.
//
// A nil sink discards decal output. Negative MaxRadius and FadeoutOverride
// values are clamped to zero so the timeline stays well-defined.
func NewPulse(params Params, cfg Config, sink DecalSink, registry *OverlayRegistry) *Pulse {
	if params.MaxRadius < 0 {
		params.MaxRadius = 0
	}
	if params.FadeoutOverride < 0 {
		params.FadeoutOverride = 0
	}
	if sink == nil {
		sink = nopSink{}
	}
	cfg = normalizeConfig(cfg)

	p := &Pulse{
		params:           params,
		cfg:              cfg,
		sink:             sink,
		phase:            PhaseExpanding,
		overlayIntensity: cfg.OverlayCurve.Evaluate(0),
		decalIntensity:   cfg.DecalCurve.Evaluate(0),
	}
	if registry != nil {
		p.handle, _ = registry.Acquire()
	}
	p.decalOnly = p.handle == nil

	// Degenerate radius: no visible growth, so the pulse sits in
	// DecalFading from the start. Phase end times are driven by the
	// absolute clock, so overall timing is unchanged.
	if params.MaxRadius <= 0 {
		p.phase = PhaseDecalFading
	}
	return p
}

// Advance moves the pulse forward by dt seconds, sampling the configured
// curves and pushing the interpolated values to the decal sink and the
// overlay contribution. Advancing a Terminated pulse is a no-op.
func (p *Pulse) Advance(dt float64) {
	if p.phase == PhaseTerminated {
		return
	}
	p.started = true
	if dt > 0 {
		p.clock += dt
	}
	p.fireExpansionStarted()

	expEnd := p.cfg.ExpansionDuration
	activeEnd := expEnd + p.cfg.DecalFadeDuration

	// Transitions run on the absolute clock, before output sampling, so
	// the tick that crosses a boundary already reports the new phase.
	if p.phase == PhaseExpanding && p.clock >= expEnd {
		p.phase = PhaseDecalFading
	}
	if p.phase == PhaseDecalFading && p.clock >= activeEnd {
		p.enterFadeout()
	}

	switch p.phase {
	case PhaseExpanding:
		prog := phaseProgress(p.clock, 0, expEnd)
		p.radius = lerp(0, p.params.MaxRadius, p.cfg.RadiusCurve.Evaluate(prog))
		active := phaseProgress(p.clock, 0, activeEnd)
		p.overlayIntensity = p.cfg.OverlayCurve.Evaluate(active)
		p.decalIntensity = p.cfg.DecalCurve.Evaluate(active)
	case PhaseDecalFading:
		p.radius = p.params.MaxRadius
		active := phaseProgress(p.clock, 0, activeEnd)
		p.overlayIntensity = p.cfg.OverlayCurve.Evaluate(active)
		p.decalIntensity = p.cfg.DecalCurve.Evaluate(active)
	case PhaseFinalFadeout:
		factor := p.cfg.FadeoutCurve.Evaluate(phaseProgress(p.clock, activeEnd, p.fadeoutDuration()))
		p.radius = p.params.MaxRadius
		p.overlayIntensity = p.fadeBaseOverlay * factor
		p.decalIntensity = p.fadeBaseDecal * factor
	}

	p.push()

	if p.phase == PhaseFinalFadeout && p.clock >= activeEnd+p.fadeoutDuration() {
		p.overlayIntensity = 0
		p.decalIntensity = 0
		p.push()
		p.finish()
	}
}

// Terminate cancels the pulse immediately, bypassing any remaining phases.
// The overlay contribution is released before the pulse becomes Terminated,
// exactly as on normal completion, and OnFinished still fires once.
// Terminating an already terminated pulse is a no-op.
func (p *Pulse) Terminate() {
	if p.phase == PhaseTerminated {
		return
	}
	p.overlayIntensity = 0
	p.decalIntensity = 0
	p.push()
	p.finish()
}

// IsTerminated reports whether the pulse has reached its terminal phase and
// can be destroyed by its owner.
func (p *Pulse) IsTerminated() bool {
	return p.phase == PhaseTerminated
}

// DecalOnly reports whether the pulse is running without an overlay
// contribution because no overlay target was available at creation.
func (p *Pulse) DecalOnly() bool {
	return p.decalOnly
}

// Phase returns the pulse's current lifecycle phase.
func (p *Pulse) Phase() Phase {
	return p.phase
}

// Params returns the pulse's creation parameters.
func (p *Pulse) Params() Params {
	return p.params
}

// Radius returns the current interpolated radius.
func (p *Pulse) Radius() float64 {
	return p.radius
}

// OverlayIntensity returns the current overlay intensity.
func (p *Pulse) OverlayIntensity() float64 {
	return p.overlayIntensity
}

// DecalIntensity returns the current decal intensity.
func (p *Pulse) DecalIntensity() float64 {
	return p.decalIntensity
}

// SetColor overrides the pulse color. Accepted only before the first
// Advance; later calls are ignored.
func (p *Pulse) SetColor(c Color) {
	if p.started {
		return
	}
	p.params.Color = c
}

// SetMaxRadius overrides the maximum radius. Accepted only before the first
// Advance; later calls are ignored. Negative values clamp to zero.
func (p *Pulse) SetMaxRadius(r float64) {
	if p.started {
		return
	}
	if r < 0 {
		r = 0
	}
	p.params.MaxRadius = r
	if r <= 0 {
		p.phase = PhaseDecalFading
	} else {
		p.phase = PhaseExpanding
	}
}

// fireExpansionStarted fires the expansion hook exactly once.
func (p *Pulse) fireExpansionStarted() {
	if p.startedFired {
		return
	}
	p.startedFired = true
	if p.OnExpansionStarted != nil {
		p.OnExpansionStarted()
	}
}

// enterFadeout captures the intensities the fadeout collapses from. The
// overlay base is the curve's held end value; the decal base is normally
// zero already but is carried in case a custom curve ends elsewhere.
func (p *Pulse) enterFadeout() {
	p.phase = PhaseFinalFadeout
	p.fadeBaseOverlay = p.cfg.OverlayCurve.Evaluate(1)
	p.fadeBaseDecal = p.cfg.DecalCurve.Evaluate(1)
}

// finish releases the overlay contribution, fires the finish hook once, and
// parks the pulse in Terminated.
func (p *Pulse) finish() {
	p.handle.Release()
	p.handle = nil
	p.phase = PhaseTerminated
	if !p.finishedFired {
		p.finishedFired = true
		if p.OnFinished != nil {
			p.OnFinished()
		}
	}
}

// fadeoutDuration resolves the per-pulse override against the config default.
func (p *Pulse) fadeoutDuration() float64 {
	if p.params.FadeoutOverride > 0 {
		return p.params.FadeoutOverride
	}
	return p.cfg.FadeoutDuration
}

// push writes the current interpolated values to both sinks. The overlay
// push is a no-op for a nil or released handle.
func (p *Pulse) push() {
	p.sink.Apply(DecalParams{
		Center:    p.params.Origin,
		Radius:    p.radius,
		Intensity: p.decalIntensity,
		Color:     p.params.Color,
	})
	p.handle.Push(OverlayParams{
		Center:    p.params.Origin,
		Radius:    p.radius,
		Intensity: p.overlayIntensity,
		Color:     p.params.Color,
	})
}

// phaseProgress maps the clock onto a phase window starting at start and
// lasting dur seconds. Zero-length windows read as already complete, which
// is how zero-duration phases finish on their first advance.
func phaseProgress(clock, start, dur float64) float64 {
	if dur <= 0 {
		return 1
	}
	return clamp01((clock - start) / dur)
}

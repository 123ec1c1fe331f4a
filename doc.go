// Package shockwave implements a timed "scanner pulse" visual effect for
// [Ebitengine]: an expanding ground decal paired with a screen-space overlay
// that every live pulse blends its contribution into.
//
// A [Pulse] is one activation of the effect. It runs a fixed lifecycle
// (expansion, decal fade, final fadeout) driven by injected [Curve] values,
// and pushes interpolated parameters each tick to a private [DecalSink]
// and, through an [OverlayHandle], to the shared overlay target.
// The [OverlayRegistry] multiplexes any number of concurrent pulses onto the
// single overlay resource and detaches it when the last pulse finishes.
//
// # Quick start
//
//	registry := shockwave.NewOverlayRegistry(func() shockwave.OverlayTarget {
//		return overlay // e.g. a *shockwave.OverlayLayer owned by your scene
//	})
//	decal := shockwave.NewDecalSurface(640, 480)
//
//	pulse := shockwave.NewPulse(shockwave.Params{
//		Origin:    shockwave.Vec3{X: 320, Y: 240},
//		Color:     shockwave.ColorCyan,
//		MaxRadius: 200,
//	}, shockwave.DefaultConfig(), decal, registry)
//
//	// Each frame:
//	pulse.Advance(1.0 / 60.0)
//	if pulse.IsTerminated() {
//		// drop the pulse; its overlay contribution is already released
//	}
//
// Pulses never block and never return errors while ticking. If no overlay
// target is available the pulse runs in decal-only mode (see
// [Pulse.DecalOnly]); everything else proceeds unchanged.
//
// For many concurrent pulses, [System] owns the registry and the live set
// and compacts terminated pulses for you.
//
// [Ebitengine]: https://ebitengine.org
package shockwave

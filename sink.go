package shockwave

// DecalParams is the set of interpolated values a pulse pushes to its
// private decal surface each tick.
type DecalParams struct {
	Center    Vec3
	Radius    float64
	Intensity float64
	Color     Color
}

// DecalSink receives a pulse's decal parameters. Each pulse owns exactly one
// sink and writes to it once per advance; implementations should treat every
// write as a full replacement of the previous state (last write wins).
//
// [DecalSurface] is the ebiten-backed implementation. Hosts with their own
// renderer supply anything satisfying this interface.
type DecalSink interface {
	Apply(p DecalParams)
}

// DecalSinkFunc adapts a plain function to the DecalSink interface.
type DecalSinkFunc func(p DecalParams)

// Apply calls f(p).
func (f DecalSinkFunc) Apply(p DecalParams) {
	f(p)
}

// nopSink discards all writes. Used when a pulse is created without a sink.
type nopSink struct{}

func (nopSink) Apply(DecalParams) {}

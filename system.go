package shockwave

// System owns a set of live pulses plus the overlay registry they share.
// It is optional glue for hosts that want spawn-and-forget semantics: Spawn
// creates pulses, Update advances them all once per frame and compacts the
// terminated ones. Hosts that need per-pulse ownership can use NewPulse
// directly instead.
type System struct {
	cfg      Config
	registry *OverlayRegistry
	newSink  func(Params) DecalSink
	pulses   []*Pulse
}

// NewSystem creates a pulse system. newSink, when non-nil, supplies the
// private decal sink for each spawned pulse; provider locates the shared
// overlay target (nil means all pulses run decal-only).
func NewSystem(cfg Config, newSink func(Params) DecalSink, provider OverlayProvider) *System {
	return &System{
		cfg:      cfg,
		registry: NewOverlayRegistry(provider),
		newSink:  newSink,
	}
}

// Spawn creates a pulse with the system's config and tracks it until it
// terminates.
func (s *System) Spawn(params Params) *Pulse {
	var sink DecalSink
	if s.newSink != nil {
		sink = s.newSink(params)
	}
	p := NewPulse(params, s.cfg, sink, s.registry)
	s.pulses = append(s.pulses, p)
	return p
}

// Update advances all live pulses by dt seconds, swap-removing the ones
// that terminated this tick.
func (s *System) Update(dt float64) {
	i := 0
	for i < len(s.pulses) {
		p := s.pulses[i]
		p.Advance(dt)
		if p.IsTerminated() {
			last := len(s.pulses) - 1
			s.pulses[i] = s.pulses[last]
			s.pulses[last] = nil
			s.pulses = s.pulses[:last]
			continue
		}
		i++
	}
}

// Count returns the number of live pulses.
func (s *System) Count() int {
	return len(s.pulses)
}

// Pulses returns the live pulse list. The returned slice MUST NOT be mutated.
func (s *System) Pulses() []*Pulse {
	return s.pulses
}

// Registry returns the overlay registry shared by the system's pulses.
func (s *System) Registry() *OverlayRegistry {
	return s.registry
}

// TerminateAll force-terminates every live pulse and drops them. Each pulse
// releases its overlay contribution on the way out.
func (s *System) TerminateAll() {
	for i, p := range s.pulses {
		p.Terminate()
		s.pulses[i] = nil
	}
	s.pulses = s.pulses[:0]
}

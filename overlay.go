package shockwave

// OverlayParams is one contributor's blend entry on the shared overlay
// resource. Each live pulse owns a distinct slot, so concurrent pulses only
// ever overwrite their own entry.
type OverlayParams struct {
	Center    Vec3
	Radius    float64
	Intensity float64
	Color     Color
}

// OverlayTarget is the shared overlay resource that pulses blend into.
// The target is owned externally (by the scene or host); the registry only
// holds a cached reference while at least one contributor is live.
//
// [OverlayLayer] is the ebiten-backed implementation.
type OverlayTarget interface {
	// SetContribution writes a contributor's current blend entry.
	// Last write wins per slot.
	SetContribution(slot int, p OverlayParams)
	// ClearContribution removes a contributor's blend entry so later
	// lookups start clean.
	ClearContribution(slot int)
}

// OverlayProvider locates the shared overlay target in the environment.
// Returning nil means no target is available; callers then run decal-only.
type OverlayProvider func() OverlayTarget

// OverlayRegistry multiplexes many pulses onto the single overlay target.
// The target is looked up lazily through the provider on each empty to
// non-empty transition of the contributor set and cached until the set
// empties again, at which point the cached reference is dropped (the target
// itself is never destroyed here).
//
// All methods must be called from the single advancement goroutine; wrap
// the registry in a mutex if a multi-threaded host needs to share it.
type OverlayRegistry struct {
	provider OverlayProvider
	target   OverlayTarget
	handles  map[*OverlayHandle]struct{}
	nextSlot int
}

// NewOverlayRegistry creates a registry that locates the overlay target via
// provider. A nil provider means every Acquire fails and all pulses run
// decal-only.
func NewOverlayRegistry(provider OverlayProvider) *OverlayRegistry {
	return &OverlayRegistry{
		provider: provider,
		handles:  make(map[*OverlayHandle]struct{}),
	}
}

// Acquire registers a new contributor and returns its owning handle.
// On the empty to non-empty transition the overlay target is looked up once
// and cached. Acquire returns (nil, false) when no target is available; a
// nil handle is safe to use (Push and Release become no-ops), so callers
// can degrade without branching.
func (r *OverlayRegistry) Acquire() (*OverlayHandle, bool) {
	if len(r.handles) == 0 {
		r.target = nil
		if r.provider != nil {
			r.target = r.provider()
		}
	}
	if r.target == nil {
		return nil, false
	}
	h := &OverlayHandle{registry: r, slot: r.nextSlot}
	r.nextSlot++
	r.handles[h] = struct{}{}
	return h, true
}

// ContributorCount returns the number of live contributor handles.
func (r *OverlayRegistry) ContributorCount() int {
	return len(r.handles)
}

// Attached reports whether the registry currently holds a cached reference
// to the overlay target. Attached is true exactly while the contributor set
// is non-empty.
func (r *OverlayRegistry) Attached() bool {
	return r.target != nil
}

// release removes h from the contributor set. Called by OverlayHandle.Release.
func (r *OverlayRegistry) release(h *OverlayHandle) {
	if _, ok := r.handles[h]; !ok {
		return
	}
	delete(r.handles, h)
	if r.target != nil {
		r.target.ClearContribution(h.slot)
	}
	if len(r.handles) == 0 {
		// Drop the cached reference so the next Acquire looks it up fresh.
		r.target = nil
	}
}

// OverlayHandle is one pulse's registered claim on the overlay resource.
// A handle must not outlive the pulse that acquired it. Release consumes
// the handle: further Push and Release calls are no-ops, which makes double
// release unrepresentable as a fault.
type OverlayHandle struct {
	registry *OverlayRegistry
	slot     int
	released bool
}

// Push writes the handle's current blend entry to the overlay target.
// A nil or released handle discards the write.
func (h *OverlayHandle) Push(p OverlayParams) {
	if h == nil || h.released {
		return
	}
	if h.registry.target != nil {
		h.registry.target.SetContribution(h.slot, p)
	}
}

// Release removes the handle's contribution and unregisters it. Releasing
// a nil or already-released handle is a no-op.
func (h *OverlayHandle) Release() {
	if h == nil || h.released {
		return
	}
	h.released = true
	h.registry.release(h)
}

// Released reports whether the handle has been consumed.
func (h *OverlayHandle) Released() bool {
	return h == nil || h.released
}

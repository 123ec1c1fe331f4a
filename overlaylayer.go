package shockwave

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
)

// OverlayLayer is the ebiten-backed OverlayTarget: one full-screen
// offscreen image that every live pulse's contribution is composited into.
// Create a single layer per scene, hand it to pulses through an
// OverlayProvider, call Redraw once per frame, and draw Image over the
// scene (additive blending works well).
//
// The layer itself is owned by the caller, not by the registry; the
// registry only caches a reference while contributors exist.
type OverlayLayer struct {
	image *ebiten.Image
	w, h  int
	slots map[int]OverlayParams
	order []int // scratch for deterministic draw order
	imgOp ebiten.DrawImageOptions
}

// NewOverlayLayer creates an overlay compositing image of (w x h) pixels.
func NewOverlayLayer(w, h int) *OverlayLayer {
	return &OverlayLayer{
		image: ebiten.NewImage(w, h),
		w:     w,
		h:     h,
		slots: make(map[int]OverlayParams),
	}
}

// SetContribution writes a contributor's blend entry. Last write wins per
// slot; distinct contributors never touch each other's entries.
func (ll *OverlayLayer) SetContribution(slot int, p OverlayParams) {
	ll.slots[slot] = p
}

// ClearContribution removes a contributor's blend entry.
func (ll *OverlayLayer) ClearContribution(slot int) {
	delete(ll.slots, slot)
}

// ContributionCount returns the number of live blend entries.
func (ll *OverlayLayer) ContributionCount() int {
	return len(ll.slots)
}

// Contribution returns the blend entry for a slot, if present.
func (ll *OverlayLayer) Contribution(slot int) (OverlayParams, bool) {
	p, ok := ll.slots[slot]
	return p, ok
}

// Image returns the composited overlay image for drawing over the scene.
func (ll *OverlayLayer) Image() *ebiten.Image {
	return ll.image
}

// Width returns the layer width in pixels.
func (ll *OverlayLayer) Width() int {
	return ll.w
}

// Height returns the layer height in pixels.
func (ll *OverlayLayer) Height() int {
	return ll.h
}

// Redraw clears the layer and composites every contribution additively, in
// slot order so output is stable across frames.
func (ll *OverlayLayer) Redraw() {
	ll.image.Clear()

	ll.order = ll.order[:0]
	for slot := range ll.slots {
		ll.order = append(ll.order, slot)
	}
	sort.Ints(ll.order)

	for _, slot := range ll.order {
		p := ll.slots[slot]
		drawRing(ll.image, &ll.imgOp, p.Center, p.Radius, p.Intensity, p.Color)
	}
}

// Dispose deallocates the underlying image and drops all entries. The layer
// should not be used after calling Dispose.
func (ll *OverlayLayer) Dispose() {
	if ll.image != nil {
		ll.image.Deallocate()
		ll.image = nil
	}
	ll.slots = nil
	ll.order = nil
}

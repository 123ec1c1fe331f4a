package shockwave

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// ringTextureSize is the side length of the shared feathered ring texture.
// The ring is generated once and scaled per draw, so the size only bounds
// edge quality, not memory per pulse.
const ringTextureSize = 256

// DecalSurface is the ebiten-backed DecalSink: a persistent offscreen
// canvas the pulse's expanding ring is drawn into. The surface is owned by
// the caller, who composites Image into the scene (typically with additive
// blending) after calling Redraw each frame.
type DecalSurface struct {
	image *ebiten.Image
	w, h  int
	last  DecalParams
	has   bool
	imgOp ebiten.DrawImageOptions
}

// NewDecalSurface creates a decal canvas covering (w x h) pixels.
func NewDecalSurface(w, h int) *DecalSurface {
	return &DecalSurface{
		image: ebiten.NewImage(w, h),
		w:     w,
		h:     h,
	}
}

// Apply records the latest decal parameters. Last write wins; the values
// take effect on the next Redraw.
func (d *DecalSurface) Apply(p DecalParams) {
	d.last = p
	d.has = true
}

// Image returns the underlying *ebiten.Image for compositing.
func (d *DecalSurface) Image() *ebiten.Image {
	return d.image
}

// Width returns the canvas width in pixels.
func (d *DecalSurface) Width() int {
	return d.w
}

// Height returns the canvas height in pixels.
func (d *DecalSurface) Height() int {
	return d.h
}

// Redraw clears the canvas and draws the ring at the last applied
// parameters. Zero radius or intensity leaves the canvas empty.
func (d *DecalSurface) Redraw() {
	d.image.Clear()
	if !d.has {
		return
	}
	drawRing(d.image, &d.imgOp, d.last.Center, d.last.Radius, d.last.Intensity, d.last.Color)
}

// Dispose deallocates the underlying image. The surface should not be used
// after calling Dispose.
func (d *DecalSurface) Dispose() {
	if d.image != nil {
		d.image.Deallocate()
		d.image = nil
	}
}

// drawRing draws the shared ring texture centered on (center.X, center.Y),
// scaled to the given radius, tinted and attenuated by intensity, with
// additive blending. The Z component of center is ignored.
func drawRing(dst *ebiten.Image, op *ebiten.DrawImageOptions, center Vec3, radius, intensity float64, c Color) {
	if radius <= 0 || intensity <= 0 {
		return
	}
	ring := ensureRingImage()

	op.GeoM.Reset()
	desired := radius * 2
	op.GeoM.Scale(desired/ringTextureSize, desired/ringTextureSize)
	op.GeoM.Translate(center.X-radius, center.Y-radius)

	in := clamp01(intensity)
	if c == (Color{}) {
		c = ColorWhite
	}
	op.ColorScale.Reset()
	op.ColorScale.Scale(
		float32(clamp01(c.R)*in),
		float32(clamp01(c.G)*in),
		float32(clamp01(c.B)*in),
		float32(in),
	)
	op.Blend = ebiten.BlendLighter
	dst.DrawImage(ring, op)
}

var ringImage *ebiten.Image

// ensureRingImage lazily generates the shared feathered ring texture:
// a premultiplied white annulus peaking near the outer edge with a
// smoothstep falloff on both sides.
func ensureRingImage() *ebiten.Image {
	if ringImage != nil {
		return ringImage
	}
	const (
		size     = ringTextureSize
		peak     = 0.86 // band center, as a fraction of the half-size
		halfBand = 0.14 // band half-width
	)
	img := ebiten.NewImage(size, size)
	pix := make([]byte, size*size*4)

	half := float64(size) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x) + 0.5 - half
			dy := float64(y) + 0.5 - half
			dist := math.Sqrt(dx*dx+dy*dy) / half

			var alpha float64
			if dist < 1 {
				t := 1 - math.Abs(dist-peak)/halfBand
				if t > 0 {
					// smoothstep: 1 at the band center, 0 at its edges
					alpha = t * t * (3 - 2*t)
				}
			}

			a := uint8(alpha * 255)
			off := (y*size + x) * 4
			pix[off+0] = a // premultiplied white
			pix[off+1] = a
			pix[off+2] = a
			pix[off+3] = a
		}
	}
	img.WritePixels(pix)
	ringImage = img
	return ringImage
}

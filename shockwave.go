package shockwave

import "image/color"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs when a color is written to an image.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// ColorCyan is the classic scanner-pulse tint.
var ColorCyan = Color{0, 1, 1, 1}

// Vec3 is a 3D point. Pulses carry full 3D origins so a host with a 3D world
// can place them; the built-in 2D surfaces project onto the XY plane and
// ignore Z.
type Vec3 struct {
	X, Y, Z float64
}

// ToRGBA converts the color to a premultiplied color.RGBA for image fills.
func (c Color) ToRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

// lerp linearly interpolates between a and b by t.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

package backdrop

import (
	"image/color"
	"math/rand/v2"

	"github.com/gogpu/backdrop/internal/blend"
)

// Color is a straight (non-premultiplied) 8-bit RGBA color.
type Color struct {
	R, G, B, A uint8
}

// Common colors.
var (
	Black = Color{0, 0, 0, 255}
	White = Color{255, 255, 255, 255}
)

// RGB creates an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// RandomColor returns an opaque color whose channels are drawn independently
// and uniformly from [0, 255].
func RandomColor(rng *rand.Rand) Color {
	return Color{
		R: uint8(rng.IntN(256)),
		G: uint8(rng.IntN(256)),
		B: uint8(rng.IntN(256)),
		A: 255,
	}
}

// RandomColorAlpha is like RandomColor but draws alpha uniformly from [lo, hi].
func RandomColorAlpha(rng *rand.Rand, lo, hi uint8) Color {
	c := RandomColor(rng)
	if hi < lo {
		lo, hi = hi, lo
	}
	c.A = uint8(int(lo) + rng.IntN(int(hi)-int(lo)+1))
	return c
}

// Premultiplied returns the color's channels multiplied by its alpha.
func (c Color) Premultiplied() (r, g, b, a uint8) {
	return blend.Premultiply(c.R, c.G, c.B, c.A)
}

// Lerp interpolates from c to other by t, rounding each channel and
// clamping t to [0, 1].
func (c Color) Lerp(other Color, t float64) Color {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	mix := func(a, b uint8) uint8 {
		return blend.Clamp255(float64(a)*(1-t) + float64(b)*t)
	}
	return Color{
		R: mix(c.R, other.R),
		G: mix(c.G, other.G),
		B: mix(c.B, other.B),
		A: mix(c.A, other.A),
	}
}

// NRGBA converts c to the standard library color type.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

package backdrop

import (
	"math/rand/v2"

	"github.com/gogpu/backdrop/internal/blend"
)

// NoiseMean is the gray level noise values are centered on.
const NoiseMean = 128

// NoiseSource produces opaque grayscale Gaussian noise, one row at a time.
// Each pixel is an independent sample with mean NoiseMean and standard
// deviation Intensity, rounded and clamped to [0, 255].
type NoiseSource struct {
	Intensity float64
	rng       *rand.Rand
}

// NewNoiseSource creates a noise source drawing from rng.
func NewNoiseSource(rng *rand.Rand, intensity float64) *NoiseSource {
	return &NoiseSource{Intensity: intensity, rng: rng}
}

// Row fills dst, a run of RGBA pixels, with fresh noise.
func (n *NoiseSource) Row(dst []uint8) {
	for i := 0; i+3 < len(dst); i += 4 {
		v := blend.Clamp255(NoiseMean + n.Intensity*n.rng.NormFloat64())
		dst[i+0], dst[i+1], dst[i+2], dst[i+3] = v, v, v, 255
	}
}

// NewNoise returns a full pixmap of noise.
func NewNoise(width, height int, intensity float64, rng *rand.Rand) *Pixmap {
	pm := NewPixmap(width, height)
	src := NewNoiseSource(rng, intensity)
	for y := 0; y < pm.height; y++ {
		src.Row(pm.Row(y))
	}
	return pm
}

// BlendNoise returns a new pixmap equal to pm*(1-t) + noise*t per channel,
// rounded and clamped, where noise is drawn from a NoiseSource of the given
// intensity. pm is not modified.
//
// Noise is generated a row at a time, so only pm and the result are held in
// memory, never a full-size noise pixmap.
func BlendNoise(pm *Pixmap, rng *rand.Rand, intensity, t float64) *Pixmap {
	out := NewPixmap(pm.width, pm.height)
	src := NewNoiseSource(rng, intensity)
	noise := make([]uint8, pm.width*4)

	for y := 0; y < pm.height; y++ {
		src.Row(noise)
		blend.Lerp(out.Row(y), pm.Row(y), noise, t)
	}

	Logger().Debug("backdrop: noise blend", "intensity", intensity, "t", t)
	return out
}

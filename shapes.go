package backdrop

import (
	"image"
	"math/rand/v2"

	"github.com/gogpu/backdrop/internal/blend"
	"github.com/gogpu/backdrop/internal/raster"
)

// ShapeKind selects the geometry of a stamped shape.
type ShapeKind uint8

const (
	// ShapeCircle is a filled disk.
	ShapeCircle ShapeKind = iota
	// ShapeHexagon is a filled regular hexagon with a vertex on the +x axis.
	ShapeHexagon
)

// String returns the shape kind name.
func (k ShapeKind) String() string {
	switch k {
	case ShapeCircle:
		return "circle"
	case ShapeHexagon:
		return "hexagon"
	default:
		return "unknown"
	}
}

// Shape alpha and size ranges.
const (
	MinShapeSize  = 20
	MinShapeAlpha = 50
	MaxShapeAlpha = 150
)

// Shape describes one stamped shape.
type Shape struct {
	Kind ShapeKind
	X, Y int // center
	Size int // radius in pixels
	Fill Color
}

// Bounds returns the shape's bounding box.
func (s Shape) Bounds() image.Rectangle {
	return image.Rect(s.X-s.Size, s.Y-s.Size, s.X+s.Size, s.Y+s.Size)
}

// mask returns the shape's coverage.
func (s Shape) mask() *image.Alpha {
	cx, cy, r := float64(s.X), float64(s.Y), float64(s.Size)
	if s.Kind == ShapeHexagon {
		return raster.Polygon(raster.RegularPolygon(6, cx, cy, r))
	}
	return raster.Circle(cx, cy, r)
}

// Draw composites the shape onto pm. Parts outside pm are clipped.
func (s Shape) Draw(pm *Pixmap) {
	pm.fillMask(s.mask(), s.Fill)
}

// StampShapes draws count random circles and hexagons onto pm and returns
// the shapes it drew together with the number it had to skip.
//
// Each shape gets a radius in [MinShapeSize, maxSize], a center that keeps
// its bounding box inside pm, a kind chosen uniformly, and a random color
// with alpha in [MinShapeAlpha, MaxShapeAlpha].
//
// When the canvas is too small for the requested radius, the radius is
// clamped to half the smaller canvas dimension, and MinShapeSize is lowered
// to match. A canvas narrower than 2 pixels fits no shape: every shape is
// skipped.
func StampShapes(pm *Pixmap, rng *rand.Rand, count, maxSize int) ([]Shape, int) {
	limit := min(pm.width, pm.height) / 2
	hi := min(maxSize, limit)
	if hi < 1 {
		if count > 0 {
			Logger().Warn("backdrop: canvas too small for shapes",
				"width", pm.width, "height", pm.height, "skipped", count)
		}
		return nil, max(count, 0)
	}
	lo := min(MinShapeSize, hi)
	if hi < maxSize {
		Logger().Warn("backdrop: shape size clamped to canvas",
			"max_size", maxSize, "clamped", hi)
	}

	shapes := make([]Shape, 0, max(count, 0))
	for i := 0; i < count; i++ {
		size := randRange(rng, lo, hi)
		s := Shape{
			Size: size,
			X:    randRange(rng, size, pm.width-size),
			Y:    randRange(rng, size, pm.height-size),
			Kind: ShapeKind(rng.IntN(2)),
		}
		s.Fill = RandomColorAlpha(rng, MinShapeAlpha, MaxShapeAlpha)
		s.Draw(pm)
		shapes = append(shapes, s)

		Logger().Debug("backdrop: stamped shape",
			"kind", s.Kind, "x", s.X, "y", s.Y, "size", s.Size, "alpha", s.Fill.A)
	}
	return shapes, 0
}

// randRange returns a uniform integer in [lo, hi].
func randRange(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.IntN(hi-lo+1)
}

// fillMask composites c onto pm, scaled by the mask coverage.
func (p *Pixmap) fillMask(mask *image.Alpha, c Color) {
	if mask == nil {
		return
	}
	r := mask.Bounds().Intersect(p.Bounds())
	if r.Empty() {
		return
	}
	sr, sg, sb, sa := c.Premultiplied()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		off := mask.PixOffset(r.Min.X, y)
		cov := mask.Pix[off : off+r.Dx()]
		dst := p.Row(y)[r.Min.X*4 : r.Max.X*4]
		blend.SourceOverSpan(dst, cov, sr, sg, sb, sa)
	}
}

// Package raster builds anti-aliased coverage masks for filled 2D shapes.
//
// Masks are *image.Alpha values whose bounds are expressed in canvas
// coordinates, so callers can intersect them with a destination rectangle
// and composite pixel by pixel. Scan conversion is delegated to
// golang.org/x/image/vector.
package raster

import (
	"image"
	"math"

	"golang.org/x/image/vector"
)

// minCircleSegments is the fewest polygon vertices used for a circle.
const minCircleSegments = 64

// Point is a 2D point in canvas coordinates.
type Point struct {
	X, Y float64
}

// Circle returns the coverage mask of a filled disk.
// Returns nil if the radius is not positive.
//
// The disk is filled as a regular polygon with roughly one vertex per 2 px
// of circumference (at least 64), rounded up to a multiple of four so that
// vertices land on the axis extremes and the mask spans exactly
// [cx-r, cx+r] × [cy-r, cy+r].
func Circle(cx, cy, r float64) *image.Alpha {
	if r <= 0 {
		return nil
	}
	return Polygon(RegularPolygon(circleSegments(r), cx, cy, r))
}

// circleSegments returns the vertex count used to approximate a circle of
// radius r.
func circleSegments(r float64) int {
	n := max(minCircleSegments, int(math.Ceil(math.Pi*r)))
	return (n + 3) &^ 3
}

// Polygon returns the coverage mask of a closed polygon filled with the
// non-zero winding rule. Returns nil for fewer than three points.
func Polygon(pts []Point) *image.Alpha {
	if len(pts) < 3 {
		return nil
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range pts {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	bounds := image.Rect(
		int(math.Floor(minX)), int(math.Floor(minY)),
		int(math.Ceil(maxX)), int(math.Ceil(maxY)),
	)
	if bounds.Empty() {
		return nil
	}
	z := newRasterizer(bounds)
	fx, fy := float32(bounds.Min.X), float32(bounds.Min.Y)
	z.MoveTo(float32(pts[0].X)-fx, float32(pts[0].Y)-fy)
	for _, p := range pts[1:] {
		z.LineTo(float32(p.X)-fx, float32(p.Y)-fy)
	}
	z.ClosePath()

	return fill(z, bounds)
}

// RegularPolygon returns the vertices of a regular n-gon of circumradius r
// centred on (cx, cy). Vertex i lies at angle i*2π/n, measured from the
// positive x axis towards positive y.
func RegularPolygon(n int, cx, cy, r float64) []Point {
	if n < 3 {
		return nil
	}
	step := 2 * math.Pi / float64(n)
	pts := make([]Point, n)
	for i := range pts {
		a := step * float64(i)
		pts[i] = Point{X: cx + r*math.Cos(a), Y: cy + r*math.Sin(a)}
	}
	return pts
}

func newRasterizer(bounds image.Rectangle) *vector.Rasterizer {
	return vector.NewRasterizer(bounds.Dx(), bounds.Dy())
}

// fill renders the accumulated path into a fresh mask covering bounds.
func fill(z *vector.Rasterizer, bounds image.Rectangle) *image.Alpha {
	mask := image.NewAlpha(bounds)
	z.Draw(mask, bounds, image.Opaque, image.Point{})
	return mask
}

package backdrop

import "math"

// RadialGradient returns a new opaque pixmap filled with a radial gradient
// from center (at the middle of the canvas) to edge (at the corners).
//
// The middle is (width/2, height/2) using integer division, and the gradient
// radius is the distance from the middle to the top-left corner. Each pixel
// at distance d from the middle is center.Lerp(edge, d/radius), with the
// ratio clamped to [0, 1].
func RadialGradient(width, height int, center, edge Color) *Pixmap {
	pm := NewPixmap(width, height)
	FillRadialGradient(pm, center, edge)
	return pm
}

// FillRadialGradient overwrites every pixel of pm with the radial gradient
// described by RadialGradient. Alpha channels of the colors are ignored; the
// result is fully opaque.
func FillRadialGradient(pm *Pixmap, center, edge Color) {
	cx, cy := pm.width/2, pm.height/2
	maxRadius := math.Sqrt(float64(cx*cx + cy*cy))

	c1 := RGB(center.R, center.G, center.B)
	c2 := RGB(edge.R, edge.G, edge.B)

	for y := 0; y < pm.height; y++ {
		dy := float64(y - cy)
		row := pm.Row(y)
		for x := 0; x < pm.width; x++ {
			ratio := 0.0
			if maxRadius > 0 {
				dx := float64(x - cx)
				ratio = math.Sqrt(dx*dx+dy*dy) / maxRadius
			}
			c := c1.Lerp(c2, ratio)
			i := x * 4
			row[i+0], row[i+1], row[i+2], row[i+3] = c.R, c.G, c.B, 255
		}
	}

	Logger().Debug("backdrop: radial gradient",
		"width", pm.width, "height", pm.height,
		"center", center.NRGBA(), "edge", edge.NRGBA())
}

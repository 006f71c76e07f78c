package backdrop

import "github.com/gogpu/backdrop/internal/blend"

// DrawGrid composites 1-pixel grid lines onto pm: a vertical line at every x
// that is a multiple of spacing and a horizontal line at every such y, each
// spanning the full canvas. Where lines cross, the color is applied twice.
// It returns the number of vertical and horizontal lines drawn.
// A non-positive spacing draws nothing.
func DrawGrid(pm *Pixmap, spacing int, c Color) (vertical, horizontal int) {
	if spacing <= 0 {
		return 0, 0
	}
	sr, sg, sb, sa := c.Premultiplied()

	for y := 0; y < pm.height; y++ {
		row := pm.Row(y)
		for x := 0; x < pm.width; x += spacing {
			blend.SourceOverSpan(row[x*4:x*4+4], nil, sr, sg, sb, sa)
		}
	}
	vertical = (pm.width + spacing - 1) / spacing

	for y := 0; y < pm.height; y += spacing {
		blend.SourceOverSpan(pm.Row(y), nil, sr, sg, sb, sa)
		horizontal++
	}

	Logger().Debug("backdrop: grid overlay",
		"spacing", spacing, "vertical", vertical, "horizontal", horizontal)
	return vertical, horizontal
}

package blend

// Premultiply converts a straight-alpha color to premultiplied form.
func Premultiply(r, g, b, a byte) (byte, byte, byte, byte) {
	return MulDiv255(r, a), MulDiv255(g, a), MulDiv255(b, a), a
}

// SourceOver composites a premultiplied source over a premultiplied destination.
// Formula: S + D*(1-Sa)
func SourceOver(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	invSa := 255 - sa
	return addClamp(sr, MulDiv255(dr, invSa)),
		addClamp(sg, MulDiv255(dg, invSa)),
		addClamp(sb, MulDiv255(db, invSa)),
		addClamp(sa, MulDiv255(da, invSa))
}

// SourceOverSpan composites one premultiplied source color over dst, a slice
// of premultiplied RGBA pixels, scaling the source by coverage[i] for pixel i.
// A nil coverage slice means full coverage. len(dst) must be 4*n where n is
// the number of pixels; coverage, if set, must hold at least n entries.
func SourceOverSpan(dst []byte, coverage []byte, sr, sg, sb, sa byte) {
	n := len(dst) / 4
	for i := 0; i < n; i++ {
		r, g, b, a := sr, sg, sb, sa
		if coverage != nil {
			c := coverage[i]
			if c == 0 {
				continue
			}
			if c != 255 {
				r, g, b, a = MulDiv255(r, c), MulDiv255(g, c), MulDiv255(b, c), MulDiv255(a, c)
			}
		}
		if a == 0 {
			continue
		}
		j := i * 4
		dst[j+0], dst[j+1], dst[j+2], dst[j+3] = SourceOver(r, g, b, a, dst[j+0], dst[j+1], dst[j+2], dst[j+3])
	}
}

// Lerp returns round(d*(1-t) + s*t) for each byte pair, writing into dst.
// dst, d and s must have equal length. t is clamped to [0, 1].
func Lerp(dst, d, s []byte, t float64) {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	inv := 1 - t
	for i := range dst {
		dst[i] = Clamp255(float64(d[i])*inv + float64(s[i])*t)
	}
}

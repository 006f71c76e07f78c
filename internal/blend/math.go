// Package blend provides integer alpha compositing on premultiplied RGBA bytes.
//
// All operations take and return premultiplied values in the range 0-255 and
// never produce a channel outside that range.
//
// References:
//   - Porter-Duff: "Compositing Digital Images" (1984)
//   - Alvy Ray Smith's technical memos: http://alvyray.com/Memos/
package blend

// div255 divides x by 255, rounding to nearest.
//
// Formula: t = x + 128; (t + (t >> 8)) >> 8
//
// Exact for all products of two bytes.
func div255(x uint32) uint32 {
	t := x + 128
	return (t + (t >> 8)) >> 8
}

// MulDiv255 returns round(a * b / 255).
func MulDiv255(a, b byte) byte {
	return byte(div255(uint32(a) * uint32(b)))
}

// addClamp adds two bytes and clamps to 255.
func addClamp(a, b byte) byte {
	sum := uint16(a) + uint16(b)
	if sum > 255 {
		return 255
	}
	return byte(sum)
}

// Clamp255 rounds x to the nearest integer and clamps it to [0, 255].
func Clamp255(x float64) byte {
	if x <= 0 {
		return 0
	}
	if x >= 255 {
		return 255
	}
	return byte(x + 0.5)
}

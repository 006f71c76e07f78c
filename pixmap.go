package backdrop

import (
	"image"
	"image/color"

	"github.com/gogpu/backdrop/internal/blend"
)

// Pixmap represents a rectangular pixel buffer.
//
// Pixels are stored as premultiplied RGBA, 4 bytes per pixel, row-major with
// no padding: the same layout as image.RGBA.Pix. A Pixmap always carries an
// alpha channel; it is dropped only when the image is encoded.
type Pixmap struct {
	width  int
	height int
	data   []uint8
}

// NewPixmap creates a new transparent pixmap with the given dimensions.
// Negative dimensions are treated as zero.
func NewPixmap(width, height int) *Pixmap {
	width, height = max(width, 0), max(height, 0)
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data (premultiplied RGBA).
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// Row returns the bytes of row y. It panics if y is out of range.
func (p *Pixmap) Row(y int) []uint8 {
	stride := p.width * 4
	return p.data[y*stride : (y+1)*stride]
}

// SizeBytes returns the size of the pixel data in bytes.
func (p *Pixmap) SizeBytes() int {
	return len(p.data)
}

// SetPixel overwrites a single pixel. Out-of-bounds coordinates are ignored.
func (p *Pixmap) SetPixel(x, y int, c Color) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0], p.data[i+1], p.data[i+2], p.data[i+3] = c.Premultiplied()
}

// GetPixel returns a single pixel as a straight-alpha color.
// Out-of-bounds coordinates return the zero Color.
func (p *Pixmap) GetPixel(x, y int) Color {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return Color{}
	}
	i := (y*p.width + x) * 4
	r, g, b, a := p.data[i+0], p.data[i+1], p.data[i+2], p.data[i+3]
	switch a {
	case 255:
		return Color{R: r, G: g, B: b, A: a}
	case 0:
		return Color{}
	}
	un := func(v uint8) uint8 {
		return blend.Clamp255(float64(v) * 255 / float64(a))
	}
	return Color{R: un(r), G: un(g), B: un(b), A: a}
}

// BlendPixel composites c over the pixel at (x, y).
// Out-of-bounds coordinates are ignored.
func (p *Pixmap) BlendPixel(x, y int, c Color) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	sr, sg, sb, sa := c.Premultiplied()
	blend.SourceOverSpan(p.data[i:i+4], nil, sr, sg, sb, sa)
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c Color) {
	r, g, b, a := c.Premultiplied()
	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = r
		p.data[i+1] = g
		p.data[i+2] = b
		p.data[i+3] = a
	}
}

// Clone returns a deep copy of the pixmap.
func (p *Pixmap) Clone() *Pixmap {
	c := &Pixmap{width: p.width, height: p.height, data: make([]uint8, len(p.data))}
	copy(c.data, p.data)
	return c
}

// Flatten composites the pixmap over opaque black in place, leaving every
// pixel fully opaque. Premultiplied storage makes this a matter of forcing
// alpha to 255.
func (p *Pixmap) Flatten() {
	for i := 3; i < len(p.data); i += 4 {
		p.data[i] = 255
	}
}

// Opaque reports whether every pixel is fully opaque.
func (p *Pixmap) Opaque() bool {
	for i := 3; i < len(p.data); i += 4 {
		if p.data[i] != 255 {
			return false
		}
	}
	return true
}

// RGBAImage returns an *image.RGBA that shares the pixmap's pixel data.
// Writes through either value are visible in both.
func (p *Pixmap) RGBAImage() *image.RGBA {
	return &image.RGBA{
		Pix:    p.data,
		Stride: p.width * 4,
		Rect:   image.Rect(0, 0, p.width, p.height),
	}
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return color.RGBA{}
	}
	i := (y*p.width + x) * 4
	return color.RGBA{R: p.data[i+0], G: p.data[i+1], B: p.data[i+2], A: p.data[i+3]}
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.RGBAModel
}

package render

import (
	"math"

	"wavegrid/internal/wave"
)

// fillStraightRGBA converts shaded pixels into non-premultiplied RGBA bytes.
func fillStraightRGBA(buf []byte, px []wave.PixelOutput) {
	for i, p := range px {
		base := i * 4
		buf[base+0] = toByte(p.R)
		buf[base+1] = toByte(p.G)
		buf[base+2] = toByte(p.B)
		buf[base+3] = toByte(p.A)
	}
}

// fillPremultipliedRGBA converts shaded pixels into premultiplied RGBA bytes,
// the layout GPU images expect.
func fillPremultipliedRGBA(buf []byte, px []wave.PixelOutput) {
	for i, p := range px {
		base := i * 4
		a := wave.Saturate(p.A)
		buf[base+0] = toByte(p.R * a)
		buf[base+1] = toByte(p.G * a)
		buf[base+2] = toByte(p.B * a)
		buf[base+3] = toByte(a)
	}
}

// toByte maps [0, 1] to [0, 255]. NaN becomes 0.
func toByte(v float64) uint8 {
	if math.IsNaN(v) {
		return 0
	}
	return uint8(math.Round(wave.Saturate(v) * 255))
}

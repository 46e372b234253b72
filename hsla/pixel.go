package hsla

import (
	colorful "github.com/lucasb-eyer/go-colorful"
	"image/color"
)

// Pixel is a single colour in hue-saturation-luminance-alpha form.
// H is in degrees [0, 360), S, L and A are fractions in [0, 1].
type Pixel struct {
	H, S, L, A float64
}

// PixelFromColor converts any color.Color to a Pixel. Alpha is kept
// non-premultiplied.
func PixelFromColor(c color.Color) Pixel {
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	rgb := colorful.Color{
		R: float64(n.R) / 0xffff,
		G: float64(n.G) / 0xffff,
		B: float64(n.B) / 0xffff,
	}
	h, s, l := rgb.Hsl()
	return Pixel{H: h, S: s, L: l, A: float64(n.A) / 0xffff}
}

// NRGBA64 converts p back to a 16-bit non-premultiplied colour. Out of range
// fields are clamped.
func (p Pixel) NRGBA64() color.NRGBA64 {
	rgb := colorful.Hsl(p.H, clamp(p.S), clamp(p.L)).Clamped()
	return color.NRGBA64{
		R: to16(rgb.R),
		G: to16(rgb.G),
		B: to16(rgb.B),
		A: to16(clamp(p.A)),
	}
}

// RGBA implements color.Color.
func (p Pixel) RGBA() (r, g, b, a uint32) {
	return p.NRGBA64().RGBA()
}

func to16(v float64) uint16 {
	return uint16(v*0xffff + 0.5)
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

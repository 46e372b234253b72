package hsla

import (
	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"image"
	"image/color"
	"testing"
)

func TestPixelFromColor(t *testing.T) {
	red := PixelFromColor(color.NRGBA{R: 255, A: 255})
	assert.InDelta(t, 0.0, red.H, delta)
	assert.InDelta(t, 1.0, red.S, delta)
	assert.InDelta(t, 0.5, red.L, delta)
	assert.InDelta(t, 1.0, red.A, delta)

	blue := PixelFromColor(color.NRGBA{B: 255, A: 255})
	assert.InDelta(t, 240.0, blue.H, delta)

	white := PixelFromColor(color.White)
	assert.InDelta(t, 1.0, white.L, delta)
	assert.InDelta(t, 0.0, white.S, delta)

	translucent := PixelFromColor(color.NRGBA{R: 255, A: 128})
	assert.InDelta(t, 1.0, translucent.S, delta)
	assert.InDelta(t, 128.0/255, translucent.A, delta)
}

func TestPixelNRGBA64(t *testing.T) {
	red := Pixel{H: 0, S: 1, L: 0.5, A: 1}
	assert.Equal(t, color.NRGBA{R: 255, A: 255}, color.NRGBAModel.Convert(red))

	gray := Pixel{H: 200, S: 0, L: 0.5, A: 1}
	c := gray.NRGBA64()
	assert.Equal(t, c.R, c.G)
	assert.Equal(t, c.G, c.B)

	// Out of range fields are clamped rather than wrapped.
	bright := Pixel{L: 1.4, A: 2}
	assert.Equal(t, color.NRGBA64{R: 0xffff, G: 0xffff, B: 0xffff, A: 0xffff}, bright.NRGBA64())
}

func TestFromImage(t *testing.T) {
	src := imaging.New(4, 3, color.NRGBA{R: 255, A: 255})
	src.SetNRGBA(3, 2, color.NRGBA{B: 255, A: 128})

	img := FromImage(src)
	require.Equal(t, 4, img.Width)
	require.Equal(t, 3, img.Height)
	assert.Len(t, img.Pix, 12)
	assert.Equal(t, image.Rect(0, 0, 4, 3), img.Bounds())

	assert.InDelta(t, 0.5, img.Pixel(0, 0).L, delta)
	assert.InDelta(t, 240.0, img.Pixel(3, 2).H, delta)
	assert.InDelta(t, 128.0/255, img.Pixel(3, 2).A, delta)

	// At must give back what was read in.
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			assert.Equal(t, src.NRGBAAt(x, y), color.NRGBAModel.Convert(img.At(x, y)))
		}
	}
}

func TestFromImageRebasesBounds(t *testing.T) {
	src := image.NewNRGBA(image.Rect(10, 20, 12, 21))
	src.SetNRGBA(11, 20, color.NRGBA{G: 255, A: 255})

	img := FromImage(src)
	assert.Equal(t, image.Rect(0, 0, 2, 1), img.Bounds())
	assert.InDelta(t, 120.0, img.Pixel(1, 0).H, delta)
}

func TestImageBounds(t *testing.T) {
	img := New(2, 2)
	assert.True(t, img.InBounds(1, 1))
	assert.False(t, img.InBounds(2, 0))
	assert.False(t, img.InBounds(0, -1))
	assert.Equal(t, color.NRGBA64{}, img.At(5, 5))
	assert.Panics(t, func() { img.Pixel(2, 2) })

	var none *Image
	assert.False(t, none.InBounds(0, 0))
	assert.Equal(t, image.Rectangle{}, none.Bounds())
	assert.Nil(t, none.Clone())
}

func TestClone(t *testing.T) {
	img := New(1, 1)
	clone := img.Clone()
	clone.Pixel(0, 0).L = 1
	assert.Equal(t, 0.0, img.Pixel(0, 0).L)
}

// Grayscaled images come back out with equal RGB channels.
func TestGrayscaleThroughImage(t *testing.T) {
	src := imaging.New(2, 2, color.NRGBA{R: 200, G: 30, B: 90, A: 255})
	out := Grayscale(FromImage(src))
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			c := color.NRGBAModel.Convert(out.At(x, y)).(color.NRGBA)
			assert.Equal(t, c.R, c.G)
			assert.Equal(t, c.G, c.B)
			assert.Equal(t, uint8(255), c.A)
		}
	}
}

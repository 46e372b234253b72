// Package hsla holds an in-memory image stored as hue-saturation-luminance-alpha
// pixels, and a handful of transforms over it.
package hsla

import (
	"image"
	"image/color"
)

// Image is a Width x Height grid of Pixels stored row by row.
type Image struct {
	Pix           []Pixel
	Width, Height int
}

// New returns a blank image. Negative sizes are treated as 0.
func New(width, height int) *Image {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Image{Pix: make([]Pixel, width*height), Width: width, Height: height}
}

// FromImage converts m pixel by pixel. The result always starts at the origin,
// whatever the bounds of m.
func FromImage(m image.Image) *Image {
	bounds := m.Bounds()
	img := New(bounds.Dx(), bounds.Dy())
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			*img.Pixel(x, y) = PixelFromColor(m.At(bounds.Min.X+x, bounds.Min.Y+y))
		}
	}
	return img
}

// InBounds reports whether (x, y) addresses a pixel of img.
func (img *Image) InBounds(x, y int) bool {
	return img != nil && x >= 0 && y >= 0 && x < img.Width && y < img.Height
}

// Pixel returns the pixel at (x, y) for in-place edits. It panics when (x, y)
// is out of bounds, like slice indexing does.
func (img *Image) Pixel(x, y int) *Pixel {
	if !img.InBounds(x, y) {
		panic("hsla: pixel out of bounds")
	}
	return &img.Pix[y*img.Width+x]
}

// Clone returns a deep copy of img.
func (img *Image) Clone() *Image {
	if img == nil {
		return nil
	}
	clone := &Image{Pix: make([]Pixel, len(img.Pix)), Width: img.Width, Height: img.Height}
	copy(clone.Pix, img.Pix)
	return clone
}

func (img *Image) ColorModel() color.Model {
	return color.NRGBA64Model
}

func (img *Image) Bounds() image.Rectangle {
	if img == nil {
		return image.Rectangle{}
	}
	return image.Rect(0, 0, img.Width, img.Height)
}

// At returns a transparent colour outside the image.
func (img *Image) At(x, y int) color.Color {
	if !img.InBounds(x, y) {
		return color.NRGBA64{}
	}
	return img.Pixel(x, y).NRGBA64()
}

// empty reports whether there is nothing to transform.
func (img *Image) empty() bool {
	return img == nil || img.Width == 0 || img.Height == 0
}

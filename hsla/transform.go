package hsla

import "math"

const (
	// IlliniOrange and IlliniBlue are hues in degrees.
	IlliniOrange = 11.0
	IlliniBlue   = 216.0

	spotlightRadius  = 160.0
	spotlightFalloff = 0.005 // luminance lost per pixel of distance
	spotlightFloor   = 0.8   // luminance lost at or beyond the radius

	watermarkBoost = 0.2

	// Hues on either side of these go to the nearer Illini colour.
	orangeBlueMidpoint = IlliniOrange + (IlliniBlue-IlliniOrange)/2
	blueOrangeMidpoint = IlliniBlue + (360-IlliniBlue)/2
)

// Grayscale sets the saturation of every pixel to 0 and returns img.
func Grayscale(img *Image) *Image {
	if img.empty() {
		return img
	}
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			img.Pixel(x, y).S = 0
		}
	}
	return img
}

// Spotlight darkens img around (centerX, centerY). Luminance drops by 0.5% per
// pixel of euclidean distance from the center, and by 80% from 160 pixels on.
// The center does not have to lie inside the image.
func Spotlight(img *Image, centerX, centerY int) *Image {
	if img.empty() {
		return img
	}
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			pixel := img.Pixel(x, y)
			d := distance(x, y, centerX, centerY)
			if d >= spotlightRadius {
				pixel.L *= 1 - spotlightFloor
			} else {
				pixel.L -= spotlightFalloff * d * pixel.L
			}
		}
	}
	return img
}

func distance(x, y, centerX, centerY int) float64 {
	dx := float64(x - centerX)
	dy := float64(y - centerY)
	return math.Sqrt(dx*dx + dy*dy)
}

// Illinify sets the hue of every pixel to either Illini Orange or Illini Blue,
// whichever is closer on the colour wheel. A hue of exactly IlliniOrange ends
// up blue.
func Illinify(img *Image) *Image {
	if img.empty() {
		return img
	}
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			pixel := img.Pixel(x, y)
			pixel.H = illiniHue(pixel.H)
		}
	}
	return img
}

func illiniHue(hue float64) float64 {
	if hue < IlliniOrange || (hue > IlliniOrange && hue < orangeBlueMidpoint) || hue > blueOrangeMidpoint {
		return IlliniOrange
	}
	return IlliniBlue
}

// Watermark brightens base wherever stencil is fully white (luminance exactly
// 1). Such pixels gain 0.2 luminance, capped at 1. Only the area the two
// images share is considered. stencil is not modified.
func Watermark(base, stencil *Image) *Image {
	if base.empty() || stencil.empty() {
		return base
	}
	for y := 0; y < base.Height; y++ {
		for x := 0; x < base.Width; x++ {
			if !stencil.InBounds(x, y) || stencil.Pixel(x, y).L != 1.0 {
				continue
			}
			pixel := base.Pixel(x, y)
			pixel.L += watermarkBoost
			if pixel.L > 1.0 {
				pixel.L = 1.0
			}
		}
	}
	return base
}

package segment

import (
	"image"
	"image/color"
)

// SampleBackground estimates the background color of a photo as the
// integer-truncated per-channel average of the four corner pixels. Photos
// shot against a uniform backdrop have that backdrop in every corner, so the
// average is a robust reference for the corner-seeded flood fill.
func SampleBackground(img *image.NRGBA) (color.NRGBA, error) {
	if emptyNRGBA(img) {
		return color.NRGBA{}, ErrEmptyImage
	}
	b := img.Bounds()
	corners := [4]color.NRGBA{
		pixelAt(img, b.Min.X, b.Min.Y),
		pixelAt(img, b.Max.X-1, b.Min.Y),
		pixelAt(img, b.Min.X, b.Max.Y-1),
		pixelAt(img, b.Max.X-1, b.Max.Y-1),
	}
	var r, g, bl int
	for _, c := range corners {
		r += int(c.R)
		g += int(c.G)
		bl += int(c.B)
	}
	return color.NRGBA{R: uint8(r / 4), G: uint8(g / 4), B: uint8(bl / 4), A: 255}, nil
}

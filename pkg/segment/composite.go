package segment

import (
	"fmt"
	"image"
	"image/color"
)

// ToAlphaImage produces the cut-out: background pixels (mask true) get alpha
// 0 with their RGB preserved, everything else gets alpha 255. The output
// always carries an alpha channel and is never partially transparent.
func ToAlphaImage(img *image.NRGBA, mask *Mask) (*image.NRGBA, error) {
	if emptyNRGBA(img) {
		return nil, ErrEmptyImage
	}
	if !mask.Matches(img) {
		return nil, fmt.Errorf("segment: mask %dx%d does not match image %dx%d",
			maskW(mask), maskH(mask), img.Bounds().Dx(), img.Bounds().Dy())
	}
	b := img.Bounds()
	out := CloneNRGBA(img)
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			i := out.PixOffset(x+b.Min.X, y+b.Min.Y)
			if mask.Bits[y*mask.W+x] {
				out.Pix[i+3] = 0
			} else {
				out.Pix[i+3] = 255
			}
		}
	}
	return out, nil
}

// ToDebugImage renders a mask for visual inspection: background translucent
// red, foreground translucent green. Diagnostic only — the result is never
// fed back into another operation.
func ToDebugImage(mask *Mask) *image.NRGBA {
	if mask == nil {
		return nil
	}
	bg := color.NRGBA{R: 255, G: 0, B: 0, A: 128}
	fg := color.NRGBA{R: 0, G: 255, B: 0, A: 128}
	out := image.NewNRGBA(image.Rect(0, 0, mask.W, mask.H))
	for y := 0; y < mask.H; y++ {
		for x := 0; x < mask.W; x++ {
			c := fg
			if mask.Bits[y*mask.W+x] {
				c = bg
			}
			i := out.PixOffset(x, y)
			out.Pix[i+0] = c.R
			out.Pix[i+1] = c.G
			out.Pix[i+2] = c.B
			out.Pix[i+3] = c.A
		}
	}
	return out
}

func maskW(m *Mask) int {
	if m == nil {
		return 0
	}
	return m.W
}

func maskH(m *Mask) int {
	if m == nil {
		return 0
	}
	return m.H
}

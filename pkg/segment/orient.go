package segment

import "image"

// AutoOrient normalizes a photo according to its EXIF orientation (1..8) so
// downstream corner sampling and seed coordinates see the upright image.
// Orientation 1 or any out-of-range value returns the input unchanged.
func AutoOrient(img *image.NRGBA, orientation int) *image.NRGBA {
	if img == nil {
		return nil
	}
	switch orientation {
	case 2:
		return flop(img)
	case 3:
		return flop(flip(img))
	case 4:
		return flip(img)
	case 5:
		return flop(rotate90(img))
	case 6:
		return rotate90(img)
	case 7:
		return flip(rotate90(img))
	case 8:
		return flop(flip(rotate90(img)))
	default:
		return img
	}
}

// flip mirrors vertically.
func flip(src *image.NRGBA) *image.NRGBA {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			si := src.PixOffset(x+b.Min.X, y+b.Min.Y)
			di := out.PixOffset(x, h-1-y)
			copy(out.Pix[di:di+4], src.Pix[si:si+4])
		}
	}
	return out
}

// flop mirrors horizontally.
func flop(src *image.NRGBA) *image.NRGBA {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			si := src.PixOffset(x+b.Min.X, y+b.Min.Y)
			di := out.PixOffset(w-1-x, y)
			copy(out.Pix[di:di+4], src.Pix[si:si+4])
		}
	}
	return out
}

// rotate90 rotates a quarter turn clockwise.
func rotate90(src *image.NRGBA) *image.NRGBA {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	out := image.NewNRGBA(image.Rect(0, 0, h, w))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			si := src.PixOffset(x+b.Min.X, y+b.Min.Y)
			di := out.PixOffset(h-1-y, x)
			copy(out.Pix[di:di+4], src.Pix[si:si+4])
		}
	}
	return out
}

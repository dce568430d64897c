package segment

import (
	"fmt"
	"image"
)

// RestrictToRegion confines a segmentation result to a rectangular sub-area:
// inside rect the output takes the processed pixel, outside it keeps the
// original. Containment is half-open ([rect.Min, rect.Max) in both axes) and
// rect is intersected with the image bounds, so out-of-range rectangles are
// clamped rather than rejected. An empty rect means "no constraint" and
// returns a copy of processed unchanged.
func RestrictToRegion(original, processed *image.NRGBA, rect image.Rectangle) (*image.NRGBA, error) {
	if emptyNRGBA(original) || emptyNRGBA(processed) {
		return nil, ErrEmptyImage
	}
	ob := original.Bounds()
	pb := processed.Bounds()
	if ob.Dx() != pb.Dx() || ob.Dy() != pb.Dy() {
		return nil, fmt.Errorf("segment: processed %dx%d does not match original %dx%d",
			pb.Dx(), pb.Dy(), ob.Dx(), ob.Dy())
	}
	if rect.Empty() {
		return CloneNRGBA(processed), nil
	}
	out := CloneNRGBA(original)
	clipped := rect.Intersect(image.Rect(0, 0, ob.Dx(), ob.Dy()))
	for y := clipped.Min.Y; y < clipped.Max.Y; y++ {
		for x := clipped.Min.X; x < clipped.Max.X; x++ {
			si := processed.PixOffset(x+pb.Min.X, y+pb.Min.Y)
			di := out.PixOffset(x+ob.Min.X, y+ob.Min.Y)
			copy(out.Pix[di:di+4], processed.Pix[si:si+4])
		}
	}
	return out, nil
}

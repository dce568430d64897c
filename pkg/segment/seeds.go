package segment

import "image"

// contrastThreshold is the L1 distance a grid point must exceed against a
// cardinal neighbor to be proposed as a shape seed.
const contrastThreshold = 30

// exceedsContrast reports whether the pixel at p sits on a local color edge:
// true when the L1 distance to any of its four cardinal neighbors offset by
// stride exceeds contrastThreshold. Neighbors are sampled clamped, so points
// near the border compare against edge pixels rather than falling off.
func exceedsContrast(img *image.NRGBA, p image.Point, stride int) bool {
	c := samplePixelClamped(img, p.X, p.Y)
	neighbors := [4]image.Point{
		{X: p.X + stride, Y: p.Y},
		{X: p.X - stride, Y: p.Y},
		{X: p.X, Y: p.Y + stride},
		{X: p.X, Y: p.Y - stride},
	}
	for _, n := range neighbors {
		if ColorDistance(c, samplePixelClamped(img, n.X, n.Y)) > contrastThreshold {
			return true
		}
	}
	return false
}

// DetectSeeds scans a uniform grid over the image and proposes candidate
// seed points wherever local contrast suggests an object edge or corner.
// The grid stride is max(W,H)/20 (integer division); images smaller than
// 20px in both dimensions produce no seeds. A stride-wide border is skipped.
// Points are returned in row-major scan order.
//
// This is a coarse heuristic, not connected-component labeling: several
// seeds may land inside one region. Multi-seed consumers should either share
// a visited grid across sequential fills or tolerate duplicate fills, which
// are idempotent.
func DetectSeeds(img *image.NRGBA) []image.Point {
	if emptyNRGBA(img) {
		return nil
	}
	b := img.Bounds()
	w := b.Dx()
	h := b.Dy()
	stride := w
	if h > stride {
		stride = h
	}
	stride /= 20
	if stride == 0 {
		return nil
	}
	var seeds []image.Point
	for y := stride; y < h-stride; y += stride {
		for x := stride; x < w-stride; x += stride {
			p := image.Point{X: x + b.Min.X, Y: y + b.Min.Y}
			if exceedsContrast(img, p, stride) {
				seeds = append(seeds, p)
			}
		}
	}
	return seeds
}

package segment

import "image"

// refineStride is the neighbor offset used when probing inside-polygon
// pixels for edge contrast before refining with a flood fill.
const refineStride = 5

// PolygonMask rasterizes a free-hand closed path into a containment mask
// over a w x h grid. Here true means INSIDE the polygon (the opposite
// convention from the background masks). Containment uses the even-odd
// crossing rule; the path is implicitly closed (last point connects back to
// the first). A path with fewer than 3 points is degenerate and yields an
// all-false mask, not an error.
func PolygonMask(w, h int, path []image.Point) *Mask {
	mask := NewMask(w, h)
	if len(path) < 3 {
		return mask
	}
	n := len(path)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			inside := false
			j := n - 1
			for i := 0; i < n; i++ {
				yi := path[i].Y
				yj := path[j].Y
				if (yi > y) != (yj > y) {
					// x coordinate where the edge crosses this scanline
					xi := float64(path[i].X)
					xj := float64(path[j].X)
					cross := xi + (float64(y)-float64(yi))/(float64(yj)-float64(yi))*(xj-xi)
					if float64(x) < cross {
						inside = !inside
					}
				}
				j = i
			}
			if inside {
				mask.Bits[y*w+x] = true
			}
		}
	}
	return mask
}

// RasterizePolygon converts a drawn path into a shape cut: every
// inside-polygon pixel whose local contrast (stride 5) marks it as sitting
// on an object edge becomes the origin of a foreground flood fill at the
// caller tolerance, and each fill's region is overlaid opaque onto a copy of
// the original image, in detection order.
//
// Unlike the corner and seed crops, which always produce a full
// transparent/opaque partition, this operation only ADDS opacity: pixels no
// fill reaches keep their base-image bytes untouched. That asymmetry is
// intentional and preserved as documented. Because the composite therefore
// never classifies anything transparent, the retained mask is the polygon
// containment complemented to the background convention: true = outside the
// drawn path.
func RasterizePolygon(img *image.NRGBA, path []image.Point, tolerance int) (*image.NRGBA, *Mask, error) {
	if emptyNRGBA(img) {
		return nil, nil, ErrEmptyImage
	}
	tolerance = clampTolerance(tolerance)
	b := img.Bounds()
	w := b.Dx()
	h := b.Dy()

	inside := PolygonMask(w, h, path)
	out := CloneNRGBA(img)
	union := NewMask(w, h) // true = reached by some fill

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if !inside.Bits[y*w+x] {
				continue
			}
			p := image.Point{X: x + b.Min.X, Y: y + b.Min.Y}
			if !exceedsContrast(img, p, refineStride) {
				continue
			}
			if union.Bits[y*w+x] {
				// already reached by an earlier fill; a repeat
				// would be idempotent, so skip the work
				continue
			}
			ref := pixelAt(img, p.X, p.Y)
			floodFill(img, p, ref, tolerance, nil, nil, union)
		}
	}

	for i, filled := range union.Bits {
		if filled {
			out.Pix[i*4+3] = 255
		}
	}

	retained := NewMask(w, h)
	for i, in := range inside.Bits {
		retained.Bits[i] = !in
	}
	return out, retained, nil
}

package segment

import (
	"image"
	"image/color"
)

// floodFill is the single BFS core shared by every seeding policy. It grows
// a 4-connected region from seed, accepting a pixel when its L1 distance to
// ref is <= tolerance, and marks accepted pixels in accept. visited is the
// per-run bookkeeping grid, owned by the caller and returned extended so the
// call stays pure; it must not be shared across concurrently running fills.
// Bounds and visited status are checked before the distance test; acceptance
// is monotonic (an accepted pixel is never reconsidered) and rejected pixels
// are never revisited within a run. An out-of-bounds seed is a no-op.
//
// blocked, when non-nil, marks pixels a run must not enter at all. The
// corner-seeded background fill passes its accumulated mask here so a region
// claimed by an earlier corner run is never re-expanded by a later one.
func floodFill(img *image.NRGBA, seed image.Point, ref color.NRGBA, tolerance int, visited, blocked []bool, accept *Mask) []bool {
	b := img.Bounds()
	w := b.Dx()
	h := b.Dy()
	if visited == nil {
		visited = make([]bool, w*h)
	}
	sx := seed.X - b.Min.X
	sy := seed.Y - b.Min.Y
	if sx < 0 || sy < 0 || sx >= w || sy >= h {
		return visited
	}

	queue := make([]image.Point, 0, 256)
	queue = append(queue, image.Point{X: sx, Y: sy})
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		if p.X < 0 || p.Y < 0 || p.X >= w || p.Y >= h {
			continue
		}
		idx := p.Y*w + p.X
		if visited[idx] {
			continue
		}
		if blocked != nil && blocked[idx] {
			continue
		}
		visited[idx] = true

		c := pixelAt(img, p.X+b.Min.X, p.Y+b.Min.Y)
		if ColorDistance(c, ref) <= tolerance {
			accept.Bits[idx] = true
			queue = append(queue,
				image.Point{X: p.X + 1, Y: p.Y},
				image.Point{X: p.X - 1, Y: p.Y},
				image.Point{X: p.X, Y: p.Y + 1},
				image.Point{X: p.X, Y: p.Y - 1},
			)
		}
	}
	return visited
}

// GrowBackground flood-fills from all four corners using the corner-sampled
// background color as the shared reference and returns the accumulated
// background mask (true = background). Each corner run owns a fresh visited
// grid; a pixel is background if any run reached it. Tolerance is clamped to
// [0,200]; tolerance 0 accepts exact matches only.
func GrowBackground(img *image.NRGBA, tolerance int) (*Mask, error) {
	if emptyNRGBA(img) {
		return nil, ErrEmptyImage
	}
	ref, err := SampleBackground(img)
	if err != nil {
		return nil, err
	}
	tolerance = clampTolerance(tolerance)
	b := img.Bounds()
	w := b.Dx()
	h := b.Dy()
	mask := NewMask(w, h)
	seeds := [4]image.Point{
		{X: b.Min.X, Y: b.Min.Y},
		{X: b.Max.X - 1, Y: b.Min.Y},
		{X: b.Min.X, Y: b.Max.Y - 1},
		{X: b.Max.X - 1, Y: b.Max.Y - 1},
	}
	for _, s := range seeds {
		// The mask doubles as the blocked grid: anything a previous
		// corner claimed was fully expanded already.
		floodFill(img, s, ref, tolerance, nil, mask.Bits, mask)
	}
	return mask, nil
}

// GrowForeground flood-fills a single connected region from seed using the
// seed pixel's own color as reference, then returns the complement as the
// background mask (true = background). Disconnected islands of similar color
// that never touch the seed stay background. An out-of-bounds seed yields an
// all-background mask.
func GrowForeground(img *image.NRGBA, seed image.Point, tolerance int) (*Mask, error) {
	if emptyNRGBA(img) {
		return nil, ErrEmptyImage
	}
	tolerance = clampTolerance(tolerance)
	b := img.Bounds()
	w := b.Dx()
	h := b.Dy()
	fg := NewMask(w, h) // true = grown foreground, inverted below
	if seed.X >= b.Min.X && seed.Y >= b.Min.Y && seed.X < b.Max.X && seed.Y < b.Max.Y {
		ref := pixelAt(img, seed.X, seed.Y)
		floodFill(img, seed, ref, tolerance, nil, nil, fg)
	}
	mask := NewMask(w, h)
	for i, isFg := range fg.Bits {
		mask.Bits[i] = !isFg
	}
	return mask, nil
}

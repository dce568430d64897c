// Package segment is the computational core of an interactive photo cut-out
// tool: color-similarity flood fills, polygon shape masking, alpha
// compositing and a bounded undo/redo history. Every operation is pure —
// input image in, new image out — and runs to completion on the calling
// goroutine.
package segment

import (
	"errors"
	"image"
)

// ErrEmptyImage is returned when an operation receives a nil or zero-sized
// image. It is the only input condition treated as an error; degenerate
// geometry (short paths, out-of-bounds seeds) produces degenerate results
// instead.
var ErrEmptyImage = errors.New("segment: empty image")

// Mask is a per-pixel background classification for one image: true means
// background. Dimensions always match the image the mask was computed from.
type Mask struct {
	W, H int
	Bits []bool // row-major, len == W*H
}

// NewMask returns an all-false (all-foreground) mask of the given size.
func NewMask(w, h int) *Mask {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Mask{W: w, H: h, Bits: make([]bool, w*h)}
}

// At reports whether (x,y) is background. Out-of-bounds coordinates read as
// foreground so callers iterating slightly past an edge stay safe.
func (m *Mask) At(x, y int) bool {
	if m == nil || x < 0 || y < 0 || x >= m.W || y >= m.H {
		return false
	}
	return m.Bits[y*m.W+x]
}

// Set marks (x,y) as background (v=true) or foreground. Out-of-bounds is a
// no-op.
func (m *Mask) Set(x, y int, v bool) {
	if m == nil || x < 0 || y < 0 || x >= m.W || y >= m.H {
		return
	}
	m.Bits[y*m.W+x] = v
}

// Clone returns a deep copy of the mask.
func (m *Mask) Clone() *Mask {
	if m == nil {
		return nil
	}
	out := &Mask{W: m.W, H: m.H, Bits: make([]bool, len(m.Bits))}
	copy(out.Bits, m.Bits)
	return out
}

// Matches reports whether the mask dimensions equal the image's.
func (m *Mask) Matches(img *image.NRGBA) bool {
	if m == nil || img == nil {
		return false
	}
	b := img.Bounds()
	return m.W == b.Dx() && m.H == b.Dy()
}

// emptyNRGBA reports whether the image is nil or has a zero dimension.
func emptyNRGBA(img *image.NRGBA) bool {
	return img == nil || img.Bounds().Dx() == 0 || img.Bounds().Dy() == 0
}

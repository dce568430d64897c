package segment

import (
	"errors"
	"image"
)

// ErrNoImage is returned by Editor operations invoked before a source image
// has been loaded.
var ErrNoImage = errors.New("segment: no image loaded")

// ErrNoMask is returned when a mask render is requested but no segmentation
// has produced one yet.
var ErrNoMask = errors.New("segment: no mask computed yet")

// Editor is the session state for one loaded photo: the untouched source,
// the current (visible) result, the most recent mask, and the undo/redo
// history. Segmentation operations always compute from the source image, so
// repeated crops at different tolerances never compound; the history tracks
// the sequence of visible results.
type Editor struct {
	source   *image.NRGBA
	current  *image.NRGBA
	lastMask *Mask
	history  History
}

// NewEditor returns an editor with no image loaded.
func NewEditor() *Editor {
	return &Editor{}
}

// Load replaces the session's source image and resets all derived state.
// History is cleared: it never spans different images.
func (e *Editor) Load(img image.Image) error {
	src := ToNRGBA(img)
	if emptyNRGBA(src) {
		return ErrEmptyImage
	}
	e.source = src
	e.current = CloneNRGBA(src)
	e.lastMask = nil
	e.history.Clear()
	return nil
}

// Current returns the visible image, or nil before Load.
func (e *Editor) Current() *image.NRGBA { return e.current }

// Source returns the loaded source image, or nil before Load.
func (e *Editor) Source() *image.NRGBA { return e.source }

// LastMask returns the mask produced by the most recent segmentation, or
// nil if none has run since Load.
func (e *Editor) LastMask() *Mask { return e.lastMask }

// History exposes the session history (read-mostly; the editor drives it).
func (e *Editor) History() *History { return &e.history }

// commit records the pre-edit image and installs the new result and mask.
func (e *Editor) commit(img *image.NRGBA, mask *Mask) {
	e.history.Record(e.current)
	e.current = img
	e.lastMask = mask
}

// RemoveBackground runs the corner-seeded background fill on the source and
// makes the alpha cut-out the visible image.
func (e *Editor) RemoveBackground(tolerance int) error {
	if e.source == nil {
		return ErrNoImage
	}
	mask, err := GrowBackground(e.source, tolerance)
	if err != nil {
		return err
	}
	out, err := ToAlphaImage(e.source, mask)
	if err != nil {
		return err
	}
	e.commit(out, mask)
	return nil
}

// SeedCrop grows a foreground region from the clicked seed on the source and
// makes the alpha cut-out the visible image.
func (e *Editor) SeedCrop(seed image.Point, tolerance int) error {
	if e.source == nil {
		return ErrNoImage
	}
	mask, err := GrowForeground(e.source, seed, tolerance)
	if err != nil {
		return err
	}
	out, err := ToAlphaImage(e.source, mask)
	if err != nil {
		return err
	}
	e.commit(out, mask)
	return nil
}

// ShapeCrop rasterizes a drawn closed path on the source and makes the
// refined overlay the visible image.
func (e *Editor) ShapeCrop(path []image.Point, tolerance int) error {
	if e.source == nil {
		return ErrNoImage
	}
	out, mask, err := RasterizePolygon(e.source, path, tolerance)
	if err != nil {
		return err
	}
	e.commit(out, mask)
	return nil
}

// Restrict confines the current result to rect: inside rect the visible
// image keeps the processed pixels, outside it reverts to the source. The
// retained mask is unchanged. An empty rect leaves the result equal to the
// current image.
func (e *Editor) Restrict(rect image.Rectangle) error {
	if e.source == nil || e.current == nil {
		return ErrNoImage
	}
	out, err := RestrictToRegion(e.source, e.current, rect)
	if err != nil {
		return err
	}
	e.commit(out, e.lastMask)
	return nil
}

// Revert makes the untouched source the visible image again (recorded as an
// edit, so it can be undone).
func (e *Editor) Revert() error {
	if e.source == nil {
		return ErrNoImage
	}
	e.commit(CloneNRGBA(e.source), nil)
	return nil
}

// Seeds proposes shape seed points on the source image.
func (e *Editor) Seeds() ([]image.Point, error) {
	if e.source == nil {
		return nil, ErrNoImage
	}
	return DetectSeeds(e.source), nil
}

// MaskAlpha renders the retained mask as an alpha cut-out of the source
// without touching session state.
func (e *Editor) MaskAlpha() (*image.NRGBA, error) {
	if e.source == nil {
		return nil, ErrNoImage
	}
	if e.lastMask == nil {
		return nil, ErrNoMask
	}
	return ToAlphaImage(e.source, e.lastMask)
}

// MaskDebug renders the retained mask as the red/green diagnostic image
// without touching session state.
func (e *Editor) MaskDebug() (*image.NRGBA, error) {
	if e.source == nil {
		return nil, ErrNoImage
	}
	if e.lastMask == nil {
		return nil, ErrNoMask
	}
	return ToDebugImage(e.lastMask), nil
}

// Undo steps the visible image back one edit. Returns false when there is
// nothing to undo. The retained mask is dropped: it described the edit that
// was just rolled back.
func (e *Editor) Undo() bool {
	img := e.history.Undo(e.current)
	if img == nil {
		return false
	}
	e.current = img
	e.lastMask = nil
	return true
}

// Redo steps the visible image forward one undone edit. Returns false when
// there is nothing to redo.
func (e *Editor) Redo() bool {
	img := e.history.Redo(e.current)
	if img == nil {
		return false
	}
	e.current = img
	e.lastMask = nil
	return true
}

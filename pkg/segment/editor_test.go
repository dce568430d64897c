package segment

import (
	"image"
	"image/color"
	"testing"
)

func whiteWithCenterDot(size int) *image.NRGBA {
	img := makeSolidNRGBA(size, size, color.NRGBA{255, 255, 255, 255})
	setPix(img, size/2, size/2, color.NRGBA{0, 0, 0, 255})
	return img
}

func TestEditorLoad(t *testing.T) {
	ed := NewEditor()
	if err := ed.Load(nil); err != ErrEmptyImage {
		t.Fatalf("expected ErrEmptyImage for nil load, got %v", err)
	}
	if err := ed.RemoveBackground(60); err != ErrNoImage {
		t.Fatalf("expected ErrNoImage before load, got %v", err)
	}
	if err := ed.Load(whiteWithCenterDot(5)); err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if ed.Current() == nil || ed.Source() == nil {
		t.Fatalf("load must install source and current")
	}
	if &ed.Current().Pix[0] == &ed.Source().Pix[0] {
		t.Fatalf("current must be a copy of source, not an alias")
	}
}

func TestEditorRemoveBackground(t *testing.T) {
	ed := NewEditor()
	if err := ed.Load(whiteWithCenterDot(5)); err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if err := ed.RemoveBackground(0); err != nil {
		t.Fatalf("RemoveBackground failed: %v", err)
	}
	cur := ed.Current()
	if a := cur.Pix[cur.PixOffset(0, 0)+3]; a != 0 {
		t.Fatalf("background corner alpha: got %d want 0", a)
	}
	if a := cur.Pix[cur.PixOffset(2, 2)+3]; a != 255 {
		t.Fatalf("object pixel alpha: got %d want 255", a)
	}
	if ed.LastMask() == nil {
		t.Fatalf("segmentation must retain its mask")
	}
	// source is never mutated
	if a := ed.Source().Pix[3]; a != 255 {
		t.Fatalf("source alpha was mutated")
	}
}

func TestEditorOpsComputeFromSource(t *testing.T) {
	// Two crops in a row must not compound: the second is computed from the
	// source, so a looser tolerance can bring pixels back.
	ed := NewEditor()
	if err := ed.Load(whiteWithCenterDot(5)); err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if err := ed.RemoveBackground(0); err != nil {
		t.Fatalf("first crop failed: %v", err)
	}
	if err := ed.SeedCrop(image.Point{X: 2, Y: 2}, 0); err != nil {
		t.Fatalf("seed crop failed: %v", err)
	}
	cur := ed.Current()
	if a := cur.Pix[cur.PixOffset(2, 2)+3]; a != 255 {
		t.Fatalf("seeded object pixel alpha: got %d want 255", a)
	}
	if a := cur.Pix[cur.PixOffset(0, 0)+3]; a != 0 {
		t.Fatalf("non-seeded pixel alpha: got %d want 0", a)
	}
}

func TestEditorUndoRedo(t *testing.T) {
	ed := NewEditor()
	if err := ed.Load(whiteWithCenterDot(5)); err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if ed.Undo() {
		t.Fatalf("undo with empty history must report false")
	}
	if err := ed.RemoveBackground(0); err != nil {
		t.Fatalf("RemoveBackground failed: %v", err)
	}
	if !ed.Undo() {
		t.Fatalf("undo after an edit must succeed")
	}
	cur := ed.Current()
	if a := cur.Pix[cur.PixOffset(0, 0)+3]; a != 255 {
		t.Fatalf("undo should restore the pre-edit image")
	}
	if ed.LastMask() != nil {
		t.Fatalf("undo must drop the retained mask")
	}
	if !ed.Redo() {
		t.Fatalf("redo after undo must succeed")
	}
	cur = ed.Current()
	if a := cur.Pix[cur.PixOffset(0, 0)+3]; a != 0 {
		t.Fatalf("redo should restore the edit")
	}
	if ed.Redo() {
		t.Fatalf("second redo must report false")
	}
}

func TestEditorLoadClearsHistory(t *testing.T) {
	ed := NewEditor()
	if err := ed.Load(whiteWithCenterDot(5)); err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if err := ed.RemoveBackground(0); err != nil {
		t.Fatalf("RemoveBackground failed: %v", err)
	}
	if err := ed.Load(whiteWithCenterDot(7)); err != nil {
		t.Fatalf("second load failed: %v", err)
	}
	if ed.Undo() {
		t.Fatalf("history must not survive a new load")
	}
	if ed.LastMask() != nil {
		t.Fatalf("mask must not survive a new load")
	}
}

func TestEditorMaskRenders(t *testing.T) {
	ed := NewEditor()
	if err := ed.Load(whiteWithCenterDot(5)); err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if _, err := ed.MaskAlpha(); err != ErrNoMask {
		t.Fatalf("expected ErrNoMask before segmentation, got %v", err)
	}
	if _, err := ed.MaskDebug(); err != ErrNoMask {
		t.Fatalf("expected ErrNoMask before segmentation, got %v", err)
	}
	if err := ed.RemoveBackground(0); err != nil {
		t.Fatalf("RemoveBackground failed: %v", err)
	}
	before := ed.History().UndoDepth()
	dbg, err := ed.MaskDebug()
	if err != nil || dbg == nil {
		t.Fatalf("MaskDebug failed: %v", err)
	}
	alpha, err := ed.MaskAlpha()
	if err != nil || alpha == nil {
		t.Fatalf("MaskAlpha failed: %v", err)
	}
	if ed.History().UndoDepth() != before {
		t.Fatalf("mask renders must not record history")
	}
}

func TestEditorRevertAndRestrict(t *testing.T) {
	ed := NewEditor()
	if err := ed.Load(whiteWithCenterDot(6)); err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if err := ed.RemoveBackground(0); err != nil {
		t.Fatalf("RemoveBackground failed: %v", err)
	}
	if err := ed.Restrict(image.Rect(0, 0, 3, 6)); err != nil {
		t.Fatalf("Restrict failed: %v", err)
	}
	cur := ed.Current()
	if a := cur.Pix[cur.PixOffset(0, 0)+3]; a != 0 {
		t.Fatalf("inside restrict rect the processed result must remain")
	}
	if a := cur.Pix[cur.PixOffset(5, 0)+3]; a != 255 {
		t.Fatalf("outside restrict rect the source must show")
	}
	if ed.LastMask() == nil {
		t.Fatalf("restrict must keep the retained mask")
	}
	if err := ed.Revert(); err != nil {
		t.Fatalf("Revert failed: %v", err)
	}
	cur = ed.Current()
	if a := cur.Pix[cur.PixOffset(0, 0)+3]; a != 255 {
		t.Fatalf("revert must show the untouched source")
	}
	if !ed.Undo() {
		t.Fatalf("revert must be undoable")
	}
}

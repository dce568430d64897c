package segment

import (
	"image"
	"image/color"
	"testing"
)

func TestDetectSeedsUniform(t *testing.T) {
	img := makeSolidNRGBA(40, 40, color.NRGBA{128, 128, 128, 255})
	if seeds := DetectSeeds(img); len(seeds) != 0 {
		t.Fatalf("uniform image must yield no seeds, got %d", len(seeds))
	}
}

func TestDetectSeedsTinyImage(t *testing.T) {
	// max dimension below 20 makes the grid stride 0: no seeds, no panic
	img := makeSolidNRGBA(10, 15, color.NRGBA{0, 0, 0, 255})
	if seeds := DetectSeeds(img); seeds != nil {
		t.Fatalf("expected nil seeds for tiny image, got %v", seeds)
	}
	if seeds := DetectSeeds(nil); seeds != nil {
		t.Fatalf("expected nil seeds for nil image")
	}
}

func TestDetectSeedsContrastBoundary(t *testing.T) {
	// 40x40 split into black left / white right halves. Grid stride is 2;
	// grid points near x=20 see the opposite half within stride distance.
	img := image.NewNRGBA(image.Rect(0, 0, 40, 40))
	for y := 0; y < 40; y++ {
		for x := 0; x < 40; x++ {
			v := uint8(0)
			if x >= 20 {
				v = 255
			}
			setPix(img, x, y, color.NRGBA{v, v, v, 255})
		}
	}
	seeds := DetectSeeds(img)
	if len(seeds) == 0 {
		t.Fatalf("expected seeds along the contrast boundary")
	}
	for _, p := range seeds {
		if p.X < 2 || p.X >= 38 || p.Y < 2 || p.Y >= 38 {
			t.Fatalf("seed %v inside the skipped border margin", p)
		}
		if p.X < 18 || p.X > 22 {
			t.Fatalf("seed %v too far from the boundary at x=20", p)
		}
	}
}

func TestDetectSeedsRowMajorOrder(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 40, 40))
	for y := 0; y < 40; y++ {
		for x := 0; x < 40; x++ {
			v := uint8(0)
			if x >= 20 {
				v = 255
			}
			setPix(img, x, y, color.NRGBA{v, v, v, 255})
		}
	}
	seeds := DetectSeeds(img)
	for i := 1; i < len(seeds); i++ {
		a, b := seeds[i-1], seeds[i]
		if b.Y < a.Y || (b.Y == a.Y && b.X <= a.X) {
			t.Fatalf("seeds out of scan order: %v before %v", a, b)
		}
	}
}

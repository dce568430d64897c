package segment

import (
	"image"
	"image/color"
	"testing"
)

func setPix(img *image.NRGBA, x, y int, c color.NRGBA) {
	i := img.PixOffset(x, y)
	img.Pix[i+0] = c.R
	img.Pix[i+1] = c.G
	img.Pix[i+2] = c.B
	img.Pix[i+3] = c.A
}

func TestGrowBackgroundUniform(t *testing.T) {
	img := makeSolidNRGBA(6, 6, color.NRGBA{255, 255, 255, 255})
	mask, err := GrowBackground(img, 0)
	if err != nil {
		t.Fatalf("GrowBackground failed: %v", err)
	}
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			if !mask.At(x, y) {
				t.Fatalf("expected background at %d,%d on uniform image", x, y)
			}
		}
	}
}

func TestGrowBackgroundCenterObject(t *testing.T) {
	// 4x4 white image with one black pixel at (2,2); at tolerance 0 the
	// corner fills flow around it and only the black pixel stays foreground.
	img := makeSolidNRGBA(4, 4, color.NRGBA{255, 255, 255, 255})
	setPix(img, 2, 2, color.NRGBA{0, 0, 0, 255})
	mask, err := GrowBackground(img, 0)
	if err != nil {
		t.Fatalf("GrowBackground failed: %v", err)
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			want := !(x == 2 && y == 2)
			if mask.At(x, y) != want {
				t.Fatalf("mask at %d,%d: got %v want %v", x, y, mask.At(x, y), want)
			}
		}
	}
}

func TestGrowBackgroundToleranceMonotonic(t *testing.T) {
	// Horizontal gradient: a larger tolerance must classify a superset of
	// pixels as background.
	img := image.NewNRGBA(image.Rect(0, 0, 10, 3))
	for y := 0; y < 3; y++ {
		for x := 0; x < 10; x++ {
			v := uint8(x * 20)
			setPix(img, x, y, color.NRGBA{v, v, v, 255})
		}
	}
	lo, err := GrowBackground(img, 30)
	if err != nil {
		t.Fatalf("GrowBackground(30) failed: %v", err)
	}
	hi, err := GrowBackground(img, 120)
	if err != nil {
		t.Fatalf("GrowBackground(120) failed: %v", err)
	}
	for i := range lo.Bits {
		if lo.Bits[i] && !hi.Bits[i] {
			t.Fatalf("pixel %d background at tolerance 30 but not at 120", i)
		}
	}
}

func TestGrowBackgroundEmpty(t *testing.T) {
	if _, err := GrowBackground(nil, 60); err != ErrEmptyImage {
		t.Fatalf("expected ErrEmptyImage, got %v", err)
	}
	if _, err := GrowBackground(image.NewNRGBA(image.Rect(0, 0, 0, 5)), 60); err != ErrEmptyImage {
		t.Fatalf("expected ErrEmptyImage for zero width, got %v", err)
	}
}

func TestGrowForegroundRegion(t *testing.T) {
	// 5x5 blue with a red 3x3 blob in the middle; seeding inside the blob
	// keeps only the blob as foreground.
	img := makeSolidNRGBA(5, 5, color.NRGBA{0, 0, 255, 255})
	for y := 1; y <= 3; y++ {
		for x := 1; x <= 3; x++ {
			setPix(img, x, y, color.NRGBA{255, 0, 0, 255})
		}
	}
	mask, err := GrowForeground(img, image.Point{X: 2, Y: 2}, 0)
	if err != nil {
		t.Fatalf("GrowForeground failed: %v", err)
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			inBlob := x >= 1 && x <= 3 && y >= 1 && y <= 3
			if mask.At(x, y) == inBlob {
				t.Fatalf("mask at %d,%d: got %v, blob=%v", x, y, mask.At(x, y), inBlob)
			}
		}
	}
}

func TestGrowForegroundDisconnectedIsland(t *testing.T) {
	// Two red pixels separated by blue: the one not connected to the seed
	// stays background even though its color matches.
	img := makeSolidNRGBA(5, 1, color.NRGBA{0, 0, 255, 255})
	red := color.NRGBA{255, 0, 0, 255}
	setPix(img, 0, 0, red)
	setPix(img, 4, 0, red)
	mask, err := GrowForeground(img, image.Point{X: 0, Y: 0}, 0)
	if err != nil {
		t.Fatalf("GrowForeground failed: %v", err)
	}
	if mask.At(0, 0) {
		t.Fatalf("seed pixel classified background")
	}
	if !mask.At(4, 0) {
		t.Fatalf("disconnected island must stay background")
	}
}

func TestGrowForegroundOutOfBoundsSeed(t *testing.T) {
	img := makeSolidNRGBA(3, 3, color.NRGBA{10, 20, 30, 255})
	mask, err := GrowForeground(img, image.Point{X: -1, Y: 7}, 60)
	if err != nil {
		t.Fatalf("GrowForeground failed: %v", err)
	}
	for i, b := range mask.Bits {
		if !b {
			t.Fatalf("pixel %d foreground with out-of-bounds seed", i)
		}
	}
}

func TestSampleBackgroundCornerAverage(t *testing.T) {
	img := makeSolidNRGBA(3, 3, color.NRGBA{0, 0, 0, 255})
	setPix(img, 0, 0, color.NRGBA{100, 0, 0, 255})
	setPix(img, 2, 0, color.NRGBA{0, 100, 0, 255})
	setPix(img, 0, 2, color.NRGBA{0, 0, 100, 255})
	setPix(img, 2, 2, color.NRGBA{100, 100, 100, 255})
	ref, err := SampleBackground(img)
	if err != nil {
		t.Fatalf("SampleBackground failed: %v", err)
	}
	want := color.NRGBA{R: 50, G: 50, B: 50, A: 255}
	if ref != want {
		t.Fatalf("corner average: got %v want %v", ref, want)
	}
}

func TestColorDistance(t *testing.T) {
	a := color.NRGBA{10, 20, 30, 255}
	b := color.NRGBA{30, 20, 10, 0}
	if d := ColorDistance(a, b); d != 40 {
		t.Fatalf("ColorDistance: got %d want 40 (alpha must not count)", d)
	}
	if d := ColorDistance(a, a); d != 0 {
		t.Fatalf("ColorDistance to self: got %d want 0", d)
	}
}

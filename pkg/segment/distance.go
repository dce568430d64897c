package segment

import "image/color"

// ColorDistance returns the L1 (Manhattan) distance between two colors: the
// sum of absolute per-channel differences over R, G and B, range [0,765].
// Alpha never participates. L1 is chosen over a perceptual metric because
// acceptance is a plain threshold comparison, not a geometric one, and the
// integer math keeps the fills deterministic and fast.
func ColorDistance(a, b color.NRGBA) int {
	return absDiff(a.R, b.R) + absDiff(a.G, b.G) + absDiff(a.B, b.B)
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a) - int(b)
	}
	return int(b) - int(a)
}

// clampTolerance restricts a caller-supplied tolerance to the supported
// [0,200] range.
func clampTolerance(tol int) int {
	return clampInt(tol, 0, 200)
}

package segment

import (
	"fmt"
	"image"
	"strconv"
	"strings"
)

// DefaultTolerance is the tolerance used when a command omits one. It
// matches the slider default of the desktop tool this core was built for.
const DefaultTolerance = 60

// ApplyCommand parses string args and runs one editor operation. It returns
// the image the caller should show (nil when there is nothing visual, e.g.
// a seed report) and a human-readable status line. Mutating commands record
// history through the editor; render commands leave session state alone.
func ApplyCommand(ed *Editor, commandName string, args []string) (image.Image, string, error) {
	if ed == nil {
		return nil, "", fmt.Errorf("editor is nil")
	}
	switch commandName {
	case "removeBackground":
		tol, err := toleranceArg(args, 0)
		if err != nil {
			return nil, "", err
		}
		if err := ed.RemoveBackground(tol); err != nil {
			return nil, "", err
		}
		return ed.Current(), fmt.Sprintf("background removed (tolerance %d)", tol), nil

	case "seedCrop":
		if len(args) < 2 {
			return nil, "", fmt.Errorf("seedCrop requires at least 2 args: x y [tolerance]")
		}
		x, err := strconv.Atoi(args[0])
		if err != nil {
			return nil, "", fmt.Errorf("invalid x: %w", err)
		}
		y, err := strconv.Atoi(args[1])
		if err != nil {
			return nil, "", fmt.Errorf("invalid y: %w", err)
		}
		tol, err := toleranceArg(args, 2)
		if err != nil {
			return nil, "", err
		}
		if err := ed.SeedCrop(image.Point{X: x, Y: y}, tol); err != nil {
			return nil, "", err
		}
		return ed.Current(), fmt.Sprintf("seed crop from (%d,%d) (tolerance %d)", x, y, tol), nil

	case "shapeCrop":
		if len(args) < 1 {
			return nil, "", fmt.Errorf("shapeCrop requires 1 arg: points [tolerance]")
		}
		path, err := ParsePath(args[0])
		if err != nil {
			return nil, "", err
		}
		tol, err := toleranceArg(args, 1)
		if err != nil {
			return nil, "", err
		}
		if err := ed.ShapeCrop(path, tol); err != nil {
			return nil, "", err
		}
		return ed.Current(), fmt.Sprintf("shape crop with %d points (tolerance %d)", len(path), tol), nil

	case "restrict":
		if len(args) != 4 {
			return nil, "", fmt.Errorf("restrict requires 4 args: x y width height")
		}
		vals := make([]int, 4)
		names := [4]string{"x", "y", "width", "height"}
		for i, a := range args {
			v, err := strconv.Atoi(a)
			if err != nil {
				return nil, "", fmt.Errorf("invalid %s: %w", names[i], err)
			}
			vals[i] = v
		}
		rect := image.Rect(vals[0], vals[1], vals[0]+vals[2], vals[1]+vals[3])
		if err := ed.Restrict(rect); err != nil {
			return nil, "", err
		}
		return ed.Current(), fmt.Sprintf("restricted to %dx%d at (%d,%d)", vals[2], vals[3], vals[0], vals[1]), nil

	case "detectSeeds":
		seeds, err := ed.Seeds()
		if err != nil {
			return nil, "", err
		}
		if len(seeds) == 0 {
			return nil, "no seed candidates found", nil
		}
		var sb strings.Builder
		fmt.Fprintf(&sb, "%d seed candidate(s):", len(seeds))
		for _, p := range seeds {
			fmt.Fprintf(&sb, " (%d,%d)", p.X, p.Y)
		}
		return nil, sb.String(), nil

	case "maskAlpha":
		out, err := ed.MaskAlpha()
		if err != nil {
			return nil, "", err
		}
		return out, "mask rendered as alpha cut-out", nil

	case "maskDebug":
		out, err := ed.MaskDebug()
		if err != nil {
			return nil, "", err
		}
		return out, "mask rendered red (background) / green (foreground)", nil

	case "revert":
		if err := ed.Revert(); err != nil {
			return nil, "", err
		}
		return ed.Current(), "reverted to source image", nil

	case "undo":
		if !ed.Undo() {
			return nil, "nothing to undo", nil
		}
		return ed.Current(), "undid last edit", nil

	case "redo":
		if !ed.Redo() {
			return nil, "nothing to redo", nil
		}
		return ed.Current(), "redid last undone edit", nil

	default:
		return nil, "", fmt.Errorf("unsupported command: %s", commandName)
	}
}

// toleranceArg reads an optional tolerance at position idx, falling back to
// DefaultTolerance. The value is clamped later by the operation itself.
func toleranceArg(args []string, idx int) (int, error) {
	if idx >= len(args) || args[idx] == "" {
		return DefaultTolerance, nil
	}
	v, err := strconv.Atoi(args[idx])
	if err != nil {
		return 0, fmt.Errorf("invalid tolerance: %w", err)
	}
	return v, nil
}

// ParsePath parses a drawn path given as space-separated "x,y" pairs, e.g.
// "10,10 40,12 38,50". Fewer than 3 points is not an error here — the
// rasterizer treats a short path as degenerate.
func ParsePath(s string) ([]image.Point, error) {
	fields := strings.Fields(s)
	path := make([]image.Point, 0, len(fields))
	for _, f := range fields {
		parts := strings.SplitN(f, ",", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid point %q: expected x,y", f)
		}
		x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return nil, fmt.Errorf("invalid point %q: %w", f, err)
		}
		y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return nil, fmt.Errorf("invalid point %q: %w", f, err)
		}
		path = append(path, image.Point{X: x, Y: y})
	}
	return path, nil
}

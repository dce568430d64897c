package cli

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"os/exec"
	"strings"

	"github.com/joho/godotenv"
	xdraw "golang.org/x/image/draw"
)

// Terminal preview helper for Kitty and iTerm2 inline-image protocols.
//
// Behavior:
//   - If kitty is detected (KITTY_WINDOW_ID or TERM contains "kitty"), the PNG
//     is sent using the kitty graphics protocol (chunked base64 inside
//     ESC _G ... ESC \).
//   - Else if a terminal implementing the iTerm2-style OSC 1337 inline file
//     sequence is detected (iTerm2, WezTerm, Warp, Tabby, VSCode, ...), that
//     sequence is used.
//   - Else, if chafa is available on PATH, it renders a block-character
//     approximation.
//   - If none is available, an error is returned and the caller skips the
//     preview.
//
// Debugging helper controlled by PREVIEW_DEBUG=1; PREVIEW_BACKEND forces a
// backend ("kitty", "inline", "chafa").
var previewDebug bool

func init() {
	err := godotenv.Load()
	if err != nil {
		// Ignore error if .env not present; it's optional
	}

	debug := os.Getenv("PREVIEW_DEBUG")
	if debug == "1" || debug == "true" {
		previewDebug = true
	}
}

func debugf(format string, args ...interface{}) {
	if previewDebug {
		fmt.Fprintf(os.Stderr, "imageeditor-preview: "+format+"\n", args...)
	}
}

func isKitty() bool {
	if os.Getenv("KITTY_WINDOW_ID") != "" {
		return true
	}
	term := strings.ToLower(os.Getenv("TERM"))
	// ghostty exposes the kitty compatibility features
	return strings.Contains(term, "kitty") || strings.Contains(term, "ghostty")
}

func isInlineImageCapable() bool {
	switch os.Getenv("TERM_PROGRAM") {
	case "iTerm.app", "WezTerm", "Warp", "Hyper", "vscode", "VSCode", "Tabby":
		return true
	}
	if os.Getenv("ITERM_SESSION_ID") != "" {
		return true
	}
	term := strings.ToLower(os.Getenv("TERM"))
	return strings.Contains(term, "wezterm") || strings.Contains(term, "warp") || strings.Contains(term, "tabby")
}

// hasChafa reports whether the external 'chafa' binary is available in PATH.
func hasChafa() bool {
	if os.Getenv("NO_CHAFA") == "1" {
		return false
	}
	_, err := exec.LookPath("chafa")
	return err == nil
}

// PreviewSupported returns true if the running environment likely supports a
// terminal inline preview.
func PreviewSupported() bool {
	supported := isKitty() || isInlineImageCapable() || hasChafa()
	debugf("PreviewSupported -> %v (kitty=%v inline=%v chafa=%v)", supported, isKitty(), isInlineImageCapable(), hasChafa())
	return supported
}

// Character cell pixel assumptions and preview clamp, kept as constants to
// avoid relying on environment overrides for sizing.
const (
	charW   = 8
	charH   = 16
	maxCols = 80
	maxRows = 40
)

// previewSize is the target terminal cell placement for a preview.
type previewSize struct {
	Cols, Rows int
}

// scaleForPreview downscales img (never up) to fit within the preview clamp,
// preserving aspect ratio, and returns the scaled image plus its cell size.
func scaleForPreview(img image.Image) (image.Image, previewSize) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	maxW := maxCols * charW
	maxH := maxRows * charH
	if w <= maxW && h <= maxH {
		return img, previewSize{Cols: (w + charW - 1) / charW, Rows: (h + charH - 1) / charH}
	}
	scaleW := float64(maxW) / float64(w)
	scaleH := float64(maxH) / float64(h)
	scale := scaleW
	if scaleH < scale {
		scale = scaleH
	}
	tw := int(float64(w) * scale)
	th := int(float64(h) * scale)
	if tw < 1 {
		tw = 1
	}
	if th < 1 {
		th = 1
	}
	dst := image.NewNRGBA(image.Rect(0, 0, tw, th))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, xdraw.Over, nil)
	return dst, previewSize{Cols: (tw + charW - 1) / charW, Rows: (th + charH - 1) / charH}
}

// PreviewImage encodes an image to the requested container format and
// previews it in the terminal. format should be lowercase like "png" or
// "jpeg"; if empty or unrecognized, PNG is used. PNG is always forced for
// kitty, and is the right choice for cut-outs since it keeps alpha.
func PreviewImage(img image.Image, format string) error {
	if img == nil {
		return fmt.Errorf("nil image")
	}
	scaled, size := scaleForPreview(img)

	f := strings.ToLower(format)
	backend := strings.ToLower(os.Getenv("PREVIEW_BACKEND"))
	if backend == "kitty" || (backend == "" && isKitty()) {
		f = "png"
	}
	var buf bytes.Buffer
	if f == "jpeg" || f == "jpg" {
		if err := jpeg.Encode(&buf, scaled, &jpeg.Options{Quality: 92}); err != nil {
			return fmt.Errorf("jpeg encode failed: %w", err)
		}
		f = "jpeg"
	} else {
		if err := png.Encode(&buf, scaled); err != nil {
			return fmt.Errorf("png encode failed: %w", err)
		}
		f = "png"
	}
	return previewBytes(buf.Bytes(), f, size)
}

// previewBytes centralizes the kitty/inline/chafa dispatch and fallbacks.
func previewBytes(blob []byte, format string, size previewSize) error {
	if len(blob) == 0 {
		return fmt.Errorf("empty image blob")
	}

	if v := strings.ToLower(os.Getenv("PREVIEW_BACKEND")); v != "" {
		debugf("PREVIEW_BACKEND override: %s", v)
		switch v {
		case "kitty":
			if err := sendKittyImage(blob, size); err == nil {
				return nil
			} else {
				debugf("override kitty failed: %v", err)
			}
		case "inline", "iterm", "wezterm":
			if err := sendInlineImage(blob, format); err == nil {
				return nil
			} else {
				debugf("override inline failed: %v", err)
			}
		case "chafa":
			if err := sendChafaImage(blob, size); err == nil {
				return nil
			} else {
				debugf("override chafa failed: %v", err)
			}
		default:
			debugf("unknown PREVIEW_BACKEND value: %s", v)
		}
		// fall through to normal detection/fallback order
	}

	if isKitty() {
		debugf("attempting kitty protocol")
		if err := sendKittyImage(blob, size); err == nil {
			return nil
		} else {
			debugf("kitty protocol failed: %v", err)
		}
	}
	if isInlineImageCapable() {
		debugf("attempting inline protocol")
		if err := sendInlineImage(blob, format); err == nil {
			return nil
		} else {
			debugf("inline protocol failed: %v", err)
		}
	}
	if hasChafa() {
		debugf("attempting chafa")
		if err := sendChafaImage(blob, size); err == nil {
			return nil
		} else {
			debugf("chafa failed: %v", err)
		}
	}
	return fmt.Errorf("no preview protocol matched")
}

// sendKittyImage sends PNG bytes using the kitty graphics protocol, chunking
// the base64 payload into <=4096-byte chunks as the protocol requires. The first chunk
// carries the placement parameters (c, r); q=2 suppresses responses.
func sendKittyImage(data []byte, size previewSize) error {
	enc := base64.StdEncoding.EncodeToString(data)
	const chunkSize = 4096
	total := len(enc)
	first := true
	for pos := 0; pos < total; pos += chunkSize {
		end := pos + chunkSize
		if end > total {
			end = total
		}
		chunk := enc[pos:end]
		mVal := "0"
		if end != total {
			mVal = "1"
		}
		var seq string
		if first {
			seq = fmt.Sprintf("\x1b_Ga=T,f=100,t=d,q=2,c=%d,r=%d,m=%s;%s\x1b\\", size.Cols, size.Rows, mVal, chunk)
			first = false
		} else {
			seq = "\x1b_Gm=" + mVal + ";" + chunk + "\x1b\\"
		}
		if _, err := os.Stdout.WriteString(seq); err != nil {
			return err
		}
	}
	fmt.Println()
	return nil
}

// sendInlineImage emits the iTerm2-style inline image OSC 1337 sequence.
func sendInlineImage(data []byte, format string) error {
	enc := base64.StdEncoding.EncodeToString(data)
	name := "preview.png"
	if strings.HasPrefix(strings.ToLower(format), "j") {
		name = "preview.jpg"
	}
	seq := fmt.Sprintf("\x1b]1337;File=name=%s;inline=1;size=%d:%s\a", name, len(data), enc)
	_, err := os.Stdout.WriteString(seq)
	fmt.Println()
	return err
}

// sendChafaImage pipes the encoded image into chafa for a block-character
// rendering that works in plain terminals.
func sendChafaImage(data []byte, size previewSize) error {
	if _, err := exec.LookPath("chafa"); err != nil {
		return fmt.Errorf("chafa not found in PATH: %w", err)
	}
	cmd := exec.Command("chafa", "--fill=block", "--symbols=block",
		"-s", fmt.Sprintf("%dx%d", size.Cols, size.Rows), "-")
	cmd.Stdin = bytes.NewReader(data)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("chafa failed: %w", err)
	}
	fmt.Println()
	return nil
}

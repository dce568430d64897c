package cli

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"

	"github.com/kyzipstar6/imageeditor/pkg/segment"
)

// PromptLine displays a prompt and reads a full line of input from the user.
// The returned string is trimmed of surrounding whitespace (including the newline).
func PromptLine(prompt string) (string, error) {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// PromptLineOrFzf reads a full line from stdin and treats a single "/" as a
// request to invoke fzf for file selection. Reading the whole line (instead
// of one token) preserves paths containing spaces.
func PromptLineOrFzf(prompt string) (string, error) {
	input, err := PromptLine(prompt)
	if err != nil {
		return "", err
	}
	if input == "/" {
		sel, selErr := SelectFileWithFzf(".")
		if selErr == nil && sel != "" {
			fmt.Printf(" [fzf] %s\n", sel)
			return sel, nil
		}
		// fzf not available or selection cancelled — fall back to typed prompt.
		return PromptLine(prompt)
	}
	return input, nil
}

// LoadImage loads a file from disk into an image.Image. PNG, JPEG, GIF and
// BMP are supported. JPEG photos carrying an EXIF orientation are normalized
// upright before they are returned, so corner sampling and click coordinates
// match what the user sees.
func LoadImage(path string) (image.Image, string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, "", err
	}
	// quick format detection via magic
	format := ""
	switch {
	case len(b) >= 3 && bytes.Equal(b[:3], []byte{0xFF, 0xD8, 0xFF}):
		format = "jpeg"
	case len(b) >= 8 && bytes.Equal(b[:8], []byte("\x89PNG\r\n\x1a\n")):
		format = "png"
	case len(b) >= 6 && (bytes.Equal(b[:6], []byte("GIF87a")) || bytes.Equal(b[:6], []byte("GIF89a"))):
		format = "gif"
	case len(b) >= 2 && bytes.Equal(b[:2], []byte("BM")):
		format = "bmp"
	}
	var img image.Image
	if format == "bmp" {
		img, err = bmp.Decode(bytes.NewReader(b))
	} else {
		img, _, err = image.Decode(bytes.NewReader(b))
	}
	if err != nil {
		return nil, "", err
	}
	if format == "jpeg" {
		if o, oerr := extractJPEGOrientation(b); oerr == nil && o > 1 && o <= 8 {
			img = segment.AutoOrient(segment.ToNRGBA(img), o)
		}
	}
	return img, format, nil
}

// SaveImage saves an image.Image to disk using the format inferred from the
// filename extension. Supports .png, .jpg/.jpeg, .gif and .bmp; anything
// else (including no extension) falls back to PNG, the only listed format
// that keeps the cut-out's alpha channel.
func SaveImage(path string, img image.Image) error {
	if img == nil {
		return fmt.Errorf("nil image")
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return jpeg.Encode(f, img, &jpeg.Options{Quality: 92})
	case ".gif":
		return gif.Encode(f, img, nil)
	case ".bmp":
		return bmp.Encode(f, img)
	default:
		return png.Encode(f, img)
	}
}

// GetImageInfo returns a short info string for an image.Image.
func GetImageInfo(img image.Image, format string) (string, error) {
	if img == nil {
		return "", fmt.Errorf("nil image")
	}
	b := img.Bounds()
	if format == "" {
		format = "unknown"
	}
	return fmt.Sprintf("Format: %s, Width: %d, Height: %d", strings.ToUpper(format), b.Dx(), b.Dy()), nil
}

// extractJPEGOrientation returns the EXIF orientation (1..8) from JPEG
// bytes. It walks the APP1 segment to the TIFF header and scans IFD0 for
// tag 0x0112 only; anything malformed or absent is an error and the caller
// keeps the decoded image as-is.
func extractJPEGOrientation(data []byte) (int, error) {
	tiff, err := tiffStartFromJPEG(data)
	if err != nil {
		return 0, err
	}
	if tiff+8 > len(data) {
		return 0, fmt.Errorf("tiff header truncated")
	}
	var order binary.ByteOrder
	switch {
	case data[tiff] == 'M' && data[tiff+1] == 'M':
		order = binary.BigEndian
	case data[tiff] == 'I' && data[tiff+1] == 'I':
		order = binary.LittleEndian
	default:
		return 0, fmt.Errorf("unknown tiff byte order")
	}
	if order.Uint16(data[tiff+2:tiff+4]) != 0x002A {
		return 0, fmt.Errorf("invalid tiff magic")
	}
	ifd := tiff + int(order.Uint32(data[tiff+4:tiff+8]))
	if ifd+2 > len(data) || ifd <= tiff {
		return 0, fmt.Errorf("ifd0 offset out of range")
	}
	n := int(order.Uint16(data[ifd : ifd+2]))
	for e := 0; e < n; e++ {
		ent := ifd + 2 + e*12
		if ent+12 > len(data) {
			break
		}
		if order.Uint16(data[ent:ent+2]) != 0x0112 {
			continue
		}
		// orientation is a SHORT stored inline in the value field
		return int(order.Uint16(data[ent+8 : ent+10])), nil
	}
	return 0, fmt.Errorf("orientation tag not found")
}

// tiffStartFromJPEG scans JPEG segments for an APP1 Exif block and returns
// the offset where the TIFF header begins.
func tiffStartFromJPEG(data []byte) (int, error) {
	if len(data) < 4 {
		return -1, fmt.Errorf("data too short")
	}
	i := 2 // skip initial 0xFF 0xD8
	for i+4 < len(data) {
		if data[i] != 0xFF {
			i++
			continue
		}
		marker := data[i+1]
		if marker == 0xDA { // start of scan
			break
		}
		segLen := int(data[i+2])<<8 | int(data[i+3])
		if marker == 0xE1 && segLen >= 8 &&
			i+10 <= len(data) && string(data[i+4:i+10]) == "Exif\x00\x00" {
			return i + 10, nil
		}
		if segLen <= 2 {
			i += 2
		} else {
			i += 2 + segLen
		}
	}
	return -1, fmt.Errorf("no exif segment")
}

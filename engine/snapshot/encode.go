package snapshot

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
)

// Format selects the image encoding used by Encode and Save.
type Format int

const (
	FormatPNG Format = iota
	FormatWebP
)

func (f Format) String() string {
	switch f {
	case FormatWebP:
		return "webp"
	default:
		return "png"
	}
}

// FormatFromPath picks the encoding from a file extension.
//
// Parameters:
//   - path: the output file path
//
// Returns:
//   - Format: the matching format
//   - error: an error if the extension is not .png or .webp
func FormatFromPath(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		return FormatPNG, nil
	case ".webp":
		return FormatWebP, nil
	default:
		return 0, fmt.Errorf("unsupported snapshot extension %q", ext)
	}
}

// Encode writes img to w in the given format.
//
// Parameters:
//   - w: the destination writer
//   - img: the image to encode
//   - format: the encoding to use
//
// Returns:
//   - error: an error if encoding fails
func Encode(w io.Writer, img image.Image, format Format) error {
	var err error
	switch format {
	case FormatWebP:
		err = nativewebp.Encode(w, img, nil)
	default:
		err = png.Encode(w, img)
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", format, err)
	}
	return nil
}

// Save encodes img to path, choosing the format from the extension.
// Missing parent directories are created.
//
// Parameters:
//   - path: the output file path
//   - img: the image to write
//
// Returns:
//   - error: an error if the format is unknown or the file cannot be written
func Save(path string, img image.Image) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}
	if err := Encode(f, img, format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

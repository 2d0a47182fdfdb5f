package render

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/draw"
)

// ErrUnknownFormat is returned when a snapshot path has an unsupported
// extension.
var ErrUnknownFormat = errors.New("unknown image format")

// Format names accepted by Encode.
const (
	FormatPNG  = "png"
	FormatWebP = "webp"
	FormatTGA  = "tga"
)

// FormatFromPath returns the snapshot format implied by the file extension.
func FormatFromPath(path string) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		return FormatPNG, nil
	case ".webp":
		return FormatWebP, nil
	case ".tga":
		return FormatTGA, nil
	default:
		return "", fmt.Errorf("%q: %w", ext, ErrUnknownFormat)
	}
}

// Encode writes img to w in the named format.
func Encode(w io.Writer, img image.Image, format string) error {
	switch format {
	case FormatPNG:
		return png.Encode(w, img)
	case FormatWebP:
		return nativewebp.Encode(w, img, nil)
	case FormatTGA:
		return tga.Encode(w, img)
	default:
		return fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}
}

// Save writes the framebuffer to path as PNG, WebP or TGA depending on the
// extension.
func (fb *Framebuffer) Save(path string) error {
	return fb.SaveScaled(path, 1)
}

// SaveScaled writes the framebuffer enlarged by an integer factor with
// nearest-neighbour sampling, which keeps pixel edges sharp.
func (fb *Framebuffer) SaveScaled(path string, scale int) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}

	var img image.Image = fb.ToImage()
	if scale > 1 {
		dst := image.NewRGBA(image.Rect(0, 0, fb.Width*scale, fb.Height*scale))
		draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
		img = dst
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	if err := Encode(f, img, format); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", format, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

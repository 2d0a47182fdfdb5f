package render

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/draw"
)

// Decode reads an image in the named format, one of the formats Encode
// writes.
func Decode(r io.Reader, format string) (image.Image, error) {
	switch format {
	case FormatPNG:
		return png.Decode(r)
	case FormatWebP:
		return nativewebp.DecodeIgnoreAlphaFlag(r)
	case FormatTGA:
		return tga.Decode(r)
	default:
		return nil, fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}
}

// LoadImage reads a PNG, WebP or TGA file, chosen by extension.
func LoadImage(path string) (image.Image, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, fmt.Errorf("load image: %w", err)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load image: %w", err)
	}
	defer f.Close()

	img, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// FramebufferFromImage copies img into a new framebuffer. Alpha is dropped.
func FramebufferFromImage(img image.Image) *Framebuffer {
	b := img.Bounds()
	fb := NewFramebuffer(b.Dx(), b.Dy())
	for y := range fb.Height {
		for x := range fb.Width {
			fb.Pixels[y*fb.Width+x] = FromColor(img.At(b.Min.X+x, b.Min.Y+y))
		}
	}
	return fb
}

// FitImage scales img to exactly width x height with bilinear filtering.
func FitImage(img image.Image, width, height int) *Framebuffer {
	width, height = max(width, 0), max(height, 0)
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return FramebufferFromImage(dst)
}

// Package render is the software rasterizer: the pixel and depth buffers, 2D
// primitive scan conversion, homogeneous clipping and the per-frame scene
// pipeline.
package render

import (
	"image"
)

// Framebuffer is a row-major grid of packed pixels.
// len(Pixels) is always Width*Height.
type Framebuffer struct {
	Width  int
	Height int
	Pixels []Color
}

// NewFramebuffer creates a black framebuffer with the given dimensions.
// Negative dimensions are treated as zero.
func NewFramebuffer(width, height int) *Framebuffer {
	width, height = max(width, 0), max(height, 0)
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]Color, width*height),
	}
}

// Clear fills the framebuffer with black.
func (fb *Framebuffer) Clear() {
	fb.Fill(ColorBlack)
}

// Fill sets every pixel to c.
func (fb *Framebuffer) Fill(c Color) {
	fill(fb.Pixels, c)
}

// fill sets every element of s to v by repeatedly doubling the copied prefix.
func fill[T any](s []T, v T) {
	if len(s) == 0 {
		return
	}
	s[0] = v
	for i := 1; i < len(s); i *= 2 {
		copy(s[i:], s[:i])
	}
}

// SetPixel sets a pixel at (x, y) to the given color.
// Out-of-bounds writes are ignored.
func (fb *Framebuffer) SetPixel(x, y int, c Color) {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return
	}
	fb.Pixels[y*fb.Width+x] = c
}

// GetPixel returns the color at (x, y).
// Returns 0 (black) if out of bounds.
func (fb *Framebuffer) GetPixel(x, y int) Color {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return 0
	}
	return fb.Pixels[y*fb.Width+x]
}

// Bounds returns the framebuffer rectangle.
func (fb *Framebuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, fb.Width, fb.Height)
}

// DrawRect draws the outline of the rectangle with corners (x0, y0) and
// (x1, y1), both included.
func (fb *Framebuffer) DrawRect(x0, y0, x1, y1 int, c Color) {
	fb.DrawLine(x0, y0, x0, y1, c)
	fb.DrawLine(x1, y0, x1, y1, c)
	fb.DrawLine(x0, y0, x1, y0, c)
	fb.DrawLine(x0, y1, x1, y1, c)
}

// FillRect fills rows [y0, y1) with a horizontal line from x0 to x1.
func (fb *Framebuffer) FillRect(x0, y0, x1, y1 int, c Color) {
	for y := y0; y < y1; y++ {
		fb.DrawLine(x0, y, x1, y, c)
	}
}

// DrawRaster copies src into fb with its top-left corner at (x, y). Pixels
// falling outside fb are dropped.
func (fb *Framebuffer) DrawRaster(x, y int, src *Framebuffer) {
	for sy := range src.Height {
		dy := y + sy
		if dy < 0 || dy >= fb.Height {
			continue
		}
		row := src.Pixels[sy*src.Width : (sy+1)*src.Width]
		for sx, c := range row {
			fb.SetPixel(x+sx, dy, c)
		}
	}
}

// ToImage converts the framebuffer to a standard Go image.RGBA.
func (fb *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(fb.Bounds())
	for i, c := range fb.Pixels {
		o := i * 4
		img.Pix[o] = c.R()
		img.Pix[o+1] = c.G()
		img.Pix[o+2] = c.B()
		img.Pix[o+3] = 255
	}
	return img
}

// AppendRGBA appends the framebuffer as 8-bit RGBA bytes, the layout ebiten's
// WritePixels expects.
func (fb *Framebuffer) AppendRGBA(dst []byte) []byte {
	for _, c := range fb.Pixels {
		dst = append(dst, c.R(), c.G(), c.B(), 255)
	}
	return dst
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

package render

import "image/color"

// Color is a packed 0x00RRGGBB pixel. The top byte is ignored.
type Color uint32

// Colors for convenience
const (
	ColorBlack  Color = 0x000000
	ColorWhite  Color = 0xffffff
	ColorRed    Color = 0xff0000
	ColorGreen  Color = 0x00ff00
	ColorBlue   Color = 0x0000ff
	ColorYellow Color = 0xffff00
	ColorPurple Color = 0xa020f0
	ColorCyan   Color = 0x00ffff
	ColorGray   Color = 0x808080
)

// RGB packs three channels into a Color.
func RGB(r, g, b uint8) Color {
	return Color(r)<<16 | Color(g)<<8 | Color(b)
}

// R returns the red channel.
func (c Color) R() uint8 { return uint8(c >> 16) }

// G returns the green channel.
func (c Color) G() uint8 { return uint8(c >> 8) }

// B returns the blue channel.
func (c Color) B() uint8 { return uint8(c) }

// RGBA converts to an opaque color.RGBA.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{c.R(), c.G(), c.B(), 255}
}

// FromColor packs an image color, dropping alpha.
func FromColor(c color.Color) Color {
	r, g, b, _ := c.RGBA()
	return RGB(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

// ScaleColor multiplies every channel by k, rounding to nearest and
// clamping to [0, 255].
func ScaleColor(c Color, k float64) Color {
	return RGB(scaleChannel(c.R(), k), scaleChannel(c.G(), k), scaleChannel(c.B(), k))
}

func scaleChannel(ch uint8, k float64) uint8 {
	v := float64(ch)*k + 0.5
	switch {
	case v >= 255:
		return 255
	case v > 0:
		return uint8(v)
	default:
		return 0
	}
}

package render

import (
	uv "github.com/charmbracelet/ultraviolet"
)

// upperHalf is drawn with the top pixel as foreground and the bottom pixel as
// background, so one cell shows two framebuffer rows.
const upperHalf = "▀"

// TerminalSize returns the framebuffer size that exactly covers a terminal of
// cols x rows cells.
func TerminalSize(cols, rows int) (width, height int) {
	return cols, rows * 2
}

// Draw renders the framebuffer onto scr as half-block cells. Cell (col, row)
// of area shows framebuffer pixels (col, 2*row) and (col, 2*row+1), counted
// from area's origin. Cells beyond the framebuffer are left untouched.
func (fb *Framebuffer) Draw(scr uv.Screen, area uv.Rectangle) {
	for row := area.Min.Y; row < area.Max.Y; row++ {
		topY := (row - area.Min.Y) * 2
		if topY >= fb.Height {
			break
		}
		botY := topY + 1

		for col := area.Min.X; col < area.Max.X; col++ {
			x := col - area.Min.X
			if x >= fb.Width {
				break
			}
			cell := &uv.Cell{
				Content: upperHalf,
				Width:   1,
				Style: uv.Style{
					Fg: fb.GetPixel(x, topY).RGBA(),
					Bg: fb.GetPixel(x, botY).RGBA(),
				},
			}
			scr.SetCell(col, row, cell)
		}
	}
}

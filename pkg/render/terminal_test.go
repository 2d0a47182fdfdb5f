package render

import (
	"testing"

	uv "github.com/charmbracelet/ultraviolet"
)

func TestTerminalSize(t *testing.T) {
	w, h := TerminalSize(80, 24)
	if w != 80 || h != 48 {
		t.Errorf("TerminalSize = %dx%d, want 80x48", w, h)
	}
}

func TestDrawHalfBlocks(t *testing.T) {
	fb := NewFramebuffer(3, 4)
	fb.SetPixel(0, 0, ColorRed)
	fb.SetPixel(0, 1, ColorBlue)
	fb.SetPixel(2, 3, ColorGreen)

	scr := uv.NewScreenBuffer(3, 2)
	fb.Draw(scr, scr.Bounds())

	tests := []struct {
		name     string
		col, row int
		fg, bg   Color
	}{
		{"top left", 0, 0, ColorRed, ColorBlue},
		{"bottom right", 2, 1, ColorBlack, ColorGreen},
		{"empty", 1, 0, ColorBlack, ColorBlack},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cell := scr.CellAt(tt.col, tt.row)
			if cell == nil {
				t.Fatal("no cell")
			}
			if cell.Content != upperHalf {
				t.Errorf("content = %q", cell.Content)
			}
			if cell.Style.Fg != tt.fg.RGBA() {
				t.Errorf("fg = %v, want %v", cell.Style.Fg, tt.fg.RGBA())
			}
			if cell.Style.Bg != tt.bg.RGBA() {
				t.Errorf("bg = %v, want %v", cell.Style.Bg, tt.bg.RGBA())
			}
		})
	}
}

func TestDrawOffsetArea(t *testing.T) {
	fb := NewFramebuffer(2, 2)
	fb.Fill(ColorYellow)

	scr := uv.NewScreenBuffer(5, 3)
	fb.Draw(scr, uv.Rect(2, 1, 3, 2))

	if cell := scr.CellAt(2, 1); cell == nil || cell.Style.Fg != ColorYellow.RGBA() {
		t.Errorf("cell (2,1) = %+v, want yellow", cell)
	}
	// Only one terminal row covers the 2-pixel-high framebuffer; the area
	// is wider than the framebuffer, so column 4 stays untouched.
	for _, p := range [][2]int{{0, 0}, {4, 1}, {2, 2}} {
		if cell := scr.CellAt(p[0], p[1]); cell != nil && cell.Content == upperHalf {
			t.Errorf("cell %v was drawn", p)
		}
	}
}

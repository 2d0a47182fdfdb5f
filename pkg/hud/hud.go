// Package hud draws a small text overlay with frame statistics onto a
// framebuffer using tinyfont bitmap fonts.
package hud

import (
	"fmt"
	"image/color"
	"time"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"

	"github.com/taigrr/cerulean/pkg/render"
)

// fbDisplay lets tinyfont draw into a render.Framebuffer.
type fbDisplay struct {
	fb *render.Framebuffer
}

var _ drivers.Displayer = fbDisplay{}

func (d fbDisplay) Size() (x, y int16) {
	return int16(d.fb.Width), int16(d.fb.Height)
}

func (d fbDisplay) SetPixel(x, y int16, c color.RGBA) {
	d.fb.SetPixel(int(x), int(y), render.FromColor(c))
}

func (d fbDisplay) Display() error { return nil }

// fpsSmoothing weights the newest frame in the running FPS average.
const fpsSmoothing = 0.1

// HUD is a text overlay in the top-left corner of the frame.
type HUD struct {
	Color  render.Color
	Margin int16

	font tinyfont.Fonter
	last time.Time
	fps  float64
}

// New returns a white HUD using the proggy 8pt font.
func New() *HUD {
	return &HUD{
		Color:  render.ColorWhite,
		Margin: 2,
		font:   &proggy.TinySZ8pt7b,
	}
}

// Tick records a frame presented at now and updates the FPS estimate.
func (h *HUD) Tick(now time.Time) {
	if !h.last.IsZero() {
		if dt := now.Sub(h.last).Seconds(); dt > 0 {
			inst := 1 / dt
			if h.fps == 0 {
				h.fps = inst
			} else {
				h.fps += (inst - h.fps) * fpsSmoothing
			}
		}
	}
	h.last = now
}

// FPS returns the smoothed frame rate, or 0 before two ticks.
func (h *HUD) FPS() float64 {
	return h.fps
}

// LineHeight returns the pixel distance between text baselines.
func (h *HUD) LineHeight() int16 {
	return int16(h.font.GetYAdvance())
}

// TextWidth returns the pixel width of s.
func (h *HUD) TextWidth(s string) int {
	_, w := tinyfont.LineWidth(h.font, s)
	return int(w)
}

// Draw writes lines top to bottom. Text falling outside fb is clipped.
func (h *HUD) Draw(fb *render.Framebuffer, lines ...string) {
	d := fbDisplay{fb: fb}
	c := h.Color.RGBA()
	lh := h.LineHeight()
	for i, line := range lines {
		y := h.Margin + lh*int16(i+1)
		tinyfont.WriteLine(d, h.font, h.Margin, y, line, c)
	}
}

// StatsLines formats the renderer counters of the last frame.
func (h *HUD) StatsLines(st render.FrameStats) []string {
	return []string{
		fmt.Sprintf("fps %.1f", h.fps),
		fmt.Sprintf("obj %d/%d", st.InstancesDrawn, st.InstancesDrawn+st.InstancesCulled),
		fmt.Sprintf("tri %d/%d", st.TrianglesRasterized, st.TrianglesIn),
		fmt.Sprintf("px  %d", st.PixelsWritten),
	}
}

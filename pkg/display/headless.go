package display

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/taigrr/cerulean/internal/logging"
	"github.com/taigrr/cerulean/pkg/render"
)

// HeadlessConfig controls the no-window surface.
type HeadlessConfig struct {
	// Frames is the number of frames presented before the surface closes.
	Frames int
	// Output is the snapshot path; its extension picks the format.
	Output string
	// SaveEvery writes every frame to a numbered file derived from Output
	// instead of only the last one.
	SaveEvery bool
	// Scale enlarges saved images by an integer factor.
	Scale int
}

// Headless renders a fixed number of frames and writes snapshots to disk.
type Headless struct {
	cfg    HeadlessConfig
	frames int
	closed bool
	saved  []string
}

// NewHeadless returns a headless surface. A non-positive frame budget means a
// single frame.
func NewHeadless(cfg HeadlessConfig) *Headless {
	cfg.Frames = max(cfg.Frames, 1)
	cfg.Scale = max(cfg.Scale, 1)
	return &Headless{cfg: cfg}
}

func (h *Headless) Present(fb *render.Framebuffer) error {
	if h.closed {
		return ErrClosed
	}
	h.frames++

	last := h.frames >= h.cfg.Frames
	switch {
	case h.cfg.SaveEvery:
		if err := h.save(fb, FramePath(h.cfg.Output, h.frames)); err != nil {
			return err
		}
	case last && h.cfg.Output != "":
		if err := h.save(fb, h.cfg.Output); err != nil {
			return err
		}
	}

	if last {
		h.closed = true
	}
	return nil
}

func (h *Headless) save(fb *render.Framebuffer, path string) error {
	if err := fb.SaveScaled(path, h.cfg.Scale); err != nil {
		return fmt.Errorf("frame %d: %w", h.frames, err)
	}
	h.saved = append(h.saved, path)
	logging.Logger().Info("snapshot written", "path", path, "frame", h.frames)
	return nil
}

func (h *Headless) IsOpen() bool {
	return !h.closed
}

func (h *Headless) Close() error {
	h.closed = true
	return nil
}

// Frames returns the number of frames presented so far.
func (h *Headless) Frames() int {
	return h.frames
}

// Saved returns the paths written so far, in order.
func (h *Headless) Saved() []string {
	return h.saved
}

// FramePath numbers path for frame n: "out/shot.png" becomes
// "out/shot_0007.png" for frame 7.
func FramePath(path string, n int) string {
	ext := filepath.Ext(path)
	return fmt.Sprintf("%s_%04d%s", strings.TrimSuffix(path, ext), n, ext)
}

// Package display presents rendered frames: in a desktop window, in the
// terminal as half-block cells, or headless to image files.
package display

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/taigrr/cerulean/internal/logging"
	"github.com/taigrr/cerulean/pkg/render"
)

// ErrClosed is returned by Present once a surface has been closed.
var ErrClosed = errors.New("display: surface closed")

// Surface receives finished frames. Present copies what it needs, so the
// caller may reuse the framebuffer right away.
type Surface interface {
	Present(fb *render.Framebuffer) error
	IsOpen() bool
	Close() error
}

// Sizer is implemented by surfaces whose pixel size can change while open.
type Sizer interface {
	FramebufferSize() (width, height int)
}

// WindowConfig describes the desktop window.
type WindowConfig struct {
	Width  int
	Height int
	Title  string
	TPS    int
}

// FrameFunc renders the next frame.
type FrameFunc func() (*render.Framebuffer, error)

// RunLoop presents frames on s until s closes or ctx is done. With hz > 0
// frames are paced by a ticker; otherwise they run back to back.
func RunLoop(ctx context.Context, s Surface, hz int, frame FrameFunc) error {
	var tick <-chan time.Time
	if hz > 0 {
		d := time.Second / time.Duration(hz)
		if d <= 0 {
			return fmt.Errorf("invalid frame rate: %d", hz)
		}
		t := time.NewTicker(d)
		defer t.Stop()
		tick = t.C
	}

	frames := 0
	defer func() {
		logging.Logger().Info("frame loop stopped", "frames", frames)
	}()

	for s.IsOpen() {
		if tick != nil {
			select {
			case <-ctx.Done():
				return nil
			case <-tick:
			}
		} else if ctx.Err() != nil {
			return nil
		}

		fb, err := frame()
		if err != nil {
			return err
		}
		if err := s.Present(fb); err != nil {
			if errors.Is(err, ErrClosed) {
				return nil
			}
			return fmt.Errorf("present: %w", err)
		}
		frames++
	}
	return nil
}

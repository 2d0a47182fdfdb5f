package display

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/taigrr/cerulean/pkg/render"
)

func TestFramePath(t *testing.T) {
	tests := []struct {
		path string
		n    int
		want string
	}{
		{"shot.png", 7, "shot_0007.png"},
		{filepath.Join("out", "a.webp"), 120, filepath.Join("out", "a_0120.webp")},
		{"noext", 1, "noext_0001"},
	}
	for _, tt := range tests {
		if got := FramePath(tt.path, tt.n); got != tt.want {
			t.Errorf("FramePath(%q, %d) = %q, want %q", tt.path, tt.n, got, tt.want)
		}
	}
}

func TestHeadlessSavesLastFrame(t *testing.T) {
	out := filepath.Join(t.TempDir(), "final.png")
	h := NewHeadless(HeadlessConfig{Frames: 3, Output: out})
	fb := render.NewFramebuffer(4, 4)

	for i := range 3 {
		if !h.IsOpen() {
			t.Fatalf("closed after %d frames", i)
		}
		if err := h.Present(fb); err != nil {
			t.Fatalf("Present: %v", err)
		}
	}

	if h.IsOpen() {
		t.Error("still open after frame budget")
	}
	if h.Frames() != 3 {
		t.Errorf("Frames() = %d, want 3", h.Frames())
	}
	if len(h.Saved()) != 1 || h.Saved()[0] != out {
		t.Errorf("Saved() = %v, want [%s]", h.Saved(), out)
	}
	if _, err := os.Stat(out); err != nil {
		t.Errorf("snapshot missing: %v", err)
	}
	if err := h.Present(fb); !errors.Is(err, ErrClosed) {
		t.Errorf("Present after close = %v, want ErrClosed", err)
	}
}

func TestHeadlessSaveEvery(t *testing.T) {
	dir := t.TempDir()
	h := NewHeadless(HeadlessConfig{Frames: 2, Output: filepath.Join(dir, "f.tga"), SaveEvery: true, Scale: 2})
	fb := render.NewFramebuffer(3, 2)

	for h.IsOpen() {
		if err := h.Present(fb); err != nil {
			t.Fatal(err)
		}
	}

	want := []string{filepath.Join(dir, "f_0001.tga"), filepath.Join(dir, "f_0002.tga")}
	got := h.Saved()
	if len(got) != len(want) {
		t.Fatalf("Saved() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Saved()[%d] = %q, want %q", i, got[i], want[i])
		}
		if _, err := os.Stat(want[i]); err != nil {
			t.Errorf("missing %s: %v", want[i], err)
		}
	}
}

func TestHeadlessBadFormat(t *testing.T) {
	h := NewHeadless(HeadlessConfig{Frames: 1, Output: filepath.Join(t.TempDir(), "x.bmp")})
	err := h.Present(render.NewFramebuffer(1, 1))
	if !errors.Is(err, render.ErrUnknownFormat) {
		t.Errorf("got %v, want ErrUnknownFormat", err)
	}
}

func TestHeadlessNoOutput(t *testing.T) {
	h := NewHeadless(HeadlessConfig{})
	if err := h.Present(render.NewFramebuffer(1, 1)); err != nil {
		t.Fatal(err)
	}
	if h.IsOpen() || len(h.Saved()) != 0 {
		t.Errorf("open=%v saved=%v, want closed with nothing saved", h.IsOpen(), h.Saved())
	}
}

func TestRunLoop(t *testing.T) {
	h := NewHeadless(HeadlessConfig{Frames: 5})
	fb := render.NewFramebuffer(2, 2)

	calls := 0
	err := RunLoop(context.Background(), h, 0, func() (*render.Framebuffer, error) {
		calls++
		return fb, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if calls != 5 || h.Frames() != 5 {
		t.Errorf("calls=%d frames=%d, want 5", calls, h.Frames())
	}
}

func TestRunLoopPaced(t *testing.T) {
	h := NewHeadless(HeadlessConfig{Frames: 3})
	fb := render.NewFramebuffer(1, 1)
	err := RunLoop(context.Background(), h, 1000, func() (*render.Framebuffer, error) {
		return fb, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if h.Frames() != 3 {
		t.Errorf("frames = %d, want 3", h.Frames())
	}
}

func TestRunLoopStops(t *testing.T) {
	fb := render.NewFramebuffer(1, 1)

	t.Run("canceled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		h := NewHeadless(HeadlessConfig{Frames: 10})
		if err := RunLoop(ctx, h, 0, func() (*render.Framebuffer, error) { return fb, nil }); err != nil {
			t.Fatal(err)
		}
		if h.Frames() != 0 {
			t.Errorf("frames = %d, want 0", h.Frames())
		}
	})

	t.Run("frame error", func(t *testing.T) {
		boom := errors.New("boom")
		h := NewHeadless(HeadlessConfig{Frames: 10})
		err := RunLoop(context.Background(), h, 0, func() (*render.Framebuffer, error) { return nil, boom })
		if !errors.Is(err, boom) {
			t.Errorf("got %v, want boom", err)
		}
	})

	t.Run("closed surface", func(t *testing.T) {
		h := NewHeadless(HeadlessConfig{Frames: 10})
		h.Close()
		called := false
		err := RunLoop(context.Background(), h, 0, func() (*render.Framebuffer, error) {
			called = true
			return fb, nil
		})
		if err != nil || called {
			t.Errorf("err=%v called=%v, want no frames", err, called)
		}
	})

	t.Run("invalid rate", func(t *testing.T) {
		h := NewHeadless(HeadlessConfig{Frames: 1})
		if err := RunLoop(context.Background(), h, 2_000_000_000, nil); err == nil {
			t.Error("expected error for rate above 1GHz")
		}
	})
}

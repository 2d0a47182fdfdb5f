//go:build cgo

package display

import (
	"errors"
	"sync"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/taigrr/cerulean/internal/logging"
	"github.com/taigrr/cerulean/pkg/render"
)

// RunWindow opens a desktop window and calls loop with it on a separate
// goroutine. It blocks on the calling goroutine, which must be the main one,
// until the window closes and loop has returned.
func RunWindow(cfg WindowConfig, loop func(Surface) error) error {
	w := &window{width: cfg.Width, height: cfg.Height}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}
	w.holdScale = holdRate / float64(max(ebiten.TPS(), 1))

	done := make(chan error, 1)
	go func() {
		err := loop(w)
		w.loopDone.Store(true)
		done <- err
	}()

	logging.Logger().Info("window opened", "width", cfg.Width, "height", cfg.Height)
	runErr := ebiten.RunGame(w)
	w.Close()
	loopErr := <-done
	logging.Logger().Info("window closed")

	return errors.Join(runErr, loopErr)
}

// holdRate is how many key presses a held spin key is worth per second.
const holdRate = 6.0

// Spin keys act every tick while held; the others act once per press.
var (
	windowHeldKeys = []struct {
		keys  []ebiten.Key
		input Input
	}{
		{[]ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp}, pitchUp},
		{[]ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown}, pitchDown},
		{[]ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}, yawLeft},
		{[]ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight}, yawRight},
		{[]ebiten.Key{ebiten.KeyZ}, rollLeft},
		{[]ebiten.Key{ebiten.KeyE}, rollRight},
	}
	windowPressKeys = []struct {
		keys  []ebiten.Key
		input Input
	}{
		{[]ebiten.Key{ebiten.KeySpace}, kick},
		{[]ebiten.Key{ebiten.KeyR}, reset},
		{[]ebiten.Key{ebiten.KeyEqual, ebiten.KeyNumpadAdd}, zoomIn},
		{[]ebiten.Key{ebiten.KeyMinus, ebiten.KeyNumpadSubtract}, zoomOut},
		{[]ebiten.Key{ebiten.KeyP}, pause},
		{[]ebiten.Key{ebiten.KeyX}, toggleWire},
		{[]ebiten.Key{ebiten.KeySlash}, toggleHUD},
	}
)

type window struct {
	width, height int

	input        inputQueue
	holdScale    float64
	dragging     bool
	lastX, lastY int

	mu     sync.Mutex
	pix    []byte
	frameW int
	frameH int
	dirty  bool
	img    *ebiten.Image

	closed   atomic.Bool
	loopDone atomic.Bool
}

func (w *window) Present(fb *render.Framebuffer) error {
	if w.closed.Load() {
		return ErrClosed
	}
	w.mu.Lock()
	w.pix = fb.AppendRGBA(w.pix[:0])
	w.frameW, w.frameH = fb.Width, fb.Height
	w.dirty = true
	w.mu.Unlock()
	return nil
}

func (w *window) IsOpen() bool {
	return !w.closed.Load()
}

// Close ends the ebiten loop at its next update.
func (w *window) Close() error {
	w.closed.Store(true)
	return nil
}

// Input returns the keys and mouse input gathered since the last call.
func (w *window) Input() Input {
	return w.input.take()
}

func (w *window) Update() error {
	if w.closed.Load() || w.loopDone.Load() {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		w.Close()
		return ebiten.Termination
	}
	w.pollInput()
	return nil
}

func (w *window) pollInput() {
	var in Input
	for _, b := range windowHeldKeys {
		if anyKey(ebiten.IsKeyPressed, b.keys) {
			held := b.input
			held.Spin = held.Spin.Scale(w.holdScale)
			in.Add(held)
		}
	}
	for _, b := range windowPressKeys {
		if anyKey(inpututil.IsKeyJustPressed, b.keys) {
			in.Add(b.input)
		}
	}

	x, y := ebiten.CursorPosition()
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		if w.dragging {
			in.Add(dragInput(x-w.lastX, y-w.lastY))
		}
		w.dragging = true
	} else {
		w.dragging = false
	}
	w.lastX, w.lastY = x, y

	if _, dy := ebiten.Wheel(); dy != 0 {
		in.Add(Input{Zoom: dy * zoomStep})
	}
	w.input.push(in)
}

func anyKey(pressed func(ebiten.Key) bool, keys []ebiten.Key) bool {
	for _, k := range keys {
		if pressed(k) {
			return true
		}
	}
	return false
}

func (w *window) Draw(screen *ebiten.Image) {
	w.mu.Lock()
	if w.dirty && w.frameW > 0 && w.frameH > 0 {
		if w.img == nil || w.img.Bounds().Dx() != w.frameW || w.img.Bounds().Dy() != w.frameH {
			if w.img != nil {
				w.img.Deallocate()
			}
			w.img = ebiten.NewImage(w.frameW, w.frameH)
		}
		w.img.WritePixels(w.pix)
		w.dirty = false
	}
	img := w.img
	w.mu.Unlock()

	if img != nil {
		screen.DrawImage(img, nil)
	}
}

func (w *window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return w.width, w.height
}

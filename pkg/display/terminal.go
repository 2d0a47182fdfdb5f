package display

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/charmbracelet/x/ansi"

	"github.com/taigrr/cerulean/internal/logging"
	"github.com/taigrr/cerulean/pkg/render"
)

// terminalKeys maps key strings to input.
var terminalKeys = []struct {
	keys  []string
	input Input
}{
	{[]string{"w", "up"}, pitchUp},
	{[]string{"s", "down"}, pitchDown},
	{[]string{"a", "left"}, yawLeft},
	{[]string{"d", "right"}, yawRight},
	{[]string{"z"}, rollLeft},
	{[]string{"e"}, rollRight},
	{[]string{"space"}, kick},
	{[]string{"r"}, reset},
	{[]string{"+", "="}, zoomIn},
	{[]string{"-", "_"}, zoomOut},
	{[]string{"p"}, pause},
	{[]string{"x"}, toggleWire},
	{[]string{"?", "shift+/"}, toggleHUD},
}

// Terminal shows frames in the alternate screen of the controlling terminal,
// two framebuffer rows per cell. Esc, q and ctrl+c close it; the keys in
// terminalKeys and mouse drag or wheel are collected as Input.
type Terminal struct {
	term *uv.Terminal

	mu      sync.Mutex
	cols    int
	rows    int
	resized bool

	input        inputQueue
	dragging     bool
	lastX, lastY int

	closed    atomic.Bool
	closeOnce sync.Once
}

// OpenTerminal takes over the terminal until Close is called.
func OpenTerminal() (*Terminal, error) {
	term := uv.DefaultTerminal()

	cols, rows, err := term.GetSize()
	if err != nil {
		return nil, fmt.Errorf("get terminal size: %w", err)
	}
	if err := term.Start(); err != nil {
		return nil, fmt.Errorf("start terminal: %w", err)
	}
	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(cols, rows)
	term.WriteString(ansi.SetModeMouseAnyEvent + ansi.SetModeMouseExtSgr)

	t := &Terminal{term: term, cols: cols, rows: rows}
	go t.handleEvents()

	logging.Logger().Info("terminal opened", "cols", cols, "rows", rows)
	return t, nil
}

func (t *Terminal) handleEvents() {
	for ev := range t.term.Events() {
		t.handleEvent(ev)
	}
}

func (t *Terminal) handleEvent(ev uv.Event) {
	switch ev := ev.(type) {
	case uv.WindowSizeEvent:
		t.mu.Lock()
		t.cols, t.rows = ev.Width, ev.Height
		t.resized = true
		t.mu.Unlock()

	case uv.KeyPressEvent:
		if ev.MatchString("escape", "q", "ctrl+c") {
			t.closed.Store(true)
			return
		}
		for _, b := range terminalKeys {
			if ev.MatchString(b.keys...) {
				t.input.push(b.input)
				return
			}
		}

	case uv.MouseClickEvent:
		if ev.Button == uv.MouseLeft {
			t.dragging = true
			t.lastX, t.lastY = ev.X, ev.Y
		}

	case uv.MouseReleaseEvent:
		t.dragging = false

	case uv.MouseMotionEvent:
		if t.dragging {
			t.input.push(dragInput(ev.X-t.lastX, ev.Y-t.lastY))
			t.lastX, t.lastY = ev.X, ev.Y
		}

	case uv.MouseWheelEvent:
		switch ev.Button {
		case uv.MouseWheelUp:
			t.input.push(zoomIn)
		case uv.MouseWheelDown:
			t.input.push(zoomOut)
		}
	}
}

// Input returns the keys and mouse input gathered since the last call.
func (t *Terminal) Input() Input {
	return t.input.take()
}

// Size returns the terminal size in cells.
func (t *Terminal) Size() (cols, rows int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cols, t.rows
}

// FramebufferSize returns the framebuffer size that fills the terminal.
func (t *Terminal) FramebufferSize() (width, height int) {
	return render.TerminalSize(t.Size())
}

func (t *Terminal) Present(fb *render.Framebuffer) error {
	if t.closed.Load() {
		return ErrClosed
	}

	t.mu.Lock()
	if t.resized {
		t.term.Erase()
		t.term.Resize(t.cols, t.rows)
		t.resized = false
	}
	t.mu.Unlock()

	fb.Draw(t.term, t.term.Bounds())
	if err := t.term.Display(); err != nil {
		return fmt.Errorf("display: %w", err)
	}
	return nil
}

func (t *Terminal) IsOpen() bool {
	return !t.closed.Load()
}

// Close restores the terminal. It is safe to call more than once.
func (t *Terminal) Close() error {
	var err error
	t.closeOnce.Do(func() {
		t.closed.Store(true)
		t.term.WriteString(ansi.ResetModeMouseAnyEvent + ansi.ResetModeMouseExtSgr)
		t.term.ExitAltScreen()
		t.term.ShowCursor()
		err = errors.Join(t.term.Flush(), t.term.Shutdown(context.Background()))
		logging.Logger().Info("terminal closed")
	})
	return err
}

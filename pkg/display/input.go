package display

import (
	"sync"

	"github.com/taigrr/cerulean/pkg/math3d"
)

const (
	keyImpulse  = 0.6  // rad/s added per spin key press
	dragImpulse = 0.03 // rad/s added per cell or pixel dragged
	zoomStep    = 0.5  // camera units per zoom step
)

// Input is the user input a surface gathered since it was last read.
type Input struct {
	Spin      math3d.Vec3 // impulse to the angular velocity around X, Y and Z
	Kick      bool        // random spin impulse
	Reset     bool        // stop the spin and restore the camera
	Zoom      float64     // camera dolly, positive moves closer
	Pause     bool        // toggle between spinning and coasting to a stop
	Wireframe bool        // toggle wireframe
	HUD       bool        // toggle the HUD
}

// Interactive is implemented by surfaces that read user input.
type Interactive interface {
	// Input returns the input gathered since the last call and clears it.
	Input() Input
}

// Add merges o into in. Toggles cancel out when pressed twice.
func (in *Input) Add(o Input) {
	in.Spin = in.Spin.Add(o.Spin)
	in.Kick = in.Kick || o.Kick
	in.Reset = in.Reset || o.Reset
	in.Zoom += o.Zoom
	in.Pause = in.Pause != o.Pause
	in.Wireframe = in.Wireframe != o.Wireframe
	in.HUD = in.HUD != o.HUD
}

var (
	pitchUp    = Input{Spin: math3d.V3(-keyImpulse, 0, 0)}
	pitchDown  = Input{Spin: math3d.V3(keyImpulse, 0, 0)}
	yawLeft    = Input{Spin: math3d.V3(0, -keyImpulse, 0)}
	yawRight   = Input{Spin: math3d.V3(0, keyImpulse, 0)}
	rollLeft   = Input{Spin: math3d.V3(0, 0, -keyImpulse)}
	rollRight  = Input{Spin: math3d.V3(0, 0, keyImpulse)}
	kick       = Input{Kick: true}
	reset      = Input{Reset: true}
	zoomIn     = Input{Zoom: zoomStep}
	zoomOut    = Input{Zoom: -zoomStep}
	pause      = Input{Pause: true}
	toggleWire = Input{Wireframe: true}
	toggleHUD  = Input{HUD: true}
)

// dragInput converts a pointer drag into a spin: vertical motion pitches,
// horizontal motion yaws.
func dragInput(dx, dy int) Input {
	return Input{Spin: math3d.V3(float64(dy)*dragImpulse, float64(dx)*dragImpulse, 0)}
}

// inputQueue collects input from an event goroutine until the frame loop
// takes it.
type inputQueue struct {
	mu      sync.Mutex
	pending Input
}

func (q *inputQueue) push(in Input) {
	q.mu.Lock()
	q.pending.Add(in)
	q.mu.Unlock()
}

func (q *inputQueue) take() Input {
	q.mu.Lock()
	defer q.mu.Unlock()
	in := q.pending
	q.pending = Input{}
	return in
}

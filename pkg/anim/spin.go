// Package anim drives object rotation between frames. Angular velocity is
// eased toward a target rate with harmonica springs, so impulses and rate
// changes decay smoothly instead of snapping.
package anim

import (
	"github.com/charmbracelet/harmonica"
	"github.com/taigrr/cerulean/pkg/math3d"
)

const (
	// Frequency 4.0 = moderate speed, damping 1.0 = critically damped (no overshoot)
	springFrequency = 4.0
	springDamping   = 1.0
)

// Axis tracks the angle and angular velocity (radians per second) of one
// rotation axis.
type Axis struct {
	Angle    float64
	Velocity float64
	Target   float64 // rate the velocity settles at

	dt     float64
	accel  float64 // spring velocity of Velocity
	spring harmonica.Spring
}

// NewAxis creates an axis at rest that spins up toward target.
func NewAxis(fps int, target float64) Axis {
	return Axis{
		Target: target,
		dt:     harmonica.FPS(fps),
		spring: harmonica.NewSpring(harmonica.FPS(fps), springFrequency, springDamping),
	}
}

// Update advances one frame: the angle moves by the current velocity, then
// the velocity is pulled toward Target.
func (a *Axis) Update() {
	a.Angle += a.Velocity * a.dt
	a.Velocity, a.accel = a.spring.Update(a.Velocity, a.accel, a.Target)
}

// Spin is a three-axis rotation driven by springs.
type Spin struct {
	X, Y, Z Axis
	fps     int
}

// NewSpin creates a spin at rest whose rates settle at target (radians per
// second around X, Y and Z). fps is the frame rate Update is called at.
func NewSpin(fps int, target math3d.Vec3) *Spin {
	fps = max(fps, 1)
	return &Spin{
		X:   NewAxis(fps, target.X),
		Y:   NewAxis(fps, target.Y),
		Z:   NewAxis(fps, target.Z),
		fps: fps,
	}
}

// Update advances all axes by one frame.
func (s *Spin) Update() {
	s.X.Update()
	s.Y.Update()
	s.Z.Update()
}

// Rotation returns the current Euler angles.
func (s *Spin) Rotation() math3d.Vec3 {
	return math3d.V3(s.X.Angle, s.Y.Angle, s.Z.Angle)
}

// Velocity returns the current angular rates.
func (s *Spin) Velocity() math3d.Vec3 {
	return math3d.V3(s.X.Velocity, s.Y.Velocity, s.Z.Velocity)
}

// Impulse adds to the angular velocity; the springs ease it back to target.
func (s *Spin) Impulse(dv math3d.Vec3) {
	s.X.Velocity += dv.X
	s.Y.Velocity += dv.Y
	s.Z.Velocity += dv.Z
}

// SetTarget changes the rates the springs settle at.
func (s *Spin) SetTarget(target math3d.Vec3) {
	s.X.Target = target.X
	s.Y.Target = target.Y
	s.Z.Target = target.Z
}

// Reset stops the spin and zeroes the angles, keeping the targets.
func (s *Spin) Reset() {
	s.X = NewAxis(s.fps, s.X.Target)
	s.Y = NewAxis(s.fps, s.Y.Target)
	s.Z = NewAxis(s.fps, s.Z.Target)
}

// Apply writes the current angles into t.
func (s *Spin) Apply(t *math3d.Transform) {
	t.Rotation = s.Rotation()
}

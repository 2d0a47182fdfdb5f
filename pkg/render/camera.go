package render

import (
	"github.com/taigrr/cerulean/pkg/math3d"
)

// Default clip distances. The projection maps Near to NDC depth +1 and Far to -1.
const (
	DefaultNear = 1.0
	DefaultFar  = 50.0
)

// Camera is a perspective eye placed in the world by a Transform. The camera
// looks down its local +Z axis with +Y up; Transform.Scale is ignored.
type Camera struct {
	FOV       float64 // Horizontal field of view in radians
	Near      float64 // Near clipping plane
	Far       float64 // Far clipping plane
	Transform math3d.Transform
}

// NewCamera creates a camera at the origin looking down +Z.
func NewCamera(fov float64) *Camera {
	return &Camera{
		FOV:       fov,
		Near:      DefaultNear,
		Far:       DefaultFar,
		Transform: math3d.NewTransform(0, 0, 0),
	}
}

// SetPosition sets the camera position.
func (c *Camera) SetPosition(pos math3d.Vec3) {
	c.Transform.Translation = pos
}

// SetRotation sets the camera rotation (Euler angles in radians).
func (c *Camera) SetRotation(rx, ry, rz float64) {
	c.Transform.Rotation = math3d.V3(rx, ry, rz)
}

// Forward returns the world-space viewing direction.
func (c *Camera) Forward() math3d.Vec3 {
	return c.Transform.RotationMatrix().MulVec3(math3d.V3(0, 0, 1))
}

// ViewMatrix returns the world-to-camera matrix [Rᵀ | -Rᵀt], the inverse of
// the camera's rigid transform.
func (c *Camera) ViewMatrix() math3d.Mat4 {
	rt := c.Transform.RotationMatrix().Transpose()
	t := rt.MulVec3(c.Transform.Translation).Negate()

	view := math3d.Mat4FromMat3(rt)
	view.Set(0, 3, t.X)
	view.Set(1, 3, t.Y)
	view.Set(2, 3, t.Z)
	return view
}

// ProjectionMatrix returns the perspective projection for a raster with the
// given width/height ratio.
func (c *Camera) ProjectionMatrix(aspect float64) math3d.Mat4 {
	return math3d.Perspective(c.FOV, aspect, c.Near, c.Far)
}

// ViewProjectionMatrix returns Projection·View.
func (c *Camera) ViewProjectionMatrix(aspect float64) math3d.Mat4 {
	return c.ProjectionMatrix(aspect).Mul(c.ViewMatrix())
}

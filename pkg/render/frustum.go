package render

import (
	"github.com/taigrr/cerulean/pkg/math3d"
)

// Plane is the half-space Normal·p + D >= 0.
type Plane struct {
	Normal math3d.Vec3
	D      float64
}

// Normalize rescales the equation to a unit normal so DistanceToPoint
// returns true distances. Degenerate planes are left alone.
func (p *Plane) Normalize() {
	if l := p.Normal.Len(); l != 0 {
		p.Normal = p.Normal.Scale(1 / l)
		p.D /= l
	}
}

// DistanceToPoint is positive on the inner side of the plane.
func (p Plane) DistanceToPoint(point math3d.Vec3) float64 {
	return p.Normal.Dot(point) + p.D
}

// Frustum holds the six planes of a view volume with inward-facing normals,
// in ClipPlanes order.
type Frustum struct {
	Planes [6]Plane
}

// NewFrustumFromMatrix extracts the frustum planes from a matrix mapping some
// space into clip space (Gribb/Hartmann). Passing Projection·View·Model gives
// planes in that model's local space.
func NewFrustumFromMatrix(m math3d.Mat4) Frustum {
	var f Frustum
	w := m.Row(3)
	for i, cp := range ClipPlanes {
		// Sign*row[axis] <= row3  =>  row3 - Sign*row[axis] >= 0
		r := w.Sub(m.Row(cp.Axis).Scale(cp.Sign))
		f.Planes[i] = Plane{Normal: r.Vec3(), D: r.W}
		f.Planes[i].Normalize()
	}
	return f
}

// IntersectAABB reports whether any part of box may be inside the frustum.
// It tests the corner furthest along each plane normal, so it can report
// boxes near a frustum corner as visible but never rejects a visible one.
func (f Frustum) IntersectAABB(box math3d.AABB) bool {
	for _, plane := range f.Planes {
		p := math3d.V3(
			selectComponent(plane.Normal.X >= 0, box.Max.X, box.Min.X),
			selectComponent(plane.Normal.Y >= 0, box.Max.Y, box.Min.Y),
			selectComponent(plane.Normal.Z >= 0, box.Max.Z, box.Min.Z),
		)
		if plane.DistanceToPoint(p) < 0 {
			return false
		}
	}
	return true
}

// ContainsPoint reports whether p lies inside or on every plane.
func (f Frustum) ContainsPoint(p math3d.Vec3) bool {
	for _, plane := range f.Planes {
		if plane.DistanceToPoint(p) < 0 {
			return false
		}
	}
	return true
}

func selectComponent(cond bool, a, b float64) float64 {
	if cond {
		return a
	}
	return b
}

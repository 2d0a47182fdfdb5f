package render

import (
	"github.com/taigrr/cerulean/pkg/math3d"
)

// boxEdges joins the corners returned by math3d.AABB.Corners.
var boxEdges = [12][2]int{
	// Min-Z face
	{0, 1}, {1, 3}, {3, 2}, {2, 0},
	// Max-Z face
	{4, 5}, {5, 7}, {7, 6}, {6, 4},
	// Connecting edges
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// ClipLine clips the clip-space segment a-b to the view volume. ok is false
// when no part of it is visible.
func ClipLine(a, b math3d.Vec4) (ca, cb math3d.Vec4, ok bool) {
	t0, t1 := 0.0, 1.0
	for _, p := range ClipPlanes {
		da, db := p.Distance(a), p.Distance(b)
		inA, inB := inside(da), inside(db)
		switch {
		case !inA && !inB:
			return a, b, false
		case !inA:
			t0 = max(t0, da/(da-db))
		case !inB:
			t1 = min(t1, da/(da-db))
		}
		if !(t0 <= t1) {
			return a, b, false
		}
	}
	return a.Lerp(b, t0), a.Lerp(b, t1), true
}

// DrawLine3D draws the world-space segment p0-p1 as seen by cam. The segment
// is clipped before projection, so endpoints behind the camera are handled.
// Lines are not depth tested.
func (r *Renderer) DrawLine3D(cam *Camera, p0, p1 math3d.Vec3, c Color) {
	if r.fb.Width == 0 || r.fb.Height == 0 {
		return
	}
	viewProj := cam.ViewProjectionMatrix(float64(r.fb.Width) / float64(r.fb.Height))
	r.drawClipLine(viewProj, math3d.Viewport(r.fb.Width, r.fb.Height), p0, p1, c)
}

// DrawAxes draws the world X, Y and Z axes from the origin in red, green
// and blue.
func (r *Renderer) DrawAxes(cam *Camera, length float64) {
	origin := math3d.Zero3()
	r.DrawLine3D(cam, origin, math3d.V3(length, 0, 0), ColorRed)
	r.DrawLine3D(cam, origin, math3d.V3(0, length, 0), ColorGreen)
	r.DrawLine3D(cam, origin, math3d.V3(0, 0, length), ColorBlue)
}

func (r *Renderer) drawClipLine(m, viewport math3d.Mat4, p0, p1 math3d.Vec3, c Color) {
	a, b, ok := ClipLine(m.MulVec4(math3d.V4FromV3(p0, 1)), m.MulVec4(math3d.V4FromV3(p1, 1)))
	if !ok {
		return
	}
	sa, okA := project(viewport, a)
	sb, okB := project(viewport, b)
	if !okA || !okB {
		return
	}
	r.fb.DrawLine(sa.X, sa.Y, sb.X, sb.Y, c)
}

// drawBounds outlines box, given in the space m maps to clip space.
func (r *Renderer) drawBounds(m, viewport math3d.Mat4, box math3d.AABB, c Color) {
	corners := box.Corners()
	for _, e := range boxEdges {
		r.drawClipLine(m, viewport, corners[e[0]], corners[e[1]], c)
	}
}

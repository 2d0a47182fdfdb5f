package render

import (
	"math"

	"github.com/taigrr/cerulean/pkg/math3d"
	"github.com/taigrr/cerulean/pkg/models"
)

// FrameStats counts what happened during the last Render call.
type FrameStats struct {
	InstancesDrawn      int // Instances that reached the clipper
	InstancesCulled     int // Instances rejected by their bounding box
	TrianglesIn         int // Model triangles of drawn instances
	TrianglesClipped    int // Triangles leaving the clipper
	TrianglesRasterized int // Triangles handed to the rasterizer
	TrianglesSkipped    int // Triangles with a vertex that failed to project
	PixelsWritten       int // Pixels that passed the depth test
}

// Renderer draws scenes into a framebuffer through the perspective pipeline:
// model, view and projection transforms, homogeneous clipping, perspective
// divide, viewport mapping and depth-tested scanline fill.
//
// A Renderer owns its depth buffer and scratch space and is not safe for
// concurrent use.
type Renderer struct {
	fb      *Framebuffer
	depth   *DepthBuffer
	clipper Clipper

	clipVerts []math3d.Vec4
	clipTris  []ClipTriangle
	screen    []Point
	valid     []bool

	// Wireframe draws triangle outlines without depth testing.
	Wireframe bool
	// DisableCulling skips the per-instance bounding box test.
	DisableCulling bool
	// ShowBounds outlines each drawn instance's bounding box in BoundsColor.
	ShowBounds  bool
	BoundsColor Color

	Stats FrameStats
}

// NewRenderer creates a renderer drawing into fb.
func NewRenderer(fb *Framebuffer) *Renderer {
	return &Renderer{
		fb:          fb,
		depth:       NewDepthBuffer(fb.Width, fb.Height),
		BoundsColor: ColorYellow,
	}
}

// Framebuffer returns the target framebuffer.
func (r *Renderer) Framebuffer() *Framebuffer {
	return r.fb
}

// Depth returns the depth buffer of the last frame.
func (r *Renderer) Depth() *DepthBuffer {
	return r.depth
}

// Resize replaces the framebuffer and depth buffer when the size changes.
func (r *Renderer) Resize(width, height int) {
	if width == r.fb.Width && height == r.fb.Height {
		return
	}
	r.fb = NewFramebuffer(width, height)
	r.depth = NewDepthBuffer(width, height)
}

// Render draws every instance of scene as seen by cam. The framebuffer is not
// cleared first; the depth buffer is.
func (r *Renderer) Render(cam *Camera, scene *models.Scene) {
	r.Stats = FrameStats{}
	if r.fb.Width == 0 || r.fb.Height == 0 {
		return
	}

	viewProj := cam.ViewProjectionMatrix(float64(r.fb.Width) / float64(r.fb.Height))
	viewport := math3d.Viewport(r.fb.Width, r.fb.Height)

	r.depth.Reset()
	for _, inst := range scene.Instances {
		r.renderInstance(viewProj, viewport, inst)
	}

	Logger().Debug("frame rendered",
		"drawn", r.Stats.InstancesDrawn,
		"culled", r.Stats.InstancesCulled,
		"triangles", r.Stats.TrianglesRasterized,
		"pixels", r.Stats.PixelsWritten)
}

func (r *Renderer) renderInstance(viewProj, viewport math3d.Mat4, inst *models.Instance) {
	model := inst.Model
	m := viewProj.Mul(inst.Transform.Matrix())

	if !r.DisableCulling && !NewFrustumFromMatrix(m).IntersectAABB(model.Bounds) {
		r.Stats.InstancesCulled++
		return
	}
	r.Stats.InstancesDrawn++
	r.Stats.TrianglesIn += len(model.Triangles)
	if r.ShowBounds {
		defer r.drawBounds(m, viewport, model.Bounds, r.BoundsColor)
	}

	r.clipVerts = r.clipVerts[:0]
	for _, v := range model.Vertices {
		r.clipVerts = append(r.clipVerts, m.MulVec4(math3d.V4FromV3(v, 1)))
	}
	r.clipTris = r.clipTris[:0]
	for _, t := range model.Triangles {
		r.clipTris = append(r.clipTris, ClipTriangle{V: t.V, Color: Color(t.Color)})
	}

	verts, tris := r.clipper.Clip(r.clipVerts, r.clipTris)
	r.Stats.TrianglesClipped += len(tris)
	if len(tris) == 0 {
		return
	}

	r.screen = r.screen[:0]
	r.valid = r.valid[:0]
	bad := 0
	for _, v := range verts {
		p, ok := project(viewport, v)
		if !ok {
			bad++
		}
		r.screen = append(r.screen, p)
		r.valid = append(r.valid, ok)
	}
	if bad > 0 {
		Logger().Warn("vertices did not project to the screen, skipping affected triangles",
			"model", model.Name, "vertices", bad)
	}

	for _, t := range tris {
		if !r.valid[t.V[0]] || !r.valid[t.V[1]] || !r.valid[t.V[2]] {
			r.Stats.TrianglesSkipped++
			continue
		}
		p0, p1, p2 := r.screen[t.V[0]], r.screen[t.V[1]], r.screen[t.V[2]]
		if r.Wireframe {
			r.fb.DrawTriangle(p0.X, p0.Y, p1.X, p1.Y, p2.X, p2.Y, t.Color)
		} else {
			r.Stats.PixelsWritten += r.fb.FillTriangleZ(r.depth, p0, p1, p2, t.Color)
		}
		r.Stats.TrianglesRasterized++
	}
}

// project divides a clip-space vertex by w and maps it through viewport. ok is
// false when w is zero or the result is not a finite, representable pixel
// position.
func project(viewport math3d.Mat4, v math3d.Vec4) (Point, bool) {
	ndc, ok := v.Divide()
	if !ok {
		return Point{}, false
	}
	s := viewport.MulVec4(ndc)
	if !inRasterRange(s.X) || !inRasterRange(s.Y) || math.IsNaN(s.Z) || math.IsInf(s.Z, 0) {
		return Point{}, false
	}
	return Point{X: int(s.X), Y: int(s.Y), Z: s.Z}, true
}

func inRasterRange(f float64) bool {
	return f >= -maxRasterCoord && f <= maxRasterCoord
}

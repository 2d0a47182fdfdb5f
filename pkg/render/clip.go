package render

import "github.com/taigrr/cerulean/pkg/math3d"

// ClipPlane is one boundary of the clip-space view volume: the half-space
// Sign*v[Axis] <= w.
type ClipPlane struct {
	Axis int // 0=x, 1=y, 2=z
	Sign float64
}

// ClipPlanes lists the view volume boundaries in the order they are applied.
var ClipPlanes = [6]ClipPlane{
	{Axis: 0, Sign: 1},  // right:  x <= w
	{Axis: 0, Sign: -1}, // left:   x >= -w
	{Axis: 1, Sign: 1},  // top:    y <= w
	{Axis: 1, Sign: -1}, // bottom: y >= -w
	{Axis: 2, Sign: 1},  // near:   z <= w
	{Axis: 2, Sign: -1}, // far:    z >= -w
}

// Distance returns the signed distance of v from the plane, negative outside.
func (p ClipPlane) Distance(v math3d.Vec4) float64 {
	return v.W - p.Sign*v.Component(p.Axis)
}

// ClipTriangle is an indexed, flat-colored triangle in clip space.
type ClipTriangle struct {
	V     [3]int
	Color Color
}

// Clipper clips indexed triangles against the six ClipPlanes. Its scratch
// buffers are reused between calls, so a Clipper must not be shared between
// goroutines and its results are only valid until the next Clip.
type Clipper struct {
	verts [2][]math3d.Vec4
	tris  [2][]ClipTriangle
	remap []int

	// Degenerate counts triangles dropped because an intersection could not
	// be computed. It accumulates across calls.
	Degenerate int
}

// Clip returns the geometry of tris lying inside the view volume. Triangles
// fully inside keep their vertices (shared vertices stay shared); partially
// inside triangles are split, keeping their color and winding; triangles
// fully outside are dropped. Only referenced vertices are returned.
func (c *Clipper) Clip(verts []math3d.Vec4, tris []ClipTriangle) ([]math3d.Vec4, []ClipTriangle) {
	for i, plane := range ClipPlanes {
		dst := i % 2
		c.verts[dst], c.tris[dst] = c.clipPlane(plane, verts, tris, c.verts[dst][:0], c.tris[dst][:0])
		verts, tris = c.verts[dst], c.tris[dst]
		if len(tris) == 0 {
			return verts[:0], tris
		}
	}
	return verts, tris
}

// clipPlane clips against a single plane, appending the result to outV and
// outT.
func (c *Clipper) clipPlane(plane ClipPlane, verts []math3d.Vec4, tris []ClipTriangle, outV []math3d.Vec4, outT []ClipTriangle) ([]math3d.Vec4, []ClipTriangle) {
	if cap(c.remap) < len(verts) {
		c.remap = make([]int, len(verts))
	}
	remap := c.remap[:len(verts)]
	for i := range remap {
		remap[i] = -1
	}

	keep := func(i int) int {
		if remap[i] < 0 {
			remap[i] = len(outV)
			outV = append(outV, verts[i])
		}
		return remap[i]
	}
	emit := func(v math3d.Vec4) int {
		outV = append(outV, v)
		return len(outV) - 1
	}

	for _, t := range tris {
		var d [3]float64
		outside := 0
		for k, vi := range t.V {
			d[k] = plane.Distance(verts[vi])
			if !inside(d[k]) {
				outside++
			}
		}

		switch outside {
		case 0:
			outT = append(outT, ClipTriangle{
				V:     [3]int{keep(t.V[0]), keep(t.V[1]), keep(t.V[2])},
				Color: t.Color,
			})

		case 1:
			// Cyclic order o, a, b with o outside becomes the quad pa, a, b, pb.
			o := 0
			for inside(d[o]) {
				o++
			}
			a, b := (o+1)%3, (o+2)%3
			pa, ok1 := intersect(verts[t.V[a]], d[a], verts[t.V[o]], d[o])
			pb, ok2 := intersect(verts[t.V[b]], d[b], verts[t.V[o]], d[o])
			if !ok1 || !ok2 {
				c.degenerate(plane, t)
				continue
			}
			ia, ib := keep(t.V[a]), keep(t.V[b])
			ipa, ipb := emit(pa), emit(pb)
			outT = append(outT,
				ClipTriangle{V: [3]int{ipa, ia, ib}, Color: t.Color},
				ClipTriangle{V: [3]int{ipa, ib, ipb}, Color: t.Color},
			)

		case 2:
			// Cyclic order i, a, b with only i inside becomes i, pa, pb.
			in := 0
			for !inside(d[in]) {
				in++
			}
			a, b := (in+1)%3, (in+2)%3
			pa, ok1 := intersect(verts[t.V[in]], d[in], verts[t.V[a]], d[a])
			pb, ok2 := intersect(verts[t.V[in]], d[in], verts[t.V[b]], d[b])
			if !ok1 || !ok2 {
				c.degenerate(plane, t)
				continue
			}
			ii := keep(t.V[in])
			outT = append(outT, ClipTriangle{V: [3]int{ii, emit(pa), emit(pb)}, Color: t.Color})
		}
	}
	return outV, outT
}

// inside reports whether a plane distance is on the inner side. NaN counts as
// outside.
func inside(d float64) bool {
	return d >= 0
}

// intersect returns the point where the edge from in (inside, distance dIn)
// to out (outside, distance dOut) crosses the plane.
func intersect(in math3d.Vec4, dIn float64, out math3d.Vec4, dOut float64) (math3d.Vec4, bool) {
	den := dIn - dOut
	if !(den > 0) {
		return math3d.Vec4{}, false
	}
	t := dIn / den
	if !(t >= 0 && t <= 1) {
		return math3d.Vec4{}, false
	}
	return in.Lerp(out, t), true
}

func (c *Clipper) degenerate(plane ClipPlane, t ClipTriangle) {
	c.Degenerate++
	Logger().Debug("clip: skipping degenerate triangle",
		"axis", plane.Axis, "sign", plane.Sign, "vertices", t.V)
}

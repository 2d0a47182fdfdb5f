package render

import "github.com/taigrr/cerulean/pkg/math3d"

// Point is a raster-space vertex: integer pixel coordinates plus NDC depth.
type Point struct {
	X, Y int
	Z    float64
}

// maxRasterCoord bounds the pixel coordinates the rasterizer accepts.
// Primitives with a vertex beyond it are skipped.
const maxRasterCoord = 1 << 24

func inRaster(v ...int) bool {
	for _, c := range v {
		if c < -maxRasterCoord || c > maxRasterCoord {
			return false
		}
	}
	return true
}

// spans holds the left and right bounds of every row a triangle covers,
// starting at row y0. leftA/rightA carry an interpolated attribute when one
// was requested.
type spans struct {
	y0            int
	left, right   []int
	leftA, rightA []float64
}

// scan computes the row spans of a triangle. Vertices are stably sorted by y,
// the short edges 0→1 and 1→2 are joined into one composite edge and compared
// against the long edge 0→2 at the middle row to decide which side is left.
// A triangle with a vertex outside the raster range yields no rows.
func scan(x, y [3]int, a *[3]float64) spans {
	if !inRaster(x[0], x[1], x[2], y[0], y[1], y[2]) {
		return spans{}
	}
	idx := [3]int{0, 1, 2}
	for i := 1; i < 3; i++ {
		for j := i; j > 0 && y[idx[j]] < y[idx[j-1]]; j-- {
			idx[j], idx[j-1] = idx[j-1], idx[j]
		}
	}
	i0, i1, i2 := idx[0], idx[1], idx[2]

	x02 := math3d.LerpInts(y[i0], x[i0], y[i2], x[i2])
	x012 := join(
		math3d.LerpInts(y[i0], x[i0], y[i1], x[i1]),
		math3d.LerpInts(y[i1], x[i1], y[i2], x[i2]),
	)

	var a02, a012 []float64
	if a != nil {
		a02 = math3d.LerpFloats(y[i0], a[i0], y[i2], a[i2])
		a012 = join(
			math3d.LerpFloats(y[i0], a[i0], y[i1], a[i1]),
			math3d.LerpFloats(y[i1], a[i1], y[i2], a[i2]),
		)
	}

	// The long edge is left only when strictly left of the composite edge
	// at the middle row.
	s := spans{y0: y[i0], left: x012, right: x02, leftA: a012, rightA: a02}
	m := len(x012) / 2
	if x02[m] < x012[m] {
		s.left, s.right = x02, x012
		s.leftA, s.rightA = a02, a012
	}
	return s
}

// join concatenates two edges that share their boundary element, dropping the
// duplicate from the first.
func join[T any](first, second []T) []T {
	out := make([]T, 0, len(first)-1+len(second))
	out = append(out, first[:len(first)-1]...)
	return append(out, second...)
}

// rows clamps the span rows to the framebuffer and returns the index range
// [lo, hi) into the span slices.
func (fb *Framebuffer) rows(s spans) (lo, hi int) {
	lo = max(0, -s.y0)
	hi = min(len(s.left), fb.Height-s.y0)
	return lo, hi
}

// FillTriangle fills a triangle with a flat color. Each covered row is filled
// over [left, right).
func (fb *Framebuffer) FillTriangle(x0, y0, x1, y1, x2, y2 int, c Color) {
	s := scan([3]int{x0, x1, x2}, [3]int{y0, y1, y2}, nil)
	lo, hi := fb.rows(s)
	for i := lo; i < hi; i++ {
		row := fb.Pixels[(s.y0+i)*fb.Width:][:fb.Width]
		for x := max(s.left[i], 0); x < min(s.right[i], fb.Width); x++ {
			row[x] = c
		}
	}
}

// FillTriangleZ fills a triangle, writing a pixel (color and depth) only where
// the interpolated depth is strictly nearer than the value already in depth.
func (fb *Framebuffer) FillTriangleZ(depth *DepthBuffer, p0, p1, p2 Point, c Color) int {
	s := scan([3]int{p0.X, p1.X, p2.X}, [3]int{p0.Y, p1.Y, p2.Y}, &[3]float64{p0.Z, p1.Z, p2.Z})
	written := 0
	lo, hi := fb.rows(s)
	for i := lo; i < hi; i++ {
		y := s.y0 + i
		fb.eachSpanPixel(s, i, func(x int, z float64) {
			if depth.Test(x, y, z) {
				fb.Pixels[y*fb.Width+x] = c
				written++
			}
		})
	}
	return written
}

// FillShadedTriangle fills a triangle whose vertices carry intensities h0, h1
// and h2. Each pixel gets ScaleColor(c, h) for the interpolated h.
func (fb *Framebuffer) FillShadedTriangle(x0, y0 int, h0 float64, x1, y1 int, h1 float64, x2, y2 int, h2 float64, c Color) {
	s := scan([3]int{x0, x1, x2}, [3]int{y0, y1, y2}, &[3]float64{h0, h1, h2})
	lo, hi := fb.rows(s)
	for i := lo; i < hi; i++ {
		y := s.y0 + i
		fb.eachSpanPixel(s, i, func(x int, h float64) {
			fb.Pixels[y*fb.Width+x] = ScaleColor(c, h)
		})
	}
}

// eachSpanPixel calls fn for every on-screen pixel of row i with the
// attribute interpolated across the span.
func (fb *Framebuffer) eachSpanPixel(s spans, i int, fn func(x int, a float64)) {
	xl, xr := s.left[i], s.right[i]
	if xl >= xr {
		return
	}
	al := s.leftA[i]
	step := (s.rightA[i] - al) / float64(xr-xl)
	for x := max(xl, 0); x < min(xr, fb.Width); x++ {
		fn(x, al+step*float64(x-xl))
	}
}

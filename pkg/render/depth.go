package render

// DepthCleared is the value every depth entry holds at the start of a frame.
// NDC depth runs from -1 (far) to +1 (near), so anything drawn beats it.
const DepthCleared = -1.0

// DepthBuffer records the nearest NDC depth written to each pixel.
type DepthBuffer struct {
	Width  int
	Height int
	Values []float64
}

// NewDepthBuffer allocates a cleared depth buffer.
func NewDepthBuffer(width, height int) *DepthBuffer {
	width, height = max(width, 0), max(height, 0)
	d := &DepthBuffer{
		Width:  width,
		Height: height,
		Values: make([]float64, width*height),
	}
	d.Reset()
	return d
}

// Reset sets every entry back to DepthCleared.
func (d *DepthBuffer) Reset() {
	fill(d.Values, DepthCleared)
}

// At returns the depth at (x, y), or DepthCleared out of bounds.
func (d *DepthBuffer) At(x, y int) float64 {
	if x < 0 || x >= d.Width || y < 0 || y >= d.Height {
		return DepthCleared
	}
	return d.Values[y*d.Width+x]
}

// Test stores z at (x, y) and reports true if it is strictly nearer than
// what is already there. Out-of-bounds coordinates always fail.
func (d *DepthBuffer) Test(x, y int, z float64) bool {
	if x < 0 || x >= d.Width || y < 0 || y >= d.Height {
		return false
	}
	i := y*d.Width + x
	if d.Values[i] < z {
		d.Values[i] = z
		return true
	}
	return false
}

package render

// DrawLine draws a line from (x0, y0) to (x1, y1), endpoints included.
// The set of pixels written does not depend on which end is passed first.
// Lines with an endpoint beyond the raster range are skipped.
func (fb *Framebuffer) DrawLine(x0, y0, x1, y1 int, c Color) {
	if !inRaster(x0, y0, x1, y1) {
		return
	}
	dx, dy := x1-x0, y1-y0

	switch {
	case dx == 0:
		if y0 > y1 {
			y0, y1 = y1, y0
		}
		for y := y0; y <= y1; y++ {
			fb.SetPixel(x0, y, c)
		}
	case dy == 0:
		if x0 > x1 {
			x0, x1 = x1, x0
		}
		for x := x0; x <= x1; x++ {
			fb.SetPixel(x, y0, c)
		}
	case abs(dx) == abs(dy):
		if x0 > x1 {
			x0, y0, x1, y1 = x1, y1, x0, y0
		}
		sy := 1
		if y1 < y0 {
			sy = -1
		}
		for x, y := x0, y0; x <= x1; x, y = x+1, y+sy {
			fb.SetPixel(x, y, c)
		}
	case abs(dy) < abs(dx):
		if x0 > x1 {
			x0, y0, x1, y1 = x1, y1, x0, y0
		}
		fb.drawGentleLine(x0, y0, x1, y1, c)
	default:
		if y0 > y1 {
			x0, y0, x1, y1 = x1, y1, x0, y0
		}
		fb.drawSteepLine(x0, y0, x1, y1, c)
	}
}

// drawGentleLine steps x from x0 to x1 (x0 < x1, |slope| < 1).
func (fb *Framebuffer) drawGentleLine(x0, y0, x1, y1 int, c Color) {
	dx := x1 - x0
	dy := y1 - y0
	yi := 1
	if dy < 0 {
		yi = -1
		dy = -dy
	}

	d := 2*dy - dx
	y := y0
	for x := x0; x <= x1; x++ {
		fb.SetPixel(x, y, c)
		if d > 0 {
			y += yi
			d -= 2 * dx
		}
		d += 2 * dy
	}
}

// drawSteepLine steps y from y0 to y1 (y0 < y1, |slope| > 1).
func (fb *Framebuffer) drawSteepLine(x0, y0, x1, y1 int, c Color) {
	dx := x1 - x0
	dy := y1 - y0
	xi := 1
	if dx < 0 {
		xi = -1
		dx = -dx
	}

	d := 2*dx - dy
	x := x0
	for y := y0; y <= y1; y++ {
		fb.SetPixel(x, y, c)
		if d > 0 {
			x += xi
			d -= 2 * dy
		}
		d += 2 * dx
	}
}

// DrawTriangle draws the outline of a triangle.
func (fb *Framebuffer) DrawTriangle(x0, y0, x1, y1, x2, y2 int, c Color) {
	fb.DrawLine(x0, y0, x1, y1, c)
	fb.DrawLine(x0, y0, x2, y2, c)
	fb.DrawLine(x1, y1, x2, y2, c)
}

package math3d

// LerpInts interpolates a dependent integer value d between (i0, d0) and
// (i1, d1), returning one entry per integer step of i, both ends included.
// Intermediate values are rounded by adding 0.5 and truncating toward zero;
// the last entry is exactly d1.
//
// If i0 >= i1 the result is the single midpoint (d0+d1)/2. Triangle fill
// relies on this for zero-height edges.
func LerpInts(i0, d0, i1, d1 int) []int {
	if i0 >= i1 {
		return []int{(d0 + d1) / 2}
	}

	values := make([]int, 0, i1-i0+1)
	step := float64(d1-d0) / float64(i1-i0)
	d := float64(d0)
	for i := i0; i < i1; i++ {
		values = append(values, int(d+0.5))
		d += step
	}
	return append(values, d1)
}

// LerpFloats is LerpInts for a real-valued dependent variable. No rounding is
// applied; the last entry is exactly d1.
func LerpFloats(i0 int, d0 float64, i1 int, d1 float64) []float64 {
	if i0 >= i1 {
		return []float64{(d0 + d1) / 2}
	}

	values := make([]float64, 0, i1-i0+1)
	step := (d1 - d0) / float64(i1-i0)
	d := d0
	for i := i0; i < i1; i++ {
		values = append(values, d)
		d += step
	}
	return append(values, d1)
}

package math3d

import "math"

// Mat3 is a 3x3 matrix stored in row-major order.
//
// Memory layout (indices):
// | 0 1 2 |
// | 3 4 5 |
// | 6 7 8 |
type Mat3 [9]float64

// Identity3 returns the 3x3 identity matrix.
func Identity3() Mat3 {
	return Mat3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Rotation3 returns Rz·Ry·Rx: X is applied first and Z last.
func Rotation3(rx, ry, rz float64) Mat3 {
	cx, sx := math.Cos(rx), math.Sin(rx)
	cy, sy := math.Cos(ry), math.Sin(ry)
	cz, sz := math.Cos(rz), math.Sin(rz)

	x := Mat3{
		1, 0, 0,
		0, cx, -sx,
		0, sx, cx,
	}
	y := Mat3{
		cy, 0, sy,
		0, 1, 0,
		-sy, 0, cy,
	}
	z := Mat3{
		cz, -sz, 0,
		sz, cz, 0,
		0, 0, 1,
	}
	return z.Mul(y.Mul(x))
}

// Mul multiplies two matrices: a * b.
//
//nolint:st1016 // a*b naming convention is clearer for matrix multiplication
func (a Mat3) Mul(b Mat3) Mat3 {
	var m Mat3
	for row := range 3 {
		for col := range 3 {
			var sum float64
			for k := range 3 {
				sum += a[row*3+k] * b[k*3+col]
			}
			m[row*3+col] = sum
		}
	}
	return m
}

// MulVec3 returns m·v.
func (m Mat3) MulVec3(v Vec3) Vec3 {
	return Vec3{
		m[0]*v.X + m[1]*v.Y + m[2]*v.Z,
		m[3]*v.X + m[4]*v.Y + m[5]*v.Z,
		m[6]*v.X + m[7]*v.Y + m[8]*v.Z,
	}
}

// Transpose returns the transposed matrix.
func (m Mat3) Transpose() Mat3 {
	return Mat3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// Get returns the element at (row, col).
func (m Mat3) Get(row, col int) float64 {
	return m[row*3+col]
}

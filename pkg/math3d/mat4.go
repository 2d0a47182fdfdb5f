package math3d

import "math"

// Mat4 is a 4x4 matrix stored in row-major order.
//
// Memory layout (indices):
// | 0  1  2  3  |
// | 4  5  6  7  |
// | 8  9  10 11 |
// | 12 13 14 15 |
//
// For an affine transform:
// | Xx Yx Zx Tx |   X,Y,Z = basis vectors (rotation/scale)
// | Xy Yy Zy Ty |   T = translation
// | Xz Yz Zz Tz |
// | 0  0  0  1  |
type Mat4 [16]float64

// Identity returns the identity matrix.
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Translate creates a translation matrix.
func Translate(v Vec3) Mat4 {
	return Mat4{
		1, 0, 0, v.X,
		0, 1, 0, v.Y,
		0, 0, 1, v.Z,
		0, 0, 0, 1,
	}
}

// Scale creates a nonuniform scaling matrix.
func Scale(v Vec3) Mat4 {
	return Mat4{
		v.X, 0, 0, 0,
		0, v.Y, 0, 0,
		0, 0, v.Z, 0,
		0, 0, 0, 1,
	}
}

// Rotation returns the 4x4 form of Rotation3(rx, ry, rz).
func Rotation(rx, ry, rz float64) Mat4 {
	return Mat4FromMat3(Rotation3(rx, ry, rz))
}

// Mat4FromMat3 embeds m in the upper-left corner of an identity matrix.
func Mat4FromMat3(m Mat3) Mat4 {
	return Mat4{
		m[0], m[1], m[2], 0,
		m[3], m[4], m[5], 0,
		m[6], m[7], m[8], 0,
		0, 0, 0, 1,
	}
}

// Frustum creates an off-axis perspective projection for a camera looking
// down +Z. The near plane maps to NDC z = +1 and the far plane to z = -1, so
// larger depth values are nearer to the camera. Clip-space W equals the view
// space Z.
func Frustum(left, right, bottom, top, near, far float64) Mat4 {
	rl := 1.0 / (right - left)
	tb := 1.0 / (top - bottom)
	fn := 1.0 / (far - near)

	return Mat4{
		2 * near * rl, 0, -(right + left) * rl, 0,
		0, 2 * near * tb, -(top + bottom) * tb, 0,
		0, 0, -(far + near) * fn, 2 * far * near * fn,
		0, 0, 1, 0,
	}
}

// Perspective creates a symmetric Frustum.
// fovX is the horizontal field of view in radians.
// aspect is width/height.
func Perspective(fovX, aspect, near, far float64) Mat4 {
	r := near * math.Tan(fovX/2)
	t := r / aspect
	return Frustum(-r, r, -t, t, near, far)
}

// Viewport maps NDC x and y in [-1, 1] onto a width x height raster with the
// origin in the top-left corner. Z and W pass through.
func Viewport(width, height int) Mat4 {
	hw := float64(width) / 2
	hh := float64(height) / 2
	return Mat4{
		hw, 0, 0, hw,
		0, -hh, 0, hh,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Mul multiplies two matrices: a * b.
//
//nolint:st1016 // a*b naming convention is clearer for matrix multiplication
func (a Mat4) Mul(b Mat4) Mat4 {
	var m Mat4
	for row := range 4 {
		for col := range 4 {
			var sum float64
			for k := range 4 {
				sum += a[row*4+k] * b[k*4+col]
			}
			m[row*4+col] = sum
		}
	}
	return m
}

// MulVec4 returns m·v.
func (m Mat4) MulVec4(v Vec4) Vec4 {
	return Vec4{
		m[0]*v.X + m[1]*v.Y + m[2]*v.Z + m[3]*v.W,
		m[4]*v.X + m[5]*v.Y + m[6]*v.Z + m[7]*v.W,
		m[8]*v.X + m[9]*v.Y + m[10]*v.Z + m[11]*v.W,
		m[12]*v.X + m[13]*v.Y + m[14]*v.Z + m[15]*v.W,
	}
}

// MulPoint transforms v as a point (w=1) and drops the resulting W.
func (m Mat4) MulPoint(v Vec3) Vec3 {
	return m.MulVec4(V4FromV3(v, 1)).Vec3()
}

// Transpose returns the transposed matrix.
func (m Mat4) Transpose() Mat4 {
	return Mat4{
		m[0], m[4], m[8], m[12],
		m[1], m[5], m[9], m[13],
		m[2], m[6], m[10], m[14],
		m[3], m[7], m[11], m[15],
	}
}

// Determinant returns the determinant of the matrix.
func (m Mat4) Determinant() float64 {
	s, c := m.minors()
	return s[0]*c[5] - s[1]*c[4] + s[2]*c[3] + s[3]*c[2] - s[4]*c[1] + s[5]*c[0]
}

// minors returns the 2x2 determinants of the upper two rows (s) and the
// lower two rows (c), shared by Determinant and Inverse.
func (m Mat4) minors() (s, c [6]float64) {
	s = [6]float64{
		m[0]*m[5] - m[4]*m[1],
		m[0]*m[6] - m[4]*m[2],
		m[0]*m[7] - m[4]*m[3],
		m[1]*m[6] - m[5]*m[2],
		m[1]*m[7] - m[5]*m[3],
		m[2]*m[7] - m[6]*m[3],
	}
	c = [6]float64{
		m[8]*m[13] - m[12]*m[9],
		m[8]*m[14] - m[12]*m[10],
		m[8]*m[15] - m[12]*m[11],
		m[9]*m[14] - m[13]*m[10],
		m[9]*m[15] - m[13]*m[11],
		m[10]*m[15] - m[14]*m[11],
	}
	return s, c
}

// Inverse returns the inverse of the matrix.
// Returns identity if the matrix is singular (det=0).
func (m Mat4) Inverse() Mat4 {
	s, c := m.minors()
	det := s[0]*c[5] - s[1]*c[4] + s[2]*c[3] + s[3]*c[2] - s[4]*c[1] + s[5]*c[0]
	if det == 0 {
		return Identity()
	}
	id := 1 / det

	return Mat4{
		(m[5]*c[5] - m[6]*c[4] + m[7]*c[3]) * id,
		(-m[1]*c[5] + m[2]*c[4] - m[3]*c[3]) * id,
		(m[13]*s[5] - m[14]*s[4] + m[15]*s[3]) * id,
		(-m[9]*s[5] + m[10]*s[4] - m[11]*s[3]) * id,

		(-m[4]*c[5] + m[6]*c[2] - m[7]*c[1]) * id,
		(m[0]*c[5] - m[2]*c[2] + m[3]*c[1]) * id,
		(-m[12]*s[5] + m[14]*s[2] - m[15]*s[1]) * id,
		(m[8]*s[5] - m[10]*s[2] + m[11]*s[1]) * id,

		(m[4]*c[4] - m[5]*c[2] + m[7]*c[0]) * id,
		(-m[0]*c[4] + m[1]*c[2] - m[3]*c[0]) * id,
		(m[12]*s[4] - m[13]*s[2] + m[15]*s[0]) * id,
		(-m[8]*s[4] + m[9]*s[2] - m[11]*s[0]) * id,

		(-m[4]*c[3] + m[5]*c[1] - m[6]*c[0]) * id,
		(m[0]*c[3] - m[1]*c[1] + m[2]*c[0]) * id,
		(-m[12]*s[3] + m[13]*s[1] - m[14]*s[0]) * id,
		(m[8]*s[3] - m[9]*s[1] + m[10]*s[0]) * id,
	}
}

// Row returns row i as a Vec4.
func (m Mat4) Row(i int) Vec4 {
	return Vec4{m[i*4], m[i*4+1], m[i*4+2], m[i*4+3]}
}

// Get returns the element at (row, col).
func (m Mat4) Get(row, col int) float64 {
	return m[row*4+col]
}

// Set sets the element at (row, col).
func (m *Mat4) Set(row, col int, val float64) {
	m[row*4+col] = val
}

// Translation extracts the translation component.
func (m Mat4) Translation() Vec3 {
	return Vec3{m[3], m[7], m[11]}
}

package math3d

// Vec4 is a homogeneous coordinate. During clip-space processing W carries
// the perspective depth; after Divide it is 1.
type Vec4 struct {
	X, Y, Z, W float64
}

// V4 is shorthand for Vec4{x, y, z, w}.
func V4(x, y, z, w float64) Vec4 {
	return Vec4{x, y, z, w}
}

// V4FromV3 extends v with w; use 1 for points and 0 for directions.
func V4FromV3(v Vec3, w float64) Vec4 {
	return Vec4{v.X, v.Y, v.Z, w}
}

// Vec3 drops W without dividing.
func (v Vec4) Vec3() Vec3 {
	return Vec3{v.X, v.Y, v.Z}
}

// Component returns X, Y, Z or W for axis 0, 1, 2 or 3.
func (v Vec4) Component(axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	default:
		return v.W
	}
}

// Divide performs the perspective divide, scaling all four components by
// 1/W. ok is false when W is zero; the returned vector then holds whatever
// the IEEE division produced.
func (v Vec4) Divide() (out Vec4, ok bool) {
	w := v.W
	return Vec4{v.X / w, v.Y / w, v.Z / w, v.W / w}, w != 0
}

// Add returns a + b.
func (a Vec4) Add(b Vec4) Vec4 {
	return Vec4{a.X + b.X, a.Y + b.Y, a.Z + b.Z, a.W + b.W}
}

// Sub returns a - b.
func (a Vec4) Sub(b Vec4) Vec4 {
	return Vec4{a.X - b.X, a.Y - b.Y, a.Z - b.Z, a.W - b.W}
}

// Scale multiplies all four components by s.
//
//nolint:st1016 // a,b naming convention is clearer for vector operations
func (a Vec4) Scale(s float64) Vec4 {
	return Vec4{a.X * s, a.Y * s, a.Z * s, a.W * s}
}

// Lerp returns the point a fraction t of the way from a to b. The clipper
// interpolates all four components this way, which is exact in clip space.
func (a Vec4) Lerp(b Vec4, t float64) Vec4 {
	return a.Add(b.Sub(a).Scale(t))
}

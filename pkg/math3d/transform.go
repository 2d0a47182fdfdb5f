package math3d

// Transform is the pose of an object: nonuniform scale, Euler rotation and
// translation. The matrix is rebuilt on every call since the rotation fields
// usually change every frame.
type Transform struct {
	Scale       Vec3 // per-axis scale factors
	Rotation    Vec3 // radians around X, Y and Z
	Translation Vec3
}

// NewTransform returns an unscaled, unrotated transform positioned at (x, y, z).
func NewTransform(x, y, z float64) Transform {
	return Transform{
		Scale:       V3(1, 1, 1),
		Translation: V3(x, y, z),
	}
}

// RotationMatrix returns Rz·Ry·Rx for the current rotation.
func (t Transform) RotationMatrix() Mat3 {
	return Rotation3(t.Rotation.X, t.Rotation.Y, t.Rotation.Z)
}

// Matrix returns T·R·S: scale per axis first, then rotate, then translate.
func (t Transform) Matrix() Mat4 {
	r := t.RotationMatrix()
	s := t.Scale
	return Mat4{
		r[0] * s.X, r[1] * s.Y, r[2] * s.Z, t.Translation.X,
		r[3] * s.X, r[4] * s.Y, r[5] * s.Z, t.Translation.Y,
		r[6] * s.X, r[7] * s.Y, r[8] * s.Z, t.Translation.Z,
		0, 0, 0, 1,
	}
}

// Rotate adds the given angles (radians) to the rotation.
func (t *Transform) Rotate(dx, dy, dz float64) {
	t.Rotation = t.Rotation.Add(V3(dx, dy, dz))
}

// SetScale sets a uniform scale.
func (t *Transform) SetScale(k float64) {
	t.Scale = V3(k, k, k)
}

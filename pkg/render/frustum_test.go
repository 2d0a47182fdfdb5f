package render

import (
	"math"
	"testing"

	"github.com/taigrr/cerulean/pkg/math3d"
)

func TestPlaneDistanceToPoint(t *testing.T) {
	// Plane at Z=0, normal pointing +Z
	plane := Plane{Normal: math3d.V3(0, 0, 1), D: 0}

	tests := []struct {
		name     string
		point    math3d.Vec3
		expected float64
	}{
		{"origin", math3d.V3(0, 0, 0), 0},
		{"in front", math3d.V3(0, 0, 5), 5},
		{"behind", math3d.V3(0, 0, -3), -3},
		{"offset XY", math3d.V3(10, -5, 2), 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dist := plane.DistanceToPoint(tc.point)
			if math.Abs(dist-tc.expected) > 1e-9 {
				t.Errorf("got %v, want %v", dist, tc.expected)
			}
		})
	}
}

func TestPlaneNormalize(t *testing.T) {
	plane := Plane{Normal: math3d.V3(0, 3, 4), D: 10}
	plane.Normalize()

	if math.Abs(plane.Normal.Len()-1.0) > 1e-9 {
		t.Errorf("normalized normal length = %v, want 1.0", plane.Normal.Len())
	}
	if math.Abs(plane.D-2.0) > 1e-9 {
		t.Errorf("D = %v, want 2.0", plane.D)
	}
}

func testFrustum() Frustum {
	cam := NewCamera(math.Pi / 2)
	return NewFrustumFromMatrix(cam.ViewProjectionMatrix(1))
}

func TestFrustumContainsPoint(t *testing.T) {
	f := testFrustum()

	tests := []struct {
		name  string
		point math3d.Vec3
		want  bool
	}{
		{"center", math3d.V3(0, 0, 10), true},
		{"just past near", math3d.V3(0, 0, 1.01), true},
		{"before near", math3d.V3(0, 0, 0.5), false},
		{"behind camera", math3d.V3(0, 0, -10), false},
		{"beyond far", math3d.V3(0, 0, 60), false},
		{"right edge inside", math3d.V3(9.9, 0, 10), true},
		{"right edge outside", math3d.V3(10.1, 0, 10), false},
		{"top outside", math3d.V3(0, 10.1, 10), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.ContainsPoint(tt.point); got != tt.want {
				t.Errorf("ContainsPoint(%v) = %v, want %v", tt.point, got, tt.want)
			}
		})
	}
}

func TestFrustumIntersectAABB(t *testing.T) {
	f := testFrustum()

	tests := []struct {
		name string
		box  math3d.AABB
		want bool
	}{
		{"inside", math3d.AABB{Min: math3d.V3(-1, -1, 9), Max: math3d.V3(1, 1, 11)}, true},
		{"straddles near", math3d.AABB{Min: math3d.V3(-1, -1, -1), Max: math3d.V3(1, 1, 1.5)}, true},
		{"behind", math3d.AABB{Min: math3d.V3(-1, -1, -11), Max: math3d.V3(1, 1, -9)}, false},
		{"far right", math3d.AABB{Min: math3d.V3(30, -1, 9), Max: math3d.V3(32, 1, 11)}, false},
		{"beyond far", math3d.AABB{Min: math3d.V3(-1, -1, 60), Max: math3d.V3(1, 1, 62)}, false},
		{"encloses frustum", math3d.AABB{Min: math3d.V3(-100, -100, -100), Max: math3d.V3(100, 100, 100)}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.IntersectAABB(tt.box); got != tt.want {
				t.Errorf("IntersectAABB = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFrustumInModelSpace(t *testing.T) {
	// Planes extracted from P·V·M test boxes in the model's local space.
	cam := NewCamera(math.Pi / 2)
	model := math3d.NewTransform(0, 0, 10).Matrix()
	f := NewFrustumFromMatrix(cam.ViewProjectionMatrix(1).Mul(model))

	unit := math3d.AABB{Min: math3d.V3(-1, -1, -1), Max: math3d.V3(1, 1, 1)}
	if !f.IntersectAABB(unit) {
		t.Error("cube at z=10 should be visible")
	}

	behind := math3d.NewTransform(0, 0, -10).Matrix()
	f = NewFrustumFromMatrix(cam.ViewProjectionMatrix(1).Mul(behind))
	if f.IntersectAABB(unit) {
		t.Error("cube behind the camera should be culled")
	}
}

func BenchmarkFrustumIntersectAABB(b *testing.B) {
	f := testFrustum()
	box := math3d.AABB{Min: math3d.V3(-1, -1, 9), Max: math3d.V3(1, 1, 11)}

	for b.Loop() {
		_ = f.IntersectAABB(box)
	}
}

func BenchmarkFrustumExtraction(b *testing.B) {
	m := NewCamera(1.47079632679).ViewProjectionMatrix(1066.0 / 800.0)

	for b.Loop() {
		_ = NewFrustumFromMatrix(m)
	}
}

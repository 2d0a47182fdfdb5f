package models

import (
	"errors"
	"testing"

	"github.com/taigrr/cerulean/pkg/math3d"
)

func TestNewModelValidatesIndices(t *testing.T) {
	verts := []math3d.Vec3{{}, {X: 1}, {Y: 1}}

	tests := []struct {
		name    string
		tris    []Triangle
		wantErr bool
	}{
		{"valid", []Triangle{{V: [3]int{0, 1, 2}}}, false},
		{"empty", nil, false},
		{"too large", []Triangle{{V: [3]int{0, 1, 3}}}, true},
		{"negative", []Triangle{{V: [3]int{-1, 1, 2}}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewModel("m", verts, tt.tris)
			if tt.wantErr {
				if !errors.Is(err, ErrIndexOutOfRange) {
					t.Errorf("err = %v, want ErrIndexOutOfRange", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if m.Bounds.Max != math3d.V3(1, 1, 0) {
				t.Errorf("Bounds.Max = %v", m.Bounds.Max)
			}
		})
	}
}

func TestCube(t *testing.T) {
	c := NewCube()
	if c.VertexCount() != 8 || c.TriangleCount() != 12 {
		t.Fatalf("cube has %d vertices, %d triangles", c.VertexCount(), c.TriangleCount())
	}
	if c.Bounds.Min != math3d.V3(-1, -1, -1) || c.Bounds.Max != math3d.V3(1, 1, 1) {
		t.Errorf("cube bounds = %+v", c.Bounds)
	}

	colors := map[uint32]int{}
	for i, tri := range c.Triangles {
		if tri.V[0] == tri.V[1] || tri.V[1] == tri.V[2] || tri.V[0] == tri.V[2] {
			t.Errorf("triangle %d is degenerate: %v", i, tri.V)
		}
		colors[tri.Color]++
	}
	for _, col := range []uint32{CubeRed, CubeGreen, CubeBlue, CubeYellow, CubePurple, CubeCyan} {
		if colors[col] != 2 {
			t.Errorf("color %06x used by %d triangles, want 2", col, colors[col])
		}
	}

	// Each face's two triangles lie on one plane of the cube.
	for i := 0; i < len(c.Triangles); i += 2 {
		shared := -1
		for axis := range 3 {
			coord := func(v int) float64 {
				return [3]float64{c.Vertices[v].X, c.Vertices[v].Y, c.Vertices[v].Z}[axis]
			}
			first := coord(c.Triangles[i].V[0])
			same := true
			for _, tri := range c.Triangles[i : i+2] {
				for _, v := range tri.V {
					if coord(v) != first {
						same = false
					}
				}
			}
			if same {
				shared = axis
			}
		}
		if shared < 0 {
			t.Errorf("face %d triangles are not coplanar on a cube face", i/2)
		}
	}
}

func TestCubeInstancesShareModel(t *testing.T) {
	a := NewCubeInstance(0, 0, 10)
	b := NewCubeInstance(1, 2, 3)
	if a.Model != b.Model {
		t.Error("cube instances should share one model")
	}
	if b.Transform.Translation != math3d.V3(1, 2, 3) {
		t.Errorf("translation = %v", b.Transform.Translation)
	}
	if b.Transform.Scale != math3d.V3(1, 1, 1) {
		t.Errorf("scale = %v", b.Transform.Scale)
	}
}

func TestCubeRow(t *testing.T) {
	row := CubeRow(3, 12)
	if len(row) != 3 {
		t.Fatalf("len = %d", len(row))
	}
	if row[0].Transform.Translation.X != -row[2].Transform.Translation.X {
		t.Errorf("row not centered: %v .. %v", row[0].Transform.Translation, row[2].Transform.Translation)
	}
	if row[1].Transform.Translation != math3d.V3(0, 0, 12) {
		t.Errorf("middle cube at %v", row[1].Transform.Translation)
	}
	if len(CubeRow(0, 10)) != 0 || len(CubeRow(-2, 10)) != 0 {
		t.Error("non-positive count should give no cubes")
	}

	var s Scene
	s.Add(row...)
	if s.TriangleCount() != 36 {
		t.Errorf("scene triangles = %d, want 36", s.TriangleCount())
	}
}

// Package models holds the scene data the renderer consumes: shared triangle
// meshes, posed instances of them, and builders for cubes and glTF files.
package models

import (
	"errors"
	"fmt"

	"github.com/taigrr/cerulean/pkg/math3d"
)

// ErrIndexOutOfRange is returned by NewModel when a triangle references a
// vertex that does not exist.
var ErrIndexOutOfRange = errors.New("vertex index out of range")

// Triangle is three vertex indices plus a packed 0x00RRGGBB color.
type Triangle struct {
	V     [3]int
	Color uint32
}

// Model is a triangle mesh in local space. Models are read-only once built
// and may be shared by any number of instances.
type Model struct {
	Name      string
	Vertices  []math3d.Vec3
	Triangles []Triangle
	Bounds    math3d.AABB // local-space bounding box
}

// NewModel validates the triangle indices and computes the bounding box.
func NewModel(name string, vertices []math3d.Vec3, triangles []Triangle) (*Model, error) {
	for i, t := range triangles {
		for _, v := range t.V {
			if v < 0 || v >= len(vertices) {
				return nil, fmt.Errorf("model %q: triangle %d: index %d of %d vertices: %w",
					name, i, v, len(vertices), ErrIndexOutOfRange)
			}
		}
	}
	return newModel(name, vertices, triangles), nil
}

func newModel(name string, vertices []math3d.Vec3, triangles []Triangle) *Model {
	return &Model{
		Name:      name,
		Vertices:  vertices,
		Triangles: triangles,
		Bounds:    math3d.BoundsOf(vertices),
	}
}

// TriangleCount returns the number of triangles.
func (m *Model) TriangleCount() int {
	return len(m.Triangles)
}

// VertexCount returns the number of vertices.
func (m *Model) VertexCount() int {
	return len(m.Vertices)
}

// Normalized returns a copy of the model centered at the origin and uniformly
// scaled so its largest dimension is size.
func (m *Model) Normalized(size float64) *Model {
	center := m.Bounds.Center()
	extent := m.Bounds.Size().MaxComponent()
	k := 1.0
	if extent > 0 {
		k = size / extent
	}

	vertices := make([]math3d.Vec3, len(m.Vertices))
	for i, v := range m.Vertices {
		vertices[i] = v.Sub(center).Scale(k)
	}
	return newModel(m.Name, vertices, m.Triangles)
}

// Instance places a shared Model in the world.
type Instance struct {
	Model     *Model
	Transform math3d.Transform
}

// NewInstance creates an unscaled, unrotated instance of m at (x, y, z).
func NewInstance(m *Model, x, y, z float64) *Instance {
	return &Instance{
		Model:     m,
		Transform: math3d.NewTransform(x, y, z),
	}
}

// Scene is a flat list of instances. Draw order does not affect the image.
type Scene struct {
	Instances []*Instance
}

// Add appends instances to the scene.
func (s *Scene) Add(instances ...*Instance) {
	s.Instances = append(s.Instances, instances...)
}

// TriangleCount returns the total number of triangles across all instances.
func (s *Scene) TriangleCount() int {
	n := 0
	for _, inst := range s.Instances {
		n += inst.Model.TriangleCount()
	}
	return n
}

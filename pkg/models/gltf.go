package models

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"path/filepath"

	"github.com/qmuntal/gltf"
	"github.com/taigrr/cerulean/internal/logging"
	"github.com/taigrr/cerulean/pkg/math3d"
)

// DefaultGLTFColor is used for primitives without a material base color.
const DefaultGLTFColor uint32 = 0x808080

// GLTFSize is the edge of the cube a loaded model is scaled to fit.
const GLTFSize = 2.0

// LoadGLTF loads every triangle primitive of a .gltf or .glb file into one
// Model, colored by material base color and normalized to fit a GLTFSize
// cube centered at the origin.
func LoadGLTF(path string) (*Model, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf: %w", err)
	}

	m, err := FromGLTF(filepath.Base(path), doc)
	if err != nil {
		return nil, err
	}

	logging.Logger().Info("gltf loaded",
		"path", path, "vertices", m.VertexCount(), "triangles", m.TriangleCount())
	return m, nil
}

// FromGLTF converts a decoded glTF document into a normalized Model.
func FromGLTF(name string, doc *gltf.Document) (*Model, error) {
	var (
		vertices  []math3d.Vec3
		triangles []Triangle
	)
	for _, mesh := range doc.Meshes {
		for _, prim := range mesh.Primitives {
			if prim.Mode != gltf.PrimitiveTriangles && prim.Mode != 0 {
				// Skip lines and points
				continue
			}
			posIdx, ok := prim.Attributes[gltf.POSITION]
			if !ok {
				continue
			}

			positions, err := readVec3Accessor(doc, posIdx)
			if err != nil {
				return nil, fmt.Errorf("mesh %q: read positions: %w", mesh.Name, err)
			}

			var indices []int
			if prim.Indices != nil {
				indices, err = readIndices(doc, *prim.Indices)
				if err != nil {
					return nil, fmt.Errorf("mesh %q: read indices: %w", mesh.Name, err)
				}
			} else {
				indices = make([]int, len(positions))
				for i := range indices {
					indices[i] = i
				}
			}

			color := materialColor(doc, prim.Material)
			base := len(vertices)
			vertices = append(vertices, positions...)
			for i := 0; i+2 < len(indices); i += 3 {
				triangles = append(triangles, Triangle{
					V:     [3]int{base + indices[i], base + indices[i+1], base + indices[i+2]},
					Color: color,
				})
			}
		}
	}

	if len(triangles) == 0 {
		return nil, fmt.Errorf("gltf %q: %w", name, ErrNoTriangles)
	}

	m, err := NewModel(name, vertices, triangles)
	if err != nil {
		return nil, err
	}
	return m.Normalized(GLTFSize), nil
}

// ErrNoTriangles is returned when a glTF document holds no triangle primitives.
var ErrNoTriangles = errors.New("no triangle primitives")

// materialColor packs the base color factor of material idx, or returns
// DefaultGLTFColor.
func materialColor(doc *gltf.Document, idx *int) uint32 {
	if idx == nil || *idx < 0 || *idx >= len(doc.Materials) {
		return DefaultGLTFColor
	}
	pbr := doc.Materials[*idx].PBRMetallicRoughness
	if pbr == nil || pbr.BaseColorFactor == nil {
		return DefaultGLTFColor
	}
	f := pbr.BaseColorFactor
	return uint32(unitToByte(f[0]))<<16 | uint32(unitToByte(f[1]))<<8 | uint32(unitToByte(f[2]))
}

func unitToByte(v float64) uint8 {
	return uint8(math.Round(min(max(v, 0), 1) * 255))
}

// readVec3Accessor reads float VEC3 data from a glTF accessor.
func readVec3Accessor(doc *gltf.Document, accessorIdx int) ([]math3d.Vec3, error) {
	if accessorIdx < 0 || accessorIdx >= len(doc.Accessors) {
		return nil, fmt.Errorf("accessor %d out of range", accessorIdx)
	}
	accessor := doc.Accessors[accessorIdx]
	if accessor.Type != gltf.AccessorVec3 || accessor.ComponentType != gltf.ComponentFloat {
		return nil, fmt.Errorf("expected float VEC3, got %v/%v", accessor.Type, accessor.ComponentType)
	}

	data, stride, err := accessorBytes(doc, accessor, 12)
	if err != nil {
		return nil, err
	}

	result := make([]math3d.Vec3, accessor.Count)
	for i := range result {
		b := data[i*stride:]
		result[i] = math3d.V3(readFloat32(b), readFloat32(b[4:]), readFloat32(b[8:]))
	}
	return result, nil
}

// readIndices reads unsigned scalar index data from a glTF accessor.
func readIndices(doc *gltf.Document, accessorIdx int) ([]int, error) {
	if accessorIdx < 0 || accessorIdx >= len(doc.Accessors) {
		return nil, fmt.Errorf("accessor %d out of range", accessorIdx)
	}
	accessor := doc.Accessors[accessorIdx]
	if accessor.Type != gltf.AccessorScalar {
		return nil, fmt.Errorf("expected SCALAR indices, got %v", accessor.Type)
	}

	var size int
	switch accessor.ComponentType {
	case gltf.ComponentUbyte:
		size = 1
	case gltf.ComponentUshort:
		size = 2
	case gltf.ComponentUint:
		size = 4
	default:
		return nil, fmt.Errorf("unexpected index type: %v", accessor.ComponentType)
	}

	data, stride, err := accessorBytes(doc, accessor, size)
	if err != nil {
		return nil, err
	}

	result := make([]int, accessor.Count)
	for i := range result {
		b := data[i*stride:]
		switch size {
		case 1:
			result[i] = int(b[0])
		case 2:
			result[i] = int(binary.LittleEndian.Uint16(b))
		default:
			result[i] = int(binary.LittleEndian.Uint32(b))
		}
	}
	return result, nil
}

// accessorBytes returns the buffer bytes starting at the accessor's first
// element and the element stride, checking that every element fits.
func accessorBytes(doc *gltf.Document, accessor *gltf.Accessor, elemSize int) ([]byte, int, error) {
	if accessor.BufferView == nil {
		return nil, 0, fmt.Errorf("accessor has no buffer view")
	}
	if *accessor.BufferView < 0 || *accessor.BufferView >= len(doc.BufferViews) {
		return nil, 0, fmt.Errorf("buffer view %d out of range", *accessor.BufferView)
	}
	view := doc.BufferViews[*accessor.BufferView]
	if view.Buffer < 0 || view.Buffer >= len(doc.Buffers) {
		return nil, 0, fmt.Errorf("buffer %d out of range", view.Buffer)
	}
	buf := doc.Buffers[view.Buffer].Data
	if buf == nil {
		return nil, 0, fmt.Errorf("buffer has no data")
	}

	stride := view.ByteStride
	if stride == 0 {
		stride = elemSize
	}
	start := view.ByteOffset + accessor.ByteOffset
	if accessor.Count == 0 {
		return nil, stride, nil
	}
	end := start + (accessor.Count-1)*stride + elemSize
	if start < 0 || end > len(buf) {
		return nil, 0, fmt.Errorf("accessor data [%d:%d] exceeds buffer of %d bytes", start, end, len(buf))
	}
	return buf[start:end], stride, nil
}

func readFloat32(b []byte) float64 {
	return float64(math.Float32frombits(binary.LittleEndian.Uint32(b)))
}

package models

import (
	"sync"

	"github.com/taigrr/cerulean/pkg/math3d"
)

// Cube face colors.
const (
	CubeRed    uint32 = 0xff0000
	CubeGreen  uint32 = 0x00ff00
	CubeBlue   uint32 = 0x0000ff
	CubeYellow uint32 = 0xffff00
	CubePurple uint32 = 0xa020f0
	CubeCyan   uint32 = 0x00ffff
)

// NewCube returns a cube spanning [-1, 1] on every axis, two triangles per
// face, each face its own color. The +Z face is red and the -Z face blue.
func NewCube() *Model {
	vertices := []math3d.Vec3{
		{X: 1, Y: 1, Z: 1},
		{X: -1, Y: 1, Z: 1},
		{X: -1, Y: -1, Z: 1},
		{X: 1, Y: -1, Z: 1},
		{X: 1, Y: 1, Z: -1},
		{X: -1, Y: 1, Z: -1},
		{X: -1, Y: -1, Z: -1},
		{X: 1, Y: -1, Z: -1},
	}
	triangles := []Triangle{
		{V: [3]int{0, 1, 2}, Color: CubeRed},
		{V: [3]int{0, 2, 3}, Color: CubeRed},
		{V: [3]int{4, 0, 3}, Color: CubeGreen},
		{V: [3]int{4, 3, 7}, Color: CubeGreen},
		{V: [3]int{5, 4, 7}, Color: CubeBlue},
		{V: [3]int{5, 7, 6}, Color: CubeBlue},
		{V: [3]int{1, 5, 6}, Color: CubeYellow},
		{V: [3]int{1, 6, 2}, Color: CubeYellow},
		{V: [3]int{4, 5, 1}, Color: CubePurple},
		{V: [3]int{4, 1, 0}, Color: CubePurple},
		{V: [3]int{2, 6, 7}, Color: CubeCyan},
		{V: [3]int{2, 7, 3}, Color: CubeCyan},
	}
	return newModel("cube", vertices, triangles)
}

var sharedCube = sync.OnceValue(NewCube)

// NewCubeInstance returns an instance of a shared cube model at (x, y, z).
func NewCubeInstance(x, y, z float64) *Instance {
	return NewInstance(sharedCube(), x, y, z)
}

// CubeRow returns n cube instances spaced along X and centered on x = 0, all
// at depth z.
func CubeRow(n int, z float64) []*Instance {
	const spacing = 3.0
	out := make([]*Instance, 0, max(n, 0))
	start := -spacing * float64(n-1) / 2
	for i := range max(n, 0) {
		out = append(out, NewCubeInstance(start+spacing*float64(i), 0, z))
	}
	return out
}

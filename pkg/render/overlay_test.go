package render

import (
	"math"
	"testing"

	"github.com/taigrr/cerulean/pkg/math3d"
	"github.com/taigrr/cerulean/pkg/models"
)

func nearVec4(a, b math3d.Vec4) bool {
	const eps = 1e-9
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps &&
		math.Abs(a.Z-b.Z) < eps && math.Abs(a.W-b.W) < eps
}

func TestClipLine(t *testing.T) {
	tests := []struct {
		name   string
		a, b   math3d.Vec4
		wantOK bool
		wantA  math3d.Vec4
		wantB  math3d.Vec4
	}{
		{
			name: "inside",
			a:    math3d.V4(0, 0, 5, 10), b: math3d.V4(1, 1, 5, 10),
			wantOK: true,
			wantA:  math3d.V4(0, 0, 5, 10), wantB: math3d.V4(1, 1, 5, 10),
		},
		{
			name: "outside one plane",
			a:    math3d.V4(2, 0, 0, 1), b: math3d.V4(3, 0, 0, 1),
		},
		{
			name: "crosses right plane",
			a:    math3d.V4(0, 0, 0, 1), b: math3d.V4(2, 0, 0, 1),
			wantOK: true,
			wantA:  math3d.V4(0, 0, 0, 1), wantB: math3d.V4(1, 0, 0, 1),
		},
		{
			name: "crosses both sides",
			a:    math3d.V4(-3, 0, 0, 1), b: math3d.V4(3, 0, 0, 1),
			wantOK: true,
			wantA:  math3d.V4(-1, 0, 0, 1), wantB: math3d.V4(1, 0, 0, 1),
		},
		{
			// Each endpoint is inside one of the planes, but the segment
			// passes beyond the corner.
			name: "misses corner",
			a:    math3d.V4(3, 0, 0, 1), b: math3d.V4(0, 3, 0, 1),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b, ok := ClipLine(tt.a, tt.b)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if !nearVec4(a, tt.wantA) || !nearVec4(b, tt.wantB) {
				t.Errorf("got %v-%v, want %v-%v", a, b, tt.wantA, tt.wantB)
			}
			if !insideVolume(a) || !insideVolume(b) {
				t.Errorf("clipped endpoints %v-%v leave the volume", a, b)
			}
		})
	}
}

func TestDrawAxes(t *testing.T) {
	r := NewRenderer(NewFramebuffer(320, 240))
	cam := NewCamera(testFOV)
	cam.SetPosition(math3d.V3(0, 0, -10))

	r.DrawAxes(cam, 3)
	fb := r.Framebuffer()

	if got := fb.GetPixel(180, 120); got != ColorRed {
		t.Errorf("x axis pixel = %06x, want red", uint32(got))
	}
	if got := fb.GetPixel(160, 100); got != ColorGreen {
		t.Errorf("y axis pixel = %06x, want green", uint32(got))
	}
	if got := fb.GetPixel(140, 120); got != ColorBlack {
		t.Errorf("pixel left of origin = %06x, want background", uint32(got))
	}
}

func TestDrawLine3DBehindCamera(t *testing.T) {
	r := NewRenderer(NewFramebuffer(64, 64))
	r.DrawLine3D(NewCamera(testFOV), math3d.V3(-1, 0, -5), math3d.V3(1, 0, -5), ColorWhite)
	if n := countColor(r.Framebuffer(), ColorWhite); n != 0 {
		t.Errorf("%d pixels drawn for a line behind the camera", n)
	}
}

func TestRenderShowBounds(t *testing.T) {
	setup := func(r *Renderer) {
		r.ShowBounds = true
		r.BoundsColor = ColorWhite
	}

	r := renderScene(t, 320, 240, cubeScene(models.NewCubeInstance(0, 0, 10)), setup)
	if countColor(r.Framebuffer(), ColorWhite) == 0 {
		t.Error("no bounding box pixels drawn")
	}

	r = renderScene(t, 320, 240, cubeScene(models.NewCubeInstance(100, 0, 10)), setup)
	if n := countColor(r.Framebuffer(), ColorWhite); n != 0 {
		t.Errorf("%d bounding box pixels drawn for a culled instance", n)
	}
}

func TestClipLineNaN(t *testing.T) {
	if _, _, ok := ClipLine(math3d.V4(math.NaN(), 0, 0, 1), math3d.V4(0, 0, 0, 1)); ok {
		t.Error("segment with a NaN endpoint reported visible")
	}
}

package render

import "testing"

func TestDepthBuffer(t *testing.T) {
	d := NewDepthBuffer(5, 4)
	for i, v := range d.Values {
		if v != DepthCleared {
			t.Fatalf("entry %d = %v after allocation", i, v)
		}
	}

	if !d.Test(2, 1, -0.5) {
		t.Error("first write should pass")
	}
	if d.Test(2, 1, -0.7) {
		t.Error("farther depth should fail")
	}
	if d.Test(2, 1, -0.5) {
		t.Error("equal depth should fail")
	}
	if !d.Test(2, 1, 0.9) {
		t.Error("nearer depth should pass")
	}
	if got := d.At(2, 1); got != 0.9 {
		t.Errorf("At = %v, want 0.9", got)
	}

	if d.Test(-1, 0, 1) || d.Test(5, 0, 1) || d.Test(0, 4, 1) {
		t.Error("out of range Test should fail")
	}
	if d.At(9, 9) != DepthCleared {
		t.Error("out of range At should return DepthCleared")
	}

	d.Reset()
	if d.At(2, 1) != DepthCleared {
		t.Error("Reset did not clear")
	}
}

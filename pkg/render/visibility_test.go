package render

import (
	"testing"

	"github.com/taigrr/facet/pkg/math3d"
)

func TestAreAllVisible(t *testing.T) {
	const hw, hh = 320.0, 240.0
	tests := []struct {
		name  string
		verts [3]math3d.Vec2
		want  bool
	}{
		{"inside", [3]math3d.Vec2{{X: 10, Y: 10}, {X: 100, Y: 200}, {X: 300, Y: 50}}, true},
		{"x on half width", [3]math3d.Vec2{{X: 10, Y: 10}, {X: hw, Y: 200}, {X: 300, Y: 50}}, false},
		{"y on half height", [3]math3d.Vec2{{X: 10, Y: 10}, {X: 100, Y: 200}, {X: 300, Y: hh}}, false},
		{"x on half height", [3]math3d.Vec2{{X: hh, Y: 10}, {X: 100, Y: 200}, {X: 300, Y: 50}}, false},
		{"y on half width", [3]math3d.Vec2{{X: 10, Y: hw}, {X: 100, Y: 200}, {X: 300, Y: 50}}, false},
		{"near miss", [3]math3d.Vec2{{X: hw + 1e-9, Y: 10}, {X: 100, Y: hh - 1e-9}, {X: 300, Y: 50}}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := AreAllVisible(tc.verts, hw, hh); got != tc.want {
				t.Errorf("AreAllVisible(%v) = %v, want %v", tc.verts, got, tc.want)
			}
		})
	}
}

func TestFaceVisible(t *testing.T) {
	tests := []struct {
		name   string
		states [3]ClipState
		want   bool
	}{
		{"none", [3]ClipState{}, true},
		{"z only", [3]ClipState{ClipZ, ClipZ, 0}, true},
		{"x", [3]ClipState{0, ClipX, 0}, false},
		{"y", [3]ClipState{0, 0, ClipY}, false},
		{"x and z", [3]ClipState{ClipX | ClipZ, 0, 0}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := FaceVisible(tc.states); got != tc.want {
				t.Errorf("FaceVisible(%v) = %v, want %v", tc.states, got, tc.want)
			}
		})
	}
}

func TestParseVisibilityMode(t *testing.T) {
	tests := []struct {
		in      string
		want    VisibilityMode
		wantErr bool
	}{
		{"tagged", VisibilityTagged, false},
		{"", VisibilityTagged, false},
		{"sentinel", VisibilitySentinel, false},
		{"exact", VisibilityTagged, true},
	}
	for _, tc := range tests {
		got, err := ParseVisibilityMode(tc.in)
		if (err != nil) != tc.wantErr || got != tc.want {
			t.Errorf("ParseVisibilityMode(%q) = %v, %v", tc.in, got, err)
		}
		if err == nil && tc.in != "" && got.String() != tc.in {
			t.Errorf("String() = %q, want %q", got.String(), tc.in)
		}
	}
}

func BenchmarkAreAllVisible(b *testing.B) {
	verts := [3]math3d.Vec2{{X: 10, Y: 10}, {X: 100, Y: 200}, {X: 300, Y: 50}}
	for b.Loop() {
		_ = AreAllVisible(verts, 320, 240)
	}
}

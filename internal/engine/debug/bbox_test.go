package debug

import (
	"testing"

	"github.com/Faultbox/heightview/internal/engine/terrain"
)

func TestBoundsWireframe(t *testing.T) {
	b := terrain.Bounds{Min: [3]float32{-1, 0, -2}, Max: [3]float32{1, 0.5, 2}}

	verts := BoundsWireframe(b, 0)
	if len(verts) != BoundsWireframeVertexCount*3 {
		t.Fatalf("len = %d, want %d", len(verts), BoundsWireframeVertexCount*3)
	}

	// Every corner appears and every coordinate sits on the box
	corners := map[[3]float32]int{}
	for i := 0; i < len(verts); i += 3 {
		v := [3]float32{verts[i], verts[i+1], verts[i+2]}
		for axis := range 3 {
			if v[axis] != b.Min[axis] && v[axis] != b.Max[axis] {
				t.Fatalf("vertex %v is not a box corner", v)
			}
		}
		corners[v]++
	}
	if len(corners) != 8 {
		t.Errorf("distinct corners = %d, want 8", len(corners))
	}
	for c, n := range corners {
		if n != 3 {
			t.Errorf("corner %v used by %d edges, want 3", c, n)
		}
	}
}

func TestBoundsWireframePadding(t *testing.T) {
	b := terrain.Bounds{Max: [3]float32{1, 1, 1}}

	verts := BoundsWireframe(b, 0.5)
	if verts[0] != -0.5 || verts[3] != 1.5 {
		t.Errorf("padded edge = %v..%v, want -0.5..1.5", verts[0], verts[3])
	}
}

package debug

import "github.com/Faultbox/heightview/internal/engine/terrain"

// BoundsWireframeVertexCount is the number of vertices for a bounds wireframe (12 edges × 2).
const BoundsWireframeVertexCount = 24

// BoundsPadding keeps the wireframe off a flat mesh surface.
const BoundsPadding float32 = 0.01

// BoundsWireframe creates line vertices for the edges of b expanded by
// padding on all sides. Format: [x, y, z] per vertex, GL_LINES order.
func BoundsWireframe(b terrain.Bounds, padding float32) []float32 {
	minX, minY, minZ := b.Min[0]-padding, b.Min[1]-padding, b.Min[2]-padding
	maxX, maxY, maxZ := b.Max[0]+padding, b.Max[1]+padding, b.Max[2]+padding

	return []float32{
		// Bottom face
		minX, minY, minZ, maxX, minY, minZ,
		maxX, minY, minZ, maxX, minY, maxZ,
		maxX, minY, maxZ, minX, minY, maxZ,
		minX, minY, maxZ, minX, minY, minZ,
		// Top face
		minX, maxY, minZ, maxX, maxY, minZ,
		maxX, maxY, minZ, maxX, maxY, maxZ,
		maxX, maxY, maxZ, minX, maxY, maxZ,
		minX, maxY, maxZ, minX, maxY, minZ,
		// Vertical edges
		minX, minY, minZ, minX, maxY, minZ,
		maxX, minY, minZ, maxX, maxY, minZ,
		maxX, minY, maxZ, maxX, maxY, maxZ,
		minX, minY, maxZ, minX, maxY, maxZ,
	}
}

package terrain

import (
	"github.com/Faultbox/heightview/pkg/math"
)

// VerticesPerCell is the number of vertices emitted for each grid cell (two triangles).
const VerticesPerCell = 6

// BuildMesh expands a heightmap into a triangle list.
//
// Grid columns map to X and rows map to Z, both scaled by
// worldSize/max(width, height) and offset by half the grid size, so the
// grid spans [-W/2, W/2-1] cells on X (rows likewise). The sample value
// is used as Y without scaling; height exaggeration is a model transform.
//
// Each cell emits (topLeft, bottomLeft, topRight) followed by
// (topRight, bottomLeft, bottomRight). Culling is off in the renderer, but
// callers and fixtures depend on this order.
func BuildMesh(hm *Heightmap, worldSize float32) *Mesh {
	cellsX := hm.Width - 1
	cellsZ := hm.Height - 1
	if cellsX < 1 || cellsZ < 1 {
		return &Mesh{}
	}

	scale := worldSize / float32(max(hm.Width, hm.Height))
	centerX := float32(hm.Width) / 2
	centerZ := float32(hm.Height) / 2

	positions := make([]float32, 0, cellsX*cellsZ*VerticesPerCell*3)
	bounds := Bounds{
		Min: [3]float32{1e10, 1e10, 1e10},
		Max: [3]float32{-1e10, -1e10, -1e10},
	}

	for row := range cellsZ {
		z0 := (float32(row) - centerZ) * scale
		z1 := (float32(row+1) - centerZ) * scale

		for col := range cellsX {
			x0 := (float32(col) - centerX) * scale
			x1 := (float32(col+1) - centerX) * scale

			topLeft := hm.At(row, col)
			topRight := hm.At(row, col+1)
			bottomLeft := hm.At(row+1, col)
			bottomRight := hm.At(row+1, col+1)

			positions = append(positions,
				// Triangle A: top-left, bottom-left, top-right
				x0, topLeft, z0,
				x0, bottomLeft, z1,
				x1, topRight, z0,
				// Triangle B: top-right, bottom-left, bottom-right
				x1, topRight, z0,
				x0, bottomLeft, z1,
				x1, bottomRight, z1,
			)

			updateBounds(&bounds, [3]float32{x0, min(topLeft, topRight, bottomLeft, bottomRight), z0})
			updateBounds(&bounds, [3]float32{x1, max(topLeft, topRight, bottomLeft, bottomRight), z1})
		}
	}

	return &Mesh{
		Positions:   positions,
		VertexCount: int32(len(positions) / 3),
		Bounds:      bounds,
	}
}

// DefaultBox returns the placeholder shown before any image is loaded: an
// open-topped box of five unit faces (front, three Y rotations of it, and a
// base rotated about X).
func DefaultBox() *Mesh {
	front := [6]math.Vec3{
		{X: -1, Y: -1, Z: 1},
		{X: -1, Y: 1, Z: 1},
		{X: 1, Y: -1, Z: 1},

		{X: 1, Y: -1, Z: 1},
		{X: -1, Y: 1, Z: 1},
		{X: 1, Y: 1, Z: 1},
	}

	faces := []math.Mat4{math.Identity()}
	for i := 1; i <= 3; i++ {
		faces = append(faces, math.RotateY(float32(i)*math.HalfPi))
	}
	faces = append(faces, math.RotateX(math.HalfPi))

	positions := make([]float32, 0, len(faces)*len(front)*3)
	bounds := Bounds{
		Min: [3]float32{1e10, 1e10, 1e10},
		Max: [3]float32{-1e10, -1e10, -1e10},
	}
	for _, m := range faces {
		for _, v := range front {
			p := m.TransformVec3(v)
			positions = append(positions, p.X, p.Y, p.Z)
			updateBounds(&bounds, [3]float32{p.X, p.Y, p.Z})
		}
	}

	return &Mesh{
		Positions:   positions,
		VertexCount: int32(len(positions) / 3),
		Bounds:      bounds,
	}
}

func updateBounds(b *Bounds, p [3]float32) {
	for i := range 3 {
		b.Min[i] = min(b.Min[i], p[i])
		b.Max[i] = max(b.Max[i], p[i])
	}
}

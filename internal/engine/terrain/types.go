// Package terrain turns images into heightmaps and heightmaps into triangle meshes.
package terrain

import "errors"

// ErrInvalidInput is returned when a file is missing or cannot be decoded as an image.
var ErrInvalidInput = errors.New("invalid input")

// DefaultWorldSize is the world-space extent of the longest heightmap side.
const DefaultWorldSize float32 = 5

// Heightmap is a row-major grid of luminance values in [0,1].
type Heightmap struct {
	Width  int       // Number of columns
	Height int       // Number of rows
	Data   []float32 // Width*Height samples, row by row
}

// Mesh is a non-indexed triangle list ready for GPU upload.
// Positions holds x, y, z triples; every three vertices form one triangle.
type Mesh struct {
	Positions   []float32
	VertexCount int32
	Bounds      Bounds
}

// Bounds holds the axis-aligned bounding box of a mesh.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// Vertex returns the i-th position of the mesh.
func (m *Mesh) Vertex(i int) [3]float32 {
	return [3]float32{m.Positions[i*3], m.Positions[i*3+1], m.Positions[i*3+2]}
}

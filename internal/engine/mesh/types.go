// Package mesh turns imported OBJ geometry into GPU-ready vertex data.
package mesh

import "unsafe"

// Vertex is the interleaved layout uploaded for imported models.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	TexCoord [2]float32
}

// Attribute byte offsets and stride within Vertex.
const (
	PositionOffset = 0
	NormalOffset   = 3 * 4
	TexCoordOffset = 6 * 4
	VertexStride   = int32(unsafe.Sizeof(Vertex{}))
)

// Mesh holds interleaved vertices plus the index buffer that draws them.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
	Bounds   Bounds
}

// Bounds holds the axis-aligned bounding box of a mesh.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// Center returns the midpoint of the box.
func (b Bounds) Center() [3]float32 {
	return [3]float32{
		(b.Min[0] + b.Max[0]) / 2,
		(b.Min[1] + b.Max[1]) / 2,
		(b.Min[2] + b.Max[2]) / 2,
	}
}

// Size returns the extent along each axis.
func (b Bounds) Size() [3]float32 {
	return [3]float32{b.Max[0] - b.Min[0], b.Max[1] - b.Min[1], b.Max[2] - b.Min[2]}
}

// Options controls post-processing in FromOBJ.
type Options struct {
	// GenerateNormals replaces zero normals with the flat face normal.
	GenerateNormals bool
	// Center moves the bounding box center to the origin.
	Center bool
}

// Package geometry holds the static vertex tables for built-in primitives.
package geometry

// CubeVertexCount is the number of vertices in every cube table (6 faces × 2 triangles × 3).
const CubeVertexCount = 36

// CubePositions is a ±1 cube as a plain triangle list, xyz per vertex.
// Used for the skybox and as the particle base mesh.
var CubePositions = []float32{
	// back
	1, -1, -1, -1, -1, -1, -1, 1, -1, -1, 1, -1, 1, 1, -1, 1, -1, -1,
	// right
	1, 1, -1, 1, -1, 1, 1, -1, -1, 1, 1, -1, 1, 1, 1, 1, -1, 1,
	// front
	1, 1, 1, -1, -1, 1, 1, -1, 1, 1, 1, 1, -1, 1, 1, -1, -1, 1,
	// left
	-1, 1, 1, -1, -1, -1, -1, -1, 1, -1, 1, 1, -1, 1, -1, -1, -1, -1,
	// bottom
	1, -1, -1, 1, -1, 1, -1, -1, 1, -1, -1, 1, -1, -1, -1, 1, -1, -1,
	// top
	1, 1, 1, 1, 1, -1, -1, 1, -1, -1, 1, -1, -1, 1, 1, 1, 1, 1,
}

// CubeNormals matches CubePositions face by face.
var CubeNormals = faceRepeat([6][3]float32{
	{0, 0, -1},
	{1, 0, 0},
	{0, 0, 1},
	{-1, 0, 0},
	{0, -1, 0},
	{0, 1, 0},
})

// CubeTexCoords matches CubePositions, uv per vertex.
var CubeTexCoords = []float32{
	1, 1, 1, 0, 0, 0, 0, 0, 0, 1, 1, 1,
	1, 0, 0, 0, 1, 1, 0, 0, 0, 1, 1, 1,
	1, 0, 0, 0, 1, 1, 0, 0, 0, 1, 1, 1,
	1, 0, 0, 0, 1, 1, 0, 0, 0, 1, 1, 1,
	1, 1, 1, 0, 0, 0, 0, 0, 0, 1, 1, 1,
	1, 1, 1, 0, 0, 0, 0, 0, 0, 1, 1, 1,
}

// LitCubeStride is the number of floats per LitCube vertex (position + normal).
const LitCubeStride = 6

// LitCube is a ±0.5 cube with interleaved position and normal.
var LitCube = []float32{
	0.5, 0.5, -0.5, 0, 0, -1,
	0.5, -0.5, -0.5, 0, 0, -1,
	-0.5, -0.5, -0.5, 0, 0, -1,
	-0.5, -0.5, -0.5, 0, 0, -1,
	-0.5, 0.5, -0.5, 0, 0, -1,
	0.5, 0.5, -0.5, 0, 0, -1,

	-0.5, -0.5, 0.5, 0, 0, 1,
	0.5, -0.5, 0.5, 0, 0, 1,
	0.5, 0.5, 0.5, 0, 0, 1,
	0.5, 0.5, 0.5, 0, 0, 1,
	-0.5, 0.5, 0.5, 0, 0, 1,
	-0.5, -0.5, 0.5, 0, 0, 1,

	-0.5, 0.5, 0.5, -1, 0, 0,
	-0.5, 0.5, -0.5, -1, 0, 0,
	-0.5, -0.5, -0.5, -1, 0, 0,
	-0.5, -0.5, -0.5, -1, 0, 0,
	-0.5, -0.5, 0.5, -1, 0, 0,
	-0.5, 0.5, 0.5, -1, 0, 0,

	0.5, -0.5, -0.5, 1, 0, 0,
	0.5, 0.5, -0.5, 1, 0, 0,
	0.5, 0.5, 0.5, 1, 0, 0,
	0.5, 0.5, 0.5, 1, 0, 0,
	0.5, -0.5, 0.5, 1, 0, 0,
	0.5, -0.5, -0.5, 1, 0, 0,

	-0.5, -0.5, -0.5, 0, -1, 0,
	0.5, -0.5, -0.5, 0, -1, 0,
	0.5, -0.5, 0.5, 0, -1, 0,
	0.5, -0.5, 0.5, 0, -1, 0,
	-0.5, -0.5, 0.5, 0, -1, 0,
	-0.5, -0.5, -0.5, 0, -1, 0,

	0.5, 0.5, 0.5, 0, 1, 0,
	0.5, 0.5, -0.5, 0, 1, 0,
	-0.5, 0.5, -0.5, 0, 1, 0,
	-0.5, 0.5, -0.5, 0, 1, 0,
	-0.5, 0.5, 0.5, 0, 1, 0,
	0.5, 0.5, 0.5, 0, 1, 0,
}

// faceRepeat expands one vector per face into six vertices per face.
func faceRepeat(faces [6][3]float32) []float32 {
	out := make([]float32, 0, CubeVertexCount*3)
	for _, n := range faces {
		for i := 0; i < 6; i++ {
			out = append(out, n[0], n[1], n[2])
		}
	}
	return out
}

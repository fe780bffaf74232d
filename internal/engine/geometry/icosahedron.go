package geometry

// IcosahedronStride is the number of floats per icosahedron vertex (xyz + uv).
const IcosahedronStride = 5

const (
	icoX = 0.525731112119133606
	icoZ = 0.850650808352039932
)

// Icosahedron returns a unit icosahedron: 12 vertices with interleaved
// position and uv, and 20 triangles as indices. Positions lie on the unit
// sphere, so they double as normals.
func Icosahedron() (vertices []float32, indices []uint32) {
	vertices = []float32{
		-icoX, 0, icoZ, 0, 0,
		icoX, 0, icoZ, 0.5, 1,
		-icoX, 0, -icoZ, 1, 1,
		icoX, 0, -icoZ, 1, 1,
		0, icoZ, icoX, 1, 0,
		0, icoZ, -icoX, 0.5, 1,
		0, -icoZ, icoX, 0.5, 1,
		0, -icoZ, -icoX, 0, 0,
		icoZ, icoX, 0, 0, 0,
		-icoZ, icoX, 0, 0, 0,
		icoZ, -icoX, 0, 0.5, 1,
		-icoZ, -icoX, 0, 0.5, 1,
	}
	indices = []uint32{
		0, 4, 1,
		0, 9, 4,
		9, 5, 4,
		4, 5, 8,
		4, 8, 1,
		8, 10, 1,
		8, 3, 10,
		5, 3, 8,
		5, 2, 3,
		2, 7, 3,
		7, 10, 3,
		7, 6, 10,
		7, 11, 6,
		11, 0, 6,
		0, 1, 6,
		6, 1, 10,
		9, 0, 11,
		9, 11, 2,
		9, 2, 5,
		7, 2, 11,
	}
	return vertices, indices
}

package mesh

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/scenery/pkg/obj"
)

func load(t *testing.T, src string) *obj.Mesh {
	t.Helper()
	doc, err := obj.Parse(strings.NewReader(src))
	require.NoError(t, err)
	m, err := obj.Flatten(doc, obj.FlattenOptions{})
	require.NoError(t, err)
	return m
}

const quad = `v 0 0 0
v 2 0 0
v 2 2 0
v 0 2 0
vt 0 0
vt 1 0
vt 1 1
vt 0 1
f 1/1 2/2 3/3 4/4
`

func TestVertexLayout(t *testing.T) {
	assert.Equal(t, int32(32), VertexStride)
	assert.Equal(t, 12, NormalOffset)
	assert.Equal(t, 24, TexCoordOffset)
}

func TestFromOBJ_Interleaves(t *testing.T) {
	src := load(t, quad)
	m := FromOBJ(src, Options{})

	require.Len(t, m.Vertices, 6)
	assert.Equal(t, []uint32{0, 1, 2, 3, 4, 5}, m.Indices)
	for i, v := range m.Vertices {
		assert.Equal(t, [3]float32(src.Positions[i]), v.Position)
		assert.Equal(t, [2]float32(src.TexCoords[i]), v.TexCoord)
		assert.Equal(t, [3]float32{}, v.Normal)
	}
	assert.Equal(t, Bounds{Min: [3]float32{0, 0, 0}, Max: [3]float32{2, 2, 0}}, m.Bounds)
}

func TestFromOBJ_DoesNotAliasSource(t *testing.T) {
	src := load(t, quad)
	m := FromOBJ(src, Options{Center: true})

	m.Indices[0] = 42
	assert.Equal(t, uint32(0), src.Indices[0])
	assert.Equal(t, obj.Vec3{0, 0, 0}, src.Positions[0])
}

func TestFromOBJ_GenerateNormals(t *testing.T) {
	src := load(t, quad+"vn 1 0 0\nf 1//1 2//1 3//1\n")
	m := FromOBJ(src, Options{GenerateNormals: true})

	require.Len(t, m.Vertices, 9)
	for i := 0; i < 6; i++ {
		assert.InDeltaSlice(t, []float32{0, 0, 1}, m.Vertices[i].Normal[:], 1e-6, "vertex %d", i)
	}
	// Normals from the file win.
	for i := 6; i < 9; i++ {
		assert.Equal(t, [3]float32{1, 0, 0}, m.Vertices[i].Normal)
	}
}

func TestGenerateFlatNormals_Degenerate(t *testing.T) {
	vertices := make([]Vertex, 3)
	GenerateFlatNormals(vertices)
	for _, v := range vertices {
		assert.Equal(t, [3]float32{}, v.Normal)
	}
}

func TestFromOBJ_Center(t *testing.T) {
	m := FromOBJ(load(t, quad), Options{Center: true})

	assert.Equal(t, [3]float32{-1, -1, 0}, m.Bounds.Min)
	assert.Equal(t, [3]float32{1, 1, 0}, m.Bounds.Max)
	assert.Equal(t, [3]float32{-1, -1, 0}, m.Vertices[0].Position)
	assert.Equal(t, [3]float32{2, 2, 0}, m.Bounds.Size())
}

func TestComputeBounds_Empty(t *testing.T) {
	assert.Equal(t, Bounds{}, ComputeBounds(nil))
	m := FromOBJ(load(t, ""), Options{Center: true, GenerateNormals: true})
	assert.Empty(t, m.Vertices)
}

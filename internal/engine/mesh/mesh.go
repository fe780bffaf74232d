package mesh

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/scenery/pkg/obj"
)

// FromOBJ interleaves the parallel buffers of a flattened OBJ mesh and
// copies its identity index buffer. The source mesh is not modified.
func FromOBJ(m *obj.Mesh, opts Options) *Mesh {
	n := m.VertexCount()
	out := &Mesh{
		Vertices: make([]Vertex, n),
		Indices:  make([]uint32, len(m.Indices)),
	}
	copy(out.Indices, m.Indices)

	for i := 0; i < n; i++ {
		out.Vertices[i] = Vertex{
			Position: m.Positions[i],
			Normal:   m.Normals[i],
			TexCoord: m.TexCoords[i],
		}
	}

	if opts.GenerateNormals {
		GenerateFlatNormals(out.Vertices)
	}
	out.Bounds = ComputeBounds(out.Vertices)
	if opts.Center {
		Center(out.Vertices, &out.Bounds)
	}
	return out
}

// ComputeBounds returns the bounding box of vertices. An empty slice
// yields a zero box.
func ComputeBounds(vertices []Vertex) Bounds {
	if len(vertices) == 0 {
		return Bounds{}
	}
	b := Bounds{Min: vertices[0].Position, Max: vertices[0].Position}
	for i := 1; i < len(vertices); i++ {
		updateBounds(&b, vertices[i].Position)
	}
	return b
}

// Center translates vertices so the bounds are centered on the origin and
// returns the offset that was subtracted.
func Center(vertices []Vertex, bounds *Bounds) [3]float32 {
	c := bounds.Center()
	for i := range vertices {
		for k := 0; k < 3; k++ {
			vertices[i].Position[k] -= c[k]
		}
	}
	for k := 0; k < 3; k++ {
		bounds.Min[k] -= c[k]
		bounds.Max[k] -= c[k]
	}
	return c
}

// GenerateFlatNormals gives every triangle whose corners have a zero
// normal the normal of the triangle's plane. Corners with a normal from
// the file are left alone. Degenerate triangles keep zero normals.
func GenerateFlatNormals(vertices []Vertex) {
	for t := 0; t+2 < len(vertices); t += 3 {
		tri := vertices[t : t+3]
		p0 := mgl32.Vec3(tri[0].Position)
		e1 := mgl32.Vec3(tri[1].Position).Sub(p0)
		e2 := mgl32.Vec3(tri[2].Position).Sub(p0)

		n := e1.Cross(e2)
		if n.Len() < 1e-8 {
			continue
		}
		n = n.Normalize()

		for i := range tri {
			if tri[i].Normal == [3]float32{} {
				tri[i].Normal = n
			}
		}
	}
}

func updateBounds(b *Bounds, p [3]float32) {
	for k := 0; k < 3; k++ {
		if p[k] < b.Min[k] {
			b.Min[k] = p[k]
		}
		if p[k] > b.Max[k] {
			b.Max[k] = p[k]
		}
	}
}

package scene

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/scenery/internal/engine/geometry"
	"github.com/Faultbox/scenery/internal/engine/material"
)

// IcosahedronRenderer draws the unit icosahedron with an index buffer.
type IcosahedronRenderer struct {
	base
}

// NewIcosahedronRenderer uploads the icosahedron. The vertices lie on the
// unit sphere, so the position doubles as the normal.
func NewIcosahedronRenderer(name string, mat *material.Material, model mgl32.Mat4) *IcosahedronRenderer {
	r := &IcosahedronRenderer{base: newBase(name, mat, model)}
	vertices, indices := geometry.Icosahedron()

	gl.BindVertexArray(r.vao)
	r.arrayBuffer(vertices)
	stride := int32(geometry.IcosahedronStride * 4)
	floatAttrib(attribPosition, 3, stride, 0)
	floatAttrib(attribNormal, 3, stride, 0)
	floatAttrib(attribTexCoord, 2, stride, 3*4)
	r.elementBuffer(indices)
	gl.BindVertexArray(0)
	return r
}

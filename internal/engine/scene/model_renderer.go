package scene

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/scenery/internal/config"
	"github.com/Faultbox/scenery/internal/engine/material"
	"github.com/Faultbox/scenery/internal/engine/mesh"
	"github.com/Faultbox/scenery/internal/engine/picking"
)

// ModelRenderer draws an imported OBJ mesh.
type ModelRenderer struct {
	base
	path   string
	object config.ObjectConfig
	bounds mesh.Bounds
}

// NewModelRenderer uploads m. path is the source file and is used to match
// reload notifications.
func NewModelRenderer(name, path string, mat *material.Material, model mgl32.Mat4, m *mesh.Mesh) *ModelRenderer {
	r := &ModelRenderer{base: newBase(name, mat, model), path: path}
	r.upload(m)
	return r
}

// Path returns the OBJ file the renderer was built from.
func (r *ModelRenderer) Path() string { return r.path }

// Object returns the configuration the model was imported with.
func (r *ModelRenderer) Object() config.ObjectConfig { return r.object }

// Bounds returns the bounding box of the uploaded mesh.
func (r *ModelRenderer) Bounds() mesh.Bounds { return r.bounds }

// WorldBounds returns the mesh bounds transformed by the model matrix.
func (r *ModelRenderer) WorldBounds() picking.AABB {
	return picking.TransformAABB(r.bounds.Min, r.bounds.Max, r.model)
}

// Reload replaces the GPU buffers with m. It must run on the GL thread.
func (r *ModelRenderer) Reload(m *mesh.Mesh) {
	r.Destroy()
	r.upload(m)
}

func (r *ModelRenderer) upload(m *mesh.Mesh) {
	if r.vao == 0 {
		gl.GenVertexArrays(1, &r.vao)
	}
	gl.BindVertexArray(r.vao)

	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	if len(m.Vertices) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(m.Vertices)*int(mesh.VertexStride), unsafe.Pointer(&m.Vertices[0]), gl.STATIC_DRAW)
	}
	r.vbos = append(r.vbos, vbo)

	floatAttrib(attribPosition, 3, mesh.VertexStride, mesh.PositionOffset)
	floatAttrib(attribNormal, 3, mesh.VertexStride, mesh.NormalOffset)
	floatAttrib(attribTexCoord, 2, mesh.VertexStride, mesh.TexCoordOffset)

	r.elementBuffer(m.Indices)
	gl.BindVertexArray(0)
	r.bounds = m.Bounds
}

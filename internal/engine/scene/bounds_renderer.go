package scene

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/scenery/internal/engine/geometry"
	"github.com/Faultbox/scenery/internal/engine/material"
	"github.com/Faultbox/scenery/internal/engine/mesh"
)

// BoundsRenderer outlines the bounding box of a model. The box follows the
// model's transform and is rebuilt when the model is reloaded.
type BoundsRenderer struct {
	base
	target   *ModelRenderer
	uploaded mesh.Bounds
}

// NewBoundsRenderer creates an overlay for target.
func NewBoundsRenderer(target *ModelRenderer, mat *material.Material) *BoundsRenderer {
	r := &BoundsRenderer{base: newBase(target.Name()+"-bounds", mat, target.Model()), target: target}
	gl.BindVertexArray(r.vao)
	r.arrayBuffer(make([]float32, geometry.BoxWireframeVertexCount*3))
	floatAttrib(attribPosition, 3, 3*4, 0)
	gl.BindVertexArray(0)
	r.count = geometry.BoxWireframeVertexCount
	r.update()
	return r
}

func (r *BoundsRenderer) update() {
	b := r.target.Bounds()
	lines := geometry.BoxWireframe(b.Min, b.Max)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbos[0])
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(lines)*4, unsafe.Pointer(&lines[0]))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	r.uploaded = b
}

// Render draws the box as lines.
func (r *BoundsRenderer) Render(f *Frame) {
	if !r.enabled || !r.target.Enabled() {
		return
	}
	if r.target.Bounds() != r.uploaded {
		r.update()
	}
	r.model = r.target.Model()

	r.material.Use()
	r.setUniforms(f, f.View)
	gl.BindVertexArray(r.vao)
	gl.DrawArrays(gl.LINES, 0, r.count)
	gl.BindVertexArray(0)
}

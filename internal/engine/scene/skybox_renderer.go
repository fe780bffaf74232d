package scene

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/scenery/internal/engine/geometry"
	"github.com/Faultbox/scenery/internal/engine/material"
)

// SkyboxRenderer draws a cube map around the camera.
type SkyboxRenderer struct {
	base
}

// NewSkyboxRenderer uploads the cube used to sample mat.CubeMap.
func NewSkyboxRenderer(name string, mat *material.Material) *SkyboxRenderer {
	r := &SkyboxRenderer{base: newBase(name, mat, mgl32.Ident4())}
	gl.BindVertexArray(r.vao)
	r.arrayBuffer(geometry.CubePositions)
	floatAttrib(attribPosition, 3, 3*4, 0)
	gl.BindVertexArray(0)
	r.count = geometry.CubeVertexCount
	return r
}

// Render draws the inside of the cube with the view translation removed
// so the box stays centred on the camera.
func (r *SkyboxRenderer) Render(f *Frame) {
	if !r.enabled {
		return
	}
	r.material.Use()
	r.setUniforms(f, SkyView(f.View))

	gl.DepthFunc(gl.LEQUAL)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.FRONT)
	r.draw()
	gl.CullFace(gl.BACK)
	gl.DepthFunc(gl.LESS)
}

// SkyView drops the translation column of a view matrix.
func SkyView(view mgl32.Mat4) mgl32.Mat4 {
	return view.Mat3().Mat4()
}

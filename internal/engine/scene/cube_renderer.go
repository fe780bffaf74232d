package scene

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/scenery/internal/engine/geometry"
	"github.com/Faultbox/scenery/internal/engine/material"
)

// CubeRenderer draws the unit cube with positions only.
type CubeRenderer struct {
	base
}

// NewCubeRenderer uploads the ±1 cube.
func NewCubeRenderer(name string, mat *material.Material, model mgl32.Mat4) *CubeRenderer {
	r := &CubeRenderer{base: newBase(name, mat, model)}
	gl.BindVertexArray(r.vao)
	r.arrayBuffer(geometry.CubePositions)
	floatAttrib(attribPosition, 3, 3*4, 0)
	gl.BindVertexArray(0)
	r.count = geometry.CubeVertexCount
	return r
}

// LitCubeRenderer draws a cube with per-face normals for lighting.
type LitCubeRenderer struct {
	base
}

// NewLitCubeRenderer uploads the interleaved position and normal table.
func NewLitCubeRenderer(name string, mat *material.Material, model mgl32.Mat4) *LitCubeRenderer {
	r := &LitCubeRenderer{base: newBase(name, mat, model)}
	gl.BindVertexArray(r.vao)
	r.arrayBuffer(geometry.LitCube)
	stride := int32(geometry.LitCubeStride * 4)
	floatAttrib(attribPosition, 3, stride, 0)
	floatAttrib(attribNormal, 3, stride, 3*4)
	gl.BindVertexArray(0)
	r.count = geometry.CubeVertexCount
	return r
}

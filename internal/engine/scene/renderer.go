// Package scene draws the configured objects: primitive shapes, a skybox,
// instanced particles and imported OBJ models.
package scene

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/scenery/internal/engine/material"
)

// Frame holds the per-frame state shared by every renderer.
type Frame struct {
	View       mgl32.Mat4
	Projection mgl32.Mat4
	CameraPos  mgl32.Vec3
	LightPos   mgl32.Vec3
	DeltaTime  float32
}

// Renderer is one drawable object in the scene.
type Renderer interface {
	Name() string
	Enabled() bool
	SetEnabled(enabled bool)
	Render(f *Frame)
	Destroy()
}

// Vertex attribute locations shared by the built-in shaders.
const (
	attribPosition = 0
	attribNormal   = 1
	attribColor    = 2
	attribTexCoord = 3
	attribInstance = 4 // mat4, occupies 4..7
)

// base carries the GL objects and draw state common to all renderers.
// A renderer with indexed set draws count indices, otherwise count vertices.
type base struct {
	name     string
	enabled  bool
	model    mgl32.Mat4
	material *material.Material

	vao     uint32
	vbos    []uint32
	ebo     uint32
	count   int32
	indexed bool
}

func newBase(name string, mat *material.Material, model mgl32.Mat4) base {
	b := base{name: name, enabled: true, model: model, material: mat}
	gl.GenVertexArrays(1, &b.vao)
	return b
}

// Name returns the renderer name.
func (b *base) Name() string { return b.name }

// Enabled reports whether the renderer draws.
func (b *base) Enabled() bool { return b.enabled }

// SetEnabled toggles drawing.
func (b *base) SetEnabled(enabled bool) { b.enabled = enabled }

// Model returns the model matrix.
func (b *base) Model() mgl32.Mat4 { return b.model }

// Render binds the material, uploads the transform and light uniforms and
// issues the draw call.
func (b *base) Render(f *Frame) {
	if !b.enabled || b.count == 0 {
		return
	}
	b.material.Use()
	b.setUniforms(f, f.View)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)
	b.draw()
}

func (b *base) setUniforms(f *Frame, view mgl32.Mat4) {
	p := b.material.Program
	p.SetMat4("m", b.model)
	p.SetMat4("v", view)
	p.SetMat4("p", f.Projection)
	p.SetMat4("mvp", f.Projection.Mul4(view).Mul4(b.model))
	p.SetVec3("lPos", f.LightPos)
	p.SetVec3("cPos", f.CameraPos)
}

func (b *base) draw() {
	gl.BindVertexArray(b.vao)
	if b.indexed {
		gl.DrawElementsWithOffset(gl.TRIANGLES, b.count, gl.UNSIGNED_INT, 0)
	} else {
		gl.DrawArrays(gl.TRIANGLES, 0, b.count)
	}
	gl.BindVertexArray(0)
}

// arrayBuffer uploads data into a new VBO bound to the VAO. The VAO must
// be bound by the caller.
func (b *base) arrayBuffer(data []float32) uint32 {
	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	if len(data) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, unsafe.Pointer(&data[0]), gl.STATIC_DRAW)
	}
	b.vbos = append(b.vbos, vbo)
	return vbo
}

// elementBuffer uploads indices into the VAO's EBO, creating it on first use.
func (b *base) elementBuffer(indices []uint32) {
	if b.ebo == 0 {
		gl.GenBuffers(1, &b.ebo)
	}
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.ebo)
	if len(indices) > 0 {
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, unsafe.Pointer(&indices[0]), gl.STATIC_DRAW)
	}
	b.indexed = true
	b.count = int32(len(indices))
}

func floatAttrib(index uint32, size, stride int32, offset uintptr) {
	gl.VertexAttribPointerWithOffset(index, size, gl.FLOAT, false, stride, offset)
	gl.EnableVertexAttribArray(index)
}

// Destroy releases the VAO and buffers. The material is owned by the scene.
func (b *base) Destroy() {
	if len(b.vbos) > 0 {
		gl.DeleteBuffers(int32(len(b.vbos)), &b.vbos[0])
		b.vbos = nil
	}
	if b.ebo != 0 {
		gl.DeleteBuffers(1, &b.ebo)
		b.ebo = 0
	}
	if b.vao != 0 {
		gl.DeleteVertexArrays(1, &b.vao)
		b.vao = 0
	}
}

// ModelMatrix composes translate * rotate * scale. Rotation is in degrees
// and applied to vertices in Y, X, Z order.
func ModelMatrix(position, rotation, scale [3]float32) mgl32.Mat4 {
	t := mgl32.Translate3D(position[0], position[1], position[2])
	r := mgl32.HomogRotate3DZ(mgl32.DegToRad(rotation[2])).
		Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(rotation[0]))).
		Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(rotation[1])))
	s := mgl32.Scale3D(scale[0], scale[1], scale[2])
	return t.Mul4(r).Mul4(s)
}

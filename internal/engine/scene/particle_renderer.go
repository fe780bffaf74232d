package scene

import (
	"math"
	"math/rand"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/scenery/internal/engine/geometry"
	"github.com/Faultbox/scenery/internal/engine/material"
)

// ParticleSettings controls instance generation.
type ParticleSettings struct {
	Count  int
	Seed   int64
	Spread float32 // half-extent of the cube instances are scattered in
	Scale  float32
}

// Instances holds per-instance transforms and colors.
type Instances struct {
	Models []mgl32.Mat4
	Colors []mgl32.Vec3
}

// GenerateInstances scatters Count randomly rotated cubes with random
// colors. The same settings always produce the same instances.
func GenerateInstances(s ParticleSettings) Instances {
	rng := rand.New(rand.NewSource(s.Seed))
	in := Instances{
		Models: make([]mgl32.Mat4, s.Count),
		Colors: make([]mgl32.Vec3, s.Count),
	}
	scale := s.Scale
	if scale == 0 {
		scale = 1
	}

	unit := func() float32 { return rng.Float32()*2 - 1 }
	for i := 0; i < s.Count; i++ {
		in.Colors[i] = mgl32.Vec3{rng.Float32(), rng.Float32(), rng.Float32()}

		pos := mgl32.Vec3{unit(), unit(), unit()}.Mul(s.Spread)
		axis := mgl32.Vec3{unit(), unit(), unit()}
		if axis.Len() < 1e-6 {
			axis = mgl32.Vec3{0, 1, 0}
		}
		angle := rng.Float32() * 2 * math.Pi

		in.Models[i] = mgl32.Translate3D(pos[0], pos[1], pos[2]).
			Mul4(mgl32.HomogRotate3D(angle, axis.Normalize())).
			Mul4(mgl32.Scale3D(scale, scale, scale))
	}
	return in
}

// ParticleRenderer draws many lit cubes with one instanced call.
type ParticleRenderer struct {
	base
	instances int32
}

// NewParticleRenderer uploads the cube and the instance buffers. Instance
// matrices feed attributes 4 to 7 and colors attribute 2, both advancing
// once per instance.
func NewParticleRenderer(name string, mat *material.Material, model mgl32.Mat4, s ParticleSettings) *ParticleRenderer {
	r := &ParticleRenderer{base: newBase(name, mat, model)}
	in := GenerateInstances(s)

	gl.BindVertexArray(r.vao)

	r.arrayBuffer(geometry.CubePositions)
	floatAttrib(attribPosition, 3, 3*4, 0)
	r.arrayBuffer(geometry.CubeNormals)
	floatAttrib(attribNormal, 3, 3*4, 0)

	if len(in.Models) > 0 {
		r.instanceBuffer(unsafe.Pointer(&in.Colors[0]), len(in.Colors)*3*4)
		floatAttrib(attribColor, 3, 3*4, 0)
		gl.VertexAttribDivisor(attribColor, 1)

		matSize := int32(unsafe.Sizeof(mgl32.Mat4{}))
		r.instanceBuffer(unsafe.Pointer(&in.Models[0]), len(in.Models)*int(matSize))
		for col := uint32(0); col < 4; col++ {
			loc := attribInstance + col
			floatAttrib(loc, 4, matSize, uintptr(col*4*4))
			gl.VertexAttribDivisor(loc, 1)
		}
	}

	gl.BindVertexArray(0)
	r.count = geometry.CubeVertexCount
	r.instances = int32(len(in.Models))
	return r
}

func (r *ParticleRenderer) instanceBuffer(data unsafe.Pointer, size int) {
	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, size, data, gl.STATIC_DRAW)
	r.vbos = append(r.vbos, vbo)
}

// Count returns the number of instances drawn.
func (r *ParticleRenderer) Count() int { return int(r.instances) }

// Render draws every instance.
func (r *ParticleRenderer) Render(f *Frame) {
	if !r.enabled || r.instances == 0 {
		return
	}
	r.material.Use()
	r.setUniforms(f, f.View)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)

	gl.BindVertexArray(r.vao)
	gl.DrawArraysInstanced(gl.TRIANGLES, 0, r.count, r.instances)
	gl.BindVertexArray(0)
}

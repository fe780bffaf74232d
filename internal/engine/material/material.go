// Package material pairs a shader program with the textures and color it
// draws with.
package material

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/scenery/internal/engine/scene/shaders"
	"github.com/Faultbox/scenery/internal/engine/shader"
)

// Built-in program names.
const (
	Basic     = "basic"
	Phong     = "phong"
	Skybox    = "skybox"
	Instanced = "instanced"
)

type source struct {
	vertex, fragment string
}

var sources = map[string]source{
	Basic:     {shaders.BasicVertexShader, shaders.BasicFragmentShader},
	Phong:     {shaders.PhongVertexShader, shaders.PhongFragmentShader},
	Skybox:    {shaders.SkyboxVertexShader, shaders.SkyboxFragmentShader},
	Instanced: {shaders.InstancedVertexShader, shaders.InstancedFragmentShader},
}

// Known reports whether name is a built-in program.
func Known(name string) bool {
	_, ok := sources[name]
	return ok
}

// Library compiles each built-in program once and hands out shared
// references.
type Library struct {
	programs map[string]*shader.Program
}

// NewLibrary returns an empty library. Programs compile on first use.
func NewLibrary() *Library {
	return &Library{programs: make(map[string]*shader.Program)}
}

// Program returns the compiled program for name.
func (l *Library) Program(name string) (*shader.Program, error) {
	if p, ok := l.programs[name]; ok {
		return p, nil
	}
	if !Known(name) {
		return nil, fmt.Errorf("unknown shader program %q", name)
	}
	src := sources[name]
	p, err := shader.New(name, src.vertex, src.fragment)
	if err != nil {
		return nil, err
	}
	l.programs[name] = p
	return p, nil
}

// Destroy deletes every compiled program.
func (l *Library) Destroy() {
	for name, p := range l.programs {
		p.Delete()
		delete(l.programs, name)
	}
}

// Material is the per-object draw state.
type Material struct {
	Program *shader.Program
	Color   mgl32.Vec4
	Texture uint32
	CubeMap uint32
}

// Use binds the program, the textures and the color uniform.
func (m *Material) Use() {
	m.Program.Use()
	m.Program.SetVec4("uColor", m.Color)

	if m.Texture != 0 {
		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D, m.Texture)
		m.Program.SetInt("uTexture", 0)
		m.Program.SetInt("uUseTexture", 1)
	} else {
		m.Program.SetInt("uUseTexture", 0)
	}

	if m.CubeMap != 0 {
		gl.ActiveTexture(gl.TEXTURE1)
		gl.BindTexture(gl.TEXTURE_CUBE_MAP, m.CubeMap)
		m.Program.SetInt("skybox", 1)
	}
}

// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// BasicVertexShader transforms positions only.
//
//go:embed basic.vert
var BasicVertexShader string

// BasicFragmentShader outputs the flat material color.
//
//go:embed basic.frag
var BasicFragmentShader string

// PhongVertexShader passes world position, normal and uv to the fragment stage.
//
//go:embed phong.vert
var PhongVertexShader string

// PhongFragmentShader lights with a single point light.
//
//go:embed phong.frag
var PhongFragmentShader string

// SkyboxVertexShader draws a cube at infinity.
//
//go:embed skybox.vert
var SkyboxVertexShader string

// SkyboxFragmentShader samples the cube map.
//
//go:embed skybox.frag
var SkyboxFragmentShader string

// InstancedVertexShader reads a per-instance model matrix and color.
//
//go:embed instanced.vert
var InstancedVertexShader string

// InstancedFragmentShader lights instances with the point light.
//
//go:embed instanced.frag
var InstancedFragmentShader string

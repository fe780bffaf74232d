// Package config handles viewer configuration loading and management.
package config

import (
	"errors"
	"fmt"
)

// Object kinds understood by the scene builder.
const (
	KindCube        = "cube"
	KindLitCube     = "lit_cube"
	KindSkybox      = "skybox"
	KindParticles   = "particles"
	KindIcosahedron = "icosahedron"
	KindOBJ         = "obj"
)

// ErrUnknownObjectKind is returned by Validate for an unrecognised scene object kind.
var ErrUnknownObjectKind = errors.New("unknown object kind")

// Config holds all viewer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Camera   CameraConfig   `yaml:"camera"`
	Light    LightConfig    `yaml:"light"`
	Scene    SceneConfig    `yaml:"scene"`
	Assets   AssetsConfig   `yaml:"assets"`
	Capture  CaptureConfig  `yaml:"capture"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and projection settings.
type GraphicsConfig struct {
	Width      int        `yaml:"width"`
	Height     int        `yaml:"height"`
	Fullscreen bool       `yaml:"fullscreen"`
	VSync      bool       `yaml:"vsync"`
	FPSLimit   int        `yaml:"fps_limit"`
	FOV        float32    `yaml:"fov"` // vertical, degrees
	Near       float32    `yaml:"near"`
	Far        float32    `yaml:"far"`
	ClearColor [4]float32 `yaml:"clear_color"`
}

// CameraConfig holds the initial orbit camera placement.
type CameraConfig struct {
	Distance float32    `yaml:"distance"`
	Pitch    float32    `yaml:"pitch"` // radians
	Yaw      float32    `yaml:"yaw"`   // radians
	Target   [3]float32 `yaml:"target"`
}

// LightConfig holds the single point light used by the Phong shaders.
type LightConfig struct {
	Position [3]float32 `yaml:"position"`
	// OrbitSpeed rotates the light around the Y axis in degrees per second.
	OrbitSpeed float32 `yaml:"orbit_speed"`
}

// SceneConfig lists the objects to build.
type SceneConfig struct {
	Objects []ObjectConfig `yaml:"objects"`
}

// ObjectConfig describes one renderer in the scene.
type ObjectConfig struct {
	Kind     string     `yaml:"kind"`
	Name     string     `yaml:"name,omitempty"`
	Path     string     `yaml:"path,omitempty"`    // obj model file
	Texture  string     `yaml:"texture,omitempty"` // diffuse texture
	Faces    []string   `yaml:"faces,omitempty"`   // skybox: +X -X +Y -Y +Z -Z
	Shader   string     `yaml:"shader,omitempty"`  // built-in program name, defaults per kind
	Color    [4]float32 `yaml:"color"`
	Position [3]float32 `yaml:"position"`
	Rotation [3]float32 `yaml:"rotation"` // degrees, applied Y then X then Z
	Scale    [3]float32 `yaml:"scale"`

	// Particles
	Count  int     `yaml:"count,omitempty"`
	Seed   int64   `yaml:"seed,omitempty"`
	Spread float32 `yaml:"spread,omitempty"`

	// OBJ import
	Strict          bool `yaml:"strict,omitempty"`
	InferIndices    bool `yaml:"infer_indices,omitempty"`
	GenerateNormals bool `yaml:"generate_normals,omitempty"`
	Center          bool `yaml:"center,omitempty"`

	Disabled bool `yaml:"disabled,omitempty"`
}

// AssetsConfig holds asset lookup settings.
type AssetsConfig struct {
	Dir   string `yaml:"dir"`   // base for relative asset paths
	Watch bool   `yaml:"watch"` // reload obj files when they change
}

// CaptureConfig holds screenshot settings.
type CaptureConfig struct {
	Dir    string `yaml:"dir"`
	Prefix string `yaml:"prefix"`
	// Scale renders captures offscreen at a multiple of the window size.
	Scale int `yaml:"scale"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// DefaultObject returns an object of the given kind with identity
// transform and white color.
func DefaultObject(kind string) ObjectConfig {
	return ObjectConfig{
		Kind:  kind,
		Color: [4]float32{1, 1, 1, 1},
		Scale: [3]float32{1, 1, 1},
	}
}

// Default returns a Config with sensible default values.
func Default() *Config {
	cube := DefaultObject(KindLitCube)
	cube.Name = "cube"
	cube.Position = [3]float32{-2, 0, 0}
	cube.Color = [4]float32{0.9, 0.5, 0.2, 1}

	icos := DefaultObject(KindIcosahedron)
	icos.Name = "icosahedron"
	icos.Position = [3]float32{2, 0, 0}
	icos.Color = [4]float32{0.3, 0.6, 0.9, 1}

	particles := DefaultObject(KindParticles)
	particles.Name = "particles"
	particles.Count = 500
	particles.Seed = 1
	particles.Spread = 50
	particles.Scale = [3]float32{0.2, 0.2, 0.2}

	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			FPSLimit:   0,
			FOV:        45,
			Near:       0.1,
			Far:        1000,
			ClearColor: [4]float32{0.1, 0.1, 0.15, 1},
		},
		Camera: CameraConfig{
			Distance: 10,
			Pitch:    0.4,
			Yaw:      0,
		},
		Light: LightConfig{
			Position: [3]float32{5, 10, 5},
		},
		Scene: SceneConfig{
			Objects: []ObjectConfig{cube, icos, particles},
		},
		Assets: AssetsConfig{
			Dir:   ".",
			Watch: false,
		},
		Capture: CaptureConfig{
			Dir:    "screenshots",
			Prefix: "scenery",
			Scale:  1,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate checks scene objects for unknown kinds, missing inputs and
// duplicate names.
func (c *Config) Validate() error {
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		return fmt.Errorf("graphics: invalid size %dx%d", c.Graphics.Width, c.Graphics.Height)
	}
	if c.Capture.Scale < 0 {
		return fmt.Errorf("capture: invalid scale %d", c.Capture.Scale)
	}
	names := make(map[string]int)
	for i, obj := range c.Scene.Objects {
		if obj.Name != "" {
			if prev, ok := names[obj.Name]; ok {
				return fmt.Errorf("scene object %d: name %q already used by object %d", i, obj.Name, prev)
			}
			names[obj.Name] = i
		}
		switch obj.Kind {
		case KindCube, KindLitCube, KindIcosahedron:
		case KindOBJ:
			if obj.Path == "" {
				return fmt.Errorf("scene object %d: obj requires a path", i)
			}
		case KindSkybox:
			if len(obj.Faces) != 6 {
				return fmt.Errorf("scene object %d: skybox requires 6 faces, got %d", i, len(obj.Faces))
			}
		case KindParticles:
			if obj.Count <= 0 {
				return fmt.Errorf("scene object %d: particles requires a positive count", i)
			}
		default:
			return fmt.Errorf("scene object %d: %w %q", i, ErrUnknownObjectKind, obj.Kind)
		}
	}
	return nil
}

package scene

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/scenery/internal/assets"
	"github.com/Faultbox/scenery/internal/config"
	"github.com/Faultbox/scenery/internal/engine/material"
	"github.com/Faultbox/scenery/internal/engine/picking"
	"github.com/Faultbox/scenery/internal/engine/texture"
	"github.com/Faultbox/scenery/internal/logger"
)

func sceneLog() *zap.Logger { return logger.Named("scene") }

// boundsColor is the line color of bounding box overlays.
var boundsColor = mgl32.Vec4{1, 0.85, 0.2, 1}

// Scene owns the renderers and the GL resources they share.
type Scene struct {
	renderers    []Renderer
	overlays     []Renderer
	showOverlays bool

	materials *material.Library
	textures  *assets.Cache[uint32]
}

// New returns an empty scene.
func New() *Scene {
	return &Scene{
		materials: material.NewLibrary(),
		textures:  assets.NewCache[uint32](),
	}
}

// Build creates a scene from cfg. OBJ files are parsed in parallel, then
// every renderer is created on the calling goroutine, which must own the
// GL context.
func Build(ctx context.Context, cfg *config.Config) (*Scene, error) {
	models, err := LoadModels(ctx, cfg)
	if err != nil {
		return nil, err
	}

	s := New()
	for i, o := range cfg.Scene.Objects {
		r, err := s.build(cfg, i, o, models[i])
		if err != nil {
			s.Destroy()
			return nil, fmt.Errorf("scene object %d (%s): %w", i, o.Kind, err)
		}
		r.SetEnabled(!o.Disabled)
		s.Add(r)

		if m, ok := r.(*ModelRenderer); ok {
			if err := s.addBounds(m); err != nil {
				s.Destroy()
				return nil, err
			}
		}
	}

	hits, misses := s.textures.Stats()
	sceneLog().Info("scene built",
		zap.Int("renderers", len(s.renderers)),
		zap.Int("textures", s.textures.Len()),
		zap.Int("texture_cache_hits", hits),
		zap.Int("texture_cache_misses", misses))
	return s, nil
}

// DefaultShader returns the built-in program used for kind when the
// object does not name one.
func DefaultShader(kind string) string {
	switch kind {
	case config.KindCube:
		return material.Basic
	case config.KindSkybox:
		return material.Skybox
	case config.KindParticles:
		return material.Instanced
	default:
		return material.Phong
	}
}

// ObjectName returns o.Name, or a name derived from the kind and index.
func ObjectName(i int, o config.ObjectConfig) string {
	if o.Name != "" {
		return o.Name
	}
	return fmt.Sprintf("%s-%d", o.Kind, i)
}

func (s *Scene) build(cfg *config.Config, i int, o config.ObjectConfig, model *Model) (Renderer, error) {
	name := ObjectName(i, o)
	mat, err := s.material(cfg, o)
	if err != nil {
		return nil, err
	}
	transform := ModelMatrix(o.Position, o.Rotation, o.Scale)

	switch o.Kind {
	case config.KindCube:
		return NewCubeRenderer(name, mat, transform), nil
	case config.KindLitCube:
		return NewLitCubeRenderer(name, mat, transform), nil
	case config.KindIcosahedron:
		return NewIcosahedronRenderer(name, mat, transform), nil
	case config.KindSkybox:
		faces := make([]string, len(o.Faces))
		for k, f := range o.Faces {
			faces[k] = cfg.ResolvePath(f)
		}
		cube, err := s.textures.GetOrLoad(strings.Join(faces, "|"), func() (uint32, error) {
			return texture.LoadCubeMap(faces)
		})
		if err != nil {
			return nil, err
		}
		mat.CubeMap = cube
		return NewSkyboxRenderer(name, mat), nil
	case config.KindParticles:
		return NewParticleRenderer(name, mat, mgl32.Translate3D(o.Position[0], o.Position[1], o.Position[2]),
			ParticleSettings{Count: o.Count, Seed: o.Seed, Spread: o.Spread, Scale: o.Scale[0]}), nil
	case config.KindOBJ:
		if model == nil {
			return nil, fmt.Errorf("model %s was not loaded", o.Path)
		}
		r := NewModelRenderer(name, model.Path, mat, transform, model.Mesh)
		r.object = o
		return r, nil
	default:
		return nil, config.ErrUnknownObjectKind
	}
}

func (s *Scene) material(cfg *config.Config, o config.ObjectConfig) (*material.Material, error) {
	programName := o.Shader
	if programName == "" {
		programName = DefaultShader(o.Kind)
	}
	prog, err := s.materials.Program(programName)
	if err != nil {
		return nil, err
	}
	mat := &material.Material{Program: prog, Color: mgl32.Vec4(o.Color)}

	if o.Texture != "" {
		path := cfg.ResolvePath(o.Texture)
		tex, err := s.textures.GetOrLoad(path, func() (uint32, error) {
			return texture.Load2D(path)
		})
		if err != nil {
			return nil, err
		}
		mat.Texture = tex
	}
	return mat, nil
}

func (s *Scene) addBounds(m *ModelRenderer) error {
	prog, err := s.materials.Program(material.Basic)
	if err != nil {
		return err
	}
	s.overlays = append(s.overlays, NewBoundsRenderer(m, &material.Material{Program: prog, Color: boundsColor}))
	return nil
}

// ToggleOverlays shows or hides the bounding box overlays and returns the
// new state.
func (s *Scene) ToggleOverlays() bool {
	s.showOverlays = !s.showOverlays
	return s.showOverlays
}

// Add appends r to the draw list.
func (s *Scene) Add(r Renderer) {
	s.renderers = append(s.renderers, r)
}

// Renderers returns the renderers in draw order.
func (s *Scene) Renderers() []Renderer {
	return s.renderers
}

// Find returns the renderer called name, or nil.
func (s *Scene) Find(name string) Renderer {
	for _, r := range s.renderers {
		if r.Name() == name {
			return r
		}
	}
	return nil
}

// Toggle flips the enabled state of the renderer at index i. It reports
// false when i is out of range.
func (s *Scene) Toggle(i int) (Renderer, bool) {
	if i < 0 || i >= len(s.renderers) {
		return nil, false
	}
	r := s.renderers[i]
	r.SetEnabled(!r.Enabled())
	return r, true
}

// ModelsFrom returns the model renderers built from the file at path.
// Paths are compared in absolute form.
func (s *Scene) ModelsFrom(path string) []*ModelRenderer {
	target := absPath(path)
	var out []*ModelRenderer
	for _, r := range s.renderers {
		if m, ok := r.(*ModelRenderer); ok && absPath(m.Path()) == target {
			out = append(out, m)
		}
	}
	return out
}

func absPath(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return filepath.Clean(p)
}

// ModelPaths returns the distinct OBJ files used by the scene.
func (s *Scene) ModelPaths() []string {
	seen := make(map[string]bool)
	var out []string
	for _, r := range s.renderers {
		if m, ok := r.(*ModelRenderer); ok && !seen[m.Path()] {
			seen[m.Path()] = true
			out = append(out, m.Path())
		}
	}
	return out
}

// Pick returns the nearest enabled model hit by ray and the distance to
// its world bounding box.
func (s *Scene) Pick(ray picking.Ray) (*ModelRenderer, float32, bool) {
	var (
		best     *ModelRenderer
		bestDist float32
	)
	for _, r := range s.renderers {
		m, ok := r.(*ModelRenderer)
		if !ok || !m.Enabled() {
			continue
		}
		t, hit := ray.IntersectAABB(m.WorldBounds())
		if hit && (best == nil || t < bestDist) {
			best, bestDist = m, t
		}
	}
	return best, bestDist, best != nil
}

// Bounds returns the world box enclosing every enabled model. It reports
// false when no model is enabled.
func (s *Scene) Bounds() (picking.AABB, bool) {
	var (
		box   picking.AABB
		found bool
	)
	for _, r := range s.renderers {
		m, ok := r.(*ModelRenderer)
		if !ok || !m.Enabled() {
			continue
		}
		b := m.WorldBounds()
		if !found {
			box, found = b, true
			continue
		}
		for k := 0; k < 3; k++ {
			box.Min[k] = min(box.Min[k], b.Min[k])
			box.Max[k] = max(box.Max[k], b.Max[k])
		}
	}
	return box, found
}

// Render draws every enabled renderer in order, then the overlays when
// they are shown.
func (s *Scene) Render(f *Frame) {
	for _, r := range s.renderers {
		if r.Enabled() {
			r.Render(f)
		}
	}
	if !s.showOverlays {
		return
	}
	for _, r := range s.overlays {
		r.Render(f)
	}
}

// Destroy releases every renderer, texture and program.
func (s *Scene) Destroy() {
	for _, r := range s.overlays {
		r.Destroy()
	}
	s.overlays = nil
	for _, r := range s.renderers {
		r.Destroy()
	}
	s.renderers = nil
	s.textures.Each(func(_ string, id uint32) {
		texture.Delete(id)
	})
	s.textures.Clear()
	s.materials.Destroy()
}

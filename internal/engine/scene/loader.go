package scene

import (
	"context"
	"fmt"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Faultbox/scenery/internal/config"
	"github.com/Faultbox/scenery/internal/engine/mesh"
	"github.com/Faultbox/scenery/pkg/obj"
)

// Model is an OBJ file parsed and converted for upload.
type Model struct {
	Path  string
	Mesh  *mesh.Mesh
	Stats obj.Stats
}

// LoadModel parses and flattens the OBJ file at path using the import
// settings of o. It touches no GL state and is safe to call from any
// goroutine.
func LoadModel(path string, o config.ObjectConfig) (*Model, error) {
	doc, err := obj.ParseFile(path)
	if err != nil {
		return nil, err
	}
	flat, err := obj.Flatten(doc, obj.FlattenOptions{
		Strict:       o.Strict,
		InferMissing: o.InferIndices,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	m := mesh.FromOBJ(flat, mesh.Options{
		GenerateNormals: o.GenerateNormals,
		Center:          o.Center,
	})
	return &Model{Path: path, Mesh: m, Stats: doc.Stats}, nil
}

// LoadModels parses every obj object in cfg concurrently. The result is
// indexed like cfg.Scene.Objects; entries for other kinds are nil.
func LoadModels(ctx context.Context, cfg *config.Config) ([]*Model, error) {
	objects := cfg.Scene.Objects
	models := make([]*Model, len(objects))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, o := range objects {
		if o.Kind != config.KindOBJ {
			continue
		}
		path := cfg.ResolvePath(o.Path)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			m, err := LoadModel(path, o)
			if err != nil {
				return fmt.Errorf("scene object %d: %w", i, err)
			}
			models[i] = m
			logModel(m)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return models, nil
}

func logModel(m *Model) {
	log := sceneLog()
	log.Info("model loaded",
		zap.String("path", m.Path),
		zap.Int("vertices", len(m.Mesh.Vertices)),
		zap.Int("triangles", len(m.Mesh.Indices)/3))
	if m.Stats.Malformed > 0 || m.Stats.Truncated > 0 {
		log.Warn("model has unreadable content",
			zap.String("path", m.Path),
			zap.Int("malformed", m.Stats.Malformed),
			zap.Int("truncated", m.Stats.Truncated))
	}
}

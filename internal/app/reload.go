package app

import (
	"sync"

	"go.uber.org/zap"

	"github.com/Faultbox/scenery/internal/engine/scene"
	"github.com/Faultbox/scenery/internal/watch"
)

// reload is a model parsed off the GL thread, waiting for upload.
type reload struct {
	target *scene.ModelRenderer
	model  *scene.Model
}

// reloadQueue hands parsed models from watcher goroutines to the frame
// loop. A newer reload for the same renderer replaces a pending one.
type reloadQueue struct {
	mu      sync.Mutex
	pending map[*scene.ModelRenderer]reload
	order   []*scene.ModelRenderer
}

func newReloadQueue() *reloadQueue {
	return &reloadQueue{pending: make(map[*scene.ModelRenderer]reload)}
}

func (q *reloadQueue) push(r reload) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if _, ok := q.pending[r.target]; !ok {
		q.order = append(q.order, r.target)
	}
	q.pending[r.target] = r
}

func (q *reloadQueue) drain() []reload {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.order) == 0 {
		return nil
	}
	out := make([]reload, 0, len(q.order))
	for _, target := range q.order {
		out = append(out, q.pending[target])
	}
	q.pending = make(map[*scene.ModelRenderer]reload)
	q.order = q.order[:0]
	return out
}

func (a *App) startWatching() error {
	w, err := watch.New(watch.DefaultDebounce, a.modelChanged)
	if err != nil {
		return err
	}
	for _, path := range a.scene.ModelPaths() {
		if err := w.Add(path); err != nil {
			w.Close()
			return err
		}
	}
	a.watcher = w
	return nil
}

// modelChanged runs on a watcher goroutine. It parses the file once per
// renderer that uses it, since import settings may differ.
func (a *App) modelChanged(path string) {
	for _, r := range a.scene.ModelsFrom(path) {
		m, err := scene.LoadModel(r.Path(), r.Object())
		if err != nil {
			a.log.Warn("reload failed", zap.String("path", path), zap.Error(err))
			continue
		}
		a.reloads.push(reload{target: r, model: m})
	}
}

// applyReloads uploads pending models. It runs on the GL thread.
func (a *App) applyReloads() {
	for _, r := range a.reloads.drain() {
		r.target.Reload(r.model.Mesh)
		a.log.Info("model reloaded",
			zap.String("name", r.target.Name()),
			zap.Int("vertices", len(r.model.Mesh.Vertices)))
	}
}

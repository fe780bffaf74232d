package watch

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu    sync.Mutex
	paths []string
}

func (r *recorder) add(p string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.paths = append(r.paths, p)
}

func (r *recorder) get() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.paths...)
}

func TestWatcherReportsWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "model.obj")
	require.NoError(t, os.WriteFile(path, []byte("v 0 0 0\n"), 0o644))
	other := filepath.Join(dir, "other.obj")

	rec := &recorder{}
	w, err := New(20*time.Millisecond, rec.add)
	require.NoError(t, err)
	defer w.Close()
	require.NoError(t, w.Add(path))

	require.NoError(t, os.WriteFile(other, []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(path, []byte("v 1 1 1\n"), 0o644))

	abs, err := filepath.Abs(path)
	require.NoError(t, err)
	assert.Eventually(t, func() bool {
		got := rec.get()
		return len(got) > 0 && got[0] == abs
	}, 2*time.Second, 10*time.Millisecond)

	for _, p := range rec.get() {
		assert.Equal(t, abs, p)
	}
}

func TestChangedCoalesces(t *testing.T) {
	rec := &recorder{}
	w, err := New(50*time.Millisecond, rec.add)
	require.NoError(t, err)
	defer w.Close()

	path := filepath.Join(t.TempDir(), "a.obj")
	w.mu.Lock()
	w.files[path] = true
	w.mu.Unlock()

	for i := 0; i < 5; i++ {
		w.changed(path)
	}
	w.changed(path + ".bak")

	assert.Eventually(t, func() bool { return len(rec.get()) == 1 }, time.Second, 10*time.Millisecond)
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, []string{path}, rec.get())
}

func TestCloseCancelsPending(t *testing.T) {
	rec := &recorder{}
	w, err := New(time.Hour, rec.add)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "a.obj")
	w.mu.Lock()
	w.files[path] = true
	w.mu.Unlock()
	w.changed(path)

	require.NoError(t, w.Close())
	assert.Empty(t, w.timers)
	assert.Empty(t, rec.get())
}

func TestStaleTimerKeepsNewerEntry(t *testing.T) {
	rec := &recorder{}
	w, err := New(time.Hour, rec.add)
	require.NoError(t, err)
	defer w.Close()

	path := filepath.Join(t.TempDir(), "a.obj")
	w.mu.Lock()
	w.files[path] = true
	w.mu.Unlock()

	w.changed(path)
	w.mu.Lock()
	stale := w.timers[path]
	w.mu.Unlock()

	w.changed(path)
	w.fire(path, stale)

	w.mu.Lock()
	current, ok := w.timers[path]
	w.mu.Unlock()
	require.True(t, ok)
	assert.NotSame(t, stale, current)
	assert.Empty(t, rec.get())

	w.fire(path, current)
	assert.Equal(t, []string{path}, rec.get())

	w.mu.Lock()
	assert.Empty(t, w.timers)
	w.mu.Unlock()
}

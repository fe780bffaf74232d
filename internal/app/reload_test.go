package app

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/scenery/internal/engine/scene"
)

func TestReloadQueueKeepsLatestPerRenderer(t *testing.T) {
	q := newReloadQueue()
	a, b := &scene.ModelRenderer{}, &scene.ModelRenderer{}
	first := &scene.Model{Path: "a.obj"}
	second := &scene.Model{Path: "a.obj"}
	other := &scene.Model{Path: "b.obj"}

	q.push(reload{target: a, model: first})
	q.push(reload{target: b, model: other})
	q.push(reload{target: a, model: second})

	got := q.drain()
	if assert.Len(t, got, 2) {
		assert.Same(t, a, got[0].target)
		assert.Same(t, second, got[0].model)
		assert.Same(t, b, got[1].target)
		assert.Same(t, other, got[1].model)
	}
	assert.Nil(t, q.drain())
}

func TestReloadQueueSeparatesSameNamedRenderers(t *testing.T) {
	q := newReloadQueue()
	a, b := &scene.ModelRenderer{}, &scene.ModelRenderer{}
	ma := &scene.Model{Path: "a.obj"}
	mb := &scene.Model{Path: "b.obj"}

	q.push(reload{target: a, model: ma})
	q.push(reload{target: b, model: mb})

	got := q.drain()
	if assert.Len(t, got, 2) {
		assert.Same(t, ma, got[0].model)
		assert.Same(t, mb, got[1].model)
	}
}

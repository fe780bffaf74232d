package material

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKnown(t *testing.T) {
	for _, name := range []string{Basic, Phong, Skybox, Instanced} {
		assert.True(t, Known(name), name)
	}
	assert.False(t, Known("toon"))
}

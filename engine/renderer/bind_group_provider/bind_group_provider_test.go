package bind_group_provider

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBindGroupProvider(t *testing.T) {
	p := NewBindGroupProvider("teapot_mesh", WithVertexCount(36))

	assert.Equal(t, "teapot_mesh", p.Label())
	assert.Equal(t, 36, p.VertexCount())
	assert.Nil(t, p.VertexBuffer())
	assert.Nil(t, p.BindGroup())
	assert.Nil(t, p.Buffer(0))
	assert.Empty(t, p.Buffers())
}

func TestReleaseWithoutGPUResources(t *testing.T) {
	p := NewBindGroupProvider("empty")
	p.SetVertexCount(3)
	p.SetBuffer(0, nil)

	p.Release()
	assert.Equal(t, 0, p.VertexCount())
	assert.Empty(t, p.Buffers())
}

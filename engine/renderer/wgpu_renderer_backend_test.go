package renderer

import (
	"testing"

	"github.com/Carmen-Shannon/frost/engine/renderer/pipeline"
	"github.com/cogentcore/webgpu/wgpu"

	"github.com/stretchr/testify/assert"
)

func TestBindGroupCount(t *testing.T) {
	assert.Equal(t, 0, bindGroupCount(nil))
	assert.Equal(t, 3, bindGroupCount(map[int]wgpu.BindGroupLayoutDescriptor{0: {}, 2: {}}))
}

func TestDepthStencilState(t *testing.T) {
	state := depthStencilState(pipeline.NewPipeline("flat"))
	assert.Equal(t, wgpu.TextureFormatDepth32Float, state.Format)
	assert.Equal(t, wgpu.CompareFunctionLess, state.DepthCompare)
	assert.True(t, state.DepthWriteEnabled)

	state = depthStencilState(pipeline.NewPipeline("overlay", pipeline.WithDepthTestEnabled(false), pipeline.WithDepthWriteEnabled(false)))
	assert.Equal(t, wgpu.CompareFunctionAlways, state.DepthCompare)
	assert.False(t, state.DepthWriteEnabled)
}

func TestPresentAndMSAAParsing(t *testing.T) {
	assert.Equal(t, wgpu.PresentModeFifo, wgpuPresentMode(PresentModeVSync))
	assert.Equal(t, wgpu.PresentModeImmediate, wgpuPresentMode(PresentModeUncapped))

	assert.Equal(t, PresentModeUncapped, ParsePresentMode("uncapped"))
	assert.Equal(t, PresentModeVSync, ParsePresentMode("vsync"))
	assert.Equal(t, PresentModeVSync, ParsePresentMode(""))

	for in, want := range map[int]MSAASampleCount{0: MSAAOff, 1: MSAAOff, 4: MSAA4x, 6: MSAA4x, 8: MSAA8x, 32: MSAA16x} {
		assert.Equal(t, want, ParseMSAASampleCount(in), "samples %d", in)
	}
}

func TestBufferUsage(t *testing.T) {
	assert.Equal(t, wgpu.BufferUsageUniform|wgpu.BufferUsageCopyDst, bufferUsage(wgpu.BufferBindingTypeUniform))
	assert.Equal(t, wgpu.BufferUsageStorage|wgpu.BufferUsageCopyDst, bufferUsage(wgpu.BufferBindingTypeReadOnlyStorage))
}

func TestDefaultClearColorIsGreen(t *testing.T) {
	assert.Equal(t, wgpu.Color{R: 0, G: 1, B: 0, A: 1}, DefaultClearColor)
}

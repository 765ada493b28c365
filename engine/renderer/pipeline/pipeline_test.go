package pipeline

import (
	"testing"

	"github.com/Carmen-Shannon/frost/engine/renderer/shader"
	"github.com/cogentcore/webgpu/wgpu"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPipelineDefaults(t *testing.T) {
	p := NewPipeline("flat")

	assert.Equal(t, "flat", p.PipelineKey())
	assert.Equal(t, wgpu.PrimitiveTopologyTriangleList, p.Topology())
	assert.Equal(t, wgpu.FrontFaceCCW, p.FrontFace())
	assert.Equal(t, wgpu.CullModeBack, p.CullMode())
	assert.True(t, p.DepthTestEnabled())
	assert.True(t, p.DepthWriteEnabled())
	assert.Equal(t, wgpu.ColorWriteMaskAll, p.WriteMask())
	assert.Nil(t, p.RenderPipeline())
	assert.Nil(t, p.Shader(shader.ShaderTypeVertex))

	p.Release()
}

func TestNewPipelineOptions(t *testing.T) {
	src := "@vertex fn vs() {}\n@fragment fn fs() {}"
	vs := shader.NewShader("vs", shader.ShaderTypeVertex, src)
	fs := shader.NewShader("fs", shader.ShaderTypeFragment, src)

	p := NewPipeline("wire",
		WithVertexShader(vs),
		WithFragmentShader(fs),
		WithCullMode(wgpu.CullModeNone),
		WithFrontFace(wgpu.FrontFaceCW),
		WithTopology(wgpu.PrimitiveTopologyLineList),
		WithDepthTestEnabled(false),
		WithDepthWriteEnabled(false),
		WithWriteMask(wgpu.ColorWriteMaskRed),
	)

	assert.Same(t, vs, p.Shader(shader.ShaderTypeVertex))
	assert.Same(t, fs, p.Shader(shader.ShaderTypeFragment))
	assert.Equal(t, wgpu.CullModeNone, p.CullMode())
	assert.Equal(t, wgpu.FrontFaceCW, p.FrontFace())
	assert.Equal(t, wgpu.PrimitiveTopologyLineList, p.Topology())
	assert.False(t, p.DepthTestEnabled())
	assert.False(t, p.DepthWriteEnabled())
	assert.Equal(t, wgpu.ColorWriteMaskRed, p.WriteMask())
}

func uniformEntry(binding uint32, visibility wgpu.ShaderStage) wgpu.BindGroupLayoutEntry {
	return wgpu.BindGroupLayoutEntry{
		Binding:    binding,
		Visibility: visibility,
		Buffer: wgpu.BufferBindingLayout{
			Type:           wgpu.BufferBindingTypeUniform,
			MinBindingSize: 80,
		},
	}
}

func TestMergeBindGroupLayouts(t *testing.T) {
	vertex := map[int]wgpu.BindGroupLayoutDescriptor{
		0: {Label: "camera", Entries: []wgpu.BindGroupLayoutEntry{uniformEntry(0, wgpu.ShaderStageVertex)}},
	}
	fragment := map[int]wgpu.BindGroupLayoutDescriptor{
		0: {Label: "camera", Entries: []wgpu.BindGroupLayoutEntry{
			uniformEntry(1, wgpu.ShaderStageFragment),
			uniformEntry(0, wgpu.ShaderStageFragment),
		}},
		2: {Label: "light", Entries: []wgpu.BindGroupLayoutEntry{uniformEntry(0, wgpu.ShaderStageFragment)}},
	}

	merged := mergeBindGroupLayouts(vertex, fragment)
	require.Len(t, merged, 2)

	group0 := merged[0]
	require.Len(t, group0.Entries, 2)
	assert.Equal(t, uint32(0), group0.Entries[0].Binding)
	assert.Equal(t, wgpu.ShaderStageVertex|wgpu.ShaderStageFragment, group0.Entries[0].Visibility)
	assert.Equal(t, uint32(1), group0.Entries[1].Binding)
	assert.Equal(t, wgpu.ShaderStageFragment, group0.Entries[1].Visibility)

	assert.Equal(t, "light", merged[2].Label)

	// inputs are left untouched
	assert.Equal(t, wgpu.ShaderStageVertex, vertex[0].Entries[0].Visibility)
}

func TestMergeBindGroupLayoutsEmpty(t *testing.T) {
	merged := mergeBindGroupLayouts(nil, nil)
	assert.Empty(t, merged)
}

func TestPipelineBindGroupLayoutDescriptors(t *testing.T) {
	src := `struct CameraUniform {
    view_proj: mat4x4<f32>,
    camera_position: vec3<f32>,
    _pad: f32,
};
@group(0) @binding(0) var<uniform> camera: CameraUniform;
@vertex fn vs_main() -> @builtin(position) vec4<f32> { return camera.view_proj * vec4<f32>(0.0); }
@fragment fn fs_main() -> @location(0) vec4<f32> { return vec4<f32>(camera.camera_position, 1.0); }
`
	p := NewPipeline("flat",
		WithVertexShader(shader.NewShader("vs", shader.ShaderTypeVertex, src)),
		WithFragmentShader(shader.NewShader("fs", shader.ShaderTypeFragment, src)),
	)

	desc := p.BindGroupLayoutDescriptor(0)
	require.Len(t, desc.Entries, 1)
	assert.Equal(t, wgpu.ShaderStageVertex|wgpu.ShaderStageFragment, desc.Entries[0].Visibility)
	assert.Equal(t, uint64(80), desc.Entries[0].Buffer.MinBindingSize)
	assert.Empty(t, p.BindGroupLayoutDescriptor(1).Entries)
}

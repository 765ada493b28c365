package shader

import (
	"strings"
	"testing"

	"github.com/Carmen-Shannon/frost/engine/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cameraStruct = `struct CameraUniform {
    view_proj: mat4x4<f32>,
    camera_position: vec3<f32>,
    _pad: f32,
};
`

func newTestPreProcessor() PreProcessor {
	return NewPreProcessor(
		WithStruct("camera", cameraStruct, "CameraUniform"),
		WithStruct("element", model.ElementSource, "VertexInput"),
	)
}

func TestPreProcessorProcess(t *testing.T) {
	p := newTestPreProcessor()
	out, err := p.Process(`//@frost:include camera
//@frost:include element
//@frost:include camera
//@frost:group 1 2 uniform camera camera
@vertex
fn vs_main(in: VertexInput) -> @builtin(position) vec4<f32> {
    return camera.view_proj * vec4<f32>(in.position, 1.0);
}`)
	require.NoError(t, err)

	assert.Equal(t, 1, strings.Count(out, "struct CameraUniform"))
	assert.Contains(t, out, "struct VertexInput")
	assert.Contains(t, out, "@group(1) @binding(2) var<uniform> camera: CameraUniform;")
	assert.NotContains(t, out, annotationPrefix)

	// the expanded source feeds the WGSL parser
	s := NewShader("vs", ShaderTypeVertex, out)
	assert.Equal(t, "vs_main", s.EntryPoint())
	assert.Equal(t, "camera", s.BindGroupVarName(1, 2))

	decl, ok := p.Declaration("camera")
	require.True(t, ok)
	assert.Equal(t, 1, *decl.Group)
	assert.Equal(t, 2, *decl.Binding)
	assert.Equal(t, 4, decl.Line)
	assert.Len(t, p.Declarations(), 1)

	_, ok = p.Declaration("lights")
	assert.False(t, ok)
}

func TestPreProcessorStorageArray(t *testing.T) {
	p := newTestPreProcessor()
	out, err := p.Process("//@frost:group 0 1 storage_read cameras array<camera>")
	require.NoError(t, err)
	assert.Equal(t, "@group(0) @binding(1) var<storage, read> cameras: array<CameraUniform>;", out)
}

func TestPreProcessorResetsDeclarations(t *testing.T) {
	p := newTestPreProcessor()
	_, err := p.Process("//@frost:group 0 0 uniform camera camera")
	require.NoError(t, err)
	_, err = p.Process("fn f() {}")
	require.NoError(t, err)
	assert.Empty(t, p.Declarations())
}

func TestPreProcessorPassesPlainComments(t *testing.T) {
	p := newTestPreProcessor()
	src := "let x = 1; // mentions @frost:include camera mid-line"
	out, err := p.Process(src)
	require.NoError(t, err)
	assert.Equal(t, src, out)
}

func TestPreProcessorErrors(t *testing.T) {
	tests := map[string]string{
		"empty":            "//@frost:",
		"unknown type":     "//@frost:define camera",
		"include arity":    "//@frost:include",
		"unknown struct":   "//@frost:include lights",
		"group arity":      "//@frost:group 0 0 uniform camera",
		"bad group":        "//@frost:group x 0 uniform camera camera",
		"negative binding": "//@frost:group 0 -1 uniform camera camera",
		"address space":    "//@frost:group 0 0 push_constant camera camera",
		"group struct":     "//@frost:group 0 0 uniform light light",
		"array struct":     "//@frost:group 0 0 storage_read lights array<light>",
	}
	for name, src := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := newTestPreProcessor().Process(src)
			assert.ErrorContains(t, err, "line 1")
		})
	}
}

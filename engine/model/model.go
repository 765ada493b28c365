package model

import (
	"github.com/Carmen-Shannon/frost/engine/renderer/bind_group_provider"
)

// model is the implementation of the Model interface.
type model struct {
	name         string
	elements     []Element
	vertexData   []byte
	bounds       Bounds
	meshProvider bind_group_provider.BindGroupProvider
}

// Model defines the interface for a loaded Wavefront model.
// A Model owns the flat, non-indexed triangle list produced by the Loader together with its
// packed vertex bytes and, once uploaded, the BindGroupProvider holding the GPU vertex buffer.
// The element slice is an immutable snapshot; callers must not modify it.
type Model interface {
	// Name retrieves the model identifier.
	//
	// Returns:
	//   - string: the model name
	Name() string

	// Elements retrieves the triangle list. Every three consecutive elements form one triangle.
	//
	// Returns:
	//   - []Element: the elements in draw order
	Elements() []Element

	// VertexCount returns the number of elements, which is also the draw vertex count.
	//
	// Returns:
	//   - int: the vertex count
	VertexCount() int

	// TriangleCount returns the number of triangles in the list.
	//
	// Returns:
	//   - int: the triangle count
	TriangleCount() int

	// VertexData returns the packed vertex bytes for GPU upload.
	//
	// Returns:
	//   - []byte: VertexCount()*ElementSize bytes
	VertexData() []byte

	// Bounds returns the axis-aligned box enclosing every element position.
	//
	// Returns:
	//   - Bounds: the model bounds
	Bounds() Bounds

	// MeshProvider retrieves the BindGroupProvider holding the GPU vertex buffer.
	// Returns nil when the model was loaded without a Renderer.
	//
	// Returns:
	//   - bind_group_provider.BindGroupProvider: the mesh provider or nil
	MeshProvider() bind_group_provider.BindGroupProvider

	// SetMeshProvider attaches the provider after the vertex buffer has been uploaded.
	//
	// Parameters:
	//   - provider: the mesh provider
	SetMeshProvider(provider bind_group_provider.BindGroupProvider)

	// Release frees any GPU resources held by the mesh provider.
	Release()
}

var _ Model = &model{}

// NewModel creates a new Model instance with the specified options applied.
// Vertex data and bounds are derived from the elements unless supplied by an option.
//
// Parameters:
//   - options: a variadic list of ModelBuilderOption functions to configure the Model
//
// Returns:
//   - Model: a new instance of Model configured with the provided options
func NewModel(options ...ModelBuilderOption) Model {
	m := &model{}
	for _, opt := range options {
		opt(m)
	}
	if m.vertexData == nil {
		m.vertexData = MarshalElements(m.elements)
	}
	if m.bounds == (Bounds{}) {
		m.bounds = ComputeBounds(m.elements)
	}
	return m
}

func (m *model) Name() string {
	return m.name
}

func (m *model) Elements() []Element {
	return m.elements
}

func (m *model) VertexCount() int {
	return len(m.elements)
}

func (m *model) TriangleCount() int {
	return len(m.elements) / 3
}

func (m *model) VertexData() []byte {
	return m.vertexData
}

func (m *model) Bounds() Bounds {
	return m.bounds
}

func (m *model) MeshProvider() bind_group_provider.BindGroupProvider {
	return m.meshProvider
}

func (m *model) SetMeshProvider(provider bind_group_provider.BindGroupProvider) {
	m.meshProvider = provider
}

func (m *model) Release() {
	if m.meshProvider != nil {
		m.meshProvider.Release()
		m.meshProvider = nil
	}
}

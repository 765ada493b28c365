package model

import (
	"github.com/Carmen-Shannon/frost/engine/renderer/bind_group_provider"
)

// ModelBuilderOption is a functional option for configuring a Model via NewModel.
type ModelBuilderOption func(*model)

// WithName is an option builder that sets the name of the Model.
//
// Parameters:
//   - name: the model identifier
//
// Returns:
//   - ModelBuilderOption: a function that applies the name option to a model
func WithName(name string) ModelBuilderOption {
	return func(m *model) {
		m.name = name
	}
}

// WithElements is an option builder that sets the triangle list of the Model.
//
// Parameters:
//   - elements: the elements in draw order
//
// Returns:
//   - ModelBuilderOption: a function that applies the elements option to a model
func WithElements(elements []Element) ModelBuilderOption {
	return func(m *model) {
		m.elements = elements
	}
}

// WithBounds overrides the bounds NewModel would otherwise compute from the elements.
//
// Parameters:
//   - bounds: the bounds to report
//
// Returns:
//   - ModelBuilderOption: a function that applies the bounds option to a model
func WithBounds(bounds Bounds) ModelBuilderOption {
	return func(m *model) {
		m.bounds = bounds
	}
}

// WithMeshProvider is an option builder that sets the BindGroupProvider for mesh GPU resources.
//
// Parameters:
//   - provider: the BindGroupProvider holding the vertex buffer
//
// Returns:
//   - ModelBuilderOption: a function that applies the mesh provider option to a model
func WithMeshProvider(provider bind_group_provider.BindGroupProvider) ModelBuilderOption {
	return func(m *model) {
		m.meshProvider = provider
	}
}

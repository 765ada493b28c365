package bind_group_provider

// BindGroupProviderOption is a functional option used to configure a BindGroupProvider during construction.
type BindGroupProviderOption func(*bindGroupProvider)

// WithVertexCount presets the vertex count, typically before the vertex buffer is uploaded.
//
// Parameters:
//   - count: the number of vertices to draw
//
// Returns:
//   - BindGroupProviderOption: a function that sets the vertex count for this provider
func WithVertexCount(count int) BindGroupProviderOption {
	return func(p *bindGroupProvider) {
		p.vertexCount = count
	}
}

package shader

// PreProcessorBuilderOption is a functional option for configuring a PreProcessor.
type PreProcessorBuilderOption func(*preProcessor)

// WithStruct registers a WGSL struct under key for include and group annotations.
//
// Parameters:
//   - key: the annotation argument naming the struct
//   - source: the WGSL struct definition
//   - typeName: the WGSL type name emitted in group declarations
//
// Returns:
//   - PreProcessorBuilderOption: option function to apply
func WithStruct(key AnnotationArg, source, typeName string) PreProcessorBuilderOption {
	return func(p *preProcessor) {
		p.structRegistry[key] = registryEntry{Source: source, Type: typeName}
	}
}

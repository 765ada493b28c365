package shader

import "github.com/cogentcore/webgpu/wgpu"

// vertexFormatInfo pairs a wgpu vertex format with its byte size for offset calculation.
type vertexFormatInfo struct {
	format wgpu.VertexFormat
	size   uint64
}

// wgslTypeLayout is the byte size and alignment of a WGSL type in a uniform or storage buffer.
type wgslTypeLayout struct {
	size  uint64
	align uint64
}

// parsedField is a single member of a WGSL struct.
type parsedField struct {
	name      string
	typeName  string
	location  int // -1 when the member has no @location
	isBuiltin bool
}

// parsedStruct is a WGSL struct declaration.
type parsedStruct struct {
	name   string
	fields []parsedField
}

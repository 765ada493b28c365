package model

import (
	_ "embed"
	"encoding/binary"
	"math"
	"unsafe"

	"github.com/cogentcore/webgpu/wgpu"
)

// ElementSource is the canonical WGSL definition of the VertexInput struct consumed by the flat-color pipeline.
// Matches Element layout exactly (36 bytes, tightly packed).
//
//go:embed assets/element.wgsl
var ElementSource string

// ElementSize is the byte size of a single Element as laid out in a vertex buffer.
const ElementSize = 36

// Element is a single output vertex of a loaded model: one corner of one triangle.
// Three consecutive Elements form one triangle with counter-clockwise front-face winding.
// Matches the WGSL VertexInput struct layout exactly (see ElementSource).
// Size: 36 bytes (three float32x3 attributes, no padding).
type Element struct {
	Position [3]float32 // offset  0: vertex position, x already mirrored (12 bytes)
	Normal   [3]float32 // offset 12: vertex normal, x already mirrored (12 bytes)
	Color    [3]float32 // offset 24: diffuse RGB of the face material (12 bytes)
}

// Size returns the size of the Element struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes.
func (e *Element) Size() int {
	return int(unsafe.Sizeof(*e))
}

// Marshal serializes the Element into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 36-byte buffer ready for GPU upload.
func (e *Element) Marshal() []byte {
	buf := make([]byte, ElementSize)
	e.put(buf)
	return buf
}

func (e *Element) put(buf []byte) {
	fields := [9]float32{
		e.Position[0], e.Position[1], e.Position[2],
		e.Normal[0], e.Normal[1], e.Normal[2],
		e.Color[0], e.Color[1], e.Color[2],
	}
	for i, f := range fields {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(f))
	}
}

// VertexBufferLayout describes how an Element vertex buffer is read by the vertex stage.
// Locations 0, 1 and 2 carry position, normal and color respectively.
//
// Returns:
//   - wgpu.VertexBufferLayout: the layout for a tightly packed Element buffer
func (e *Element) VertexBufferLayout() wgpu.VertexBufferLayout {
	return wgpu.VertexBufferLayout{
		ArrayStride: ElementSize,
		StepMode:    wgpu.VertexStepModeVertex,
		Attributes: []wgpu.VertexAttribute{
			{Format: wgpu.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},
			{Format: wgpu.VertexFormatFloat32x3, Offset: 12, ShaderLocation: 1},
			{Format: wgpu.VertexFormatFloat32x3, Offset: 24, ShaderLocation: 2},
		},
	}
}

// MarshalElements packs a triangle list into one contiguous little-endian byte slice.
//
// Parameters:
//   - elements: the elements to pack, in draw order
//
// Returns:
//   - []byte: len(elements)*ElementSize bytes ready for a vertex buffer write
func MarshalElements(elements []Element) []byte {
	buf := make([]byte, len(elements)*ElementSize)
	for i := range elements {
		elements[i].put(buf[i*ElementSize:])
	}
	return buf
}

package model

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readFloat(buf []byte, i int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(buf[i*4:]))
}

func TestElementLayout(t *testing.T) {
	e := Element{
		Position: [3]float32{-1, 2, 3},
		Normal:   [3]float32{0, 1, 0},
		Color:    [3]float32{0.5, 0.25, 1},
	}
	assert.Equal(t, ElementSize, e.Size())

	buf := e.Marshal()
	require.Len(t, buf, ElementSize)
	want := []float32{-1, 2, 3, 0, 1, 0, 0.5, 0.25, 1}
	for i, w := range want {
		assert.Equal(t, w, readFloat(buf, i), "float %d", i)
	}

	layout := e.VertexBufferLayout()
	assert.Equal(t, uint64(ElementSize), layout.ArrayStride)
	require.Len(t, layout.Attributes, 3)
	for i, attr := range layout.Attributes {
		assert.Equal(t, uint32(i), attr.ShaderLocation)
		assert.Equal(t, uint64(i*12), attr.Offset)
	}
}

func TestMarshalElements(t *testing.T) {
	elems := []Element{
		{Position: [3]float32{1, 0, 0}},
		{Position: [3]float32{0, 1, 0}},
		{Position: [3]float32{0, 0, 1}, Color: [3]float32{0.8, 0, 0}},
	}
	buf := MarshalElements(elems)
	require.Len(t, buf, 3*ElementSize)
	for i := range elems {
		assert.Equal(t, elems[i].Marshal(), buf[i*ElementSize:(i+1)*ElementSize])
	}
	assert.Empty(t, MarshalElements(nil))
}

func TestComputeBounds(t *testing.T) {
	elems := []Element{
		{Position: [3]float32{-1, 0, 2}},
		{Position: [3]float32{3, -2, 0}},
		{Position: [3]float32{1, 4, -2}},
	}
	b := ComputeBounds(elems)
	assert.Equal(t, [3]float32{-1, -2, -2}, b.Min)
	assert.Equal(t, [3]float32{3, 4, 2}, b.Max)
	assert.Equal(t, [3]float32{1, 1, 0}, b.Center())
	assert.Equal(t, [3]float32{4, 6, 4}, b.Size())
	assert.InDelta(t, 0.5*math.Sqrt(16+36+16), float64(b.Radius()), 1e-5)

	assert.Equal(t, Bounds{}, ComputeBounds(nil))
}

func TestNewModel(t *testing.T) {
	elems := make([]Element, 6)
	elems[4].Position = [3]float32{2, 2, 2}
	m := NewModel(WithName("quad"), WithElements(elems))

	assert.Equal(t, "quad", m.Name())
	assert.Equal(t, 6, m.VertexCount())
	assert.Equal(t, 2, m.TriangleCount())
	assert.Len(t, m.VertexData(), 6*ElementSize)
	assert.Equal(t, [3]float32{2, 2, 2}, m.Bounds().Max)
	assert.Nil(t, m.MeshProvider())

	m.Release()
	assert.Nil(t, m.MeshProvider())
}

func TestNewModelWithBounds(t *testing.T) {
	b := Bounds{Min: [3]float32{-5, -5, -5}, Max: [3]float32{5, 5, 5}}
	m := NewModel(WithBounds(b))
	assert.Equal(t, b, m.Bounds())
	assert.Equal(t, 0, m.VertexCount())
}

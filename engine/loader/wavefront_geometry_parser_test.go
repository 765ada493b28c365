package loader

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/Carmen-Shannon/frost/engine/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testMaterials = MaterialTable{
	"red":   {1, 0, 0},
	"green": {0, 1, 0},
}

func parse(t *testing.T, src string) ([]model.Element, error) {
	t.Helper()
	return parseGeometry("test.obj", strings.NewReader(src), testMaterials)
}

func TestParseGeometrySingleTriangle(t *testing.T) {
	src := `v 1 0 0
v 0 1 0
v 0 0 1
vn 0 0 1
usemtl red
f 1//1 2//1 3//1
`
	elems, err := parse(t, src)
	require.NoError(t, err)
	require.Len(t, elems, 3)

	red := [3]float32{1, 0, 0}
	normal := [3]float32{0, 0, 1}
	assert.Equal(t, model.Element{Position: [3]float32{-1, 0, 0}, Normal: normal, Color: red}, elems[0])
	assert.Equal(t, model.Element{Position: [3]float32{0, 0, 1}, Normal: normal, Color: red}, elems[1])
	assert.Equal(t, model.Element{Position: [3]float32{0, 1, 0}, Normal: normal, Color: red}, elems[2])
}

func TestParseGeometryMirrorsX(t *testing.T) {
	src := `v 2.5 -1 3
vn -0.5 0.5 0.7
usemtl red
f 1//1 1//1 1//1
`
	elems, err := parse(t, src)
	require.NoError(t, err)
	require.Len(t, elems, 3)
	assert.Equal(t, [3]float32{-2.5, -1, 3}, elems[0].Position)
	assert.Equal(t, [3]float32{0.5, 0.5, 0.7}, elems[0].Normal)
}

func TestParseGeometryQuadFan(t *testing.T) {
	src := `v 1 0 0
v 2 0 0
v 3 0 0
v 4 0 0
vn 0 1 0
usemtl green
f 1//1 2//1 3//1 4//1
`
	elems, err := parse(t, src)
	require.NoError(t, err)
	require.Len(t, elems, 6)

	got := make([]float32, len(elems))
	for i, e := range elems {
		got[i] = -e.Position[0]
	}
	// (A, C, B), (A, D, C)
	assert.Equal(t, []float32{1, 3, 2, 1, 4, 3}, got)
}

func TestParseGeometryOutputLength(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 8; i++ {
		sb.WriteString("v 0 0 0\n")
	}
	sb.WriteString("vn 0 0 1\nusemtl red\n")
	sb.WriteString("f 1 2 3\n")           // 1 triangle
	sb.WriteString("f 1 2 3 4 5\n")       // 3 triangles
	sb.WriteString("f 1 2 3 4 5 6 7 8\n") // 6 triangles
	sb.WriteString("f 1 2\n")             // dropped

	elems, err := parse(t, sb.String())
	require.NoError(t, err)
	assert.Len(t, elems, 3*(1+3+6))
}

func TestParseGeometryDegenerateFaces(t *testing.T) {
	src := `v 0 0 0
f 1 1
f 7
f
`
	elems, err := parse(t, src)
	require.NoError(t, err)
	assert.Empty(t, elems)
}

func TestParseGeometryCornerForms(t *testing.T) {
	base := "v 1 0 0\nv 0 1 0\nv 0 0 1\nvt 0 0\nvn 0 0 1\nvn 0 1 0\nusemtl red\n"
	tests := []struct {
		name   string
		face   string
		normal [3]float32
	}{
		{name: "position only", face: "f 1 2 3", normal: [3]float32{0, 0, 1}},
		{name: "empty texcoord and normal", face: "f 1// 2// 3//", normal: [3]float32{0, 0, 1}},
		{name: "full triples", face: "f 1/1/2 2/1/2 3/1/2", normal: [3]float32{0, 1, 0}},
		{name: "position and normal", face: "f 1//2 2//2 3//2", normal: [3]float32{0, 1, 0}},
		{name: "position and texcoord", face: "f 1/1 2/1 3/1", normal: [3]float32{0, 0, 1}},
		{name: "tabs and trailing space", face: "f 1//2\t2//2   3//2  ", normal: [3]float32{0, 1, 0}},
		{name: "trailing slash at end of line", face: "f 1//2 2//2 3/", normal: [3]float32{0, 0, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			elems, err := parse(t, base+tt.face+"\n")
			require.NoError(t, err)
			require.Len(t, elems, 3)
			assert.Equal(t, [3]float32{-1, 0, 0}, elems[0].Position)
			assert.Equal(t, tt.normal, elems[1].Normal)
		})
	}
}

func TestParseGeometryMaterialPerCorner(t *testing.T) {
	src := `v 0 0 0
vn 0 0 1
usemtl red
f 1 1 1
usemtl green
f 1 1 1
`
	elems, err := parse(t, src)
	require.NoError(t, err)
	require.Len(t, elems, 6)
	for _, e := range elems[:3] {
		assert.Equal(t, [3]float32{1, 0, 0}, e.Color)
	}
	for _, e := range elems[3:] {
		assert.Equal(t, [3]float32{0, 1, 0}, e.Color)
	}
}

func TestParseGeometryIgnoresOtherStatements(t *testing.T) {
	src := "# comment\r\no ship\r\ng hull\r\ns off\r\nmtllib ship.mtl\r\nv 1 0 0\r\nvt 0.5 0.5\r\nvn 0 0 1\r\nl 1 1\r\n\r\nx\r\nusemtl red\r\nf 1 1 1\r\n"
	elems, err := parse(t, src)
	require.NoError(t, err)
	require.Len(t, elems, 3)
	assert.Equal(t, [3]float32{1, 0, 0}, elems[0].Color, "CRLF line endings do not leak into material names")
}

func TestParseGeometryOverflowBecomesInf(t *testing.T) {
	src := "v 1e39 0 -1e39\nv 0 1 0\nv 0 0 1\nvn 0 1e39 0\nusemtl red\nf 1//1 2//1 3//1\n"
	elems, err := parse(t, src)
	require.NoError(t, err)
	require.Len(t, elems, 3)

	inf := float32(math.Inf(1))
	assert.Equal(t, [3]float32{-inf, 0, -inf}, elems[0].Position)
	assert.Equal(t, [3]float32{0, inf, 0}, elems[0].Normal)
}

func TestParseGeometryBareUsemtlIsSkipped(t *testing.T) {
	src := "v 0 0 0\nv 1 0 0\nv 0 1 0\nvn 0 0 1\nusemtl red\nf 1//1 2//1 3//1\nusemtl\nf 1//1 2//1 3//1\n"
	elems, err := parse(t, src)
	require.NoError(t, err)
	require.Len(t, elems, 6)
	for _, e := range elems {
		assert.Equal(t, [3]float32{1, 0, 0}, e.Color, "a usemtl line without a name keeps the active material")
	}
}

func TestParseGeometryErrors(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		target error
		kind   ErrorKind
		line   int
	}{
		{
			name:   "malformed position",
			src:    "v 1 two 3\n",
			target: ErrParse, kind: ErrorKindParse, line: 1,
		},
		{
			name:   "malformed normal",
			src:    "v 0 0 0\nvn 0 0\n",
			target: ErrParse, kind: ErrorKindParse, line: 2,
		},
		{
			name:   "bare vn",
			src:    "vn\n",
			target: ErrParse, kind: ErrorKindParse, line: 1,
		},
		{
			name:   "negative index",
			src:    "v 0 0 0\nvn 0 0 1\nusemtl red\nf -1 -1 -1\n",
			target: ErrParse, kind: ErrorKindParse, line: 4,
		},
		{
			name:   "non numeric index",
			src:    "v 0 0 0\nvn 0 0 1\nusemtl red\nf a b c\n",
			target: ErrParse, kind: ErrorKindParse, line: 4,
		},
		{
			name:   "position out of range",
			src:    "v 0 0 0\nvn 0 0 1\nusemtl red\nf 1 2 4\n",
			target: ErrIndexOutOfRange, kind: ErrorKindIndex, line: 4,
		},
		{
			name:   "zero index",
			src:    "v 0 0 0\nvn 0 0 1\nusemtl red\nf 0 1 1\n",
			target: ErrIndexOutOfRange, kind: ErrorKindIndex, line: 4,
		},
		{
			name:   "absent normal without any normals",
			src:    "v 0 0 0\nusemtl red\nf 1 1 1\n",
			target: ErrIndexOutOfRange, kind: ErrorKindIndex, line: 3,
		},
		{
			name:   "forward reference",
			src:    "vn 0 0 1\nusemtl red\nf 1 1 1\nv 0 0 0\n",
			target: ErrIndexOutOfRange, kind: ErrorKindIndex, line: 3,
		},
		{
			name:   "unknown material",
			src:    "v 0 0 0\nvn 0 0 1\nusemtl blue\nf 1 1 1\n",
			target: ErrMaterialNotFound, kind: ErrorKindLookup, line: 4,
		},
		{
			name:   "no usemtl",
			src:    "v 0 0 0\nvn 0 0 1\nf 1 1 1\n",
			target: ErrMaterialNotFound, kind: ErrorKindLookup, line: 3,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			elems, err := parse(t, tt.src)
			require.Error(t, err)
			assert.Nil(t, elems)
			assert.ErrorIs(t, err, tt.target)

			var le *LoadError
			require.True(t, errors.As(err, &le))
			assert.Equal(t, tt.kind, le.Kind)
			assert.Equal(t, "test.obj", le.Path)
			assert.Equal(t, tt.line, le.Line)
		})
	}
}

func TestNextIndexField(t *testing.T) {
	line := []byte("f 12/3//")
	field, pos := nextIndexField(line, 2)
	assert.Equal(t, "12", string(field))
	assert.Equal(t, 4, pos)

	field, pos = nextIndexField(line, pos)
	assert.Equal(t, "3", string(field))

	field, pos = nextIndexField(line, pos)
	assert.Empty(t, field)

	field, pos = nextIndexField(line, pos)
	assert.Empty(t, field)
	assert.Equal(t, len(line), pos)

	field, pos = nextIndexField(line, pos+5)
	assert.Empty(t, field)
	assert.Equal(t, len(line), pos)
}

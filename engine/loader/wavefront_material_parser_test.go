package loader

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMaterials(t *testing.T) {
	src := `# Blender MTL File
newmtl Hull
Ns 96.078431
Ka 0.000000 0.000000 0.000000
Kd 0.640000 0.120000 0.050000
Ks 0.500000 0.500000 0.500000
illum 2

newmtl Glass
d 0.4
`
	table, err := parseMaterials("ship.mtl", strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, table, 2)
	assert.Equal(t, [3]float32{0.64, 0.12, 0.05}, table["Hull"])
	assert.Equal(t, [3]float32{0, 0, 0}, table["Glass"], "materials without Kd default to black")
}

func TestParseMaterialsRedefinitionResetsColor(t *testing.T) {
	src := "newmtl a\nKd 1 1 1\nnewmtl a\n"
	table, err := parseMaterials("x.mtl", strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, [3]float32{}, table["a"])
}

func TestParseMaterialsExtraSpaces(t *testing.T) {
	src := "newmtl a\nKd   0.5\t0.25  1  \n"
	table, err := parseMaterials("x.mtl", strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, [3]float32{0.5, 0.25, 1}, table["a"])
}

func TestParseMaterialsKdBeforeNewmtl(t *testing.T) {
	_, err := parseMaterials("x.mtl", strings.NewReader("Kd 1 0 0\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMaterialNotFound)

	var le *LoadError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, ErrorKindLookup, le.Kind)
	assert.Equal(t, 1, le.Line)
}

func TestParseMaterialsMalformed(t *testing.T) {
	tests := []struct {
		name string
		src  string
		line int
	}{
		{name: "not a number", src: "newmtl a\nKd 1 zero 0\n", line: 2},
		{name: "missing component", src: "newmtl a\n\nKd 1 0\n", line: 3},
		{name: "empty Kd", src: "newmtl a\nKd \n", line: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseMaterials("bad.mtl", strings.NewReader(tt.src))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrParse)

			var le *LoadError
			require.True(t, errors.As(err, &le))
			assert.Equal(t, "bad.mtl", le.Path)
			assert.Equal(t, tt.line, le.Line)
		})
	}
}

func TestParseMaterialsIgnoresShortStatements(t *testing.T) {
	table, err := parseMaterials("x.mtl", strings.NewReader("newmtl\nKd\nK\n"))
	require.NoError(t, err)
	assert.Empty(t, table)
}

func TestParseMaterialsOverflowBecomesInf(t *testing.T) {
	table, err := parseMaterials("x.mtl", strings.NewReader("newmtl hot\nKd 1e39 0.5 -1e39\n"))
	require.NoError(t, err)
	inf := float32(math.Inf(1))
	assert.Equal(t, [3]float32{inf, 0.5, -inf}, table["hot"])
}

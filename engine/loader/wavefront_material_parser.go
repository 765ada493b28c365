package loader

import (
	"bytes"
	"io"
)

// MaterialTable maps a material name to its diffuse RGB color.
type MaterialTable map[string][3]float32

var (
	newmtlPrefix = []byte("newmtl")
	kdPrefix     = []byte("Kd")
)

// parseMaterials builds the material table from a material library stream.
// A newmtl statement selects a material and resets its color to black. A Kd statement
// overwrites the color of the selected material. Every other statement is ignored.
//
// Parameters:
//   - path: the stream name used in error messages
//   - r: the material library contents
//
// Returns:
//   - MaterialTable: every material defined by the stream
//   - error: a *LoadError on a malformed Kd value, a Kd before any newmtl, or a read failure
func parseMaterials(path string, r io.Reader) (MaterialTable, error) {
	table := make(MaterialTable)
	active := ""

	s := newLineScanner(path, r)
	for s.Scan() {
		line := s.Bytes()
		switch {
		case len(line) > 6 && bytes.HasPrefix(line, newmtlPrefix):
			active = string(line[7:])
			table[active] = [3]float32{}
		case len(line) > 2 && bytes.HasPrefix(line, kdPrefix):
			kd, err := s.parseVec3(line, 3)
			if err != nil {
				return nil, err
			}
			if _, ok := table[active]; !ok {
				return nil, s.errorf(ErrorKindLookup, "Kd for %q before any newmtl", active)
			}
			table[active] = kd
		}
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return table, nil
}

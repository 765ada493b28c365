package loader

import (
	"bytes"
	"io"

	"github.com/Carmen-Shannon/frost/engine/model"
)

// corner is one vertex reference of a face: 0-based indices plus the material that was
// active when the corner was read.
type corner struct {
	position int
	texCoord int
	normal   int
	material string
}

var usemtlPrefix = []byte("usemtl")

// parseGeometry reads a geometry stream and returns its faces as a flat triangle list.
// Positions and normals are mirrored on x as they are read. Faces are fan triangulated
// around their first corner with the winding (first, next, current), and every corner is
// colored with the diffuse color of the material active when the corner was read.
// Faces with fewer than three corners are dropped.
//
// Parameters:
//   - path: the stream name used in error messages
//   - r: the geometry contents
//   - materials: the table built from the companion material library
//
// Returns:
//   - []model.Element: three elements per triangle, in file order
//   - error: a *LoadError on a malformed number, an index out of range, an unknown material
//     or a read failure
func parseGeometry(path string, r io.Reader, materials MaterialTable) ([]model.Element, error) {
	var (
		positions [][3]float32
		normals   [][3]float32
		elements  []model.Element
		corners   []corner
		resolved  []model.Element
	)
	active := ""

	s := newLineScanner(path, r)
	for s.Scan() {
		line := s.Bytes()
		if len(line) < 2 {
			continue
		}
		switch {
		case line[0] == 'v' && line[1] == ' ':
			p, err := s.parseVec3(line, 2)
			if err != nil {
				return nil, err
			}
			p[0] = -p[0]
			positions = append(positions, p)
		case line[0] == 'v' && line[1] == 'n':
			n, err := s.parseVec3(line, 3)
			if err != nil {
				return nil, err
			}
			n[0] = -n[0]
			normals = append(normals, n)
		case len(line) > 6 && bytes.HasPrefix(line, usemtlPrefix):
			active = string(line[7:])
		case line[0] == 'f' && line[1] == ' ':
			var err error
			corners, err = s.parseFace(line, active, corners[:0])
			if err != nil {
				return nil, err
			}
			if len(corners) < 3 {
				continue
			}
			resolved = resolved[:0]
			for _, c := range corners {
				e, err := s.resolveCorner(c, positions, normals, materials)
				if err != nil {
					return nil, err
				}
				resolved = append(resolved, e)
			}
			elements = appendFan(elements, resolved)
		}
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return elements, nil
}

// parseFace reads every corner of a face statement into dst.
func (s *lineScanner) parseFace(line []byte, material string, dst []corner) ([]corner, error) {
	pos := 2
	for {
		for pos < len(line) && isSpace(line[pos]) {
			pos++
		}
		if pos >= len(line) {
			return dst, nil
		}
		c, next, err := s.parseCorner(line, pos)
		if err != nil {
			return nil, err
		}
		c.material = material
		dst = append(dst, c)
		pos = next
	}
}

// parseCorner reads one position/texcoord/normal triple starting at pos and returns the
// position just past it. Omitted slots resolve to index 0.
func (s *lineScanner) parseCorner(line []byte, pos int) (corner, int, error) {
	var idx [3]int
	for i := range idx {
		var field []byte
		field, pos = nextIndexField(line, pos)
		n, err := s.parseIndex(field)
		if err != nil {
			return corner{}, pos, err
		}
		idx[i] = n
	}
	return corner{position: idx[0], texCoord: idx[1], normal: idx[2]}, pos, nil
}

// resolveCorner looks up the position, normal and material color a corner refers to.
func (s *lineScanner) resolveCorner(c corner, positions, normals [][3]float32, materials MaterialTable) (model.Element, error) {
	if c.position < 0 || c.position >= len(positions) {
		return model.Element{}, s.errorf(ErrorKindIndex, "position %d of %d", c.position+1, len(positions))
	}
	if c.normal < 0 || c.normal >= len(normals) {
		return model.Element{}, s.errorf(ErrorKindIndex, "normal %d of %d", c.normal+1, len(normals))
	}
	color, ok := materials[c.material]
	if !ok {
		return model.Element{}, s.errorf(ErrorKindLookup, "material %q", c.material)
	}
	return model.Element{
		Position: positions[c.position],
		Normal:   normals[c.normal],
		Color:    color,
	}, nil
}

// appendFan appends the fan triangulation of a convex polygon to dst. For corners
// c0..cn-1 it emits (c0, c[i+1], c[i]) for i in 1..n-2.
func appendFan(dst []model.Element, polygon []model.Element) []model.Element {
	for start := 1; start+1 < len(polygon); start++ {
		dst = append(dst, polygon[0], polygon[start+1], polygon[start])
	}
	return dst
}

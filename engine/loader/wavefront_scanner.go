package loader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// maxLineSize bounds a single line of a geometry or material file.
const maxLineSize = 1 << 20

// lineScanner walks a Wavefront text stream line by line and tags errors with the
// stream name and current line number.
type lineScanner struct {
	path    string
	line    int
	scanner *bufio.Scanner
}

func newLineScanner(path string, r io.Reader) *lineScanner {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &lineScanner{path: path, scanner: s}
}

// Scan advances to the next line. Trailing carriage returns are stripped.
func (s *lineScanner) Scan() bool {
	if !s.scanner.Scan() {
		return false
	}
	s.line++
	return true
}

// Bytes returns the current line. The slice is only valid until the next Scan.
func (s *lineScanner) Bytes() []byte {
	return s.scanner.Bytes()
}

// Err returns the read error that stopped scanning, wrapped as an IO LoadError.
func (s *lineScanner) Err() error {
	if err := s.scanner.Err(); err != nil {
		return &LoadError{Kind: ErrorKindIO, Path: s.path, Line: s.line + 1, Err: err}
	}
	return nil
}

func (s *lineScanner) errorf(kind ErrorKind, format string, args ...any) error {
	return &LoadError{
		Kind: kind,
		Path: s.path,
		Line: s.line,
		Err:  fmt.Errorf("%w: %s", kind.sentinel(), fmt.Sprintf(format, args...)),
	}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t'
}

// nextField skips separators starting at pos and returns the run of bytes up to the next
// separator or end of line, along with the position just past that run.
func nextField(line []byte, pos int) ([]byte, int) {
	pos = min(pos, len(line))
	for pos < len(line) && isSpace(line[pos]) {
		pos++
	}
	start := pos
	for pos < len(line) && !isSpace(line[pos]) {
		pos++
	}
	return line[start:pos], pos
}

// nextIndexField reads one slot of a face corner. A single leading '/' is consumed, then
// bytes are collected up to the next '/', separator or end of line. Reading past the end
// of the line yields an empty field.
func nextIndexField(line []byte, pos int) ([]byte, int) {
	pos = min(pos, len(line))
	if pos < len(line) && line[pos] == '/' {
		pos++
	}
	start := pos
	for pos < len(line) && line[pos] != '/' && !isSpace(line[pos]) {
		pos++
	}
	return line[start:pos], pos
}

// parseVec3 reads three float fields starting at pos. Well-formed values beyond the float32
// range become ±Inf rather than failing.
func (s *lineScanner) parseVec3(line []byte, pos int) ([3]float32, error) {
	var v [3]float32
	for i := range v {
		var field []byte
		field, pos = nextField(line, pos)
		f, err := strconv.ParseFloat(string(field), 32)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return v, s.errorf(ErrorKindParse, "field %d %q is not a float", i+1, field)
		}
		v[i] = float32(f)
	}
	return v, nil
}

// parseIndex converts a 1-based index field to a 0-based index. An empty field means the
// slot was omitted and resolves to 0, the same value as an explicit "1". An explicit "0"
// resolves to -1 and fails the later range check.
func (s *lineScanner) parseIndex(field []byte) (int, error) {
	if len(field) == 0 {
		return 0, nil
	}
	n, err := strconv.ParseUint(string(field), 10, 31)
	if err != nil {
		return 0, s.errorf(ErrorKindParse, "index %q is not a non-negative integer", field)
	}
	return int(n) - 1, nil
}

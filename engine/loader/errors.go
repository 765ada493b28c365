package loader

import (
	"errors"
	"fmt"
)

// ErrorKind classifies why a load failed.
type ErrorKind int

const (
	// ErrorKindIO indicates a file could not be opened or read.
	ErrorKindIO ErrorKind = iota

	// ErrorKindParse indicates a numeric field did not parse as the expected number.
	ErrorKindParse

	// ErrorKindLookup indicates a face or Kd statement referenced a material that is not defined.
	ErrorKindLookup

	// ErrorKindIndex indicates a face corner referenced a position or normal that does not exist.
	ErrorKindIndex
)

// Sentinel errors matched by LoadError.Is, one per ErrorKind.
var (
	ErrIO               = errors.New("io failure")
	ErrParse            = errors.New("malformed number")
	ErrMaterialNotFound = errors.New("material not found")
	ErrIndexOutOfRange  = errors.New("index out of range")
)

// String returns the lowercase name of the kind.
func (k ErrorKind) String() string {
	switch k {
	case ErrorKindIO:
		return "io"
	case ErrorKindParse:
		return "parse"
	case ErrorKindLookup:
		return "lookup"
	case ErrorKindIndex:
		return "index"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

func (k ErrorKind) sentinel() error {
	switch k {
	case ErrorKindIO:
		return ErrIO
	case ErrorKindParse:
		return ErrParse
	case ErrorKindLookup:
		return ErrMaterialNotFound
	case ErrorKindIndex:
		return ErrIndexOutOfRange
	default:
		return nil
	}
}

// LoadError is returned for every failed load. It records which file and line failed and why.
// Use errors.Is with the sentinel errors (ErrParse, ErrIndexOutOfRange, ...) or errors.As to
// inspect the Kind directly.
type LoadError struct {
	// Kind classifies the failure.
	Kind ErrorKind

	// Path is the file (or stream name) being read when the failure happened.
	Path string

	// Line is the 1-based line number, or 0 when the failure is not tied to a line.
	Line int

	// Err is the underlying cause.
	Err error
}

func (e *LoadError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %s: %v", e.Path, e.Line, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Path, e.Kind, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel error for this error's Kind.
func (e *LoadError) Is(target error) bool {
	return target != nil && target == e.Kind.sentinel()
}

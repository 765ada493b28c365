// annotations.go defines the WGSL annotations understood by the PreProcessor. Annotations are
// single-line WGSL comments prefixed with @frost: that pull registered struct sources into a
// shader and generate its uniform and storage declarations.
package shader

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// annotationPrefix marks an annotation inside a WGSL comment line.
const annotationPrefix = "@frost:"

// AnnotationType identifies the kind of annotation parsed from a WGSL comment line.
type AnnotationType string

const (
	// AnnotationTypeInclude injects the WGSL source of a registered struct at the annotation site.
	//
	// Syntax: //@frost:include <struct>
	//
	// Example: //@frost:include camera
	AnnotationTypeInclude AnnotationType = "include"

	// AnnotationTypeBindingGroup generates a @group/@binding variable declaration and records it
	// in the PreProcessor's declarations list so callers can locate the binding by name.
	//
	// Syntax: //@frost:group <group> <binding> <address_space> <var_name> <struct>
	//
	// Example: //@frost:group 0 0 uniform camera camera
	AnnotationTypeBindingGroup AnnotationType = "group"
)

// Annotation is a single parsed @frost: annotation.
type Annotation struct {
	Type AnnotationType

	// Args depends on Type:
	//   - include: [0] = struct key
	//   - group:   [0] = address space, [1] = var name, [2] = struct key, optionally array<key>
	Args []AnnotationArg

	// Line is the 1-based source line, for error reporting.
	Line int

	// Group and Binding are set for group annotations only.
	Group   *int
	Binding *int
}

// VarName returns the WGSL variable name of a group annotation, or "" for any other type.
func (a Annotation) VarName() string {
	if a.Type != AnnotationTypeBindingGroup {
		return ""
	}
	return string(a.Args[1])
}

// AnnotationArg is a single annotation argument: a struct key or an address space.
type AnnotationArg string

const (
	AnnotationArgUniform          AnnotationArg = "uniform"
	AnnotationArgStorageRead      AnnotationArg = "storage_read"
	AnnotationArgStorageReadWrite AnnotationArg = "storage_read_write"
)

// addressSpaces maps address space arguments to their WGSL var<> syntax.
var addressSpaces = map[AnnotationArg]string{
	AnnotationArgUniform:          "var<uniform>",
	AnnotationArgStorageRead:      "var<storage, read>",
	AnnotationArgStorageReadWrite: "var<storage, read_write>",
}

// parseAnnotation parses one WGSL source line. Lines without the annotation prefix return nil
// and no error. Struct keys are not checked here; the PreProcessor resolves them against its
// registry.
//
// Parameters:
//   - line: the raw WGSL source line
//   - lineNum: the 1-based line number for error reporting
//
// Returns:
//   - *Annotation: the parsed annotation, or nil if the line is not an annotation
//   - error: an error if the annotation is malformed
func parseAnnotation(line string, lineNum int) (*Annotation, error) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "//") {
		return nil, nil
	}
	_, after, ok := strings.Cut(trimmed, annotationPrefix)
	if !ok {
		return nil, nil
	}

	args := strings.Fields(after)
	if len(args) == 0 {
		return nil, fmt.Errorf("line %d: empty annotation", lineNum)
	}

	switch AnnotationType(args[0]) {
	case AnnotationTypeInclude:
		if len(args) != 2 {
			return nil, fmt.Errorf("line %d: include annotation requires exactly one argument", lineNum)
		}
		return &Annotation{
			Type: AnnotationTypeInclude,
			Args: []AnnotationArg{AnnotationArg(args[1])},
			Line: lineNum,
		}, nil
	case AnnotationTypeBindingGroup:
		if len(args) != 6 {
			return nil, fmt.Errorf("line %d: group annotation requires five arguments (group, binding, address space, var name, struct)", lineNum)
		}
		group, err := strconv.Atoi(args[1])
		if err != nil || group < 0 {
			return nil, fmt.Errorf("line %d: invalid group number %q", lineNum, args[1])
		}
		binding, err := strconv.Atoi(args[2])
		if err != nil || binding < 0 {
			return nil, fmt.Errorf("line %d: invalid binding number %q", lineNum, args[2])
		}
		if _, ok := addressSpaces[AnnotationArg(args[3])]; !ok {
			spaces := make([]string, 0, len(addressSpaces))
			for k := range addressSpaces {
				spaces = append(spaces, string(k))
			}
			slices.Sort(spaces)
			return nil, fmt.Errorf("line %d: unknown address space %q (want one of %s)", lineNum, args[3], strings.Join(spaces, ", "))
		}
		return &Annotation{
			Type:    AnnotationTypeBindingGroup,
			Args:    []AnnotationArg{AnnotationArg(args[3]), AnnotationArg(args[4]), AnnotationArg(args[5])},
			Line:    lineNum,
			Group:   &group,
			Binding: &binding,
		}, nil
	default:
		return nil, fmt.Errorf("line %d: unknown annotation type %q", lineNum, args[0])
	}
}

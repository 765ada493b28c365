// pre_processor.go implements the WGSL pre-processor. It replaces @frost: annotations with the
// registered struct sources or generated binding declarations and collects the declarations so
// callers can look bindings up by variable name.
package shader

import (
	"fmt"
	"strings"
)

// registryEntry pairs a WGSL struct source with the type name used in generated declarations.
type registryEntry struct {
	Source string
	Type   string
}

// preProcessor is the implementation of the PreProcessor interface.
type preProcessor struct {
	structRegistry map[AnnotationArg]registryEntry

	// group annotations from the last Process call
	declarations []Annotation
}

// PreProcessor expands @frost: annotations in WGSL source.
type PreProcessor interface {
	// Process replaces include annotations with the registered struct source and group
	// annotations with @group/@binding declarations. The declarations list is reset on each call.
	//
	// Parameters:
	//   - source: WGSL source containing annotations
	//
	// Returns:
	//   - string: the expanded WGSL source
	//   - error: an error if an annotation is malformed or names an unregistered struct
	Process(source string) (string, error)

	// Declarations returns the group annotations collected by the last Process call in source order.
	//
	// Returns:
	//   - []Annotation: the collected declarations
	Declarations() []Annotation

	// Declaration finds the group annotation that declared varName.
	//
	// Parameters:
	//   - varName: the WGSL variable name
	//
	// Returns:
	//   - Annotation: the declaration
	//   - bool: false if no declaration matched
	Declaration(varName string) (Annotation, bool)
}

var _ PreProcessor = &preProcessor{}

// NewPreProcessor creates a PreProcessor with the structs registered through options.
//
// Parameters:
//   - options: functional options registering WGSL structs
//
// Returns:
//   - PreProcessor: a ready-to-use pre-processor
func NewPreProcessor(options ...PreProcessorBuilderOption) PreProcessor {
	p := &preProcessor{
		structRegistry: make(map[AnnotationArg]registryEntry),
	}
	for _, opt := range options {
		opt(p)
	}
	return p
}

func (p *preProcessor) Process(source string) (string, error) {
	p.declarations = p.declarations[:0]

	lines := strings.Split(source, "\n")
	out := make([]string, 0, len(lines))
	included := make(map[AnnotationArg]bool)

	for i, line := range lines {
		a, err := parseAnnotation(line, i+1)
		if err != nil {
			return "", err
		}
		if a == nil {
			out = append(out, line)
			continue
		}

		switch a.Type {
		case AnnotationTypeInclude:
			entry, ok := p.structRegistry[a.Args[0]]
			if !ok {
				return "", fmt.Errorf("line %d: unknown struct %q", a.Line, a.Args[0])
			}
			// a second include of the same struct would redeclare it
			if included[a.Args[0]] {
				continue
			}
			included[a.Args[0]] = true
			out = append(out, strings.TrimRight(entry.Source, "\n"))
		case AnnotationTypeBindingGroup:
			wgslType, err := p.resolveType(a.Args[2])
			if err != nil {
				return "", fmt.Errorf("line %d: %w", a.Line, err)
			}
			out = append(out, fmt.Sprintf("@group(%d) @binding(%d) %s %s: %s;",
				*a.Group, *a.Binding, addressSpaces[a.Args[0]], a.Args[1], wgslType))
			p.declarations = append(p.declarations, *a)
		}
	}
	return strings.Join(out, "\n"), nil
}

// resolveType maps a struct key, optionally wrapped in array<>, to its WGSL type name.
func (p *preProcessor) resolveType(arg AnnotationArg) (string, error) {
	if inner, ok := strings.CutPrefix(string(arg), "array<"); ok {
		inner = strings.TrimSuffix(inner, ">")
		entry, ok := p.structRegistry[AnnotationArg(inner)]
		if !ok {
			return "", fmt.Errorf("unknown array element struct %q", inner)
		}
		return fmt.Sprintf("array<%s>", entry.Type), nil
	}
	entry, ok := p.structRegistry[arg]
	if !ok {
		return "", fmt.Errorf("unknown struct %q", arg)
	}
	return entry.Type, nil
}

func (p *preProcessor) Declarations() []Annotation {
	return p.declarations
}

func (p *preProcessor) Declaration(varName string) (Annotation, bool) {
	for _, a := range p.declarations {
		if a.VarName() == varName {
			return a, true
		}
	}
	return Annotation{}, false
}

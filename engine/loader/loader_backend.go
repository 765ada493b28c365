package loader

import (
	"io"

	"github.com/Carmen-Shannon/frost/engine/model"
)

// loaderBackend defines the generic interface for turning a geometry file and its
// companion material file into a triangle list.
// Concrete implementations (e.g., wavefrontLoaderBackend) handle format-specific details.
type loaderBackend interface {
	// Load reads both files from disk. The material file is fully read before the geometry file
	// is opened, and both are closed before Load returns.
	//
	// Parameters:
	//   - geometryPath: the geometry file path
	//   - materialPath: the material library path
	//
	// Returns:
	//   - []model.Element: the triangle list
	//   - error: error if either file fails to open, read or parse
	Load(geometryPath, materialPath string) ([]model.Element, error)

	// LoadReader reads both inputs from streams.
	//
	// Parameters:
	//   - name: a name used in error messages
	//   - geometry: the geometry stream
	//   - materials: the material library stream
	//
	// Returns:
	//   - []model.Element: the triangle list
	//   - error: error if either stream fails to read or parse
	LoadReader(name string, geometry, materials io.Reader) ([]model.Element, error)
}

package loader

import (
	"io"
	"os"

	"github.com/Carmen-Shannon/frost/engine/model"
)

// wavefrontLoaderBackendImpl is the implementation of wavefrontLoaderBackend.
type wavefrontLoaderBackendImpl struct{}

// wavefrontLoaderBackend is a loaderBackend implementation for Wavefront .obj/.mtl pairs.
type wavefrontLoaderBackend interface {
	loaderBackend
}

var _ wavefrontLoaderBackend = &wavefrontLoaderBackendImpl{}

// newWavefrontLoaderBackend creates a new Wavefront loader backend.
//
// Returns:
//   - wavefrontLoaderBackend: the loader backend for .obj/.mtl files
func newWavefrontLoaderBackend() wavefrontLoaderBackend {
	return &wavefrontLoaderBackendImpl{}
}

func (b *wavefrontLoaderBackendImpl) Load(geometryPath, materialPath string) ([]model.Element, error) {
	table, err := readFile(materialPath, parseMaterials)
	if err != nil {
		return nil, err
	}
	return readFile(geometryPath, func(path string, r io.Reader) ([]model.Element, error) {
		return parseGeometry(path, r, table)
	})
}

func (b *wavefrontLoaderBackendImpl) LoadReader(name string, geometry, materials io.Reader) ([]model.Element, error) {
	table, err := parseMaterials(name+".mtl", materials)
	if err != nil {
		return nil, err
	}
	return parseGeometry(name+".obj", geometry, table)
}

// readFile opens path, hands it to parse and closes it again whatever the outcome.
func readFile[T any](path string, parse func(string, io.Reader) (T, error)) (T, error) {
	var zero T
	f, err := os.Open(path)
	if err != nil {
		return zero, &LoadError{Kind: ErrorKindIO, Path: path, Err: err}
	}
	defer f.Close()
	return parse(path, f)
}

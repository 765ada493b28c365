package loader

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/Carmen-Shannon/frost/engine/model"
	"github.com/Carmen-Shannon/frost/engine/renderer"
	"github.com/Carmen-Shannon/frost/engine/renderer/bind_group_provider"

	"github.com/Carmen-Shannon/automation/tools/worker"
)

// LoaderBackendType identifies the model file format backend to use.
type LoaderBackendType int

const (
	// BackendTypeWavefront selects the Wavefront .obj/.mtl loader backend.
	BackendTypeWavefront LoaderBackendType = iota
)

// DefaultWorkers is the size of the loader's LoadAll worker pool when WithWorkers is not given.
const DefaultWorkers = 4

// loader is the implementation of the Loader interface.
type loader struct {
	mu sync.RWMutex

	renderer renderer.Renderer
	logger   *slog.Logger
	workers  int
	pool     worker.DynamicWorkerPool

	modelCache map[string]model.Model

	backend loaderBackend
}

// Loader defines the public-facing interface for loading and caching Wavefront models.
// It abstracts the file format behind a backend and keeps a cache of loaded models keyed
// by model path without extension, so "ship", "ship.obj" and "ship.mtl" share one entry.
type Loader interface {
	// Load imports the geometry file <base>.obj together with its material library <base>.mtl
	// and caches the result. path may name either file or omit the extension.
	// If the model is already cached, the cached version is returned.
	// When the Loader has a Renderer, the vertex buffer is uploaded before Load returns.
	//
	// Parameters:
	//   - path: the model path, with or without the .obj/.mtl extension
	//
	// Returns:
	//   - model.Model: the loaded and cached model
	//   - error: a *LoadError for file and content failures, or an upload error
	Load(path string) (model.Model, error)

	// LoadReader imports a model from two streams and caches it by the given name.
	//
	// Parameters:
	//   - name: the cache key and model name
	//   - geometry: the .obj contents
	//   - materials: the .mtl contents
	//
	// Returns:
	//   - model.Model: the loaded model
	//   - error: error if loading fails
	LoadReader(name string, geometry, materials io.Reader) (model.Model, error)

	// LoadAll loads several models concurrently on a worker pool. Each individual load runs
	// sequentially on one worker. Either every model loads or an error is returned.
	//
	// Parameters:
	//   - paths: the model paths, as accepted by Load
	//
	// Returns:
	//   - map[string]model.Model: the loaded models keyed by the path they were requested with
	//   - error: the joined errors of every failed load
	LoadAll(paths ...string) (map[string]model.Model, error)

	// Get retrieves a cached model by key. Returns nil if not found.
	//
	// Parameters:
	//   - key: the model path without extension, or the name given to LoadReader
	//
	// Returns:
	//   - model.Model: the cached model or nil
	Get(key string) model.Model

	// Models returns a copy of the model cache.
	//
	// Returns:
	//   - map[string]model.Model: all cached models keyed by cache key
	Models() map[string]model.Model

	// Evict removes a model from the cache and releases its GPU resources.
	//
	// Parameters:
	//   - key: the cache key to remove
	Evict(key string)
}

var _ Loader = &loader{}

// NewLoader creates a new Loader instance with the specified backend type and options applied.
//
// Parameters:
//   - backendType: the type of loader backend to use (e.g., BackendTypeWavefront)
//   - options: a variadic list of LoaderBuilderOption functions to configure the Loader
//
// Returns:
//   - Loader: a new instance of Loader configured with the provided backend and options
func NewLoader(backendType LoaderBackendType, options ...LoaderBuilderOption) Loader {
	l := &loader{
		mu:         sync.RWMutex{},
		modelCache: make(map[string]model.Model),
		workers:    DefaultWorkers,
		logger:     slog.Default(),
	}

	switch backendType {
	case BackendTypeWavefront:
		l.backend = newWavefrontLoaderBackend()
	}

	for _, option := range options {
		option(l)
	}

	// shared by every LoadAll call for the lifetime of the loader
	l.pool = worker.NewDynamicWorkerPool(l.workers, l.workers*4, 1*time.Second)
	return l
}

func (l *loader) Load(path string) (model.Model, error) {
	key, err := cacheKey(path)
	if err != nil {
		return nil, err
	}
	if cached := l.Get(key); cached != nil {
		return cached, nil
	}

	backend, err := l.resolveBackend(path)
	if err != nil {
		return nil, err
	}

	began := time.Now()
	elements, err := backend.Load(key+".obj", key+".mtl")
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}

	m, err := l.elementsToModel(filepath.Base(key), elements)
	if err != nil {
		return nil, err
	}
	l.logger.Debug("[Loader] loaded model",
		"path", path,
		"vertices", m.VertexCount(),
		"triangles", m.TriangleCount(),
		"elapsed", time.Since(began),
	)

	return l.store(key, m), nil
}

func (l *loader) LoadReader(name string, geometry, materials io.Reader) (model.Model, error) {
	if cached := l.Get(name); cached != nil {
		return cached, nil
	}

	elements, err := l.backend.LoadReader(name, geometry, materials)
	if err != nil {
		return nil, fmt.Errorf("failed to load from reader %q: %w", name, err)
	}

	m, err := l.elementsToModel(name, elements)
	if err != nil {
		return nil, err
	}
	return l.store(name, m), nil
}

func (l *loader) LoadAll(paths ...string) (map[string]model.Model, error) {
	if len(paths) == 0 {
		return map[string]model.Model{}, nil
	}

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		results = make(map[string]model.Model, len(paths))
		errs    []error
	)
	for id, path := range paths {
		wg.Add(1)
		l.pool.SubmitTask(worker.Task{
			ID: id,
			Do: func() (any, error) {
				defer wg.Done()
				m, err := l.Load(path)
				mu.Lock()
				defer mu.Unlock()
				if err != nil {
					errs = append(errs, err)
					return nil, err
				}
				results[path] = m
				return m, nil
			},
		})
	}
	wg.Wait()

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return results, nil
}

func (l *loader) Get(key string) model.Model {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.modelCache[key]
}

func (l *loader) Models() map[string]model.Model {
	l.mu.RLock()
	defer l.mu.RUnlock()

	result := make(map[string]model.Model, len(l.modelCache))
	for k, v := range l.modelCache {
		result[k] = v
	}
	return result
}

func (l *loader) Evict(key string) {
	l.mu.Lock()
	m, ok := l.modelCache[key]
	delete(l.modelCache, key)
	l.mu.Unlock()

	if ok {
		m.Release()
	}
}

// store caches m under key unless a concurrent load got there first, in which case the
// earlier model wins and m is released.
func (l *loader) store(key string, m model.Model) model.Model {
	l.mu.Lock()
	defer l.mu.Unlock()
	if existing, ok := l.modelCache[key]; ok {
		m.Release()
		return existing
	}
	l.modelCache[key] = m
	return m
}

// resolveBackend selects an appropriate loader backend based on the file extension.
// Paths without an extension are treated as Wavefront base names.
func (l *loader) resolveBackend(path string) (loaderBackend, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case "", ".obj", ".mtl":
		return l.backend, nil
	default:
		return nil, fmt.Errorf("unsupported model format: %s", ext)
	}
}

// cacheKey strips a .obj or .mtl extension from path.
func cacheKey(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("empty model path")
	}
	ext := filepath.Ext(path)
	switch strings.ToLower(ext) {
	case ".obj", ".mtl":
		return strings.TrimSuffix(path, ext), nil
	default:
		return path, nil
	}
}

// elementsToModel wraps a triangle list in a Model and, when a Renderer is available,
// uploads its vertex buffer.
//
// Parameters:
//   - name: the model name
//   - elements: the triangle list produced by the backend
//
// Returns:
//   - model.Model: the engine-ready Model
//   - error: error if GPU resource creation fails
func (l *loader) elementsToModel(name string, elements []model.Element) (model.Model, error) {
	mdl := model.NewModel(
		model.WithName(name),
		model.WithElements(elements),
	)

	if l.renderer == nil {
		return mdl, nil
	}
	if mdl.VertexCount() == 0 {
		l.logger.Warn("[Loader] model has no triangles, skipping upload", "model", name)
		return mdl, nil
	}

	provider := bind_group_provider.NewBindGroupProvider(name + "_mesh")
	if err := l.renderer.InitVertexBuffer(provider, mdl.VertexData(), mdl.VertexCount()); err != nil {
		return nil, fmt.Errorf("failed to init vertex buffer for %q: %w", name, err)
	}
	mdl.SetMeshProvider(provider)
	return mdl, nil
}

package viewer

import (
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/Carmen-Shannon/frost/common"
	"github.com/Carmen-Shannon/frost/engine/camera"
	"github.com/Carmen-Shannon/frost/engine/loader"
	"github.com/Carmen-Shannon/frost/engine/model"
	"github.com/Carmen-Shannon/frost/engine/profiler"
	"github.com/Carmen-Shannon/frost/engine/renderer"
	"github.com/Carmen-Shannon/frost/engine/renderer/bind_group_provider"
	"github.com/Carmen-Shannon/frost/engine/renderer/pipeline"
	"github.com/Carmen-Shannon/frost/engine/renderer/shader"
	"github.com/Carmen-Shannon/frost/engine/window"
)

//go:embed assets/flat.wgsl
var flatShaderSource string

// FlatPipelineKey is the renderer cache key of the pipeline that draws loaded models.
const FlatPipelineKey = "flat"

// FlatShaderSource expands the flat pipeline's WGSL program: the camera uniform and the element
// vertex input are included and the camera binding is declared.
//
// Returns:
//   - string: the WGSL source
//   - int: the bind group index of the camera uniform
//   - error: an error if the annotations could not be expanded
func FlatShaderSource() (string, int, error) {
	pp := shader.NewPreProcessor(
		shader.WithStruct("camera", camera.GPUCameraUniformSource, "CameraUniform"),
		shader.WithStruct("element", model.ElementSource, "VertexInput"),
	)
	source, err := pp.Process(flatShaderSource)
	if err != nil {
		return "", 0, fmt.Errorf("flat shader: %w", err)
	}
	decl, ok := pp.Declaration("camera")
	if !ok {
		return "", 0, fmt.Errorf("flat shader: no camera binding declared")
	}
	return source, *decl.Group, nil
}

// viewer implements the Viewer interface.
type viewer struct {
	logger *slog.Logger

	window   window.Window
	renderer renderer.Renderer
	loader   loader.Loader
	camera   camera.Camera
	pipeline pipeline.Pipeline

	model model.Model

	// eye distance in bounding-sphere radii when a model is framed
	cameraDistance float32

	profiler         *profiler.Profiler
	profilingEnabled bool

	renderFrameLimit time.Duration // minimum frame duration; 0 = uncapped

	quit atomic.Bool
}

// Viewer opens a window and draws one loaded model with an orbit camera.
//
// Input: arrow keys orbit, +/- and the scroll wheel zoom, left drag orbits, R resets the view
// and Escape closes the window.
type Viewer interface {
	// Window returns the underlying window.
	Window() window.Window

	// Renderer returns the renderer drawing into the window.
	Renderer() renderer.Renderer

	// Camera returns the orbit camera.
	Camera() camera.Camera

	// Model returns the model being displayed, or nil before Load.
	Model() model.Model

	// Load loads a model through the viewer's loader, uploads it and frames the camera around it.
	//
	// Parameters:
	//   - path: the model path (<name>, <name>.obj or <name>.mtl)
	//
	// Returns:
	//   - error: the loader error, if any
	Load(path string) error

	// EnableProfiler enables periodic frame statistics in the log.
	EnableProfiler()

	// DisableProfiler disables frame statistics.
	DisableProfiler()

	// SetRenderFrameLimit caps the frame rate. Pass 0 to uncap.
	//
	// Parameters:
	//   - fps: maximum frames per second (0 = uncapped)
	SetRenderFrameLimit(fps float64)

	// Run processes window events and draws frames until the window closes, then releases GPU resources.
	Run()

	// Quit asks the frame loop to close the window. Safe to call multiple times.
	Quit()
}

var _ Viewer = &viewer{}

// NewViewer creates a Viewer. A window, WebGPU renderer and Wavefront loader are created for any
// collaborator not supplied through options.
//
// Parameters:
//   - options: functional options for viewer configuration
//
// Returns:
//   - Viewer: the newly created viewer
//   - error: an error if the shading pipeline or camera uniforms could not be created
func NewViewer(options ...ViewerBuilderOption) (Viewer, error) {
	v := &viewer{
		logger:         slog.Default(),
		cameraDistance: 2.5,
	}
	for _, opt := range options {
		opt(v)
	}
	v.logger = v.logger.With("component", "viewer")

	if v.window == nil {
		v.window = window.NewWindow()
	}
	if v.renderer == nil {
		v.renderer = renderer.NewRenderer(renderer.BackendTypeWGPU, v.window)
	}
	if v.loader == nil {
		v.loader = loader.NewLoader(loader.BackendTypeWavefront,
			loader.WithRenderer(v.renderer),
			loader.WithLogger(v.logger),
		)
	}
	if v.camera == nil {
		v.camera = camera.NewCamera(camera.WithController(camera.NewCameraController()))
	}
	v.camera.SetAspect(aspect(v.window.Width(), v.window.Height()))
	if v.profiler == nil {
		v.profiler = profiler.NewProfiler(v.logger, time.Second)
	}

	source, cameraGroup, err := FlatShaderSource()
	if err != nil {
		return nil, err
	}
	v.pipeline = pipeline.NewPipeline(FlatPipelineKey,
		pipeline.WithVertexShader(shader.NewShader(FlatPipelineKey+"_vs", shader.ShaderTypeVertex, source)),
		pipeline.WithFragmentShader(shader.NewShader(FlatPipelineKey+"_fs", shader.ShaderTypeFragment, source)),
	)
	if err := v.renderer.RegisterPipelines(v.pipeline); err != nil {
		return nil, fmt.Errorf("failed to register %s pipeline: %w", FlatPipelineKey, err)
	}
	if err := v.renderer.InitBindGroup(v.camera.BindGroupProvider(), v.pipeline.BindGroupLayoutDescriptor(cameraGroup)); err != nil {
		return nil, fmt.Errorf("failed to create camera bind group: %w", err)
	}

	v.window.SetResizeCallback(v.handleResize)
	v.window.SetKeyDownCallback(v.handleKey)
	v.window.SetScrollCallback(v.handleScroll)
	v.window.SetDragCallback(v.handleDrag)
	v.window.SetUpdateCallback(v.frame)

	return v, nil
}

func (v *viewer) Window() window.Window {
	return v.window
}

func (v *viewer) Renderer() renderer.Renderer {
	return v.renderer
}

func (v *viewer) Camera() camera.Camera {
	return v.camera
}

func (v *viewer) Model() model.Model {
	return v.model
}

func (v *viewer) Load(path string) error {
	mdl, err := v.loader.Load(path)
	if err != nil {
		return err
	}
	v.show(mdl)
	return nil
}

// show makes mdl the displayed model and frames the camera around its bounds.
func (v *viewer) show(mdl model.Model) {
	v.model = mdl

	bounds := mdl.Bounds()
	radius := bounds.Radius()
	if radius <= 0 {
		radius = 1
	}
	if ctrl := v.camera.Controller(); ctrl != nil {
		ctrl.Fit(bounds.Center(), radius, v.cameraDistance)
	}
	v.camera.SetClipPlanes(radius*0.01, radius*(v.cameraDistance+1)*10)

	v.logger.Info("model loaded",
		"name", mdl.Name(),
		"triangles", mdl.TriangleCount(),
		"radius", radius,
	)
}

func (v *viewer) EnableProfiler() {
	v.profilingEnabled = true
}

func (v *viewer) DisableProfiler() {
	v.profilingEnabled = false
}

func (v *viewer) SetRenderFrameLimit(fps float64) {
	if fps <= 0 {
		v.renderFrameLimit = 0
		return
	}
	v.renderFrameLimit = time.Duration(float64(time.Second) / fps)
}

func (v *viewer) Run() {
	v.window.ProcessMessages()
	v.release()
}

func (v *viewer) Quit() {
	v.quit.Store(true)
}

func (v *viewer) release() {
	for _, m := range v.loader.Models() {
		m.Release()
	}
	v.camera.BindGroupProvider().Release()
	v.renderer.Release()
	if v.window.IsRunning() {
		if err := v.window.Close(); err != nil {
			v.logger.Warn("failed to close window", "error", err)
		}
	}
}

// frame updates the camera uniform and draws one frame. It runs on the window thread.
func (v *viewer) frame() {
	if v.quit.Load() {
		if err := v.window.Close(); err != nil {
			v.logger.Warn("failed to close window", "error", err)
		}
		return
	}

	start := time.Now()

	v.camera.Update()
	uniform := v.camera.Uniform()
	v.renderer.WriteBuffers([]bind_group_provider.BufferWrite{{
		Provider: v.camera.BindGroupProvider(),
		Binding:  0,
		Data:     uniform.Marshal(),
	}})

	if err := v.renderer.BeginFrame(); err != nil {
		if errors.Is(err, renderer.ErrFrameSkipped) {
			v.logger.Debug("frame skipped", "error", err)
		} else {
			v.logger.Warn("failed to begin frame", "error", err)
		}
		return
	}
	if v.model != nil && v.model.MeshProvider() != nil {
		bindGroups := []bind_group_provider.BindGroupProvider{v.camera.BindGroupProvider()}
		if err := v.renderer.DrawCall(FlatPipelineKey, v.model.MeshProvider(), bindGroups); err != nil {
			v.logger.Error("draw failed", "error", err)
		}
	}
	v.renderer.EndFrame()
	v.renderer.Present()

	if v.profilingEnabled {
		v.profiler.Tick()
	}

	if v.renderFrameLimit > 0 {
		if remaining := v.renderFrameLimit - time.Since(start); remaining > 0 {
			time.Sleep(remaining)
		}
	}
}

func (v *viewer) handleResize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	v.renderer.Resize(width, height)
	v.camera.SetAspect(aspect(width, height))
}

func (v *viewer) handleKey(keyCode uint32) {
	ctrl := v.camera.Controller()
	if ctrl == nil {
		return
	}
	switch keyCode {
	case common.KeyLeft:
		ctrl.OrbitLeft()
	case common.KeyRight:
		ctrl.OrbitRight()
	case common.KeyUp:
		ctrl.OrbitUp()
	case common.KeyDown:
		ctrl.OrbitDown()
	case common.KeyEqual:
		ctrl.Zoom(1)
	case common.KeyMinus:
		ctrl.Zoom(-1)
	case common.KeyR:
		ctrl.Reset()
	}
}

func (v *viewer) handleScroll(delta float32) {
	if ctrl := v.camera.Controller(); ctrl != nil {
		ctrl.Zoom(delta)
	}
}

func (v *viewer) handleDrag(dx, dy float32) {
	if ctrl := v.camera.Controller(); ctrl != nil {
		ctrl.Drag(dx, dy)
	}
}

// aspect returns width/height, or 1 for a degenerate size.
func aspect(width, height int) float32 {
	if width <= 0 || height <= 0 {
		return 1
	}
	return float32(width) / float32(height)
}

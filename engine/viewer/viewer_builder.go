package viewer

import (
	"log/slog"

	"github.com/Carmen-Shannon/frost/engine/camera"
	"github.com/Carmen-Shannon/frost/engine/loader"
	"github.com/Carmen-Shannon/frost/engine/renderer"
	"github.com/Carmen-Shannon/frost/engine/window"
)

// ViewerBuilderOption is a functional option for configuring a viewer via NewViewer.
type ViewerBuilderOption func(*viewer)

// WithWindow sets the window the viewer draws into.
//
// Parameters:
//   - w: the window
//
// Returns:
//   - ViewerBuilderOption: option function to apply
func WithWindow(w window.Window) ViewerBuilderOption {
	return func(v *viewer) {
		v.window = w
	}
}

// WithRenderer sets the renderer. It must target the viewer's window.
//
// Parameters:
//   - r: the renderer
//
// Returns:
//   - ViewerBuilderOption: option function to apply
func WithRenderer(r renderer.Renderer) ViewerBuilderOption {
	return func(v *viewer) {
		v.renderer = r
	}
}

// WithLoader sets the loader used by Load. It should upload through the viewer's renderer.
//
// Parameters:
//   - l: the loader
//
// Returns:
//   - ViewerBuilderOption: option function to apply
func WithLoader(l loader.Loader) ViewerBuilderOption {
	return func(v *viewer) {
		v.loader = l
	}
}

// WithCamera sets the camera. It needs a controller for input and framing to work.
//
// Parameters:
//   - c: the camera
//
// Returns:
//   - ViewerBuilderOption: option function to apply
func WithCamera(c camera.Camera) ViewerBuilderOption {
	return func(v *viewer) {
		v.camera = c
	}
}

// WithLogger sets the logger. Nil is ignored.
//
// Parameters:
//   - logger: the logger
//
// Returns:
//   - ViewerBuilderOption: option function to apply
func WithLogger(logger *slog.Logger) ViewerBuilderOption {
	return func(v *viewer) {
		if logger != nil {
			v.logger = logger
		}
	}
}

// WithProfiling enables or disables frame statistics logging.
//
// Parameters:
//   - enabled: true to log frame statistics
//
// Returns:
//   - ViewerBuilderOption: option function to apply
func WithProfiling(enabled bool) ViewerBuilderOption {
	return func(v *viewer) {
		v.profilingEnabled = enabled
	}
}

// WithRenderFrameLimit caps the frame rate. 0 leaves it uncapped.
//
// Parameters:
//   - fps: maximum frames per second
//
// Returns:
//   - ViewerBuilderOption: option function to apply
func WithRenderFrameLimit(fps float64) ViewerBuilderOption {
	return func(v *viewer) {
		v.SetRenderFrameLimit(fps)
	}
}

// WithCameraDistance sets how far the eye sits from a loaded model, in bounding-sphere radii.
//
// Parameters:
//   - distance: eye distance in radii (values <= 1 are ignored)
//
// Returns:
//   - ViewerBuilderOption: option function to apply
func WithCameraDistance(distance float32) ViewerBuilderOption {
	return func(v *viewer) {
		if distance > 1 {
			v.cameraDistance = distance
		}
	}
}

package renderer

import "github.com/cogentcore/webgpu/wgpu"

// RendererBackendType identifies the GPU backend implementation used by the Renderer.
type RendererBackendType int

const (
	// BackendTypeWGPU selects the WebGPU-based rendering backend.
	BackendTypeWGPU RendererBackendType = iota
)

// PresentMode controls how rendered frames are presented to the display surface.
type PresentMode int

const (
	// PresentModeVSync waits for the next vertical blank before presenting. Eliminates tearing.
	PresentModeVSync PresentMode = iota

	// PresentModeUncapped presents frames immediately without waiting for vertical blank.
	PresentModeUncapped
)

// ParsePresentMode maps a configuration string to a PresentMode.
// Anything other than "uncapped" (or "immediate") resolves to PresentModeVSync.
//
// Parameters:
//   - s: the mode name
//
// Returns:
//   - PresentMode: the matching present mode
func ParsePresentMode(s string) PresentMode {
	switch s {
	case "uncapped", "immediate":
		return PresentModeUncapped
	default:
		return PresentModeVSync
	}
}

// MSAASampleCount controls the number of samples used for multisample anti-aliasing (MSAA).
// WebGPU guarantees support for 1 (off) and 4; higher values are adapter-dependent.
type MSAASampleCount uint32

const (
	// MSAAOff disables multisample anti-aliasing (sample count 1). This is the default.
	MSAAOff MSAASampleCount = 1

	// MSAA4x enables 4× multisample anti-aliasing.
	MSAA4x MSAASampleCount = 4

	// MSAA8x enables 8× multisample anti-aliasing. Adapter-dependent.
	MSAA8x MSAASampleCount = 8

	// MSAA16x enables 16× multisample anti-aliasing. Adapter-dependent.
	MSAA16x MSAASampleCount = 16
)

// ParseMSAASampleCount maps a configured sample count to the nearest supported MSAASampleCount
// that does not exceed it. Values below 4 turn MSAA off.
//
// Parameters:
//   - n: the requested sample count
//
// Returns:
//   - MSAASampleCount: the supported sample count
func ParseMSAASampleCount(n int) MSAASampleCount {
	switch {
	case n >= 16:
		return MSAA16x
	case n >= 8:
		return MSAA8x
	case n >= 4:
		return MSAA4x
	default:
		return MSAAOff
	}
}

// DefaultClearColor is the color the frame is cleared to before drawing.
var DefaultClearColor = wgpu.Color{R: 0, G: 1, B: 0, A: 1}

// DepthFormat is the depth attachment format shared by the depth texture and every pipeline.
const DepthFormat = wgpu.TextureFormatDepth32Float

// RendererBackend is the top-level backend interface for the Renderer.
// It embeds the concrete backend interface for the selected GPU API.
type RendererBackend interface {
	wgpuRendererBackend
}

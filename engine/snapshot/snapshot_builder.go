package snapshot

import (
	"image/color"
)

// SnapshotOption is a functional option for Render.
type SnapshotOption func(*options)

// WithSize sets the output image size. Non-positive values keep the default (512).
//
// Parameters:
//   - width: output width in pixels
//   - height: output height in pixels
//
// Returns:
//   - SnapshotOption: option function to apply
func WithSize(width, height int) SnapshotOption {
	return func(o *options) {
		if width > 0 {
			o.width = width
		}
		if height > 0 {
			o.height = height
		}
	}
}

// WithSupersample renders at factor × the output size and downscales.
// A factor of 1 disables supersampling.
//
// Parameters:
//   - factor: the supersampling factor
//
// Returns:
//   - SnapshotOption: option function to apply
func WithSupersample(factor int) SnapshotOption {
	return func(o *options) {
		if factor > 0 {
			o.supersample = factor
		}
	}
}

// WithBackground sets the color of pixels no triangle covers.
//
// Parameters:
//   - c: the background color
//
// Returns:
//   - SnapshotOption: option function to apply
func WithBackground(c color.NRGBA) SnapshotOption {
	return func(o *options) {
		o.background = c
	}
}

// WithFov sets the vertical field of view in radians.
func WithFov(fov float32) SnapshotOption {
	return func(o *options) {
		if fov > 0 {
			o.fov = fov
		}
	}
}

// WithOrbit places the camera at the given azimuth and elevation (radians) around the model.
//
// Parameters:
//   - azimuth: horizontal angle around +Y
//   - elevation: angle above the horizontal plane
//
// Returns:
//   - SnapshotOption: option function to apply
func WithOrbit(azimuth, elevation float32) SnapshotOption {
	return func(o *options) {
		o.azimuth, o.elevation = azimuth, elevation
	}
}

// WithDistance sets the eye distance in bounding-sphere radii. Values <= 1 are ignored.
func WithDistance(distance float32) SnapshotOption {
	return func(o *options) {
		if distance > 1 {
			o.distance = distance
		}
	}
}

// WithAmbient sets the light level of surfaces facing away from the eye, in [0, 1].
func WithAmbient(ambient float32) SnapshotOption {
	return func(o *options) {
		if ambient >= 0 && ambient <= 1 {
			o.ambient = ambient
		}
	}
}
